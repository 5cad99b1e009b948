package scene

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/philipparndt/gobound/pkg/geometry"
)

// sceneFile is the YAML layout of a scene
type sceneFile struct {
	BlocksDir string      `yaml:"blocks_dir"`
	Objects   []objectDef `yaml:"objects"`
}

type objectDef struct {
	ID     string    `yaml:"id"`
	Tags   []string  `yaml:"tags"`
	Origin *vec3     `yaml:"origin"`
	Bound  *boundDef `yaml:"bound"`
	Block  *blockDef `yaml:"block"`
}

type boundDef struct {
	Type     string     `yaml:"type"`
	Min      *vec3      `yaml:"min"`
	Max      *vec3      `yaml:"max"`
	Angle    *float64   `yaml:"angle"`
	AngleDeg *float64   `yaml:"angle_deg"`
	Center   *vec3      `yaml:"center"`
	Radius   float64    `yaml:"radius"`
	Base     *vec3      `yaml:"base"`
	Height   float64    `yaml:"height"`
	Bounds   []boundDef `yaml:"bounds"`
}

type blockDef struct {
	ID         string            `yaml:"id"`
	Properties map[string]string `yaml:"properties"`
}

// vec3 is written as a three element sequence, [x, y, z]
type vec3 geometry.Vector3

func (v *vec3) UnmarshalYAML(node *yaml.Node) error {
	var xs []float64
	if err := node.Decode(&xs); err != nil {
		return err
	}
	if len(xs) != 3 {
		return fmt.Errorf("line %d: vector needs 3 components, got %d", node.Line, len(xs))
	}
	*v = vec3(geometry.NewVector3(xs[0], xs[1], xs[2]))
	return nil
}

func (v *vec3) get() geometry.Vector3 {
	if v == nil {
		return geometry.Zero()
	}
	return geometry.Vector3(*v)
}
