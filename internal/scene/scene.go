// Package scene loads YAML scene files into placed bounds that can be
// raycast against.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/philipparndt/gobound/internal/blocks"
	"github.com/philipparndt/gobound/internal/logging"
	"github.com/philipparndt/gobound/pkg/bound"
	"github.com/philipparndt/gobound/pkg/geometry"
	"github.com/philipparndt/gobound/pkg/raycast"
)

var (
	ErrUnknownType  = errors.New("unknown bound type")
	ErrMissingBound = errors.New("object needs exactly one of bound or block")
	ErrDuplicateID  = errors.New("duplicate object id")
	ErrNoBlocks     = errors.New("block objects need a blocks directory")
	ErrBadField     = errors.New("field does not apply to bound type")
)

// Object is a bound placed in the scene
type Object struct {
	ID     string
	Tags   []string
	origin geometry.Vector3
	bound  bound.Bound
}

var _ raycast.Boundable = (*Object)(nil)

func (o *Object) Origin() geometry.Vector3 { return o.origin }
func (o *Object) Bound() bound.Bound       { return o.bound }

// HasTag reports whether the object carries tag
func (o *Object) HasTag(tag string) bool {
	return slices.Contains(o.Tags, tag)
}

func (o *Object) String() string {
	return o.ID
}

// Scene is an ordered set of objects. It is a raycast source that offers
// every object to every ray.
type Scene struct {
	Path    string
	Objects []*Object
}

var _ raycast.Source[*Object] = (*Scene)(nil)

// Options control how block objects are resolved
type Options struct {
	// BaseDir resolves a relative blocks_dir from the file.
	BaseDir string
	// BlocksDir is used when the file sets no blocks_dir.
	BlocksDir string
	// Blocks, when set, is used instead of loading a directory.
	Blocks *blocks.Registry
}

// Load reads and parses a scene file. A relative blocks_dir is resolved
// against the file's directory.
func Load(path string, opts Options) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	if opts.BaseDir == "" {
		opts.BaseDir = filepath.Dir(path)
	}
	s, err := Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	s.Path = path
	logging.Debug("loaded scene", "path", path, "objects", len(s.Objects))
	return s, nil
}

// Parse builds a scene from YAML
func Parse(data []byte, opts Options) (*Scene, error) {
	var file sceneFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	b := builder{opts: opts, blocksDir: file.BlocksDir, seen: make(map[string]bool)}
	s := &Scene{Objects: make([]*Object, 0, len(file.Objects))}
	for i, def := range file.Objects {
		obj, err := b.object(def)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		s.Objects = append(s.Objects, obj)
	}
	return s, nil
}

// Candidates returns every object
func (s *Scene) Candidates(geometry.Ray3, float64) []*Object {
	return s.Objects
}

// Find returns the object with the given id
func (s *Scene) Find(id string) (*Object, bool) {
	for _, o := range s.Objects {
		if o.ID == id {
			return o, true
		}
	}
	return nil, false
}

// Containing returns the objects whose volume holds the world point
func (s *Scene) Containing(point geometry.Vector3) []*Object {
	var out []*Object
	for _, o := range s.Objects {
		if o.bound.Contains(point.Sub(o.origin)) {
			out = append(out, o)
		}
	}
	return out
}

// Bounds returns the world-space extent of all objects
func (s *Scene) Bounds() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, o := range s.Objects {
		bbox = bbox.Union(raycast.WorldBounds(o))
	}
	return bbox
}

// TagFilter accepts objects carrying any of tags. With no tags it returns
// nil, which accepts everything.
func TagFilter(tags ...string) raycast.Predicate[*Object] {
	if len(tags) == 0 {
		return nil
	}
	return func(o *Object) bool {
		for _, t := range tags {
			if o.HasTag(t) {
				return true
			}
		}
		return false
	}
}

type builder struct {
	opts      Options
	blocksDir string
	registry  *blocks.Registry
	seen      map[string]bool
}

func (b *builder) object(def objectDef) (*Object, error) {
	id := strings.TrimSpace(def.ID)
	if id == "" {
		id = uuid.NewString()
	}
	if b.seen[id] {
		return nil, fmt.Errorf("%q: %w", id, ErrDuplicateID)
	}
	b.seen[id] = true

	if (def.Bound == nil) == (def.Block == nil) {
		return nil, fmt.Errorf("%q: %w", id, ErrMissingBound)
	}
	origin := def.Origin.get()
	if !origin.IsFinite() {
		return nil, fmt.Errorf("%q origin %s: %w", id, origin, bound.ErrNonFinite)
	}

	var bnd bound.Bound
	var err error
	if def.Bound != nil {
		bnd, err = buildBound(*def.Bound)
	} else {
		bnd, err = b.block(*def.Block)
	}
	if err != nil {
		return nil, fmt.Errorf("%q: %w", id, err)
	}
	return &Object{ID: id, Tags: def.Tags, origin: origin, bound: bnd}, nil
}

func (b *builder) block(def blockDef) (bound.Bound, error) {
	if b.registry == nil {
		reg, err := b.loadRegistry()
		if err != nil {
			return nil, err
		}
		b.registry = reg
	}
	return b.registry.Bound(def.ID, def.Properties)
}

func (b *builder) loadRegistry() (*blocks.Registry, error) {
	if b.opts.Blocks != nil {
		return b.opts.Blocks, nil
	}
	dir := b.blocksDir
	if dir != "" && !filepath.IsAbs(dir) && b.opts.BaseDir != "" {
		dir = filepath.Join(b.opts.BaseDir, dir)
	}
	if dir == "" {
		dir = b.opts.BlocksDir
	}
	if dir == "" {
		return nil, ErrNoBlocks
	}
	return blocks.Load(dir)
}

func buildBound(def boundDef) (bound.Bound, error) {
	kind := strings.ToLower(def.Type)
	if kind != "box" && (def.Angle != nil || def.AngleDeg != nil) {
		return nil, fmt.Errorf("angle on %s: %w", kind, ErrBadField)
	}

	switch kind {
	case "box":
		if def.Min == nil || def.Max == nil {
			return nil, fmt.Errorf("box needs min and max")
		}
		angle, err := def.angle()
		if err != nil {
			return nil, err
		}
		return bound.NewRotatedBox(def.Min.get(), def.Max.get(), angle)
	case "sphere":
		return bound.NewSphere(def.Center.get(), def.Radius)
	case "cylinder":
		return bound.NewCylinder(def.Base.get(), def.Radius, def.Height)
	case "compound":
		members := make([]bound.Bound, 0, len(def.Bounds))
		for i, m := range def.Bounds {
			member, err := buildBound(m)
			if err != nil {
				return nil, fmt.Errorf("member %d: %w", i, err)
			}
			members = append(members, member)
		}
		return bound.NewCompound(members...)
	}
	return nil, fmt.Errorf("%q: %w", def.Type, ErrUnknownType)
}

func (s boundDef) angle() (float64, error) {
	switch {
	case s.Angle != nil && s.AngleDeg != nil:
		return 0, fmt.Errorf("set angle or angle_deg, not both")
	case s.AngleDeg != nil:
		return *s.AngleDeg * math.Pi / 180, nil
	case s.Angle != nil:
		return *s.Angle, nil
	}
	return 0, nil
}
