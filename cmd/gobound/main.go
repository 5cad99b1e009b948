package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gobound/internal/config"
	"github.com/philipparndt/gobound/internal/logging"
	"github.com/philipparndt/gobound/internal/scene"
	"github.com/philipparndt/gobound/version"
)

var (
	configPath string
	logLevel   string
	cfg        = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "gobound",
	Short: "Cast rays against boxes, spheres and cylinders",
	Long: `gobound loads a scene of placed volumes from a YAML file and answers
ray and point queries against it: which object a ray hits first, where it
enters and leaves, and which objects contain a point.`,
	Version:           version.GetFullVersion(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./gobound.toml if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level")
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		loaded.Log.Level = logLevel
		if err := loaded.Validate(); err != nil {
			return err
		}
	}
	cfg = loaded
	return logging.SetLevel(cfg.Log.Level)
}

func loadScene(path string) (*scene.Scene, error) {
	return scene.Load(path, scene.Options{BlocksDir: cfg.Blocks.Dir})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
