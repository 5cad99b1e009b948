package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gobound/pkg/raycast"
)

var infoCmd = &cobra.Command{
	Use:   "info [scene]",
	Short: "Display the objects of a scene",
	Long:  "List every object with its kind, origin, tags and world extent, followed by the extent of the whole scene.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	s, err := loadScene(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Scene Information")
	fmt.Fprintln(out, "=================")
	fmt.Fprintf(out, "File: %s\n", args[0])
	fmt.Fprintf(out, "Objects: %d\n\n", len(s.Objects))

	for _, o := range s.Objects {
		bbox := raycast.WorldBounds(o)
		fmt.Fprintf(out, "%s (%s)\n", o.ID, o.Bound().Kind())
		fmt.Fprintf(out, "  Origin: %s\n", o.Origin())
		if len(o.Tags) > 0 {
			fmt.Fprintf(out, "  Tags: %s\n", strings.Join(o.Tags, ", "))
		}
		fmt.Fprintf(out, "  Min: %s\n", bbox.Min)
		fmt.Fprintf(out, "  Max: %s\n", bbox.Max)
	}

	if len(s.Objects) == 0 {
		return nil
	}
	bbox := s.Bounds()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Bounding Box:")
	fmt.Fprintf(out, "  Min: %s\n", bbox.Min)
	fmt.Fprintf(out, "  Max: %s\n", bbox.Max)
	fmt.Fprintf(out, "  Center: %s\n", bbox.Center())
	fmt.Fprintf(out, "  Diagonal: %.6f units\n", bbox.Diagonal())
	return nil
}
