package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gobound/pkg/geometry"
)

var containsPoint [3]float64

var containsCmd = &cobra.Command{
	Use:   "contains [scene]",
	Short: "List the objects containing a point",
	Args:  cobra.ExactArgs(1),
	RunE:  runContains,
}

func init() {
	containsCmd.Flags().Float64Var(&containsPoint[0], "x", 0, "point X")
	containsCmd.Flags().Float64Var(&containsPoint[1], "y", 0, "point Y")
	containsCmd.Flags().Float64Var(&containsPoint[2], "z", 0, "point Z")
	rootCmd.AddCommand(containsCmd)
}

func runContains(cmd *cobra.Command, args []string) error {
	s, err := loadScene(args[0])
	if err != nil {
		return err
	}
	p := geometry.NewVector3(containsPoint[0], containsPoint[1], containsPoint[2])
	out := cmd.OutOrStdout()

	found := s.Containing(p)
	fmt.Fprintf(out, "Point: %s\n", p)
	if len(found) == 0 {
		fmt.Fprintln(out, "No object contains the point")
		return nil
	}
	for _, o := range found {
		fmt.Fprintf(out, "  %s (%s)\n", o.ID, o.Bound().Kind())
	}
	return nil
}
