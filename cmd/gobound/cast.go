package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gobound/internal/logging"
	"github.com/philipparndt/gobound/internal/scene"
	"github.com/philipparndt/gobound/pkg/geometry"
	"github.com/philipparndt/gobound/pkg/raycast"
	"github.com/philipparndt/gobound/pkg/watcher"
)

var (
	castOrigin      [3]float64
	castDirection   [3]float64
	castMaxDistance float64
	castTags        []string
	castAll         bool
	castWatch       bool
)

var castCmd = &cobra.Command{
	Use:   "cast [scene]",
	Short: "Cast a ray into a scene and report the first hit",
	Long: `Cast a ray from --ox/--oy/--oz along --dx/--dy/--dz. The direction is
normalized, so distances are in scene units. With --all every object the
ray passes through is listed in order.`,
	Args: cobra.ExactArgs(1),
	RunE: runCast,
}

func init() {
	f := castCmd.Flags()
	f.Float64Var(&castOrigin[0], "ox", 0, "ray origin X")
	f.Float64Var(&castOrigin[1], "oy", 0, "ray origin Y")
	f.Float64Var(&castOrigin[2], "oz", 0, "ray origin Z")
	f.Float64Var(&castDirection[0], "dx", 0, "ray direction X")
	f.Float64Var(&castDirection[1], "dy", 0, "ray direction Y")
	f.Float64Var(&castDirection[2], "dz", 0, "ray direction Z")
	f.Float64Var(&castMaxDistance, "max", 0, "max distance (default from config)")
	f.StringSliceVar(&castTags, "tag", nil, "only hit objects with one of these tags")
	f.BoolVar(&castAll, "all", false, "list every hit instead of the first")
	f.BoolVar(&castWatch, "watch", false, "cast again whenever the scene file changes")
	rootCmd.AddCommand(castCmd)
}

func runCast(cmd *cobra.Command, args []string) error {
	path := args[0]
	out := cmd.OutOrStdout()

	// an explicit --max 0 is passed through so it fails validation
	maxDistance := cfg.Cast.MaxDistance
	if cmd.Flags().Changed("max") {
		maxDistance = castMaxDistance
	}

	if err := castOnce(out, path, maxDistance); err != nil {
		if !castWatch {
			return err
		}
		logging.Error("cast failed", "err", err)
	}
	if !castWatch {
		return nil
	}

	fw, err := watcher.New(cfg.Debounce(), logging.Logger())
	if err != nil {
		return err
	}
	defer fw.Close()

	err = fw.Watch([]string{path}, func(string) {
		logging.Info("scene changed, casting again", "path", path)
		if err := castOnce(out, path, maxDistance); err != nil {
			logging.Error("cast failed", "err", err)
		}
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	logging.Info("watching scene", "path", path)
	if err := fw.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func castOnce(out io.Writer, path string, maxDistance float64) error {
	s, err := loadScene(path)
	if err != nil {
		return err
	}
	rc, err := raycast.New[*scene.Object](s)
	if err != nil {
		return err
	}

	origin := geometry.NewVector3(castOrigin[0], castOrigin[1], castOrigin[2])
	dir := geometry.NewVector3(castDirection[0], castDirection[1], castDirection[2])
	if dir.IsZero() || !dir.IsFinite() {
		return fmt.Errorf("direction %s: %w", dir, raycast.ErrZeroDirection)
	}
	ray := geometry.NewRay3(origin, dir).Normalized()

	filter := scene.TagFilter(castTags...)

	if castAll {
		results, err := rc.CastAll(ray, maxDistance, filter)
		if err != nil {
			return err
		}
		printHits(out, ray, results)
		return nil
	}

	res, err := rc.Cast(ray, maxDistance, filter)
	if err != nil {
		return err
	}
	printResult(out, res)
	return nil
}

func printResult(out io.Writer, res raycast.Result[*scene.Object]) {
	fmt.Fprintf(out, "Ray: %s\n", res.Ray)
	if res.Hit == nil {
		fmt.Fprintln(out, "Result: miss")
		fmt.Fprintf(out, "  Distance: %.6f\n", res.Distance)
		fmt.Fprintf(out, "  End: %s\n", res.Pos)
		return
	}
	fmt.Fprintf(out, "Result: hit %s (%s)\n", res.Hit.Object.ID, res.Hit.Object.Bound().Kind())
	fmt.Fprintf(out, "  Distance: %.6f\n", res.Distance)
	fmt.Fprintf(out, "  Entry: %s\n", res.Pos)
	fmt.Fprintf(out, "  Exit: %s\n", res.Hit.Out)
	fmt.Fprintf(out, "  Normal: %s\n", res.Hit.Normal)
	fmt.Fprintf(out, "  Penetration: %.6f\n", res.Hit.Penetration)
}

func printHits(out io.Writer, ray geometry.Ray3, results []raycast.Result[*scene.Object]) {
	fmt.Fprintf(out, "Ray: %s\n", ray)
	fmt.Fprintf(out, "Hits: %d\n", len(results))
	for i, r := range results {
		fmt.Fprintf(out, "  %d. %s (%s) at %.6f, entry %s, exit %s\n",
			i+1, r.Hit.Object.ID, r.Hit.Object.Bound().Kind(), r.Distance, r.Pos, r.Hit.Out)
	}
}
