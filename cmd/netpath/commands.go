package main

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netpath/mapgen"
	"github.com/katalvlaran/netpath/network"
	"github.com/katalvlaran/netpath/pathsearch"
	"github.com/katalvlaran/netpath/traverse"
)

func newGenerateCmd(a *app) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random connected map and save it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			mc := a.cfg.Map
			m, err := mapgen.New(mc.Locations, mc.Density, mc.MapOptions(a.logger)...)
			if err != nil {
				return fmt.Errorf("generating map: %w", err)
			}
			path, err := m.Save(outPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "saved %s: %d locations, %d edges, density %.2f\n",
				path, m.Order(), m.Edges(), m.Density())

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&outPath, "out", "map.json", "Output file (.json is appended when missing)")
	f.Int("locations", 10, "Number of locations (at least 5)")
	f.Float64("density", 0.5, "Edge density in [0, 1]")
	f.Bool("bidirectional", true, "Join locations both ways")
	f.Bool("backbone", true, "Lay a spanning backbone before the random fill")
	f.Int("max-attempts", mapgen.DefaultMaxAttempts, "Connectivity retries")
	f.Uint64("seed", 0, "Generation seed (0 = random)")

	return cmd
}

func newInspectCmd(a *app) *cobra.Command {
	var inPath string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the matrix report of a saved map",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := mapgen.Load(inPath, a.logger)
			if err != nil {
				return err
			}
			fmt.Fprint(a.out, m.String())
			fmt.Fprintf(a.out, "locations: %d\nedges: %d\ndensity: %.2f\nbidirectional: %t\nconnected: %t\n",
				m.Order(), m.Edges(), m.Density(), m.Bidirectional(), traverse.IsConnected(m))

			return nil
		},
	}
	cmd.Flags().StringVar(&inPath, "in", "", "Saved map file")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}

// endpoints resolves --from/--to location IDs to vertex indices.
func endpoints(m *mapgen.Map, from, to int) (int, int, error) {
	i, j := m.IndexOfID(from), m.IndexOfID(to)
	if i < 0 {
		return 0, 0, fmt.Errorf("%w: id %d", mapgen.ErrLocationNotFound, from)
	}
	if j < 0 {
		return 0, 0, fmt.Errorf("%w: id %d", mapgen.ErrLocationNotFound, to)
	}

	return i, j, nil
}

// describe renders a path as location names.
func describe(m *mapgen.Map, res pathsearch.Result) string {
	if res.Empty() {
		return "no path"
	}
	names := make([]string, 0, res.Len())
	for l := range traverse.Labels[mapgen.Location](m, res.Seq()) {
		names = append(names, l.Name)
	}

	return fmt.Sprintf("%s (weight %s)", strings.Join(names, " -> "), network.FormatWeight(res.Weight))
}

func newPathCmd(a *app) *cobra.Command {
	var (
		inPath   string
		from, to int
		kindName string
	)

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Search a path between two locations of a saved map",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := pathsearch.ParseKind(kindName)
			if err != nil {
				return err
			}
			m, err := mapgen.Load(inPath, a.logger)
			if err != nil {
				return err
			}
			i, j, err := endpoints(m, from, to)
			if err != nil {
				return err
			}

			var opts []pathsearch.Option
			if a.cfg.Search.Seed != 0 {
				opts = append(opts, pathsearch.WithSeed(a.cfg.Search.Seed))
			}
			res := kind.Func()(m.Snapshot(), i, j, opts...)
			a.logger.Debug("path searched", "kind", kind, "from", from, "to", to, "hops", max(res.Len()-1, 0))
			fmt.Fprintln(a.out, describe(m, res))

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&inPath, "in", "", "Saved map file")
	f.IntVar(&from, "from", 0, "Start location ID")
	f.IntVar(&to, "to", 0, "Target location ID")
	f.StringVar(&kindName, "kind", string(pathsearch.Shortest), "Search kind: shortest, longest or random")
	f.Uint64("search-seed", 0, "Seed for random searches (0 = random)")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}

func newSampleCmd(a *app) *cobra.Command {
	var (
		inPath   string
		from, to int
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Run many randomized searches concurrently and print a histogram of paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := mapgen.Load(inPath, a.logger)
			if err != nil {
				return err
			}
			i, j, err := endpoints(m, from, to)
			if err != nil {
				return err
			}

			sc := a.cfg.Search
			opts := []pathsearch.Option{pathsearch.WithWorkers(max(sc.Workers, 1))}
			if sc.Seed != 0 {
				opts = append(opts, pathsearch.WithSeed(sc.Seed))
			}
			results, err := pathsearch.Sample(cmd.Context(), m, i, j, sc.Runs, opts...)
			if err != nil {
				return err
			}

			counts := make(map[string]int)
			for _, res := range results {
				counts[describe(m, res)]++
			}
			keys := slices.SortedFunc(maps.Keys(counts), func(x, y string) int {
				if c := cmp.Compare(counts[y], counts[x]); c != 0 {
					return c
				}
				return strings.Compare(x, y)
			})

			fmt.Fprintf(a.out, "%d runs, %d distinct paths\n", len(results), len(keys))
			for _, k := range keys {
				fmt.Fprintf(a.out, "%6d  %s\n", counts[k], k)
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&inPath, "in", "", "Saved map file")
	f.IntVar(&from, "from", 0, "Start location ID")
	f.IntVar(&to, "to", 0, "Target location ID")
	f.Int("runs", 100, "Number of randomized searches")
	f.Int("workers", 4, "Concurrent searches")
	f.Uint64("search-seed", 0, "Seed for reproducible sampling (0 = random)")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}
