package mapgen_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netpath/mapgen"
	"github.com/katalvlaran/netpath/network"
	"github.com/katalvlaran/netpath/traverse"
)

func quiet() mapgen.Option {
	return mapgen.WithLogger(slog.New(slog.DiscardHandler))
}

func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name      string
		locations int
		density   float64
		opts      []mapgen.Option
		want      error
	}{
		{"too few", 4, 1, nil, mapgen.ErrTooFewLocations},
		{"negative density", 5, -0.1, nil, mapgen.ErrDensityRange},
		{"density above one", 5, 1.5, nil, mapgen.ErrDensityRange},
		{"below one-way minimum", 5, 0.2, nil, mapgen.ErrDensityTooLow},
		{"below two-way minimum", 5, 0.4, []mapgen.Option{mapgen.WithBidirectional(true)}, mapgen.ErrDensityTooLow},
		{"zero attempts", 5, 1, []mapgen.Option{mapgen.WithMaxAttempts(0)}, mapgen.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := mapgen.New(tc.locations, tc.density, append(tc.opts, quiet())...)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, m)
		})
	}
}

func TestMinimumDensity(t *testing.T) {
	require.Equal(t, 0.25, mapgen.MinimumDensity(5, false))
	require.Equal(t, 0.5, mapgen.MinimumDensity(5, true))
	require.Equal(t, 0.0, mapgen.MinimumDensity(1, true))

	// The minimum itself is accepted.
	_, err := mapgen.New(5, 0.5, mapgen.WithBidirectional(true), mapgen.WithSeed(1), quiet())
	require.NoError(t, err)
	_, err = mapgen.New(5, 0.25, mapgen.WithSeed(1), quiet())
	require.NoError(t, err)
}

func TestExpectedEdges(t *testing.T) {
	require.Equal(t, 22, mapgen.ExpectedEdges(10, 0.5, false))
	require.Equal(t, 44, mapgen.ExpectedEdges(10, 0.5, true))
	require.Equal(t, 2, mapgen.ExpectedEdges(5, 0.25, false))
}

func TestNew_GeneratedMapsAreValid(t *testing.T) {
	configs := []struct {
		n             int
		density       float64
		bidirectional bool
	}{
		{5, 0.25, false},
		{5, 0.5, true},
		{12, 0.3, false},
		{12, 0.3, true},
		{30, 0.1, true},
		{30, 0.6, false},
	}

	for _, c := range configs {
		for seed := uint64(1); seed <= 10; seed++ {
			name := fmt.Sprintf("n=%d d=%g bi=%t seed=%d", c.n, c.density, c.bidirectional, seed)
			m, err := mapgen.New(c.n, c.density,
				mapgen.WithBidirectional(c.bidirectional), mapgen.WithSeed(seed), quiet())
			require.NoError(t, err, name)

			require.Equal(t, c.n, m.Order(), name)
			require.True(t, traverse.IsConnected(m), name)
			require.Equal(t, c.bidirectional, m.Bidirectional(), name)
			require.Equal(t, c.density, m.RequestedDensity(), name)

			expected := mapgen.ExpectedEdges(c.n, c.density, c.bidirectional)
			require.LessOrEqual(t, m.Edges(), max(2*c.n, expected+1), name)

			for i := 0; i < c.n; i++ {
				loc, ok := m.Vertex(i)
				require.True(t, ok)
				require.Equal(t, mapgen.NewLocation(i), loc)
				require.False(t, m.HasEdge(i, i), name)
				for j := 0; j < c.n; j++ {
					w := m.Weight(i, j)
					if !network.IsEdge(w) {
						continue
					}
					require.Equal(t, math.Trunc(w), w, name)
					require.GreaterOrEqual(t, w, float64(mapgen.MinDistance), name)
					require.LessOrEqual(t, w, float64(mapgen.MaxDistance), name)
					if c.bidirectional {
						require.Equal(t, w, m.Weight(j, i), name)
					}
				}
			}
		}
	}
}

func TestNew_FullDensity(t *testing.T) {
	m, err := mapgen.New(6, 1, mapgen.WithBidirectional(true), mapgen.WithSeed(3), quiet())
	require.NoError(t, err)
	require.Equal(t, 30, m.Edges())
	require.Equal(t, 1.0, m.Density())
}

func TestNew_SeedIsReproducible(t *testing.T) {
	a, err := mapgen.New(15, 0.4, mapgen.WithSeed(77), quiet())
	require.NoError(t, err)
	b, err := mapgen.New(15, 0.4, mapgen.WithSeed(77), quiet())
	require.NoError(t, err)
	require.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestNew_WithoutBackboneCanFail(t *testing.T) {
	// Two directed edges can never connect five locations.
	m, err := mapgen.New(5, 0.25, mapgen.WithoutBackbone(), mapgen.WithMaxAttempts(3), mapgen.WithSeed(1), quiet())
	require.ErrorIs(t, err, mapgen.ErrNotConnected)
	require.Nil(t, m)

	// A complete two-way map is connected without help.
	m, err = mapgen.New(5, 1, mapgen.WithoutBackbone(), mapgen.WithBidirectional(true), mapgen.WithSeed(1), quiet())
	require.NoError(t, err)
	require.True(t, traverse.IsConnected(m))
}

func TestLocationLookup(t *testing.T) {
	m, err := mapgen.New(6, 0.5, mapgen.WithIDs(mapgen.Counter(100)), mapgen.WithSeed(2), quiet())
	require.NoError(t, err)

	loc, err := m.Location(103)
	require.NoError(t, err)
	require.Equal(t, "Local 103", loc.Name)
	require.Equal(t, 3, m.IndexOfID(103))

	_, err = m.Location(0)
	require.ErrorIs(t, err, mapgen.ErrLocationNotFound)
	require.Equal(t, -1, m.IndexOfID(0))
}

func TestParseLocation(t *testing.T) {
	loc, err := mapgen.ParseLocation(4, "Local 12")
	require.NoError(t, err)
	require.Equal(t, mapgen.Location{ID: 12, Name: "Local 12"}, loc)

	loc, err = mapgen.ParseLocation(4, "Harbour")
	require.NoError(t, err)
	require.Equal(t, mapgen.Location{ID: 4, Name: "Harbour"}, loc)
	require.Equal(t, "Harbour", loc.String())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	for _, bidirectional := range []bool{false, true} {
		m, err := mapgen.New(10, 0.5, mapgen.WithBidirectional(bidirectional),
			mapgen.WithIDs(mapgen.Counter(1)), mapgen.WithSeed(9), quiet())
		require.NoError(t, err)

		path, err := m.Save(filepath.Join(t.TempDir(), "arena"))
		require.NoError(t, err)
		require.Equal(t, ".json", filepath.Ext(path))

		loaded, err := mapgen.Load(path, nil)
		require.NoError(t, err)
		require.Equal(t, m.Vertices(), loaded.Vertices())
		require.Equal(t, m.Snapshot(), loaded.Snapshot())
		require.Equal(t, m.Edges(), loaded.Edges())
		require.Equal(t, m.Density(), loaded.Density())
		require.Equal(t, m.Density(), loaded.RequestedDensity())
		if bidirectional {
			require.True(t, loaded.Bidirectional())
		}
	}
}

func TestWriteRead(t *testing.T) {
	m, err := mapgen.New(7, 0.5, mapgen.WithSeed(4), quiet())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, m.Write(&buf))
	loaded, err := mapgen.Read(&buf, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	require.Equal(t, m.Snapshot(), loaded.Snapshot())

	_, err = mapgen.Load(filepath.Join(t.TempDir(), "missing.json"), nil)
	require.Error(t, err)
}

func TestNew_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := mapgen.New(8, 0.5, mapgen.WithSeed(5), mapgen.WithLogger(logger))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "generating map")
	require.Contains(t, buf.String(), "map generated")
	require.Contains(t, buf.String(), "attempts=1")
}
