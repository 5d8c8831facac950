package mapgen

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/katalvlaran/netpath/network"
	"github.com/katalvlaran/netpath/traverse"
)

// Map is a generated network of locations.
type Map struct {
	*network.Network[Location]

	bidirectional bool
	requested     float64
}

// New validates the parameters and generates a connected map.
func New(locations int, density float64, opts ...Option) (*Map, error) {
	o := buildOptions(opts)
	if o.err != nil {
		return nil, o.err
	}
	if err := validate(locations, density, o.Bidirectional); err != nil {
		return nil, err
	}

	g := generator{
		n:        locations,
		density:  density,
		expected: ExpectedEdges(locations, density, o.Bidirectional),
		opts:     o,
	}
	places := make([]Location, locations)
	for i := range places {
		places[i] = NewLocation(o.IDs())
	}

	o.Logger.Debug("generating map",
		"locations", locations, "density", density,
		"bidirectional", o.Bidirectional, "expected_edges", g.expected)

	for attempt := 1; attempt <= o.MaxAttempts; attempt++ {
		net := g.attempt(places)
		if traverse.IsConnected(net) {
			m := &Map{Network: net, bidirectional: o.Bidirectional, requested: density}
			o.Logger.Info("map generated",
				"locations", locations, "edges", m.Edges(),
				"density", m.Density(), "attempts", attempt)

			return m, nil
		}
		o.Logger.Debug("map not connected, retrying", "attempt", attempt)
	}

	return nil, fmt.Errorf("%w: %d attempts", ErrNotConnected, o.MaxAttempts)
}

func validate(locations int, density float64, bidirectional bool) error {
	if locations < MinLocations {
		return fmt.Errorf("%w: %d, need at least %d", ErrTooFewLocations, locations, MinLocations)
	}
	if density < 0 || density > 1 {
		return fmt.Errorf("%w: %g", ErrDensityRange, density)
	}
	if minimum := MinimumDensity(locations, bidirectional); density < minimum {
		return fmt.Errorf("%w: %g, need at least %g", ErrDensityTooLow, density, minimum)
	}

	return nil
}

// ExpectedEdges is the directed edge budget for a map: density·n·(n−1)/2,
// doubled for bidirectional maps.
func ExpectedEdges(n int, density float64, bidirectional bool) int {
	e := int(density * float64(n) * float64(n-1) / 2)
	if bidirectional {
		e *= 2
	}

	return e
}

type generator struct {
	n        int
	density  float64
	expected int
	opts     Options
}

// attempt builds one candidate. The backbone, when enabled, is laid first;
// the remaining pairs are then visited in random order and linked with
// probability density until the edge budget is spent.
func (g *generator) attempt(places []Location) *network.Network[Location] {
	net := network.New[Location](network.WithCapacity(g.n))
	for _, p := range places {
		net.AddVertex(p)
	}

	rng := g.opts.Rand
	edges := 0
	if g.opts.Backbone {
		perm := rng.Perm(g.n)
		for k := 0; k < g.n; k++ {
			if g.opts.Bidirectional && k == g.n-1 {
				break
			}
			edges += g.link(net, rng, perm[k], perm[(k+1)%g.n], true)
		}
	}

	pairs := make([][2]int, 0, g.n*(g.n-1)/2)
	for i := 0; i < g.n; i++ {
		for j := i + 1; j < g.n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	rng.Shuffle(len(pairs), func(x, y int) { pairs[x], pairs[y] = pairs[y], pairs[x] })

	for _, p := range pairs {
		if edges >= g.expected {
			break
		}
		i, j := p[0], p[1]
		if net.HasEdge(i, j) || net.HasEdge(j, i) || rng.Float64() >= g.density {
			continue
		}
		edges += g.link(net, rng, i, j, false)
	}

	return net
}

// link joins a and b and returns the number of directed edges added. A
// backbone link always adds a→b; otherwise one-way maps add each direction
// with probability 2/3.
func (g *generator) link(net *network.Network[Location], rng *rand.Rand, a, b int, backbone bool) int {
	d := float64(rng.IntN(MaxDistance-MinDistance+1) + MinDistance)
	if g.opts.Bidirectional {
		_ = net.AddEdge(a, b, d)
		_ = net.AddEdge(b, a, d)

		return 2
	}

	added := 0
	if backbone || rng.IntN(3) > 0 {
		_ = net.AddEdge(a, b, d)
		added++
	}
	if rng.IntN(3) > 0 {
		_ = net.AddEdge(b, a, d)
		added++
	}

	return added
}

// Bidirectional reports whether the map was generated with two-way edges.
func (m *Map) Bidirectional() bool { return m.bidirectional }

// RequestedDensity returns the density New was called with.
func (m *Map) RequestedDensity() float64 { return m.requested }

// Density is the share of pairs i < j with an edge i→j.
func (m *Map) Density() float64 {
	n := m.Order()
	if n < 2 {
		return 0
	}
	linked := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.HasEdge(i, j) {
				linked++
			}
		}
	}

	return float64(linked) / float64(n*(n-1)/2)
}

// Edges counts directed edges between distinct locations.
func (m *Map) Edges() int {
	n := m.Order()
	count := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && m.HasEdge(i, j) {
				count++
			}
		}
	}

	return count
}

// Location returns the location with the given ID.
func (m *Map) Location(id int) (Location, error) {
	for _, l := range m.Vertices() {
		if l.ID == id {
			return l, nil
		}
	}

	return Location{}, fmt.Errorf("%w: id %d", ErrLocationNotFound, id)
}

// IndexOfID returns the vertex index of the location with the given ID, or -1.
func (m *Map) IndexOfID(id int) int {
	l, err := m.Location(id)
	if err != nil {
		return -1
	}

	return m.IndexOf(l)
}

// Wrap adopts an existing network as a map, for instance one restored from
// a snapshot. The map counts as bidirectional when every edge has a reverse
// of equal weight.
func Wrap(net *network.Network[Location], logger *slog.Logger) *Map {
	m := &Map{Network: net, bidirectional: symmetric(net)}
	m.requested = m.Density()
	if logger != nil {
		logger.Debug("map adopted", "locations", net.Order(), "edges", m.Edges(), "bidirectional", m.bidirectional)
	}

	return m
}

func symmetric(v network.View) bool {
	n := v.Order()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if v.Weight(i, j) != v.Weight(j, i) {
				return false
			}
		}
	}

	return true
}
