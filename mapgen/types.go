// Package mapgen generates random capture-the-flag maps on top of a
// network.Network[Location].
//
// A map has at least five locations. Every edge is a distance in
// kilometres, an integer in [1, 15]. Bidirectional maps join each linked
// pair both ways with the same distance; one-way maps add each direction of
// a linked pair independently with probability 2/3.
//
// Density is the share of location pairs i < j with an edge i→j. The
// requested density must be at least MinimumDensity, enough pairs for a
// spanning backbone. Unless WithoutBackbone is given, each attempt lays a
// random spanning path (or cycle, for one-way maps) before the random fill.
// A generated map is always strongly connected: every
// location reaches every other. Attempts that fail the check are retried
// up to WithMaxAttempts times before New returns ErrNotConnected.
package mapgen

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
)

var (
	// ErrTooFewLocations indicates fewer than MinLocations locations.
	ErrTooFewLocations = errors.New("mapgen: too few locations")

	// ErrDensityRange indicates a density outside [0, 1].
	ErrDensityRange = errors.New("mapgen: density must be between 0 and 1")

	// ErrDensityTooLow indicates a density below MinimumDensity.
	ErrDensityTooLow = errors.New("mapgen: density too low for a connected map")

	// ErrNotConnected is returned when no attempt produced a connected map.
	ErrNotConnected = errors.New("mapgen: generated map is not connected")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("mapgen: invalid option supplied")

	// ErrLocationNotFound is returned by Map.Location for an unknown ID.
	ErrLocationNotFound = errors.New("mapgen: location not found")
)

const (
	// MinLocations is the smallest map New accepts.
	MinLocations = 5

	// MinDistance and MaxDistance bound edge weights, in kilometres.
	MinDistance = 1
	MaxDistance = 15

	// DefaultMaxAttempts bounds connectivity retries.
	DefaultMaxAttempts = 100
)

// Location is a vertex of a map.
type Location struct {
	ID   int
	Name string
}

// NewLocation returns the location with the conventional name "Local <id>".
func NewLocation(id int) Location {
	return Location{ID: id, Name: fmt.Sprintf("Local %d", id)}
}

// String returns the location name.
func (l Location) String() string { return l.Name }

// ParseLocation rebuilds a Location from its saved name. Names not of the
// form "Local <id>" keep the vertex index as ID.
func ParseLocation(index int, value string) (Location, error) {
	var id int
	if _, err := fmt.Sscanf(value, "Local %d", &id); err != nil {
		return Location{ID: index, Name: value}, nil
	}

	return Location{ID: id, Name: value}, nil
}

// IDSource hands out location IDs.
type IDSource func() int

// Counter returns an IDSource yielding first, first+1, ...
func Counter(first int) IDSource {
	next := first

	return func() int {
		id := next
		next++

		return id
	}
}

// MinimumDensity is the least density New accepts for n locations.
func MinimumDensity(n int, bidirectional bool) float64 {
	if n <= 1 {
		return 0
	}
	if bidirectional {
		return 2.0 / float64(n-1)
	}

	return 1.0 / float64(n-1)
}

// Option configures New.
type Option func(*Options)

// Options holds generation tunables.
type Options struct {
	Bidirectional bool
	Backbone      bool
	MaxAttempts   int
	Rand          *rand.Rand
	IDs           IDSource
	Logger        *slog.Logger

	err error
}

// DefaultOptions returns one-way maps with a backbone, DefaultMaxAttempts
// retries, an unseeded PCG source, IDs counting from 0 and slog.Default().
func DefaultOptions() Options {
	return Options{
		Backbone:    true,
		MaxAttempts: DefaultMaxAttempts,
		Rand:        rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		IDs:         Counter(0),
		Logger:      slog.Default(),
	}
}

// WithBidirectional selects two-way edges.
func WithBidirectional(b bool) Option {
	return func(o *Options) { o.Bidirectional = b }
}

// WithoutBackbone links pairs purely at random. Connectivity is then left
// to chance and low densities may exhaust WithMaxAttempts.
func WithoutBackbone() Option {
	return func(o *Options) { o.Backbone = false }
}

// WithMaxAttempts bounds connectivity retries. n < 1 is an ErrOptionViolation.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: max attempts must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxAttempts = n
	}
}

// WithSeed makes generation reproducible.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Rand = rand.New(rand.NewPCG(seed, seed>>1|1)) }
}

// WithRand sets the random source. nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithIDs sets the source of location IDs. nil is ignored.
func WithIDs(ids IDSource) Option {
	return func(o *Options) {
		if ids != nil {
			o.IDs = ids
		}
	}
}

// WithLogger sets the logger for generation progress. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
