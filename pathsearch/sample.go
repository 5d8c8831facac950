package pathsearch

import (
	"context"
	"fmt"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/netpath/network"
)

// snapshotter is implemented by *network.Network[T] for any T.
type snapshotter interface {
	Snapshot() *network.Matrix
}

// Sample runs Randomized `runs` times from start to target, in parallel on up
// to Options.Workers goroutines. Each run owns its random stream; with
// WithSeed the streams are derived from (seed, run index) and the returned
// slice is reproducible. A *network.Network is snapshotted once before the
// runs start, so concurrent mutation cannot affect them.
//
// Cancelling ctx stops scheduling new runs and returns ctx.Err().
// Invalid options return ErrOptionViolation.
func Sample(ctx context.Context, g network.View, start, target, runs int, opts ...Option) ([]Result, error) {
	o := buildOptions(opts)
	if o.err != nil {
		return nil, o.err
	}
	if runs < 0 {
		return nil, fmt.Errorf("%w: runs must be non-negative (%d)", ErrOptionViolation, runs)
	}
	if s, ok := g.(snapshotter); ok {
		g = s.Snapshot()
	}

	results := make([]Result, runs)
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)

	for k := 0; k < runs; k++ {
		if gctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var src *rand.Rand
			if o.HasSeed {
				src = rand.New(rand.NewPCG(o.Seed, uint64(k)+1))
			} else {
				src = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
			}
			results[k] = Randomized(g, start, target, WithRand(src))

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
