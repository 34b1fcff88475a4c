package advanced

import (
	"runtime"

	"github.com/paulmach/orb"
	"golang.org/x/sync/errgroup"
)

// SplitMultiPolygon runs the single polygon pipeline over every member of mp
// and concatenates the fragments in input order. Members share no state, so
// they are processed concurrently. One failing member fails the whole call;
// with several failures the one earliest in input order wins, which keeps the
// reported error deterministic regardless of scheduling.
func SplitMultiPolygon(mp orb.MultiPolygon, o *Options) orb.MultiPolygon {
	results := make([]orb.MultiPolygon, len(mp))
	errs := make([]error, len(mp))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range mp {
		i := i // import into inner scope
		g.Go(func() error {
			// Thrown errors cannot unwind across a goroutine boundary, so
			// each worker recovers its own and parks it by member index.
			defer func() {
				errs[i] = HandleSplitPanicRecover(recover())
			}()
			results[i] = SplitPolygon(mp[i], o)
			return nil
		})
	}
	_ = g.Wait() // the group's own pick is first-to-finish; errs keeps input order

	for _, err := range errs {
		if err != nil {
			rethrow(err)
		}
	}

	fragments := make(orb.MultiPolygon, 0, len(mp))
	for _, r := range results {
		fragments = append(fragments, r...)
	}
	return fragments
}
