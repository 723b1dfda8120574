package sigpac

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// AggregateParallel aggregates many registry responses, one parcel per
// payload. Results keep input order; a payload that failed leaves a nil
// entry when opts.SkipErrors is set.
//
// Without SkipErrors the first failure stops the batch: payloads not yet
// started are skipped and the failure is returned as the only error.
//
// Example:
//
//	parcels, errs := sigpac.AggregateParallel(bodies, agg, sigpac.BatchOptions{
//	    Parallel:   true,
//	    Workers:    8,
//	    SkipErrors: true,
//	    Progress: func(done, total int) {
//	        fmt.Printf("\rAggregating: %d/%d", done, total)
//	    },
//	})
func AggregateParallel(payloads [][]byte, agg Aggregator, opts BatchOptions) ([]*Parcel, []error) {
	if len(payloads) == 0 {
		return []*Parcel{}, nil
	}

	if !opts.Parallel {
		return aggregateSerial(payloads, agg, opts)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		mu   sync.Mutex
		errs []error
		done int
	)
	parcels := make([]*Parcel, len(payloads))

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)

	for i := range payloads {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			parcel, err := agg.AggregateGeoJSON(payloads[i])

			mu.Lock()
			defer mu.Unlock()

			done++
			if opts.Progress != nil {
				opts.Progress(done, len(payloads))
			}

			if err != nil {
				err = fmt.Errorf("payload %d: %w", i, err)
				if opts.ErrorLog != nil {
					fmt.Fprintf(opts.ErrorLog, "Error aggregating parcel: %v\n", err)
				}
				if !opts.SkipErrors {
					return err
				}
				errs = append(errs, err)
				return nil
			}

			parcels[i] = parcel
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, []error{err}
	}
	return parcels, errs
}

func aggregateSerial(payloads [][]byte, agg Aggregator, opts BatchOptions) ([]*Parcel, []error) {
	parcels := make([]*Parcel, len(payloads))
	var errs []error

	for i, payload := range payloads {
		parcel, err := agg.AggregateGeoJSON(payload)
		if opts.Progress != nil {
			opts.Progress(i+1, len(payloads))
		}

		if err != nil {
			err = fmt.Errorf("payload %d: %w", i, err)
			if opts.ErrorLog != nil {
				fmt.Fprintf(opts.ErrorLog, "Error aggregating parcel: %v\n", err)
			}
			if !opts.SkipErrors {
				return nil, []error{err}
			}
			errs = append(errs, err)
			continue
		}

		parcels[i] = parcel
	}

	return parcels, errs
}
