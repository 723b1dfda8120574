package sigpac

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batchPayloads() [][]byte {
	return [][]byte{
		[]byte(parcelBody),
		[]byte(`{"type":"FeatureCollection","features":[]}`),
		[]byte(parcelBody),
		[]byte(`not json`),
	}
}

func TestAggregateParallel(t *testing.T) {
	agg := NewAggregator(DefaultAggregateOptions())

	for _, parallel := range []bool{true, false} {
		var (
			mu    sync.Mutex
			calls []int
		)
		var errLog bytes.Buffer

		parcels, errs := AggregateParallel(batchPayloads(), agg, BatchOptions{
			Parallel:   parallel,
			Workers:    2,
			SkipErrors: true,
			Progress: func(done, total int) {
				mu.Lock()
				defer mu.Unlock()
				assert.Equal(t, 4, total)
				calls = append(calls, done)
			},
			ErrorLog: &errLog,
		})

		require.Len(t, parcels, 4, "parallel=%v", parallel)
		assert.NotNil(t, parcels[0])
		assert.Nil(t, parcels[1])
		assert.NotNil(t, parcels[2])
		assert.Nil(t, parcels[3])
		assert.Equal(t, 572, parcels[2].Summary().ParcelInfo.Parcel)

		require.Len(t, errs, 2)
		var noData *ErrNoData
		found := false
		for _, err := range errs {
			if errors.As(err, &noData) {
				found = true
			}
		}
		assert.True(t, found, "no-data error collected")

		assert.ElementsMatch(t, []int{1, 2, 3, 4}, calls)
		assert.Contains(t, errLog.String(), "Error aggregating parcel")
	}
}

func TestAggregateParallelStopsOnError(t *testing.T) {
	agg := NewAggregator(DefaultAggregateOptions())

	for _, parallel := range []bool{true, false} {
		parcels, errs := AggregateParallel(batchPayloads(), agg, BatchOptions{
			Parallel: parallel,
			Workers:  1,
		})
		assert.Nil(t, parcels)
		require.Len(t, errs, 1)
	}
}

func TestAggregateParallelSkipsAfterFailure(t *testing.T) {
	agg := NewAggregator(DefaultAggregateOptions())
	payloads := [][]byte{
		[]byte(`not json`),
		[]byte(parcelBody),
		[]byte(parcelBody),
		[]byte(parcelBody),
	}

	for _, parallel := range []bool{true, false} {
		var (
			mu      sync.Mutex
			started int
		)
		_, errs := AggregateParallel(payloads, agg, BatchOptions{
			Parallel: parallel,
			Workers:  1,
			Progress: func(done, total int) {
				mu.Lock()
				defer mu.Unlock()
				started++
			},
		})
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0].Error(), "payload 0")
		assert.Equal(t, 1, started, "parallel=%v", parallel)
	}
}

func TestAggregateParallelEmpty(t *testing.T) {
	parcels, errs := AggregateParallel(nil, NewAggregator(DefaultAggregateOptions()), DefaultBatchOptions())
	assert.Empty(t, parcels)
	assert.Empty(t, errs)
}
