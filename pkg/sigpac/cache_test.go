package sigpac

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParcel(parcel int) *Parcel {
	return &Parcel{
		geometry: box(0, 0, 1, 1),
		crs:      DefaultCRS,
		summary: Summary{
			ParcelInfo: ParcelInfo{Parcel: parcel},
			Query:      make([]QueryEntry, 1),
			LandUses:   make([]LandUseArea, 1),
		},
	}
}

// testParcel size: 512 + 5 vertices * 16 + 2 records * 256.
const testParcelSize = 512 + 5*16 + 2*256

func TestCacheBasic(t *testing.T) {
	cache := NewParcelCache(1024 * 1024)
	assert.Equal(t, 0, cache.Stats().ParcelCount)

	loads := 0
	p, err := cache.Get("29008A008005720000EQ", func() (*Parcel, error) {
		loads++
		return testParcel(572), nil
	})
	require.NoError(t, err)
	assert.Equal(t, 572, p.Summary().ParcelInfo.Parcel)

	p, err = cache.Get("29008A008005720000EQ", func() (*Parcel, error) {
		loads++
		return testParcel(1), nil
	})
	require.NoError(t, err)
	assert.Equal(t, 572, p.Summary().ParcelInfo.Parcel, "cached parcel returned")
	assert.Equal(t, 1, loads)

	stats := cache.Stats()
	assert.Equal(t, 1, stats.ParcelCount)
	assert.Equal(t, 1, stats.Hits)
	assert.Equal(t, 1, stats.Misses)
	assert.Equal(t, int64(testParcelSize), stats.UsedMemory)
}

func TestCacheLoaderError(t *testing.T) {
	cache := NewParcelCache(0)
	boom := errors.New("registry unavailable")

	_, err := cache.Get("x", func() (*Parcel, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, cache.Stats().ParcelCount)
}

func TestCacheEviction(t *testing.T) {
	cache := NewParcelCache(3 * testParcelSize)

	for i := 0; i < 10; i++ {
		_, err := cache.Get(fmt.Sprint(i), func() (*Parcel, error) {
			return testParcel(i), nil
		})
		require.NoError(t, err)
	}

	stats := cache.Stats()
	assert.Equal(t, 3, stats.ParcelCount)
	assert.LessOrEqual(t, stats.UsedMemory, stats.MaxMemory)

	// Most recent entries survive.
	_, err := cache.Get("9", func() (*Parcel, error) {
		return testParcel(-1), nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Stats().Hits)
}

func TestCacheLRUOrder(t *testing.T) {
	cache := NewParcelCache(2 * testParcelSize)

	require.NoError(t, cache.Add("a", testParcel(1)))
	require.NoError(t, cache.Add("b", testParcel(2)))

	// Touch a so b becomes least recently used.
	_, err := cache.Get("a", nil)
	require.NoError(t, err)

	require.NoError(t, cache.Add("c", testParcel(3)))

	loaded := false
	_, err = cache.Get("b", func() (*Parcel, error) {
		loaded = true
		return testParcel(2), nil
	})
	require.NoError(t, err)
	assert.True(t, loaded, "b should have been evicted")
}

func TestCacheTooLarge(t *testing.T) {
	cache := NewParcelCache(100)

	err := cache.Add("big", testParcel(1))
	assert.Error(t, err)

	// Get still returns the parcel.
	p, err := cache.Get("big", func() (*Parcel, error) { return testParcel(7), nil })
	require.NoError(t, err)
	assert.Equal(t, 7, p.Summary().ParcelInfo.Parcel)
	assert.Equal(t, 0, cache.Stats().ParcelCount)
}

func TestCacheRemoveAndClear(t *testing.T) {
	cache := NewParcelCache(0)
	require.NoError(t, cache.Add("a", testParcel(1)))
	require.NoError(t, cache.Add("b", testParcel(2)))

	cache.Remove("a")
	cache.Remove("missing")
	assert.Equal(t, 1, cache.Stats().ParcelCount)
	assert.Equal(t, int64(testParcelSize), cache.Stats().UsedMemory)

	cache.Clear()
	assert.Equal(t, 0, cache.Stats().ParcelCount)
	assert.Equal(t, int64(0), cache.Stats().UsedMemory)
}

func TestCacheReplace(t *testing.T) {
	cache := NewParcelCache(0)
	require.NoError(t, cache.Add("a", testParcel(1)))

	bigger := testParcel(2)
	bigger.geometry = orb.MultiPolygon{box(0, 0, 1, 1), box(2, 2, 3, 3)}
	require.NoError(t, cache.Add("a", bigger))

	assert.Equal(t, 1, cache.Stats().ParcelCount)
	assert.Equal(t, int64(testParcelSize+5*16), cache.Stats().UsedMemory)
}

func TestCacheConcurrent(t *testing.T) {
	cache := NewParcelCache(5 * testParcelSize)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				key := fmt.Sprint(i % 10)
				_, err := cache.Get(key, func() (*Parcel, error) {
					return testParcel(i), nil
				})
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, cache.Stats().ParcelCount, 5)
}
