package availability

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeResolver counts calls and replays canned results; a blocking variant
// gates the first resolve so tests can pile up concurrent callers.
type fakeResolver struct {
	datesCalls int32
	roomsCalls int32
	dates      *DatesResult
	rooms      *RoomsResult
	err        error
	block      chan struct{}
}

func (f *fakeResolver) ResolveDates(ctx context.Context, start, end string, participants int) (*DatesResult, error) {
	atomic.AddInt32(&f.datesCalls, 1)
	if f.block != nil {
		<-f.block
	}
	return f.dates, f.err
}

func (f *fakeResolver) ResolveRooms(ctx context.Context, start, end string, participants int) (*RoomsResult, error) {
	atomic.AddInt32(&f.roomsCalls, 1)
	if f.block != nil {
		<-f.block
	}
	return f.rooms, f.err
}

func cannedDates() *DatesResult {
	return &DatesResult{
		Days: []DateAvailability{
			{Date: "2026-06-01", Available: true, Capacity: 10, Booked: 2, Remaining: 8},
			{Date: "2026-06-02", Available: false, Capacity: 10, Booked: 10, Remaining: 0},
		},
		Summary: Summary{TotalDays: 2, AvailableDays: 1, SoldOutDays: 1},
	}
}

func TestCache_FreshEntrySkipsResolver(t *testing.T) {
	resolver := &fakeResolver{dates: cannedDates()}

	now := day("2026-05-01")
	cache := NewCache(resolver, WithClock(func() time.Time { return now }))

	first, err := cache.FetchDates(context.Background(), "2026-06-01", "2026-06-02", 1)
	assert.NoError(t, err)

	// Just inside the freshness window.
	now = now.Add(DefaultCacheTTL - time.Second)
	second, err := cache.FetchDates(context.Background(), "2026-06-01", "2026-06-02", 1)
	assert.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&resolver.datesCalls))
}

func TestCache_ExpiredEntryRefetches(t *testing.T) {
	resolver := &fakeResolver{dates: cannedDates()}

	now := day("2026-05-01")
	cache := NewCache(resolver, WithClock(func() time.Time { return now }))

	_, err := cache.FetchDates(context.Background(), "2026-06-01", "2026-06-02", 1)
	assert.NoError(t, err)

	now = now.Add(DefaultCacheTTL + time.Second)
	_, err = cache.FetchDates(context.Background(), "2026-06-01", "2026-06-02", 1)
	assert.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&resolver.datesCalls))
}

func TestCache_KeyIncludesParticipants(t *testing.T) {
	resolver := &fakeResolver{dates: cannedDates()}
	cache := NewCache(resolver)

	_, _ = cache.FetchDates(context.Background(), "2026-06-01", "2026-06-02", 1)
	_, _ = cache.FetchDates(context.Background(), "2026-06-01", "2026-06-02", 2)

	assert.Equal(t, int32(2), atomic.LoadInt32(&resolver.datesCalls),
		"different party sizes are different cache entries")
}

func TestCache_ErrorIsNotCached(t *testing.T) {
	resolver := &fakeResolver{err: errors.New("resolver down")}
	cache := NewCache(resolver)

	_, err := cache.FetchDates(context.Background(), "2026-06-01", "2026-06-02", 1)
	assert.Error(t, err)

	resolver.err = nil
	resolver.dates = cannedDates()
	result, err := cache.FetchDates(context.Background(), "2026-06-01", "2026-06-02", 1)
	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, int32(2), atomic.LoadInt32(&resolver.datesCalls))
}

func TestCache_InflightDeduplication(t *testing.T) {
	resolver := &fakeResolver{dates: cannedDates(), block: make(chan struct{})}
	cache := NewCache(resolver)

	const callers = 5
	var wg sync.WaitGroup
	results := make([]*DatesResult, callers)
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = cache.FetchDates(context.Background(), "2026-06-01", "2026-06-02", 1)
		}(i)
	}

	// Give the goroutines time to reach the cache before releasing the
	// resolver.
	time.Sleep(50 * time.Millisecond)
	close(resolver.block)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&resolver.datesCalls),
		"concurrent callers share one resolver call")
	for i := 0; i < callers; i++ {
		assert.NoError(t, errs[i])
		assert.NotNil(t, results[i])
	}
}

func TestCache_TriStateDateStatus(t *testing.T) {
	resolver := &fakeResolver{dates: cannedDates()}
	cache := NewCache(resolver)

	assert.Equal(t, StatusUnknown, cache.DateStatus("2026-06-01"),
		"nothing fetched yet")

	_, err := cache.FetchDates(context.Background(), "2026-06-01", "2026-06-02", 1)
	assert.NoError(t, err)

	assert.Equal(t, StatusAvailable, cache.DateStatus("2026-06-01"))
	assert.Equal(t, StatusSoldOut, cache.DateStatus("2026-06-02"))
	assert.Equal(t, StatusUnknown, cache.DateStatus("2099-01-01"))

	assert.True(t, cache.IsDateAvailable("2026-06-01"))
	assert.False(t, cache.IsDateAvailable("2026-06-02"))
	assert.True(t, cache.IsDateSoldOut("2026-06-02"))
	assert.False(t, cache.IsDateSoldOut("2099-01-01"),
		"unknown is not sold out")
}

func TestCache_RangeStatus(t *testing.T) {
	resolver := &fakeResolver{dates: cannedDates()}
	cache := NewCache(resolver)

	_, err := cache.FetchDates(context.Background(), "2026-06-01", "2026-06-02", 1)
	assert.NoError(t, err)

	days, err := cache.RangeStatus("2026-06-01", "2026-06-04")
	assert.NoError(t, err)
	assert.Len(t, days, 4)

	assert.Equal(t, StatusAvailable, days[0].Status)
	assert.Equal(t, 8, days[0].Remaining)
	assert.Equal(t, StatusSoldOut, days[1].Status)
	assert.Equal(t, StatusUnknown, days[2].Status)
	assert.Equal(t, 0, days[2].Remaining)
	assert.Equal(t, StatusUnknown, days[3].Status)

	_, err = cache.RangeStatus("2026-06-04", "2026-06-01")
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestCache_Clear(t *testing.T) {
	resolver := &fakeResolver{dates: cannedDates()}
	cache := NewCache(resolver)

	_, err := cache.FetchDates(context.Background(), "2026-06-01", "2026-06-02", 1)
	assert.NoError(t, err)
	assert.Equal(t, StatusAvailable, cache.DateStatus("2026-06-01"))

	cache.Clear()

	assert.Equal(t, StatusUnknown, cache.DateStatus("2026-06-01"))
	_, err = cache.FetchDates(context.Background(), "2026-06-01", "2026-06-02", 1)
	assert.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&resolver.datesCalls))
}

func TestCache_RoomsTTLOption(t *testing.T) {
	resolver := &fakeResolver{rooms: &RoomsResult{Rooms: []AvailableRoom{{ID: 1, Name: "Dorm"}}}}

	now := day("2026-05-01")
	cache := NewCache(resolver,
		WithTTL(time.Minute),
		WithClock(func() time.Time { return now }))

	assert.Equal(t, time.Minute, cache.TTL())

	_, err := cache.FetchRooms(context.Background(), "2026-06-01", "2026-06-02", 2)
	assert.NoError(t, err)

	now = now.Add(30 * time.Second)
	_, err = cache.FetchRooms(context.Background(), "2026-06-01", "2026-06-02", 2)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&resolver.roomsCalls))

	now = now.Add(31 * time.Second)
	_, err = cache.FetchRooms(context.Background(), "2026-06-01", "2026-06-02", 2)
	assert.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&resolver.roomsCalls))
}
