package availability

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// DefaultCacheTTL is how long a fetched availability result stays fresh.
const DefaultCacheTTL = 5 * time.Minute

type DateStatus string

const (
	StatusAvailable DateStatus = "available"
	StatusSoldOut   DateStatus = "soldOut"
	StatusUnknown   DateStatus = "unknown"
)

// Resolver is the upstream the cache wraps; satisfied by *Service.
type Resolver interface {
	ResolveDates(ctx context.Context, start, end string, participants int) (*DatesResult, error)
	ResolveRooms(ctx context.Context, start, end string, participants int) (*RoomsResult, error)
}

type datesEntry struct {
	result    *DatesResult
	fetchedAt time.Time
}

type roomsEntry struct {
	result    *RoomsResult
	fetchedAt time.Time
}

type inflightCall struct {
	done  chan struct{}
	dates *DatesResult
	rooms *RoomsResult
	err   error
}

// Cache memoizes resolver results per (dates, participants) key with a TTL.
// Concurrent fetches for the same key share one resolver call. Each instance
// owns its state; construct a fresh one per consumer rather than sharing a
// package global.
type Cache struct {
	resolver Resolver
	ttl      time.Duration
	now      func() time.Time

	mu       sync.Mutex
	dates    map[string]datesEntry
	rooms    map[string]roomsEntry
	inflight map[string]*inflightCall

	// lastDays backs the tri-state date queries: the most recently fetched
	// per-day results, keyed by date string.
	lastDays map[string]DateAvailability
}

type CacheOption func(*Cache)

func WithTTL(ttl time.Duration) CacheOption {
	return func(c *Cache) { c.ttl = ttl }
}

// WithClock substitutes the time source, for tests.
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) { c.now = now }
}

func NewCache(resolver Resolver, opts ...CacheOption) *Cache {
	c := &Cache{
		resolver: resolver,
		ttl:      DefaultCacheTTL,
		now:      time.Now,
		dates:    make(map[string]datesEntry),
		rooms:    make(map[string]roomsEntry),
		inflight: make(map[string]*inflightCall),
		lastDays: make(map[string]DateAvailability),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TTL reports the configured freshness window.
func (c *Cache) TTL() time.Duration { return c.ttl }

// FetchDates returns the cached per-day availability for the key when fresh,
// otherwise resolves and stores it. A second caller arriving while the first
// resolve is in flight waits for that result instead of issuing its own.
func (c *Cache) FetchDates(ctx context.Context, start, end string, participants int) (*DatesResult, error) {
	key := fmt.Sprintf("dates|%s|%s|%d", start, end, participants)

	c.mu.Lock()
	if e, ok := c.dates[key]; ok && c.fresh(e.fetchedAt) {
		c.mu.Unlock()
		return e.result, nil
	}
	if call, ok := c.inflight[key]; ok {
		c.mu.Unlock()
		select {
		case <-call.done:
			return call.dates, call.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	call := &inflightCall{done: make(chan struct{})}
	c.inflight[key] = call
	c.mu.Unlock()

	result, err := c.resolver.ResolveDates(ctx, start, end, participants)
	call.dates = result
	call.err = err

	c.mu.Lock()
	delete(c.inflight, key)
	if err == nil && ctx.Err() == nil {
		c.dates[key] = datesEntry{result: result, fetchedAt: c.now()}
		for _, day := range result.Days {
			c.lastDays[day.Date] = day
		}
	}
	c.mu.Unlock()
	close(call.done)

	return result, err
}

// FetchRooms is FetchDates for the per-room resolver.
func (c *Cache) FetchRooms(ctx context.Context, start, end string, participants int) (*RoomsResult, error) {
	key := fmt.Sprintf("rooms|%s|%s|%d", start, end, participants)

	c.mu.Lock()
	if e, ok := c.rooms[key]; ok && c.fresh(e.fetchedAt) {
		c.mu.Unlock()
		return e.result, nil
	}
	if call, ok := c.inflight[key]; ok {
		c.mu.Unlock()
		select {
		case <-call.done:
			return call.rooms, call.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	call := &inflightCall{done: make(chan struct{})}
	c.inflight[key] = call
	c.mu.Unlock()

	result, err := c.resolver.ResolveRooms(ctx, start, end, participants)
	call.rooms = result
	call.err = err

	c.mu.Lock()
	delete(c.inflight, key)
	if err == nil && ctx.Err() == nil {
		c.rooms[key] = roomsEntry{result: result, fetchedAt: c.now()}
	}
	c.mu.Unlock()
	close(call.done)

	return result, err
}

// DateStatus reports the tri-state status of a single date from previously
// fetched data. Dates never fetched are StatusUnknown — distinct from an
// explicit sold-out answer.
func (c *Cache) DateStatus(date string) DateStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	day, ok := c.lastDays[date]
	if !ok {
		return StatusUnknown
	}
	if day.Available {
		return StatusAvailable
	}
	return StatusSoldOut
}

func (c *Cache) IsDateAvailable(date string) bool {
	return c.DateStatus(date) == StatusAvailable
}

func (c *Cache) IsDateSoldOut(date string) bool {
	return c.DateStatus(date) == StatusSoldOut
}

// RangeDay is a day derived purely from cached data.
type RangeDay struct {
	Date      string     `json:"date"`
	Status    DateStatus `json:"status"`
	Remaining int        `json:"remaining"`
}

// RangeStatus derives day-by-day status for a window without touching the
// resolver. Days not in the cache come back as unknown with zero remaining.
func (c *Cache) RangeStatus(startStr, endStr string) ([]RangeDay, error) {
	start, end, err := parseRange(startStr, endStr)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var out []RangeDay
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(DateLayout)
		day, ok := c.lastDays[key]
		if !ok {
			out = append(out, RangeDay{Date: key, Status: StatusUnknown, Remaining: 0})
			continue
		}
		status := StatusSoldOut
		if day.Available {
			status = StatusAvailable
		}
		out = append(out, RangeDay{Date: key, Status: status, Remaining: day.Remaining})
	}
	return out, nil
}

// Clear drops every cached entry and the per-day index.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dates = make(map[string]datesEntry)
	c.rooms = make(map[string]roomsEntry)
	c.lastDays = make(map[string]DateAvailability)
}

func (c *Cache) fresh(fetchedAt time.Time) bool {
	return c.now().Sub(fetchedAt) < c.ttl
}
