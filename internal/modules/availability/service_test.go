package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"heiwahouse/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetActive(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) GetOverlapping(ctx context.Context, start, end time.Time) ([]domain.RoomAssignment, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RoomAssignment), args.Error(1)
}

func day(s string) time.Time {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func spanAssignments(roomID int64, n int, checkIn, checkOut string) []domain.RoomAssignment {
	out := make([]domain.RoomAssignment, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.RoomAssignment{
			RoomID:   roomID,
			CheckIn:  day(checkIn),
			CheckOut: day(checkOut),
		})
	}
	return out
}

func TestResolveDates_SoldOutDay(t *testing.T) {
	rooms := new(MockRoomRepository)
	assignments := new(MockAssignmentRepository)

	rooms.On("GetActive", mock.Anything).Return([]domain.Room{
		{ID: 1, Capacity: 10, IsActive: true},
	}, nil)
	assignments.On("GetOverlapping", mock.Anything, mock.Anything, mock.Anything).
		Return(spanAssignments(1, 10, "2026-06-01", "2026-06-02"), nil)

	service := NewService(rooms, assignments, false)

	result, err := service.ResolveDates(context.Background(), "2026-06-01", "2026-06-03", 1)

	assert.NoError(t, err)
	assert.False(t, result.Fallback)
	assert.Len(t, result.Days, 3)

	assert.Equal(t, "2026-06-01", result.Days[0].Date)
	assert.False(t, result.Days[0].Available)
	assert.Equal(t, 10, result.Days[0].Booked)
	assert.Equal(t, 0, result.Days[0].Remaining)

	// Check-out day is free under the half-open interval.
	assert.True(t, result.Days[1].Available)
	assert.Equal(t, 0, result.Days[1].Booked)
	assert.Equal(t, 10, result.Days[1].Remaining)

	assert.Equal(t, 3, result.Summary.TotalDays)
	assert.Equal(t, 2, result.Summary.AvailableDays)
	assert.Equal(t, 1, result.Summary.SoldOutDays)
}

func TestResolveDates_ParticipantsThreshold(t *testing.T) {
	rooms := new(MockRoomRepository)
	assignments := new(MockAssignmentRepository)

	rooms.On("GetActive", mock.Anything).Return([]domain.Room{
		{ID: 1, Capacity: 4, IsActive: true},
	}, nil)
	assignments.On("GetOverlapping", mock.Anything, mock.Anything, mock.Anything).
		Return(spanAssignments(1, 2, "2026-06-01", "2026-06-03"), nil)

	service := NewService(rooms, assignments, false)

	result, err := service.ResolveDates(context.Background(), "2026-06-01", "2026-06-02", 3)

	assert.NoError(t, err)
	assert.False(t, result.Days[0].Available, "two beds left cannot take three participants")
	assert.Equal(t, 2, result.Days[0].Remaining)
}

func TestResolveDates_InvalidRange(t *testing.T) {
	service := NewService(new(MockRoomRepository), new(MockAssignmentRepository), false)

	_, err := service.ResolveDates(context.Background(), "2026-06-03", "2026-06-01", 1)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = service.ResolveDates(context.Background(), "not-a-date", "2026-06-01", 1)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = service.ResolveDates(context.Background(), "2026-06-01", "2026-06-01", 1)
	assert.ErrorIs(t, err, ErrInvalidRange, "equal dates are rejected")
}

func TestResolveDates_FallbackOnStoreFailure(t *testing.T) {
	rooms := new(MockRoomRepository)
	assignments := new(MockAssignmentRepository)

	rooms.On("GetActive", mock.Anything).Return(nil, errors.New("connection refused"))

	service := NewService(rooms, assignments, false)

	result, err := service.ResolveDates(context.Background(), "2026-06-01", "2026-06-03", 1)

	assert.NoError(t, err)
	assert.True(t, result.Fallback, "degraded data must be flagged")
	assert.NotEmpty(t, result.Days, "fallback is never an empty result")
	assert.Equal(t, 3, result.Summary.TotalDays)
}

func TestResolveDates_FailLoudPropagates(t *testing.T) {
	rooms := new(MockRoomRepository)
	assignments := new(MockAssignmentRepository)

	storeErr := errors.New("connection refused")
	rooms.On("GetActive", mock.Anything).Return(nil, storeErr)

	service := NewService(rooms, assignments, true)

	_, err := service.ResolveDates(context.Background(), "2026-06-01", "2026-06-03", 1)

	assert.ErrorIs(t, err, storeErr)
}

func TestResolveDates_CancelledContextIsNotSoldOut(t *testing.T) {
	rooms := new(MockRoomRepository)
	assignments := new(MockAssignmentRepository)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rooms.On("GetActive", mock.Anything).Return(nil, ctx.Err())

	service := NewService(rooms, assignments, false)

	result, err := service.ResolveDates(ctx, "2026-06-01", "2026-06-03", 1)

	assert.Nil(t, result, "an abort is no result, not a fallback answer")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolveRooms_OrderAndCap(t *testing.T) {
	rooms := new(MockRoomRepository)
	assignments := new(MockAssignmentRepository)

	var catalog []domain.Room
	for i := int64(1); i <= 10; i++ {
		catalog = append(catalog, domain.Room{
			ID:       i,
			Capacity: int(i), // capacities 1..10
			IsActive: true,
			Pricing:  domain.RoomPricing{Standard: 100},
		})
	}
	rooms.On("GetActive", mock.Anything).Return(catalog, nil)
	assignments.On("GetOverlapping", mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.RoomAssignment{}, nil)

	service := NewService(rooms, assignments, false)

	result, err := service.ResolveRooms(context.Background(), "2026-06-01", "2026-06-05", 1)

	assert.NoError(t, err)
	assert.Len(t, result.Rooms, 8, "listing is capped")
	assert.Equal(t, int64(10), result.Rooms[0].ID, "largest remaining capacity first")
	assert.Equal(t, int64(3), result.Rooms[7].ID)
}

func TestResolveRooms_FiltersByRemainingCapacity(t *testing.T) {
	rooms := new(MockRoomRepository)
	assignments := new(MockAssignmentRepository)

	rooms.On("GetActive", mock.Anything).Return([]domain.Room{
		{ID: 1, Name: "Dorm", Capacity: 8, IsActive: true, Pricing: domain.RoomPricing{Standard: 45}},
		{ID: 2, Name: "Double", Capacity: 2, IsActive: true, Pricing: domain.RoomPricing{Standard: 110}},
	}, nil)
	// Both dorm beds and one double slot taken over the window.
	occupied := append(spanAssignments(1, 6, "2026-06-01", "2026-06-05"),
		spanAssignments(2, 1, "2026-06-02", "2026-06-04")...)
	assignments.On("GetOverlapping", mock.Anything, mock.Anything, mock.Anything).
		Return(occupied, nil)

	service := NewService(rooms, assignments, false)

	result, err := service.ResolveRooms(context.Background(), "2026-06-01", "2026-06-05", 2)

	assert.NoError(t, err)
	assert.Len(t, result.Rooms, 1)
	assert.Equal(t, int64(1), result.Rooms[0].ID, "only the dorm can still take two guests")
}

func TestResolveRooms_FallbackFlag(t *testing.T) {
	rooms := new(MockRoomRepository)
	assignments := new(MockAssignmentRepository)

	rooms.On("GetActive", mock.Anything).Return(nil, errors.New("timeout"))

	service := NewService(rooms, assignments, false)

	result, err := service.ResolveRooms(context.Background(), "2026-06-01", "2026-06-05", 1)

	assert.NoError(t, err)
	assert.True(t, result.Fallback)
	assert.NotEmpty(t, result.Rooms)
}

func TestCatalogRooms_MapsPricing(t *testing.T) {
	rooms := new(MockRoomRepository)
	assignments := new(MockAssignmentRepository)

	off := 38.0
	rooms.On("GetActive", mock.Anything).Return([]domain.Room{
		{
			ID:          1,
			Name:        "Ocean View Dorm",
			Capacity:    8,
			BookingType: domain.BookPerBed,
			IsActive:    true,
			Pricing: domain.RoomPricing{
				Standard:  45,
				OffSeason: &off,
			},
			Amenities: []string{"wifi"},
		},
	}, nil)

	service := NewService(rooms, assignments, false)

	result, err := service.CatalogRooms(context.Background())

	assert.NoError(t, err)
	assert.Len(t, result.Rooms, 1)
	assert.Equal(t, 45.0, result.Rooms[0].PricePerNight)
	assert.Equal(t, "perBed", result.Rooms[0].BookingType)
	assert.Equal(t, []string{"wifi"}, result.Rooms[0].Amenities)
}
