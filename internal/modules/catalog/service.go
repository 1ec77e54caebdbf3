package catalog

import (
	"context"

	"heiwahouse/internal/domain"
	"heiwahouse/internal/pkg/validator"
	"heiwahouse/internal/repository"
)

// Service owns the bookable catalog: rooms, surf camps, and add-ons. The
// booking flow reads the catalog; only administrators mutate it.
type Service struct {
	rooms  *repository.RoomRepository
	camps  *repository.SurfCampRepository
	addOns *repository.AddOnRepository
}

func NewService(
	rooms *repository.RoomRepository,
	camps *repository.SurfCampRepository,
	addOns *repository.AddOnRepository,
) *Service {
	return &Service{rooms: rooms, camps: camps, addOns: addOns}
}

func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.GetActive(ctx)
}

func (s *Service) CreateRoom(ctx context.Context, req RoomRequest) (*domain.Room, error) {
	room := &domain.Room{
		Name:          req.Name,
		Description:   req.Description,
		Capacity:      req.Capacity,
		BookingType:   domain.BookingType(req.BookingType),
		Pricing:       req.Pricing,
		Amenities:     req.Amenities,
		FeaturedImage: req.FeaturedImage,
		IsActive:      true,
	}
	if req.IsActive != nil {
		room.IsActive = *req.IsActive
	}
	if fields := validator.Validate(room); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) UpdateRoom(ctx context.Context, id int64, req RoomRequest) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	room.Name = req.Name
	room.Description = req.Description
	room.Capacity = req.Capacity
	room.BookingType = domain.BookingType(req.BookingType)
	room.Pricing = req.Pricing
	room.Amenities = req.Amenities
	room.FeaturedImage = req.FeaturedImage
	if req.IsActive != nil {
		room.IsActive = *req.IsActive
	}
	if fields := validator.Validate(room); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) DeactivateRoom(ctx context.Context, id int64) error {
	return s.rooms.Deactivate(ctx, id)
}

func (s *Service) ListSurfCamps(ctx context.Context) ([]domain.SurfCamp, error) {
	return s.camps.GetActive(ctx)
}

func (s *Service) CreateSurfCamp(ctx context.Context, req SurfCampRequest) (*domain.SurfCamp, error) {
	camp := &domain.SurfCamp{
		Name:           req.Name,
		Description:    req.Description,
		BasePrice:      req.BasePrice,
		DurationNights: req.DurationNights,
		Capacity:       req.Capacity,
		IsActive:       true,
	}
	if req.IsActive != nil {
		camp.IsActive = *req.IsActive
	}
	if fields := validator.Validate(camp); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}
	if err := s.camps.Create(ctx, camp); err != nil {
		return nil, err
	}
	return camp, nil
}

func (s *Service) UpdateSurfCamp(ctx context.Context, id int64, req SurfCampRequest) (*domain.SurfCamp, error) {
	camp, err := s.camps.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	camp.Name = req.Name
	camp.Description = req.Description
	camp.BasePrice = req.BasePrice
	camp.DurationNights = req.DurationNights
	camp.Capacity = req.Capacity
	if req.IsActive != nil {
		camp.IsActive = *req.IsActive
	}
	if fields := validator.Validate(camp); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	if err := s.camps.Update(ctx, camp); err != nil {
		return nil, err
	}
	return camp, nil
}

func (s *Service) DeactivateSurfCamp(ctx context.Context, id int64) error {
	return s.camps.Deactivate(ctx, id)
}

func (s *Service) ListAddOns(ctx context.Context) ([]domain.AddOn, error) {
	return s.addOns.GetActive(ctx)
}

func (s *Service) CreateAddOn(ctx context.Context, req AddOnRequest) (*domain.AddOn, error) {
	addOn := &domain.AddOn{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		IsActive:    true,
	}
	if req.IsActive != nil {
		addOn.IsActive = *req.IsActive
	}
	if fields := validator.Validate(addOn); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}
	if err := s.addOns.Create(ctx, addOn); err != nil {
		return nil, err
	}
	return addOn, nil
}

func (s *Service) UpdateAddOn(ctx context.Context, id int64, req AddOnRequest) (*domain.AddOn, error) {
	addOn, err := s.addOns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	addOn.Name = req.Name
	addOn.Description = req.Description
	addOn.Price = req.Price
	if req.IsActive != nil {
		addOn.IsActive = *req.IsActive
	}
	if fields := validator.Validate(addOn); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	if err := s.addOns.Update(ctx, addOn); err != nil {
		return nil, err
	}
	return addOn, nil
}

func (s *Service) DeactivateAddOn(ctx context.Context, id int64) error {
	return s.addOns.Deactivate(ctx, id)
}
