package booking

import (
	"context"
	"errors"

	"travelbooking/contract"
)

// BookingStore is the persistence adapter the resolvers run against.
// *Store implements it over MongoDB, *MemoryStore over process memory.
type BookingStore interface {
	FindAll(ctx context.Context) ([]contract.Booking, error)
	Insert(ctx context.Context, input contract.BookingInput) (contract.Booking, error)
	UpdateByID(ctx context.Context, id string, input contract.BookingInput) (contract.Booking, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}

// Service implements the contract operations, one thin resolver per
// operation, each a single store call.
type Service struct {
	store BookingStore
}

func NewService(store BookingStore) *Service {
	return &Service{store: store}
}

func (s *Service) GetBookings(ctx context.Context) ([]contract.Booking, error) {
	return s.store.FindAll(ctx)
}

func (s *Service) CreateBooking(ctx context.Context, input contract.BookingInput) (contract.Booking, error) {
	return s.store.Insert(ctx, input)
}

// UpdateBooking replaces all fields of the booking with the given id.
// An unknown id yields a nil booking and no error; nothing is created.
func (s *Service) UpdateBooking(ctx context.Context, id string, input contract.BookingInput) (*contract.Booking, error) {
	updated, err := s.store.UpdateByID(ctx, id, input)

	if errors.Is(err, ErrBookingNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteBooking removes the booking with the given id and echoes the
// id back whether or not a matching record existed.
func (s *Service) DeleteBooking(ctx context.Context, id string) (string, error) {
	if _, err := s.store.DeleteByID(ctx, id); err != nil {
		return "", err
	}

	return id, nil
}
