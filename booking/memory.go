package booking

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"travelbooking/contract"
)

// MemoryStore keeps bookings in process memory. It backs tests and
// local runs without a MongoDB instance, and preserves insertion
// order the way the document store's natural order does.
type MemoryStore struct {
	mu       sync.Mutex
	bookings map[string]contract.Booking
	order    []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{bookings: make(map[string]contract.Booking)}
}

func (s *MemoryStore) FindAll(ctx context.Context) ([]contract.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings := []contract.Booking{}

	for _, id := range s.order {
		bookings = append(bookings, s.bookings[id])
	}

	return bookings, nil
}

func (s *MemoryStore) Insert(ctx context.Context, input contract.BookingInput) (contract.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking := bookingFromInput(uuid.NewString(), input)
	s.bookings[booking.ID] = booking
	s.order = append(s.order, booking.ID)

	return booking, nil
}

func (s *MemoryStore) UpdateByID(ctx context.Context, id string, input contract.BookingInput) (contract.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[id]; !ok {
		return contract.Booking{}, ErrBookingNotFound
	}

	booking := bookingFromInput(id, input)
	s.bookings[id] = booking

	return booking, nil
}

func (s *MemoryStore) DeleteByID(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[id]; !ok {
		return false, nil
	}

	delete(s.bookings, id)

	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return true, nil
}

func bookingFromInput(id string, input contract.BookingInput) contract.Booking {
	return contract.Booking{
		ID:             id,
		Name:           input.Name,
		Email:          input.Email,
		From:           input.From,
		To:             input.To,
		TravelDate:     input.TravelDate,
		Time:           input.Time,
		Gender:         input.Gender,
		NumberOfPeople: input.NumberOfPeople,
	}
}
