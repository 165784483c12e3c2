// Package contract defines the booking API contract shared by the
// server and the client: the Booking entity, the mutation input and
// the operation envelope exchanged over the single query endpoint.
package contract

// Operation names accepted by the query endpoint.
const (
	OpGetBookings   = "getBookings"
	OpCreateBooking = "createBooking"
	OpUpdateBooking = "updateBooking"
	OpDeleteBooking = "deleteBooking"
)

type Booking struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	From           string `json:"from"`
	To             string `json:"to"`
	TravelDate     string `json:"travelDate"`
	Time           string `json:"time"`
	Gender         string `json:"gender"`
	NumberOfPeople int    `json:"numberOfPeople"`
}

// BookingInput mirrors Booking minus the id, which is assigned by the
// store on create and passed separately on update.
type BookingInput struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required"`
	From           string `json:"from" binding:"required"`
	To             string `json:"to" binding:"required"`
	TravelDate     string `json:"travelDate" binding:"required"`
	Time           string `json:"time" binding:"required"`
	Gender         string `json:"gender" binding:"required"`
	NumberOfPeople int    `json:"numberOfPeople" binding:"required,min=1"`
}

// Request is the envelope posted to the query endpoint. ID and Input
// are required or ignored depending on the operation; the gateway
// rejects envelopes missing the pieces their operation needs.
type Request struct {
	Operation string        `json:"operation" binding:"required,oneof=getBookings createBooking updateBooking deleteBooking"`
	ID        string        `json:"id,omitempty"`
	Input     *BookingInput `json:"input,omitempty"`
}

// Response carries either a result keyed by operation name or a list
// of errors, never both. A null updateBooking result means the id did
// not match any stored booking; that outcome is not an error.
type Response struct {
	Data   *ResultData `json:"data,omitempty"`
	Errors []Error     `json:"errors,omitempty"`
}

type ResultData struct {
	GetBookings   []Booking `json:"getBookings,omitempty"`
	CreateBooking *Booking  `json:"createBooking,omitempty"`
	UpdateBooking *Booking  `json:"updateBooking,omitempty"`
	DeleteBooking string    `json:"deleteBooking,omitempty"`
}

type Error struct {
	Message string `json:"message"`
}
