package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"travelbooking/contract"
)

type BookingService interface {
	GetBookings(ctx context.Context) ([]contract.Booking, error)
	CreateBooking(ctx context.Context, input contract.BookingInput) (contract.Booking, error)
	UpdateBooking(ctx context.Context, id string, input contract.BookingInput) (*contract.Booking, error)
	DeleteBooking(ctx context.Context, id string) (string, error)
}

// QueryHandler exposes the booking contract over a single endpoint:
// one POST route taking an operation envelope and answering with
// either a data payload or an error list.
type QueryHandler struct {
	service BookingService
}

func NewQueryHandler(service BookingService) *QueryHandler {
	return &QueryHandler{service: service}
}

func (h *QueryHandler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.Query)
}

// Liveness always answers with a static success body, independent of
// the backing store's health.
func Liveness(c *gin.Context) {
	c.String(http.StatusOK, "Server is running successfully!")
}

func (h *QueryHandler) Query(c *gin.Context) {
	var req contract.Request

	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		respondErrors(c, http.StatusBadRequest, err)
		return
	}

	ctx := c.Request.Context()

	switch req.Operation {
	case contract.OpGetBookings:
		bookings, err := h.service.GetBookings(ctx)

		if err != nil {
			c.Error(err)
			respondErrors(c, http.StatusInternalServerError, err)
			return
		}

		respondData(c, req.Operation, bookings)

	case contract.OpCreateBooking:
		if req.Input == nil {
			respondMessage(c, http.StatusBadRequest, "createBooking requires an input")
			return
		}

		created, err := h.service.CreateBooking(ctx, *req.Input)

		if err != nil {
			c.Error(err)
			respondErrors(c, http.StatusInternalServerError, err)
			return
		}

		respondData(c, req.Operation, created)

	case contract.OpUpdateBooking:
		if req.ID == "" {
			respondMessage(c, http.StatusBadRequest, "updateBooking requires an id")
			return
		}

		if req.Input == nil {
			respondMessage(c, http.StatusBadRequest, "updateBooking requires an input")
			return
		}

		updated, err := h.service.UpdateBooking(ctx, req.ID, *req.Input)

		if err != nil {
			c.Error(err)
			respondErrors(c, http.StatusInternalServerError, err)
			return
		}

		// updated is nil for an unknown id: serialized as a null
		// result, not as an error.
		respondData(c, req.Operation, updated)

	case contract.OpDeleteBooking:
		if req.ID == "" {
			respondMessage(c, http.StatusBadRequest, "deleteBooking requires an id")
			return
		}

		deleted, err := h.service.DeleteBooking(ctx, req.ID)

		if err != nil {
			c.Error(err)
			respondErrors(c, http.StatusInternalServerError, err)
			return
		}

		respondData(c, req.Operation, deleted)
	}
}

func respondData(c *gin.Context, operation string, result any) {
	c.JSON(http.StatusOK, gin.H{"data": gin.H{operation: result}})
}

// Resolver and binding failures are returned with full diagnostic
// detail; this API does not front sensitive infrastructure.
func respondErrors(c *gin.Context, status int, err error) {
	c.JSON(status, contract.Response{Errors: []contract.Error{{Message: err.Error()}}})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, contract.Response{Errors: []contract.Error{{Message: message}}})
}
