package booking

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"travelbooking/contract"
)

func TestDocumentMapping(t *testing.T) {
	input := contract.BookingInput{
		Name:           "John Smith",
		Email:          "john@example.com",
		From:           "Basel",
		To:             "Lugano",
		TravelDate:     "2026-10-12",
		Time:           "14:05",
		Gender:         "Male",
		NumberOfPeople: 3,
	}

	doc := documentFromInput(input)

	// The store assigns _id; an input must never carry one in.
	require.True(t, doc.ID.IsZero())

	doc.ID = bson.NewObjectID()
	booking := doc.toBooking()

	require.Equal(t, doc.ID.Hex(), booking.ID)
	require.Equal(t, input.Name, booking.Name)
	require.Equal(t, input.Email, booking.Email)
	require.Equal(t, input.From, booking.From)
	require.Equal(t, input.To, booking.To)
	require.Equal(t, input.TravelDate, booking.TravelDate)
	require.Equal(t, input.Time, booking.Time)
	require.Equal(t, input.Gender, booking.Gender)
	require.Equal(t, input.NumberOfPeople, booking.NumberOfPeople)
}
