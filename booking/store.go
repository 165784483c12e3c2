package booking

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"travelbooking/contract"
)

const collectionName = "bookings"

// bookingDocument is the on-disk shape of a booking: the contract
// attribute set plus the store-assigned identifier.
type bookingDocument struct {
	ID             bson.ObjectID `bson:"_id,omitempty"`
	Name           string        `bson:"name"`
	Email          string        `bson:"email"`
	From           string        `bson:"from"`
	To             string        `bson:"to"`
	TravelDate     string        `bson:"travelDate"`
	Time           string        `bson:"time"`
	Gender         string        `bson:"gender"`
	NumberOfPeople int           `bson:"numberOfPeople"`
}

func documentFromInput(input contract.BookingInput) bookingDocument {
	return bookingDocument{
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

func (d bookingDocument) toBooking() contract.Booking {
	return contract.Booking{
		ID:             d.ID.Hex(),
		Name:           d.Name,
		Email:          d.Email,
		From:           d.From,
		To:             d.To,
		TravelDate:     d.TravelDate,
		Time:           d.Time,
		Gender:         d.Gender,
		NumberOfPeople: d.NumberOfPeople,
	}
}

// Store wraps the booking collection of a MongoDB database.
type Store struct {
	coll *mongo.Collection
}

func NewStore(db *mongo.Database) *Store {
	return &Store{coll: db.Collection(collectionName)}
}

func (s *Store) FindAll(ctx context.Context) ([]contract.Booking, error) {
	cursor, err := s.coll.Find(ctx, bson.D{})

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	defer cursor.Close(ctx)

	bookings := []contract.Booking{}

	for cursor.Next(ctx) {
		var doc bookingDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding booking document: %w", err)
		}
		bookings = append(bookings, doc.toBooking())
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking documents: %w", err)
	}

	return bookings, nil
}

func (s *Store) Insert(ctx context.Context, input contract.BookingInput) (contract.Booking, error) {
	doc := documentFromInput(input)

	result, err := s.coll.InsertOne(ctx, doc)

	if err != nil {
		return contract.Booking{}, fmt.Errorf("failed to insert booking: %w", err)
	}

	id, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return contract.Booking{}, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}

	doc.ID = id
	return doc.toBooking(), nil
}

func (s *Store) UpdateByID(ctx context.Context, id string, input contract.BookingInput) (contract.Booking, error) {
	oid, err := bson.ObjectIDFromHex(id)

	if err != nil {
		return contract.Booking{}, fmt.Errorf("invalid booking id %q: %w", id, err)
	}

	opts := options.FindOneAndReplace().SetReturnDocument(options.After)

	var doc bookingDocument
	err = s.coll.FindOneAndReplace(ctx, bson.D{{Key: "_id", Value: oid}}, documentFromInput(input), opts).Decode(&doc)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return contract.Booking{}, ErrBookingNotFound
	}

	if err != nil {
		return contract.Booking{}, fmt.Errorf("failed to update booking %q: %w", id, err)
	}

	return doc.toBooking(), nil
}

func (s *Store) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, err := bson.ObjectIDFromHex(id)

	if err != nil {
		return false, fmt.Errorf("invalid booking id %q: %w", id, err)
	}

	result, err := s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})

	if err != nil {
		return false, fmt.Errorf("failed to delete booking %q: %w", id, err)
	}

	return result.DeletedCount > 0, nil
}
