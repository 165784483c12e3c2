package booking_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	bk "travelbooking/booking"
	"travelbooking/contract"
)

func TestMemoryStoreCreateRoundTrip(t *testing.T) {
	store := bk.NewMemoryStore()
	ctx := context.Background()

	created, err := store.Insert(ctx, sampleInput)

	require.Nil(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, sampleInput.Name, created.Name)
	require.Equal(t, sampleInput.NumberOfPeople, created.NumberOfPeople)

	bookings, err := store.FindAll(ctx)

	require.Nil(t, err)
	require.Equal(t, []contract.Booking{created}, bookings)
}

func TestMemoryStoreAssignsUniqueIDs(t *testing.T) {
	store := bk.NewMemoryStore()
	ctx := context.Background()

	first, err := store.Insert(ctx, sampleInput)
	require.Nil(t, err)

	second, err := store.Insert(ctx, sampleInput)
	require.Nil(t, err)

	require.NotEqual(t, first.ID, second.ID)

	bookings, err := store.FindAll(ctx)
	require.Nil(t, err)
	require.Len(t, bookings, 2)
	require.Equal(t, first.ID, bookings[0].ID)
	require.Equal(t, second.ID, bookings[1].ID)
}

func TestMemoryStoreUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces all fields and keeps the id", func(t *testing.T) {
		store := bk.NewMemoryStore()

		created, err := store.Insert(ctx, sampleInput)
		require.Nil(t, err)

		changed := sampleInput
		changed.From = "Bern"
		changed.NumberOfPeople = 4

		updated, err := store.UpdateByID(ctx, created.ID, changed)

		require.Nil(t, err)
		require.Equal(t, created.ID, updated.ID)
		require.Equal(t, "Bern", updated.From)
		require.Equal(t, 4, updated.NumberOfPeople)

		bookings, err := store.FindAll(ctx)
		require.Nil(t, err)
		require.Equal(t, []contract.Booking{updated}, bookings)
	})

	t.Run("unknown id creates nothing", func(t *testing.T) {
		store := bk.NewMemoryStore()

		_, err := store.Insert(ctx, sampleInput)
		require.Nil(t, err)

		_, err = store.UpdateByID(ctx, "missing", sampleInput)
		require.ErrorIs(t, err, bk.ErrBookingNotFound)

		bookings, err := store.FindAll(ctx)
		require.Nil(t, err)
		require.Len(t, bookings, 1)
	})
}

func TestMemoryStoreDeleteIsIdempotent(t *testing.T) {
	store := bk.NewMemoryStore()
	ctx := context.Background()

	created, err := store.Insert(ctx, sampleInput)
	require.Nil(t, err)

	existed, err := store.DeleteByID(ctx, created.ID)
	require.Nil(t, err)
	require.True(t, existed)

	existed, err = store.DeleteByID(ctx, created.ID)
	require.Nil(t, err)
	require.False(t, existed)

	bookings, err := store.FindAll(ctx)
	require.Nil(t, err)
	require.Empty(t, bookings)
}

func TestMemoryStoreListReflectsMutationSequence(t *testing.T) {
	store := bk.NewMemoryStore()
	ctx := context.Background()

	first, err := store.Insert(ctx, sampleInput)
	require.Nil(t, err)

	second, err := store.Insert(ctx, sampleInput)
	require.Nil(t, err)

	changed := sampleInput
	changed.To = "Lausanne"
	updated, err := store.UpdateByID(ctx, second.ID, changed)
	require.Nil(t, err)

	_, err = store.DeleteByID(ctx, first.ID)
	require.Nil(t, err)

	bookings, err := store.FindAll(ctx)
	require.Nil(t, err)
	require.Equal(t, []contract.Booking{updated}, bookings)
}
