package ui_test

import (
	"bytes"
	"context"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"travelbooking/api"
	bk "travelbooking/booking"
	"travelbooking/client"
	"travelbooking/contract"
	"travelbooking/ui"
)

var filledDraft = contract.BookingInput{
	Name:           "Jane Doe",
	Email:          "jane@example.com",
	From:           "Zurich",
	To:             "Geneva",
	TravelDate:     "2026-09-01",
	Time:           "08:30",
	Gender:         "Female",
	NumberOfPeople: 2,
}

type testStack struct {
	form     *ui.Form
	client   *client.Client
	store    *bk.MemoryStore
	out      *bytes.Buffer
	requests *atomic.Int64
}

func newTestStack(t *testing.T) testStack {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.Default()

	var requests atomic.Int64
	router.Use(func(c *gin.Context) {
		requests.Add(1)
		c.Next()
	})

	store := bk.NewMemoryStore()
	handler := api.NewQueryHandler(bk.NewService(store))
	handler.Register(router.Group("/query"))

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	c := client.New(server.URL + "/query")
	out := &bytes.Buffer{}

	return testStack{
		form:     ui.NewForm(c, out),
		client:   c,
		store:    store,
		out:      out,
		requests: &requests,
	}
}

func TestSubmitWithMissingFieldMakesNoNetworkCall(t *testing.T) {
	fields := []struct {
		name  string
		strip func(*contract.BookingInput)
	}{
		{"name", func(d *contract.BookingInput) { d.Name = "" }},
		{"email", func(d *contract.BookingInput) { d.Email = "" }},
		{"from", func(d *contract.BookingInput) { d.From = "" }},
		{"to", func(d *contract.BookingInput) { d.To = "" }},
		{"travelDate", func(d *contract.BookingInput) { d.TravelDate = "" }},
		{"time", func(d *contract.BookingInput) { d.Time = "" }},
		{"gender", func(d *contract.BookingInput) { d.Gender = "" }},
		{"numberOfPeople", func(d *contract.BookingInput) { d.NumberOfPeople = 0 }},
	}

	for _, field := range fields {
		t.Run(field.name, func(t *testing.T) {
			stack := newTestStack(t)

			draft := filledDraft
			field.strip(&draft)
			stack.form.SetDraft(draft)

			err := stack.form.Submit(context.Background())

			require.ErrorIs(t, err, ui.ErrIncompleteDraft)
			require.Equal(t, int64(0), stack.requests.Load())

			stored, storeErr := stack.store.FindAll(context.Background())
			require.Nil(t, storeErr)
			require.Empty(t, stored)

			// The rejected draft stays on the form for correction.
			require.Equal(t, draft, stack.form.Draft())
		})
	}
}

func TestSubmitCreatesAndResetsDraft(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	stack.form.SetDraft(filledDraft)

	require.Nil(t, stack.form.Submit(ctx))
	require.Equal(t, contract.BookingInput{NumberOfPeople: 1}, stack.form.Draft())

	stored, err := stack.store.FindAll(ctx)
	require.Nil(t, err)
	require.Len(t, stored, 1)
	require.Equal(t, filledDraft.Name, stored[0].Name)
}

func TestEditModeTransition(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	created, err := stack.client.CreateBooking(ctx, filledDraft)
	require.Nil(t, err)

	stack.form.StartEdit(created)
	require.True(t, stack.form.EditMode())

	draft := stack.form.Draft()
	require.Equal(t, filledDraft, draft)

	// Submitting the unchanged draft is a no-op on stored values.
	require.Nil(t, stack.form.Submit(ctx))
	require.False(t, stack.form.EditMode())

	stored, err := stack.store.FindAll(ctx)
	require.Nil(t, err)
	require.Equal(t, []contract.Booking{created}, stored)
}

func TestEditedSubmitReplacesFields(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	created, err := stack.client.CreateBooking(ctx, filledDraft)
	require.Nil(t, err)

	stack.form.StartEdit(created)

	draft := stack.form.Draft()
	draft.To = "Lausanne"
	draft.NumberOfPeople = 4
	stack.form.SetDraft(draft)

	require.Nil(t, stack.form.Submit(ctx))

	stored, err := stack.store.FindAll(ctx)
	require.Nil(t, err)
	require.Len(t, stored, 1)
	require.Equal(t, created.ID, stored[0].ID)
	require.Equal(t, "Lausanne", stored[0].To)
	require.Equal(t, 4, stored[0].NumberOfPeople)
}

func TestDeleteRemovesImmediately(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	created, err := stack.client.CreateBooking(ctx, filledDraft)
	require.Nil(t, err)

	require.Nil(t, stack.form.Delete(ctx, created.ID))

	stored, err := stack.store.FindAll(ctx)
	require.Nil(t, err)
	require.Empty(t, stored)
}

func TestRenderListStates(t *testing.T) {
	t.Run("loading before first fetch", func(t *testing.T) {
		stack := newTestStack(t)

		stack.form.RenderList()

		require.Contains(t, stack.out.String(), "Loading bookings")
	})

	t.Run("error after failed fetch", func(t *testing.T) {
		server := httptest.NewServer(nil)
		url := server.URL
		server.Close()

		c := client.New(url + "/query")
		out := &bytes.Buffer{}
		form := ui.NewForm(c, out)

		_, err := c.Refresh(context.Background())
		require.Error(t, err)

		form.RenderList()

		require.Contains(t, out.String(), "Error loading bookings")
	})

	t.Run("renders the list twice when ready", func(t *testing.T) {
		stack := newTestStack(t)
		ctx := context.Background()

		created, err := stack.client.CreateBooking(ctx, filledDraft)
		require.Nil(t, err)

		stack.form.RenderList()

		rendered := stack.out.String()
		require.Equal(t, 2, bytes.Count([]byte(rendered), []byte(created.ID)))
		require.Contains(t, rendered, "Zurich -> Geneva")
		require.Contains(t, rendered, "jane@example.com")
	})
}

func TestInvalidGenderIsRejectedClientSide(t *testing.T) {
	stack := newTestStack(t)

	draft := filledDraft
	draft.Gender = "Other"
	stack.form.SetDraft(draft)

	err := stack.form.Submit(context.Background())

	require.Error(t, err)
	require.Equal(t, int64(0), stack.requests.Load())
}
