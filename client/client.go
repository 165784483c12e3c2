// Package client is the client-side data layer: it issues contract
// operations against the booking endpoint and keeps the last-known
// getBookings result in an in-memory cache. Every successful mutation
// triggers a full re-fetch that replaces the cached list.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/patrickmn/go-cache"

	"travelbooking/contract"
)

const bookingsKey = "getBookings"

// State is what list consumers observe: loading until the first fetch
// completes, then ready or error until the next fetch cycle.
type State int

const (
	StateLoading State = iota
	StateReady
	StateError
)

type Client struct {
	endpoint string
	client   *http.Client
	cache    *cache.Cache
	state    State
	lastErr  error
}

// New returns a client targeting the given contract endpoint URL.
// No request timeout is set; a hung store call on the server side is
// observed here as an indefinitely pending request.
func New(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		client:   &http.Client{},
		cache:    cache.New(cache.NoExpiration, 0),
		state:    StateLoading,
	}
}

// Bookings returns the cached result set and the current fetch state.
func (c *Client) Bookings() ([]contract.Booking, State) {
	if cached, ok := c.cache.Get(bookingsKey); ok {
		return cached.([]contract.Booking), c.state
	}

	return nil, c.state
}

// Err reports the failure of the last fetch cycle, if any.
func (c *Client) Err() error {
	return c.lastErr
}

// Refresh fetches the full booking list and replaces the cache.
func (c *Client) Refresh(ctx context.Context) ([]contract.Booking, error) {
	data, err := c.do(ctx, contract.Request{Operation: contract.OpGetBookings})

	if err != nil {
		c.state = StateError
		c.lastErr = err
		return nil, err
	}

	c.cache.Set(bookingsKey, data.GetBookings, cache.NoExpiration)
	c.state = StateReady
	c.lastErr = nil

	return data.GetBookings, nil
}

func (c *Client) CreateBooking(ctx context.Context, input contract.BookingInput) (contract.Booking, error) {
	data, err := c.do(ctx, contract.Request{Operation: contract.OpCreateBooking, Input: &input})

	if err != nil {
		return contract.Booking{}, err
	}

	if data.CreateBooking == nil {
		return contract.Booking{}, fmt.Errorf("createBooking returned no booking")
	}

	c.Refresh(ctx)

	return *data.CreateBooking, nil
}

// UpdateBooking returns nil without error when the id matched nothing.
func (c *Client) UpdateBooking(ctx context.Context, id string, input contract.BookingInput) (*contract.Booking, error) {
	data, err := c.do(ctx, contract.Request{Operation: contract.OpUpdateBooking, ID: id, Input: &input})

	if err != nil {
		return nil, err
	}

	c.Refresh(ctx)

	return data.UpdateBooking, nil
}

func (c *Client) DeleteBooking(ctx context.Context, id string) (string, error) {
	data, err := c.do(ctx, contract.Request{Operation: contract.OpDeleteBooking, ID: id})

	if err != nil {
		return "", err
	}

	c.Refresh(ctx)

	return data.DeleteBooking, nil
}

func (c *Client) do(ctx context.Context, request contract.Request) (*contract.ResultData, error) {
	body, err := json.Marshal(request)

	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))

	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)

	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", request.Operation, err)
	}

	defer res.Body.Close()

	var response contract.Response

	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode %s response (status %d): %w", request.Operation, res.StatusCode, err)
	}

	if len(response.Errors) != 0 {
		return nil, fmt.Errorf("%s failed: %s", request.Operation, response.Errors[0].Message)
	}

	if response.Data == nil {
		return nil, fmt.Errorf("%s response missing data", request.Operation)
	}

	return response.Data, nil
}
