// Package ui renders the booking form and list in a terminal. It
// mirrors the web client's behavior: a single draft bound to the form,
// a presence check before any network call, an edit mode staged by id
// and an immediate delete with no confirmation step.
package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"travelbooking/client"
	"travelbooking/contract"
)

// ErrIncompleteDraft aborts a submission with a user-facing warning
// before any network call is made.
var ErrIncompleteDraft = errors.New("Please fill in all fields before submitting.")

var genders = []string{"Male", "Female"}

// DataLayer is the slice of the client the form needs.
type DataLayer interface {
	Refresh(ctx context.Context) ([]contract.Booking, error)
	Bookings() ([]contract.Booking, client.State)
	Err() error
	CreateBooking(ctx context.Context, input contract.BookingInput) (contract.Booking, error)
	UpdateBooking(ctx context.Context, id string, input contract.BookingInput) (*contract.Booking, error)
	DeleteBooking(ctx context.Context, id string) (string, error)
}

type Form struct {
	data   DataLayer
	out    io.Writer
	draft  contract.BookingInput
	editID string
}

func NewForm(data DataLayer, out io.Writer) *Form {
	return &Form{data: data, out: out, draft: defaultDraft()}
}

func defaultDraft() contract.BookingInput {
	return contract.BookingInput{NumberOfPeople: 1}
}

func (f *Form) Draft() contract.BookingInput {
	return f.draft
}

func (f *Form) SetDraft(draft contract.BookingInput) {
	f.draft = draft
}

// EditMode reports whether a booking id is staged for update.
func (f *Form) EditMode() bool {
	return f.editID != ""
}

// StartEdit copies a listed booking, id included, into the draft.
func (f *Form) StartEdit(b contract.Booking) {
	f.draft = contract.BookingInput{
		Name:           b.Name,
		Email:          b.Email,
		From:           b.From,
		To:             b.To,
		TravelDate:     b.TravelDate,
		Time:           b.Time,
		Gender:         b.Gender,
		NumberOfPeople: b.NumberOfPeople,
	}
	f.editID = b.ID
}

// Submit validates the draft and issues the staged mutation: an update
// when in edit mode, a create otherwise. On success the form resets to
// the default draft and edit mode is cleared.
func (f *Form) Submit(ctx context.Context) error {
	if err := validateDraft(f.draft); err != nil {
		return err
	}

	if f.editID != "" {
		if _, err := f.data.UpdateBooking(ctx, f.editID, f.draft); err != nil {
			return err
		}
		f.editID = ""
	} else {
		if _, err := f.data.CreateBooking(ctx, f.draft); err != nil {
			return err
		}
	}

	f.draft = defaultDraft()
	return nil
}

// Delete removes a listed booking immediately, with no confirmation.
func (f *Form) Delete(ctx context.Context, id string) error {
	_, err := f.data.DeleteBooking(ctx, id)
	return err
}

func validateDraft(draft contract.BookingInput) error {
	if draft.Name == "" || draft.Email == "" || draft.From == "" || draft.To == "" ||
		draft.TravelDate == "" || draft.Time == "" || draft.Gender == "" || draft.NumberOfPeople == 0 {
		return ErrIncompleteDraft
	}

	if !slices.Contains(genders, draft.Gender) {
		return fmt.Errorf("gender must be one of %s", strings.Join(genders, ", "))
	}

	return nil
}

// RenderList writes the cached booking list twice: a summary table
// followed by a detail view, both from the same snapshot.
func (f *Form) RenderList() {
	bookings, state := f.data.Bookings()

	switch state {
	case client.StateLoading:
		fmt.Fprintln(f.out, "Loading bookings...")
		return
	case client.StateError:
		fmt.Fprintf(f.out, "Error loading bookings: %v\n", f.data.Err())
		return
	}

	if len(bookings) == 0 {
		fmt.Fprintln(f.out, "No bookings yet.")
		return
	}

	fmt.Fprintln(f.out, "ID\tNAME\tROUTE\tDATE\tTIME\tPEOPLE")
	for _, b := range bookings {
		fmt.Fprintf(f.out, "%s\t%s\t%s -> %s\t%s\t%s\t%d\n",
			b.ID, b.Name, b.From, b.To, b.TravelDate, b.Time, b.NumberOfPeople)
	}

	fmt.Fprintln(f.out)

	for i, b := range bookings {
		fmt.Fprintf(f.out, "%d. %s <%s> (%s), %s to %s on %s at %s, %d traveling [id %s]\n",
			i+1, b.Name, b.Email, b.Gender, b.From, b.To, b.TravelDate, b.Time, b.NumberOfPeople, b.ID)
	}
}

// Run drives an interactive session until EOF or the quit command.
func (f *Form) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(f.out, "Commands: list, new, edit <id>, delete <id>, quit")

	for {
		fmt.Fprint(f.out, "> ")

		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		cmd, arg, _ := strings.Cut(line, " ")

		switch cmd {
		case "":
		case "quit":
			return nil
		case "list":
			if _, err := f.data.Refresh(ctx); err != nil {
				fmt.Fprintf(f.out, "Error: %v\n", err)
			}
			f.RenderList()
		case "new":
			f.promptDraft(scanner)
			f.submitAndReport(ctx)
		case "edit":
			booking, ok := f.findBooking(strings.TrimSpace(arg))
			if !ok {
				fmt.Fprintln(f.out, "No booking with that id in the list.")
				continue
			}
			f.StartEdit(booking)
			f.promptDraft(scanner)
			f.submitAndReport(ctx)
		case "delete":
			if err := f.Delete(ctx, strings.TrimSpace(arg)); err != nil {
				fmt.Fprintf(f.out, "Error: %v\n", err)
				continue
			}
			f.RenderList()
		default:
			fmt.Fprintf(f.out, "Unknown command %q\n", cmd)
		}
	}
}

func (f *Form) submitAndReport(ctx context.Context) {
	if err := f.Submit(ctx); err != nil {
		fmt.Fprintf(f.out, "%v\n", err)
		return
	}
	f.RenderList()
}

func (f *Form) findBooking(id string) (contract.Booking, bool) {
	bookings, _ := f.data.Bookings()

	for _, b := range bookings {
		if b.ID == id {
			return b, true
		}
	}

	return contract.Booking{}, false
}

// promptDraft asks for every field, keeping the current draft value
// when the answer is empty. Blank answers on a fresh draft leave the
// field empty, which the presence gate then rejects.
func (f *Form) promptDraft(scanner *bufio.Scanner) {
	f.draft.Name = f.promptString(scanner, "Name", f.draft.Name)
	f.draft.Email = f.promptString(scanner, "Email", f.draft.Email)
	f.draft.From = f.promptString(scanner, "From", f.draft.From)
	f.draft.To = f.promptString(scanner, "To", f.draft.To)
	f.draft.TravelDate = f.promptString(scanner, "Travel date (YYYY-MM-DD)", f.draft.TravelDate)
	f.draft.Time = f.promptString(scanner, "Time (HH:MM)", f.draft.Time)
	f.draft.Gender = f.promptString(scanner, "Gender (Male/Female)", f.draft.Gender)
	f.draft.NumberOfPeople = f.promptInt(scanner, "Number of people", f.draft.NumberOfPeople)
}

func (f *Form) promptString(scanner *bufio.Scanner, label, current string) string {
	fmt.Fprintf(f.out, "%s [%s]: ", label, current)

	if !scanner.Scan() {
		return current
	}

	if answer := strings.TrimSpace(scanner.Text()); answer != "" {
		return answer
	}

	return current
}

func (f *Form) promptInt(scanner *bufio.Scanner, label string, current int) int {
	answer := f.promptString(scanner, label, strconv.Itoa(current))

	n, err := strconv.Atoi(answer)

	if err != nil {
		fmt.Fprintf(f.out, "Not a number, keeping %d\n", current)
		return current
	}

	return n
}
