// Package booking implements the reservation engine: the one-way
// free-to-booked transition for a single seat cell and the ticket
// bookkeeping attached to the authenticated user. The seat grid is the
// authoritative resource; the user's ticket list is a projection of it.
package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/iliyamo/train-seat-reservation/internal/audit"
	"github.com/iliyamo/train-seat-reservation/internal/model"
	"github.com/iliyamo/train-seat-reservation/internal/repository"
	"github.com/iliyamo/train-seat-reservation/internal/session"
)

// ErrSeatOutOfBounds is returned for a row/column pair outside the
// selected train's current grid. Nothing is mutated.
var ErrSeatOutOfBounds = errors.New("seat coordinates out of bounds")

// ErrSeatAlreadyBooked is returned when the addressed cell is already
// taken. The rejection is idempotent: no mutation, no persistence.
var ErrSeatAlreadyBooked = errors.New("seat already booked")

// ErrTicketNotRecorded is returned when the seat was booked and
// persisted but appending the ticket to the user failed. The booking
// stands; callers should surface the gap rather than retract the seat.
var ErrTicketNotRecorded = errors.New("seat booked but ticket not recorded")

// ErrTicketNotFound is returned by CancelTicket when the authenticated
// user holds no ticket with the given ID.
var ErrTicketNotFound = errors.New("ticket not found")

// Engine coordinates the two repositories to perform bookings and
// ticket changes on behalf of the session's user.
type Engine struct {
	users  *repository.UserRepo
	trains *repository.TrainRepo
	trail  *audit.Writer
	log    *zap.Logger
}

// NewEngine constructs an Engine. The audit writer may be nil to
// disable the booking trail.
func NewEngine(users *repository.UserRepo, trains *repository.TrainRepo, trail *audit.Writer, log *zap.Logger) *Engine {
	if users == nil || trains == nil {
		panic("nil repository passed to NewEngine")
	}
	return &Engine{users: users, trains: trains, trail: trail, log: log}
}

// BookSeat transitions the addressed cell of the session's selected
// train from free to booked and persists the result. Outcomes are
// distinguishable sentinels: session.ErrNotAuthenticated,
// session.ErrNoTrainSelected, ErrSeatOutOfBounds, ErrSeatAlreadyBooked,
// ErrTicketNotRecorded, or a wrapped persistence error. On success the
// freshly minted ticket is returned.
func (e *Engine) BookSeat(sess *session.Session, row, col int) (model.Ticket, error) {
	userID, err := sess.UserID()
	if err != nil {
		return model.Ticket{}, err
	}
	trainID, err := sess.TrainID()
	if err != nil {
		return model.Ticket{}, err
	}
	train, err := e.trains.GetByID(trainID)
	if err != nil {
		return model.Ticket{}, fmt.Errorf("selected train: %w", err)
	}

	if !train.SeatInBounds(row, col) {
		return model.Ticket{}, ErrSeatOutOfBounds
	}
	if train.Seats[row][col] != model.SeatFree {
		return model.Ticket{}, ErrSeatAlreadyBooked
	}

	train.Seats[row][col] = model.SeatBooked
	if err := e.trains.UpdateSeats(train); err != nil {
		// Keep memory and disk consistent: the cell goes back to free.
		train.Seats[row][col] = model.SeatFree
		return model.Ticket{}, fmt.Errorf("persist seat grid: %w", err)
	}

	source, dest := sess.Route()
	ticket := model.Ticket{
		TicketID:    uuid.NewString(),
		UserID:      userID,
		TrainID:     train.TrainID,
		Source:      source,
		Destination: dest,
		Row:         row,
		Col:         col,
		BookedAt:    time.Now().UTC(),
	}

	if e.trail != nil {
		if err := e.trail.BookingConfirmed(ticket, sess.UserName()); err != nil {
			e.log.Warn("booking trail append failed", zap.Error(err))
		}
	}

	user, err := e.users.GetByID(userID)
	if err != nil {
		return ticket, fmt.Errorf("%w: %v", ErrTicketNotRecorded, err)
	}
	if err := e.users.ReplaceTickets(userID, append(user.TicketsBooked, ticket)); err != nil {
		// The seat grid already persisted and stays booked; report the
		// gap instead of pretending the booking failed.
		e.log.Error("ticket not recorded after seat persisted",
			zap.String("ticket_id", ticket.TicketID), zap.Error(err))
		return ticket, fmt.Errorf("%w: %v", ErrTicketNotRecorded, err)
	}

	e.log.Info("seat booked",
		zap.String("train_id", train.TrainID),
		zap.Int("row", row), zap.Int("col", col),
		zap.String("ticket_id", ticket.TicketID))
	return ticket, nil
}

// FetchBookings returns the authenticated user's tickets in booking
// order.
func (e *Engine) FetchBookings(sess *session.Session) ([]model.Ticket, error) {
	userID, err := sess.UserID()
	if err != nil {
		return nil, err
	}
	user, err := e.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	return user.TicketsBooked, nil
}

// CancelTicket removes the matching ticket from the authenticated user
// and persists the collection. The seat grid is left untouched: a
// booked cell never returns to free in this core, so cancelling frees
// the ticket record but not the seat.
func (e *Engine) CancelTicket(sess *session.Session, ticketID string) error {
	userID, err := sess.UserID()
	if err != nil {
		return err
	}
	user, err := e.users.GetByID(userID)
	if err != nil {
		return err
	}
	kept := make([]model.Ticket, 0, len(user.TicketsBooked))
	found := false
	for _, t := range user.TicketsBooked {
		if t.TicketID == ticketID {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return ErrTicketNotFound
	}
	if err := e.users.ReplaceTickets(userID, kept); err != nil {
		return err
	}
	e.log.Info("ticket cancelled", zap.String("ticket_id", ticketID))
	return nil
}
