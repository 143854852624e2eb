// Package audit appends confirmed bookings to logs/booking.log in a
// single-line, human-friendly format. The trail is a convenience for
// operators; a write failure is reported to the caller but must never
// abort a booking that already persisted.
package audit

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/iliyamo/train-seat-reservation/internal/model"
)

// Writer appends booking confirmations under the given directory.
type Writer struct {
	dir string
}

// NewWriter returns a Writer that logs into dir/booking.log.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// BookingConfirmed appends one line for a completed reservation.
func (w *Writer) BookingConfirmed(ticket model.Ticket, userName string) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", w.dir, err)
	}
	fpath := filepath.Join(w.dir, "booking.log")
	f, err := os.OpenFile(fpath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] Booking confirmed | ticket_id=%s | user=%q | train_id=%s | seat=(%d,%d) | route=%s->%s\n",
		ticket.BookedAt.Format(time.RFC3339), ticket.TicketID, userName,
		ticket.TrainID, ticket.Row, ticket.Col, ticket.Source, ticket.Destination)

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}
