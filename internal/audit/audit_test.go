package audit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/iliyamo/train-seat-reservation/internal/model"
)

func TestBookingConfirmedAppendsOneLine(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	w := NewWriter(dir)

	ticket := model.Ticket{
		TicketID:    "tick-1",
		UserID:      "u-1",
		TrainID:     "T-1",
		Source:      "Delhi",
		Destination: "Mumbai",
		Row:         0,
		Col:         1,
		BookedAt:    time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC),
	}
	if err := w.BookingConfirmed(ticket, "alice"); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if err := w.BookingConfirmed(ticket, "alice"); err != nil {
		t.Fatalf("second append: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "booking.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), data)
	}
	for _, frag := range []string{"ticket_id=tick-1", `user="alice"`, "train_id=T-1", "seat=(0,1)", "route=Delhi->Mumbai"} {
		if !strings.Contains(lines[0], frag) {
			t.Fatalf("line missing %q: %s", frag, lines[0])
		}
	}
}
