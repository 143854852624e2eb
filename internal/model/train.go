package model

// Seat cell states inside a Train's seat grid. The transition is
// one-way: a booked cell is never returned to free by this core.
const (
	SeatFree   = 0
	SeatBooked = 1
)

// Train describes one scheduled journey with a fixed seat map.
// The grid dimensions are set when the train is created and are never
// resized by booking operations; row/column indices are zero-based.
//
// Fields:
//  TrainID      – unique identifier of the train record.
//  TrainNo      – public train number shown to passengers.
//  Stations     – station names in route order.
//  StationTimes – scheduled time per station, one entry per station.
//  Seats        – row-major grid of cells, each SeatFree or SeatBooked.
type Train struct {
	TrainID      string            `json:"train_id"`
	TrainNo      string            `json:"train_no"`
	Stations     []string          `json:"stations"`
	StationTimes map[string]string `json:"station_times"`
	Seats        [][]int           `json:"seats"`
}

// SeatInBounds reports whether (row, col) addresses an existing cell of
// the current grid. Rows may be ragged, so the column bound is checked
// against the addressed row.
func (t Train) SeatInBounds(row, col int) bool {
	if row < 0 || row >= len(t.Seats) {
		return false
	}
	return col >= 0 && col < len(t.Seats[row])
}

// CloneSeats returns a deep copy of the seat grid. Used by callers that
// need to hand out a grid without exposing the stored one to mutation.
func (t Train) CloneSeats() [][]int {
	out := make([][]int, len(t.Seats))
	for i, row := range t.Seats {
		out[i] = append([]int(nil), row...)
	}
	return out
}
