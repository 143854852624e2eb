package model

import "time"

// User represents an account record as stored in the users store file.
// The json tags define the on-disk field names; the store file is a
// plain JSON array of these records. The plaintext password typed at
// login never appears here; only its bcrypt hash is persisted.
//
// Fields:
//  ID             – opaque unique identifier assigned at signup (UUID).
//  Name           – unique username, case-sensitive, non-empty.
//  HashedPassword – bcrypt hash of the password.
//  TicketsBooked  – tickets in booking order (insertion order preserved).
type User struct {
	ID             string   `json:"id"`              // assigned once at signup, immutable
	Name           string   `json:"name"`            // unique across the store
	HashedPassword string   `json:"hashed_password"` // bcrypt digest
	TicketsBooked  []Ticket `json:"tickets_booked"`  // grows on booking, shrinks on cancel
}

// Ticket records one completed seat reservation attached to a user.
type Ticket struct {
	TicketID    string    `json:"ticket_id"` // unique within the user's list (UUID)
	UserID      string    `json:"user_id"`
	TrainID     string    `json:"train_id"`
	Source      string    `json:"source"`
	Destination string    `json:"destination"`
	Row         int       `json:"row"`
	Col         int       `json:"col"`
	BookedAt    time.Time `json:"booked_at"`
}
