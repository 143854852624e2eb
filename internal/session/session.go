// Package session holds the per-run interactive state: who is logged
// in and which train the last search selected. Both references are by
// identifier only; the repositories stay the sole owners of the
// persisted records. The session is cleared only at process exit,
// there is no explicit logout in this core.
package session

import "errors"

// ErrNotAuthenticated is returned by operations that need a logged-in
// user when no login has happened yet.
var ErrNotAuthenticated = errors.New("not authenticated")

// ErrNoTrainSelected is returned by booking when no train has been
// selected through a search yet.
var ErrNoTrainSelected = errors.New("no train selected")

// Session carries at most one authenticated user and one selected
// train, both optional. A zero Session is ready to use.
type Session struct {
	userID   string
	userName string
	trainID  string
	source   string
	dest     string
}

// Authenticate records the logged-in user. A later login replaces the
// previous one.
func (s *Session) Authenticate(userID, name string) {
	s.userID = userID
	s.userName = name
}

// UserID returns the authenticated user's identifier, or
// ErrNotAuthenticated before any login.
func (s *Session) UserID() (string, error) {
	if s.userID == "" {
		return "", ErrNotAuthenticated
	}
	return s.userID, nil
}

// UserName returns the authenticated user's name, empty before login.
func (s *Session) UserName() string { return s.userName }

// SelectTrain records the train chosen from the last search result
// together with the route that was searched. The route travels with
// the selection so a later booking can stamp it onto the ticket.
func (s *Session) SelectTrain(trainID, source, destination string) {
	s.trainID = trainID
	s.source = source
	s.dest = destination
}

// Route returns the source and destination of the current selection,
// both empty before any selection.
func (s *Session) Route() (source, destination string) { return s.source, s.dest }

// TrainID returns the selected train's identifier, or
// ErrNoTrainSelected before any search selection.
func (s *Session) TrainID() (string, error) {
	if s.trainID == "" {
		return "", ErrNoTrainSelected
	}
	return s.trainID, nil
}
