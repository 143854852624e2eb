package session

import (
	"errors"
	"testing"
)

func TestZeroSessionHasNoUserOrTrain(t *testing.T) {
	var s Session
	if _, err := s.UserID(); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("want ErrNotAuthenticated, got %v", err)
	}
	if _, err := s.TrainID(); !errors.Is(err, ErrNoTrainSelected) {
		t.Fatalf("want ErrNoTrainSelected, got %v", err)
	}
}

func TestAuthenticateAndSelect(t *testing.T) {
	var s Session
	s.Authenticate("u-1", "alice")
	s.SelectTrain("T-1", "Delhi", "Mumbai")

	id, err := s.UserID()
	if err != nil || id != "u-1" {
		t.Fatalf("user id: got (%q, %v)", id, err)
	}
	if s.UserName() != "alice" {
		t.Fatalf("user name: got %q", s.UserName())
	}
	trainID, err := s.TrainID()
	if err != nil || trainID != "T-1" {
		t.Fatalf("train id: got (%q, %v)", trainID, err)
	}
	src, dst := s.Route()
	if src != "Delhi" || dst != "Mumbai" {
		t.Fatalf("route: got (%q, %q)", src, dst)
	}
}

func TestLaterLoginReplacesUser(t *testing.T) {
	var s Session
	s.Authenticate("u-1", "alice")
	s.Authenticate("u-2", "bob")

	id, err := s.UserID()
	if err != nil || id != "u-2" {
		t.Fatalf("want the later login, got (%q, %v)", id, err)
	}
}
