// Package repository implements the file-backed repositories that own
// the user and train collections for the lifetime of a session. This
// file defines the sentinel error values shared by the repositories so
// higher layers can distinguish failure scenarios with errors.Is
// instead of inspecting a conflated boolean. For example,
// ErrInvalidCredentials covers both an unknown name and a wrong
// password: the two cases must stay indistinguishable to the caller so
// account existence never leaks, even though the repository logs them
// differently for operator visibility.
package repository

import "errors"

// ErrNameExists is returned by SignUp when a user with the same name
// is already stored. The match is exact and case-sensitive.
var ErrNameExists = errors.New("username already exists")

// ErrEmptyName is returned by SignUp for a candidate with an empty
// name. The username invariant is enforced here, not only at the
// prompt, so admin and seeding callers hit the same wall.
var ErrEmptyName = errors.New("username must not be empty")

// ErrInvalidCredentials is returned by FindByCredentials for an
// unknown name and for a failed password check alike.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUserNotFound is returned by identifier lookups when no stored
// user carries the requested ID.
var ErrUserNotFound = errors.New("user not found")

// ErrTrainNotFound is returned by identifier lookups when no stored
// train carries the requested ID.
var ErrTrainNotFound = errors.New("train not found")
