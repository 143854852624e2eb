package repository

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/iliyamo/train-seat-reservation/internal/model"
	"github.com/iliyamo/train-seat-reservation/internal/store"
	"github.com/iliyamo/train-seat-reservation/internal/utils"
)

// UserRepo owns the in-memory user collection and its backing file.
// Every mutation goes through the full load-mutate-persist cycle: the
// slice held here is the source of truth and each persist rewrites the
// whole file.
type UserRepo struct {
	path    string
	log     *zap.Logger
	users   []model.User
	damaged bool // a corrupt load happened; back the file up before the next save
}

// NewUserRepo loads the user store at path. A missing or empty file is
// a normal first run and yields an empty collection. A corrupt file is
// logged, the session continues on an empty collection, and the old
// file is moved aside before anything is written over it.
func NewUserRepo(path string, log *zap.Logger) (*UserRepo, error) {
	users, err := store.Load[model.User](path)
	r := &UserRepo{path: path, log: log, users: users}
	if err != nil {
		if !store.IsCorrupt(err) {
			return nil, err
		}
		r.damaged = true
		log.Warn("user store failed to parse, continuing with empty collection",
			zap.String("path", path), zap.Error(err))
	}
	return r, nil
}

// FindByCredentials looks up a user by exact name match and verifies
// the supplied password against the stored bcrypt hash. Unknown name
// and wrong password both come back as ErrInvalidCredentials; only the
// log tells them apart.
func (r *UserRepo) FindByCredentials(name, password string) (model.User, error) {
	for _, u := range r.users {
		if u.Name != name {
			continue
		}
		if !utils.VerifyPassword(u.HashedPassword, password) {
			r.log.Info("login rejected: password mismatch", zap.String("name", name))
			return model.User{}, ErrInvalidCredentials
		}
		return u, nil
	}
	r.log.Info("login rejected: unknown username", zap.String("name", name))
	return model.User{}, ErrInvalidCredentials
}

// GetByID fetches a user by its identifier.
func (r *UserRepo) GetByID(id string) (model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, ErrUserNotFound
}

// SignUp appends the candidate to the collection and persists it.
// An empty name is rejected with ErrEmptyName, a duplicate name with
// ErrNameExists, and in both cases the store is left untouched. If
// persisting fails the in-memory append is rolled back so memory and
// disk never diverge.
func (r *UserRepo) SignUp(u model.User) error {
	if u.Name == "" {
		return ErrEmptyName
	}
	for _, existing := range r.users {
		if existing.Name == u.Name {
			return ErrNameExists
		}
	}
	r.users = append(r.users, u)
	if err := r.persist(); err != nil {
		r.users = r.users[:len(r.users)-1]
		return fmt.Errorf("persist signup: %w", err)
	}
	r.log.Info("user signed up", zap.String("name", u.Name), zap.String("id", u.ID))
	return nil
}

// ReplaceTickets swaps the identified user's ticket sequence and
// persists the whole collection. The previous sequence is restored in
// memory when the write fails.
func (r *UserRepo) ReplaceTickets(userID string, tickets []model.Ticket) error {
	for i := range r.users {
		if r.users[i].ID != userID {
			continue
		}
		prev := r.users[i].TicketsBooked
		r.users[i].TicketsBooked = tickets
		if err := r.persist(); err != nil {
			r.users[i].TicketsBooked = prev
			return fmt.Errorf("persist tickets: %w", err)
		}
		return nil
	}
	return ErrUserNotFound
}

func (r *UserRepo) persist() error {
	if r.damaged {
		if err := store.Backup(r.path); err != nil {
			return err
		}
		r.damaged = false
	}
	return store.Save(r.path, r.users)
}
