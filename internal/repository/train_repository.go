package repository

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/iliyamo/train-seat-reservation/internal/model"
	"github.com/iliyamo/train-seat-reservation/internal/store"
)

// TrainRepo owns the train collection and its backing file. Trains are
// created by the seeding path and mutated only through seat-state
// transitions; nothing here ever deletes a record.
type TrainRepo struct {
	path    string
	log     *zap.Logger
	trains  []model.Train
	damaged bool
}

// NewTrainRepo loads the train store at path, with the same tolerance
// for missing, empty and corrupt files as NewUserRepo.
func NewTrainRepo(path string, log *zap.Logger) (*TrainRepo, error) {
	trains, err := store.Load[model.Train](path)
	r := &TrainRepo{path: path, log: log, trains: trains}
	if err != nil {
		if !store.IsCorrupt(err) {
			return nil, err
		}
		r.damaged = true
		log.Warn("train store failed to parse, continuing with empty collection",
			zap.String("path", path), zap.Error(err))
	}
	return r, nil
}

// SearchByRoute returns trains whose route contains both stops with
// source strictly before destination in station order. A blank source
// or destination, or no match, yields an empty slice, never an error.
func (r *TrainRepo) SearchByRoute(source, destination string) []model.Train {
	out := []model.Train{}
	if source == "" || destination == "" {
		return out
	}
	for _, t := range r.trains {
		si := slices.Index(t.Stations, source)
		di := slices.Index(t.Stations, destination)
		if si >= 0 && di >= 0 && si < di {
			out = append(out, t)
		}
	}
	return out
}

// GetByID fetches a train by its identifier.
func (r *TrainRepo) GetByID(id string) (model.Train, error) {
	for _, t := range r.trains {
		if t.TrainID == id {
			return t, nil
		}
	}
	return model.Train{}, ErrTrainNotFound
}

// UpdateSeats persists the given train's current seat grid. The record
// matching TrainID is replaced in place, or appended when absent; a
// blind append here would pile up duplicate train records with every
// booking.
func (r *TrainRepo) UpdateSeats(t model.Train) error {
	return r.Upsert(t)
}

// Upsert replaces the stored record with the same TrainID or inserts
// the train when no record matches, then persists the collection. The
// in-memory collection is restored when the write fails.
func (r *TrainRepo) Upsert(t model.Train) error {
	idx := -1
	for i := range r.trains {
		if r.trains[i].TrainID == t.TrainID {
			idx = i
			break
		}
	}
	if idx >= 0 {
		prev := r.trains[idx]
		r.trains[idx] = t
		if err := r.persist(); err != nil {
			r.trains[idx] = prev
			return fmt.Errorf("persist train %s: %w", t.TrainID, err)
		}
		return nil
	}
	r.trains = append(r.trains, t)
	if err := r.persist(); err != nil {
		r.trains = r.trains[:len(r.trains)-1]
		return fmt.Errorf("persist train %s: %w", t.TrainID, err)
	}
	return nil
}

// Seed inserts the train, or refreshes an existing record's schedule
// while keeping its stored seat grid. Re-seeding must never reset
// booked cells back to free.
func (r *TrainRepo) Seed(t model.Train) error {
	if existing, err := r.GetByID(t.TrainID); err == nil {
		t.Seats = existing.Seats
	}
	return r.Upsert(t)
}

// All returns the loaded collection. Used by the seeding command to
// report what ended up in the store.
func (r *TrainRepo) All() []model.Train {
	return slices.Clone(r.trains)
}

func (r *TrainRepo) persist() error {
	if r.damaged {
		if err := store.Backup(r.path); err != nil {
			return err
		}
		r.damaged = false
	}
	return store.Save(r.path, r.trains)
}
