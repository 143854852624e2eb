// Command seedtrains is the admin path that populates the train store.
// With no arguments it seeds a small built-in schedule set; given a
// path to a JSON array of trains it seeds those instead. Running it
// twice is safe: records are matched by train_id, never duplicated,
// and the seat grid of an existing train is kept so re-seeding does
// not wipe bookings.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/iliyamo/train-seat-reservation/internal/config"
	"github.com/iliyamo/train-seat-reservation/internal/logger"
	"github.com/iliyamo/train-seat-reservation/internal/model"
	"github.com/iliyamo/train-seat-reservation/internal/repository"
)

func main() {
	cfg := config.Load()
	zl, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer zl.Sync() //nolint:errcheck

	trains := defaultTrains()
	if len(os.Args) > 1 {
		trains, err = readTrains(os.Args[1])
		if err != nil {
			log.Fatalf("read schedule file: %v", err)
		}
	}

	repo, err := repository.NewTrainRepo(cfg.TrainsFile, zl)
	if err != nil {
		log.Fatalf("open train store: %v", err)
	}
	for _, t := range trains {
		if err := repo.Seed(t); err != nil {
			log.Fatalf("seed train %s: %v", t.TrainID, err)
		}
	}
	fmt.Printf("train store at %s now holds %d trains\n", cfg.TrainsFile, len(repo.All()))
}

func readTrains(path string) ([]model.Train, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var trains []model.Train
	if err := json.Unmarshal(data, &trains); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return trains, nil
}

func defaultTrains() []model.Train {
	grid := func(rows, cols int) [][]int {
		g := make([][]int, rows)
		for i := range g {
			g[i] = make([]int, cols)
		}
		return g
	}
	return []model.Train{
		{
			TrainID:  "T-1001",
			TrainNo:  "12301",
			Stations: []string{"Delhi", "Agra", "Bhopal", "Nagpur", "Mumbai"},
			StationTimes: map[string]string{
				"Delhi": "06:00", "Agra": "08:10", "Bhopal": "12:45",
				"Nagpur": "17:30", "Mumbai": "23:05",
			},
			Seats: grid(6, 4),
		},
		{
			TrainID:  "T-1002",
			TrainNo:  "12860",
			Stations: []string{"Mumbai", "Pune", "Solapur", "Hyderabad"},
			StationTimes: map[string]string{
				"Mumbai": "07:15", "Pune": "10:00", "Solapur": "14:20",
				"Hyderabad": "19:40",
			},
			Seats: grid(4, 6),
		},
		{
			TrainID:  "T-1003",
			TrainNo:  "12002",
			Stations: []string{"Delhi", "Kanpur", "Allahabad", "Varanasi"},
			StationTimes: map[string]string{
				"Delhi": "05:30", "Kanpur": "10:05", "Allahabad": "12:50",
				"Varanasi": "15:35",
			},
			Seats: grid(5, 5),
		},
	}
}
