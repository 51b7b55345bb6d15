// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruslan Akhmetov

// Package server implements the reference driver service: an in-memory
// collection behind the REST surface the sync client consumes. It exists so
// the client can be exercised end to end without an external backend.
package server

import (
	"errors"
	"strconv"
	"sync"

	"github.com/akhmetovr/go-grid-keeper/models"
)

// ErrDriverNotFound is returned for ids the store has never assigned or has
// already deleted.
var ErrDriverNotFound = errors.New("driver not found")

// DriverStore is the in-memory collection owned by the reference server.
// Ids are numeric strings assigned in insertion order.
type DriverStore struct {
	mu      sync.RWMutex
	drivers []models.Driver
	nextID  int
}

// NewDriverStore creates an empty store.
func NewDriverStore() *DriverStore {
	return &DriverStore{nextID: 1}
}

// Seed replaces the collection with the given drivers and advances the id
// counter past the highest numeric id present.
func (s *DriverStore) Seed(drivers []models.Driver) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drivers = append([]models.Driver(nil), drivers...)
	s.nextID = 1
	for _, d := range drivers {
		if id, err := strconv.Atoi(d.ID); err == nil && id >= s.nextID {
			s.nextID = id + 1
		}
	}
}

// List returns the page matching filter and sort, the total match count
// before pagination, and whether more matches follow the page.
func (s *DriverStore) List(filter models.ListFilter, sort models.ListSort) ([]models.Driver, int, bool) {
	s.mu.RLock()
	snapshot := append([]models.Driver(nil), s.drivers...)
	s.mu.RUnlock()

	matched := models.FilterDrivers(snapshot, filter)
	models.SortDrivers(matched, sort)

	total := len(matched)
	page := models.PageDrivers(matched, filter.Skip, filter.Limit)

	skip := filter.Skip
	if skip < 0 {
		skip = 0
	}
	hasMore := skip+len(page) < total

	return page, total, hasMore
}

// Get returns the driver with the given id.
func (s *DriverStore) Get(id string) (models.Driver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.drivers {
		if d.ID == id {
			return d, nil
		}
	}
	return models.Driver{}, ErrDriverNotFound
}

// Create validates the payload, assigns the next numeric id and stores the
// new driver.
func (s *DriverStore) Create(payload models.DriverPayload) (models.Driver, error) {
	if err := payload.Validate(); err != nil {
		return models.Driver{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d := payload.WithID(strconv.Itoa(s.nextID))
	s.nextID++
	s.drivers = append(s.drivers, d)
	return d, nil
}

// Update applies the patch to the driver with the given id. The patched
// record must still satisfy the driver invariants.
func (s *DriverStore) Update(id string, patch models.DriverPatch) (models.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.drivers {
		if s.drivers[i].ID != id {
			continue
		}

		patched := s.drivers[i]
		patch.ApplyTo(&patched)
		if err := patched.Validate(); err != nil {
			return models.Driver{}, err
		}

		s.drivers[i] = patched
		return patched, nil
	}
	return models.Driver{}, ErrDriverNotFound
}

// Delete removes and returns the driver with the given id.
func (s *DriverStore) Delete(id string) (models.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.drivers {
		if s.drivers[i].ID == id {
			deleted := s.drivers[i]
			s.drivers = append(s.drivers[:i], s.drivers[i+1:]...)
			return deleted, nil
		}
	}
	return models.Driver{}, ErrDriverNotFound
}

// DefaultGrid is the seed collection the reference server starts with.
func DefaultGrid() []models.Driver {
	return []models.Driver{
		{ID: "1", Name: "Lewis Hamilton", Team: "Ferrari", FirstSeason: 2007, Races: 356, Wins: 105},
		{ID: "2", Name: "Max Verstappen", Team: "Red Bull", FirstSeason: 2015, Races: 209, Wins: 63},
		{ID: "3", Name: "Charles Leclerc", Team: "Ferrari", FirstSeason: 2018, Races: 147, Wins: 8},
		{ID: "4", Name: "Lando Norris", Team: "McLaren", FirstSeason: 2019, Races: 126, Wins: 4},
		{ID: "5", Name: "Fernando Alonso", Team: "Aston Martin", FirstSeason: 2001, Races: 401, Wins: 32},
	}
}
