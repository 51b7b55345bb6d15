// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruslan Akhmetov

// Package models defines the shared domain types of go-grid-keeper: the
// driver record, the partial-update and create payload shapes, the pending
// mutation queued while offline, and the listing filter/sort parameters.
package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalIDPrefix marks identifiers synthesized on the client for drivers
// created while offline. Server-assigned ids are plain numeric strings and
// never carry the prefix, so the two are distinguishable at every layer.
const LocalIDPrefix = "local-"

// MinFirstSeason is the earliest season a driver record may reference.
const MinFirstSeason = 1950

// Driver is a single record in the managed collection.
type Driver struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Team        string `json:"team"`
	FirstSeason int    `json:"firstSeason"`
	Races       int    `json:"races"`
	Wins        int    `json:"wins"`
}

// Validate checks the record invariants: name and team are required, the win
// count may not exceed the race count, and the first season must fall within
// [MinFirstSeason, current year].
func (d Driver) Validate() error {
	return validateDriverFields(d.Name, d.Team, d.FirstSeason, d.Races, d.Wins)
}

// DriverPayload is a driver without an identifier, as accepted by create
// operations. The id is assigned by the remote service, or synthesized
// locally while offline.
type DriverPayload struct {
	Name        string `json:"name"`
	Team        string `json:"team"`
	FirstSeason int    `json:"firstSeason"`
	Races       int    `json:"races"`
	Wins        int    `json:"wins"`
}

// Validate applies the same invariants as [Driver.Validate].
func (p DriverPayload) Validate() error {
	return validateDriverFields(p.Name, p.Team, p.FirstSeason, p.Races, p.Wins)
}

// WithID builds a Driver from the payload and the given identifier.
func (p DriverPayload) WithID(id string) Driver {
	return Driver{
		ID:          id,
		Name:        p.Name,
		Team:        p.Team,
		FirstSeason: p.FirstSeason,
		Races:       p.Races,
		Wins:        p.Wins,
	}
}

// DriverPatch is a partial update: nil fields are left untouched on the
// target record.
type DriverPatch struct {
	Name        *string `json:"name,omitempty"`
	Team        *string `json:"team,omitempty"`
	FirstSeason *int    `json:"firstSeason,omitempty"`
	Races       *int    `json:"races,omitempty"`
	Wins        *int    `json:"wins,omitempty"`
}

// ApplyTo overwrites only the fields present in the patch. The id of the
// target is never touched.
func (p DriverPatch) ApplyTo(d *Driver) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Team != nil {
		d.Team = *p.Team
	}
	if p.FirstSeason != nil {
		d.FirstSeason = *p.FirstSeason
	}
	if p.Races != nil {
		d.Races = *p.Races
	}
	if p.Wins != nil {
		d.Wins = *p.Wins
	}
}

// IsEmpty reports whether the patch carries no fields at all.
func (p DriverPatch) IsEmpty() bool {
	return p.Name == nil && p.Team == nil && p.FirstSeason == nil && p.Races == nil && p.Wins == nil
}

// NewLocalID synthesizes a placeholder identifier for a driver created while
// offline.
func NewLocalID() string {
	return LocalIDPrefix + uuid.NewString()
}

// IsLocalID reports whether id was synthesized locally and has not yet been
// confirmed by the remote service.
func IsLocalID(id string) bool {
	return strings.HasPrefix(id, LocalIDPrefix)
}

func validateDriverFields(name, team string, firstSeason, races, wins int) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("driver name is required")
	}
	if strings.TrimSpace(team) == "" {
		return errors.New("driver team is required")
	}
	if races < 0 {
		return errors.New("race count must be non-negative")
	}
	if wins < 0 {
		return errors.New("win count must be non-negative")
	}
	if wins > races {
		return fmt.Errorf("win count %d exceeds race count %d", wins, races)
	}
	if maxSeason := time.Now().Year(); firstSeason < MinFirstSeason || firstSeason > maxSeason {
		return fmt.Errorf("first season %d out of range [%d, %d]", firstSeason, MinFirstSeason, maxSeason)
	}
	return nil
}
