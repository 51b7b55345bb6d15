package models

import (
	"sort"
	"strings"
)

// ListFilter narrows a driver listing. Zero values mean "no constraint".
type ListFilter struct {
	// Team is a case-insensitive substring match on the team field.
	Team string
	// Name is a case-insensitive substring match on the name field.
	Name string
	// MinWins keeps drivers with at least this many wins.
	MinWins *int
	// Skip and Limit paginate the filtered result. Limit 0 means no limit.
	Skip  int
	Limit int
}

// SortOrder is a listing direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ListSort orders a driver listing by a single field. An empty By leaves the
// listing order untouched.
type ListSort struct {
	// By is a Driver field name: id, name, team, firstSeason, races or wins.
	By string
	// Order defaults to ascending when empty.
	Order SortOrder
}

// FilterDrivers returns the drivers matching the filter's team/name/minWins
// constraints, in their original order. Pagination is not applied here; see
// PageDrivers.
func FilterDrivers(drivers []Driver, filter ListFilter) []Driver {
	result := make([]Driver, 0, len(drivers))
	team := strings.ToLower(filter.Team)
	name := strings.ToLower(filter.Name)
	for _, d := range drivers {
		if team != "" && !strings.Contains(strings.ToLower(d.Team), team) {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(d.Name), name) {
			continue
		}
		if filter.MinWins != nil && d.Wins < *filter.MinWins {
			continue
		}
		result = append(result, d)
	}
	return result
}

// SortDrivers orders drivers in place according to s. Unknown or empty sort
// fields leave the slice untouched.
func SortDrivers(drivers []Driver, s ListSort) {
	if s.By == "" {
		return
	}

	less := func(a, b Driver) bool {
		switch s.By {
		case "id":
			return a.ID < b.ID
		case "name":
			return a.Name < b.Name
		case "team":
			return a.Team < b.Team
		case "firstSeason":
			return a.FirstSeason < b.FirstSeason
		case "races":
			return a.Races < b.Races
		case "wins":
			return a.Wins < b.Wins
		default:
			return false
		}
	}

	sort.SliceStable(drivers, func(i, j int) bool {
		if s.Order == SortDesc {
			return less(drivers[j], drivers[i])
		}
		return less(drivers[i], drivers[j])
	})
}

// PageDrivers applies skip/limit pagination. Limit 0 means no limit.
func PageDrivers(drivers []Driver, skip, limit int) []Driver {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(drivers) {
		return []Driver{}
	}
	paged := drivers[skip:]
	if limit > 0 && limit < len(paged) {
		paged = paged[:limit]
	}
	return paged
}
