// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"log/slog"
	"sort"
	"time"

	"github.com/danielhkuo/spart-awards/catalog"
	"github.com/danielhkuo/spart-awards/store"
)

// Sort keys and orders for the voter log.
const (
	SortByLastCast = "lastCast"
	SortByEmail    = "email"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// VoteLine is one (category, nominee) choice in a voter's history.
type VoteLine struct {
	CategoryTitle string
	NomineeName   string
}

// VoterHistory is everything one voter has cast this round.
type VoterHistory struct {
	Email      string
	Votes      []VoteLine
	LastCastAt time.Time
}

// Results is the full projection of a ledger against a catalog.
// PerCategory maps categoryID -> nomineeName -> count, with an entry for
// every catalog (category, nominee) pair so zero-vote nominees still appear.
type Results struct {
	PerCategory map[string]map[string]int
	Voters      []VoterHistory
}

// Winner is the leading nominee of a category.
type Winner struct {
	Name  string
	Count int
}

// Compute derives per-category counts and per-voter histories from ledger
// records. It owns no state and takes no locks; a tally computed during
// concurrent submissions reflects whatever prefix of them has committed.
//
// Records store category titles, so each one is reverse-resolved to a
// category id via the catalog. Records that no longer resolve (the catalog
// changed between submission and tally) are skipped, not fatal.
func Compute(cat *catalog.Catalog, votes []store.Vote) Results {
	counts := make(map[string]map[string]int)
	for _, c := range cat.Categories() {
		counts[c.ID] = make(map[string]int, len(c.Nominees))
		for _, n := range c.Nominees {
			counts[c.ID][n.Name] = 0
		}
	}

	byEmail := make(map[string]*VoterHistory)
	var order []string

	for _, v := range votes {
		categoryID, ok := cat.IDByTitle(v.CategoryTitle)
		if !ok {
			slog.Warn("skipping vote for unknown category", "category", v.CategoryTitle, "nominee", v.NomineeName)
			continue
		}
		if _, ok := counts[categoryID][v.NomineeName]; !ok {
			slog.Warn("skipping vote for unknown nominee", "category", v.CategoryTitle, "nominee", v.NomineeName)
			continue
		}

		counts[categoryID][v.NomineeName]++

		voter, ok := byEmail[v.VoterEmail]
		if !ok {
			voter = &VoterHistory{Email: v.VoterEmail, LastCastAt: v.CastAt}
			byEmail[v.VoterEmail] = voter
			order = append(order, v.VoterEmail)
		}
		voter.Votes = append(voter.Votes, VoteLine{
			CategoryTitle: v.CategoryTitle,
			NomineeName:   v.NomineeName,
		})
		if v.CastAt.After(voter.LastCastAt) {
			voter.LastCastAt = v.CastAt
		}
	}

	voters := make([]VoterHistory, 0, len(order))
	for _, email := range order {
		voters = append(voters, *byEmail[email])
	}

	return Results{PerCategory: counts, Voters: voters}
}

// WinnerOf picks the winning nominee for a category: strictly highest count,
// ties broken by first occurrence in the catalog's nominee order. Walking the
// nominees in catalog order with a strict > comparison makes the tie-break
// deterministic across calls. A category with no votes at all has no winner.
func WinnerOf(category catalog.Category, counts map[string]int) (Winner, bool) {
	best := Winner{Count: -1}
	seen := make(map[string]bool, len(category.Nominees))
	for _, n := range category.Nominees {
		if seen[n.Name] {
			continue
		}
		seen[n.Name] = true
		if c := counts[n.Name]; c > best.Count {
			best = Winner{Name: n.Name, Count: c}
		}
	}
	if best.Count <= 0 {
		return Winner{}, false
	}
	return best, true
}

// SortVoters orders the voter log in place. sortBy is "email" or "lastCast"
// (the default for anything else); order is "asc" or "desc" (default).
// The sort is stable so equal keys keep their ledger order.
func SortVoters(voters []VoterHistory, sortBy, order string) {
	asc := order == OrderAsc

	sort.SliceStable(voters, func(i, j int) bool {
		var less bool
		switch sortBy {
		case SortByEmail:
			less = voters[i].Email < voters[j].Email
		default:
			less = voters[i].LastCastAt.Before(voters[j].LastCastAt)
		}
		if asc {
			return less
		}
		return !less && !equalKey(voters[i], voters[j], sortBy)
	})
}

func equalKey(a, b VoterHistory, sortBy string) bool {
	if sortBy == SortByEmail {
		return a.Email == b.Email
	}
	return a.LastCastAt.Equal(b.LastCastAt)
}
