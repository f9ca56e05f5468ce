package schedule

import "sort"

// TeamBalance is the per-team slice of a balance report.
type TeamBalance struct {
	TeamID int `json:"team_id"`
	Home   int `json:"home"`
	Away   int `json:"away"`
	Total  int `json:"total"`
}

// BalanceReport summarizes how evenly home advantage is distributed across a
// pairing list, measured against the ideal split of the match target.
type BalanceReport struct {
	TotalMatches int           `json:"total_matches"`
	Teams        []TeamBalance `json:"teams"`

	// Ideal counts for the match target: home gets the floor half, away
	// gets the remainder.
	IdealHome int `json:"ideal_home"`
	IdealAway int `json:"ideal_away"`

	// Observed extremes across all teams.
	MinHome int `json:"min_home"`
	MaxHome int `json:"max_home"`
	MinAway int `json:"min_away"`
	MaxAway int `json:"max_away"`

	// MaxDeviation is the largest distance of any observed extreme from its
	// ideal count.
	MaxDeviation int `json:"max_deviation"`

	// PerfectlyBalanced reports whether every team sits exactly on the
	// ideal counts.
	PerfectlyBalanced bool `json:"perfectly_balanced"`

	// BalancePossible reports whether a perfectly balanced schedule can
	// exist at all for this match target: it requires an even number of
	// matches per team, regardless of what the pairings achieved.
	BalancePossible bool `json:"balance_possible"`
}

// Analyze computes the balance report for a pairing list. It is a pure
// function of its inputs, never mutates the pairings, and never rejects them:
// an empty list yields an empty, perfectly balanced report.
func Analyze(pairings []Pairing, matchesPerTeam int) *BalanceReport {
	type counts struct{ home, away int }
	byTeam := make(map[int]*counts)
	tally := func(id int) *counts {
		c, ok := byTeam[id]
		if !ok {
			c = &counts{}
			byTeam[id] = c
		}
		return c
	}
	for _, p := range pairings {
		tally(p.HomeID).home++
		tally(p.AwayID).away++
	}

	idealHome := matchesPerTeam / 2
	report := &BalanceReport{
		TotalMatches:    len(pairings),
		Teams:           make([]TeamBalance, 0, len(byTeam)),
		IdealHome:       idealHome,
		IdealAway:       matchesPerTeam - idealHome,
		BalancePossible: matchesPerTeam%2 == 0,
	}

	first := true
	for id, c := range byTeam {
		report.Teams = append(report.Teams, TeamBalance{
			TeamID: id,
			Home:   c.home,
			Away:   c.away,
			Total:  c.home + c.away,
		})
		if first {
			report.MinHome, report.MaxHome = c.home, c.home
			report.MinAway, report.MaxAway = c.away, c.away
			first = false
			continue
		}
		report.MinHome = min(report.MinHome, c.home)
		report.MaxHome = max(report.MaxHome, c.home)
		report.MinAway = min(report.MinAway, c.away)
		report.MaxAway = max(report.MaxAway, c.away)
	}
	sort.Slice(report.Teams, func(i, j int) bool {
		return report.Teams[i].TeamID < report.Teams[j].TeamID
	})

	report.MaxDeviation = max(
		report.MaxHome-report.IdealHome,
		report.IdealHome-report.MinHome,
		report.MaxAway-report.IdealAway,
		report.IdealAway-report.MinAway,
	)
	if len(byTeam) == 0 {
		report.MaxDeviation = 0
	}
	report.PerfectlyBalanced = report.MaxDeviation == 0
	return report
}
