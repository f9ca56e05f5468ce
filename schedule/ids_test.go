package schedule

import (
	"testing"

	"github.com/raoldfi/tennis-app-sub001/models"
)

func TestBaseMatchIDDeterministic(t *testing.T) {
	a := BaseMatchID(testLeague(6))
	b := BaseMatchID(testLeague(6))
	if a != b {
		t.Errorf("same league identity produced %d and %d", a, b)
	}
	if a < 100000 || a > 999999 {
		t.Errorf("base id %d outside [100000, 999999]", a)
	}
}

func TestBaseMatchIDSensitiveToIdentity(t *testing.T) {
	base := testLeague(6)
	variants := []*models.League{
		{ID: base.ID + 1, Name: base.Name, Year: base.Year, Section: base.Section, Division: base.Division},
		{ID: base.ID, Name: "Santa Fe Metro", Year: base.Year, Section: base.Section, Division: base.Division},
		{ID: base.ID, Name: base.Name, Year: base.Year + 1, Section: base.Section, Division: base.Division},
		{ID: base.ID, Name: base.Name, Year: base.Year, Section: "Intermountain", Division: base.Division},
		{ID: base.ID, Name: base.Name, Year: base.Year, Section: base.Section, Division: "4.5"},
	}
	want := BaseMatchID(base)
	for i, v := range variants {
		if got := BaseMatchID(v); got == want {
			t.Errorf("variant %d: changed identity field produced the same base id %d", i, got)
		}
	}
}

func TestAssignIDsSequential(t *testing.T) {
	league := testLeague(6)
	pairings := []Pairing{
		{HomeID: 10, AwayID: 20, Round: 1},
		{HomeID: 30, AwayID: 40, Round: 1},
		{HomeID: 20, AwayID: 30, Round: 2},
	}
	matches := AssignIDs(league, pairings)

	base := BaseMatchID(league)
	for i, m := range matches {
		if m.ID != base+i+1 {
			t.Errorf("match %d: id %d, want %d", i, m.ID, base+i+1)
		}
		if m.LeagueID != league.ID {
			t.Errorf("match %d: league id %d, want %d", i, m.LeagueID, league.ID)
		}
		if m.Status != models.MatchStatusUnscheduled {
			t.Errorf("match %d: status %q, want %q", i, m.Status, models.MatchStatusUnscheduled)
		}
		if m.ScheduledAt != nil || m.Venue != nil {
			t.Errorf("match %d: date and venue must stay unset", i)
		}
		if m.HomeTeamID != pairings[i].HomeID || m.AwayTeamID != pairings[i].AwayID {
			t.Errorf("match %d: sides %d/%d, want %d/%d",
				i, m.HomeTeamID, m.AwayTeamID, pairings[i].HomeID, pairings[i].AwayID)
		}
	}
}

func TestRegenerationReproducesIDs(t *testing.T) {
	league := testLeague(6)
	teams := testTeams(42, 4)

	run := func() []int {
		res, err := (&CircleStrategy{}).Generate(league, teams)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		matches := AssignIDs(league, res.Pairings)
		ids := make([]int, len(matches))
		for i, m := range matches {
			ids[i] = m.ID
		}
		return ids
	}

	first := run()
	second := run()
	if len(first) != len(second) {
		t.Fatalf("runs produced %d and %d matches", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("id %d differs between runs: %d vs %d", i, first[i], second[i])
		}
	}
}
