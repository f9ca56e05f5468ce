package schedule

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/raoldfi/tennis-app-sub001/models"
)

func testLeague(numMatches int) *models.League {
	return &models.League{
		ID:         42,
		Name:       "Albuquerque Metro",
		Year:       2026,
		Section:    "Southwest",
		Division:   "4.0",
		NumMatches: numMatches,
	}
}

func testTeams(leagueID, n int) []*models.Team {
	teams := make([]*models.Team, n)
	for i := range teams {
		teams[i] = &models.Team{
			ID:       (i + 1) * 10,
			LeagueID: leagueID,
			Name:     fmt.Sprintf("Team %c", 'A'+i),
		}
	}
	return teams
}

func TestGet(t *testing.T) {
	cases := []struct {
		name string
		want string
		ok   bool
	}{
		{"", StrategyCircle, true},
		{"circle", StrategyCircle, true},
		{"greedy", StrategyGreedy, true},
		{"balanced", StrategyBalanced, true},
		{"swiss", "", false},
	}
	for _, tc := range cases {
		s, err := Get(tc.name)
		if !tc.ok {
			if err == nil {
				t.Errorf("Get(%q): expected error, got %s", tc.name, s.Name())
			}
			continue
		}
		if err != nil {
			t.Errorf("Get(%q): unexpected error: %v", tc.name, err)
			continue
		}
		if s.Name() != tc.want {
			t.Errorf("Get(%q).Name() = %q, want %q", tc.name, s.Name(), tc.want)
		}
	}
}

func TestValidationRejections(t *testing.T) {
	mixed := testTeams(42, 4)
	mixed[2].LeagueID = 99

	cases := []struct {
		name    string
		teams   []*models.Team
		matches int
		wantErr error
	}{
		{"no teams", nil, 3, ErrInvalidParticipantCount},
		{"one team", testTeams(42, 1), 3, ErrInvalidParticipantCount},
		{"foreign league", mixed, 3, ErrMismatchedLeague},
		{"zero matches", testTeams(42, 4), 0, ErrInvalidMatchCount},
		{"negative matches", testTeams(42, 4), -2, ErrInvalidMatchCount},
		{"odd slot total 3x3", testTeams(42, 3), 3, ErrUnsatisfiableSlotParity},
		{"odd slot total 5x3", testTeams(42, 5), 3, ErrUnsatisfiableSlotParity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			league := testLeague(tc.matches)
			for _, strat := range []Strategy{&CircleStrategy{}, &BalancedStrategy{}} {
				res, err := strat.Generate(league, tc.teams)
				if !errors.Is(err, tc.wantErr) {
					t.Errorf("%s: expected %v, got %v", strat.Name(), tc.wantErr, err)
				}
				if res != nil {
					t.Errorf("%s: expected no partial output, got %d pairings", strat.Name(), len(res.Pairings))
				}
			}
		})
	}
}

func TestValidationErrorNamesValues(t *testing.T) {
	_, err := (&CircleStrategy{}).Generate(testLeague(3), testTeams(42, 5))
	if err == nil {
		t.Fatal("expected parity error")
	}
	for _, want := range []string{"5 teams", "3 matches", "15 slots"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}
