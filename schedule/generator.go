package schedule

import (
	"fmt"

	"github.com/raoldfi/tennis-app-sub001/models"
)

// Strategy names accepted by Get.
const (
	StrategyCircle   = "circle"
	StrategyGreedy   = "greedy"
	StrategyBalanced = "balanced"
)

// Pairing is one generated fixture before it is materialized into a
// models.Match: who plays whom, who is nominally home, and the 1-indexed
// structural round it was emitted in.
type Pairing struct {
	HomeID int `json:"home_team_id"`
	AwayID int `json:"away_team_id"`
	Round  int `json:"round"`
}

// Result is the output of a generation run.
//
// StructuralRounds counts the integer rounds actually emitted.
// ScheduleProgress is totalPairs / idealPairsPerRound, a display-only metric
// that may be fractional when a final cycle is truncated; it is deliberately
// kept separate from the per-pairing round number.
type Result struct {
	Pairings         []Pairing `json:"pairings"`
	StructuralRounds int       `json:"structural_rounds"`
	ScheduleProgress float64   `json:"schedule_progress"`
}

// Strategy generates the full pairing list for a league. Implementations keep
// all working state local to a single Generate call; exported fields such as
// GreedyStrategy.Seed are configuration set before the call.
type Strategy interface {
	Name() string
	Generate(league *models.League, teams []*models.Team) (*Result, error)
}

// Get returns a Strategy by name. The empty string selects the circle-method
// scheduler, which is the default engine.
func Get(name string) (Strategy, error) {
	switch name {
	case "", StrategyCircle:
		return &CircleStrategy{}, nil
	case StrategyGreedy:
		return &GreedyStrategy{}, nil
	case StrategyBalanced:
		return &BalancedStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown scheduling strategy: %q", name)
	}
}

// validateInputs enforces the shared preconditions. It runs before any
// generation work so a failed call never emits partial output.
func validateInputs(league *models.League, teams []*models.Team, matchesPerTeam int) error {
	if len(teams) < 2 {
		return fmt.Errorf("%w: got %d, need at least 2", ErrInvalidParticipantCount, len(teams))
	}
	for _, t := range teams {
		if t.LeagueID != league.ID {
			return fmt.Errorf("%w: team %q (id %d) belongs to league %d, expected league %d",
				ErrMismatchedLeague, t.Name, t.ID, t.LeagueID, league.ID)
		}
	}
	if matchesPerTeam < 1 {
		return fmt.Errorf("%w: matches per team must be at least 1, got %d", ErrInvalidMatchCount, matchesPerTeam)
	}
	if len(teams)*matchesPerTeam%2 != 0 {
		return fmt.Errorf("%w: %d teams x %d matches = %d slots",
			ErrUnsatisfiableSlotParity, len(teams), matchesPerTeam, len(teams)*matchesPerTeam)
	}
	return nil
}

// pairKey identifies an unordered team pair in the pair-count ledger.
type pairKey struct {
	a, b int
}

func newPairKey(x, y int) pairKey {
	if x > y {
		x, y = y, x
	}
	return pairKey{x, y}
}
