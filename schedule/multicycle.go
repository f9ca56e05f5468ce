package schedule

import (
	"fmt"

	"github.com/raoldfi/tennis-app-sub001/models"
)

// CircleStrategy is the default scheduler. It repeats circle-method round
// robins for as many cycles as the league's match target requires, reversing
// home and away on every rematch and balancing first-meeting side assignment
// by current home counts. Reversal takes precedence over the count
// comparison, so individual home/away splits can drift a game or two from
// the ideal; the balanced strategy serves callers who need tighter splits.
type CircleStrategy struct{}

func (s *CircleStrategy) Name() string { return StrategyCircle }

func (s *CircleStrategy) Generate(league *models.League, teams []*models.Team) (*Result, error) {
	matchesPerTeam := league.NumMatches
	if err := validateInputs(league, teams, matchesPerTeam); err != nil {
		return nil, err
	}

	n := len(teams)
	ids := make([]int, n)
	inputPos := make(map[int]int, n)
	for i, t := range teams {
		ids[i] = t.ID
		inputPos[t.ID] = i
	}
	rounds := circleRounds(ids)

	// Each cycle gives every team n-1 matches (n even) or n-1 with one bye
	// per team (n odd), so this many full cycles always suffice.
	cyclesNeeded := (matchesPerTeam + n - 2) / (n - 1)
	targetPairs := n * matchesPerTeam / 2

	played := make(map[int]int, n)
	homeCount := make(map[int]int, n)
	meetings := make(map[pairKey]int)
	lastHome := make(map[pairKey]int)

	out := make([]Pairing, 0, targetPairs)
	roundNum := 0

cycles:
	for cycle := 0; cycle < cyclesNeeded; cycle++ {
		for _, round := range rounds {
			if len(out) == targetPairs {
				break cycles
			}
			roundNum++
			for _, pair := range round {
				a, b := pair[0], pair[1]
				if played[a] == matchesPerTeam || played[b] == matchesPerTeam {
					continue
				}

				k := newPairKey(a, b)
				var home, away int
				switch {
				case meetings[k] > 0:
					// Rematch: whoever hosted last time travels now.
					home, away = a, b
					if lastHome[k] == a {
						home, away = b, a
					}
				case homeCount[a] < homeCount[b]:
					home, away = a, b
				case homeCount[b] < homeCount[a]:
					home, away = b, a
				case inputPos[a] < inputPos[b]:
					home, away = a, b
				default:
					home, away = b, a
				}

				out = append(out, Pairing{HomeID: home, AwayID: away, Round: roundNum})
				played[a]++
				played[b]++
				homeCount[home]++
				meetings[k]++
				lastHome[k] = home

				if len(out) == targetPairs {
					break cycles
				}
			}
		}
	}

	if len(out) != targetPairs {
		return nil, fmt.Errorf("%w: emitted %d of %d pairings after %d cycles",
			ErrGenerationExhausted, len(out), targetPairs, cyclesNeeded)
	}

	return &Result{
		Pairings:         out,
		StructuralRounds: roundNum,
		ScheduleProgress: float64(targetPairs) / float64(n/2),
	}, nil
}
