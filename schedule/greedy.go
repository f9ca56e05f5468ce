package schedule

import (
	"fmt"
	"math/rand"

	"github.com/raoldfi/tennis-app-sub001/models"
)

// GreedyStrategy emits a single round robin, assigning home advantage
// pair-by-pair to whichever side is further below its ideal home count. It
// does not consult the league's match target beyond checking it is consistent
// with a single round robin.
//
// A non-zero Seed shuffles the pair pool reproducibly before assignment;
// the zero value keeps canonical input order.
type GreedyStrategy struct {
	Seed int64
}

func (s *GreedyStrategy) Name() string { return StrategyGreedy }

func (s *GreedyStrategy) Generate(league *models.League, teams []*models.Team) (*Result, error) {
	n := len(teams)
	if err := validateInputs(league, teams, n-1); err != nil {
		return nil, err
	}
	if league.NumMatches != 0 && league.NumMatches != n-1 {
		return nil, fmt.Errorf("%w: a single round robin of %d teams gives each team %d matches, league asks for %d",
			ErrInvalidMatchCount, n, n-1, league.NumMatches)
	}

	// All unordered pairs by input position.
	pool := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pool = append(pool, [2]int{i, j})
		}
	}
	if s.Seed != 0 {
		rng := rand.New(rand.NewSource(s.Seed))
		rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	}

	ideal := float64(n-1) / 2
	homeCount := make([]int, n)
	awayCount := make([]int, n)

	pairsPerRound := n / 2

	out := make([]Pairing, 0, len(pool))
	for idx, pair := range pool {
		i, j := pair[0], pair[1]
		di := ideal - float64(homeCount[i])
		dj := ideal - float64(homeCount[j])

		home, away := i, j
		switch {
		case di > dj:
		case dj > di:
			home, away = j, i
		case awayCount[j] > awayCount[i]:
			home, away = j, i
		}

		homeCount[home]++
		awayCount[away]++
		out = append(out, Pairing{
			HomeID: teams[home].ID,
			AwayID: teams[away].ID,
			// Round is a display grouping of consecutive pairs; greedy
			// assignment does not guarantee disjoint rounds.
			Round: idx/pairsPerRound + 1,
		})
	}

	return &Result{
		Pairings:         out,
		StructuralRounds: (len(out) + pairsPerRound - 1) / pairsPerRound,
		ScheduleProgress: float64(len(out)) / float64(pairsPerRound),
	}, nil
}

// BalancedStrategy is the usage-balanced multi-round scheduler. It draws from
// a pool of ordered (home, away) permutations, always picking the pairing
// whose teams have played least, refilling the pool once drained so rematches
// become legal, and forcing the reverse orientation whenever one direction of
// a pair has been used more often than the other.
type BalancedStrategy struct{}

func (s *BalancedStrategy) Name() string { return StrategyBalanced }

type orientedPair struct {
	home, away int
}

func (s *BalancedStrategy) Generate(league *models.League, teams []*models.Team) (*Result, error) {
	matchesPerTeam := league.NumMatches
	if err := validateInputs(league, teams, matchesPerTeam); err != nil {
		return nil, err
	}

	n := len(teams)
	targetPairs := n * matchesPerTeam / 2

	full := make([]orientedPair, 0, n*(n-1))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				full = append(full, orientedPair{i, j})
			}
		}
	}

	pool := make([]orientedPair, len(full))
	copy(pool, full)

	totalUse := make([]int, n)
	homeUse := make([]int, n)
	dirCount := make(map[orientedPair]int)

	pairsPerRound := n / 2

	out := make([]Pairing, 0, targetPairs)

	// Every emission either drains the pool or follows a refill, so the loop
	// cannot need more than one refill per emitted pairing. Anything beyond
	// that bound is a bug, not a hard input.
	budget := 2 * targetPairs
	for len(out) < targetPairs {
		if budget == 0 {
			return nil, fmt.Errorf("%w: emitted %d of %d pairings",
				ErrGenerationExhausted, len(out), targetPairs)
		}
		budget--

		// Least-used eligible pairing; ties go to the lower combined home
		// usage, then to pool order, which follows input order.
		best := -1
		for i, p := range pool {
			if totalUse[p.home] == matchesPerTeam || totalUse[p.away] == matchesPerTeam {
				continue
			}
			if best == -1 {
				best = i
				continue
			}
			b := pool[best]
			sum, bestSum := totalUse[p.home]+totalUse[p.away], totalUse[b.home]+totalUse[b.away]
			if sum < bestSum || (sum == bestSum && homeUse[p.home] < homeUse[b.home]) {
				best = i
			}
		}
		if best == -1 {
			pool = pool[:0]
			pool = append(pool, full...)
			continue
		}

		p := pool[best]
		pool = append(pool[:best], pool[best+1:]...)

		if dirCount[p] > dirCount[orientedPair{p.away, p.home}] {
			p = orientedPair{p.away, p.home}
		}

		dirCount[p]++
		totalUse[p.home]++
		totalUse[p.away]++
		homeUse[p.home]++
		out = append(out, Pairing{
			HomeID: teams[p.home].ID,
			AwayID: teams[p.away].ID,
			Round:  len(out)/pairsPerRound + 1,
		})
	}

	return &Result{
		Pairings:         out,
		StructuralRounds: (len(out) + pairsPerRound - 1) / pairsPerRound,
		ScheduleProgress: float64(len(out)) / float64(pairsPerRound),
	}, nil
}
