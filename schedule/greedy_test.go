package schedule

import (
	"errors"
	"reflect"
	"testing"
)

func TestGreedySingleRoundRobin(t *testing.T) {
	teams := testTeams(42, 4)
	res, err := (&GreedyStrategy{}).Generate(testLeague(3), teams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Pairings) != 6 {
		t.Fatalf("expected 6 pairings, got %d", len(res.Pairings))
	}

	pairs := make(map[pairKey]int)
	for _, p := range res.Pairings {
		pairs[newPairKey(p.HomeID, p.AwayID)]++
	}
	if len(pairs) != 6 {
		t.Errorf("expected every pair exactly once, got %d distinct pairs", len(pairs))
	}

	for _, tb := range Analyze(res.Pairings, 3).Teams {
		dev := tb.Home - tb.Away
		if dev < 0 {
			dev = -dev
		}
		if dev > 1 {
			t.Errorf("team %d: home=%d away=%d, spread exceeds 1", tb.TeamID, tb.Home, tb.Away)
		}
	}
}

func TestGreedyZeroTargetDefaultsToRoundRobin(t *testing.T) {
	teams := testTeams(42, 6)
	res, err := (&GreedyStrategy{}).Generate(testLeague(0), teams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Pairings) != 15 {
		t.Errorf("expected 15 pairings for 6 teams, got %d", len(res.Pairings))
	}
}

func TestGreedyRejectsOtherMatchTargets(t *testing.T) {
	teams := testTeams(42, 4)
	_, err := (&GreedyStrategy{}).Generate(testLeague(5), teams)
	if !errors.Is(err, ErrInvalidMatchCount) {
		t.Fatalf("expected ErrInvalidMatchCount, got %v", err)
	}
}

func TestGreedySeedIsReproducible(t *testing.T) {
	teams := testTeams(42, 8)
	league := testLeague(7)

	a, err := (&GreedyStrategy{Seed: 1234}).Generate(league, teams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := (&GreedyStrategy{Seed: 1234}).Generate(league, teams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(a.Pairings, b.Pairings) {
		t.Error("same seed produced different pairing sequences")
	}
}

func TestBalancedStrategyDoubleRoundRobin(t *testing.T) {
	teams := testTeams(42, 4)
	res, err := (&BalancedStrategy{}).Generate(testLeague(6), teams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Pairings) != 12 {
		t.Fatalf("expected 12 pairings, got %d", len(res.Pairings))
	}
	for id, n := range countAppearances(res.Pairings) {
		if n != 6 {
			t.Errorf("team %d appears %d times, expected 6", id, n)
		}
	}

	// Every pair meets twice and the second meeting swaps sides.
	meetings := make(map[pairKey][]int)
	for _, p := range res.Pairings {
		k := newPairKey(p.HomeID, p.AwayID)
		meetings[k] = append(meetings[k], p.HomeID)
	}
	for k, hosts := range meetings {
		if len(hosts) != 2 {
			t.Errorf("pair %v met %d times, expected 2", k, len(hosts))
			continue
		}
		if hosts[0] == hosts[1] {
			t.Errorf("pair %v: team %d hosted both meetings", k, hosts[0])
		}
	}

	if report := Analyze(res.Pairings, 6); !report.PerfectlyBalanced {
		t.Errorf("expected perfect balance, report: %+v", report)
	}
}

func TestBalancedStrategyRefillsPool(t *testing.T) {
	// 2 teams, 4 meetings: the two distinct orderings run out after two
	// picks, so the pool must refill and the reverse-forcing rule keeps the
	// sides alternating.
	teams := testTeams(42, 2)
	res, err := (&BalancedStrategy{}).Generate(testLeague(4), teams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Pairings) != 4 {
		t.Fatalf("expected 4 pairings, got %d", len(res.Pairings))
	}
	homes := make(map[int]int)
	for _, p := range res.Pairings {
		homes[p.HomeID]++
	}
	for id, n := range homes {
		if n != 2 {
			t.Errorf("team %d hosted %d times, expected 2", id, n)
		}
	}
}

func TestBalancedStrategyOddTarget(t *testing.T) {
	teams := testTeams(42, 6)
	res, err := (&BalancedStrategy{}).Generate(testLeague(5), teams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Pairings) != 15 {
		t.Fatalf("expected 15 pairings, got %d", len(res.Pairings))
	}
	for id, n := range countAppearances(res.Pairings) {
		if n != 5 {
			t.Errorf("team %d appears %d times, expected 5", id, n)
		}
	}
}
