package schedule

import "testing"

func collectPairs(rounds [][][2]int) map[pairKey]int {
	seen := make(map[pairKey]int)
	for _, round := range rounds {
		for _, p := range round {
			seen[newPairKey(p[0], p[1])]++
		}
	}
	return seen
}

func TestCircleRoundsEven(t *testing.T) {
	ids := []int{10, 20, 30, 40}
	rounds := circleRounds(ids)

	if len(rounds) != 3 {
		t.Fatalf("expected 3 rounds for 4 teams, got %d", len(rounds))
	}
	for i, round := range rounds {
		if len(round) != 2 {
			t.Errorf("round %d: expected 2 pairs, got %d", i+1, len(round))
		}
		seen := make(map[int]bool)
		for _, p := range round {
			if seen[p[0]] || seen[p[1]] {
				t.Errorf("round %d: team appears twice in %v", i+1, round)
			}
			seen[p[0]] = true
			seen[p[1]] = true
		}
	}

	pairs := collectPairs(rounds)
	if len(pairs) != 6 {
		t.Errorf("expected 6 distinct pairs, got %d", len(pairs))
	}
	for k, n := range pairs {
		if n != 1 {
			t.Errorf("pair %v scheduled %d times, expected exactly once", k, n)
		}
	}
}

func TestCircleRoundsPinnedSlot(t *testing.T) {
	ids := []int{1, 2, 3, 4, 5, 6}
	for i, round := range circleRounds(ids) {
		found := false
		for _, p := range round {
			if p[0] == 1 || p[1] == 1 {
				found = true
			}
		}
		if !found {
			t.Errorf("round %d: pinned team 1 missing", i+1)
		}
	}
}

func TestCircleRoundsSideAlternation(t *testing.T) {
	// The pinned team sits at the low circle position in every round, so
	// round parity alone decides its side.
	ids := []int{1, 2, 3, 4}
	for r, round := range circleRounds(ids) {
		for _, p := range round {
			if p[0] != 1 && p[1] != 1 {
				continue
			}
			wantHome := r%2 == 0
			if (p[0] == 1) != wantHome {
				t.Errorf("round %d: pinned team side = home=%v, want home=%v", r+1, p[0] == 1, wantHome)
			}
		}
	}
}

func TestCircleRoundsOdd(t *testing.T) {
	ids := []int{1, 2, 3, 4, 5}
	rounds := circleRounds(ids)

	if len(rounds) != 5 {
		t.Fatalf("expected 5 rounds for 5 teams, got %d", len(rounds))
	}

	byes := make(map[int]int)
	for i, round := range rounds {
		if len(round) != 2 {
			t.Errorf("round %d: expected 2 pairs, got %d", i+1, len(round))
		}
		playing := make(map[int]bool)
		for _, p := range round {
			playing[p[0]] = true
			playing[p[1]] = true
		}
		for _, id := range ids {
			if !playing[id] {
				byes[id]++
			}
		}
	}
	for _, id := range ids {
		if byes[id] != 1 {
			t.Errorf("team %d sat out %d rounds, expected exactly 1", id, byes[id])
		}
	}

	pairs := collectPairs(rounds)
	if len(pairs) != 10 {
		t.Errorf("expected 10 distinct pairs, got %d", len(pairs))
	}
}

func TestCircleRoundsTwoTeams(t *testing.T) {
	rounds := circleRounds([]int{7, 9})
	if len(rounds) != 1 || len(rounds[0]) != 1 {
		t.Fatalf("expected one round with one pair, got %v", rounds)
	}
	if rounds[0][0] != [2]int{7, 9} {
		t.Errorf("expected pair [7 9], got %v", rounds[0][0])
	}
}
