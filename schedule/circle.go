package schedule

// byeID marks the synthetic slot appended when the team count is odd. Team IDs
// are always positive, so -1 can never collide with a real team.
const byeID = -1

// circleRounds produces one complete single round-robin over the given team
// IDs using the circle method: slot 0 is pinned and the remaining slots rotate
// one position per round. Each returned round is a list of [home, away] pairs;
// home and away alternate with round parity as a first-pass balance hint.
//
// For an even team count the result is exactly len(ids)-1 rounds of
// len(ids)/2 disjoint pairs covering every unordered pair once. For an odd
// count a bye slot is appended and its pairings stripped, yielding len(ids)
// rounds in which every team sits out exactly once.
func circleRounds(teamIDs []int) [][][2]int {
	ids := teamIDs
	if len(ids)%2 != 0 {
		ids = make([]int, 0, len(teamIDs)+1)
		ids = append(ids, teamIDs...)
		ids = append(ids, byeID)
	}

	n := len(ids)
	circle := make([]int, n)
	copy(circle, ids)

	rounds := make([][][2]int, 0, n-1)
	for r := 0; r < n-1; r++ {
		var pairs [][2]int
		for i := 0; i < n/2; i++ {
			a, b := circle[i], circle[n-1-i]
			if a == byeID || b == byeID {
				continue
			}
			if r%2 == 0 {
				pairs = append(pairs, [2]int{a, b})
			} else {
				pairs = append(pairs, [2]int{b, a})
			}
		}
		if len(pairs) > 0 {
			rounds = append(rounds, pairs)
		}

		// Rotate everything except the pinned slot 0: the last element moves
		// to position 1 and the rest shift one place toward the end.
		last := circle[n-1]
		copy(circle[2:], circle[1:n-1])
		circle[1] = last
	}
	return rounds
}
