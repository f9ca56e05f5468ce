package schedule

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/raoldfi/tennis-app-sub001/models"
)

// Match identifiers are derived, not serial: the league identity hashes to a
// six-digit base and fixtures count up from it, so regenerating the same
// league always lands on the same IDs and two leagues only collide if their
// identity fields are identical.
const (
	matchIDFloor = 100000
	matchIDRange = 900000
)

// BaseMatchID derives the starting match identifier for a league from its
// identity fields. The result is always in [100000, 999999].
func BaseMatchID(l *models.League) int {
	identity := fmt.Sprintf("%d|%s|%d|%s|%s", l.ID, l.Name, l.Year, l.Section, l.Division)
	sum := sha256.Sum256([]byte(identity))
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v%matchIDRange) + matchIDFloor
}

// MatchID returns the identifier for the offset-th fixture of a generation
// run, counting from 1 in emission order.
func MatchID(base, offset int) int {
	return base + offset
}

// AssignIDs materializes a generation result into match rows for a league,
// stamping each fixture with its deterministic identifier.
func AssignIDs(league *models.League, pairings []Pairing) []*models.Match {
	base := BaseMatchID(league)
	matches := make([]*models.Match, len(pairings))
	for i, p := range pairings {
		matches[i] = &models.Match{
			ID:         MatchID(base, i+1),
			LeagueID:   league.ID,
			HomeTeamID: p.HomeID,
			AwayTeamID: p.AwayID,
			Round:      p.Round,
			Status:     models.MatchStatusUnscheduled,
		}
	}
	return matches
}
