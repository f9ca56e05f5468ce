package models

import "time"

// MatchStatus mirrors the match_status ENUM in the database.
type MatchStatus string

const (
	MatchStatusUnscheduled MatchStatus = "unscheduled"
	MatchStatusScheduled   MatchStatus = "scheduled"
	MatchStatusCompleted   MatchStatus = "completed"
	MatchStatusCanceled    MatchStatus = "canceled"
)

// Match is a generated fixture: who plays whom and who is nominally home.
// IDs are assigned by the scheduler before insert (never by the database) so
// that regenerating a league reproduces the same sequence. ScheduledAt and
// Venue stay nil until a separate facility-assignment step fills them; nothing
// in this service writes them.
type Match struct {
	ID          int         `json:"id" db:"id"`
	LeagueID    int         `json:"league_id" db:"league_id"`
	HomeTeamID  int         `json:"home_team_id" db:"home_team_id"`
	AwayTeamID  int         `json:"away_team_id" db:"away_team_id"`
	Round       int         `json:"round" db:"round"`
	Status      MatchStatus `json:"status" db:"status"`
	ScheduledAt *time.Time  `json:"scheduled_at,omitempty" db:"scheduled_at"`
	Venue       *string     `json:"venue,omitempty" db:"venue"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`

	HomeTeam *Team `json:"home_team,omitempty" db:"-"`
	AwayTeam *Team `json:"away_team,omitempty" db:"-"`
}
