package models

import "time"

// League represents one flight of an adult tennis league season. Section and
// Division are USTA-style classification strings ("USTA Southwest", "4.0
// Adult"); together with ID, Name and Year they form the league's identity
// used to derive the deterministic match ID base.
type League struct {
	ID         int       `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Year       int       `json:"year" db:"year"`
	Section    string    `json:"section" db:"section"`
	Division   string    `json:"division" db:"division"`
	NumMatches int       `json:"num_matches" db:"num_matches"` // target matches per team
	CreatedAt  time.Time `json:"created_at" db:"created_at"`

	Teams []Team `json:"teams,omitempty" db:"-"`
}
