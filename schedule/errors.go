package schedule

import "errors"

// Validation errors returned before any generation work starts. Handlers are
// expected to surface the wrapped messages verbatim, since they name the
// offending values.
var (
	ErrInvalidParticipantCount = errors.New("not enough teams to generate a schedule")
	ErrMismatchedLeague        = errors.New("team does not belong to the league")
	ErrInvalidMatchCount       = errors.New("invalid matches-per-team count")
	ErrUnsatisfiableSlotParity = errors.New("total match slots is odd, no valid pairing set exists")

	// ErrGenerationExhausted indicates the bounded iteration budget ran out
	// before every team reached its match target. It signals a defect in the
	// generator itself, never a user input problem, and no partial output is
	// returned alongside it.
	ErrGenerationExhausted = errors.New("schedule generation exhausted its iteration budget")
)
