package services

import "errors"

// Shared errors used across services and the HTTP error mapping.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Validation and business rules
	ErrValidationFailed    = errors.New("validation failed")
	ErrLeagueNameRequired  = errors.New("league name is required")
	ErrLeagueYearInvalid   = errors.New("league year is invalid")
	ErrMatchTargetInvalid  = errors.New("matches per team must be at least 1")
	ErrTeamNameRequired    = errors.New("team name is required")
	ErrScheduleExists      = errors.New("league already has generated matches; pass overwrite to replace them")
	ErrLeagueHasNoSchedule = errors.New("league has no generated matches")

	// Conflicts
	ErrLeagueConflict = errors.New("league with this name, year, section and division already exists")
	ErrTeamConflict   = errors.New("team name is already in use in this league")
	ErrLeagueInUse    = errors.New("league still has teams or matches")
	ErrTeamInUse      = errors.New("team still has matches")

	// Authentication
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Entity-specific lookups
	ErrLeagueNotFound = errors.New("league not found")
	ErrTeamNotFound   = errors.New("team not found")
	ErrMatchNotFound  = errors.New("match not found")

	// Export
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
)
