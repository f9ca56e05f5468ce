package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/raoldfi/tennis-app-sub001/models"
	"github.com/lib/pq"
)

var (
	ErrMatchNotFound      = errors.New("match not found")
	ErrMatchIDConflict    = errors.New("match with this id already exists")
	ErrMatchLeagueInvalid = errors.New("match league reference invalid")
	ErrMatchTeamInvalid   = errors.New("match team reference invalid")
)

type MatchRepository interface {
	// Create inserts a match under its pre-assigned identifier. The id column
	// is never generated by the database: the scheduler derives it, and a
	// primary key collision surfaces as ErrMatchIDConflict so callers can
	// decide between failing and overwriting.
	Create(ctx context.Context, exec SQLExecutor, match *models.Match) error
	GetByID(ctx context.Context, id int) (*models.Match, error)
	ListByLeague(ctx context.Context, leagueID int, round *int, status *models.MatchStatus) ([]*models.Match, error)
	DeleteByLeague(ctx context.Context, exec SQLExecutor, leagueID int) (int64, error)
	Delete(ctx context.Context, id int) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresMatchRepository) Create(ctx context.Context, exec SQLExecutor, match *models.Match) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO matches
			(id, league_id, home_team_id, away_team_id, round, status, scheduled_at, venue)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`

	err := executor.QueryRowContext(ctx, query,
		match.ID,
		match.LeagueID,
		match.HomeTeamID,
		match.AwayTeamID,
		match.Round,
		match.Status,
		match.ScheduledAt,
		match.Venue,
	).Scan(&match.CreatedAt)

	return r.handleMatchError(err)
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	query := `
		SELECT id, league_id, home_team_id, away_team_id, round, status, scheduled_at, venue, created_at
		FROM matches
		WHERE id = $1`

	match := &models.Match{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&match.ID,
		&match.LeagueID,
		&match.HomeTeamID,
		&match.AwayTeamID,
		&match.Round,
		&match.Status,
		&match.ScheduledAt,
		&match.Venue,
		&match.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to scan match by id %d: %w", id, err)
	}
	return match, nil
}

func (r *postgresMatchRepository) ListByLeague(ctx context.Context, leagueID int, roundFilter *int, statusFilter *models.MatchStatus) ([]*models.Match, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, league_id, home_team_id, away_team_id, round, status, scheduled_at, venue, created_at
		FROM matches
		WHERE league_id = $1`)

	args := []interface{}{leagueID}
	placeholderIndex := 2

	if roundFilter != nil {
		queryBuilder.WriteString(" AND round = $")
		queryBuilder.WriteString(strconv.Itoa(placeholderIndex))
		args = append(args, *roundFilter)
		placeholderIndex++
	}

	if statusFilter != nil {
		queryBuilder.WriteString(" AND status = $")
		queryBuilder.WriteString(strconv.Itoa(placeholderIndex))
		args = append(args, *statusFilter)
	}

	// id order reproduces emission order, since ids are sequential per run.
	queryBuilder.WriteString(" ORDER BY round ASC, id ASC")

	rows, err := r.db.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches for league %d: %w", leagueID, err)
	}
	defer rows.Close()

	matches := make([]*models.Match, 0)
	for rows.Next() {
		var match models.Match
		if scanErr := rows.Scan(
			&match.ID,
			&match.LeagueID,
			&match.HomeTeamID,
			&match.AwayTeamID,
			&match.Round,
			&match.Status,
			&match.ScheduledAt,
			&match.Venue,
			&match.CreatedAt,
		); scanErr != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", scanErr)
		}
		matches = append(matches, &match)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during match rows iteration: %w", err)
	}
	return matches, nil
}

func (r *postgresMatchRepository) DeleteByLeague(ctx context.Context, exec SQLExecutor, leagueID int) (int64, error) {
	executor := r.getExecutor(exec)
	query := `DELETE FROM matches WHERE league_id = $1`
	result, err := executor.ExecContext(ctx, query, leagueID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete matches for league %d: %w", leagueID, err)
	}
	return result.RowsAffected()
}

func (r *postgresMatchRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM matches WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) handleMatchError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23505":
			if pqErr.Constraint == "matches_pkey" {
				return ErrMatchIDConflict
			}
		case "23503":
			switch pqErr.Constraint {
			case "matches_league_id_fkey":
				return ErrMatchLeagueInvalid
			case "matches_home_team_id_fkey", "matches_away_team_id_fkey":
				return ErrMatchTeamInvalid
			}
		}
	}
	return err
}
