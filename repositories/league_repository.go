package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/raoldfi/tennis-app-sub001/models"
	"github.com/lib/pq"
)

var (
	ErrLeagueNotFound     = errors.New("league not found")
	ErrLeagueNameConflict = errors.New("league with this name, year, section and division already exists")
	ErrLeagueInUse        = errors.New("league is in use (teams or matches exist)")
)

type ListLeaguesFilter struct {
	Year     *int
	Section  *string
	Division *string
	Limit    int
	Offset   int
}

type LeagueRepository interface {
	Create(ctx context.Context, league *models.League) error
	GetByID(ctx context.Context, id int) (*models.League, error)
	List(ctx context.Context, filter ListLeaguesFilter) ([]models.League, error)
	Update(ctx context.Context, league *models.League) error
	Delete(ctx context.Context, id int) error
}

type postgresLeagueRepository struct {
	db *sql.DB
}

func NewPostgresLeagueRepository(db *sql.DB) LeagueRepository {
	return &postgresLeagueRepository{db: db}
}

func (r *postgresLeagueRepository) Create(ctx context.Context, league *models.League) error {
	query := `
		INSERT INTO leagues (name, year, section, division, num_matches)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		league.Name, league.Year, league.Section, league.Division, league.NumMatches,
	).Scan(&league.ID, &league.CreatedAt)

	return r.handleLeagueError(err)
}

func (r *postgresLeagueRepository) GetByID(ctx context.Context, id int) (*models.League, error) {
	query := `
		SELECT id, name, year, section, division, num_matches, created_at
		FROM leagues
		WHERE id = $1`

	league := &models.League{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&league.ID, &league.Name, &league.Year, &league.Section, &league.Division,
		&league.NumMatches, &league.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLeagueNotFound
		}
		return nil, fmt.Errorf("failed to scan league by id %d: %w", id, err)
	}
	return league, nil
}

func (r *postgresLeagueRepository) List(ctx context.Context, filter ListLeaguesFilter) ([]models.League, error) {
	query := `
		SELECT id, name, year, section, division, num_matches, created_at
		FROM leagues
		WHERE 1=1`

	args := []interface{}{}
	argID := 1

	if filter.Year != nil {
		query += fmt.Sprintf(" AND year = $%d", argID)
		args = append(args, *filter.Year)
		argID++
	}
	if filter.Section != nil {
		query += fmt.Sprintf(" AND section = $%d", argID)
		args = append(args, *filter.Section)
		argID++
	}
	if filter.Division != nil {
		query += fmt.Sprintf(" AND division = $%d", argID)
		args = append(args, *filter.Division)
		argID++
	}

	query += " ORDER BY year DESC, name ASC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argID)
		args = append(args, filter.Limit)
		argID++
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argID)
		args = append(args, filter.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leagues := make([]models.League, 0)
	for rows.Next() {
		var l models.League
		if scanErr := rows.Scan(
			&l.ID, &l.Name, &l.Year, &l.Section, &l.Division,
			&l.NumMatches, &l.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		leagues = append(leagues, l)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return leagues, nil
}

func (r *postgresLeagueRepository) Update(ctx context.Context, league *models.League) error {
	query := `
		UPDATE leagues SET
			name = $1,
			year = $2,
			section = $3,
			division = $4,
			num_matches = $5
		WHERE id = $6`

	result, err := r.db.ExecContext(ctx, query,
		league.Name, league.Year, league.Section, league.Division, league.NumMatches,
		league.ID,
	)
	if err != nil {
		return r.handleLeagueError(err)
	}
	return checkAffectedRows(result, ErrLeagueNotFound)
}

func (r *postgresLeagueRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM leagues WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return r.handleLeagueError(err)
	}
	return checkAffectedRows(result, ErrLeagueNotFound)
}

func (r *postgresLeagueRepository) handleLeagueError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23505":
			if pqErr.Constraint == "leagues_identity_key" {
				return ErrLeagueNameConflict
			}
		case "23503":
			// Teams or matches still reference this league.
			return ErrLeagueInUse
		}
	}
	return err
}
