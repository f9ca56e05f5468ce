package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/raoldfi/tennis-app-sub001/live"
	"github.com/raoldfi/tennis-app-sub001/models"
	"github.com/raoldfi/tennis-app-sub001/repositories"
	"github.com/raoldfi/tennis-app-sub001/schedule"
)

// GenerateScheduleInput selects the engine and persistence behavior for one
// generation run. Seed only affects the greedy strategy; Overwrite replaces
// any previously generated matches instead of failing on the id collision.
type GenerateScheduleInput struct {
	Strategy  string `json:"strategy"`
	Seed      int64  `json:"seed,omitempty"`
	Overwrite bool   `json:"overwrite"`
}

// GenerateScheduleOutput is the full result of a generation run: the persisted
// matches plus the generator's round metadata and a balance audit.
type GenerateScheduleOutput struct {
	Matches          []*models.Match         `json:"matches"`
	StructuralRounds int                     `json:"structural_rounds"`
	ScheduleProgress float64                 `json:"schedule_progress"`
	Balance          *schedule.BalanceReport `json:"balance"`
}

// FullLeagueData aggregates everything a league view needs in one response.
type FullLeagueData struct {
	League  *models.League  `json:"league"`
	Teams   []*models.Team  `json:"teams"`
	Matches []*models.Match `json:"matches"`
}

type ScheduleService interface {
	Generate(ctx context.Context, leagueID int, input GenerateScheduleInput) (*GenerateScheduleOutput, error)
	Balance(ctx context.Context, leagueID int) (*schedule.BalanceReport, error)
	ListMatches(ctx context.Context, leagueID int, round *int, status *models.MatchStatus) ([]*models.Match, error)
	GetFullLeagueData(ctx context.Context, leagueID int) (*FullLeagueData, error)
}

type scheduleService struct {
	db         *sql.DB
	leagueRepo repositories.LeagueRepository
	teamRepo   repositories.TeamRepository
	matchRepo  repositories.MatchRepository
	hub        *live.Hub
}

func NewScheduleService(
	db *sql.DB,
	leagueRepo repositories.LeagueRepository,
	teamRepo repositories.TeamRepository,
	matchRepo repositories.MatchRepository,
	hub *live.Hub,
) ScheduleService {
	return &scheduleService{
		db:         db,
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		matchRepo:  matchRepo,
		hub:        hub,
	}
}

// leagueRoom names the websocket room for a league's schedule events.
func leagueRoom(leagueID int) string {
	return "league_" + strconv.Itoa(leagueID)
}

func (s *scheduleService) Generate(ctx context.Context, leagueID int, input GenerateScheduleInput) (*GenerateScheduleOutput, error) {
	league, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, mapLeagueRepoError(err)
	}
	teams, err := s.teamRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	strategy, err := schedule.Get(input.Strategy)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}
	if greedy, ok := strategy.(*schedule.GreedyStrategy); ok {
		greedy.Seed = input.Seed
	}

	result, err := strategy.Generate(league, teams)
	if err != nil {
		return nil, err
	}
	matches := schedule.AssignIDs(league, result.Pairings)

	if err := s.persistMatches(ctx, league, matches, input.Overwrite); err != nil {
		return nil, err
	}

	slog.Info("schedule generated",
		"league_id", league.ID,
		"strategy", strategy.Name(),
		"matches", len(matches),
		"rounds", result.StructuralRounds,
	)

	out := &GenerateScheduleOutput{
		Matches:          matches,
		StructuralRounds: result.StructuralRounds,
		ScheduleProgress: result.ScheduleProgress,
		Balance:          schedule.Analyze(result.Pairings, league.NumMatches),
	}

	if s.hub != nil {
		s.hub.BroadcastToRoom(leagueRoom(league.ID), live.Message{
			Type:    "SCHEDULE_GENERATED",
			Payload: out,
		})
	}
	return out, nil
}

// persistMatches writes the full fixture list in one transaction. Identifiers
// arrive pre-assigned; a primary key collision means a schedule already exists
// and is either an error or, with overwrite, a cue to wipe and retry inside
// the same transaction.
func (s *scheduleService) persistMatches(ctx context.Context, league *models.League, matches []*models.Match, overwrite bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	var txErr error
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if txErr != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				slog.Error("rollback failed", "league_id", league.ID, "error", rbErr)
			}
		}
	}()

	if overwrite {
		deleted, delErr := s.matchRepo.DeleteByLeague(ctx, tx, league.ID)
		if delErr != nil {
			txErr = delErr
			return txErr
		}
		if deleted > 0 {
			slog.Info("replaced existing schedule", "league_id", league.ID, "deleted", deleted)
		}
	}

	for _, m := range matches {
		if txErr = s.matchRepo.Create(ctx, tx, m); txErr != nil {
			if errors.Is(txErr, repositories.ErrMatchIDConflict) {
				txErr = ErrScheduleExists
			}
			return txErr
		}
	}

	if txErr = tx.Commit(); txErr != nil {
		return fmt.Errorf("failed to commit schedule for league %d: %w", league.ID, txErr)
	}
	return nil
}

func (s *scheduleService) Balance(ctx context.Context, leagueID int) (*schedule.BalanceReport, error) {
	league, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, mapLeagueRepoError(err)
	}
	matches, err := s.matchRepo.ListByLeague(ctx, leagueID, nil, nil)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, ErrLeagueHasNoSchedule
	}

	pairings := make([]schedule.Pairing, len(matches))
	for i, m := range matches {
		pairings[i] = schedule.Pairing{HomeID: m.HomeTeamID, AwayID: m.AwayTeamID, Round: m.Round}
	}
	return schedule.Analyze(pairings, league.NumMatches), nil
}

func (s *scheduleService) ListMatches(ctx context.Context, leagueID int, round *int, status *models.MatchStatus) ([]*models.Match, error) {
	if _, err := s.leagueRepo.GetByID(ctx, leagueID); err != nil {
		return nil, mapLeagueRepoError(err)
	}
	return s.matchRepo.ListByLeague(ctx, leagueID, round, status)
}

// GetFullLeagueData fetches the league record, its teams, and its matches in
// parallel.
func (s *scheduleService) GetFullLeagueData(ctx context.Context, leagueID int) (*FullLeagueData, error) {
	data := &FullLeagueData{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		league, err := s.leagueRepo.GetByID(gctx, leagueID)
		if err != nil {
			return mapLeagueRepoError(err)
		}
		data.League = league
		return nil
	})
	g.Go(func() error {
		teams, err := s.teamRepo.ListByLeague(gctx, leagueID)
		if err != nil {
			return err
		}
		data.Teams = teams
		return nil
	})
	g.Go(func() error {
		matches, err := s.matchRepo.ListByLeague(gctx, leagueID, nil, nil)
		if err != nil {
			return err
		}
		data.Matches = matches
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[int]*models.Team, len(data.Teams))
	for _, t := range data.Teams {
		byID[t.ID] = t
	}
	for _, m := range data.Matches {
		m.HomeTeam = byID[m.HomeTeamID]
		m.AwayTeam = byID[m.AwayTeamID]
	}
	return data, nil
}
