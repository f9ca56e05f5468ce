package services

import (
	"context"
	"errors"
	"strings"

	"github.com/raoldfi/tennis-app-sub001/models"
	"github.com/raoldfi/tennis-app-sub001/repositories"
)

type TeamService interface {
	Create(ctx context.Context, leagueID int, name string) (*models.Team, error)
	GetByID(ctx context.Context, id int) (*models.Team, error)
	ListByLeague(ctx context.Context, leagueID int) ([]*models.Team, error)
	Rename(ctx context.Context, id int, name string) (*models.Team, error)
	Delete(ctx context.Context, id int) error
}

type teamService struct {
	teamRepo   repositories.TeamRepository
	leagueRepo repositories.LeagueRepository
}

func NewTeamService(teamRepo repositories.TeamRepository, leagueRepo repositories.LeagueRepository) TeamService {
	return &teamService{teamRepo: teamRepo, leagueRepo: leagueRepo}
}

func (s *teamService) Create(ctx context.Context, leagueID int, name string) (*models.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrTeamNameRequired
	}
	if _, err := s.leagueRepo.GetByID(ctx, leagueID); err != nil {
		return nil, mapLeagueRepoError(err)
	}

	team := &models.Team{LeagueID: leagueID, Name: name}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, mapTeamRepoError(err)
	}
	return team, nil
}

func (s *teamService) GetByID(ctx context.Context, id int) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapTeamRepoError(err)
	}
	return team, nil
}

func (s *teamService) ListByLeague(ctx context.Context, leagueID int) ([]*models.Team, error) {
	if _, err := s.leagueRepo.GetByID(ctx, leagueID); err != nil {
		return nil, mapLeagueRepoError(err)
	}
	return s.teamRepo.ListByLeague(ctx, leagueID)
}

func (s *teamService) Rename(ctx context.Context, id int, name string) (*models.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrTeamNameRequired
	}

	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapTeamRepoError(err)
	}
	team.Name = name
	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, mapTeamRepoError(err)
	}
	return team, nil
}

func (s *teamService) Delete(ctx context.Context, id int) error {
	return mapTeamRepoError(s.teamRepo.Delete(ctx, id))
}

func mapTeamRepoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrTeamNotFound):
		return ErrTeamNotFound
	case errors.Is(err, repositories.ErrTeamNameConflict):
		return ErrTeamConflict
	case errors.Is(err, repositories.ErrTeamLeagueInvalid):
		return ErrLeagueNotFound
	case errors.Is(err, repositories.ErrTeamInUse):
		return ErrTeamInUse
	default:
		return err
	}
}
