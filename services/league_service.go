package services

import (
	"context"
	"errors"
	"strings"

	"github.com/raoldfi/tennis-app-sub001/models"
	"github.com/raoldfi/tennis-app-sub001/repositories"
)

type CreateLeagueInput struct {
	Name       string `json:"name"`
	Year       int    `json:"year"`
	Section    string `json:"section"`
	Division   string `json:"division"`
	NumMatches int    `json:"num_matches"`
}

type UpdateLeagueInput struct {
	Name       *string `json:"name"`
	Year       *int    `json:"year"`
	Section    *string `json:"section"`
	Division   *string `json:"division"`
	NumMatches *int    `json:"num_matches"`
}

type LeagueService interface {
	Create(ctx context.Context, input CreateLeagueInput) (*models.League, error)
	GetByID(ctx context.Context, id int) (*models.League, error)
	List(ctx context.Context, filter repositories.ListLeaguesFilter) ([]models.League, error)
	Update(ctx context.Context, id int, input UpdateLeagueInput) (*models.League, error)
	Delete(ctx context.Context, id int) error
}

type leagueService struct {
	leagueRepo repositories.LeagueRepository
}

func NewLeagueService(leagueRepo repositories.LeagueRepository) LeagueService {
	return &leagueService{leagueRepo: leagueRepo}
}

func (s *leagueService) Create(ctx context.Context, input CreateLeagueInput) (*models.League, error) {
	league := &models.League{
		Name:       strings.TrimSpace(input.Name),
		Year:       input.Year,
		Section:    strings.TrimSpace(input.Section),
		Division:   strings.TrimSpace(input.Division),
		NumMatches: input.NumMatches,
	}
	if err := validateLeague(league); err != nil {
		return nil, err
	}

	if err := s.leagueRepo.Create(ctx, league); err != nil {
		return nil, mapLeagueRepoError(err)
	}
	return league, nil
}

func (s *leagueService) GetByID(ctx context.Context, id int) (*models.League, error) {
	league, err := s.leagueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapLeagueRepoError(err)
	}
	return league, nil
}

func (s *leagueService) List(ctx context.Context, filter repositories.ListLeaguesFilter) ([]models.League, error) {
	return s.leagueRepo.List(ctx, filter)
}

func (s *leagueService) Update(ctx context.Context, id int, input UpdateLeagueInput) (*models.League, error) {
	league, err := s.leagueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapLeagueRepoError(err)
	}

	if input.Name != nil {
		league.Name = strings.TrimSpace(*input.Name)
	}
	if input.Year != nil {
		league.Year = *input.Year
	}
	if input.Section != nil {
		league.Section = strings.TrimSpace(*input.Section)
	}
	if input.Division != nil {
		league.Division = strings.TrimSpace(*input.Division)
	}
	if input.NumMatches != nil {
		league.NumMatches = *input.NumMatches
	}
	if err := validateLeague(league); err != nil {
		return nil, err
	}

	if err := s.leagueRepo.Update(ctx, league); err != nil {
		return nil, mapLeagueRepoError(err)
	}
	return league, nil
}

func (s *leagueService) Delete(ctx context.Context, id int) error {
	return mapLeagueRepoError(s.leagueRepo.Delete(ctx, id))
}

func validateLeague(l *models.League) error {
	if l.Name == "" {
		return ErrLeagueNameRequired
	}
	if l.Year < 1900 || l.Year > 2200 {
		return ErrLeagueYearInvalid
	}
	if l.NumMatches < 1 {
		return ErrMatchTargetInvalid
	}
	return nil
}

func mapLeagueRepoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrLeagueNotFound):
		return ErrLeagueNotFound
	case errors.Is(err, repositories.ErrLeagueNameConflict):
		return ErrLeagueConflict
	case errors.Is(err, repositories.ErrLeagueInUse):
		return ErrLeagueInUse
	default:
		return err
	}
}
