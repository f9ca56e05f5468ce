package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/raoldfi/tennis-app-sub001/models"
	"github.com/raoldfi/tennis-app-sub001/schedule"
	"github.com/raoldfi/tennis-app-sub001/storage"
)

type stubScheduleService struct {
	data *FullLeagueData
	err  error
}

func (s *stubScheduleService) Generate(context.Context, int, GenerateScheduleInput) (*GenerateScheduleOutput, error) {
	panic("not used")
}

func (s *stubScheduleService) Balance(context.Context, int) (*schedule.BalanceReport, error) {
	panic("not used")
}

func (s *stubScheduleService) ListMatches(context.Context, int, *int, *models.MatchStatus) ([]*models.Match, error) {
	panic("not used")
}

func (s *stubScheduleService) GetFullLeagueData(context.Context, int) (*FullLeagueData, error) {
	return s.data, s.err
}

type recordingUploader struct {
	key         string
	contentType string
	body        []byte
}

func (u *recordingUploader) Upload(_ context.Context, key, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	u.key, u.contentType, u.body = key, contentType, body
	return &storage.UploadResult{Key: key, Location: "https://cdn.example.com/" + key}, nil
}

func (u *recordingUploader) Delete(context.Context, string) error { return nil }
func (u *recordingUploader) GetPublicURL(key string) string       { return "https://cdn.example.com/" + key }

func exportTestData() *FullLeagueData {
	league := &models.League{ID: 7, Name: "Metro 4.0", Year: 2026, Section: "Southwest", Division: "4.0", NumMatches: 2}
	home := &models.Team{ID: 1, LeagueID: 7, Name: "Aces"}
	away := &models.Team{ID: 2, LeagueID: 7, Name: "Baseliners"}
	return &FullLeagueData{
		League: league,
		Teams:  []*models.Team{home, away},
		Matches: []*models.Match{
			{ID: 500001, LeagueID: 7, HomeTeamID: 1, AwayTeamID: 2, Round: 1,
				Status: models.MatchStatusUnscheduled, CreatedAt: time.Now(), HomeTeam: home, AwayTeam: away},
			{ID: 500002, LeagueID: 7, HomeTeamID: 2, AwayTeamID: 1, Round: 2,
				Status: models.MatchStatusUnscheduled, CreatedAt: time.Now(), HomeTeam: away, AwayTeam: home},
		},
	}
}

func TestExportCSV(t *testing.T) {
	svc := NewExportService(&stubScheduleService{data: exportTestData()}, nil)

	result, err := svc.Export(context.Background(), 7, ExportCSV, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ContentType != "text/csv" {
		t.Errorf("content type = %q, want text/csv", result.ContentType)
	}
	if result.Filename != "league_7_schedule.csv" {
		t.Errorf("filename = %q", result.Filename)
	}

	lines := strings.Split(strings.TrimSpace(string(result.Data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "id,round,home_team,away_team,status" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if lines[1] != "500001,1,Aces,Baseliners,unscheduled" {
		t.Errorf("unexpected first row: %q", lines[1])
	}
}

func TestExportJSONAndYAMLParse(t *testing.T) {
	svc := NewExportService(&stubScheduleService{data: exportTestData()}, nil)

	jsonResult, err := svc.Export(context.Background(), 7, ExportJSON, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var jsonDoc exportDocument
	if err := json.Unmarshal(jsonResult.Data, &jsonDoc); err != nil {
		t.Fatalf("JSON export does not parse: %v", err)
	}
	if len(jsonDoc.Matches) != 2 || jsonDoc.League.Name != "Metro 4.0" {
		t.Errorf("unexpected JSON document: %+v", jsonDoc)
	}

	yamlResult, err := svc.Export(context.Background(), 7, ExportYAML, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var yamlDoc exportDocument
	if err := yaml.Unmarshal(yamlResult.Data, &yamlDoc); err != nil {
		t.Fatalf("YAML export does not parse: %v", err)
	}
	if len(yamlDoc.Matches) != 2 {
		t.Errorf("expected 2 matches in YAML document, got %d", len(yamlDoc.Matches))
	}
}

func TestExportUpload(t *testing.T) {
	uploader := &recordingUploader{}
	svc := NewExportService(&stubScheduleService{data: exportTestData()}, uploader)

	result, err := svc.Export(context.Background(), 7, ExportCSV, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Upload == nil {
		t.Fatal("expected upload result")
	}
	if uploader.key != "exports/league_7_schedule.csv" {
		t.Errorf("uploaded key = %q", uploader.key)
	}
	if uploader.contentType != "text/csv" {
		t.Errorf("uploaded content type = %q", uploader.contentType)
	}
	if !bytes.Equal(uploader.body, result.Data) {
		t.Error("uploaded body differs from rendered document")
	}
}

func TestExportRejections(t *testing.T) {
	svc := NewExportService(&stubScheduleService{data: exportTestData()}, nil)
	if _, err := svc.Export(context.Background(), 7, "xml", false); !errors.Is(err, ErrUnsupportedExportFormat) {
		t.Errorf("expected ErrUnsupportedExportFormat, got %v", err)
	}

	empty := exportTestData()
	empty.Matches = nil
	svc = NewExportService(&stubScheduleService{data: empty}, nil)
	if _, err := svc.Export(context.Background(), 7, ExportCSV, false); !errors.Is(err, ErrLeagueHasNoSchedule) {
		t.Errorf("expected ErrLeagueHasNoSchedule, got %v", err)
	}
}
