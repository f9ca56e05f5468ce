package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/raoldfi/tennis-app-sub001/models"
	"github.com/raoldfi/tennis-app-sub001/storage"
)

type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportJSON ExportFormat = "json"
	ExportYAML ExportFormat = "yaml"
)

// ExportResult carries the rendered document and, when requested, the object
// storage location it was uploaded to.
type ExportResult struct {
	Filename    string                `json:"filename"`
	ContentType string                `json:"content_type"`
	Data        []byte                `json:"-"`
	Upload      *storage.UploadResult `json:"upload,omitempty"`
}

type ExportService interface {
	Export(ctx context.Context, leagueID int, format ExportFormat, upload bool) (*ExportResult, error)
}

type exportService struct {
	scheduleService ScheduleService
	uploader        storage.FileUploader
}

// NewExportService renders league schedules for download or upload. The
// uploader may be nil, in which case upload requests fail gracefully.
func NewExportService(scheduleService ScheduleService, uploader storage.FileUploader) ExportService {
	return &exportService{scheduleService: scheduleService, uploader: uploader}
}

type exportMatch struct {
	ID       int    `json:"id" yaml:"id"`
	Round    int    `json:"round" yaml:"round"`
	HomeTeam string `json:"home_team" yaml:"home_team"`
	AwayTeam string `json:"away_team" yaml:"away_team"`
	Status   string `json:"status" yaml:"status"`
}

type exportDocument struct {
	League  *models.League `json:"league" yaml:"league"`
	Matches []exportMatch  `json:"matches" yaml:"matches"`
}

func (s *exportService) Export(ctx context.Context, leagueID int, format ExportFormat, upload bool) (*ExportResult, error) {
	data, err := s.scheduleService.GetFullLeagueData(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	if len(data.Matches) == 0 {
		return nil, ErrLeagueHasNoSchedule
	}

	doc := exportDocument{League: data.League, Matches: make([]exportMatch, 0, len(data.Matches))}
	for _, m := range data.Matches {
		em := exportMatch{ID: m.ID, Round: m.Round, Status: string(m.Status)}
		if m.HomeTeam != nil {
			em.HomeTeam = m.HomeTeam.Name
		}
		if m.AwayTeam != nil {
			em.AwayTeam = m.AwayTeam.Name
		}
		doc.Matches = append(doc.Matches, em)
	}

	result := &ExportResult{}
	switch format {
	case ExportCSV:
		result.ContentType = "text/csv"
		result.Data, err = renderCSV(doc)
	case ExportJSON:
		result.ContentType = "application/json"
		result.Data, err = json.MarshalIndent(doc, "", "  ")
	case ExportYAML:
		result.ContentType = "application/yaml"
		result.Data, err = yaml.Marshal(doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExportFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to render %s export for league %d: %w", format, leagueID, err)
	}
	result.Filename = fmt.Sprintf("league_%d_schedule.%s", leagueID, format)

	if upload {
		if s.uploader == nil {
			return nil, fmt.Errorf("export upload requested but no object storage is configured")
		}
		key := fmt.Sprintf("exports/%s", result.Filename)
		uploaded, upErr := s.uploader.Upload(ctx, key, result.ContentType, bytes.NewReader(result.Data))
		if upErr != nil {
			return nil, upErr
		}
		result.Upload = uploaded
	}
	return result, nil
}

func renderCSV(doc exportDocument) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "round", "home_team", "away_team", "status"}); err != nil {
		return nil, err
	}
	for _, m := range doc.Matches {
		record := []string{
			strconv.Itoa(m.ID),
			strconv.Itoa(m.Round),
			m.HomeTeam,
			m.AwayTeam,
			m.Status,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
