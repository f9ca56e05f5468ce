package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/raoldfi/tennis-app-sub001/middleware"
	"github.com/raoldfi/tennis-app-sub001/models"
	"github.com/raoldfi/tennis-app-sub001/services"
)

type ScheduleHandler struct {
	scheduleService services.ScheduleService
	exportService   services.ExportService
}

func NewScheduleHandler(ss services.ScheduleService, es services.ExportService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: ss, exportService: es}
}

// GenerateHandler handles POST /leagues/{leagueID}/matches/generate
func (h *ScheduleHandler) GenerateHandler(w http.ResponseWriter, r *http.Request) {
	leagueID, err := getIDFromURL(r, "leagueID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.GenerateScheduleInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if actor, actorErr := middleware.GetSubjectFromContext(r.Context()); actorErr == nil {
		slog.Info("schedule generation requested",
			"league_id", leagueID,
			"actor", actor,
			"strategy", input.Strategy,
			"overwrite", input.Overwrite,
		)
	}

	out, err := h.scheduleService.Generate(r.Context(), leagueID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"schedule": out}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListMatchesHandler handles GET /leagues/{leagueID}/matches
func (h *ScheduleHandler) ListMatchesHandler(w http.ResponseWriter, r *http.Request) {
	leagueID, err := getIDFromURL(r, "leagueID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var roundFilter *int
	var statusFilter *models.MatchStatus
	query := r.URL.Query()

	if roundStr := query.Get("round"); roundStr != "" {
		round, convErr := strconv.Atoi(roundStr)
		if convErr != nil || round < 1 {
			badRequestResponse(w, r, errors.New("invalid round query parameter"))
			return
		}
		roundFilter = &round
	}
	if statusStr := query.Get("status"); statusStr != "" {
		status := models.MatchStatus(statusStr)
		switch status {
		case models.MatchStatusUnscheduled, models.MatchStatusScheduled,
			models.MatchStatusCompleted, models.MatchStatusCanceled:
			statusFilter = &status
		default:
			badRequestResponse(w, r, errors.New("invalid status query parameter"))
			return
		}
	}

	matches, err := h.scheduleService.ListMatches(r.Context(), leagueID, roundFilter, statusFilter)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// BalanceHandler handles GET /leagues/{leagueID}/matches/balance
func (h *ScheduleHandler) BalanceHandler(w http.ResponseWriter, r *http.Request) {
	leagueID, err := getIDFromURL(r, "leagueID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	report, err := h.scheduleService.Balance(r.Context(), leagueID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"balance": report}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// FullDataHandler handles GET /leagues/{leagueID}/full
func (h *ScheduleHandler) FullDataHandler(w http.ResponseWriter, r *http.Request) {
	leagueID, err := getIDFromURL(r, "leagueID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	data, err := h.scheduleService.GetFullLeagueData(r.Context(), leagueID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, data, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ExportHandler handles GET /leagues/{leagueID}/matches/export?format=csv&upload=true
func (h *ScheduleHandler) ExportHandler(w http.ResponseWriter, r *http.Request) {
	leagueID, err := getIDFromURL(r, "leagueID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	format := services.ExportFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = services.ExportJSON
	}
	upload := r.URL.Query().Get("upload") == "true"

	result, err := h.exportService.Export(r.Context(), leagueID, format, upload)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if upload {
		// The document lives in object storage now; return its location
		// instead of the bytes.
		if err := writeJSON(w, http.StatusOK, jsonResponse{"export": result}, nil); err != nil {
			serverErrorResponse(w, r, err)
		}
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Data); err != nil {
		serverErrorResponse(w, r, err)
	}
}
