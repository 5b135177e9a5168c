package workouts

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymrest/internal/resttimer"
	"github.com/2beens/gymrest/internal/telemetry/tracing"
	"github.com/2beens/gymrest/pkg"
)

type RestsHandler struct {
	repo     restsRepo
	analyzer *Analyzer
}

func NewRestsHandler(repo restsRepo) *RestsHandler {
	return &RestsHandler{
		repo:     repo,
		analyzer: NewAnalyzer(repo),
	}
}

func (handler *RestsHandler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/workouts/rests/avg", handler.HandleAvgRestDuration).Methods("GET", "OPTIONS").Name("workouts-rests-avg")
}

// RecordRestResult persists a finished rest reported by the rest timer
// engine. Wired as the timer service's OnRestFinished callback; a storage
// failure only loses one analytics row, so it is logged and swallowed.
func (handler *RestsHandler) RecordRestResult(ctx context.Context, result resttimer.RestResult) {
	entry := RestEntry{
		SessionHash:    result.SessionDigest,
		PlannedSeconds: result.PlannedSeconds,
		ActualSeconds:  result.ActualSeconds,
		Completed:      result.Completed,
	}
	if !result.ZeroCrossingAt.IsZero() {
		zeroCrossingAt := result.ZeroCrossingAt
		entry.ZeroCrossingAt = &zeroCrossingAt
	}

	if _, err := handler.repo.Add(ctx, entry); err != nil {
		log.Errorf("failed to record rest entry [session %s]: %s", result.SessionDigest, err)
	}
}

func (handler *RestsHandler) HandleAvgRestDuration(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.rests.avg")
	defer span.End()

	params := RestParams{
		OnlyCompleted: r.URL.Query().Get("only_completed") == "true",
	}
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			http.Error(w, "failed to parse from param", http.StatusBadRequest)
			return
		}
		params.From = &from
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			http.Error(w, "failed to parse to param", http.StatusBadRequest)
			return
		}
		params.To = &to
	}

	avgRestResp, err := handler.analyzer.AvgRestDuration(ctx, params)
	if err != nil {
		log.Errorf("failed to get avg rest duration: %s", err)
		http.Error(w, "failed to get avg rest duration", http.StatusInternalServerError)
		return
	}

	avgRestRespJson, err := json.Marshal(avgRestResp)
	if err != nil {
		log.Errorf("failed to marshal avg rest duration response: %s", err)
		http.Error(w, "failed to marshal avg rest duration response", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, avgRestRespJson, http.StatusOK)
}
