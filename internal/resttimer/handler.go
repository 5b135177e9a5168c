package resttimer

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/gymrest/internal/telemetry/tracing"
	"github.com/2beens/gymrest/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// SessionTokenHeader carries the client session token; the same token the
// auth middleware validates. It scopes the rest timer to one client.
const SessionTokenHeader = "X-GYMREST-TOKEN"

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=resttimer_test

type timerService interface {
	StartRest(ctx context.Context, sessionID string, durationSeconds int) State
	PauseRest(ctx context.Context, sessionID string) State
	ResumeRest(ctx context.Context, sessionID string) State
	AdjustRest(ctx context.Context, sessionID string, deltaSeconds int) State
	SkipRest(ctx context.Context, sessionID string) State
	RestState(ctx context.Context, sessionID string) State
	StartGroupRest(ctx context.Context, sessionID string, durationSeconds int) State
	SkipGroupRest(ctx context.Context, sessionID string) State
}

type StartRequest struct {
	DurationSeconds int `json:"durationSeconds"`
}

type AdjustRequest struct {
	DeltaSeconds int `json:"deltaSeconds"`
}

type Handler struct {
	service timerService
}

func NewHandler(service timerService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/resttimer/start", handler.HandleStart).Methods("POST", "OPTIONS").Name("resttimer-start")
	router.HandleFunc("/resttimer/pause", handler.HandlePause).Methods("POST", "OPTIONS").Name("resttimer-pause")
	router.HandleFunc("/resttimer/resume", handler.HandleResume).Methods("POST", "OPTIONS").Name("resttimer-resume")
	router.HandleFunc("/resttimer/adjust", handler.HandleAdjust).Methods("POST", "OPTIONS").Name("resttimer-adjust")
	router.HandleFunc("/resttimer/skip", handler.HandleSkip).Methods("POST", "OPTIONS").Name("resttimer-skip")
	router.HandleFunc("/resttimer/state", handler.HandleState).Methods("GET", "OPTIONS").Name("resttimer-state")
	router.HandleFunc("/resttimer/group/start", handler.HandleGroupStart).Methods("POST", "OPTIONS").Name("resttimer-group-start")
	router.HandleFunc("/resttimer/group/skip", handler.HandleGroupSkip).Methods("POST", "OPTIONS").Name("resttimer-group-skip")
}

func (handler *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.resttimer.start")
	defer span.End()

	sessionID, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	var req StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("rest timer start, unmarshal json params: %s", err)
		http.Error(w, "start rest timer failed", http.StatusBadRequest)
		return
	}
	if req.DurationSeconds <= 0 {
		http.Error(w, "error, duration must be positive", http.StatusBadRequest)
		return
	}

	state := handler.service.StartRest(ctx, sessionID, req.DurationSeconds)
	writeState(w, state, http.StatusCreated)
}

func (handler *Handler) HandlePause(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.resttimer.pause")
	defer span.End()

	sessionID, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	state := handler.service.PauseRest(ctx, sessionID)
	writeState(w, state, http.StatusOK)
}

func (handler *Handler) HandleResume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.resttimer.resume")
	defer span.End()

	sessionID, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	state := handler.service.ResumeRest(ctx, sessionID)
	writeState(w, state, http.StatusOK)
}

func (handler *Handler) HandleAdjust(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.resttimer.adjust")
	defer span.End()

	sessionID, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	var req AdjustRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("rest timer adjust, unmarshal json params: %s", err)
		http.Error(w, "adjust rest timer failed", http.StatusBadRequest)
		return
	}
	if req.DeltaSeconds == 0 {
		http.Error(w, "error, delta must be non-zero", http.StatusBadRequest)
		return
	}

	state := handler.service.AdjustRest(ctx, sessionID, req.DeltaSeconds)
	writeState(w, state, http.StatusOK)
}

func (handler *Handler) HandleSkip(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.resttimer.skip")
	defer span.End()

	sessionID, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	state := handler.service.SkipRest(ctx, sessionID)
	writeState(w, state, http.StatusOK)
}

func (handler *Handler) HandleState(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.resttimer.state")
	defer span.End()

	sessionID, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	state := handler.service.RestState(ctx, sessionID)
	writeState(w, state, http.StatusOK)
}

func (handler *Handler) HandleGroupStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.resttimer.group.start")
	defer span.End()

	sessionID, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	var req StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("group rest start, unmarshal json params: %s", err)
		http.Error(w, "start group rest failed", http.StatusBadRequest)
		return
	}
	if req.DurationSeconds <= 0 {
		http.Error(w, "error, duration must be positive", http.StatusBadRequest)
		return
	}

	state := handler.service.StartGroupRest(ctx, sessionID, req.DurationSeconds)
	writeState(w, state, http.StatusCreated)
}

func (handler *Handler) HandleGroupSkip(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.resttimer.group.skip")
	defer span.End()

	sessionID, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	state := handler.service.SkipGroupRest(ctx, sessionID)
	writeState(w, state, http.StatusOK)
}

func sessionFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionID := r.Header.Get(SessionTokenHeader)
	if sessionID == "" {
		http.Error(w, "error, session token empty", http.StatusBadRequest)
		return "", false
	}
	return sessionID, true
}

func writeState(w http.ResponseWriter, state State, statusCode int) {
	stateJson, err := json.Marshal(state)
	if err != nil {
		log.Errorf("failed to marshal rest timer state: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, stateJson, statusCode)
}
