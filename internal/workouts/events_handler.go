package workouts

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymrest/internal/telemetry/tracing"
	"github.com/2beens/gymrest/pkg"
)

type EventsHandler struct {
	service *EventsService
}

func NewEventsHandler(service *EventsService) *EventsHandler {
	return &EventsHandler{
		service: service,
	}
}

func (h *EventsHandler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/workouts/events/training/start", h.HandleAddTrainingStart).Methods("POST", "OPTIONS").Name("workouts-training-start")
	router.HandleFunc("/workouts/events/training/finish", h.HandleAddTrainingFinish).Methods("POST", "OPTIONS").Name("workouts-training-finish")
}

func (h *EventsHandler) HandleAddTrainingStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.events.trainingstart")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var trainingStart TrainingStart
	if err := json.NewDecoder(r.Body).Decode(&trainingStart); err != nil {
		log.Errorf("new training start, unmarshal json params: %s", err)
		http.Error(w, "add training start failed", http.StatusBadRequest)
		return
	}

	id, err := h.service.AddTrainingStart(ctx, trainingStart)
	if err != nil {
		log.Errorf("new training start: %s", err)
		http.Error(w, "add training start failed", http.StatusInternalServerError)
		return
	}
	trainingStart.ID = id

	trainingStartJson, err := json.Marshal(trainingStart)
	if err != nil {
		log.Errorf("failed to marshal new training start: %s", err)
		http.Error(w, "error, failed to add new training start", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, trainingStartJson, http.StatusCreated)
}

func (h *EventsHandler) HandleAddTrainingFinish(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.events.trainingfinish")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var trainingFinish TrainingFinish
	if err := json.NewDecoder(r.Body).Decode(&trainingFinish); err != nil {
		log.Errorf("new training finish, unmarshal json params: %s", err)
		http.Error(w, "add training finish failed", http.StatusBadRequest)
		return
	}

	id, err := h.service.AddTrainingFinish(ctx, trainingFinish)
	if err != nil {
		log.Errorf("new training finish: %s", err)
		http.Error(w, "add training finish failed", http.StatusInternalServerError)
		return
	}
	trainingFinish.ID = id

	trainingFinishJson, err := json.Marshal(trainingFinish)
	if err != nil {
		log.Errorf("failed to marshal new training finish: %s", err)
		http.Error(w, "error, failed to add new training finish", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, trainingFinishJson, http.StatusCreated)
}
