package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymrest/internal/telemetry/metrics"
	"github.com/2beens/gymrest/internal/telemetry/tracing"
	"github.com/2beens/gymrest/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=sets_mocks_test.go -package=workouts_test

type setsRepo interface {
	Add(ctx context.Context, set Set) (*Set, error)
	Get(ctx context.Context, id int) (*Set, error)
	List(ctx context.Context, params SetListParams) (_ []Set, total int, err error)
	ListAll(ctx context.Context, params SetParams) ([]Set, error)
	Update(ctx context.Context, set *Set) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context, params SetParams) (int, error)
}

type DeleteSetResponse struct {
	DeletedID int `json:"deletedId"`
}

type UpdateSetResponse struct {
	UpdatedID int `json:"updatedId"`
}

type AddSetResponse struct {
	Set
	CountToday int `json:"countToday"`
}

type SetsListResponse struct {
	Sets  []Set `json:"sets"`
	Total int   `json:"total"`
}

type SetsHandler struct {
	repo    setsRepo
	metrics *metrics.Manager
}

func NewSetsHandler(repo setsRepo, metricsManager *metrics.Manager) *SetsHandler {
	return &SetsHandler{
		repo:    repo,
		metrics: metricsManager,
	}
}

func (handler *SetsHandler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/workouts/sets", handler.HandleAdd).Methods("POST", "OPTIONS").Name("workouts-sets-add")
	router.HandleFunc("/workouts/sets", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("workouts-sets-update")
	router.HandleFunc("/workouts/sets/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("workouts-sets-get")
	router.HandleFunc("/workouts/sets/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("workouts-sets-delete")
	router.HandleFunc("/workouts/sets/list/page/{page}/size/{size}", handler.HandleList).Methods("GET", "OPTIONS").Name("workouts-sets-list")
}

func (handler *SetsHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.sets.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var set Set
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		log.Tracef("new workout set, unmarshal json params: %s", err)
		http.Error(w, "add workout set failed", http.StatusBadRequest)
		return
	}

	if set.ExerciseID == "" || set.MuscleGroup == "" {
		http.Error(w, "error, exercise id or muscle group empty", http.StatusBadRequest)
		return
	}

	if set.CreatedAt.IsZero() {
		set.CreatedAt = time.Now()
	}

	addedSet, err := handler.repo.Add(ctx, set)
	if err != nil {
		log.Errorf("failed to add workout set [%s], [%s]: %s", set.MuscleGroup, set.ExerciseID, err)
		http.Error(w, "error, failed to add workout set", http.StatusInternalServerError)
		return
	}
	if handler.metrics != nil {
		handler.metrics.CounterWorkoutSets.Inc()
	}

	todayMidnight := time.Now().Truncate(24 * time.Hour)
	tomorrowMidnight := todayMidnight.Add(24 * time.Hour)
	setsToday, err := handler.repo.ListAll(ctx, SetParams{
		ExerciseID:  addedSet.ExerciseID,
		MuscleGroup: addedSet.MuscleGroup,
		From:        &todayMidnight,
		To:          &tomorrowMidnight,
	})
	if err != nil {
		// just log the error, no need to return error to the client
		log.Errorf("failed to get today's sets [%s] [%s]: %s", addedSet.ExerciseID, addedSet.MuscleGroup, err)
	}

	addSetResponse := AddSetResponse{
		Set:        *addedSet,
		CountToday: len(setsToday),
	}

	addedSetJson, err := json.Marshal(addSetResponse)
	if err != nil {
		log.Errorf("failed to marshal added workout set: %s", err)
		http.Error(w, "error, failed to add workout set", http.StatusInternalServerError)
		return
	}

	log.Debugf("new workout set added: %s", addedSetJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedSetJson, http.StatusCreated)
}

func (handler *SetsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.sets.get")
	defer span.End()

	id, err := setIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	set, err := handler.repo.Get(ctx, id)
	if err != nil {
		log.Errorf("failed to get workout set %d: %s", id, err)
		http.Error(w, "workout set not found", http.StatusNotFound)
		return
	}

	setJson, err := json.Marshal(set)
	if err != nil {
		log.Errorf("failed to marshal workout set: %s", err)
		http.Error(w, "failed to marshal workout set", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, setJson, http.StatusOK)
}

func (handler *SetsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.sets.update")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var set Set
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		log.Errorf("update workout set, unmarshal json params: %s", err)
		http.Error(w, "update workout set failed", http.StatusBadRequest)
		return
	}

	if set.ExerciseID == "" || set.MuscleGroup == "" {
		http.Error(w, "error, exercise id or muscle group empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Update(ctx, &set); err != nil {
		if errors.Is(err, ErrSetNotFound) {
			http.Error(w, "workout set not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update workout set [%d], [%s]: %s", set.ID, set.ExerciseID, err)
		http.Error(w, "error, failed to update workout set", http.StatusInternalServerError)
		return
	}

	updateRespJson, err := json.Marshal(UpdateSetResponse{
		UpdatedID: set.ID,
	})
	if err != nil {
		log.Errorf("failed to marshal update response: %s", err)
		http.Error(w, "failed to marshal update response", http.StatusInternalServerError)
		return
	}

	log.Debugf("workout set updated: [%s] [%s]: %d", set.MuscleGroup, set.ExerciseID, set.ID)
	pkg.WriteJSONResponseOK(w, string(updateRespJson))
}

func (handler *SetsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.sets.delete")
	defer span.End()

	id, err := setIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrSetNotFound) {
			log.Debugf("workout set %d not found", id)
			http.Error(w, "workout set not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete workout set %d: %s", id, err)
		http.Error(w, "workout set not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteSetResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (handler *SetsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.sets.list")
	defer span.End()

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		log.Tracef("handle list workout sets, <page> param: %s", err)
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		log.Tracef("handle list workout sets, <size> param: %s", err)
		http.Error(w, "parse form error, parameter <size>", http.StatusBadRequest)
		return
	}

	if page < 1 {
		http.Error(w, "invalid page (has to be non-zero value)", http.StatusBadRequest)
		return
	}
	if size < 1 {
		http.Error(w, "invalid size (has to be non-zero value)", http.StatusBadRequest)
		return
	}

	listParams := SetListParams{
		SetParams: SetParams{
			ExerciseID:  r.URL.Query().Get("exercise_id"),
			MuscleGroup: r.URL.Query().Get("group"),
		},
		Page: page,
		Size: size,
	}

	sets, total, err := handler.repo.List(ctx, listParams)
	if err != nil {
		log.Errorf("list workout sets error: %s", err)
		http.Error(w, "failed to get workout sets", http.StatusInternalServerError)
		return
	}

	listResponseJson, err := json.Marshal(SetsListResponse{
		Sets:  sets,
		Total: total,
	})
	if err != nil {
		log.Errorf("marshal workout sets error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listResponseJson, http.StatusOK)
}

func setIDFromRequest(r *http.Request) (int, error) {
	idStr := mux.Vars(r)["id"]
	if idStr == "" {
		return 0, errors.New("error, id empty")
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, errors.New("error, id NaN")
	}
	return id, nil
}
