package fitlog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/fitlogapp/fitlog/internal/telemetry/metrics"
	"github.com/fitlogapp/fitlog/internal/telemetry/tracing"
	"github.com/fitlogapp/fitlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=fitlog_test

type migrator interface {
	MigrateLocalData(ctx context.Context) (migratedWorkouts int, migratedExercises int, err error)
}

type CreateProfileRequest struct {
	Name string `json:"name"`
}

type UpdateProfileRequest struct {
	Name string `json:"name"`
}

type SetCurrentProfileRequest struct {
	ProfileID string `json:"profileId"`
}

type CurrentProfileResponse struct {
	ProfileID string `json:"profileId"`
}

type DeletedResponse struct {
	DeletedID string `json:"deletedId"`
}

type UpdatedResponse struct {
	UpdatedID string `json:"updatedId"`
}

type MigrateResponse struct {
	Workouts  int `json:"workouts"`
	Exercises int `json:"exercises"`
}

type Handler struct {
	storage        *Storage
	catalog        *Catalog
	migrator       migrator
	metricsManager *metrics.Manager
}

func NewHandler(
	storage *Storage,
	catalog *Catalog,
	migrator migrator,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		storage:        storage,
		catalog:        catalog,
		migrator:       migrator,
		metricsManager: metricsManager,
	}
}

// SetupRoutes registers all workout tracking routes on the given subrouter.
func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/profiles", handler.HandleGetProfiles).Methods("GET", "OPTIONS")
	router.HandleFunc("/profiles", handler.HandleCreateProfile).Methods("POST", "OPTIONS")
	router.HandleFunc("/profiles/current", handler.HandleGetCurrentProfile).Methods("GET", "OPTIONS")
	router.HandleFunc("/profiles/current", handler.HandleSetCurrentProfile).Methods("PUT", "OPTIONS")
	router.HandleFunc("/profiles/{id}", handler.HandleUpdateProfile).Methods("PUT", "OPTIONS")
	router.HandleFunc("/profiles/{id}", handler.HandleDeleteProfile).Methods("DELETE", "OPTIONS")

	router.HandleFunc("/workouts", handler.HandleAddWorkout).Methods("POST", "OPTIONS")
	router.HandleFunc("/workouts", handler.HandleListWorkouts).Methods("GET", "OPTIONS")
	router.HandleFunc("/workouts/{id}", handler.HandleGetWorkout).Methods("GET", "OPTIONS")
	router.HandleFunc("/workouts/{id}", handler.HandleUpdateWorkout).Methods("PUT", "OPTIONS")
	router.HandleFunc("/workouts/{id}", handler.HandleDeleteWorkout).Methods("DELETE", "OPTIONS")
	router.HandleFunc("/workouts/{id}/metrics", handler.HandleWorkoutMetrics).Methods("GET", "OPTIONS")

	router.HandleFunc("/exercises", handler.HandleListExercises).Methods("GET", "OPTIONS")
	router.HandleFunc("/exercises/categories", handler.HandleCategories).Methods("GET", "OPTIONS")
	router.HandleFunc("/exercises/musclegroups", handler.HandleMuscleGroups).Methods("GET", "OPTIONS")
	router.HandleFunc("/exercises/custom", handler.HandleSaveCustomExercise).Methods("POST", "OPTIONS")
	router.HandleFunc("/exercises/custom/{exid}", handler.HandleDeleteCustomExercise).Methods("DELETE", "OPTIONS")
	router.HandleFunc("/exercises/{exid}", handler.HandleGetExercise).Methods("GET", "OPTIONS")
	router.HandleFunc("/exercises/{exid}/best", handler.HandleBestWorkout).Methods("GET", "OPTIONS")
	router.HandleFunc("/exercises/{exid}/last", handler.HandleLastWorkout).Methods("GET", "OPTIONS")
	router.HandleFunc("/exercises/{exid}/maxstats", handler.HandleMaxStats).Methods("GET", "OPTIONS")

	router.HandleFunc("/migrate", handler.HandleMigrate).Methods("POST", "OPTIONS")
}

// respondErr maps domain errors to their status codes; anything unmapped is
// an internal error reported with the given fallback message.
func respondErr(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrAuthenticationRequired):
		http.Error(w, "authentication required", http.StatusUnauthorized)
	case errors.Is(err, ErrWorkoutNotFound):
		http.Error(w, "workout not found", http.StatusNotFound)
	case errors.Is(err, ErrProfileNotFound):
		http.Error(w, "profile not found", http.StatusNotFound)
	case errors.Is(err, ErrDuplicateProfileName):
		http.Error(w, "profile name already taken", http.StatusConflict)
	case errors.Is(err, ErrDuplicateExerciseID):
		http.Error(w, "exercise id already taken", http.StatusConflict)
	case errors.Is(err, ErrLastProfile):
		http.Error(w, "cannot delete the last profile", http.StatusBadRequest)
	case errors.Is(err, ErrUnsupportedOperation):
		http.Error(w, "operation not supported for account profiles", http.StatusBadRequest)
	default:
		http.Error(w, fallback, http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, payload any, status int) {
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("failed to marshal response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, payloadJson, status)
}

func (handler *Handler) HandleGetProfiles(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitlog.profiles")
	defer span.End()

	profiles, err := handler.storage.Profiles(ctx)
	if err != nil {
		log.Errorf("failed to get profiles: %s", err)
		respondErr(w, err, "failed to get profiles")
		return
	}
	if profiles == nil {
		profiles = []Profile{}
	}
	writeJSON(w, profiles, http.StatusOK)
}

func (handler *Handler) HandleCreateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitlog.createProfile")
	defer span.End()

	var req CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("create profile, unmarshal json params: %s", err)
		http.Error(w, "create profile failed", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "error, profile name empty", http.StatusBadRequest)
		return
	}

	profile, err := handler.storage.CreateProfile(ctx, req.Name)
	if err != nil {
		log.Errorf("failed to create profile [%s]: %s", req.Name, err)
		respondErr(w, err, "failed to create profile")
		return
	}

	writeJSON(w, profile, http.StatusCreated)
}

func (handler *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitlog.updateProfile")
	defer span.End()

	profileID := mux.Vars(r)["id"]
	if profileID == "" {
		http.Error(w, "error, profile id empty", http.StatusBadRequest)
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update profile, unmarshal json params: %s", err)
		http.Error(w, "update profile failed", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "error, profile name empty", http.StatusBadRequest)
		return
	}

	if err := handler.storage.UpdateProfile(ctx, profileID, req.Name); err != nil {
		log.Errorf("failed to update profile %s: %s", profileID, err)
		respondErr(w, err, "failed to update profile")
		return
	}

	writeJSON(w, UpdatedResponse{UpdatedID: profileID}, http.StatusOK)
}

func (handler *Handler) HandleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitlog.deleteProfile")
	defer span.End()

	profileID := mux.Vars(r)["id"]
	if profileID == "" {
		http.Error(w, "error, profile id empty", http.StatusBadRequest)
		return
	}

	if err := handler.storage.DeleteProfile(ctx, profileID); err != nil {
		log.Errorf("failed to delete profile %s: %s", profileID, err)
		respondErr(w, err, "failed to delete profile")
		return
	}

	writeJSON(w, DeletedResponse{DeletedID: profileID}, http.StatusOK)
}

func (handler *Handler) HandleGetCurrentProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitlog.currentProfile")
	defer span.End()

	profileID, err := handler.storage.CurrentProfileID(ctx)
	if err != nil {
		log.Errorf("failed to get current profile: %s", err)
		respondErr(w, err, "failed to get current profile")
		return
	}

	writeJSON(w, CurrentProfileResponse{ProfileID: profileID}, http.StatusOK)
}

func (handler *Handler) HandleSetCurrentProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitlog.setCurrentProfile")
	defer span.End()

	var req SetCurrentProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("set current profile, unmarshal json params: %s", err)
		http.Error(w, "set current profile failed", http.StatusBadRequest)
		return
	}
	if req.ProfileID == "" {
		http.Error(w, "error, profile id empty", http.StatusBadRequest)
		return
	}

	if err := handler.storage.SetCurrentProfile(ctx, req.ProfileID); err != nil {
		log.Errorf("failed to set current profile %s: %s", req.ProfileID, err)
		respondErr(w, err, "failed to set current profile")
		return
	}

	writeJSON(w, CurrentProfileResponse{ProfileID: req.ProfileID}, http.StatusOK)
}

func (handler *Handler) HandleAddWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitlog.addWorkout")
	defer span.End()

	var workout WorkoutLog
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		log.Tracef("add workout, unmarshal json params: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}

	if workout.ExerciseID == "" || workout.Date == "" {
		http.Error(w, "error, exercise id or date empty", http.StatusBadRequest)
		return
	}
	if len(workout.Sets) == 0 {
		http.Error(w, "error, no sets", http.StatusBadRequest)
		return
	}

	if err := handler.storage.SaveWorkout(ctx, workout); err != nil {
		log.Errorf("failed to save workout [%s]: %s", workout.ExerciseID, err)
		respondErr(w, err, "failed to save workout")
		return
	}

	handler.metricsManager.CounterWorkoutsSaved.Inc()
	writeJSON(w, workout, http.StatusCreated)
}

func (handler *Handler) HandleListWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitlog.listWorkouts")
	defer span.End()

	filter := WorkoutFilter{
		ExerciseID: r.URL.Query().Get("exerciseId"),
		Date:       r.URL.Query().Get("date"),
	}

	workouts, err := handler.storage.Workouts(ctx, filter)
	if err != nil {
		log.Errorf("failed to get workouts: %s", err)
		respondErr(w, err, "failed to get workouts")
		return
	}
	if workouts == nil {
		workouts = []WorkoutLog{}
	}
	writeJSON(w, workouts, http.StatusOK)
}

func (handler *Handler) HandleGetWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitlog.getWorkout")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	workout, err := handler.storage.WorkoutByID(ctx, id)
	if err != nil {
		log.Errorf("failed to get workout %s: %s", id, err)
		respondErr(w, err, "failed to get workout")
		return
	}
	if workout == nil {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}

	writeJSON(w, workout, http.StatusOK)
}

func (handler *Handler) HandleUpdateWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitlog.updateWorkout")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	var workout WorkoutLog
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		log.Tracef("update workout, unmarshal json params: %s", err)
		http.Error(w, "update workout failed", http.StatusBadRequest)
		return
	}
	if workout.ExerciseID == "" || workout.Date == "" {
		http.Error(w, "error, exercise id or date empty", http.StatusBadRequest)
		return
	}

	if err := handler.storage.UpdateWorkout(ctx, id, workout); err != nil {
		log.Errorf("failed to update workout %s: %s", id, err)
		respondErr(w, err, "failed to update workout")
		return
	}

	writeJSON(w, UpdatedResponse{UpdatedID: id}, http.StatusOK)
}

func (handler *Handler) HandleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitlog.deleteWorkout")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.storage.DeleteWorkout(ctx, id); err != nil {
		log.Errorf("failed to delete workout %s: %s", id, err)
		respondErr(w, err, "failed to delete workout")
		return
	}

	writeJSON(w, DeletedResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleWorkoutMetrics(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitlog.workoutMetrics")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	workout, err := handler.storage.WorkoutByID(ctx, id)
	if err != nil {
		log.Errorf("failed to get workout %s: %s", id, err)
		respondErr(w, err, "failed to get workout")
		return
	}
	if workout == nil {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}

	writeJSON(w, handler.storage.CalculateWorkoutMetrics(*workout), http.StatusOK)
}

func (handler *Handler) HandleBestWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitlog.bestWorkout")
	defer span.End()

	exerciseID := mux.Vars(r)["exid"]
	if exerciseID == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}

	metric := BestWorkoutMetric(r.URL.Query().Get("metric"))
	if metric == "" {
		metric = MetricVolume
	}
	if !metric.Valid() {
		http.Error(w, "error, unknown metric", http.StatusBadRequest)
		return
	}

	best, err := handler.storage.BestWorkout(ctx, exerciseID, metric, r.URL.Query().Get("exclude"))
	if err != nil {
		log.Errorf("failed to get best workout [%s]: %s", exerciseID, err)
		respondErr(w, err, "failed to get best workout")
		return
	}
	if best == nil {
		http.Error(w, "no workouts for exercise", http.StatusNotFound)
		return
	}

	writeJSON(w, best, http.StatusOK)
}

func (handler *Handler) HandleLastWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitlog.lastWorkout")
	defer span.End()

	exerciseID := mux.Vars(r)["exid"]
	if exerciseID == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}

	last, err := handler.storage.LastWorkout(ctx, exerciseID, r.URL.Query().Get("exclude"))
	if err != nil {
		log.Errorf("failed to get last workout [%s]: %s", exerciseID, err)
		respondErr(w, err, "failed to get last workout")
		return
	}
	if last == nil {
		http.Error(w, "no workouts for exercise", http.StatusNotFound)
		return
	}

	writeJSON(w, last, http.StatusOK)
}

func (handler *Handler) HandleMaxStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitlog.maxStats")
	defer span.End()

	exerciseID := mux.Vars(r)["exid"]
	if exerciseID == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}

	stats, err := handler.storage.MaxStats(ctx, exerciseID)
	if err != nil {
		log.Errorf("failed to get max stats [%s]: %s", exerciseID, err)
		respondErr(w, err, "failed to get max stats")
		return
	}

	writeJSON(w, stats, http.StatusOK)
}

func (handler *Handler) HandleListExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitlog.listExercises")
	defer span.End()

	exercises, err := handler.catalog.Exercises(ctx)
	if err != nil {
		log.Errorf("failed to get exercises: %s", err)
		respondErr(w, err, "failed to get exercises")
		return
	}

	writeJSON(w, exercises, http.StatusOK)
}

func (handler *Handler) HandleGetExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitlog.getExercise")
	defer span.End()

	exerciseID := mux.Vars(r)["exid"]
	if exerciseID == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}

	exercise, err := handler.catalog.ExerciseByID(ctx, exerciseID)
	if err != nil {
		log.Errorf("failed to get exercise %s: %s", exerciseID, err)
		respondErr(w, err, "failed to get exercise")
		return
	}
	if exercise == nil {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}

	writeJSON(w, exercise, http.StatusOK)
}

func (handler *Handler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitlog.categories")
	defer span.End()

	categories, err := handler.catalog.Categories(ctx)
	if err != nil {
		log.Errorf("failed to get categories: %s", err)
		respondErr(w, err, "failed to get categories")
		return
	}

	writeJSON(w, categories, http.StatusOK)
}

func (handler *Handler) HandleMuscleGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitlog.muscleGroups")
	defer span.End()

	muscleGroups, err := handler.catalog.MuscleGroups(ctx)
	if err != nil {
		log.Errorf("failed to get muscle groups: %s", err)
		respondErr(w, err, "failed to get muscle groups")
		return
	}

	writeJSON(w, muscleGroups, http.StatusOK)
}

func (handler *Handler) HandleSaveCustomExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitlog.saveCustomExercise")
	defer span.End()

	var exercise Exercise
	if err := json.NewDecoder(r.Body).Decode(&exercise); err != nil {
		log.Tracef("save custom exercise, unmarshal json params: %s", err)
		http.Error(w, "save custom exercise failed", http.StatusBadRequest)
		return
	}

	if exercise.Name == "" || exercise.Category == "" || exercise.MuscleGroup == "" {
		http.Error(w, "error, exercise name, category or muscle group empty", http.StatusBadRequest)
		return
	}
	if exercise.ID == "" {
		exercise.ID = GenerateExerciseID(exercise.Name)
	}

	overwrite := r.URL.Query().Get("overwrite") == "true"
	if err := handler.storage.SaveCustomExercise(ctx, exercise, overwrite); err != nil {
		log.Errorf("failed to save custom exercise [%s]: %s", exercise.ID, err)
		respondErr(w, err, "failed to save custom exercise")
		return
	}

	writeJSON(w, exercise, http.StatusCreated)
}

func (handler *Handler) HandleDeleteCustomExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitlog.deleteCustomExercise")
	defer span.End()

	exerciseID := mux.Vars(r)["exid"]
	if exerciseID == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}

	if err := handler.storage.DeleteCustomExercise(ctx, exerciseID); err != nil {
		log.Errorf("failed to delete custom exercise %s: %s", exerciseID, err)
		respondErr(w, err, "failed to delete custom exercise")
		return
	}

	writeJSON(w, DeletedResponse{DeletedID: exerciseID}, http.StatusOK)
}

func (handler *Handler) HandleMigrate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitlog.migrate")
	defer span.End()

	workouts, exercises, err := handler.migrator.MigrateLocalData(ctx)
	if err != nil {
		log.Errorf("failed to migrate local data: %s", err)
		respondErr(w, err, "failed to migrate local data")
		return
	}

	handler.metricsManager.CounterMigratedRecords.Add(float64(workouts + exercises))
	log.Debugf("local data migrated: %d workouts, %d custom exercises", workouts, exercises)
	writeJSON(w, MigrateResponse{Workouts: workouts, Exercises: exercises}, http.StatusOK)
}
