package fitlog

import (
	"context"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=storage_mocks_test.go -package=fitlog_test

// IdentityProvider resolves the account behind the current request. An empty
// user id with a nil error means "anonymous", which is not a failure.
type IdentityProvider interface {
	CurrentUser(ctx context.Context) (string, error)
}

// Backend is the capability surface both persistence backends implement:
// profile scope, workout CRUD and custom exercises. The local (file-backed)
// implementation never blocks; the remote (Postgres) one resolves the
// caller's identity before every operation.
type Backend interface {
	CurrentProfileID(ctx context.Context) (string, error)
	SetCurrentProfile(ctx context.Context, profileID string) error
	Profiles(ctx context.Context) ([]Profile, error)
	CreateProfile(ctx context.Context, name string) (*Profile, error)
	UpdateProfile(ctx context.Context, profileID, name string) error
	DeleteProfile(ctx context.Context, profileID string) error

	SaveWorkout(ctx context.Context, workout WorkoutLog) error
	Workouts(ctx context.Context, filter WorkoutFilter) ([]WorkoutLog, error)
	// WorkoutByID returns a nil workout and a nil error when the id is
	// unknown; absence is not a failure.
	WorkoutByID(ctx context.Context, id string) (*WorkoutLog, error)
	UpdateWorkout(ctx context.Context, id string, workout WorkoutLog) error
	// DeleteWorkout is idempotent, deleting an absent workout succeeds.
	DeleteWorkout(ctx context.Context, id string) error

	SaveCustomExercise(ctx context.Context, exercise Exercise, overwrite bool) error
	CustomExercises(ctx context.Context) ([]Exercise, error)
	DeleteCustomExercise(ctx context.Context, exerciseID string) error

	PublicExercises(ctx context.Context) ([]Exercise, error)
}

// Storage is the single storage surface all callers use. Every operation
// resolves the backend anew from the current authentication state, so a
// login or logout between two calls redirects the next call without any
// explicit mode switch.
type Storage struct {
	local  Backend
	remote Backend
	ids    IdentityProvider
}

func NewStorage(local, remote Backend, ids IdentityProvider) *Storage {
	return &Storage{
		local:  local,
		remote: remote,
		ids:    ids,
	}
}

// resolveBackend is deliberately called at the top of every operation and
// its result never cached.
func (s *Storage) resolveBackend(ctx context.Context) Backend {
	userID, err := s.ids.CurrentUser(ctx)
	if err != nil {
		log.Tracef("storage: resolve identity: %s", err)
		return s.local
	}
	if userID == "" {
		return s.local
	}
	return s.remote
}

func (s *Storage) CurrentProfileID(ctx context.Context) (string, error) {
	return s.resolveBackend(ctx).CurrentProfileID(ctx)
}

func (s *Storage) SetCurrentProfile(ctx context.Context, profileID string) error {
	return s.resolveBackend(ctx).SetCurrentProfile(ctx, profileID)
}

func (s *Storage) Profiles(ctx context.Context) ([]Profile, error) {
	return s.resolveBackend(ctx).Profiles(ctx)
}

func (s *Storage) CreateProfile(ctx context.Context, name string) (*Profile, error) {
	return s.resolveBackend(ctx).CreateProfile(ctx, name)
}

func (s *Storage) UpdateProfile(ctx context.Context, profileID, name string) error {
	return s.resolveBackend(ctx).UpdateProfile(ctx, profileID, name)
}

func (s *Storage) DeleteProfile(ctx context.Context, profileID string) error {
	return s.resolveBackend(ctx).DeleteProfile(ctx, profileID)
}

func (s *Storage) SaveWorkout(ctx context.Context, workout WorkoutLog) error {
	return s.resolveBackend(ctx).SaveWorkout(ctx, workout)
}

func (s *Storage) Workouts(ctx context.Context, filter WorkoutFilter) ([]WorkoutLog, error) {
	return s.resolveBackend(ctx).Workouts(ctx, filter)
}

func (s *Storage) WorkoutByID(ctx context.Context, id string) (*WorkoutLog, error) {
	return s.resolveBackend(ctx).WorkoutByID(ctx, id)
}

func (s *Storage) UpdateWorkout(ctx context.Context, id string, workout WorkoutLog) error {
	return s.resolveBackend(ctx).UpdateWorkout(ctx, id, workout)
}

func (s *Storage) DeleteWorkout(ctx context.Context, id string) error {
	return s.resolveBackend(ctx).DeleteWorkout(ctx, id)
}

func (s *Storage) SaveCustomExercise(ctx context.Context, exercise Exercise, overwrite bool) error {
	return s.resolveBackend(ctx).SaveCustomExercise(ctx, exercise, overwrite)
}

func (s *Storage) CustomExercises(ctx context.Context) ([]Exercise, error) {
	return s.resolveBackend(ctx).CustomExercises(ctx)
}

func (s *Storage) DeleteCustomExercise(ctx context.Context, exerciseID string) error {
	return s.resolveBackend(ctx).DeleteCustomExercise(ctx, exerciseID)
}

func (s *Storage) PublicExercises(ctx context.Context) ([]Exercise, error) {
	return s.resolveBackend(ctx).PublicExercises(ctx)
}

// CalculateWorkoutMetrics is a synchronous pass-through: metrics are pure
// and need no backend dispatch.
func (s *Storage) CalculateWorkoutMetrics(workout WorkoutLog) WorkoutMetrics {
	return CalculateWorkoutMetrics(workout)
}

// BestWorkout loads the exercise's workouts from the routed backend and
// picks the maximal one under the given metric.
func (s *Storage) BestWorkout(
	ctx context.Context,
	exerciseID string,
	metric BestWorkoutMetric,
	excludeID string,
) (*BestWorkoutResult, error) {
	workouts, err := s.resolveBackend(ctx).Workouts(ctx, WorkoutFilter{ExerciseID: exerciseID})
	if err != nil {
		return nil, err
	}
	return BestWorkout(workouts, metric, excludeID), nil
}

// LastWorkout returns the most recent workout for the exercise, or nil.
func (s *Storage) LastWorkout(ctx context.Context, exerciseID, excludeID string) (*WorkoutLog, error) {
	workouts, err := s.resolveBackend(ctx).Workouts(ctx, WorkoutFilter{ExerciseID: exerciseID})
	if err != nil {
		return nil, err
	}
	return LastWorkout(workouts, excludeID), nil
}

// MaxStats returns the all-time per-set maxima for the exercise.
func (s *Storage) MaxStats(ctx context.Context, exerciseID string) (MaxStats, error) {
	workouts, err := s.resolveBackend(ctx).Workouts(ctx, WorkoutFilter{ExerciseID: exerciseID})
	if err != nil {
		return MaxStats{}, err
	}
	return MaxStatsOf(workouts), nil
}
