// Package migration moves data written by the anonymous local backend into
// the caller's account on the remote backend. The migration is a one-shot,
// user-triggered operation and is safe to run repeatedly.
package migration

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/fitlogapp/fitlog/internal/fitlog"
	"github.com/fitlogapp/fitlog/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=migration_test

type localSource interface {
	CurrentProfileID(ctx context.Context) (string, error)
	RawWorkouts(ctx context.Context, profileID string) ([]fitlog.WorkoutLog, error)
	RawCustomExercises(ctx context.Context, profileID string) ([]fitlog.Exercise, error)
}

type remoteTarget interface {
	WorkoutExists(ctx context.Context, id string) (bool, error)
	SaveWorkout(ctx context.Context, workout fitlog.WorkoutLog) error
	CustomExerciseExists(ctx context.Context, exerciseID string) (bool, error)
	SaveCustomExercise(ctx context.Context, exercise fitlog.Exercise, overwrite bool) error
}

type Service struct {
	local  localSource
	remote remoteTarget
	ids    fitlog.IdentityProvider
}

func NewService(local localSource, remote remoteTarget, ids fitlog.IdentityProvider) *Service {
	return &Service{
		local:  local,
		remote: remote,
		ids:    ids,
	}
}

// MigrateLocalData copies the current local profile's workouts and custom
// exercises into the authenticated account and reports how many of each were
// migrated. Records already present in the account are skipped, so a second
// run migrates nothing. Local data is left untouched.
func (s *Service) MigrateLocalData(ctx context.Context) (migratedWorkouts int, migratedExercises int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "migration.migrateLocalData")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userID, err := s.ids.CurrentUser(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("resolve current user: %w", err)
	}
	if userID == "" {
		return 0, 0, fitlog.ErrAuthenticationRequired
	}

	profileID, err := s.local.CurrentProfileID(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("get local profile: %w", err)
	}

	workouts, err := s.local.RawWorkouts(ctx, profileID)
	if err != nil {
		return 0, 0, fmt.Errorf("get local workouts: %w", err)
	}
	for _, workout := range workouts {
		exists, err := s.remote.WorkoutExists(ctx, workout.ID)
		if err != nil {
			return migratedWorkouts, migratedExercises, fmt.Errorf("check workout %s: %w", workout.ID, err)
		}
		if exists {
			continue
		}
		if err := s.remote.SaveWorkout(ctx, workout); err != nil {
			return migratedWorkouts, migratedExercises, fmt.Errorf("migrate workout %s: %w", workout.ID, err)
		}
		migratedWorkouts++
	}

	exercises, err := s.local.RawCustomExercises(ctx, profileID)
	if err != nil {
		return migratedWorkouts, 0, fmt.Errorf("get local custom exercises: %w", err)
	}
	for _, exercise := range exercises {
		exists, err := s.remote.CustomExerciseExists(ctx, exercise.ID)
		if err != nil {
			return migratedWorkouts, migratedExercises, fmt.Errorf("check custom exercise %s: %w", exercise.ID, err)
		}
		if exists {
			continue
		}
		if err := s.remote.SaveCustomExercise(ctx, exercise, false); err != nil {
			return migratedWorkouts, migratedExercises, fmt.Errorf("migrate custom exercise %s: %w", exercise.ID, err)
		}
		migratedExercises++
	}

	log.Debugf(
		"migration for user %s done: %d workouts, %d custom exercises",
		userID, migratedWorkouts, migratedExercises,
	)

	return migratedWorkouts, migratedExercises, nil
}
