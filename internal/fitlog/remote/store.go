// Package remote implements the account-backed storage backend on Postgres.
// Every operation resolves the caller's identity first: reads without an
// authenticated user come back empty, writes fail with
// fitlog.ErrAuthenticationRequired.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/fitlogapp/fitlog/internal/fitlog"
	"github.com/fitlogapp/fitlog/internal/telemetry/tracing"
)

const (
	pgErrCodeUniqueViolation = "23505"
	pgErrCodeUndefinedTable  = "42P01"
)

type Store struct {
	db  *pgxpool.Pool
	ids fitlog.IdentityProvider
}

func NewStore(db *pgxpool.Pool, ids fitlog.IdentityProvider) *Store {
	return &Store{
		db:  db,
		ids: ids,
	}
}

// userID resolves the caller's account. requireAuth turns the anonymous case
// into fitlog.ErrAuthenticationRequired, which is what all writes want.
func (s *Store) userID(ctx context.Context, requireAuth bool) (string, error) {
	userID, err := s.ids.CurrentUser(ctx)
	if err != nil {
		return "", fmt.Errorf("resolve current user: %w", err)
	}
	if userID == "" && requireAuth {
		return "", fitlog.ErrAuthenticationRequired
	}
	return userID, nil
}

// CurrentProfileID maps an account to its single profile: the profile id is
// the user id.
func (s *Store) CurrentProfileID(ctx context.Context) (string, error) {
	return s.userID(ctx, true)
}

// SetCurrentProfile is a no-op for account profiles, the account always has
// exactly one. A foreign profile id is still rejected.
func (s *Store) SetCurrentProfile(ctx context.Context, profileID string) error {
	userID, err := s.userID(ctx, true)
	if err != nil {
		return err
	}
	if profileID != userID {
		return fitlog.ErrProfileNotFound
	}
	return nil
}

func (s *Store) Profiles(ctx context.Context) (_ []fitlog.Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitlog.profiles")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userID, err := s.userID(ctx, false)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, nil
	}

	var profile fitlog.Profile
	err = s.db.QueryRow(
		ctx,
		`SELECT id, name, created_at, updated_at FROM profiles WHERE id = $1;`,
		userID,
	).Scan(&profile.ID, &profile.Name, &profile.CreatedAt, &profile.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return []fitlog.Profile{profile}, nil
}

// CreateProfile cannot add a second profile to an account: it renames the
// single account profile instead and returns it.
func (s *Store) CreateProfile(ctx context.Context, name string) (_ *fitlog.Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitlog.createProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userID, err := s.userID(ctx, true)
	if err != nil {
		return nil, err
	}

	var profile fitlog.Profile
	err = s.db.QueryRow(
		ctx,
		`UPDATE profiles SET name = $1, updated_at = $2 WHERE id = $3
			RETURNING id, name, created_at, updated_at;`,
		name, time.Now(), userID,
	).Scan(&profile.ID, &profile.Name, &profile.CreatedAt, &profile.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fitlog.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("rename profile: %w", err)
	}

	return &profile, nil
}

func (s *Store) UpdateProfile(ctx context.Context, profileID, name string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitlog.updateProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userID, err := s.userID(ctx, true)
	if err != nil {
		return err
	}
	if profileID != userID {
		return fitlog.ErrProfileNotFound
	}

	tag, err := s.db.Exec(
		ctx,
		`UPDATE profiles SET name = $1, updated_at = $2 WHERE id = $3;`,
		name, time.Now(), userID,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fitlog.ErrProfileNotFound
	}
	return nil
}

// DeleteProfile cannot apply to account profiles.
func (s *Store) DeleteProfile(ctx context.Context, _ string) error {
	if _, err := s.userID(ctx, true); err != nil {
		return err
	}
	return fitlog.ErrUnsupportedOperation
}

func (s *Store) SaveWorkout(ctx context.Context, workout fitlog.WorkoutLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitlog.saveWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", workout.ExerciseID))

	userID, err := s.userID(ctx, true)
	if err != nil {
		return err
	}

	if workout.ID == "" {
		workout.ID = uuid.NewString()
	}

	setsJson, err := json.Marshal(workout.Sets)
	if err != nil {
		return fmt.Errorf("marshal sets: %w", err)
	}

	_, err = s.db.Exec(
		ctx,
		`INSERT INTO workouts (id, user_id, date, exercise_id, sets)
			VALUES ($1, $2, $3, $4, $5);`,
		workout.ID, userID, workout.Date, workout.ExerciseID, setsJson,
	)
	if err != nil {
		return fmt.Errorf("insert workout: %w", err)
	}
	return nil
}

func (s *Store) Workouts(ctx context.Context, filter fitlog.WorkoutFilter) (_ []fitlog.WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitlog.workouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userID, err := s.userID(ctx, false)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, nil
	}

	query := `SELECT id, date, exercise_id, sets FROM workouts WHERE user_id = $1`
	args := []any{userID}
	if filter.ExerciseID != "" {
		args = append(args, filter.ExerciseID)
		query += fmt.Sprintf(" AND exercise_id = $%d", len(args))
	}
	if filter.Date != "" {
		args = append(args, filter.Date)
		query += fmt.Sprintf(" AND date = $%d", len(args))
	}
	query += " ORDER BY date DESC;"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get workouts: %w", err)
	}
	defer rows.Close()

	return rows2workouts(rows)
}

func (s *Store) WorkoutByID(ctx context.Context, id string) (_ *fitlog.WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitlog.workoutByID")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userID, err := s.userID(ctx, false)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, nil
	}

	var workout fitlog.WorkoutLog
	var setsJson []byte
	err = s.db.QueryRow(
		ctx,
		`SELECT id, date, exercise_id, sets FROM workouts WHERE id = $1 AND user_id = $2;`,
		id, userID,
	).Scan(&workout.ID, &workout.Date, &workout.ExerciseID, &setsJson)
	if errors.Is(err, pgx.ErrNoRows) {
		// absence is not an error, callers get nil
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get workout: %w", err)
	}

	if err := json.Unmarshal(setsJson, &workout.Sets); err != nil {
		return nil, fmt.Errorf("unmarshal sets: %w", err)
	}
	return &workout, nil
}

func (s *Store) UpdateWorkout(ctx context.Context, id string, workout fitlog.WorkoutLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitlog.updateWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userID, err := s.userID(ctx, true)
	if err != nil {
		return err
	}

	setsJson, err := json.Marshal(workout.Sets)
	if err != nil {
		return fmt.Errorf("marshal sets: %w", err)
	}

	tag, err := s.db.Exec(
		ctx,
		`UPDATE workouts SET date = $1, exercise_id = $2, sets = $3
			WHERE id = $4 AND user_id = $5;`,
		workout.Date, workout.ExerciseID, setsJson, id, userID,
	)
	if err != nil {
		return fmt.Errorf("update workout: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fitlog.ErrWorkoutNotFound
	}
	return nil
}

// DeleteWorkout is idempotent: deleting an absent workout is not an error.
func (s *Store) DeleteWorkout(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitlog.deleteWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userID, err := s.userID(ctx, true)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(
		ctx,
		`DELETE FROM workouts WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	return nil
}

func (s *Store) SaveCustomExercise(ctx context.Context, exercise fitlog.Exercise, overwrite bool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitlog.saveCustomExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userID, err := s.userID(ctx, true)
	if err != nil {
		return err
	}

	if overwrite {
		_, err = s.db.Exec(
			ctx,
			`INSERT INTO custom_exercises (user_id, exercise_id, name, category, muscle_group)
				VALUES ($1, $2, $3, $4, $5)
				ON CONFLICT (user_id, exercise_id) DO UPDATE
				SET name = EXCLUDED.name,
					category = EXCLUDED.category,
					muscle_group = EXCLUDED.muscle_group;`,
			userID, exercise.ID, exercise.Name, exercise.Category, exercise.MuscleGroup,
		)
		if err != nil {
			return fmt.Errorf("upsert custom exercise: %w", err)
		}
		return nil
	}

	_, err = s.db.Exec(
		ctx,
		`INSERT INTO custom_exercises (user_id, exercise_id, name, category, muscle_group)
			VALUES ($1, $2, $3, $4, $5);`,
		userID, exercise.ID, exercise.Name, exercise.Category, exercise.MuscleGroup,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
		return fitlog.ErrDuplicateExerciseID
	}
	if err != nil {
		return fmt.Errorf("insert custom exercise: %w", err)
	}
	return nil
}

func (s *Store) CustomExercises(ctx context.Context) (_ []fitlog.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitlog.customExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userID, err := s.userID(ctx, false)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, nil
	}

	rows, err := s.db.Query(
		ctx,
		`SELECT exercise_id, name, category, muscle_group
			FROM custom_exercises WHERE user_id = $1;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("get custom exercises: %w", err)
	}
	defer rows.Close()

	return rows2exercises(rows)
}

func (s *Store) DeleteCustomExercise(ctx context.Context, exerciseID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitlog.deleteCustomExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userID, err := s.userID(ctx, true)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(
		ctx,
		`DELETE FROM custom_exercises WHERE user_id = $1 AND exercise_id = $2;`,
		userID, exerciseID,
	)
	if err != nil {
		return fmt.Errorf("delete custom exercise: %w", err)
	}
	return nil
}

// PublicExercises returns the shared exercise pool. The pool table is an
// optional schema extension, so a missing table degrades to an empty list
// instead of failing the whole catalog.
func (s *Store) PublicExercises(ctx context.Context) (_ []fitlog.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitlog.publicExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := s.db.Query(
		ctx,
		`SELECT id, name, category, muscle_group
			FROM exercises ORDER BY category, name;`,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUndefinedTable {
		log.Warnf("exercises table does not exist, serving empty public exercise pool")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get public exercises: %w", err)
	}
	defer rows.Close()

	return rows2exercises(rows)
}

// WorkoutExists reports whether the user already has a workout with the
// given id. Used by the one-shot local data migration.
func (s *Store) WorkoutExists(ctx context.Context, id string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitlog.workoutExists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userID, err := s.userID(ctx, true)
	if err != nil {
		return false, err
	}

	var exists bool
	err = s.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM workouts WHERE id = $1 AND user_id = $2);`,
		id, userID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check workout exists: %w", err)
	}
	return exists, nil
}

// CustomExerciseExists reports whether the user already has a custom
// exercise with the given id. Used by the one-shot local data migration.
func (s *Store) CustomExerciseExists(ctx context.Context, exerciseID string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitlog.customExerciseExists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userID, err := s.userID(ctx, true)
	if err != nil {
		return false, err
	}

	var exists bool
	err = s.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM custom_exercises WHERE user_id = $1 AND exercise_id = $2);`,
		userID, exerciseID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check custom exercise exists: %w", err)
	}
	return exists, nil
}

func rows2workouts(rows pgx.Rows) ([]fitlog.WorkoutLog, error) {
	var workouts []fitlog.WorkoutLog
	for rows.Next() {
		var workout fitlog.WorkoutLog
		var setsJson []byte
		if err := rows.Scan(&workout.ID, &workout.Date, &workout.ExerciseID, &setsJson); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if err := json.Unmarshal(setsJson, &workout.Sets); err != nil {
			return nil, fmt.Errorf("unmarshal sets: %w", err)
		}
		workouts = append(workouts, workout)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return workouts, nil
}

func rows2exercises(rows pgx.Rows) ([]fitlog.Exercise, error) {
	var exercises []fitlog.Exercise
	for rows.Next() {
		var ex fitlog.Exercise
		if err := rows.Scan(&ex.ID, &ex.Name, &ex.Category, &ex.MuscleGroup); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return exercises, nil
}
