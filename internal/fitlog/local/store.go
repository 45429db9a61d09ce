// Package local implements the anonymous, file-backed storage backend. All
// data lives in a key-value store with one JSON document per key, scoped per
// profile.
package local

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/fitlogapp/fitlog/internal/fitlog"
)

const (
	profilesKey              = "fitlog-profiles"
	currentProfileKey        = "fitlog-current-profile"
	workoutsKeyPrefix        = "fitlog-workouts-"
	customExercisesKeyPrefix = "fitlog-custom-exercises-"

	// defaultProfileID scopes data written before any profile was created.
	defaultProfileID = "default"
)

// Store keeps all workout data of the anonymous user in a KV store. A single
// mutex serializes every operation, so read-modify-write sequences on the
// underlying documents never interleave.
//
// All methods take a context to satisfy the backend contract of the storage
// facade, but none of them blocks on it.
type Store struct {
	mutex sync.Mutex
	kv    KV
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

func readDoc[T any](kv KV, key string) (T, error) {
	var doc T
	raw, found, err := kv.Get(key)
	if err != nil {
		return doc, err
	}
	if !found {
		return doc, nil
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return doc, fmt.Errorf("decode document %s: %w", key, err)
	}
	return doc, nil
}

func writeDoc[T any](kv KV, key string, doc T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document %s: %w", key, err)
	}
	return kv.Set(key, string(raw))
}

func workoutsKey(profileID string) string {
	return workoutsKeyPrefix + profileID
}

func customExercisesKey(profileID string) string {
	return customExercisesKeyPrefix + profileID
}

// CurrentProfileID returns the selected profile id, falling back to the
// default scope when no profile was ever created.
func (s *Store) CurrentProfileID(_ context.Context) (string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.currentProfileID()
}

func (s *Store) currentProfileID() (string, error) {
	id, found, err := s.kv.Get(currentProfileKey)
	if err != nil {
		return "", err
	}
	if !found || id == "" {
		return defaultProfileID, nil
	}
	return id, nil
}

// SetCurrentProfile writes the current-profile pointer as is. The id is not
// checked against the profile list: the pointer is just a pointer, and an
// unknown id simply scopes subsequent reads to an empty log.
func (s *Store) SetCurrentProfile(_ context.Context, profileID string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.kv.Set(currentProfileKey, profileID)
}

func (s *Store) Profiles(_ context.Context) ([]fitlog.Profile, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return readDoc[[]fitlog.Profile](s.kv, profilesKey)
}

func (s *Store) CreateProfile(_ context.Context, name string) (*fitlog.Profile, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	name = strings.TrimSpace(name)
	profiles, err := readDoc[[]fitlog.Profile](s.kv, profilesKey)
	if err != nil {
		return nil, err
	}

	for _, p := range profiles {
		if strings.EqualFold(p.Name, name) {
			return nil, fitlog.ErrDuplicateProfileName
		}
	}

	profile := fitlog.Profile{
		ID:        "profile-" + uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now(),
	}
	profiles = append(profiles, profile)
	if err := writeDoc(s.kv, profilesKey, profiles); err != nil {
		return nil, err
	}

	// the first profile becomes the current one right away
	if len(profiles) == 1 {
		if err := s.kv.Set(currentProfileKey, profile.ID); err != nil {
			return nil, err
		}
	}

	return &profile, nil
}

func (s *Store) UpdateProfile(_ context.Context, profileID, name string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	name = strings.TrimSpace(name)
	profiles, err := readDoc[[]fitlog.Profile](s.kv, profilesKey)
	if err != nil {
		return err
	}

	at := -1
	for i, p := range profiles {
		if p.ID == profileID {
			at = i
			continue
		}
		if strings.EqualFold(p.Name, name) {
			return fitlog.ErrDuplicateProfileName
		}
	}
	if at < 0 {
		return fitlog.ErrProfileNotFound
	}

	now := time.Now()
	profiles[at].Name = name
	profiles[at].UpdatedAt = &now
	return writeDoc(s.kv, profilesKey, profiles)
}

// DeleteProfile removes the profile and all its workouts and custom
// exercises. Deleting the last remaining profile is refused. When the
// deleted profile was the current one, the first remaining profile takes
// over.
func (s *Store) DeleteProfile(_ context.Context, profileID string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	profiles, err := readDoc[[]fitlog.Profile](s.kv, profilesKey)
	if err != nil {
		return err
	}
	if !containsProfile(profiles, profileID) {
		return fitlog.ErrProfileNotFound
	}

	remaining := make([]fitlog.Profile, 0, len(profiles))
	for _, p := range profiles {
		if p.ID != profileID {
			remaining = append(remaining, p)
		}
	}
	if len(remaining) == 0 {
		return fitlog.ErrLastProfile
	}

	err = multierr.Combine(
		s.kv.Delete(workoutsKey(profileID)),
		s.kv.Delete(customExercisesKey(profileID)),
		writeDoc(s.kv, profilesKey, remaining),
	)
	if err != nil {
		return err
	}

	currentID, err := s.currentProfileID()
	if err != nil {
		return err
	}
	if currentID == profileID {
		return s.kv.Set(currentProfileKey, remaining[0].ID)
	}
	return nil
}

func (s *Store) SaveWorkout(_ context.Context, workout fitlog.WorkoutLog) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	profileID, err := s.currentProfileID()
	if err != nil {
		return err
	}

	workouts, err := readDoc[[]fitlog.WorkoutLog](s.kv, workoutsKey(profileID))
	if err != nil {
		return err
	}

	if workout.ID == "" {
		workout.ID = uuid.NewString()
	}
	workouts = append(workouts, workout)
	return writeDoc(s.kv, workoutsKey(profileID), workouts)
}

func (s *Store) Workouts(_ context.Context, filter fitlog.WorkoutFilter) ([]fitlog.WorkoutLog, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	profileID, err := s.currentProfileID()
	if err != nil {
		return nil, err
	}

	workouts, err := readDoc[[]fitlog.WorkoutLog](s.kv, workoutsKey(profileID))
	if err != nil {
		return nil, err
	}

	filtered := make([]fitlog.WorkoutLog, 0, len(workouts))
	for _, w := range workouts {
		if filter.ExerciseID != "" && w.ExerciseID != filter.ExerciseID {
			continue
		}
		if filter.Date != "" && w.Date != filter.Date {
			continue
		}
		filtered = append(filtered, w)
	}
	return filtered, nil
}

func (s *Store) WorkoutByID(_ context.Context, id string) (*fitlog.WorkoutLog, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	profileID, err := s.currentProfileID()
	if err != nil {
		return nil, err
	}

	workouts, err := readDoc[[]fitlog.WorkoutLog](s.kv, workoutsKey(profileID))
	if err != nil {
		return nil, err
	}

	for i := range workouts {
		if workouts[i].ID == id {
			return &workouts[i], nil
		}
	}
	// absence is not an error, callers get nil
	return nil, nil
}

// UpdateWorkout replaces the workout with the given id in place, keeping its
// position in the log. The id in the body is overridden by the id in the
// path.
func (s *Store) UpdateWorkout(_ context.Context, id string, workout fitlog.WorkoutLog) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	profileID, err := s.currentProfileID()
	if err != nil {
		return err
	}

	workouts, err := readDoc[[]fitlog.WorkoutLog](s.kv, workoutsKey(profileID))
	if err != nil {
		return err
	}

	for i := range workouts {
		if workouts[i].ID == id {
			workout.ID = id
			workouts[i] = workout
			return writeDoc(s.kv, workoutsKey(profileID), workouts)
		}
	}
	return fitlog.ErrWorkoutNotFound
}

// DeleteWorkout is idempotent: deleting an absent workout is not an error.
func (s *Store) DeleteWorkout(_ context.Context, id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	profileID, err := s.currentProfileID()
	if err != nil {
		return err
	}

	workouts, err := readDoc[[]fitlog.WorkoutLog](s.kv, workoutsKey(profileID))
	if err != nil {
		return err
	}

	remaining := make([]fitlog.WorkoutLog, 0, len(workouts))
	for _, w := range workouts {
		if w.ID != id {
			remaining = append(remaining, w)
		}
	}
	return writeDoc(s.kv, workoutsKey(profileID), remaining)
}

func (s *Store) SaveCustomExercise(_ context.Context, exercise fitlog.Exercise, overwrite bool) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	profileID, err := s.currentProfileID()
	if err != nil {
		return err
	}

	exercises, err := readDoc[[]fitlog.Exercise](s.kv, customExercisesKey(profileID))
	if err != nil {
		return err
	}

	for i := range exercises {
		if exercises[i].ID == exercise.ID {
			if !overwrite {
				return fitlog.ErrDuplicateExerciseID
			}
			exercises[i] = exercise
			return writeDoc(s.kv, customExercisesKey(profileID), exercises)
		}
	}

	exercises = append(exercises, exercise)
	return writeDoc(s.kv, customExercisesKey(profileID), exercises)
}

func (s *Store) CustomExercises(_ context.Context) ([]fitlog.Exercise, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	profileID, err := s.currentProfileID()
	if err != nil {
		return nil, err
	}
	return readDoc[[]fitlog.Exercise](s.kv, customExercisesKey(profileID))
}

func (s *Store) DeleteCustomExercise(_ context.Context, exerciseID string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	profileID, err := s.currentProfileID()
	if err != nil {
		return err
	}

	exercises, err := readDoc[[]fitlog.Exercise](s.kv, customExercisesKey(profileID))
	if err != nil {
		return err
	}

	remaining := make([]fitlog.Exercise, 0, len(exercises))
	for _, ex := range exercises {
		if ex.ID != exerciseID {
			remaining = append(remaining, ex)
		}
	}
	return writeDoc(s.kv, customExercisesKey(profileID), remaining)
}

// PublicExercises always returns nothing: the shared exercise pool lives in
// the remote backend only.
func (s *Store) PublicExercises(_ context.Context) ([]fitlog.Exercise, error) {
	return nil, nil
}

// RawWorkouts returns the stored workouts of one specific profile without
// any filtering. Used by the migration into the remote backend.
func (s *Store) RawWorkouts(_ context.Context, profileID string) ([]fitlog.WorkoutLog, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return readDoc[[]fitlog.WorkoutLog](s.kv, workoutsKey(profileID))
}

// RawCustomExercises returns the stored custom exercises of one specific
// profile. Used by the migration into the remote backend.
func (s *Store) RawCustomExercises(_ context.Context, profileID string) ([]fitlog.Exercise, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return readDoc[[]fitlog.Exercise](s.kv, customExercisesKey(profileID))
}

func containsProfile(profiles []fitlog.Profile, id string) bool {
	for _, p := range profiles {
		if p.ID == id {
			return true
		}
	}
	return false
}
