package fitlog

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=catalog_mocks_test.go -package=fitlog_test

// PredefinedExercises ships with the application and is the base of every
// exercise catalog. It is never mutated at runtime.
var PredefinedExercises = []Exercise{
	// Chest
	{ID: "bench-press", Name: "Bench Press", Category: "Chest", MuscleGroup: "Upper Body"},
	{ID: "incline-bench-press", Name: "Incline Bench Press", Category: "Chest", MuscleGroup: "Upper Body"},
	{ID: "decline-bench-press", Name: "Decline Bench Press", Category: "Chest", MuscleGroup: "Upper Body"},
	{ID: "dumbbell-press", Name: "Dumbbell Press", Category: "Chest", MuscleGroup: "Upper Body"},
	{ID: "chest-fly", Name: "Chest Fly", Category: "Chest", MuscleGroup: "Upper Body"},
	{ID: "push-ups", Name: "Push-ups", Category: "Chest", MuscleGroup: "Upper Body"},

	// Back
	{ID: "deadlift", Name: "Deadlift", Category: "Back", MuscleGroup: "Upper Body"},
	{ID: "barbell-row", Name: "Barbell Row", Category: "Back", MuscleGroup: "Upper Body"},
	{ID: "pull-ups", Name: "Pull-ups", Category: "Back", MuscleGroup: "Upper Body"},
	{ID: "lat-pulldown", Name: "Lat Pulldown", Category: "Back", MuscleGroup: "Upper Body"},
	{ID: "t-bar-row", Name: "T-Bar Row", Category: "Back", MuscleGroup: "Upper Body"},
	{ID: "cable-row", Name: "Cable Row", Category: "Back", MuscleGroup: "Upper Body"},
	{ID: "one-arm-dumbbell-row", Name: "One-Arm Dumbbell Row", Category: "Back", MuscleGroup: "Upper Body"},

	// Shoulders
	{ID: "overhead-press", Name: "Overhead Press", Category: "Shoulders", MuscleGroup: "Upper Body"},
	{ID: "dumbbell-shoulder-press", Name: "Dumbbell Shoulder Press", Category: "Shoulders", MuscleGroup: "Upper Body"},
	{ID: "lateral-raise", Name: "Lateral Raise", Category: "Shoulders", MuscleGroup: "Upper Body"},
	{ID: "front-raise", Name: "Front Raise", Category: "Shoulders", MuscleGroup: "Upper Body"},
	{ID: "rear-delt-fly", Name: "Rear Delt Fly", Category: "Shoulders", MuscleGroup: "Upper Body"},
	{ID: "upright-row", Name: "Upright Row", Category: "Shoulders", MuscleGroup: "Upper Body"},

	// Arms
	{ID: "barbell-curl", Name: "Barbell Curl", Category: "Arms", MuscleGroup: "Upper Body"},
	{ID: "dumbbell-curl", Name: "Dumbbell Curl", Category: "Arms", MuscleGroup: "Upper Body"},
	{ID: "hammer-curl", Name: "Hammer Curl", Category: "Arms", MuscleGroup: "Upper Body"},
	{ID: "tricep-dips", Name: "Tricep Dips", Category: "Arms", MuscleGroup: "Upper Body"},
	{ID: "tricep-pushdown", Name: "Tricep Pushdown", Category: "Arms", MuscleGroup: "Upper Body"},
	{ID: "close-grip-bench-press", Name: "Close-Grip Bench Press", Category: "Arms", MuscleGroup: "Upper Body"},

	// Legs
	{ID: "squat", Name: "Squat", Category: "Legs", MuscleGroup: "Lower Body"},
	{ID: "leg-press", Name: "Leg Press", Category: "Legs", MuscleGroup: "Lower Body"},
	{ID: "leg-extension", Name: "Leg Extension", Category: "Legs", MuscleGroup: "Lower Body"},
	{ID: "leg-curl", Name: "Leg Curl", Category: "Legs", MuscleGroup: "Lower Body"},
	{ID: "lunges", Name: "Lunges", Category: "Legs", MuscleGroup: "Lower Body"},
	{ID: "romanian-deadlift", Name: "Romanian Deadlift", Category: "Legs", MuscleGroup: "Lower Body"},
	{ID: "calf-raise", Name: "Calf Raise", Category: "Legs", MuscleGroup: "Lower Body"},
	{ID: "bulgarian-split-squat", Name: "Bulgarian Split Squat", Category: "Legs", MuscleGroup: "Lower Body"},

	// Core
	{ID: "plank", Name: "Plank", Category: "Core", MuscleGroup: "Core"},
	{ID: "crunches", Name: "Crunches", Category: "Core", MuscleGroup: "Core"},
	{ID: "sit-ups", Name: "Sit-ups", Category: "Core", MuscleGroup: "Core"},
	{ID: "russian-twist", Name: "Russian Twist", Category: "Core", MuscleGroup: "Core"},
	{ID: "leg-raises", Name: "Leg Raises", Category: "Core", MuscleGroup: "Core"},
	{ID: "mountain-climbers", Name: "Mountain Climbers", Category: "Core", MuscleGroup: "Core"},
}

var exerciseIDInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateExerciseID derives a stable slug id from an exercise name:
// "Close-Grip Bench Press" becomes "close-grip-bench-press".
func GenerateExerciseID(name string) string {
	id := strings.ToLower(name)
	id = exerciseIDInvalidChars.ReplaceAllString(id, "-")
	return strings.Trim(id, "-")
}

type catalogStorage interface {
	CustomExercises(ctx context.Context) ([]Exercise, error)
	PublicExercises(ctx context.Context) ([]Exercise, error)
}

const (
	publicExercisesCacheKey        = "fitlog::public-exercises"
	publicExercisesCacheExpSeconds = 5 * 60
)

// Catalog assembles the exercise list visible to the current caller:
// predefined exercises, then shared public exercises, then the caller's
// custom exercises. Later entries override earlier ones by id, so a custom
// exercise can shadow a predefined one.
type Catalog struct {
	storage catalogStorage
	cache   *freecache.Cache
}

func NewCatalog(storage catalogStorage, cache *freecache.Cache) *Catalog {
	return &Catalog{
		storage: storage,
		cache:   cache,
	}
}

func (c *Catalog) publicExercises(ctx context.Context) ([]Exercise, error) {
	if cached, err := c.cache.Get([]byte(publicExercisesCacheKey)); err == nil {
		var exercises []Exercise
		if err := json.Unmarshal(cached, &exercises); err == nil {
			return exercises, nil
		}
		log.Errorf("catalog: corrupt public exercises cache entry, dropping it")
		c.cache.Del([]byte(publicExercisesCacheKey))
	}

	exercises, err := c.storage.PublicExercises(ctx)
	if err != nil {
		return nil, fmt.Errorf("get public exercises: %w", err)
	}

	if encoded, err := json.Marshal(exercises); err == nil {
		if err := c.cache.Set([]byte(publicExercisesCacheKey), encoded, publicExercisesCacheExpSeconds); err != nil {
			log.Warnf("catalog: cache public exercises: %s", err)
		}
	}

	return exercises, nil
}

// Exercises returns the merged catalog. Order is stable: predefined first in
// their shipped order, then public and custom additions in storage order;
// overriding an id keeps its original position.
func (c *Catalog) Exercises(ctx context.Context) ([]Exercise, error) {
	public, err := c.publicExercises(ctx)
	if err != nil {
		return nil, err
	}

	custom, err := c.storage.CustomExercises(ctx)
	if err != nil {
		return nil, fmt.Errorf("get custom exercises: %w", err)
	}

	merged := make([]Exercise, 0, len(PredefinedExercises)+len(public)+len(custom))
	index := make(map[string]int)

	add := func(exercises []Exercise) {
		for _, ex := range exercises {
			if at, ok := index[ex.ID]; ok {
				merged[at] = ex
				continue
			}
			index[ex.ID] = len(merged)
			merged = append(merged, ex)
		}
	}

	add(PredefinedExercises)
	add(public)
	add(custom)

	return merged, nil
}

// ExerciseByID returns the exercise with the given id from the merged
// catalog, or nil when unknown.
func (c *Catalog) ExerciseByID(ctx context.Context, id string) (*Exercise, error) {
	exercises, err := c.Exercises(ctx)
	if err != nil {
		return nil, err
	}
	for i := range exercises {
		if exercises[i].ID == id {
			return &exercises[i], nil
		}
	}
	return nil, nil
}

// Categories returns the distinct categories of the merged catalog in
// first-seen order.
func (c *Catalog) Categories(ctx context.Context) ([]string, error) {
	exercises, err := c.Exercises(ctx)
	if err != nil {
		return nil, err
	}
	return distinct(exercises, func(ex Exercise) string { return ex.Category }), nil
}

// MuscleGroups returns the distinct muscle groups of the merged catalog in
// first-seen order.
func (c *Catalog) MuscleGroups(ctx context.Context) ([]string, error) {
	exercises, err := c.Exercises(ctx)
	if err != nil {
		return nil, err
	}
	return distinct(exercises, func(ex Exercise) string { return ex.MuscleGroup }), nil
}

func distinct(exercises []Exercise, key func(Exercise) string) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, ex := range exercises {
		k := key(ex)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		values = append(values, k)
	}
	return values
}
