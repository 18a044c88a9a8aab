package store

import (
	"github.com/Oceanvibes209/LoneWolfFitness-Server/internal/domain"
)

// WorkoutResource describes the fitness_tracker table.
var WorkoutResource = Descriptor[domain.Workout]{
	Entity:  "workout",
	Table:   "fitness_tracker",
	Columns: []string{"exercise", "sets", "reps", "weight"},
	Fields: func(w domain.Workout) map[string]any {
		return map[string]any{
			"exercise": w.Exercise,
			"sets":     w.Sets,
			"reps":     w.Reps,
			"weight":   w.Weight,
		}
	},
	Scan: func(row RowScanner) (domain.Workout, error) {
		var w domain.Workout
		err := row.Scan(&w.ID, &w.Date, &w.Exercise, &w.Sets, &w.Reps, &w.Weight, &w.DeletedFlag)
		return w, err
	},
	NotFoundErr: ErrWorkoutNotFound,
}

// UserWorkoutResource describes the user_data table. It is the only
// scoped resource: updates and deletes must match user_id as well as id.
var UserWorkoutResource = Descriptor[domain.UserWorkout]{
	Entity:      "user workout",
	Table:       "user_data",
	Columns:     []string{"exercise", "sets", "reps", "weight", "user_id"},
	OwnerColumn: "user_id",
	Fields: func(w domain.UserWorkout) map[string]any {
		return map[string]any{
			"exercise": w.Exercise,
			"sets":     w.Sets,
			"reps":     w.Reps,
			"weight":   w.Weight,
			"user_id":  w.UserID,
		}
	},
	Scan: func(row RowScanner) (domain.UserWorkout, error) {
		var w domain.UserWorkout
		err := row.Scan(&w.ID, &w.Date, &w.Exercise, &w.Sets, &w.Reps, &w.Weight, &w.UserID, &w.DeletedFlag)
		return w, err
	},
	NotFoundErr: ErrUserWorkoutNotFound,
}

// FoodEntryResource describes the food_tracker table.
var FoodEntryResource = Descriptor[domain.FoodEntry]{
	Entity:  "food entry",
	Table:   "food_tracker",
	Columns: []string{"food", "calories", "protein", "fat", "carbs"},
	Fields: func(f domain.FoodEntry) map[string]any {
		return map[string]any{
			"food":     f.Food,
			"calories": f.Calories,
			"protein":  f.Protein,
			"fat":      f.Fat,
			"carbs":    f.Carbs,
		}
	},
	Scan: func(row RowScanner) (domain.FoodEntry, error) {
		var f domain.FoodEntry
		err := row.Scan(&f.ID, &f.Date, &f.Food, &f.Calories, &f.Protein, &f.Fat, &f.Carbs, &f.DeletedFlag)
		return f, err
	},
	NotFoundErr: ErrFoodEntryNotFound,
}
