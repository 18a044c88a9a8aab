package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Oceanvibes209/LoneWolfFitness-Server/internal/domain"
)

func TestWorkoutDescriptorBindings(t *testing.T) {
	fields := WorkoutResource.Fields(domain.Workout{
		Exercise: "squat", Sets: 5, Reps: 5, Weight: 225,
	})

	for _, col := range WorkoutResource.Columns {
		assert.Contains(t, fields, col, "column %q has no field binding", col)
	}
	assert.Len(t, fields, len(WorkoutResource.Columns))
	assert.False(t, WorkoutResource.Scoped())
}

func TestUserWorkoutDescriptorBindings(t *testing.T) {
	fields := UserWorkoutResource.Fields(domain.UserWorkout{
		Exercise: "row", Sets: 4, Reps: 10, Weight: 135, UserID: 7,
	})

	for _, col := range UserWorkoutResource.Columns {
		assert.Contains(t, fields, col, "column %q has no field binding", col)
	}
	assert.Len(t, fields, len(UserWorkoutResource.Columns))

	require.True(t, UserWorkoutResource.Scoped())
	assert.Contains(t, UserWorkoutResource.Columns, UserWorkoutResource.OwnerColumn,
		"the owner column must be written on insert")
	assert.Equal(t, int64(7), fields["user_id"])
}

func TestFoodEntryDescriptorBindings(t *testing.T) {
	fields := FoodEntryResource.Fields(domain.FoodEntry{
		Food: "rice", Calories: 200, Protein: 4, Fat: 1, Carbs: 44,
	})

	for _, col := range FoodEntryResource.Columns {
		assert.Contains(t, fields, col, "column %q has no field binding", col)
	}
	assert.Len(t, fields, len(FoodEntryResource.Columns))
	assert.False(t, FoodEntryResource.Scoped())
	assert.Equal(t, 200, fields["calories"])
}

// fakeDBTX is a stand-in database handle for context carry tests.
type fakeDBTX struct {
	DBTX
}

func TestConnFromContext(t *testing.T) {
	fallback := &fakeDBTX{}
	requestConn := &fakeDBTX{}

	// No connection in context: the fallback wins.
	assert.Equal(t, DBTX(fallback), ConnFromContext(context.Background(), fallback))

	// A request-scoped connection takes precedence over the fallback.
	ctx := WithConn(context.Background(), requestConn)
	assert.Equal(t, DBTX(requestConn), ConnFromContext(ctx, fallback))

	// No connection and no fallback yields nil.
	assert.Nil(t, ConnFromContext(context.Background(), nil))
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.True(t, IsNotFoundError(ErrWorkoutNotFound))
	assert.True(t, IsNotFoundError(ErrUserWorkoutNotFound))
	assert.True(t, IsNotFoundError(ErrFoodEntryNotFound))
	assert.False(t, IsNotFoundError(ErrDuplicate))
	assert.False(t, IsNotFoundError(assert.AnError))
}
