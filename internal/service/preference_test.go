package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mealsmith/recipe-service/internal/models"
)

func setupPreferenceDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := db.AutoMigrate(&models.IngredientPreference{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestCreatePreference(t *testing.T) {
	svc := NewPreferenceService(setupPreferenceDB(t))
	ctx := context.Background()

	pref, err := svc.Create(ctx, 1, "tomato", models.PreferenceLiked)
	require.NoError(t, err)
	assert.NotZero(t, pref.ID)
	assert.Equal(t, 1, pref.UserID)
	assert.Equal(t, "tomato", pref.Ingredient)
	assert.Equal(t, models.PreferenceLiked, pref.Preference)
}

func TestCreateDuplicateWithSamePreference(t *testing.T) {
	svc := NewPreferenceService(setupPreferenceDB(t))
	ctx := context.Background()

	first, err := svc.Create(ctx, 2, "tomato", models.PreferenceLiked)
	require.NoError(t, err)
	second, err := svc.Create(ctx, 2, "tomato", models.PreferenceLiked)
	require.NoError(t, err)

	// The duplicate creation returns the existing record; no second row.
	assert.Equal(t, first.ID, second.ID)

	prefs, err := svc.List(ctx, 2, 0, 100)
	require.NoError(t, err)
	assert.Len(t, prefs, 1)
}

func TestCreateContradictoryPreference(t *testing.T) {
	svc := NewPreferenceService(setupPreferenceDB(t))
	ctx := context.Background()

	_, err := svc.Create(ctx, 3, "lettuce", models.PreferenceLiked)
	require.NoError(t, err)

	_, err = svc.Create(ctx, 3, "lettuce", models.PreferenceDisliked)
	assert.ErrorIs(t, err, ErrContradictoryPreference)

	// Storage is untouched by the failed create.
	stored, err := svc.Get(ctx, 3, "lettuce")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, models.PreferenceLiked, stored.Preference)
}

func TestPreferencesAreCaseSensitive(t *testing.T) {
	svc := NewPreferenceService(setupPreferenceDB(t))
	ctx := context.Background()

	_, err := svc.Create(ctx, 3, "Basil", models.PreferenceLiked)
	require.NoError(t, err)

	// "basil" is a different ingredient; no contradiction, no match.
	_, err = svc.Create(ctx, 3, "basil", models.PreferenceDisliked)
	require.NoError(t, err)

	stored, err := svc.Get(ctx, 3, "Basil")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, models.PreferenceLiked, stored.Preference)
}

func TestUpdateOverwritesWithoutContradictionCheck(t *testing.T) {
	svc := NewPreferenceService(setupPreferenceDB(t))
	ctx := context.Background()

	_, err := svc.Create(ctx, 4, "onion", models.PreferenceLiked)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, 4, "onion", models.PreferenceDisliked)
	require.NoError(t, err)
	assert.Equal(t, models.PreferenceDisliked, updated.Preference)

	stored, err := svc.Get(ctx, 4, "onion")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, models.PreferenceDisliked, stored.Preference)
}

func TestUpdateMissingPreference(t *testing.T) {
	svc := NewPreferenceService(setupPreferenceDB(t))

	_, err := svc.Update(context.Background(), 5, "never-created", models.PreferenceLiked)
	assert.ErrorIs(t, err, ErrPreferenceNotFound)
}

func TestDeletePreference(t *testing.T) {
	svc := NewPreferenceService(setupPreferenceDB(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, 6, "cucumber", models.PreferenceLiked)
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, 6, "cucumber")
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)
	assert.Equal(t, models.PreferenceLiked, deleted.Preference)

	// Read after delete misses.
	stored, err := svc.Get(ctx, 6, "cucumber")
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestDeleteMissingPreference(t *testing.T) {
	svc := NewPreferenceService(setupPreferenceDB(t))

	_, err := svc.Delete(context.Background(), 7, "never-created")
	assert.ErrorIs(t, err, ErrPreferenceNotFound)
}

func TestListPreferences(t *testing.T) {
	svc := NewPreferenceService(setupPreferenceDB(t))
	ctx := context.Background()

	names := []string{"salt", "sugar", "pepper"}
	for _, name := range names {
		_, err := svc.Create(ctx, 8, name, models.PreferenceLiked)
		require.NoError(t, err)
	}
	// Another user's records must not leak into the listing.
	_, err := svc.Create(ctx, 9, "salt", models.PreferenceDisliked)
	require.NoError(t, err)

	prefs, err := svc.List(ctx, 8, 0, 100)
	require.NoError(t, err)
	require.Len(t, prefs, 3)

	listed := make([]string, len(prefs))
	for i, p := range prefs {
		listed[i] = p.Ingredient
	}
	assert.ElementsMatch(t, names, listed)
}

func TestListPreferencesPagination(t *testing.T) {
	svc := NewPreferenceService(setupPreferenceDB(t))
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c", "d", "e"} {
		_, err := svc.Create(ctx, 10, name, models.PreferenceLiked)
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, 10, 2, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	tail, err := svc.List(ctx, 10, 4, 100)
	require.NoError(t, err)
	assert.Len(t, tail, 1)
}

func TestDeleteAll(t *testing.T) {
	svc := NewPreferenceService(setupPreferenceDB(t))
	ctx := context.Background()

	for _, name := range []string{"salt", "sugar"} {
		_, err := svc.Create(ctx, 11, name, models.PreferenceLiked)
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, 12, "salt", models.PreferenceDisliked)
	require.NoError(t, err)

	deleted, err := svc.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	prefs, err := svc.List(ctx, 11, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, prefs)
}
