package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mealsmith/recipe-service/internal/models"
)

// PreferenceService handles ingredient preference operations
type PreferenceService struct {
	db *gorm.DB
}

// NewPreferenceService creates a new PreferenceService instance
func NewPreferenceService(db *gorm.DB) *PreferenceService {
	return &PreferenceService{db: db}
}

// Get retrieves the preference for a (user, ingredient) pair. A miss is not
// an error: it returns (nil, nil).
func (s *PreferenceService) Get(ctx context.Context, userID int, ingredient string) (*models.IngredientPreference, error) {
	var pref models.IngredientPreference
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND ingredient = ?", userID, ingredient).
		First(&pref).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pref, nil
}

// Create stores a preference for a (user, ingredient) pair. Creating an
// already-stored pair with the same value is idempotent and returns the
// existing record; a different value fails with ErrContradictoryPreference
// and leaves storage untouched.
func (s *PreferenceService) Create(ctx context.Context, userID int, ingredient string, preference models.PreferenceType) (*models.IngredientPreference, error) {
	existing, err := s.Get(ctx, userID, ingredient)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Preference != preference {
			return nil, ErrContradictoryPreference
		}
		return existing, nil
	}

	pref := models.IngredientPreference{
		UserID:     userID,
		Ingredient: ingredient,
		Preference: preference,
	}
	if err := s.db.WithContext(ctx).Create(&pref).Error; err != nil {
		// The lookup above races against concurrent creates; the unique
		// index on (user_id, ingredient) is the authoritative check. A
		// duplicate-key failure means somebody else won the insert, so
		// re-read and apply the same comparison.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			winner, getErr := s.Get(ctx, userID, ingredient)
			if getErr != nil {
				return nil, getErr
			}
			if winner == nil {
				return nil, err
			}
			if winner.Preference != preference {
				return nil, ErrContradictoryPreference
			}
			return winner, nil
		}
		return nil, fmt.Errorf("failed to create preference: %w", err)
	}
	return &pref, nil
}

// Update overwrites the preference for an existing pair. Contradiction is
// only enforced at creation; updates replace the value unconditionally.
func (s *PreferenceService) Update(ctx context.Context, userID int, ingredient string, preference models.PreferenceType) (*models.IngredientPreference, error) {
	existing, err := s.Get(ctx, userID, ingredient)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrPreferenceNotFound
	}

	existing.Preference = preference
	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, fmt.Errorf("failed to update preference: %w", err)
	}
	return existing, nil
}

// Delete removes the preference for a pair and returns the deleted record.
func (s *PreferenceService) Delete(ctx context.Context, userID int, ingredient string) (*models.IngredientPreference, error) {
	existing, err := s.Get(ctx, userID, ingredient)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrPreferenceNotFound
	}

	if err := s.db.WithContext(ctx).Delete(existing).Error; err != nil {
		return nil, fmt.Errorf("failed to delete preference: %w", err)
	}
	return existing, nil
}

// List returns the user's preferences paginated by skip/limit. Ordering is
// the database default (insertion order in practice, not guaranteed).
func (s *PreferenceService) List(ctx context.Context, userID, skip, limit int) ([]models.IngredientPreference, error) {
	var prefs []models.IngredientPreference
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Offset(skip).
		Limit(limit).
		Find(&prefs).Error
	if err != nil {
		return nil, err
	}
	return prefs, nil
}

// DeleteAll wipes every stored preference and reports how many rows were
// removed. Only the admin clean-database endpoint calls this.
func (s *PreferenceService) DeleteAll(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&models.IngredientPreference{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to clean database: %w", res.Error)
	}
	return res.RowsAffected, nil
}
