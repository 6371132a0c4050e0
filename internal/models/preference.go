package models

import (
	"time"
)

// PreferenceType is a user's stance on an ingredient.
type PreferenceType string

const (
	PreferenceLiked    PreferenceType = "liked"
	PreferenceDisliked PreferenceType = "disliked"

	// NoPreference annotates requested ingredients with no stored record.
	// It is never persisted.
	NoPreference = "no preference"
)

// Valid reports whether p is one of the two storable preference values.
func (p PreferenceType) Valid() bool {
	return p == PreferenceLiked || p == PreferenceDisliked
}

// IngredientPreference stores a user's like/dislike stance on a single
// ingredient. The (user_id, ingredient) pair is unique: the composite index
// is the authoritative consistency guarantee, the service-level contradiction
// check on top of it is only a fast path with a better error message.
type IngredientPreference struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	UserID     int            `gorm:"not null;index;uniqueIndex:uix_user_ingredient" json:"user_id"`
	Ingredient string         `gorm:"size:255;not null;uniqueIndex:uix_user_ingredient" json:"ingredient"`
	Preference PreferenceType `gorm:"size:16;not null" json:"preference"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// TableName keeps the table name stable regardless of pluralization rules.
func (IngredientPreference) TableName() string {
	return "ingredient_preferences"
}
