package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserProfileValidate(t *testing.T) {
	valid := UserProfile{Gender: "Female", SkinTone: "Medium", BodyType: "Hourglass"}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		profile UserProfile
		wantIn  string
	}{
		{"bad gender", UserProfile{Gender: "Other", SkinTone: "Medium", BodyType: "Pear"}, "gender"},
		{"bad skin tone", UserProfile{Gender: "Male", SkinTone: "Olive", BodyType: "Pear"}, "skin_tone"},
		{"bad body type", UserProfile{Gender: "Male", SkinTone: "Tan", BodyType: "Round"}, "body_type"},
		{"empty", UserProfile{}, "gender"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantIn)
		})
	}
}

func TestSceneContextValidate(t *testing.T) {
	valid := SceneContext{Occasion: "Date Night", Weather: "Mild/Spring"}
	assert.NoError(t, valid.Validate())

	err := SceneContext{Occasion: "Funeral", Weather: "Mild/Spring"}.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "occasion")

	err = SceneContext{Occasion: "Gym/Active", Weather: "Humid"}.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "weather")
}

func TestClothingItemSummary(t *testing.T) {
	item := ClothingItem{Category: "Top", Color: "Navy Blue", Style: "Casual"}
	assert.Equal(t, "Navy Blue Casual Top", item.Summary())
}
