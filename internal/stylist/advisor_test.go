package stylist

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"outfitai/internal/models"
)

var (
	testItem = models.ClothingItem{
		Category:    "Top",
		Color:       "Navy Blue",
		Style:       "Casual",
		Description: "ribbed cotton, fitted",
	}
	testScene   = models.SceneContext{Occasion: "Date Night", Weather: "Mild/Spring"}
	testProfile = models.UserProfile{Gender: "Female", SkinTone: "Medium", BodyType: "Hourglass"}
)

func TestAdvicePrompt_EmbedsEveryFieldVerbatim(t *testing.T) {
	prompt := advicePrompt(testItem, testScene, testProfile)

	for _, value := range []string{
		"Top", "Navy Blue", "Casual", "ribbed cotton, fitted",
		"Date Night", "Mild/Spring",
		"Female", "Medium", "Hourglass",
	} {
		assert.Contains(t, prompt, value)
	}
}

func TestAdvise_ReturnsModelTextVerbatim(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("GenerateText", mock.Anything, "models/gemini-1.5-flash", mock.Anything).
		Return("Pair with white linen trousers and gold hoops.", nil).Once()

	s, _ := newTestStylist(gen)
	advice := s.Advise(context.Background(), "models/gemini-1.5-flash", testItem, testScene, testProfile)
	assert.Equal(t, "Pair with white linen trousers and gold hoops.", advice)
	gen.AssertExpectations(t)
}

func TestAdvise_ErrorDegradesToApology(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("googleapi: Error 503: overloaded")).Once()

	s, _ := newTestStylist(gen)
	advice := s.Advise(context.Background(), "models/gemini-1.5-flash", testItem, testScene, testProfile)
	assert.Contains(t, advice, "Sorry, I couldn't generate advice right now.")
	assert.Contains(t, advice, "503")
}

func TestStyle_ShortCircuitsOnClassifierFailure(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("GenerateVision", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("googleapi: Error 400: bad image")).Once()

	s, _ := newTestStylist(gen)
	sess := Session{Model: "models/gemini-1.5-flash", Profile: testProfile, Scene: testScene}
	result, err := s.Style(context.Background(), sess, testImage)
	assert.Nil(t, result)
	assert.Error(t, err)

	// No advice call may be attempted once classification fails.
	gen.AssertNotCalled(t, "GenerateText", mock.Anything, mock.Anything, mock.Anything)
}

func TestStyle_RunsBothStages(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("GenerateVision", mock.Anything, mock.Anything, mock.Anything, testImage).
		Return(itemJSON, nil).Once()
	gen.On("GenerateText", mock.Anything, mock.Anything, mock.MatchedBy(func(prompt string) bool {
		// The advice prompt must carry the classifier's output forward.
		return strings.Contains(prompt, "Navy Blue") && strings.Contains(prompt, "Date Night")
	})).Return("Lovely! Pair with...", nil).Once()

	s, _ := newTestStylist(gen)
	sess := Session{Model: "models/gemini-1.5-flash", Profile: testProfile, Scene: testScene}
	result, err := s.Style(context.Background(), sess, testImage)
	assert.NoError(t, err)
	assert.Equal(t, "Navy Blue", result.Item.Color)
	assert.Equal(t, "Lovely! Pair with...", result.Advice)
	gen.AssertExpectations(t)
}
