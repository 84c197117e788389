package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vibeflow/models"
)

func TestBuildPromptAttachesMoodContext(t *testing.T) {
	prompt := buildPrompt(ChatRequest{
		Message:     "I can't focus today",
		CurrentMood: models.MoodStressed,
		UserContext: "works night shifts",
	})

	assert.Contains(t, prompt, "current mood is stressed")
	assert.Contains(t, prompt, models.MoodStressed.Emoji())
	assert.Contains(t, prompt, "works night shifts")
	assert.Contains(t, prompt, "User: I can't focus today")
}

func TestBuildPromptWithoutMood(t *testing.T) {
	prompt := buildPrompt(ChatRequest{Message: "hello"})
	assert.NotContains(t, prompt, "current mood")
	assert.Contains(t, prompt, "User: hello")
}

func TestBuildPromptPrefersClientEmoji(t *testing.T) {
	prompt := buildPrompt(ChatRequest{
		Message:     "hi",
		CurrentMood: models.MoodHappy,
		MoodEmoji:   "🙂",
	})
	assert.Contains(t, prompt, "🙂")
}
