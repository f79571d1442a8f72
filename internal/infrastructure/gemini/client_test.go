package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gdugdh24/roommate-backend/internal/domain"
	"github.com/gdugdh24/roommate-backend/internal/matching"
)

func TestParseIcebreakers_JSON(t *testing.T) {
	got, err := parseIcebreakers("```json\n[\"Hey!\", \"Pizza night?\"]\n```")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hey!", "Pizza night?"}, got)
}

func TestParseIcebreakers_Lines(t *testing.T) {
	got, err := parseIcebreakers("Hey roommate!\n\nWhen are you moving in?")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hey roommate!", "When are you moving in?"}, got)
}

func TestParseIcebreakers_Empty(t *testing.T) {
	_, err := parseIcebreakers("[]x")
	assert.Error(t, err)
}

func TestFallbackExplanation(t *testing.T) {
	a := &domain.Profile{FirstName: "Priya", SleepSchedule: domain.SleepEarly, Hobbies: []string{"chess"}}
	b := &domain.Profile{FirstName: "Liam", SleepSchedule: domain.SleepEarly, Hobbies: []string{"chess"}}

	assert.Contains(t, FallbackExplanation(a, b, matching.Explain(a, b)), "share 1 hobbies")

	b.Hobbies = nil
	assert.Contains(t, FallbackExplanation(a, b, matching.Explain(a, b)), "same early schedule")

	b.SleepSchedule = domain.SleepShift
	assert.Contains(t, FallbackExplanation(a, b, matching.Explain(a, b)), "Priya and Liam")
}

func TestDescribePenalties(t *testing.T) {
	assert.Equal(t, "none", describePenalties(matching.Breakdown{}))
	assert.Equal(t, "sleep_schedule -30, pet_allergy -40", describePenalties(matching.Breakdown{
		Penalties: []matching.Penalty{{Reason: "sleep_schedule", Points: 30}, {Reason: "pet_allergy", Points: 40}},
	}))
}
