// Package matching holds the roommate compatibility score and the
// filter/sort pipeline run over a candidate list. Everything here is pure:
// no I/O, no shared state, inputs are never mutated.
package matching

import (
	"math"

	"github.com/gdugdh24/roommate-backend/internal/domain"
)

const (
	maxScore = 100

	sleepStep      = 10
	preferenceStep = 5
	preferenceCap  = 20
	guestsStep     = 8
	noSubstances   = 20
	smokeFreeVs420 = 15
	singleAllergy  = 40
	bothAllergies  = 50
	petsNotWelcome = 25
)

// Penalty names, as reported in a Breakdown.
const (
	PenaltySleep        = "sleep_schedule"
	PenaltyCleanliness  = "cleanliness"
	PenaltySocialEnergy = "social_energy"
	PenaltyGuests       = "guests_frequency"
	PenaltySubstances   = "substance_environment"
	PenaltyPetAllergy   = "pet_allergy"
	PenaltyPetTolerance = "pet_tolerance"
)

// Penalty is one deduction applied to the base score.
type Penalty struct {
	Reason string `json:"reason"`
	Points int    `json:"points"`
}

// Breakdown explains how a score was reached.
type Breakdown struct {
	Score     int       `json:"score"`
	Tier      Tier      `json:"tier"`
	Total     int       `json:"total_penalty"`
	Penalties []Penalty `json:"penalties"`
}

// Score returns how well candidate b suits viewer a, from 0 to 100.
// Only a's preferences are compared with b's actual habits, so
// Score(a, b) and Score(b, a) generally differ.
func Score(a, b *domain.Profile) int {
	return Explain(a, b).Score
}

// Explain computes the score and lists every non-zero penalty in the
// order it was applied.
func Explain(a, b *domain.Profile) Breakdown {
	if a == nil {
		a = &domain.Profile{}
	}
	if b == nil {
		b = &domain.Profile{}
	}

	var penalties []Penalty
	add := func(reason string, points int) {
		if points != 0 {
			penalties = append(penalties, Penalty{Reason: reason, Points: points})
		}
	}

	add(PenaltySleep, abs(a.SleepSchedule.Ordinal()-b.SleepSchedule.Ordinal())*sleepStep)
	add(PenaltyCleanliness, preferenceGap(a.PrefCleanliness, b.Cleanliness))
	add(PenaltySocialEnergy, preferenceGap(a.PrefSocialEnergy, b.SocialEnergy))

	if a.PrefGuestsFrequency != b.GuestsFrequency {
		add(PenaltyGuests, abs(a.PrefGuestsFrequency.Ordinal()-b.GuestsFrequency.Ordinal())*guestsStep)
	}

	// Only these two combinations are penalised. The table is one-sided on purpose.
	substances := 0
	if a.SubstanceEnv == domain.SubstanceNoSubstances && b.SubstanceEnv != domain.SubstanceNoSubstances {
		substances += noSubstances
	}
	if a.SubstanceEnv == domain.SubstanceSmokeFree && b.SubstanceEnv == domain.Substance420Friendly {
		substances += smokeFreeVs420
	}
	add(PenaltySubstances, substances)

	allergy := 0
	if a.PetAllergy == domain.AllergyDog && b.HasDog {
		allergy += singleAllergy
	}
	if a.PetAllergy == domain.AllergyCat && b.HasCat {
		allergy += singleAllergy
	}
	if a.PetAllergy == domain.AllergyBoth && b.HasPets() {
		allergy += bothAllergies
	}
	add(PenaltyPetAllergy, allergy)

	if !a.OpenToPets && b.HasPets() {
		add(PenaltyPetTolerance, petsNotWelcome)
	}

	total := 0
	for _, p := range penalties {
		total += p.Points
	}
	score := clamp(int(math.Round(float64(maxScore-total))), 0, maxScore)

	return Breakdown{
		Score:     score,
		Tier:      TierOf(score),
		Total:     total,
		Penalties: penalties,
	}
}

// preferenceGap compares a stated preference with the candidate's actual
// level on the 1..5 scales. Out-of-range input is not rejected; the
// distance is taken in uint so extreme values cannot wrap.
func preferenceGap(pref, actual int) int {
	var d uint
	if pref >= actual {
		d = uint(pref) - uint(actual)
	} else {
		d = uint(actual) - uint(pref)
	}
	if d >= preferenceCap/preferenceStep {
		return preferenceCap
	}
	return int(d) * preferenceStep
}

// Tier buckets scores the same way the app colours its badges.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

func TierOf(score int) Tier {
	switch {
	case score >= 75:
		return TierHigh
	case score >= 50:
		return TierMedium
	default:
		return TierLow
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func clamp(x, lo, hi int) int {
	return max(lo, min(hi, x))
}
