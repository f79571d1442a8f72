package domain

import "time"

type Profile struct {
	ID              string  `json:"id" db:"id"`
	FirstName       string  `json:"firstName" db:"first_name"`
	Age             *int    `json:"age,omitempty" db:"age"`
	Gender          string  `json:"gender,omitempty" db:"gender"`
	Program         string  `json:"program" db:"program"`
	Bio             string  `json:"bio" db:"bio"`
	PhotoURL        *string `json:"photoUrl,omitempty" db:"photo_url"`
	InstagramHandle *string `json:"instagramHandle,omitempty" db:"instagram_handle"`

	// About me
	SleepSchedule   SleepSchedule   `json:"sleepSchedule" db:"sleep_schedule"`
	Cleanliness     int             `json:"cleanliness" db:"cleanliness"`
	SocialEnergy    int             `json:"socialEnergy" db:"social_energy"`
	GuestsFrequency GuestsFrequency `json:"guestsFrequency" db:"guests_frequency"`
	SubstanceEnv    SubstanceEnv    `json:"substanceEnv" db:"substance_env"`
	NoiseTolerance  NoiseTolerance  `json:"noiseTolerance" db:"noise_tolerance"`
	HasDog          bool            `json:"hasDog" db:"has_dog"`
	HasCat          bool            `json:"hasCat" db:"has_cat"`

	// What I want in a roommate
	PrefCleanliness     int             `json:"prefCleanliness" db:"pref_cleanliness"`
	PrefSocialEnergy    int             `json:"prefSocialEnergy" db:"pref_social_energy"`
	PrefGuestsFrequency GuestsFrequency `json:"prefGuestsFrequency" db:"pref_guests_frequency"`
	PetAllergy          PetAllergy      `json:"petAllergy" db:"pet_allergy"`
	OpenToPets          bool            `json:"openToPets" db:"open_to_pets"`

	LeaseDuration LeaseDuration `json:"leaseDuration" db:"lease_duration"`
	MoveInDate    *string       `json:"moveInDate,omitempty" db:"move_in_date"`
	BudgetMin     *int          `json:"budgetMin,omitempty" db:"budget_min"`
	BudgetMax     *int          `json:"budgetMax,omitempty" db:"budget_max"`
	Hobbies       []string      `json:"hobbies,omitempty" db:"hobbies"`

	Onboarded bool      `json:"onboarded" db:"onboarded"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// IsComplete reports whether the profile may take part in matching:
// a first name and at least one lifestyle field must be set.
func (p *Profile) IsComplete() bool {
	if p == nil || p.FirstName == "" {
		return false
	}
	return p.SleepSchedule != "" ||
		p.Cleanliness != 0 ||
		p.SocialEnergy != 0 ||
		p.GuestsFrequency != "" ||
		p.SubstanceEnv != "" ||
		p.NoiseTolerance != ""
}

// HasPets reports whether the profile owner lives with a dog or a cat.
func (p *Profile) HasPets() bool {
	return p.HasDog || p.HasCat
}

// Public returns a copy without contact details. Those are only shown
// to accepted roommate matches.
func (p *Profile) Public() *Profile {
	if p == nil {
		return nil
	}
	cp := *p
	cp.InstagramHandle = nil
	return &cp
}

// DefaultProfile is the neutral viewer used before onboarding is done.
func DefaultProfile(id string) *Profile {
	return &Profile{
		ID:                  id,
		SleepSchedule:       SleepNormal,
		Cleanliness:         3,
		PrefCleanliness:     3,
		SocialEnergy:        3,
		PrefSocialEnergy:    3,
		GuestsFrequency:     GuestsOccasionally,
		PrefGuestsFrequency: GuestsOccasionally,
		SubstanceEnv:        SubstanceSmokeFree,
		PetAllergy:          AllergyNone,
		OpenToPets:          true,
		NoiseTolerance:      NoiseModerate,
		LeaseDuration:       Lease8Months,
	}
}
