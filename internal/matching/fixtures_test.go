package matching

import "github.com/gdugdh24/roommate-backend/internal/domain"

func intPtr(v int) *int { return &v }

func profile(id, name string, age *int, mutate func(p *domain.Profile)) *domain.Profile {
	p := &domain.Profile{
		ID:                  id,
		FirstName:           name,
		Age:                 age,
		SleepSchedule:       domain.SleepNormal,
		Cleanliness:         3,
		PrefCleanliness:     3,
		SocialEnergy:        3,
		PrefSocialEnergy:    3,
		GuestsFrequency:     domain.GuestsOccasionally,
		PrefGuestsFrequency: domain.GuestsOccasionally,
		SubstanceEnv:        domain.SubstanceSmokeFree,
		PetAllergy:          domain.AllergyNone,
		OpenToPets:          true,
		NoiseTolerance:      domain.NoiseModerate,
		LeaseDuration:       domain.Lease8Months,
	}
	if mutate != nil {
		mutate(p)
	}
	return p
}

// candidates mirrors the seed roommates used by the mobile app.
func candidates() []*domain.Profile {
	return []*domain.Profile{
		profile("alex", "Alex", intPtr(21), func(p *domain.Profile) {
			p.Program = "Computer Science"
			p.Bio = "Early riser, keep things tidy. Love hiking on weekends."
			p.SleepSchedule = domain.SleepEarly
			p.Cleanliness = 4
			p.Hobbies = []string{"hiking", "climbing", "chess"}
		}),
		profile("margret", "Margret", intPtr(23), func(p *domain.Profile) {
			p.Program = "Biology"
			p.Bio = "Quiet, calm. I have a cat named Biscuit."
			p.SleepSchedule = domain.SleepEarly
			p.Cleanliness = 5
			p.SocialEnergy = 2
			p.GuestsFrequency = domain.GuestsRarely
			p.HasCat = true
			p.LeaseDuration = domain.Lease12Plus
			p.Hobbies = []string{"reading"}
		}),
		profile("jordan", "Jordan", intPtr(22), func(p *domain.Profile) {
			p.Program = "Co-op (Software)"
			p.Bio = "Big into cooking and board games."
			p.SocialEnergy = 4
			p.SubstanceEnv = domain.SubstanceAlcoholOK
			p.LeaseDuration = domain.Lease4Months
			p.Hobbies = []string{"cooking", "board games", "chess"}
		}),
		profile("mike", "Mike", intPtr(20), func(p *domain.Profile) {
			p.Program = "Business"
			p.Bio = "Super outgoing. Dog owner, he's friendly."
			p.SleepSchedule = domain.SleepShift
			p.Cleanliness = 2
			p.SocialEnergy = 5
			p.GuestsFrequency = domain.GuestsFrequently
			p.SubstanceEnv = domain.Substance420Friendly
			p.HasDog = true
		}),
		profile("sophie", "Sophie", intPtr(22), func(p *domain.Profile) {
			p.Program = "Arts & Design"
			p.Bio = "Night owl by nature. I paint late."
			p.SleepSchedule = domain.SleepNightOwl
			p.Cleanliness = 4
			p.SubstanceEnv = domain.SubstanceAlcoholOK
			p.LeaseDuration = domain.Lease4Months
			p.Hobbies = []string{"painting", "hiking", "chess"}
		}),
		profile("liam", "Liam", intPtr(25), func(p *domain.Profile) {
			p.Program = "Working (Finance)"
			p.Bio = "Clean, quiet, keep to myself mostly."
			p.SleepSchedule = domain.SleepEarly
			p.Cleanliness = 5
			p.SocialEnergy = 1
			p.GuestsFrequency = domain.GuestsRarely
			p.LeaseDuration = domain.Lease12Plus
		}),
		profile("zara", "Zara", intPtr(21), func(p *domain.Profile) {
			p.Program = "Nursing"
			p.Bio = "Shift nurse so hours are weird. I have a small cat."
			p.SleepSchedule = domain.SleepShift
			p.Cleanliness = 4
			p.GuestsFrequency = domain.GuestsRarely
			p.HasCat = true
			p.LeaseDuration = domain.Lease12Plus
		}),
		profile("sam", "Sam", nil, func(p *domain.Profile) {
			p.Program = "Undeclared"
			p.Bio = "Still figuring things out."
			p.Hobbies = []string{"hiking"}
		}),
	}
}

// priya is a tidy early riser who avoids substances and is allergic to dogs.
func priya() *domain.Profile {
	return profile("priya", "Priya", intPtr(24), func(p *domain.Profile) {
		p.Program = "Engineering"
		p.SleepSchedule = domain.SleepEarly
		p.Cleanliness = 5
		p.PrefCleanliness = 4
		p.SocialEnergy = 2
		p.PrefSocialEnergy = 2
		p.GuestsFrequency = domain.GuestsRarely
		p.PrefGuestsFrequency = domain.GuestsRarely
		p.SubstanceEnv = domain.SubstanceNoSubstances
		p.PetAllergy = domain.AllergyDog
		p.OpenToPets = false
		p.Hobbies = []string{"hiking", "chess"}
	})
}

func ids(results []Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Profile.ID
	}
	return out
}
