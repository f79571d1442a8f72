package fakes

import "github.com/gdugdh24/roommate-backend/internal/domain"

func IntPtr(v int) *int { return &v }

func StrPtr(s string) *string { return &s }

// Roommate returns an onboarded profile with neutral habits; mutate adjusts it.
func Roommate(id, name string, age int, mutate func(p *domain.Profile)) *domain.Profile {
	p := domain.DefaultProfile(id)
	p.FirstName = name
	if age > 0 {
		p.Age = IntPtr(age)
	}
	p.Onboarded = true
	if mutate != nil {
		mutate(p)
	}
	return p
}

// SeedProfiles is a small population with distinct habits.
func SeedProfiles() []*domain.Profile {
	return []*domain.Profile{
		Roommate("alex", "Alex", 21, func(p *domain.Profile) {
			p.Program = "Computer Science"
			p.Bio = "Early riser, keep things tidy. Love hiking on weekends."
			p.SleepSchedule = domain.SleepEarly
			p.Cleanliness = 4
			p.Hobbies = []string{"hiking", "chess"}
			p.InstagramHandle = StrPtr("alex.hikes")
		}),
		Roommate("mike", "Mike", 20, func(p *domain.Profile) {
			p.Program = "Business"
			p.Bio = "Super outgoing. Dog owner, he's friendly."
			p.SleepSchedule = domain.SleepShift
			p.Cleanliness = 2
			p.SocialEnergy = 5
			p.GuestsFrequency = domain.GuestsFrequently
			p.SubstanceEnv = domain.Substance420Friendly
			p.HasDog = true
		}),
		Roommate("liam", "Liam", 25, func(p *domain.Profile) {
			p.Program = "Working (Finance)"
			p.Bio = "Clean, quiet, keep to myself mostly."
			p.SleepSchedule = domain.SleepEarly
			p.Cleanliness = 5
			p.SocialEnergy = 1
			p.GuestsFrequency = domain.GuestsRarely
			p.LeaseDuration = domain.Lease12Plus
			p.PhotoURL = StrPtr("https://img.example/liam.jpg")
		}),
		Roommate("priya", "Priya", 24, func(p *domain.Profile) {
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
		}),
	}
}
