package cli

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/gdugdh24/roommate-backend/internal/domain"
)

// fixtureFile is the on-disk layout read by score and discover.
type fixtureFile struct {
	Viewer   string           `yaml:"viewer"`
	Profiles []fixtureProfile `yaml:"profiles"`
}

type fixtureProfile struct {
	ID        string `yaml:"id"`
	FirstName string `yaml:"firstName"`
	Age       *int   `yaml:"age"`
	Program   string `yaml:"program"`
	Bio       string `yaml:"bio"`

	SleepSchedule   domain.SleepSchedule   `yaml:"sleepSchedule"`
	Cleanliness     int                    `yaml:"cleanliness"`
	SocialEnergy    int                    `yaml:"socialEnergy"`
	GuestsFrequency domain.GuestsFrequency `yaml:"guestsFrequency"`
	SubstanceEnv    domain.SubstanceEnv    `yaml:"substanceEnv"`
	HasDog          bool                   `yaml:"hasDog"`
	HasCat          bool                   `yaml:"hasCat"`

	PrefCleanliness     int                    `yaml:"prefCleanliness"`
	PrefSocialEnergy    int                    `yaml:"prefSocialEnergy"`
	PrefGuestsFrequency domain.GuestsFrequency `yaml:"prefGuestsFrequency"`
	PetAllergy          domain.PetAllergy      `yaml:"petAllergy"`
	OpenToPets          *bool                  `yaml:"openToPets"`

	LeaseDuration domain.LeaseDuration `yaml:"leaseDuration"`
	Hobbies       []string             `yaml:"hobbies"`
}

func (f fixtureProfile) toDomain() *domain.Profile {
	p := &domain.Profile{
		ID:                  f.ID,
		FirstName:           f.FirstName,
		Age:                 f.Age,
		Program:             f.Program,
		Bio:                 f.Bio,
		SleepSchedule:       f.SleepSchedule,
		Cleanliness:         f.Cleanliness,
		SocialEnergy:        f.SocialEnergy,
		GuestsFrequency:     f.GuestsFrequency,
		SubstanceEnv:        f.SubstanceEnv,
		HasDog:              f.HasDog,
		HasCat:              f.HasCat,
		PrefCleanliness:     f.PrefCleanliness,
		PrefSocialEnergy:    f.PrefSocialEnergy,
		PrefGuestsFrequency: f.PrefGuestsFrequency,
		PetAllergy:          f.PetAllergy,
		OpenToPets:          true,
		LeaseDuration:       f.LeaseDuration,
		Hobbies:             f.Hobbies,
		Onboarded:           true,
	}
	if p.PetAllergy == "" {
		p.PetAllergy = domain.AllergyNone
	}
	if f.OpenToPets != nil {
		p.OpenToPets = *f.OpenToPets
	}
	return p
}

type fixtures struct {
	viewer   string
	profiles []*domain.Profile
	byID     map[string]*domain.Profile
}

func loadFixtures(path string) (*fixtures, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixtures: %w", err)
	}

	var file fixtureFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parsing fixtures %s: %w", path, err)
	}

	fx := &fixtures{viewer: file.Viewer, byID: make(map[string]*domain.Profile, len(file.Profiles))}
	for i, fp := range file.Profiles {
		if fp.ID == "" {
			return nil, fmt.Errorf("profile #%d in %s has no id", i+1, path)
		}
		if _, dup := fx.byID[fp.ID]; dup {
			return nil, fmt.Errorf("duplicate profile id %q in %s", fp.ID, path)
		}
		p := fp.toDomain()
		fx.profiles = append(fx.profiles, p)
		fx.byID[p.ID] = p
	}
	return fx, nil
}

func (fx *fixtures) get(id string) (*domain.Profile, error) {
	p, ok := fx.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrProfileNotFound, id)
	}
	return p, nil
}

func bindFlags(v *viper.Viper, lookup func(string) *pflag.Flag, names ...string) {
	for _, name := range names {
		_ = v.BindPFlag(name, lookup(name))
	}
}
