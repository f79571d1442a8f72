package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/gdugdh24/roommate-backend/internal/domain"
	"github.com/gdugdh24/roommate-backend/internal/repository"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	cache       repository.CandidateCache
	validate    *validator.Validate
	log         *zap.Logger
}

func NewProfileUseCase(
	profileRepo repository.ProfileRepository,
	cache repository.CandidateCache,
	log *zap.Logger,
) *ProfileUseCase {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Same tags gin checks on bind, so callers outside HTTP get identical rules.
	v.SetTagName("binding")

	return &ProfileUseCase{
		profileRepo: profileRepo,
		cache:       cache,
		validate:    v,
		log:         log,
	}
}

// SaveProfileRequest is the editable part of a profile, as sent by the
// onboarding wizard and the edit screen. Saves merge: a field left out
// (nil, zero scale, empty enum) keeps its stored value.
type SaveProfileRequest struct {
	FirstName       string  `json:"firstName" binding:"required,min=1,max=50"`
	Age             *int    `json:"age" binding:"omitempty,min=16,max=99"`
	Gender          *string `json:"gender" binding:"omitempty,max=30"`
	Program         *string `json:"program" binding:"omitempty,max=100"`
	Bio             *string `json:"bio" binding:"omitempty,max=500"`
	PhotoURL        *string `json:"photoUrl" binding:"omitempty,url"`
	InstagramHandle *string `json:"instagramHandle" binding:"omitempty,max=30"`

	SleepSchedule   domain.SleepSchedule   `json:"sleepSchedule" binding:"omitempty,oneof=early normal night-owl shift"`
	Cleanliness     int                    `json:"cleanliness" binding:"omitempty,min=1,max=5"`
	SocialEnergy    int                    `json:"socialEnergy" binding:"omitempty,min=1,max=5"`
	GuestsFrequency domain.GuestsFrequency `json:"guestsFrequency" binding:"omitempty,oneof=rarely occasionally frequently"`
	SubstanceEnv    domain.SubstanceEnv    `json:"substanceEnv" binding:"omitempty,oneof=smoke-free alcohol-ok 420-friendly no-substances"`
	NoiseTolerance  domain.NoiseTolerance  `json:"noiseTolerance" binding:"omitempty,oneof=quiet moderate background-ok"`
	HasDog          *bool                  `json:"hasDog"`
	HasCat          *bool                  `json:"hasCat"`

	PrefCleanliness     int                    `json:"prefCleanliness" binding:"omitempty,min=1,max=5"`
	PrefSocialEnergy    int                    `json:"prefSocialEnergy" binding:"omitempty,min=1,max=5"`
	PrefGuestsFrequency domain.GuestsFrequency `json:"prefGuestsFrequency" binding:"omitempty,oneof=rarely occasionally frequently"`
	PetAllergy          domain.PetAllergy      `json:"petAllergy" binding:"omitempty,oneof=none dog cat both"`
	OpenToPets          *bool                  `json:"openToPets"`

	LeaseDuration domain.LeaseDuration `json:"leaseDuration" binding:"omitempty,oneof=4-months 8-months 12-months 12-plus 16-months 16-plus indefinite"`
	MoveInDate    *string              `json:"moveInDate" binding:"omitempty,datetime=2006-01-02"`
	BudgetMin     *int                 `json:"budgetMin" binding:"omitempty,min=0,max=100000"`
	BudgetMax     *int                 `json:"budgetMax" binding:"omitempty,min=0,max=100000"`
	Hobbies       []string             `json:"hobbies" binding:"omitempty,max=20,dive,max=40"`
}

// GetMyProfile returns the caller's profile, contact details included.
func (uc *ProfileUseCase) GetMyProfile(ctx context.Context, uid string) (*domain.Profile, error) {
	return uc.profileRepo.GetByID(ctx, uid)
}

// GetProfile returns someone else's profile without contact details.
func (uc *ProfileUseCase) GetProfile(ctx context.Context, uid string) (*domain.Profile, error) {
	p, err := uc.profileRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if p.FirstName == "" {
		return nil, domain.ErrProfileNotFound
	}
	return p.Public(), nil
}

// SaveProfile creates the caller's profile or merges the request into it.
// An onboarded profile must stay matchable after the merge.
func (uc *ProfileUseCase) SaveProfile(ctx context.Context, uid string, req *SaveProfileRequest) (*domain.Profile, error) {
	if err := uc.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, describeValidation(err))
	}
	if req.BudgetMin != nil && req.BudgetMax != nil && *req.BudgetMin > *req.BudgetMax {
		return nil, fmt.Errorf("%w: budgetMin is greater than budgetMax", domain.ErrInvalidInput)
	}

	profile, err := uc.profileRepo.GetByID(ctx, uid)
	if errors.Is(err, domain.ErrProfileNotFound) {
		profile = &domain.Profile{ID: uid, PetAllergy: domain.AllergyNone, OpenToPets: true}
	} else if err != nil {
		return nil, err
	}

	req.applyTo(profile)
	if profile.Onboarded {
		if missing := MissingForMatching(profile); len(missing) > 0 {
			return nil, fmt.Errorf("%w: missing %s", domain.ErrIncompleteProfile, strings.Join(missing, ", "))
		}
	}

	if err := uc.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	uc.invalidateCandidates(ctx)

	return profile, nil
}

// CompleteOnboarding makes the caller visible to other users. The profile
// must carry every field the compatibility score reads.
func (uc *ProfileUseCase) CompleteOnboarding(ctx context.Context, uid string) (*domain.Profile, error) {
	profile, err := uc.profileRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if missing := MissingForMatching(profile); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", domain.ErrIncompleteProfile, strings.Join(missing, ", "))
	}

	if err := uc.profileRepo.UpdateOnboardingStatus(ctx, uid, true); err != nil {
		return nil, fmt.Errorf("failed to update onboarding status: %w", err)
	}
	profile.Onboarded = true
	uc.invalidateCandidates(ctx)

	return profile, nil
}

// DeleteProfile removes the caller from discovery entirely.
func (uc *ProfileUseCase) DeleteProfile(ctx context.Context, uid string) error {
	if err := uc.profileRepo.Delete(ctx, uid); err != nil {
		return err
	}
	uc.invalidateCandidates(ctx)
	return nil
}

func (uc *ProfileUseCase) invalidateCandidates(ctx context.Context) {
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.log.Warn("candidate cache invalidation failed", zap.Error(err))
	}
}

// MissingForMatching lists the JSON names of fields that must be filled
// in before a profile can be matched.
func MissingForMatching(p *domain.Profile) []string {
	var missing []string
	check := func(ok bool, name string) {
		if !ok {
			missing = append(missing, name)
		}
	}
	inScale := func(v int) bool { return v >= 1 && v <= 5 }

	check(p.FirstName != "", "firstName")
	check(p.SleepSchedule.Valid(), "sleepSchedule")
	check(inScale(p.Cleanliness), "cleanliness")
	check(inScale(p.SocialEnergy), "socialEnergy")
	check(p.GuestsFrequency.Valid(), "guestsFrequency")
	check(p.SubstanceEnv.Valid(), "substanceEnv")
	check(inScale(p.PrefCleanliness), "prefCleanliness")
	check(inScale(p.PrefSocialEnergy), "prefSocialEnergy")
	check(p.PrefGuestsFrequency.Valid(), "prefGuestsFrequency")
	check(p.PetAllergy.Valid(), "petAllergy")
	check(p.LeaseDuration.Valid(), "leaseDuration")
	return missing
}

func (req *SaveProfileRequest) applyTo(p *domain.Profile) {
	p.FirstName = strings.TrimSpace(req.FirstName)
	setPtr(&p.Age, req.Age)
	setValue(&p.Gender, req.Gender)
	setValue(&p.Program, req.Program)
	setValue(&p.Bio, req.Bio)
	setPtr(&p.PhotoURL, req.PhotoURL)
	if req.InstagramHandle != nil {
		handle := strings.TrimPrefix(strings.TrimSpace(*req.InstagramHandle), "@")
		p.InstagramHandle = &handle
	}

	setNonZero(&p.SleepSchedule, req.SleepSchedule)
	setNonZero(&p.Cleanliness, req.Cleanliness)
	setNonZero(&p.SocialEnergy, req.SocialEnergy)
	setNonZero(&p.GuestsFrequency, req.GuestsFrequency)
	setNonZero(&p.SubstanceEnv, req.SubstanceEnv)
	setNonZero(&p.NoiseTolerance, req.NoiseTolerance)
	setValue(&p.HasDog, req.HasDog)
	setValue(&p.HasCat, req.HasCat)

	setNonZero(&p.PrefCleanliness, req.PrefCleanliness)
	setNonZero(&p.PrefSocialEnergy, req.PrefSocialEnergy)
	setNonZero(&p.PrefGuestsFrequency, req.PrefGuestsFrequency)
	setNonZero(&p.PetAllergy, req.PetAllergy)
	setValue(&p.OpenToPets, req.OpenToPets)

	setNonZero(&p.LeaseDuration, req.LeaseDuration)
	setPtr(&p.MoveInDate, req.MoveInDate)
	setPtr(&p.BudgetMin, req.BudgetMin)
	setPtr(&p.BudgetMax, req.BudgetMax)
	if req.Hobbies != nil {
		p.Hobbies = normalizeHobbies(req.Hobbies)
	}
}

func setNonZero[T comparable](dst *T, v T) {
	var zero T
	if v != zero {
		*dst = v
	}
}

func setValue[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func setPtr[T any](dst **T, v *T) {
	if v != nil {
		*dst = v
	}
}

// normalizeHobbies trims, lower-cases and de-duplicates, keeping first-seen order.
func normalizeHobbies(hobbies []string) []string {
	if len(hobbies) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(hobbies))
	out := make([]string, 0, len(hobbies))
	for _, h := range hobbies {
		h = strings.ToLower(strings.TrimSpace(h))
		if h == "" {
			continue
		}
		if _, dup := seen[h]; dup {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, h)
	}
	return out
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
