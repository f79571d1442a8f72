package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/gdugdh24/roommate-backend/internal/domain"
	"github.com/gdugdh24/roommate-backend/internal/repository"
)

const profileColumns = `
	id, first_name, age, gender, program, bio, photo_url, instagram_handle,
	sleep_schedule, cleanliness, social_energy, guests_frequency,
	substance_env, noise_tolerance, has_dog, has_cat,
	pref_cleanliness, pref_social_energy, pref_guests_frequency,
	pet_allergy, open_to_pets,
	lease_duration, move_in_date, budget_min, budget_max, hobbies,
	onboarded, created_at, updated_at`

// profileRow mirrors the profiles table; hobbies need pq's array type.
type profileRow struct {
	domain.Profile
	Hobbies pq.StringArray `db:"hobbies"`
}

func (r *profileRow) toDomain() *domain.Profile {
	p := r.Profile
	p.Hobbies = []string(r.Hobbies)
	return &p
}

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	var row profileRow
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	err := r.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *profileRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Profile, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []profileRow
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = ANY($1) AND first_name <> '' ORDER BY created_at`
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(ids)); err != nil {
		return nil, err
	}
	return toDomainProfiles(rows), nil
}

func (r *profileRepository) ListCandidates(ctx context.Context, excludeID string) ([]*domain.Profile, error) {
	var rows []profileRow
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE onboarded = true AND first_name <> '' AND id <> $1
		ORDER BY created_at, id
	`
	if err := r.db.SelectContext(ctx, &rows, query, excludeID); err != nil {
		return nil, err
	}
	return toDomainProfiles(rows), nil
}

func (r *profileRepository) Upsert(ctx context.Context, p *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			id, first_name, age, gender, program, bio, photo_url, instagram_handle,
			sleep_schedule, cleanliness, social_energy, guests_frequency,
			substance_env, noise_tolerance, has_dog, has_cat,
			pref_cleanliness, pref_social_energy, pref_guests_frequency,
			pet_allergy, open_to_pets,
			lease_duration, move_in_date, budget_min, budget_max, hobbies, onboarded
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)
		ON CONFLICT (id) DO UPDATE SET
			first_name = EXCLUDED.first_name, age = EXCLUDED.age, gender = EXCLUDED.gender,
			program = EXCLUDED.program, bio = EXCLUDED.bio, photo_url = EXCLUDED.photo_url,
			instagram_handle = EXCLUDED.instagram_handle,
			sleep_schedule = EXCLUDED.sleep_schedule, cleanliness = EXCLUDED.cleanliness,
			social_energy = EXCLUDED.social_energy, guests_frequency = EXCLUDED.guests_frequency,
			substance_env = EXCLUDED.substance_env, noise_tolerance = EXCLUDED.noise_tolerance,
			has_dog = EXCLUDED.has_dog, has_cat = EXCLUDED.has_cat,
			pref_cleanliness = EXCLUDED.pref_cleanliness, pref_social_energy = EXCLUDED.pref_social_energy,
			pref_guests_frequency = EXCLUDED.pref_guests_frequency,
			pet_allergy = EXCLUDED.pet_allergy, open_to_pets = EXCLUDED.open_to_pets,
			lease_duration = EXCLUDED.lease_duration, move_in_date = EXCLUDED.move_in_date,
			budget_min = EXCLUDED.budget_min, budget_max = EXCLUDED.budget_max,
			hobbies = EXCLUDED.hobbies,
			onboarded = profiles.onboarded OR EXCLUDED.onboarded,
			updated_at = CURRENT_TIMESTAMP
		RETURNING onboarded, created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		p.ID, p.FirstName, p.Age, p.Gender, p.Program, p.Bio, p.PhotoURL, p.InstagramHandle,
		p.SleepSchedule, p.Cleanliness, p.SocialEnergy, p.GuestsFrequency,
		p.SubstanceEnv, p.NoiseTolerance, p.HasDog, p.HasCat,
		p.PrefCleanliness, p.PrefSocialEnergy, p.PrefGuestsFrequency,
		p.PetAllergy, p.OpenToPets,
		p.LeaseDuration, p.MoveInDate, p.BudgetMin, p.BudgetMax, pq.Array(p.Hobbies), p.Onboarded,
	).Scan(&p.Onboarded, &p.CreatedAt, &p.UpdatedAt)
}

func (r *profileRepository) UpdateOnboardingStatus(ctx context.Context, id string, onboarded bool) error {
	query := `
		UPDATE profiles
		SET onboarded = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
	`
	result, err := r.db.ExecContext(ctx, query, onboarded, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *profileRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM profiles WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func toDomainProfiles(rows []profileRow) []*domain.Profile {
	profiles := make([]*domain.Profile, 0, len(rows))
	for i := range rows {
		profiles = append(profiles, rows[i].toDomain())
	}
	return profiles
}
