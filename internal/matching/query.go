package matching

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/gdugdh24/roommate-backend/internal/domain"
)

// Ages substituted for candidates without one, so they sort last.
const (
	missingAgeAscending  = 99
	missingAgeDescending = 0
)

type SortKey string

const (
	SortDefault SortKey = "default"
	SortMatch   SortKey = "match"
	SortName    SortKey = "name"
	SortAgeAsc  SortKey = "age-asc"
	SortAgeDesc SortKey = "age-desc"
	SortHobbies SortKey = "hobbies"
)

// ParseSortKey maps user input to a SortKey. Anything unknown is SortDefault.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(strings.TrimSpace(s)); k {
	case SortMatch, SortName, SortAgeAsc, SortAgeDesc, SortHobbies:
		return k
	default:
		return SortDefault
	}
}

// QuerySpec holds the parameters of one search. The zero value matches
// every candidate and keeps their order.
type QuerySpec struct {
	Text         string
	MinAge       *int
	MaxAge       *int
	Lease        domain.LeaseDuration
	Sort         SortKey
	IncludeScore bool
	// Locale drives name collation; the zero tag means root collation.
	Locale language.Tag
}

// NeedsScore reports whether Run will compute scores for this query.
func (q QuerySpec) NeedsScore() bool {
	return q.IncludeScore || q.Sort == SortMatch
}

// Result is one ordered entry. Score is nil when the query did not need it.
type Result struct {
	Profile *domain.Profile `json:"profile"`
	Score   *int            `json:"score,omitempty"`
}

// Run filters candidates, scores them against viewer when needed and
// sorts the survivors. The candidates slice is treated as a read-only
// snapshot.
func Run(candidates []*domain.Profile, viewer *domain.Profile, q QuerySpec) []Result {
	filtered := Filter(candidates, q)

	results := make([]Result, len(filtered))
	for i, p := range filtered {
		results[i] = Result{Profile: p}
		if q.NeedsScore() {
			s := Score(viewer, p)
			results[i].Score = &s
		}
	}

	Sort(results, viewer, q)
	return results
}

// Filter returns the candidates that pass every active filter, in their
// original order.
func Filter(candidates []*domain.Profile, q QuerySpec) []*domain.Profile {
	text := strings.ToLower(strings.TrimSpace(q.Text))

	out := make([]*domain.Profile, 0, len(candidates))
	for _, p := range candidates {
		if p == nil {
			continue
		}
		if text != "" && !strings.Contains(searchable(p), text) {
			continue
		}
		if q.MinAge != nil && (p.Age == nil || *p.Age < *q.MinAge) {
			continue
		}
		if q.MaxAge != nil && (p.Age == nil || *p.Age > *q.MaxAge) {
			continue
		}
		if q.Lease != "" && q.Lease != domain.LeaseAny && p.LeaseDuration != q.Lease {
			continue
		}
		out = append(out, p)
	}
	return out
}

func searchable(p *domain.Profile) string {
	return strings.ToLower(p.FirstName + " " + p.Program + " " + p.Bio)
}

// Sort orders results in place by q.Sort. The sort is stable, so ties
// keep the order they arrived in. Match sorting uses the scores already
// present and computes missing ones.
func Sort(results []Result, viewer *domain.Profile, q QuerySpec) {
	switch q.Sort {
	case SortMatch:
		scores := make(map[*domain.Profile]int, len(results))
		for _, r := range results {
			if r.Score != nil {
				scores[r.Profile] = *r.Score
			} else {
				scores[r.Profile] = Score(viewer, r.Profile)
			}
		}
		slices.SortStableFunc(results, func(x, y Result) int {
			return scores[y.Profile] - scores[x.Profile]
		})
	case SortName:
		// Collators keep internal buffers, so each call gets its own.
		c := collate.New(q.Locale)
		slices.SortStableFunc(results, func(x, y Result) int {
			return c.CompareString(x.Profile.FirstName, y.Profile.FirstName)
		})
	case SortAgeAsc:
		slices.SortStableFunc(results, func(x, y Result) int {
			return ageOr(x.Profile, missingAgeAscending) - ageOr(y.Profile, missingAgeAscending)
		})
	case SortAgeDesc:
		slices.SortStableFunc(results, func(x, y Result) int {
			return ageOr(y.Profile, missingAgeDescending) - ageOr(x.Profile, missingAgeDescending)
		})
	case SortHobbies:
		mine := hobbySet(viewer)
		shared := make(map[*domain.Profile]int, len(results))
		for _, r := range results {
			shared[r.Profile] = countShared(mine, r.Profile)
		}
		slices.SortStableFunc(results, func(x, y Result) int {
			return shared[y.Profile] - shared[x.Profile]
		})
	}
}

func ageOr(p *domain.Profile, fallback int) int {
	if p.Age == nil {
		return fallback
	}
	return *p.Age
}

// SharedHobbies counts the distinct hobbies both profiles list.
func SharedHobbies(viewer, candidate *domain.Profile) int {
	return countShared(hobbySet(viewer), candidate)
}

func hobbySet(p *domain.Profile) map[string]struct{} {
	set := make(map[string]struct{})
	if p == nil {
		return set
	}
	for _, h := range p.Hobbies {
		set[h] = struct{}{}
	}
	return set
}

func countShared(mine map[string]struct{}, p *domain.Profile) int {
	if p == nil || len(mine) == 0 {
		return 0
	}
	n := 0
	seen := make(map[string]struct{}, len(p.Hobbies))
	for _, h := range p.Hobbies {
		if _, dup := seen[h]; dup {
			continue
		}
		seen[h] = struct{}{}
		if _, ok := mine[h]; ok {
			n++
		}
	}
	return n
}
