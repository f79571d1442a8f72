package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gdugdh24/roommate-backend/internal/domain"
)

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortMatch, ParseSortKey("match"))
	assert.Equal(t, SortAgeDesc, ParseSortKey(" age-desc "))
	assert.Equal(t, SortHobbies, ParseSortKey("hobbies"))
	assert.Equal(t, SortDefault, ParseSortKey(""))
	assert.Equal(t, SortDefault, ParseSortKey("distance"))
}

func TestFilter_EmptyQueryKeepsEverything(t *testing.T) {
	all := candidates()
	got := Filter(all, QuerySpec{Text: "   ", Lease: domain.LeaseAny})
	assert.Equal(t, all, got)
}

func TestFilter_TextIsCaseInsensitiveSubstring(t *testing.T) {
	got := Run(candidates(), priya(), QuerySpec{Text: "  CAT "})
	assert.Equal(t, []string{"margret", "zara"}, ids(got))

	got = Run(candidates(), priya(), QuerySpec{Text: "finance"})
	assert.Equal(t, []string{"liam"}, ids(got))
}

func TestFilter_TextSpansNameProgramAndBio(t *testing.T) {
	got := Run(candidates(), priya(), QuerySpec{Text: "jordan co-op"})
	assert.Equal(t, []string{"jordan"}, ids(got))

	// hobbies are not part of the searchable text
	got = Run(candidates(), priya(), QuerySpec{Text: "hiking"})
	assert.Equal(t, []string{"alex"}, ids(got))
}

func TestFilter_AgeRangeIsInclusive(t *testing.T) {
	got := Run(candidates(), priya(), QuerySpec{MinAge: intPtr(22), MaxAge: intPtr(24)})
	assert.Equal(t, []string{"margret", "jordan", "sophie"}, ids(got))
}

func TestFilter_MissingAgeFailsAnySetBound(t *testing.T) {
	got := ids(Run(candidates(), priya(), QuerySpec{MinAge: intPtr(0)}))
	assert.NotContains(t, got, "sam")
	assert.Len(t, got, 7)

	got = ids(Run(candidates(), priya(), QuerySpec{MaxAge: intPtr(200)}))
	assert.NotContains(t, got, "sam")

	got = ids(Run(candidates(), priya(), QuerySpec{}))
	assert.Contains(t, got, "sam")
}

func TestFilter_Lease(t *testing.T) {
	got := Run(candidates(), priya(), QuerySpec{Lease: domain.Lease4Months})
	assert.Equal(t, []string{"jordan", "sophie"}, ids(got))

	got = Run(candidates(), priya(), QuerySpec{Lease: domain.LeaseAny})
	assert.Len(t, got, 8)

	got = Run(candidates(), priya(), QuerySpec{Lease: "4-Months"})
	assert.Empty(t, got)
}

func TestFilter_CombinedFilters(t *testing.T) {
	got := Run(candidates(), priya(), QuerySpec{MinAge: intPtr(21), Lease: domain.Lease12Plus})
	assert.Equal(t, []string{"margret", "liam", "zara"}, ids(got))
}

func TestFilter_SkipsNilCandidates(t *testing.T) {
	list := append([]*domain.Profile{nil}, candidates()...)
	assert.Len(t, Filter(list, QuerySpec{}), 8)
}

func TestRun_DefaultSortKeepsOrder(t *testing.T) {
	got := Run(candidates(), priya(), QuerySpec{Sort: SortDefault, MaxAge: intPtr(22)})
	assert.Equal(t, []string{"alex", "jordan", "mike", "sophie", "zara"}, ids(got))
}

func TestRun_SortByMatch(t *testing.T) {
	got := Run(candidates(), priya(), QuerySpec{Sort: SortMatch})
	assert.Equal(t, []string{"liam", "alex", "sam", "margret", "jordan", "sophie", "zara", "mike"}, ids(got))

	for _, r := range got {
		require.NotNil(t, r.Score, r.Profile.ID)
	}
	assert.Equal(t, 70, *got[0].Score)
	assert.Equal(t, 0, *got[len(got)-1].Score)
}

func TestRun_SortByName(t *testing.T) {
	got := Run(candidates(), priya(), QuerySpec{Sort: SortName})
	assert.Equal(t, []string{"alex", "jordan", "liam", "margret", "mike", "sam", "sophie", "zara"}, ids(got))
}

func TestRun_SortByNameUsesCollation(t *testing.T) {
	list := []*domain.Profile{
		profile("1", "Zoe", nil, nil),
		profile("2", "émile", nil, nil),
		profile("3", "adam", nil, nil),
		profile("4", "Bob", nil, nil),
	}
	got := Run(list, priya(), QuerySpec{Sort: SortName})
	assert.Equal(t, []string{"3", "4", "2", "1"}, ids(got))
}

func TestRun_SortByAge(t *testing.T) {
	got := Run(candidates(), priya(), QuerySpec{Sort: SortAgeAsc})
	assert.Equal(t, []string{"mike", "alex", "zara", "jordan", "sophie", "margret", "liam", "sam"}, ids(got))

	got = Run(candidates(), priya(), QuerySpec{Sort: SortAgeDesc})
	assert.Equal(t, []string{"liam", "margret", "jordan", "sophie", "alex", "zara", "mike", "sam"}, ids(got))
}

func TestRun_SortBySharedHobbies(t *testing.T) {
	got := Run(candidates(), priya(), QuerySpec{Sort: SortHobbies})
	assert.Equal(t, []string{"alex", "sophie", "jordan", "sam", "margret", "mike", "liam", "zara"}, ids(got))
}

func TestRun_SortByHobbiesWithoutViewerHobbiesKeepsOrder(t *testing.T) {
	viewer := priya()
	viewer.Hobbies = nil
	got := Run(candidates(), viewer, QuerySpec{Sort: SortHobbies})
	assert.Equal(t, ids(Run(candidates(), viewer, QuerySpec{})), ids(got))
}

func TestRun_ScoresOnlyWhenNeeded(t *testing.T) {
	for _, r := range Run(candidates(), priya(), QuerySpec{Sort: SortName}) {
		assert.Nil(t, r.Score, r.Profile.ID)
	}

	got := Run(candidates(), priya(), QuerySpec{Sort: SortName, IncludeScore: true})
	for _, r := range got {
		require.NotNil(t, r.Score, r.Profile.ID)
		assert.Equal(t, Score(priya(), r.Profile), *r.Score)
	}
}

func TestRun_IsIdempotent(t *testing.T) {
	q := QuerySpec{Text: "i", MinAge: intPtr(20), Sort: SortMatch, IncludeScore: true}
	list := candidates()
	first := Run(list, priya(), q)
	second := Run(list, priya(), q)
	assert.Equal(t, first, second)
}

func TestRun_DoesNotMutateInput(t *testing.T) {
	list := candidates()
	before := make([]string, len(list))
	for i, p := range list {
		before[i] = p.ID
	}

	Run(list, priya(), QuerySpec{Sort: SortName})
	Run(list, priya(), QuerySpec{Sort: SortMatch})

	after := make([]string, len(list))
	for i, p := range list {
		after[i] = p.ID
	}
	assert.Equal(t, before, after)
	assert.Equal(t, candidates(), list)
}

func TestSharedHobbies(t *testing.T) {
	viewer := priya()
	dup := profile("d", "D", nil, func(p *domain.Profile) {
		p.Hobbies = []string{"chess", "chess", "hiking", "golf"}
	})
	assert.Equal(t, 2, SharedHobbies(viewer, dup))
	assert.Equal(t, 0, SharedHobbies(nil, dup))
	assert.Equal(t, 0, SharedHobbies(viewer, profile("e", "E", nil, nil)))
}
