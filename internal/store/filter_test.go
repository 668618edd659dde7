package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skilllet/skilllet/internal/models"
	"github.com/skilllet/skilllet/internal/seed"
)

func TestFilter_CategoryExact(t *testing.T) {
	skills := seed.Skills()

	tech := Filter(skills, "Tech", "")
	require.Len(t, tech, 2)
	for _, sk := range tech {
		assert.Equal(t, "Tech", sk.Category)
	}

	// Case-sensitive: "tech" is not a category.
	assert.Empty(t, Filter(skills, "tech", ""))
	assert.Empty(t, Filter(skills, "Gardening", ""))
}

func TestFilter_AllIsIdentity(t *testing.T) {
	skills := seed.Skills()

	assert.Equal(t, skills, Filter(skills, models.CategoryAll, ""))
	assert.Equal(t, skills, Filter(skills, "", ""))
}

func TestFilter_QueryCaseInsensitive(t *testing.T) {
	skills := seed.Skills()

	testCases := []struct {
		query string
		want  []int64
	}{
		{"excel", []int64{1}},
		{"EXCEL", []int64{1}},
		{"react", []int64{3}},
		{"basics", []int64{2, 5}},      // tag match on two skills
		{"composition", []int64{5}},    // description + tag
		{"rule of thirds", []int64{5}}, // description only
		{"zebra", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.query, func(t *testing.T) {
			got := Filter(skills, models.CategoryAll, tc.query)
			var ids []int64
			for _, sk := range got {
				ids = append(ids, sk.ID)
			}
			assert.Equal(t, tc.want, ids)
		})
	}
}

func TestFilter_CategoryAndQueryCompose(t *testing.T) {
	skills := seed.Skills()

	// "basics" matches skills 2 (Lifestyle) and 5 (Creative); the category
	// narrows it to one.
	got := Filter(skills, "Creative", "basics")
	require.Len(t, got, 1)
	assert.Equal(t, int64(5), got[0].ID)
}

func TestFilter_PreservesOrder(t *testing.T) {
	skills := seed.Skills()

	got := Filter(skills, models.CategoryAll, "e")
	prev := -1
	for _, sk := range got {
		idx := -1
		for i, src := range skills {
			if src.ID == sk.ID {
				idx = i
				break
			}
		}
		require.GreaterOrEqual(t, idx, 0)
		assert.Greater(t, idx, prev, "output order follows input order")
		prev = idx
	}
}

func TestSetCategory_RecomputesView(t *testing.T) {
	st := testStore(t)

	st.SetCategory("Health")
	view := st.FilteredSkills()
	require.Len(t, view, 1)
	assert.Equal(t, int64(4), view[0].ID)

	st.SetCategory(models.CategoryAll)
	assert.Len(t, st.FilteredSkills(), 5)
}

func TestSetSearchQuery_RecomputesView(t *testing.T) {
	st := testStore(t)

	st.SetSearchQuery("morning")
	view := st.FilteredSkills()
	require.Len(t, view, 1)
	assert.Equal(t, int64(4), view[0].ID)

	st.SetSearchQuery("")
	assert.Len(t, st.FilteredSkills(), 5)
}

func TestRefreshFilter_Idempotent(t *testing.T) {
	st := testStore(t)
	st.SetCategory("Tech")
	st.SetSearchQuery("react")

	before := st.FilteredSkills()
	st.RefreshFilter()
	st.RefreshFilter()
	assert.Equal(t, before, st.FilteredSkills())
}

func TestFilter_ResultIsSubset(t *testing.T) {
	skills := seed.Skills()
	byID := make(map[int64]bool, len(skills))
	for _, sk := range skills {
		byID[sk.ID] = true
	}

	for _, query := range []string{"", "a", "excel", "min", "zzz"} {
		for _, cat := range []string{"All", "Tech", "Nope"} {
			for _, sk := range Filter(skills, cat, query) {
				assert.True(t, byID[sk.ID], "filter invented skill %d", sk.ID)
			}
		}
	}
}
