package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery_TotalItemsMatchesFilterCount(t *testing.T) {
	all := FixtureCourses()

	specs := []FilterSpec{
		{},
		{Search: "python"},
		{Categories: []string{"development"}},
		{Levels: []string{"Intermediate"}},
		{Durations: []string{BucketMedium}},
		{Price: &PriceRange{Min: 50, Max: 70}},
		{Price: &PriceRange{Min: 0, Max: 0}},
		{Search: "data", Categories: []string{"data-science"}, Sort: SortRating},
	}

	for _, spec := range specs {
		page := Query(all, spec)

		want := int64(0)
		normalized := spec.Normalize()
		for _, course := range all {
			if Matches(course, normalized) {
				want++
			}
		}

		assert.Equal(t, want, page.Pagination.TotalItems,
			"totalItems for %+v", spec)
	}
}

func TestQuery_PagesPartitionFilteredSet(t *testing.T) {
	all := FixtureCourses()
	spec := FilterSpec{PageSize: 5, Sort: SortPriceLow}

	var collected []int64
	for p := 1; ; p++ {
		spec.Page = p
		page := Query(all, spec)
		if len(page.Courses) == 0 {
			break
		}
		for _, course := range page.Courses {
			collected = append(collected, course.ID)
		}
	}

	require.Len(t, collected, len(all))

	seen := make(map[int64]bool, len(collected))
	for _, id := range collected {
		assert.False(t, seen[id], "course %d appeared on two pages", id)
		seen[id] = true
	}
}

func TestQuery_OutOfRangePageIsEmptyNotClamped(t *testing.T) {
	page := Query(FixtureCourses(), FilterSpec{Page: 50, PageSize: 9})

	assert.Empty(t, page.Courses)
	assert.Equal(t, 50, page.Pagination.CurrentPage)
	assert.Equal(t, int64(12), page.Pagination.TotalItems)
}

func TestQuery_DefaultPageSizeIsNine(t *testing.T) {
	page := Query(FixtureCourses(), FilterSpec{})

	assert.Len(t, page.Courses, 9)
	assert.Equal(t, 2, page.Pagination.TotalPages)
}

func TestQuery_DevelopmentPriceLowScenario(t *testing.T) {
	page := Query(FixtureCourses(), FilterSpec{
		Categories: []string{"development"},
		Sort:       SortPriceLow,
		Page:       1,
		PageSize:   9,
	})

	require.Len(t, page.Courses, 3)
	assert.Equal(t, int64(3), page.Pagination.TotalItems)
	assert.Equal(t, 1, page.Pagination.TotalPages)

	assert.Equal(t, "web-development-fundamentals", page.Courses[0].Slug)
	assert.Equal(t, "mobile-app-development-react-native", page.Courses[1].Slug)
	assert.Equal(t, "advanced-react-development", page.Courses[2].Slug)
}

func TestQuery_SortStabilityOnEqualKeys(t *testing.T) {
	all := FixtureCourses()
	page := Query(all, FilterSpec{Sort: SortPriceLow, PageSize: 100})

	// Courses sharing a price must keep their dataset order.
	byPrice := make(map[float64][]int64)
	for _, course := range page.Courses {
		byPrice[course.Price] = append(byPrice[course.Price], course.ID)
	}
	for price, ids := range byPrice {
		assert.True(t, sort.SliceIsSorted(ids, func(i, j int) bool {
			return ids[i] < ids[j]
		}), "ties at price %.2f reordered: %v", price, ids)
	}
}

func TestQuery_UnknownSortLeavesOrderUntouched(t *testing.T) {
	all := FixtureCourses()
	page := Query(all, FilterSpec{Sort: SortKey("alphabetical"), PageSize: 100})

	require.Len(t, page.Courses, len(all))
	for i, course := range page.Courses {
		assert.Equal(t, all[i].ID, course.ID)
	}
}

func TestMatches_SearchCoversTitleDescriptionCategoryTags(t *testing.T) {
	all := FixtureCourses()

	count := func(search string) int {
		n := 0
		spec := FilterSpec{Search: search}.Normalize()
		for _, course := range all {
			if Matches(course, spec) {
				n++
			}
		}
		return n
	}

	assert.Equal(t, 1, count("aws"), "tag match")
	assert.Equal(t, 0, count("cobol"))
	assert.Positive(t, count("REACT"), "search is case-insensitive")
	assert.Equal(t, len(all), count(""), "empty search matches everything")
}

func TestMatches_FacetAcceptsNameOrSlug(t *testing.T) {
	all := FixtureCourses()

	for _, selected := range []string{"IT & Software", "it-software"} {
		n := 0
		spec := FilterSpec{Categories: []string{selected}}.Normalize()
		for _, course := range all {
			if Matches(course, spec) {
				n++
			}
		}
		assert.Equal(t, 1, n, "selected %q", selected)
	}
}

func TestMatches_PriceBoundsAreInclusive(t *testing.T) {
	all := FixtureCourses()
	spec := FilterSpec{Price: &PriceRange{Min: 49.99, Max: 49.99}}.Normalize()

	n := 0
	for _, course := range all {
		if Matches(course, spec) {
			n++
		}
	}
	assert.Equal(t, 4, n, "courses priced exactly 49.99")
}

func TestQuery_ExplicitZeroPriceRangeIsKept(t *testing.T) {
	courses := FixtureCourses()[:2]
	courses[0].Price = 0
	courses[1].Price = 49.99

	page := Query(courses, FilterSpec{Price: &PriceRange{Min: 0, Max: 0}})

	require.Equal(t, int64(1), page.Pagination.TotalItems,
		"a free-only selection must not widen to the default range")
	assert.Equal(t, float64(0), page.Courses[0].Price)
}

func TestDurationBucket_Boundaries(t *testing.T) {
	tests := []struct {
		duration string
		bucket   string
		ok       bool
	}{
		{"3 hours", BucketShort, true},
		{"5 hours", BucketShort, true},
		{"6 hours", BucketMedium, true},
		{"10 hours", BucketMedium, true},
		{"11 hours", BucketLong, true},
		{"18 hours", BucketLong, true},
		{"4.5 hours", BucketShort, true},
		{"5.5 hours", BucketShort, true},
		{"10.5 hours", BucketMedium, true},
		{"self-paced", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		bucket, ok := DurationBucket(tt.duration)
		assert.Equal(t, tt.ok, ok, "duration %q", tt.duration)
		assert.Equal(t, tt.bucket, bucket, "duration %q", tt.duration)
	}
}

func TestMatches_MalformedDurationFailsClosed(t *testing.T) {
	course := FixtureCourses()[0]
	course.Duration = "self-paced"

	spec := FilterSpec{Durations: []string{BucketShort, BucketMedium, BucketLong}}.Normalize()
	assert.False(t, Matches(course, spec))
}

func TestFacetCounts_RunAgainstFullDataset(t *testing.T) {
	counts := FacetCounts(FixtureCourses())

	wantCategories := map[string]int{
		"Development":          3,
		"Design":               2,
		"Business":             1,
		"Marketing":            2,
		"Data Science":         3,
		"IT & Software":        1,
		"Personal Development": 0,
	}
	require.Len(t, counts.Categories, len(wantCategories))
	for _, fc := range counts.Categories {
		assert.Equal(t, wantCategories[fc.Name], fc.Count, "category %s", fc.Name)
	}

	wantLevels := map[string]int{"Beginner": 4, "Intermediate": 6, "Advanced": 2}
	for _, fc := range counts.Levels {
		assert.Equal(t, wantLevels[fc.Name], fc.Count, "level %s", fc.Name)
	}

	wantDurations := map[string]int{"0-5": 0, "5-10": 3, "10+": 9}
	for _, fc := range counts.Durations {
		assert.Equal(t, wantDurations[fc.Value], fc.Count, "duration %s", fc.Value)
	}
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "it-software", slugify("IT & Software"))
	assert.Equal(t, "data-science", slugify("Data Science"))
	assert.Equal(t, "development", slugify("Development"))
}
