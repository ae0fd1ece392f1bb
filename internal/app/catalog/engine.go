// Package catalog implements the course catalog query engine: a pure
// function from (course collection, filter spec) to one page of results plus
// pagination metadata and facet counts. It performs no I/O; course data comes
// from a Source.
package catalog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/learnhub/learnhub/internal/app/models"
	"github.com/learnhub/learnhub/internal/app/models/dto"
	"github.com/learnhub/learnhub/internal/pkg/helpers"
)

// ResultPage is one page of a catalog query.
type ResultPage struct {
	Courses    []models.Course
	Pagination dto.PaginationInfo
}

// Query runs the filter pipeline over allCourses and returns the requested
// page. Stages apply in a fixed order: search, category, level, duration
// bucket, price range, sort, paginate. Each stage feeds the next, so the
// price filter and sort see the already-narrowed set.
func Query(allCourses []models.Course, spec FilterSpec) ResultPage {
	spec = spec.Normalize()

	filtered := make([]models.Course, 0, len(allCourses))
	for _, course := range allCourses {
		if Matches(course, spec) {
			filtered = append(filtered, course)
		}
	}

	sortCourses(filtered, spec.Sort)

	total := len(filtered)
	start, end := helpers.CalculateSliceIndices(spec.Page, spec.PageSize, total)

	return ResultPage{
		Courses:    filtered[start:end],
		Pagination: helpers.NewPaginationInfo(int64(total), spec.Page, spec.PageSize),
	}
}

// Matches reports whether a single course passes every filter stage of the
// spec. Sort and pagination are not consulted.
func Matches(course models.Course, spec FilterSpec) bool {
	return matchesSearch(course, spec.Search) &&
		matchesFacet(course.Category, spec.Categories) &&
		matchesFacet(string(course.Level), spec.Levels) &&
		matchesDuration(course, spec.Durations) &&
		matchesPrice(course, spec.Price)
}

// matchesSearch performs a case-insensitive substring match against title,
// description, category and tags. Empty search text matches everything.
func matchesSearch(course models.Course, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)

	if strings.Contains(strings.ToLower(course.Title), needle) ||
		strings.Contains(strings.ToLower(course.Description), needle) ||
		strings.Contains(strings.ToLower(course.Category), needle) {
		return true
	}
	for _, tag := range course.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// matchesFacet checks case-insensitive membership of a course attribute in a
// selected set. The set entries may be display names or URL slugs. An empty
// set passes everything through.
func matchesFacet(value string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	lower := strings.ToLower(value)
	slug := slugify(value)
	for _, sel := range selected {
		sel = strings.ToLower(sel)
		if sel == lower || sel == slug {
			return true
		}
	}
	return false
}

func matchesDuration(course models.Course, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	bucket, ok := DurationBucket(course.Duration)
	if !ok {
		// A malformed duration string matches no bucket.
		return false
	}
	for _, sel := range selected {
		if sel == bucket {
			return true
		}
	}
	return false
}

func matchesPrice(course models.Course, price *PriceRange) bool {
	if price == nil {
		return true
	}
	return course.Price >= price.Min && course.Price <= price.Max
}

// DurationBucket maps a course duration string ("12 hours") to its filter
// bucket: 0-5 for up to five hours, 5-10 above five up to ten, 10+ beyond.
// Fractional durations like "4.5 hours" bucket by their whole-hour part.
// It fails closed on strings it cannot parse.
func DurationBucket(duration string) (string, bool) {
	fields := strings.Fields(duration)
	if len(fields) == 0 {
		return "", false
	}
	digits := fields[0]
	if i := strings.IndexByte(digits, '.'); i >= 0 {
		digits = digits[:i]
	}
	hours, err := strconv.Atoi(digits)
	if err != nil || hours < 0 {
		return "", false
	}

	switch {
	case hours <= 5:
		return BucketShort, true
	case hours <= 10:
		return BucketMedium, true
	default:
		return BucketLong, true
	}
}

// sortCourses orders the slice by the chosen key. The sort is stable: equal
// keys keep their prior relative order. An unknown key leaves the order
// untouched.
func sortCourses(courses []models.Course, key SortKey) {
	switch key {
	case SortPopular:
		sort.SliceStable(courses, func(i, j int) bool {
			return courses[i].Students > courses[j].Students
		})
	case SortNewest:
		sort.SliceStable(courses, func(i, j int) bool {
			return courses[i].UpdatedAt.After(courses[j].UpdatedAt)
		})
	case SortPriceLow:
		sort.SliceStable(courses, func(i, j int) bool {
			return courses[i].Price < courses[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(courses, func(i, j int) bool {
			return courses[i].Price > courses[j].Price
		})
	case SortRating:
		sort.SliceStable(courses, func(i, j int) bool {
			return courses[i].Rating > courses[j].Rating
		})
	}
}

// slugify converts a facet display name to its URL token, e.g.
// "IT & Software" -> "it-software".
func slugify(name string) string {
	fields := strings.Fields(strings.ReplaceAll(strings.ToLower(name), "&", " "))
	return strings.Join(fields, "-")
}
