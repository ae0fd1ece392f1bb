package catalog

import (
	"strings"

	"github.com/learnhub/learnhub/internal/app/models"
	"github.com/learnhub/learnhub/internal/app/models/dto"
)

// FacetCounts computes the filter-sidebar counts for every category, level
// and duration bucket. Counts run against the full dataset, not the
// currently filtered subset: the sidebar shows how many courses exist in a
// facet overall, regardless of other active filters.
func FacetCounts(allCourses []models.Course) dto.FacetCounts {
	counts := dto.FacetCounts{
		Categories: make([]dto.FacetCount, 0, len(models.Categories)),
		Levels:     make([]dto.FacetCount, 0, len(models.Levels)),
		Durations:  make([]dto.FacetCount, 0, len(models.Durations)),
	}

	for _, category := range models.Categories {
		n := 0
		for _, course := range allCourses {
			if strings.EqualFold(course.Category, category.Name) {
				n++
			}
		}
		counts.Categories = append(counts.Categories, dto.FacetCount{
			ID:    category.ID,
			Name:  category.Name,
			Slug:  category.Slug,
			Count: n,
		})
	}

	for _, level := range models.Levels {
		n := 0
		for _, course := range allCourses {
			if strings.EqualFold(string(course.Level), string(level.Name)) {
				n++
			}
		}
		counts.Levels = append(counts.Levels, dto.FacetCount{
			ID:    level.ID,
			Name:  string(level.Name),
			Slug:  level.Slug,
			Count: n,
		})
	}

	for _, duration := range models.Durations {
		n := 0
		for _, course := range allCourses {
			if bucket, ok := DurationBucket(course.Duration); ok && bucket == duration.Value {
				n++
			}
		}
		counts.Durations = append(counts.Durations, dto.FacetCount{
			ID:    duration.ID,
			Name:  duration.Name,
			Value: duration.Value,
			Count: n,
		})
	}

	return counts
}
