package catalog

import (
	"context"
	"strconv"

	"github.com/learnhub/learnhub/internal/app/models"
	"github.com/learnhub/learnhub/internal/pkg/apperrors"
)

// Source supplies course data to the query engine. The engine never mutates
// what a source returns.
type Source interface {
	// Courses returns the full course collection.
	Courses(ctx context.Context) ([]models.Course, error)
	// CourseByIDOrSlug resolves a single course by numeric ID or URL slug.
	// Returns apperrors.ErrCourseNotFound when nothing matches.
	CourseByIDOrSlug(ctx context.Context, idOrSlug string) (models.Course, error)
	// Featured returns the featured subset.
	Featured(ctx context.Context) ([]models.Course, error)
	// NewlyAdded returns courses flagged as new.
	NewlyAdded(ctx context.Context) ([]models.Course, error)
}

// StaticSource serves the bundled fixture dataset. It backs the "static"
// build variant and tests.
type StaticSource struct {
	courses []models.Course
}

// NewStaticSource creates a source over the bundled dataset.
func NewStaticSource() *StaticSource {
	return &StaticSource{courses: FixtureCourses()}
}

// NewStaticSourceWith creates a source over a caller-provided dataset.
func NewStaticSourceWith(courses []models.Course) *StaticSource {
	return &StaticSource{courses: courses}
}

func (s *StaticSource) Courses(_ context.Context) ([]models.Course, error) {
	out := make([]models.Course, len(s.courses))
	copy(out, s.courses)
	return out, nil
}

func (s *StaticSource) CourseByIDOrSlug(_ context.Context, idOrSlug string) (models.Course, error) {
	return findCourse(s.courses, idOrSlug)
}

func (s *StaticSource) Featured(_ context.Context) ([]models.Course, error) {
	return filterCourses(s.courses, func(c models.Course) bool { return c.IsFeatured }), nil
}

func (s *StaticSource) NewlyAdded(_ context.Context) ([]models.Course, error) {
	return filterCourses(s.courses, func(c models.Course) bool { return c.IsNew }), nil
}

func findCourse(courses []models.Course, idOrSlug string) (models.Course, error) {
	id, idErr := strconv.ParseInt(idOrSlug, 10, 64)
	for _, course := range courses {
		if idErr == nil && course.ID == id {
			return course, nil
		}
		if course.Slug == idOrSlug {
			return course, nil
		}
	}
	return models.Course{}, apperrors.ErrCourseNotFound
}

func filterCourses(courses []models.Course, keep func(models.Course) bool) []models.Course {
	out := make([]models.Course, 0, len(courses))
	for _, course := range courses {
		if keep(course) {
			out = append(out, course)
		}
	}
	return out
}
