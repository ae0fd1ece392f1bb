package services

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/learnhub/learnhub/internal/app/catalog"
	"github.com/learnhub/learnhub/internal/app/models"
	"github.com/learnhub/learnhub/internal/app/models/dto"
)

// CatalogService answers course queries by running the filter engine over
// whatever Source the deployment is configured with. Facet counts are
// always computed against the full dataset, not the filtered subset, so the
// sidebar shows how many courses each choice would reveal.
type CatalogService struct {
	source catalog.Source
	logger zerolog.Logger

	mu          sync.Mutex
	enrollments map[string]map[int64]bool
}

// NewCatalogService creates a CatalogService over the given source.
func NewCatalogService(source catalog.Source, logger zerolog.Logger) *CatalogService {
	return &CatalogService{
		source:      source,
		logger:      logger,
		enrollments: make(map[string]map[int64]bool),
	}
}

// ListCourses applies the filter spec and returns one page plus the facet
// counts for the whole collection.
func (s *CatalogService) ListCourses(ctx context.Context, spec catalog.FilterSpec) (catalog.ResultPage, dto.FacetCounts, error) {
	all, err := s.source.Courses(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load course collection")
		return catalog.ResultPage{}, dto.FacetCounts{}, err
	}

	page := catalog.Query(all, spec)
	return page, catalog.FacetCounts(all), nil
}

// GetCourse resolves a course by numeric ID or slug.
func (s *CatalogService) GetCourse(ctx context.Context, idOrSlug string) (models.Course, error) {
	return s.source.CourseByIDOrSlug(ctx, idOrSlug)
}

// FeaturedCourses returns the featured subset in source order.
func (s *CatalogService) FeaturedCourses(ctx context.Context) ([]models.Course, error) {
	return s.source.Featured(ctx)
}

// NewCourses returns recently added courses in source order.
func (s *CatalogService) NewCourses(ctx context.Context) ([]models.Course, error) {
	return s.source.NewlyAdded(ctx)
}

// Enroll records an enrollment for the authenticated user. Enrolling twice
// in the same course is reported, not an error.
func (s *CatalogService) Enroll(ctx context.Context, idOrSlug, email string) (models.Course, bool, error) {
	course, err := s.source.CourseByIDOrSlug(ctx, idOrSlug)
	if err != nil {
		return models.Course{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	byUser, ok := s.enrollments[email]
	if !ok {
		byUser = make(map[int64]bool)
		s.enrollments[email] = byUser
	}

	if byUser[course.ID] {
		return course, true, nil
	}
	byUser[course.ID] = true

	s.logger.Info().
		Str("email", email).
		Int64("courseId", course.ID).
		Str("slug", course.Slug).
		Msg("Enrollment recorded")
	return course, false, nil
}
