package dto

import "github.com/learnhub/learnhub/internal/app/models"

// FacetCount is a facet entry with its course count.
type FacetCount struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug,omitempty"`
	Value string `json:"value,omitempty"`
	Count int    `json:"count"`
}

// FacetCounts groups the filter-sidebar counts. Counts are computed against
// the full dataset, not the filtered subset.
type FacetCounts struct {
	Categories []FacetCount `json:"categories"`
	Levels     []FacetCount `json:"levels"`
	Durations  []FacetCount `json:"durations"`
}

// CourseListResponse is the payload of GET /courses.
type CourseListResponse struct {
	Courses    []models.Course `json:"courses"`
	Count      int64           `json:"count"`
	Pagination PaginationInfo  `json:"pagination"`
	Facets     FacetCounts     `json:"facets"`
}

// CourseResponse is the payload of GET /courses/:idOrSlug.
type CourseResponse struct {
	Course models.Course `json:"course"`
}

// EnrollResponse acknowledges a guarded enroll action.
type EnrollResponse struct {
	CourseID int64  `json:"courseId"`
	Message  string `json:"message"`
}
