// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/learnhub/learnhub/internal/app/catalog"
	"github.com/learnhub/learnhub/internal/app/models/dto"
	"github.com/learnhub/learnhub/internal/app/services"
	"github.com/learnhub/learnhub/internal/middleware"
)

// CourseController handles catalog browsing and the guarded enroll action.
type CourseController struct {
	catalogService *services.CatalogService
	logger         zerolog.Logger
}

// NewCourseController creates a new CourseController
func NewCourseController(catalogService *services.CatalogService, logger zerolog.Logger) *CourseController {
	return &CourseController{
		catalogService: catalogService,
		logger:         logger,
	}
}

// ListCourses returns one page of the catalog, filtered and sorted by the
// query string, plus facet counts for the sidebar.
func (c *CourseController) ListCourses(ctx *gin.Context) {
	spec := catalog.ParseQuery(ctx.Request.URL.Query())

	page, facets, err := c.catalogService.ListCourses(ctx.Request.Context(), spec)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.CourseListResponse{
			Courses:    page.Courses,
			Count:      page.Pagination.TotalItems,
			Pagination: page.Pagination,
			Facets:     facets,
		},
	})
}

// GetFeaturedCourses returns the featured subset.
func (c *CourseController) GetFeaturedCourses(ctx *gin.Context) {
	courses, err := c.catalogService.FeaturedCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: gin.H{"courses": courses}})
}

// GetNewCourses returns recently added courses.
func (c *CourseController) GetNewCourses(ctx *gin.Context) {
	courses, err := c.catalogService.NewCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: gin.H{"courses": courses}})
}

// GetCourse resolves a course by numeric ID or slug.
func (c *CourseController) GetCourse(ctx *gin.Context) {
	idOrSlug := ctx.Param("idOrSlug")

	course, err := c.catalogService.GetCourse(ctx.Request.Context(), idOrSlug)
	if err != nil {
		c.logger.Debug().Str("idOrSlug", idOrSlug).Msg("Course lookup missed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.CourseResponse{Course: course}})
}

// Enroll records an enrollment for the authenticated user. The session
// guard runs before this handler, so the email is always present.
func (c *CourseController) Enroll(ctx *gin.Context) {
	email := ctx.GetString(middleware.ContextEmailKey)
	idOrSlug := ctx.Param("idOrSlug")

	course, already, err := c.catalogService.Enroll(ctx.Request.Context(), idOrSlug, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := "Enrolled in " + course.Title
	if already {
		message = "Already enrolled in " + course.Title
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.EnrollResponse{CourseID: course.ID, Message: message},
	})
}
