package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/learnhub/learnhub/internal/app/models"
	"github.com/learnhub/learnhub/internal/pkg/apperrors"
)

// HTTPSource fetches courses from the remote course API. It backs the "api"
// build variant. Responses use the standard envelope; non-2xx statuses map
// to application errors without leaking upstream detail.
type HTTPSource struct {
	baseURL string
	client  *http.Client
	logger  zerolog.Logger
}

// NewHTTPSource creates a source over the remote course API.
func NewHTTPSource(baseURL string, timeout time.Duration, logger zerolog.Logger) *HTTPSource {
	return &HTTPSource{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type courseListEnvelope struct {
	Data struct {
		Courses []models.Course `json:"courses"`
	} `json:"data"`
}

type courseEnvelope struct {
	Data struct {
		Course models.Course `json:"course"`
	} `json:"data"`
}

func (s *HTTPSource) Courses(ctx context.Context) ([]models.Course, error) {
	return s.fetchList(ctx, "/courses")
}

func (s *HTTPSource) CourseByIDOrSlug(ctx context.Context, idOrSlug string) (models.Course, error) {
	endpoint := "/courses/" + url.PathEscape(idOrSlug)

	resp, err := s.get(ctx, endpoint)
	if err != nil {
		return models.Course{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return models.Course{}, apperrors.ErrCourseNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.logger.Warn().Int("status", resp.StatusCode).Str("endpoint", endpoint).Msg("Course API returned error status")
		return models.Course{}, apperrors.ErrUpstreamUnavailable
	}

	var envelope courseEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return models.Course{}, apperrors.NewUpstreamError(err, "failed to decode course response")
	}
	return envelope.Data.Course, nil
}

func (s *HTTPSource) Featured(ctx context.Context) ([]models.Course, error) {
	return s.fetchList(ctx, "/courses/featured")
}

func (s *HTTPSource) NewlyAdded(ctx context.Context) ([]models.Course, error) {
	courses, err := s.Courses(ctx)
	if err != nil {
		return nil, err
	}
	return filterCourses(courses, func(c models.Course) bool { return c.IsNew }), nil
}

func (s *HTTPSource) fetchList(ctx context.Context, endpoint string) ([]models.Course, error) {
	resp, err := s.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.logger.Warn().Int("status", resp.StatusCode).Str("endpoint", endpoint).Msg("Course API returned error status")
		return nil, apperrors.ErrUpstreamUnavailable
	}

	var envelope courseListEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, apperrors.NewUpstreamError(err, "failed to decode course list response")
	}
	return envelope.Data.Courses, nil
}

func (s *HTTPSource) get(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build course API request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error().Err(err).Str("endpoint", endpoint).Msg("Course API request failed")
		return nil, apperrors.ErrUpstreamUnavailable
	}
	return resp, nil
}
