package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnhub/learnhub/internal/pkg/apperrors"
)

func TestHTTPSource_Courses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/courses", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"courses":[{"id":1,"title":"Go Basics","slug":"go-basics"},{"id":2,"title":"Advanced Go","slug":"advanced-go","isNew":true}]}}`))
	}))
	defer server.Close()

	source := NewHTTPSource(server.URL, time.Second, zerolog.Nop())

	courses, err := source.Courses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "go-basics", courses[0].Slug)
}

func TestHTTPSource_CourseByIDOrSlug(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/courses/go-basics":
			w.Write([]byte(`{"data":{"course":{"id":1,"title":"Go Basics","slug":"go-basics"}}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	source := NewHTTPSource(server.URL, time.Second, zerolog.Nop())

	course, err := source.CourseByIDOrSlug(context.Background(), "go-basics")
	require.NoError(t, err)
	assert.Equal(t, int64(1), course.ID)

	_, err = source.CourseByIDOrSlug(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestHTTPSource_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	source := NewHTTPSource(server.URL, time.Second, zerolog.Nop())

	_, err := source.Courses(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
}

func TestHTTPSource_NewlyAddedFiltersFullList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/courses", r.URL.Path)
		w.Write([]byte(`{"data":{"courses":[{"id":1,"slug":"a"},{"id":2,"slug":"b","isNew":true}]}}`))
	}))
	defer server.Close()

	source := NewHTTPSource(server.URL, time.Second, zerolog.Nop())

	courses, err := source.NewlyAdded(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, int64(2), courses[0].ID)
}

func TestStaticSource_FindByIDAndSlug(t *testing.T) {
	source := NewStaticSource()
	ctx := context.Background()

	byID, err := source.CourseByIDOrSlug(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "ux-ui-design-principles", byID.Slug)

	bySlug, err := source.CourseByIDOrSlug(ctx, "ux-ui-design-principles")
	require.NoError(t, err)
	assert.Equal(t, byID.ID, bySlug.ID)

	_, err = source.CourseByIDOrSlug(ctx, "99")
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}
