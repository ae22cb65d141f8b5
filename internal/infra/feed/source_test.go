package feed

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testEndpoint = "https://feed.example.com/api/new-sets"

func newTestSource() *Source {
	cfg := ClientConfig{
		Name:    "crux-chain",
		BaseURL: "https://feed.example.com",
		Timeout: 5 * time.Second,
		Retry: RetryConfig{
			MaxAttempts: 3,
			WaitTime:    10 * time.Millisecond,
			MaxWaitTime: 50 * time.Millisecond,
		},
		CB: CBConfig{
			MaxRequests:  5,
			Interval:     60 * time.Second,
			Timeout:      15 * time.Second,
			FailureRatio: 0.6,
		},
	}
	src := New(cfg, zap.NewNop())

	httpmock.ActivateNonDefault(src.client.GetClient())

	return src
}

func TestSource_Fetch_Success(t *testing.T) {
	src := newTestSource()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodGet, testEndpoint,
		httpmock.NewJsonResponderOrPanic(http.StatusOK, Response{
			Posts: []Post{
				{Gym: "Boulder Base", StartDate: "2024-03-01", EndDate: "2024-03-03", URL: "https://example.com/post/1"},
				{Gym: "Crux Hall", StartDate: "2024-03-05", EndDate: "2024-03-05", URL: "https://example.com/post/2"},
			},
		}),
	)

	schedules, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, schedules, 2)

	assert.Equal(t, "Boulder Base", schedules[0].GymName)
	assert.Equal(t, "https://example.com/post/1", schedules[0].PostURL)
	assert.True(t, schedules[0].EndDate.After(schedules[0].StartDate))
}

func TestSource_Fetch_SkipsMalformedPosts(t *testing.T) {
	src := newTestSource()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodGet, testEndpoint,
		httpmock.NewJsonResponderOrPanic(http.StatusOK, Response{
			Posts: []Post{
				{Gym: "Boulder Base", StartDate: "2024-03-01", EndDate: "2024-03-03"},
				{Gym: "Bad Dates", StartDate: "March 1st", EndDate: "2024-03-03"},
				{Gym: "Inverted", StartDate: "2024-03-05", EndDate: "2024-03-01"},
			},
		}),
	)

	schedules, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, schedules, 1)
	assert.Equal(t, "Boulder Base", schedules[0].GymName)
}

func TestSource_Fetch_ServerError(t *testing.T) {
	src := newTestSource()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodGet, testEndpoint,
		httpmock.NewStringResponder(http.StatusInternalServerError, "boom"),
	)

	_, err := src.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "crux-chain")
}

func TestSource_HealthCheck(t *testing.T) {
	src := newTestSource()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodGet, "https://feed.example.com/health",
		httpmock.NewStringResponder(http.StatusOK, `{"status":"healthy"}`),
	)

	assert.NoError(t, src.HealthCheck(context.Background()))
}
