package limiter

import (
	"context"
	"math"
	"net/http"
	"testing"
	"time"

	"github.com/m-zajac/agentsmd/internal/app"
	"github.com/m-zajac/agentsmd/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitedHTTPDoerRate(t *testing.T) {
	maxRate := 500.0
	testTime := 200 * time.Millisecond

	doer := &mock.HTTPDoer{}
	limitedDoer := NewHTTPDoer(doer, maxRate, 1)

	req, _ := http.NewRequest(http.MethodGet, "fakeurl", nil)
	startTime := time.Now()
	var dos int
	for startTime.Add(testTime).After(time.Now()) {
		if _, err := limitedDoer.Do(req); err != nil {
			t.Fatalf("Do() returned error: %v", err)
		}
		dos++
	}

	expectedDos := float64(maxRate) * float64(testTime) / float64(time.Second)
	diff := math.Abs(float64(dos)-expectedDos) / expectedDos
	if diff > 0.1 {
		t.Errorf("unexpected number of Dos: %d, want %d", dos, int(expectedDos))
	}
	assert.Equal(t, dos, doer.Calls())
}

func TestLimitedHTTPDoerTimeout(t *testing.T) {
	doer := &mock.HTTPDoer{}
	limitedDoer := NewHTTPDoer(doer, 1, 1)

	req, _ := http.NewRequest(http.MethodGet, "fakeurl", nil)
	ctx, cancel := context.WithTimeout(req.Context(), 10*time.Millisecond)
	defer cancel()
	req = req.WithContext(ctx)

	_, err := limitedDoer.Do(req)
	require.NoError(t, err, "first Do() within burst")

	// Error is expected because of short ctx timeout and low rate limit.
	_, err = limitedDoer.Do(req)
	require.Error(t, err)
	assert.True(t, app.IsTooManyRequestsError(err))
	assert.Equal(t, 1, doer.Calls())
}

func TestLimitedHTTPDoerUnlimited(t *testing.T) {
	doer := &mock.HTTPDoer{}
	limitedDoer := NewHTTPDoer(doer, 0, 0)

	req, _ := http.NewRequest(http.MethodGet, "fakeurl", nil)
	for i := 0; i < 100; i++ {
		_, err := limitedDoer.Do(req)
		require.NoError(t, err)
	}
	assert.Equal(t, 100, doer.Calls())
}
