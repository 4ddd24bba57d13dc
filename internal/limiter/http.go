package limiter

import (
	"fmt"
	"net/http"

	"github.com/m-zajac/agentsmd/internal/app"
	"golang.org/x/time/rate"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// limitedHTTPDoer wraps HTTPDoer and allows Dos with maximum rate limit.
type limitedHTTPDoer struct {
	doer    HTTPDoer
	limiter *rate.Limiter
}

// NewHTTPDoer creates rate limited HTTPDoer.
// maxRate - maximum number of Dos per second, non-positive value disables limiting.
// burst - number of Dos allowed at once, at least 1.
func NewHTTPDoer(doer HTTPDoer, maxRate float64, burst int) HTTPDoer {
	limit := rate.Limit(maxRate)
	if maxRate <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}

	return &limitedHTTPDoer{
		doer:    doer,
		limiter: rate.NewLimiter(limit, burst),
	}
}

// Do executes http request. If limit is exceeded, blocks until call rate is within limit
// or request's context is done.
func (d *limitedHTTPDoer) Do(r *http.Request) (*http.Response, error) {
	if err := d.limiter.Wait(r.Context()); err != nil {
		return nil, app.TooManyRequestsError(fmt.Sprintf("waiting for github api limiter: %v", err))
	}

	return d.doer.Do(r)
}
