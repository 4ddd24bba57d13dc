package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/m-zajac/agentsmd/internal/app"
	"github.com/sirupsen/logrus"
)

// Service can return contributors data.
//go:generate mockgen -destination mock/service.go -package mock github.com/m-zajac/agentsmd/internal/api/http Service,Renderer
type Service interface {
	Load(ctx context.Context) (app.ContributorsPage, error)
}

// Renderer can render landing page.
type Renderer interface {
	Render(w io.Writer, contributors app.ContributorsPage) error
}

// NewMux creates router for app's http server
func NewMux(service Service, renderer Renderer, timeout time.Duration, l logrus.FieldLogger) http.Handler {
	timeoutMiddleware := NewTimeoutMiddleware(timeout)

	m := http.NewServeMux()
	m.HandleFunc("GET /{$}", timeoutMiddleware(NewPageHandler(service, renderer, l)))
	m.HandleFunc("GET /api/contributors", timeoutMiddleware(NewContributorsHandler(service, l)))
	m.HandleFunc("GET /healthz", NewHealthHandler())

	return NewLoggingMiddleware(l)(m)
}
