package http

import (
	"bytes"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// NewPageHandler creates handlerfunc returning rendered landing page.
// Cache-Control lets shared caches serve the page for the revalidation period.
func NewPageHandler(service Service, renderer Renderer, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contributors, err := service.Load(r.Context())
		if err != nil {
			l.Errorf("loading contributors: %v", err)
			http.Error(w, "", http.StatusInternalServerError)
			return
		}

		var buf bytes.Buffer
		if err := renderer.Render(&buf, contributors); err != nil {
			l.Errorf("rendering page: %v", err)
			http.Error(w, "", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", contributors.CacheControl())
		_, _ = buf.WriteTo(w)
	}
}

// NewContributorsHandler creates handlerfunc returning contributors data as json.
func NewContributorsHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contributors, err := service.Load(r.Context())
		if err != nil {
			l.Errorf("loading contributors: %v", err)
			http.Error(w, "", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", contributors.CacheControl())
		if err := json.NewEncoder(w).Encode(contributors.Document()); err != nil {
			l.Errorf("encoding response: %v", err)
		}
	}
}

// NewHealthHandler creates handlerfunc for liveness checks.
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	}
}
