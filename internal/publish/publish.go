// Package publish renders the static site and writes it to publishing targets.
package publish

import (
	"bytes"
	"context"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/agentsmd/internal/app"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// PageName is the object name of rendered landing page.
	PageName = "index.html"
	// DataName is the object name of contributors json document.
	DataName = "contributors.json"
)

// Object is a single file of the static build.
type Object struct {
	Name         string
	ContentType  string
	CacheControl string
	Body         []byte
}

// Publisher writes objects to a target.
type Publisher interface {
	Publish(ctx context.Context, obj Object) error
}

// Loader can return contributors data.
type Loader interface {
	Load(ctx context.Context) (app.ContributorsPage, error)
}

// Renderer can render landing page.
type Renderer interface {
	Render(w io.Writer, contributors app.ContributorsPage) error
}

// Build loads contributors data, renders the landing page and hands both objects to every publisher.
// Publishing stops at first failure.
func Build(
	ctx context.Context,
	loader Loader,
	renderer Renderer,
	l logrus.FieldLogger,
	publishers ...Publisher,
) (app.ContributorsPage, error) {
	page, err := loader.Load(ctx)
	if err != nil {
		return app.ContributorsPage{}, fmt.Errorf("loading contributors: %w", err)
	}

	objects, err := NewObjects(page, renderer)
	if err != nil {
		return page, err
	}

	for _, p := range publishers {
		for _, obj := range objects {
			if err := p.Publish(ctx, obj); err != nil {
				return page, fmt.Errorf("publishing %s: %w", obj.Name, err)
			}
			l.WithField("size", len(obj.Body)).Infof("published %s", obj.Name)
		}
	}

	return page, nil
}

// NewObjects renders page and json document of contributors data.
func NewObjects(page app.ContributorsPage, renderer Renderer) ([]Object, error) {
	var html bytes.Buffer
	if err := renderer.Render(&html, page); err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}

	data, err := json.MarshalIndent(page.Document(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding contributors: %w", err)
	}

	cacheControl := page.CacheControl()

	return []Object{
		{
			Name:         PageName,
			ContentType:  "text/html; charset=utf-8",
			CacheControl: cacheControl,
			Body:         html.Bytes(),
		},
		{
			Name:         DataName,
			ContentType:  "application/json; charset=utf-8",
			CacheControl: cacheControl,
			Body:         data,
		},
	}, nil
}
