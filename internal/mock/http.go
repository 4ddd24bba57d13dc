package mock

import (
	"bytes"
	"io"
	"net/http"
	"sync"
)

// HTTPDoer mocks http.Client.
//
// Responses are built from Statuses, Bodies and Headers, cycling over each slice independently.
// Non-nil element of Errs makes corresponding call fail with transport error.
type HTTPDoer struct {
	Statuses []int
	Bodies   [][]byte
	Headers  []http.Header
	Errs     []error

	DoFunc func(*http.Request) (*http.Response, error)

	Requests  []*http.Request
	Responses []*http.Response

	m sync.Mutex
	i int
}

// Do fakes executing http request.
func (d *HTTPDoer) Do(r *http.Request) (*http.Response, error) {
	d.m.Lock()
	i := d.i
	d.i++
	d.Requests = append(d.Requests, r)
	doFunc := d.DoFunc
	d.m.Unlock()

	// DoFunc may block, so it's called without holding the lock.
	if doFunc != nil {
		return doFunc(r)
	}

	d.m.Lock()
	defer d.m.Unlock()
	if len(d.Errs) > 0 {
		if err := d.Errs[i%len(d.Errs)]; err != nil {
			return nil, err
		}
	}

	status := http.StatusOK
	if len(d.Statuses) > 0 {
		status = d.Statuses[i%len(d.Statuses)]
	}
	var data []byte
	if len(d.Bodies) > 0 {
		data = d.Bodies[i%len(d.Bodies)]
	}
	header := http.Header{}
	if len(d.Headers) > 0 && d.Headers[i%len(d.Headers)] != nil {
		header = d.Headers[i%len(d.Headers)]
	}

	response := &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader(data)),
		Header:     header,
		Request:    r,
	}
	d.Responses = append(d.Responses, response)

	return response, nil
}

// Calls returns number of Do calls.
func (d *HTTPDoer) Calls() int {
	d.m.Lock()
	defer d.m.Unlock()

	return d.i
}
