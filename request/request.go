/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package request assembles immutable request summaries through a fluent
// builder. It is an illustrative consumer of the kvx shared cache (a
// rendered summary is a natural cache value), not a dependency of it.
package request

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrMissingURL is returned when Build is called without a URL.
	ErrMissingURL = errors.New("request: URL is required")
	// ErrMissingMethod is returned when Build is called without a method.
	ErrMissingMethod = errors.New("request: method is required")
)

// Request is an immutable request summary: method, URL, headers, query
// parameters and an optional body. Construct instances through Builder;
// a Request handed out by Build never changes afterwards.
type Request struct {
	url     string
	method  string
	headers map[string]string
	query   map[string]string
	body    string
	hasBody bool
}

// URL returns the request URL.
func (r Request) URL() string { return r.url }

// Method returns the request method.
func (r Request) Method() string { return r.method }

// Header returns the header value for key, with ok reporting presence.
func (r Request) Header(key string) (string, bool) {
	v, ok := r.headers[key]
	return v, ok
}

// Query returns the query parameter value for key, with ok reporting presence.
func (r Request) Query(key string) (string, bool) {
	v, ok := r.query[key]
	return v, ok
}

// Body returns the request body, with ok reporting whether one was set.
func (r Request) Body() (string, bool) { return r.body, r.hasBody }

// String renders the request as a human-readable summary:
//
//	POST https://api.example.com/users?page=2
//	Headers:
//	  Content-Type: application/json
//	Body:
//	  {"name":"Alice"}
//
// Headers and query parameters are sorted by key so the rendering is
// deterministic.
func (r Request) String() string {
	var b strings.Builder
	b.WriteString(r.method)
	b.WriteString(" ")
	b.WriteString(r.url)

	if len(r.query) > 0 {
		pairs := make([]string, 0, len(r.query))
		for _, k := range sortedKeys(r.query) {
			pairs = append(pairs, k+"="+r.query[k])
		}
		b.WriteString("?")
		b.WriteString(strings.Join(pairs, "&"))
	}

	if len(r.headers) > 0 {
		b.WriteString("\nHeaders:")
		for _, k := range sortedKeys(r.headers) {
			fmt.Fprintf(&b, "\n  %s: %s", k, r.headers[k])
		}
	}

	if r.hasBody {
		b.WriteString("\nBody:\n  ")
		b.WriteString(r.body)
	}

	return b.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Builder assembles a Request through chained setters. A Builder is not
// safe for concurrent use; build the Request first and share that.
type Builder struct {
	url     string
	method  string
	headers map[string]string
	query   map[string]string
	body    string
	hasBody bool
}

// NewBuilder starts a Builder for the given URL and method. Both are
// required; Build reports an error if either is empty.
func NewBuilder(url, method string) *Builder {
	return &Builder{
		url:     url,
		method:  method,
		headers: make(map[string]string),
		query:   make(map[string]string),
	}
}

// Header adds a header to the request. It returns the Builder for chaining.
func (b *Builder) Header(key, value string) *Builder {
	b.headers[key] = value
	return b
}

// Query adds a query parameter to the request URL. It returns the Builder
// for chaining.
func (b *Builder) Query(key, value string) *Builder {
	b.query[key] = value
	return b
}

// Body sets the request body. It returns the Builder for chaining.
func (b *Builder) Body(body string) *Builder {
	b.body = body
	b.hasBody = true
	return b
}

// Build validates the Builder and returns the assembled Request.
// The Request owns copies of the header and query maps, so mutating the
// Builder afterwards does not affect it.
func (b *Builder) Build() (Request, error) {
	if b.url == "" {
		return Request{}, ErrMissingURL
	}
	if b.method == "" {
		return Request{}, ErrMissingMethod
	}

	headers := make(map[string]string, len(b.headers))
	for k, v := range b.headers {
		headers[k] = v
	}
	query := make(map[string]string, len(b.query))
	for k, v := range b.query {
		query[k] = v
	}

	return Request{
		url:     b.url,
		method:  b.method,
		headers: headers,
		query:   query,
		body:    b.body,
		hasBody: b.hasBody,
	}, nil
}
