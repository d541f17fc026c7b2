/*
Copyright 2026 the Posts Verification Authors.

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

package api

import (
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// Response is what a single request observed. It is never mutated after
// the client returns it.
type Response struct {
	// Method and URL of the request that produced this response.
	Method string
	URL    string

	// Route is the OpenAPI path template the request was issued against,
	// with PathParams holding its resolved parameters.
	Route      string
	PathParams map[string]string

	StatusCode int
	Header     http.Header
	Body       []byte
}

// Text returns the raw body, useful when the body is not JSON.
func (r *Response) Text() string {
	return string(r.Body)
}

// JSON decodes the body into a generic value: a map, a slice, or nil.
func (r *Response) JSON() (any, error) {
	var value any
	if err := json.Unmarshal(r.Body, &value); err != nil {
		return nil, fmt.Errorf("decoding %s %s response body: %w", r.Method, r.URL, err)
	}

	return value, nil
}

// IsJSONArray reports whether the body is a well formed JSON array.
func (r *Response) IsJSONArray() bool {
	return gjson.ValidBytes(r.Body) && gjson.ParseBytes(r.Body).IsArray()
}

// Field looks up a value using gjson path syntax.
func (r *Response) Field(path string) gjson.Result {
	return gjson.GetBytes(r.Body, path)
}

func (r *Response) HasField(path string) bool {
	return r.Field(path).Exists()
}
