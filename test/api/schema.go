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
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
)

//go:embed schema/posts.yaml
var postsSchema []byte

// ErrUnknownRoute is returned when a response was produced by a route or
// method the schema does not describe.
var ErrUnknownRoute = errors.New("route not described by the posts schema")

// SchemaValidator checks observed responses against the documented shape of
// the posts resource.
type SchemaValidator struct {
	doc *openapi3.T
}

func NewSchemaValidator(ctx context.Context) (*SchemaValidator, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(postsSchema)
	if err != nil {
		return nil, fmt.Errorf("loading posts schema: %w", err)
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validating posts schema: %w", err)
	}

	return &SchemaValidator{
		doc: doc,
	}, nil
}

func (v *SchemaValidator) route(resp *Response) (*routers.Route, error) {
	pathItem := v.doc.Paths.Value(resp.Route)
	if pathItem == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRoute, resp.Route)
	}

	operation := pathItem.GetOperation(resp.Method)
	if operation == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrUnknownRoute, resp.Method, resp.Route)
	}

	return &routers.Route{
		Spec:      v.doc,
		Path:      resp.Route,
		PathItem:  pathItem,
		Method:    resp.Method,
		Operation: operation,
	}, nil
}

// Validate checks the status code is declared for the operation and that the
// body matches the declared response schema.
func (v *SchemaValidator) Validate(ctx context.Context, resp *Response) error {
	route, err := v.route(resp)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, resp.Method, resp.URL, nil)
	if err != nil {
		return fmt.Errorf("rebuilding request: %w", err)
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: resp.PathParams,
			Route:      route,
		},
		Status: resp.StatusCode,
		Header: resp.Header,
		Body:   io.NopCloser(bytes.NewReader(resp.Body)),
		Options: &openapi3filter.Options{
			IncludeResponseStatus: true,
		},
	}

	if err := openapi3filter.ValidateResponse(ctx, input); err != nil {
		return fmt.Errorf("validating %s %s response: %w", resp.Method, resp.Route, err)
	}

	return nil
}
