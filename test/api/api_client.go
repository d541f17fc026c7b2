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

//go:generate mockgen -source=api_client.go -destination=mock/interfaces.go -package=mock

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/onsi/ginkgo/v2"
)

const contentTypeJSON = "application/json"

// Doer sends a single HTTP request, *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type APIClient struct {
	baseURL   string
	client    Doer
	config    *TestConfig
	endpoints *Endpoints
}

func NewAPIClientWithConfig(config *TestConfig) *APIClient {
	return NewAPIClientWithDoer(config, &http.Client{
		Timeout: config.RequestTimeout,
	})
}

// NewAPIClientWithDoer allows the transport to be replaced, mainly for unit tests.
func NewAPIClientWithDoer(config *TestConfig, client Doer) *APIClient {
	return &APIClient{
		baseURL:   strings.TrimSuffix(config.BaseURL, "/"),
		client:    client,
		config:    config,
		endpoints: NewEndpoints(),
	}
}

// request describes one call. A nil body sends no payload and no content type.
type request struct {
	method      string
	route       string
	path        string
	pathParams  map[string]string
	body        []byte
	contentType string
}

// logError logs a generic error with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s traceparent=%s error=%v\n", method, path, context, duration, traceParent, err)
	c.logTraceContext(traceParent)
}

// logErrorWithStatus logs an error with HTTP status code.
func (c *APIClient) logErrorWithStatus(method, path string, duration time.Duration, statusCode int, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s status=%d traceparent=%s error=%v\n", method, path, context, duration, statusCode, traceParent, err)
	c.logTraceContext(traceParent)
}

func (c *APIClient) logTraceContext(traceParent string) {
	ginkgo.GinkgoWriter.Printf("TRACE CONTEXT: trace ID '%s' identifies this request\n", extractTraceID(traceParent))
}

// generateTraceID creates a new W3C trace ID.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	return fmt.Sprintf("00-%s-%s-01", generateTraceID(), generateSpanID())
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// doRequest performs the call and records what came back. Only transport and
// read failures are errors, status codes are left for the caller to judge.
func (c *APIClient) doRequest(ctx context.Context, r request) (*Response, error) {
	fullURL := c.baseURL + r.path

	var body io.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")
	req.Header.Set("Accept", contentTypeJSON)

	if r.body != nil && r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(r.method, r.path, duration, traceParent, err, "http request failed")
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logErrorWithStatus(r.method, r.path, duration, resp.StatusCode, traceParent, err, "reading response body")
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.config.LogRequests {
		ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s traceparent=%s\n", r.method, r.path, resp.StatusCode, duration, traceParent)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		ginkgo.GinkgoWriter.Printf("[%s %s] response body: %s\n", r.method, r.path, string(respBody))
	}

	return &Response{
		Method:     r.method,
		URL:        fullURL,
		Route:      r.route,
		PathParams: r.pathParams,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}

// marshalPayload serializes a payload, a nil payload yields no body at all.
func marshalPayload(payload any) ([]byte, error) {
	if payload == nil {
		return nil, nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling post payload: %w", err)
	}

	return data, nil
}

func (c *APIClient) postRequest(method string, postID int, payload any) (request, error) {
	path, err := c.endpoints.Post(postID)
	if err != nil {
		return request{}, err
	}

	body, err := marshalPayload(payload)
	if err != nil {
		return request{}, err
	}

	return request{
		method:      method,
		route:       RoutePost,
		path:        path,
		pathParams:  map[string]string{"id": strconv.Itoa(postID)},
		body:        body,
		contentType: contentTypeJSON,
	}, nil
}

// CreatePost creates a new post. The remote accepts any payload, including none.
func (c *APIClient) CreatePost(ctx context.Context, payload any) (*Response, error) {
	body, err := marshalPayload(payload)
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, request{
		method:      http.MethodPost,
		route:       RoutePosts,
		path:        c.endpoints.Posts(),
		body:        body,
		contentType: contentTypeJSON,
	})
	if err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	return resp, nil
}

// ListPosts lists the whole collection.
func (c *APIClient) ListPosts(ctx context.Context) (*Response, error) {
	resp, err := c.doRequest(ctx, request{
		method: http.MethodGet,
		route:  RoutePosts,
		path:   c.endpoints.Posts(),
	})
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}

	return resp, nil
}

func (c *APIClient) GetPost(ctx context.Context, postID int) (*Response, error) {
	r, err := c.postRequest(http.MethodGet, postID, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("getting post %d: %w", postID, err)
	}

	return resp, nil
}

// UpdatePost replaces a post. The remote echoes the change but never stores it.
func (c *APIClient) UpdatePost(ctx context.Context, postID int, payload any) (*Response, error) {
	r, err := c.postRequest(http.MethodPut, postID, payload)
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("updating post %d: %w", postID, err)
	}

	return resp, nil
}

// PatchPost updates only the supplied fields, with the same non-persistence caveat.
func (c *APIClient) PatchPost(ctx context.Context, postID int, payload any) (*Response, error) {
	r, err := c.postRequest(http.MethodPatch, postID, payload)
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("patching post %d: %w", postID, err)
	}

	return resp, nil
}

func (c *APIClient) DeletePost(ctx context.Context, postID int) (*Response, error) {
	r, err := c.postRequest(http.MethodDelete, postID, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("deleting post %d: %w", postID, err)
	}

	return resp, nil
}

// SendRaw sends body verbatim with an explicit content type against the
// collection. Nothing is serialized, so syntactically broken JSON reaches
// the server untouched.
func (c *APIClient) SendRaw(ctx context.Context, method, contentType, body string) (*Response, error) {
	resp, err := c.doRequest(ctx, request{
		method:      method,
		route:       RoutePosts,
		path:        c.endpoints.Posts(),
		body:        []byte(body),
		contentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("sending raw %s request: %w", method, err)
	}

	return resp, nil
}
