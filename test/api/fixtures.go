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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"maps"

	json "github.com/goccy/go-json"

	. "github.com/onsi/gomega"
)

// CreatedPostID is the id the remote injects into every created post,
// it is one past the last seeded post and never advances.
const CreatedPostID = 101

// ValidPostIDs are seeded posts that always exist.
func ValidPostIDs() []int {
	return []int{1, 50, 100}
}

// NonexistentPostIDs fall outside the seeded range.
func NonexistentPostIDs() []int {
	return []int{0, 101, 9999}
}

// MalformedPostBody is not JSON: False is not a JSON literal.
const MalformedPostBody = `{"title": 123, "body": False, "userId": "abc"}`

// PostPayloadBuilder builds post payloads for testing.
type PostPayloadBuilder struct {
	payload map[string]interface{}
}

// NewPostPayload creates a new post payload builder with valid defaults.
func NewPostPayload() *PostPayloadBuilder {
	return &PostPayloadBuilder{
		payload: map[string]interface{}{
			"title":  "foo",
			"body":   "bar",
			"userId": 1,
		},
	}
}

func (b *PostPayloadBuilder) WithTitle(title string) *PostPayloadBuilder {
	b.payload["title"] = title
	return b
}

func (b *PostPayloadBuilder) WithBody(body string) *PostPayloadBuilder {
	b.payload["body"] = body
	return b
}

func (b *PostPayloadBuilder) WithUserID(userID int) *PostPayloadBuilder {
	b.payload["userId"] = userID
	return b
}

// Build returns the completed post payload.
func (b *PostPayloadBuilder) Build() map[string]interface{} {
	return b.payload
}

// PostPatch is a partial update, nil fields are omitted from the request.
type PostPatch struct {
	Title  *string `json:"title,omitempty"`
	Body   *string `json:"body,omitempty"`
	UserID *int    `json:"userId,omitempty"`
}

// InvalidPayloadCase is a creation payload the remote should reject but does
// not, along with the body it actually answers with.
type InvalidPayloadCase struct {
	Description string
	Payload     any
	Expected    map[string]interface{}
}

// InvalidPayloadCases enumerates payload shapes that are valid JSON but
// semantically wrong. Every one of them is created with status 201.
func InvalidPayloadCases() []InvalidPayloadCase {
	wrongTypes := map[string]interface{}{"title": 123, "body": false, "userId": "abc"}
	extraField := map[string]interface{}{"random_field": "unexpected"}

	return []InvalidPayloadCase{
		{
			Description: "wrong field types",
			Payload:     wrongTypes,
			Expected:    ExpectedEcho(wrongTypes, CreatedPostID),
		},
		{
			Description: "fields the resource does not define",
			Payload:     extraField,
			Expected:    ExpectedEcho(extraField, CreatedPostID),
		},
		{
			Description: "empty object",
			Payload:     map[string]interface{}{},
			Expected:    ExpectedEcho(nil, CreatedPostID),
		},
		{
			Description: "no body at all",
			Payload:     nil,
			Expected:    ExpectedEcho(nil, CreatedPostID),
		},
	}
}

// ExpectedEcho is what the remote answers to a creation: the payload as
// sent plus the injected id.
func ExpectedEcho(payload map[string]interface{}, id int) map[string]interface{} {
	expected := make(map[string]interface{}, len(payload)+1)
	maps.Copy(expected, payload)
	expected["id"] = id

	return expected
}

// VerifyStatus verifies the response has exactly the expected status.
func VerifyStatus(resp *Response, expected int) {
	Expect(resp.StatusCode).To(Equal(expected),
		"Unexpected status code for %s %s, body: %s", resp.Method, resp.URL, resp.Text())
}

// VerifyStatusIn verifies the status is any one of the accepted codes.
func VerifyStatusIn(resp *Response, accepted ...int) {
	Expect(resp.StatusCode).To(BeElementOf(accepted),
		"Expected one of %v for %s %s, body: %s", accepted, resp.Method, resp.URL, resp.Text())
}

// VerifyHasID verifies the body carries a generated identifier.
func VerifyHasID(resp *Response) {
	Expect(resp.HasField("id")).To(BeTrue(), "Response has no id: %s", resp.Text())
}

// VerifyIsCollection verifies the body is a JSON array.
func VerifyIsCollection(resp *Response) {
	Expect(resp.IsJSONArray()).To(BeTrue(), "Response is not a list: %s", resp.Text())
}

// VerifyFieldEquals verifies a single field, comparing as JSON so numbers
// are not tripped up by int/float64 differences.
func VerifyFieldEquals(resp *Response, path string, expected any) {
	field := resp.Field(path)
	Expect(field.Exists()).To(BeTrue(), "Response has no %s: %s", path, resp.Text())

	expectedJSON, err := json.Marshal(expected)
	Expect(err).NotTo(HaveOccurred())
	Expect(field.Raw).To(MatchJSON(expectedJSON), "Field %s does not match", path)
}

// VerifyEchoedPayload verifies the whole body equals the expected document.
func VerifyEchoedPayload(resp *Response, expected map[string]interface{}) {
	expectedJSON, err := json.Marshal(expected)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.Text()).To(MatchJSON(expectedJSON), "API returned an unexpected body %s", resp.Text())
}

// VerifySchema verifies the response against the posts schema, a nil
// validator means schema checks are disabled.
func VerifySchema(ctx context.Context, validator *SchemaValidator, resp *Response) {
	if validator == nil {
		return
	}

	Expect(validator.Validate(ctx, resp)).To(Succeed())
}
