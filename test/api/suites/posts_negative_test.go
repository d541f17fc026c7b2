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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/apiverify/posts/test/api"
)

func invalidPayloadEntries(cases []api.InvalidPayloadCase) []TableEntry {
	entries := make([]TableEntry, 0, len(cases))

	for _, c := range cases {
		entries = append(entries, Entry(c.Description, c))
	}

	return entries
}

var _ = Describe("Posts Negative Scenarios", api.Feature(api.FeaturePostsCRUD), func() {
	Context("When retrieving a post", func() {
		DescribeTable("Given the post does not exist", api.Story(api.StoryGetNonexistentPost),
			func(postID int) {
				AddReportEntry("post_id", postID)

				resp, err := client.GetPost(ctx, postID)
				Expect(err).NotTo(HaveOccurred())

				api.VerifyStatus(resp, http.StatusNotFound)
				api.VerifySchema(ctx, schema, resp)
			},
			postIDEntries(api.NonexistentPostIDs()),
		)
	})

	Context("When creating a post", func() {
		Describe("Given a body that is not valid JSON", func() {
			// Sent as raw text with an explicit content type, a JSON encoder
			// would otherwise turn False into false and the request would
			// succeed. Which of the two errors comes back is not stable.
			It("should return 400 or 500", api.Story(api.StoryMalformedJSON), func() {
				resp, err := client.SendRaw(ctx, http.MethodPost, "application/json", api.MalformedPostBody)
				Expect(err).NotTo(HaveOccurred())

				api.VerifyStatusIn(resp, http.StatusBadRequest, http.StatusInternalServerError)
			})
		})

		// The remote performs no validation at all. These specs pass by
		// asserting the 201 and the echoed body, documenting the anomaly.
		DescribeTable("Given a valid JSON body with invalid content", api.Story(api.StoryInvalidPayload),
			func(c api.InvalidPayloadCase) {
				AddReportEntry("payload", c.Description)

				resp, err := client.CreatePost(ctx, c.Payload)
				Expect(err).NotTo(HaveOccurred())

				api.VerifyStatus(resp, http.StatusCreated)
				api.VerifyEchoedPayload(resp, c.Expected)
			},
			invalidPayloadEntries(api.InvalidPayloadCases()),
		)
	})
})
