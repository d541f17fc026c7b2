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
	"fmt"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/apiverify/posts/test/api"

	"k8s.io/utils/ptr"
)

func postIDEntries(postIDs []int) []TableEntry {
	entries := make([]TableEntry, 0, len(postIDs))

	for _, postID := range postIDs {
		entries = append(entries, Entry(fmt.Sprintf("post %d", postID), postID))
	}

	return entries
}

var _ = Describe("Posts CRUD", api.Feature(api.FeaturePostsCRUD), func() {
	Context("When creating a post", func() {
		Describe("Given a valid payload", func() {
			It("should return 201 with a generated id", api.Story(api.StoryCreatePost), func() {
				resp, err := client.CreatePost(ctx, api.NewPostPayload().Build())
				Expect(err).NotTo(HaveOccurred())

				api.VerifyStatus(resp, http.StatusCreated)
				api.VerifyHasID(resp)
				api.VerifySchema(ctx, schema, resp)
			})
		})
	})

	Context("When listing posts", func() {
		Describe("Given no parameters", func() {
			It("should return a list", api.Story(api.StoryListPosts), func() {
				resp, err := client.ListPosts(ctx)
				Expect(err).NotTo(HaveOccurred())

				api.VerifyStatus(resp, http.StatusOK)
				api.VerifyIsCollection(resp)
				api.VerifySchema(ctx, schema, resp)
			})
		})
	})

	Context("When retrieving a specific post", func() {
		DescribeTable("Given the post exists", api.Story(api.StoryGetPostByID),
			func(postID int) {
				AddReportEntry("post_id", postID)

				resp, err := client.GetPost(ctx, postID)
				Expect(err).NotTo(HaveOccurred())

				api.VerifyStatus(resp, http.StatusOK)
				api.VerifyFieldEquals(resp, "id", postID)
				api.VerifySchema(ctx, schema, resp)
			},
			postIDEntries(api.ValidPostIDs()),
		)
	})

	Context("When replacing a post", func() {
		Describe("Given a complete replacement", func() {
			// The change is echoed back but the remote never stores it.
			It("should echo the new title", api.Story(api.StoryUpdatePostPut), func() {
				payload := api.NewPostPayload().
					WithTitle("updated").
					WithBody("new content").
					WithUserID(1).
					Build()

				resp, err := client.UpdatePost(ctx, 1, payload)
				Expect(err).NotTo(HaveOccurred())

				api.VerifyStatus(resp, http.StatusOK)
				api.VerifyFieldEquals(resp, "title", "updated")
				api.VerifySchema(ctx, schema, resp)
			})
		})
	})

	Context("When partially updating a post", func() {
		Describe("Given only a new title", func() {
			// As with PUT, nothing is persisted.
			It("should echo the new title", api.Story(api.StoryUpdatePostPatch), func() {
				resp, err := client.PatchPost(ctx, 1, api.PostPatch{Title: ptr.To("patched")})
				Expect(err).NotTo(HaveOccurred())

				api.VerifyStatus(resp, http.StatusOK)
				api.VerifyFieldEquals(resp, "title", "patched")
				api.VerifySchema(ctx, schema, resp)
			})
		})
	})

	Context("When deleting a post", func() {
		Describe("Given the post exists", func() {
			// The post is still there afterwards, deletion is not durable.
			It("should return 200", api.Story(api.StoryDeletePost), func() {
				resp, err := client.DeletePost(ctx, 1)
				Expect(err).NotTo(HaveOccurred())

				api.VerifyStatus(resp, http.StatusOK)
				api.VerifySchema(ctx, schema, resp)
			})
		})
	})
})
