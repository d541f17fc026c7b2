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

package constants

import (
	"os"
	"path"
)

var (
	// Application is the application name.
	//nolint:gochecknoglobals
	Application = path.Base(os.Args[0])

	// Version is the application version set via the Makefile.
	//nolint:gochecknoglobals
	Version string

	// Revision is the git revision set via the Makefile.
	//nolint:gochecknoglobals
	Revision string
)

// Feature and story names reported by the verification suites. Ginkgo
// rejects labels containing any of "&|!,()/", so names avoid those characters.
const (
	FeaturePostsCRUD = "CRUD operations on posts"

	StoryCreatePost         = "Create a new post"
	StoryListPosts          = "List posts"
	StoryGetPostByID        = "Get a post by ID"
	StoryUpdatePostPut      = "Update a post with PUT"
	StoryUpdatePostPatch    = "Partially update a post with PATCH"
	StoryDeletePost         = "Delete a post"
	StoryGetNonexistentPost = "Negative: get a nonexistent post"
	StoryMalformedJSON      = "Negative: send malformed JSON"
	StoryInvalidPayload     = "Negative: create a post with invalid data"
)

// Stories lists every story a complete run is expected to report.
func Stories() []string {
	return []string{
		StoryCreatePost,
		StoryListPosts,
		StoryGetPostByID,
		StoryUpdatePostPut,
		StoryUpdatePostPatch,
		StoryDeletePost,
		StoryGetNonexistentPost,
		StoryMalformedJSON,
		StoryInvalidPayload,
	}
}
