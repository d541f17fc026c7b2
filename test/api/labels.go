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
	"strings"

	"github.com/onsi/ginkgo/v2"

	"github.com/apiverify/posts/pkg/constants"
)

const (
	featureLabelPrefix = "feature:"
	storyLabelPrefix   = "story:"
)

const (
	FeaturePostsCRUD = constants.FeaturePostsCRUD

	StoryCreatePost         = constants.StoryCreatePost
	StoryListPosts          = constants.StoryListPosts
	StoryGetPostByID        = constants.StoryGetPostByID
	StoryUpdatePostPut      = constants.StoryUpdatePostPut
	StoryUpdatePostPatch    = constants.StoryUpdatePostPatch
	StoryDeletePost         = constants.StoryDeletePost
	StoryGetNonexistentPost = constants.StoryGetNonexistentPost
	StoryMalformedJSON      = constants.StoryMalformedJSON
	StoryInvalidPayload     = constants.StoryInvalidPayload
)

// Stories lists every story the suites are expected to report.
func Stories() []string {
	return constants.Stories()
}

// Feature labels a container with the feature it covers.
func Feature(name string) ginkgo.Labels {
	return ginkgo.Label(featureLabelPrefix + name)
}

// Story labels a spec or table with the user story it covers.
func Story(name string) ginkgo.Labels {
	return ginkgo.Label(storyLabelPrefix + name)
}

// ClassifyLabels returns the innermost feature and story found in labels,
// which are ordered outermost first as Ginkgo reports them.
func ClassifyLabels(labels []string) (feature, story string) {
	for _, label := range labels {
		switch {
		case strings.HasPrefix(label, featureLabelPrefix):
			feature = strings.TrimPrefix(label, featureLabelPrefix)
		case strings.HasPrefix(label, storyLabelPrefix):
			story = strings.TrimPrefix(label, storyLabelPrefix)
		}
	}

	return feature, story
}
