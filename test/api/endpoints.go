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

	"github.com/oapi-codegen/runtime"
)

// Route templates as they appear in the embedded OpenAPI document.
const (
	RoutePosts = "/posts"
	RoutePost  = "/posts/{id}"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Posts is the collection, used for listing and creation.
func (e *Endpoints) Posts() string {
	return RoutePosts
}

// Post is a single post, styled the same way a generated client would.
func (e *Endpoints) Post(postID int) (string, error) {
	id, err := runtime.StyleParamWithLocation("simple", false, "id", runtime.ParamLocationPath, postID)
	if err != nil {
		return "", fmt.Errorf("styling post id %d: %w", postID, err)
	}

	return fmt.Sprintf("/posts/%s", id), nil
}
