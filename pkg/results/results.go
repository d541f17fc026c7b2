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

// Package results reads and writes scenario results in the Allure results
// directory format, one "<uuid>-result.json" file per scenario plus an
// optional "environment.properties".
package results

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

const (
	resultFileSuffix    = "-result.json"
	environmentFileName = "environment.properties"
)

// ErrNoResults is returned when a results directory holds no result files.
var ErrNoResults = errors.New("no results found")

// Status is the outcome of a scenario as the reporting tool understands it.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusBroken  Status = "broken"
	StatusSkipped Status = "skipped"
)

// Label names understood by the reporting tool.
const (
	LabelFeature   = "feature"
	LabelStory     = "story"
	LabelSuite     = "suite"
	LabelFramework = "framework"
	LabelLanguage  = "language"
)

type Label struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Parameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type StatusDetails struct {
	Message string `json:"message,omitempty"`
	Trace   string `json:"trace,omitempty"`
}

// Result is a single scenario outcome. Start and Stop are unix milliseconds.
type Result struct {
	UUID          string         `json:"uuid"`
	HistoryID     string         `json:"historyId"`
	Name          string         `json:"name"`
	FullName      string         `json:"fullName"`
	Status        Status         `json:"status"`
	StatusDetails *StatusDetails `json:"statusDetails,omitempty"`
	Stage         string         `json:"stage"`
	Start         int64          `json:"start"`
	Stop          int64          `json:"stop"`
	Labels        []Label        `json:"labels"`
	Parameters    []Parameter    `json:"parameters,omitempty"`
}

// Label returns the first value of the named label.
func (r *Result) Label(name string) string {
	for _, label := range r.Labels {
		if label.Name == name {
			return label.Value
		}
	}

	return ""
}

// Write stores a result in dir, creating the directory if needed. A missing
// UUID is generated.
func Write(dir string, result *Result) error {
	if result.UUID == "" {
		result.UUID = uuid.NewString()
	}

	if result.Stage == "" {
		result.Stage = "finished"
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating results directory: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing result: %w", err)
	}

	path := filepath.Join(dir, result.UUID+resultFileSuffix)

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing result %s: %w", path, err)
	}

	return nil
}

// WriteEnvironment stores the environment properties shown on the report
// overview. Keys are written in sorted order.
func WriteEnvironment(dir string, properties map[string]string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating results directory: %w", err)
	}

	var b strings.Builder

	for _, key := range slices.Sorted(maps.Keys(properties)) {
		fmt.Fprintf(&b, "%s=%s\n", key, properties[key])
	}

	path := filepath.Join(dir, environmentFileName)

	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("writing environment %s: %w", path, err)
	}

	return nil
}

// Load reads every result in dir, ordered by start time then name.
func Load(dir string) ([]Result, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*"+resultFileSuffix))
	if err != nil {
		return nil, fmt.Errorf("listing results: %w", err)
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoResults, dir)
	}

	out := make([]Result, 0, len(paths))

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading result %s: %w", path, err)
		}

		var result Result
		if err := json.Unmarshal(data, &result); err != nil {
			return nil, fmt.Errorf("parsing result %s: %w", path, err)
		}

		out = append(out, result)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}

		return out[i].Name < out[j].Name
	})

	return out, nil
}
