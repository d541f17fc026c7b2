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

package results

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/spjmurray/go-util/pkg/set"
)

// Row is one scenario in a summary.
type Row struct {
	Feature  string        `json:"feature"`
	Story    string        `json:"story"`
	Name     string        `json:"name"`
	Status   Status        `json:"status"`
	Duration time.Duration `json:"duration"`
	Message  string        `json:"message,omitempty"`
}

// Summary aggregates a results directory.
type Summary struct {
	Total   int            `json:"total"`
	Counts  map[Status]int `json:"counts"`
	Stories []string       `json:"stories"`
	Rows    []Row          `json:"rows"`

	stories set.Set[string]
}

func Summarize(results []Result) *Summary {
	s := &Summary{
		Total:  len(results),
		Counts: map[Status]int{},
		Rows:   make([]Row, 0, len(results)),
	}

	var stories []string

	for i := range results {
		result := &results[i]

		s.Counts[result.Status]++

		story := result.Label(LabelStory)
		if story != "" {
			stories = append(stories, story)
		}

		row := Row{
			Feature:  result.Label(LabelFeature),
			Story:    story,
			Name:     result.Name,
			Status:   result.Status,
			Duration: time.Duration(result.Stop-result.Start) * time.Millisecond,
		}

		if result.StatusDetails != nil {
			row.Message = result.StatusDetails.Message
		}

		s.Rows = append(s.Rows, row)
	}

	s.stories = set.New[string](stories...)

	for story := range s.stories.All() {
		s.Stories = append(s.Stories, story)
	}

	slices.Sort(s.Stories)

	return s
}

// Failed counts failed and broken scenarios.
func (s *Summary) Failed() int {
	return s.Counts[StatusFailed] + s.Counts[StatusBroken]
}

// MissingStories returns expected stories that no result reported, sorted.
func (s *Summary) MissingStories(expected []string) []string {
	var missing []string

	for story := range set.New[string](expected...).Difference(s.stories).All() {
		missing = append(missing, story)
	}

	slices.Sort(missing)

	return missing
}

// Print writes a console report.
func (s *Summary) Print(w io.Writer) {
	fmt.Fprintf(w, "\n=== Posts API Verification Report ===\n")

	for _, row := range s.Rows {
		mark := "PASS"

		switch row.Status {
		case StatusFailed, StatusBroken:
			mark = "FAIL"
		case StatusSkipped:
			mark = "SKIP"
		case StatusPassed:
		}

		fmt.Fprintf(w, "%s [%s] %s (%v)\n", mark, row.Story, row.Name, row.Duration)

		if row.Message != "" {
			fmt.Fprintf(w, "    %s\n", row.Message)
		}
	}

	fmt.Fprintf(w, "\nTotal: %d, passed: %d, failed: %d, broken: %d, skipped: %d\n",
		s.Total, s.Counts[StatusPassed], s.Counts[StatusFailed], s.Counts[StatusBroken], s.Counts[StatusSkipped])
}
