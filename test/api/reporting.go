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
	"github.com/google/uuid"
	"github.com/onsi/ginkgo/v2/types"

	"github.com/apiverify/posts/pkg/results"
)

func scenarioStatus(state types.SpecState) results.Status {
	switch {
	case state.Is(types.SpecStatePassed):
		return results.StatusPassed
	case state.Is(types.SpecStateSkipped | types.SpecStatePending):
		return results.StatusSkipped
	case state.Is(types.SpecStateFailed):
		return results.StatusFailed
	default:
		// Panics, aborts, interrupts and timeouts are infrastructure
		// problems rather than assertion failures.
		return results.StatusBroken
	}
}

// NewScenarioResult converts a finished spec into a result for the
// reporting tool. The history id is stable across runs so the tool can
// track a scenario over time.
func NewScenarioResult(report types.SpecReport) *results.Result {
	feature, story := ClassifyLabels(report.Labels())

	labels := []results.Label{
		{Name: results.LabelFramework, Value: "ginkgo"},
		{Name: results.LabelLanguage, Value: "go"},
	}

	if len(report.ContainerHierarchyTexts) > 0 {
		labels = append(labels, results.Label{Name: results.LabelSuite, Value: report.ContainerHierarchyTexts[0]})
	}

	if feature != "" {
		labels = append(labels, results.Label{Name: results.LabelFeature, Value: feature})
	}

	if story != "" {
		labels = append(labels, results.Label{Name: results.LabelStory, Value: story})
	}

	var parameters []results.Parameter

	for _, entry := range report.ReportEntries {
		parameters = append(parameters, results.Parameter{
			Name:  entry.Name,
			Value: entry.StringRepresentation(),
		})
	}

	result := &results.Result{
		UUID:       uuid.NewString(),
		HistoryID:  uuid.NewSHA1(uuid.NameSpaceURL, []byte(report.FullText())).String(),
		Name:       report.LeafNodeText,
		FullName:   report.FullText(),
		Status:     scenarioStatus(report.State),
		Start:      report.StartTime.UnixMilli(),
		Stop:       report.EndTime.UnixMilli(),
		Labels:     labels,
		Parameters: parameters,
	}

	if report.Failed() {
		trace := report.Failure.Location.FullStackTrace
		if trace == "" {
			trace = report.Failure.Location.String()
		}

		result.StatusDetails = &results.StatusDetails{
			Message: report.FailureMessage(),
			Trace:   trace,
		}
	}

	return result
}

// WriteScenarioResult records one finished spec, a blank directory disables it.
func WriteScenarioResult(dir string, report types.SpecReport) error {
	if dir == "" {
		return nil
	}

	return results.Write(dir, NewScenarioResult(report))
}

// WriteEnvironment records the target the suite ran against.
func WriteEnvironment(dir string, config *TestConfig) error {
	if dir == "" {
		return nil
	}

	return results.WriteEnvironment(dir, map[string]string{
		"base_url":        config.BaseURL,
		"request_timeout": config.RequestTimeout.String(),
		"schema_checks":   boolString(config.ValidateSchema),
	})
}

func boolString(b bool) string {
	if b {
		return "enabled"
	}

	return "disabled"
}
