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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/apiverify/posts/pkg/constants"
	"github.com/apiverify/posts/pkg/results"
)

func writeRun(t *testing.T, failed bool, stories ...string) string {
	t.Helper()

	dir := t.TempDir()

	for i, story := range stories {
		status := results.StatusPassed
		if failed && i == 0 {
			status = results.StatusFailed
		}

		require.NoError(t, results.Write(dir, &results.Result{
			Name:   story + " scenario",
			Status: status,
			Start:  int64(i) * 1000,
			Stop:   int64(i)*1000 + 100,
			Labels: []results.Label{
				{Name: results.LabelFeature, Value: constants.FeaturePostsCRUD},
				{Name: results.LabelStory, Value: story},
			},
		}))
	}

	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd, err := newRootCommand(logr.Discard())
	require.NoError(t, err)

	cmd.SetOut(&out)
	cmd.SetArgs(args)

	err = cmd.Execute()

	return out.String(), err
}

func TestCompleteRunSucceeds(t *testing.T) {
	t.Parallel()

	dir := writeRun(t, false, constants.Stories()...)

	out, err := execute(t, "--results-dir", dir)
	require.NoError(t, err)
	require.Contains(t, out, "Total: 9, passed: 9")
}

func TestMissingStoriesFail(t *testing.T) {
	t.Parallel()

	dir := writeRun(t, false, constants.StoryCreatePost, constants.StoryListPosts)

	_, err := execute(t, "--results-dir", dir)
	require.ErrorIs(t, err, ErrStoriesMissing)
	require.ErrorContains(t, err, constants.StoryDeletePost)

	_, err = execute(t, "--results-dir", dir, "--expect-story", constants.StoryListPosts)
	require.NoError(t, err)
}

func TestFailuresGate(t *testing.T) {
	t.Parallel()

	dir := writeRun(t, true, constants.Stories()...)

	_, err := execute(t, "--results-dir", dir)
	require.ErrorIs(t, err, ErrScenariosFailed)

	_, err = execute(t, "--results-dir", dir, "--fail-on-failure=false")
	require.NoError(t, err)
}

func TestEmptyResultsDirectory(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "--results-dir", t.TempDir())
	require.ErrorIs(t, err, results.ErrNoResults)
}

func TestExports(t *testing.T) {
	t.Parallel()

	dir := writeRun(t, false, constants.Stories()...)
	out := t.TempDir()

	jsonPath := filepath.Join(out, "summary.json")
	xlsxPath := filepath.Join(out, "summary.xlsx")

	_, err := execute(t, "--results-dir", dir, "--json", jsonPath, "--xlsx", xlsxPath)
	require.NoError(t, err)

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)

	var summary results.Summary
	require.NoError(t, json.Unmarshal(data, &summary))
	require.Equal(t, 9, summary.Total)
	require.Len(t, summary.Stories, 9)

	f, err := excelize.OpenFile(xlsxPath)
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

//nolint:paralleltest
func TestEnvironmentOverrides(t *testing.T) {
	dir := writeRun(t, true, constants.StoryCreatePost, constants.StoryGetPostByID)

	t.Setenv("POSTS_RESULTS_RESULTS_DIR", dir)
	t.Setenv("POSTS_RESULTS_FAIL_ON_FAILURE", "false")
	t.Setenv("POSTS_RESULTS_EXPECT_STORY", constants.StoryCreatePost+", "+constants.StoryGetPostByID)

	out, err := execute(t)
	require.NoError(t, err)
	require.Contains(t, out, "FAIL ["+constants.StoryCreatePost+"]")
}

func TestFlagsAreBound(t *testing.T) {
	t.Parallel()

	cmd, err := newRootCommand(logr.Discard())
	require.NoError(t, err)

	for _, name := range []string{flagResultsDir, flagJSON, flagXLSX, flagExpectStory, flagFailOnFailure} {
		require.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}
