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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-logr/logr"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/apiverify/posts/pkg/constants"
	"github.com/apiverify/posts/pkg/results"
)

const (
	envPrefix = "POSTS_RESULTS"

	flagResultsDir    = "results-dir"
	flagJSON          = "json"
	flagXLSX          = "xlsx"
	flagExpectStory   = "expect-story"
	flagFailOnFailure = "fail-on-failure"
)

var (
	// ErrScenariosFailed is returned when gating is enabled and a scenario failed.
	ErrScenariosFailed = errors.New("scenarios failed")

	// ErrStoriesMissing is returned when an expected story reported no result.
	ErrStoriesMissing = errors.New("expected stories missing")
)

type options struct {
	resultsDir    string
	jsonPath      string
	xlsxPath      string
	stories       []string
	failOnFailure bool
}

func addFlags(f *pflag.FlagSet) {
	f.String(flagResultsDir, "allure-results", "Directory the suites wrote results into.")
	f.String(flagJSON, "", "Write the summary as JSON to this path.")
	f.String(flagXLSX, "", "Write the summary as a spreadsheet to this path.")
	f.StringSlice(flagExpectStory, constants.Stories(), "Stories a complete run must report, empty disables the check.")
	f.Bool(flagFailOnFailure, true, "Exit non-zero when any scenario failed.")
}

// loadOptions resolves flags, with POSTS_RESULTS_* environment variables
// taking precedence over flag defaults.
func loadOptions(v *viper.Viper) *options {
	o := &options{
		resultsDir:    v.GetString(flagResultsDir),
		jsonPath:      v.GetString(flagJSON),
		xlsxPath:      v.GetString(flagXLSX),
		stories:       v.GetStringSlice(flagExpectStory),
		failOnFailure: v.GetBool(flagFailOnFailure),
	}

	// Stories contain spaces, so a list from the environment is comma separated.
	if raw, ok := v.Get(flagExpectStory).(string); ok {
		o.stories = nil

		for _, story := range strings.Split(raw, ",") {
			if story = strings.TrimSpace(story); story != "" {
				o.stories = append(o.stories, story)
			}
		}
	}

	return o
}

func writeJSON(path string, summary *results.Summary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing summary: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing summary %s: %w", path, err)
	}

	return nil
}

func run(cmd *cobra.Command, logger logr.Logger, o *options) error {
	logger.Info("loading results", "dir", o.resultsDir)

	loaded, err := results.Load(o.resultsDir)
	if err != nil {
		return err
	}

	summary := results.Summarize(loaded)
	summary.Print(cmd.OutOrStdout())

	if o.jsonPath != "" {
		if err := writeJSON(o.jsonPath, summary); err != nil {
			return err
		}

		logger.Info("wrote summary", "path", o.jsonPath)
	}

	if o.xlsxPath != "" {
		if err := results.WriteWorkbook(o.xlsxPath, summary); err != nil {
			return err
		}

		logger.Info("wrote workbook", "path", o.xlsxPath)
	}

	if missing := summary.MissingStories(o.stories); len(missing) > 0 {
		logger.Info("stories without results", "stories", missing)

		return fmt.Errorf("%w: %s", ErrStoriesMissing, strings.Join(missing, ", "))
	}

	if failed := summary.Failed(); failed > 0 && o.failOnFailure {
		return fmt.Errorf("%w: %d of %d", ErrScenariosFailed, failed, summary.Total)
	}

	return nil
}

func newRootCommand(logger logr.Logger) (*cobra.Command, error) {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   constants.Application,
		Short: "Summarize posts API verification results",
		Long: `Reads the result files written by the posts API suites, prints a
summary, optionally exports it, and gates on failures and missing stories.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, logger, loadOptions(v))
		},
	}

	addFlags(cmd.Flags())

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}

	return cmd, nil
}
