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
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/apiverify/posts/test/api"
)

var (
	client *api.APIClient
	ctx    context.Context
	config *api.TestConfig
	schema *api.SchemaValidator
)

// Every scenario gets its own configuration and client, nothing is shared.
var _ = BeforeEach(func() {
	var err error

	config, err = api.LoadTestConfig()
	Expect(err).NotTo(HaveOccurred())

	if config.SkipIntegration {
		Skip("SKIP_INTEGRATION is set")
	}

	client = api.NewAPIClientWithConfig(config)
	ctx = context.Background()

	schema = nil

	if config.ValidateSchema {
		schema, err = api.NewSchemaValidator(ctx)
		Expect(err).NotTo(HaveOccurred())
	}
})

var _ = ReportAfterEach(func(report SpecReport) {
	if config == nil {
		return
	}

	if err := api.WriteScenarioResult(config.ResultsDir, report); err != nil {
		GinkgoWriter.Printf("Warning: failed to write result for %q: %v\n", report.FullText(), err)
	}
})

var _ = ReportAfterSuite("results environment", func(_ Report) {
	cfg, err := api.LoadTestConfig()
	if err != nil {
		return
	}

	if err := api.WriteEnvironment(cfg.ResultsDir, cfg); err != nil {
		GinkgoWriter.Printf("Warning: failed to write results environment: %v\n", err)
	}
})

func TestSuites(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Posts API Test Suites")
}
