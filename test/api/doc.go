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

// Package api provides integration test utilities for the posts resource.
//
// # Observed Behavior
//
// The suites built on this package document what the remote service does,
// not what a REST service ought to do. Notably:
//   - creation returns 201 for any JSON body, or none, and injects id 101
//   - updates and deletes are echoed back but never persisted
//   - a syntactically broken body yields 400 or 500 depending on the day
//
// Assertions encoding these anomalies are deliberate and must not be
// "fixed" to match conventional semantics.
//
// # Client
//
// APIClient is a thin hand-written client. It never converts a status code
// into an error, since judging the status is the point of every scenario.
// Each request carries W3C trace context headers, and transport failures are
// logged to GinkgoWriter along with the trace id.
//
// # Reporting
//
// Specs are classified with Feature and Story labels. When
// ALLURE_RESULTS_DIR is set the suites write one result file per spec into
// that directory, see package results.
package api
