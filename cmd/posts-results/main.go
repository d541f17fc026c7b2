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
	"fmt"
	"os"

	"github.com/go-logr/zapr"
	"go.uber.org/zap"

	"github.com/apiverify/posts/pkg/constants"
)

func main() {
	zl, err := zap.NewDevelopment()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	logger := zapr.NewLogger(zl).WithName("init")
	logger.Info("results starting", "application", constants.Application, "version", constants.Version, "revision", constants.Revision)

	cmd, err := newRootCommand(zapr.NewLogger(zl))
	if err != nil {
		logger.Error(err, "building command")
		_ = zl.Sync()

		os.Exit(1)
	}

	if err := cmd.Execute(); err != nil {
		logger.Error(err, "results check failed")
		_ = zl.Sync()

		os.Exit(1)
	}

	_ = zl.Sync()
}
