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

	"github.com/xuri/excelize/v2"
)

const (
	workbookSheet  = "Scenarios"
	failureBgColor = "FF5900"
	skippedBgColor = "FFEB9C"
)

var workbookHeaders = []string{
	"Feature", "Story", "Scenario", "Status", "Duration", "Message",
}

func setRow(f *excelize.File, row int, values ...interface{}) error {
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}

		if err := f.SetCellValue(workbookSheet, cell, value); err != nil {
			return err
		}
	}

	return nil
}

func fillStyle(f *excelize.File, color string) (int, error) {
	return f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{color},
		},
	})
}

// WriteWorkbook exports the summary as a spreadsheet, highlighting failed
// and skipped scenarios.
//
//nolint:cyclop
func WriteWorkbook(path string, summary *Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", workbookSheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	if err := f.SetColWidth(workbookSheet, "A", "F", 32); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}

	failureStyle, err := fillStyle(f, failureBgColor)
	if err != nil {
		return fmt.Errorf("creating failure style: %w", err)
	}

	skippedStyle, err := fillStyle(f, skippedBgColor)
	if err != nil {
		return fmt.Errorf("creating skipped style: %w", err)
	}

	headers := make([]interface{}, len(workbookHeaders))
	for i, header := range workbookHeaders {
		headers[i] = header
	}

	if err := setRow(f, 1, headers...); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, r := range summary.Rows {
		row := i + 2

		if err := setRow(f, row, r.Feature, r.Story, r.Name, string(r.Status), r.Duration.String(), r.Message); err != nil {
			return fmt.Errorf("writing row %d: %w", row, err)
		}

		style := 0

		switch r.Status {
		case StatusFailed, StatusBroken:
			style = failureStyle
		case StatusSkipped:
			style = skippedStyle
		case StatusPassed:
		}

		if style == 0 {
			continue
		}

		if err := f.SetCellStyle(workbookSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row), style); err != nil {
			return fmt.Errorf("styling row %d: %w", row, err)
		}
	}

	totalRow := len(summary.Rows) + 3

	if err := setRow(f, totalRow, "Total", summary.Total, "Failed", summary.Failed()); err != nil {
		return fmt.Errorf("writing totals: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}

	return nil
}
