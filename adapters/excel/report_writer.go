package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"randlab/domain/randstat"
)

// ReportWriter exports an analysis report to an .xlsx workbook: one summary
// sheet with the formatted statistic lines and one sheet with the raw
// frequency table for further inspection.
type ReportWriter struct {
	filePath string
}

// NewReportWriter creates a writer targeting the given file path
func NewReportWriter(filePath string) *ReportWriter {
	return &ReportWriter{filePath: filePath}
}

// Write renders the report and saves the workbook
func (w *ReportWriter) Write(report *randstat.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	const summary = "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return fmt.Errorf("failed to rename summary sheet: %w", err)
	}

	row := 1
	setCell := func(col string, value interface{}) {
		cell := fmt.Sprintf("%s%d", col, row)
		_ = f.SetCellValue(summary, cell, value)
	}

	setCell("A", "Generator")
	setCell("B", report.GeneratorID)
	row++
	setCell("A", "Domain size (N)")
	setCell("B", report.Config.DomainSize)
	row++
	setCell("A", "Sample size")
	setCell("B", report.Config.SampleSize)
	row++
	setCell("A", "Seed")
	setCell("B", report.Config.Seed)
	row += 2

	for _, result := range report.Results {
		setCell("A", result.CheckName)
		row++
		for _, line := range result.Text {
			setCell("B", line)
			row++
		}
		row++
	}

	if err := w.writeFrequencies(f, report); err != nil {
		return err
	}

	if err := f.SaveAs(w.filePath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// writeFrequencies adds the raw value/count table when the report carries a
// distribution result.
func (w *ReportWriter) writeFrequencies(f *excelize.File, report *randstat.Report) error {
	result, ok := report.Result("distribution")
	if !ok || len(result.Frequencies) == 0 {
		return nil
	}

	const sheet = "Frequencies"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to add frequency sheet: %w", err)
	}

	_ = f.SetCellValue(sheet, "A1", "Value")
	_ = f.SetCellValue(sheet, "B1", "Count")
	for i, point := range result.Frequencies {
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), point.Value)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), point.Count)
	}
	return nil
}
