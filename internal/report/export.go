package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/stockroom-lab/stockroom/internal/core/reporting"
)

// ExportFormatCSV is the only supported export format.
const ExportFormatCSV = "csv"

var csvHeader = []string{"Period", "Total Sales", "Items Sold"}

// ExportFilename is the attachment name for a summary export of kind.
func ExportFilename(kind reporting.BucketKind) string {
	return string(kind) + "_report.csv"
}

// ExportSummaryCSV writes the summary of kind to w as CSV.
func (s *Service) ExportSummaryCSV(ctx context.Context, w io.Writer, kind reporting.BucketKind) error {
	rows, err := s.GetSummary(ctx, kind)
	if err != nil {
		return err
	}
	return WriteSummaryCSV(w, rows)
}

// WriteSummaryCSV renders rows with a header line.
func WriteSummaryCSV(w io.Writer, rows []reporting.SummaryRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.PeriodLabel,
			row.TotalSales.StringFixed(2),
			strconv.FormatInt(row.ItemsSold, 10),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %s: %w", row.PeriodLabel, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
