package report

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"

	"pacp_coder/internal/domain/entity"
	"pacp_coder/internal/infrastructure/tabular"
	"pacp_coder/pkg/lox"
)

// ExportSheetName is the sheet the downloadable workbook is written to.
const ExportSheetName = "PACP_Output"

// Fixed header columns of the output workbook, matching the historical
// PACP coder sheet layout.
//
//nolint:gochecknoglobals
var exportColumns = []string{
	"InspectionID",
	"Pipe_Segment_Reference",
	"Inspection_Date",
	"Street",
	"City",
	"Length_Surveyed",
	"Diameter",
	"Material",
	"Upstream_MH",
	"Downstream_MH",
	"STR Score",
	"OM Scores",
	"Overall Scores",
}

// ExportTable lays a report out as one spreadsheet: the fixed columns plus
// PACP_Code1..N, N being the widest code list across the rows.
func ExportTable(report entity.Report) tabular.Table {
	maxCodes := lo.Max(lox.Map(report.Rows, func(row entity.SummaryRow) int {
		return len(row.Codes)
	}))

	columns := make([]string, 0, len(exportColumns)+maxCodes)
	columns = append(columns, exportColumns...)

	for i := 1; i <= maxCodes; i++ {
		columns = append(columns, fmt.Sprintf("PACP_Code%d", i))
	}

	rows := lox.Map(report.Rows, func(row entity.SummaryRow) []string {
		cells := make([]string, 0, len(columns))

		cells = append(cells,
			row.InspectionID,
			row.SegmentRef,
			row.InspectionDate,
			row.Street,
			row.City,
			formatFloat(row.LengthSurveyed),
			row.Diameter,
			row.Material,
			row.UpstreamMH,
			row.DownstreamMH,
			row.STRScore,
			row.OMScore,
			formatFloat(row.OverallScore),
		)

		cells = append(cells, row.Codes...)

		for len(cells) < len(columns) {
			cells = append(cells, "")
		}

		return cells
	})

	return tabular.New(columns, rows)
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}

	return strconv.FormatFloat(*v, 'f', 2, 64)
}
