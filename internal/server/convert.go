package server

import (
	"pacp_coder/internal/domain/entity"
	"pacp_coder/internal/domain/value"
	"pacp_coder/pkg/lox"
	"pacp_coder/pkg/rest"
)

func newRESTReport(report entity.Report) rest.Report {
	return rest.Report{
		ID:         report.ID,
		CreatedAt:  report.CreatedAt,
		GroupCount: len(report.Rows),
		Excluded:   codeStrings(report.Excluded),
		Rows:       lox.Map(report.Rows, newRESTSummaryRow),
	}
}

func newRESTSummaryRow(row entity.SummaryRow) rest.SummaryRow {
	return rest.SummaryRow{
		InspectionID:   row.InspectionID,
		SegmentRef:     row.SegmentRef,
		InspectionDate: row.InspectionDate,
		Street:         row.Street,
		City:           row.City,
		LengthSurveyed: row.LengthSurveyed,
		Diameter:       row.Diameter,
		Material:       row.Material,
		UpstreamMH:     row.UpstreamMH,
		DownstreamMH:   row.DownstreamMH,
		STRScore:       row.STRScore,
		OMScore:        row.OMScore,
		OverallScore:   row.OverallScore,
		Codes:          row.Codes,
	}
}

func newRESTExclusionSet(set value.CodeSet) rest.ExclusionSet {
	return rest.ExclusionSet{
		Codes: codeStrings(set.Codes()),
	}
}

func codeStrings(codes []value.Code) []string {
	return lox.Map(codes, value.Code.String)
}
