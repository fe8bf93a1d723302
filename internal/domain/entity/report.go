package entity

import (
	"time"

	"pacp_coder/internal/domain/value"
)

// SummaryRow is one output row of a report: fixed scalar fields plus the
// consolidated code list of the group.
type SummaryRow struct {
	InspectionID   string
	SegmentRef     string
	InspectionDate string
	Street         string
	City           string
	LengthSurveyed *float64 // rounded to 2 decimals, nil when absent or unparseable
	Diameter       string
	Material       string
	UpstreamMH     string
	DownstreamMH   string
	STRScore       string // 4-character digit string
	OMScore        string
	OverallScore   *float64
	Codes          []string
}

// Report is the result of one processing run: one SummaryRow per inspection
// group, in group-encounter order.
type Report struct {
	ID        string
	CreatedAt time.Time
	Excluded  []value.Code
	Rows      []SummaryRow
}
