// REST wire types for the PACP coder HTTP surface.
package rest

import "time"

type Report struct {
	ID         string       `json:"id"`
	CreatedAt  time.Time    `json:"createdAt"`
	GroupCount int          `json:"groupCount"`
	Excluded   []string     `json:"excluded"`
	Rows       []SummaryRow `json:"rows"`
}

type SummaryRow struct {
	InspectionID   string   `json:"inspectionId"`
	SegmentRef     string   `json:"pipeSegmentReference"`
	InspectionDate string   `json:"inspectionDate,omitempty"`
	Street         string   `json:"street,omitempty"`
	City           string   `json:"city,omitempty"`
	LengthSurveyed *float64 `json:"lengthSurveyed,omitempty"`
	Diameter       string   `json:"diameter,omitempty"`
	Material       string   `json:"material,omitempty"`
	UpstreamMH     string   `json:"upstreamMh,omitempty"`
	DownstreamMH   string   `json:"downstreamMh,omitempty"`
	STRScore       string   `json:"strScore"`
	OMScore        string   `json:"omScore"`
	OverallScore   *float64 `json:"overallScore,omitempty"`
	Codes          []string `json:"codes"`
}

type ExclusionSet struct {
	Codes []string `json:"codes"`
}

// ResolveExclusionsRequest carries comma or whitespace delimited deltas
// against the default exclusion set.
type ResolveExclusionsRequest struct {
	Add    string `json:"add" validate:"omitempty,max=4096"`
	Remove string `json:"remove" validate:"omitempty,max=4096"`
}

// Error Ошибка API.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorCode Код ошибки.
type ErrorCode string
