package entity

// SegmentMeta holds the per-segment scalar metadata joined in from the
// inspections export. Raw cell values; absent columns yield empty strings.
type SegmentMeta struct {
	InspectionDate string
	Street         string
	City           string
	LengthSurveyed string
	Diameter       string
	Material       string
	UpstreamMH     string
	DownstreamMH   string
}

// RawRatings holds the three rating cells joined in from the ratings export,
// still unparsed. Score formatting happens during report assembly.
type RawRatings struct {
	Structural string
	OM         string
	Overall    string
}

// InspectionGroup is the set of observation rows sharing one
// (inspection, pipe segment) pair, with the scalar metadata taken from the
// joined inspection and rating rows. Row order matches the source table.
type InspectionGroup struct {
	InspectionID string
	SegmentRef   string
	Rows         []Observation
	Meta         SegmentMeta
	Ratings      RawRatings
}
