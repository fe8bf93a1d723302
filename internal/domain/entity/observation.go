package entity

// Observation is one raw defect observation of an inspection group, as read
// from the conditions export. Code and Marker carry the raw cell values;
// normalization happens during consolidation.
type Observation struct {
	Code   string
	Marker string
}
