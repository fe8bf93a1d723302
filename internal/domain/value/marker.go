package value

import "strings"

// ContinuityMarker is the parsed form of the "Continuous" cell of an
// observation row: empty, or S/F plus an opaque suffix shared by the two
// ends of one continuous defect ("S1"/"F1").
type ContinuityMarker struct {
	kind   byte // 'S', 'F' or 0
	suffix string
}

func ParseMarker(raw string) ContinuityMarker {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if normalized == "" {
		return ContinuityMarker{}
	}

	switch normalized[0] {
	case 'S', 'F':
		return ContinuityMarker{kind: normalized[0], suffix: normalized[1:]}
	default:
		return ContinuityMarker{}
	}
}

func (m ContinuityMarker) IsStart() bool {
	return m.kind == 'S'
}

func (m ContinuityMarker) IsFinish() bool {
	return m.kind == 'F'
}

// Suffix is the marker remainder after the S/F byte. It is not interpreted
// as a number; "01" and "1" are distinct suffixes.
func (m ContinuityMarker) Suffix() string {
	return m.suffix
}
