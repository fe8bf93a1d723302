package value

import (
	"slices"
	"strings"
)

// Code is a PACP observation code token. The system treats codes as opaque:
// normalization is trim plus upper-case, nothing more.
type Code string

func NormalizeCode(raw string) Code {
	return Code(strings.ToUpper(strings.TrimSpace(raw)))
}

func (c Code) String() string {
	return string(c)
}

func (c Code) IsZero() bool {
	return c == ""
}

// defaultExcludedCodes are the administrative / non-defect codes dropped
// before consolidation. Never mutated; overlays produce new sets.
//
//nolint:gochecknoglobals
var defaultExcludedCodes = [...]Code{
	"AMH", "MWL", "TF", "TS", "TSA", "TFA", "MGO", "MMC", "MSC", "ACB",
	"MWM", "AEP", "TFC", "TB", "ACOM", "TFD", "TBA", "TBD", "ATC", "TBC",
	"AOC",
}

// CodeSet is an immutable set of normalized code tokens.
type CodeSet struct {
	codes map[Code]struct{}
}

func NewCodeSet(codes ...Code) CodeSet {
	set := CodeSet{codes: make(map[Code]struct{}, len(codes))}

	for _, code := range codes {
		if code.IsZero() {
			continue
		}

		set.codes[code] = struct{}{}
	}

	return set
}

// DefaultExclusions returns a fresh copy of the default exclusion set.
func DefaultExclusions() CodeSet {
	return NewCodeSet(defaultExcludedCodes[:]...)
}

func (s CodeSet) Contains(code Code) bool {
	_, ok := s.codes[code]
	return ok
}

func (s CodeSet) Len() int {
	return len(s.codes)
}

// Overlay returns a new set with add applied after remove has been taken
// out. The receiver is left untouched.
func (s CodeSet) Overlay(add, remove []Code) CodeSet {
	result := CodeSet{codes: make(map[Code]struct{}, len(s.codes)+len(add))}

	for code := range s.codes {
		result.codes[code] = struct{}{}
	}

	for _, code := range remove {
		delete(result.codes, code)
	}

	for _, code := range add {
		if code.IsZero() {
			continue
		}

		result.codes[code] = struct{}{}
	}

	return result
}

// Codes returns the set members sorted for stable output.
func (s CodeSet) Codes() []Code {
	result := make([]Code, 0, len(s.codes))

	for code := range s.codes {
		result = append(result, code)
	}

	slices.Sort(result)

	return result
}

// ParseCodeList splits a delimited text field (commas and/or whitespace)
// into normalized code tokens, dropping empties.
func ParseCodeList(raw string) []Code {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	result := make([]Code, 0, len(fields))

	for _, field := range fields {
		code := NormalizeCode(field)
		if code.IsZero() {
			continue
		}

		result = append(result, code)
	}

	return result
}
