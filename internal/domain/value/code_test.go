package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pacp_coder/internal/domain/value"
)

func TestNormalizeCode(t *testing.T) {
	rq := require.New(t)

	rq.Equal(value.Code("CC"), value.NormalizeCode("  cc "))
	rq.Equal(value.Code("FL"), value.NormalizeCode("Fl"))
	rq.True(value.NormalizeCode("   ").IsZero())
	rq.True(value.NormalizeCode("").IsZero())
}

func TestDefaultExclusions(t *testing.T) {
	rq := require.New(t)

	defaults := value.DefaultExclusions()

	rq.Equal(21, defaults.Len())
	rq.True(defaults.Contains("AMH"))
	rq.True(defaults.Contains("AOC"))
	rq.False(defaults.Contains("CC"))
}

func TestCodeSetOverlayDoesNotMutateDefault(t *testing.T) {
	rq := require.New(t)

	defaults := value.DefaultExclusions()

	overlaid := defaults.Overlay(
		[]value.Code{"CC", "FL"},
		[]value.Code{"AMH"},
	)

	rq.True(overlaid.Contains("CC"))
	rq.True(overlaid.Contains("FL"))
	rq.False(overlaid.Contains("AMH"))

	// Receiver and future defaults are untouched.
	rq.False(defaults.Contains("CC"))
	rq.True(defaults.Contains("AMH"))
	rq.True(value.DefaultExclusions().Contains("AMH"))
}

func TestCodeSetOverlayAddWinsOverRemove(t *testing.T) {
	rq := require.New(t)

	set := value.NewCodeSet("AA").Overlay(
		[]value.Code{"AA"},
		[]value.Code{"AA"},
	)

	rq.True(set.Contains("AA"))
}

func TestParseCodeList(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name  string
		input string
		codes []value.Code
	}{
		{
			name:  "Commas",
			input: "cc,fl,rpl",
			codes: []value.Code{"CC", "FL", "RPL"},
		},
		{
			name:  "Whitespace",
			input: "cc fl\trpl\ncm",
			codes: []value.Code{"CC", "FL", "RPL", "CM"},
		},
		{
			name:  "Mixed delimiters and empties",
			input: " cc,, fl ,\n",
			codes: []value.Code{"CC", "FL"},
		},
		{
			name:  "Empty input",
			input: "   ",
			codes: []value.Code{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rq.Equal(tc.codes, value.ParseCodeList(tc.input))
		})
	}
}

func TestCodeSetCodesSorted(t *testing.T) {
	rq := require.New(t)

	set := value.NewCodeSet("FL", "CC", "RPL")

	rq.Equal([]value.Code{"CC", "FL", "RPL"}, set.Codes())
}
