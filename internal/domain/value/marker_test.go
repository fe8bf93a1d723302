package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pacp_coder/internal/domain/value"
)

func TestParseMarker(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name   string
		input  string
		start  bool
		finish bool
		suffix string
	}{
		{
			name:   "Start",
			input:  "S1",
			start:  true,
			suffix: "1",
		},
		{
			name:   "Finish",
			input:  "F12",
			finish: true,
			suffix: "12",
		},
		{
			name:   "Lower case with whitespace",
			input:  " s3 ",
			start:  true,
			suffix: "3",
		},
		{
			name:  "Bare start letter",
			input: "S",
			start: true,
		},
		{
			name:  "Empty",
			input: "",
		},
		{
			name:  "Whitespace only",
			input: "   ",
		},
		{
			name:  "Unrelated token",
			input: "X1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			marker := value.ParseMarker(tc.input)

			rq.Equal(tc.start, marker.IsStart())
			rq.Equal(tc.finish, marker.IsFinish())
			rq.Equal(tc.suffix, marker.Suffix())
		})
	}
}

func TestParseMarkerSuffixIsOpaque(t *testing.T) {
	rq := require.New(t)

	// "01" and "1" are distinct suffixes, no numeric interpretation.
	rq.NotEqual(value.ParseMarker("S01").Suffix(), value.ParseMarker("S1").Suffix())
}
