package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pacp_coder/internal/domain/value"
)

func TestQuickScore(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name  string
		input string
		score string
	}{
		{
			name:  "Plain digit",
			input: "2",
			score: "0002",
		},
		{
			name:  "Float cell keeps integer part",
			input: "3.0",
			score: "0003",
		},
		{
			name:  "Digits embedded in other characters",
			input: "grade 41b",
			score: "0041",
		},
		{
			name:  "Run longer than four keeps first four",
			input: "123456",
			score: "1234",
		},
		{
			name:  "Exactly four",
			input: "4021",
			score: "4021",
		},
		{
			name:  "No digits",
			input: "n/a",
			score: "0000",
		},
		{
			name:  "Empty cell",
			input: "",
			score: "0000",
		},
		{
			name:  "Whitespace padded",
			input: "  7  ",
			score: "0007",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rq.Equal(tc.score, value.QuickScore(tc.input))
		})
	}
}
