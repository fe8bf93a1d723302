// Package consolidate collapses the raw observation rows of one inspection
// group into a deduplicated, annotated code list. Continuous defects are
// recorded in the source as an S/F marker pair sharing a suffix ("S1"/"F1");
// a matched pair is consolidated into one "©" entry, everything else is
// counted by simple repetition.
package consolidate

import (
	"fmt"

	"pacp_coder/internal/domain/entity"
	"pacp_coder/internal/domain/value"
)

type survivor struct {
	code   value.Code
	marker value.ContinuityMarker
}

type pairKey struct {
	code   value.Code
	suffix string
}

// Codes is a pure function of (rows, excluded). The result list holds one
// entry per distinct (code, category) in first-encounter order, where
// category is continuous ("CODE ©", "CODE ©X<pairs>") or ordinary (bare
// code, "CODE X<count>"). Rows whose normalized code is empty or excluded
// never contribute to pairing or counting.
//
// On duplicate (code, suffix) marker keys the last row wins the lookup slot
// and earlier rows fall through to the ordinary category. An ordinary entry
// keeps its X1 annotation when the same code also formed continuous pairs,
// so the two entries stay distinguishable.
func Codes(rows []entity.Observation, excluded value.CodeSet) []string {
	survivors := make([]survivor, 0, len(rows))

	for _, row := range rows {
		code := value.NormalizeCode(row.Code)
		if code.IsZero() || excluded.Contains(code) {
			continue
		}

		survivors = append(survivors, survivor{
			code:   code,
			marker: value.ParseMarker(row.Marker),
		})
	}

	if len(survivors) == 0 {
		return nil
	}

	startRows := make(map[pairKey]int)
	finishRows := make(map[pairKey]int)

	for i, s := range survivors {
		key := pairKey{code: s.code, suffix: s.marker.Suffix()}

		switch {
		case s.marker.IsStart():
			startRows[key] = i
		case s.marker.IsFinish():
			finishRows[key] = i
		}
	}

	consumed := make(map[int]struct{})
	continuousPairs := make(map[value.Code]int)

	for key, startIdx := range startRows {
		finishIdx, ok := finishRows[key]
		if !ok {
			continue
		}

		continuousPairs[key.code]++
		consumed[startIdx] = struct{}{}
		consumed[finishIdx] = struct{}{}
	}

	// Unmatched S/F rows are ordinary occurrences, not specially flagged.
	ordinaryCounts := make(map[value.Code]int)

	for i, s := range survivors {
		if _, ok := consumed[i]; !ok {
			ordinaryCounts[s.code]++
		}
	}

	final := make([]string, 0, len(survivors))
	seenContinuous := make(map[value.Code]struct{})
	seenOrdinary := make(map[value.Code]struct{})

	for i, s := range survivors {
		if _, ok := consumed[i]; ok {
			if _, seen := seenContinuous[s.code]; seen {
				continue
			}

			seenContinuous[s.code] = struct{}{}

			if pairs := continuousPairs[s.code]; pairs > 1 {
				final = append(final, fmt.Sprintf("%s ©X%d", s.code, pairs))
			} else {
				final = append(final, fmt.Sprintf("%s ©", s.code))
			}

			continue
		}

		if _, seen := seenOrdinary[s.code]; seen {
			continue
		}

		seenOrdinary[s.code] = struct{}{}

		count := ordinaryCounts[s.code]
		if count == 1 && continuousPairs[s.code] == 0 {
			final = append(final, s.code.String())
		} else {
			final = append(final, fmt.Sprintf("%s X%d", s.code, count))
		}
	}

	return final
}
