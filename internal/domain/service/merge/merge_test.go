package merge_test

import (
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"pacp_coder/internal/domain/service/merge"
	"pacp_coder/internal/infrastructure/tabular"
	"pacp_coder/pkg/errcodes"
)

func testTables() merge.Tables {
	return merge.Tables{
		Conditions: tabular.New(
			[]string{"InspectionID", "PACP_Code", "Continuous"},
			[][]string{
				{"I-1", "CC", "S1"},
				{"I-1", "CC", "F1"},
				{"I-2", "FL", ""},
				{"I-1", "RPL", ""},
				{"I-3", "CM", ""}, // no inspection metadata, no ratings
			},
		),
		Inspections: tabular.New(
			[]string{
				"InspectionID", "Pipe_Segment_Reference", "Inspection_Date",
				"Street", "City", "Length_Surveyed", "Height", "Material",
				"Upstream_MH", "Downstream_MH",
			},
			[][]string{
				{"I-1", "PS-10", "2024-03-01", "Main St", "Springfield", "91.4", "200", "VCP", "MH-1", "MH-2"},
				{"I-2", "PS-11", "2024-03-02", "Oak Ave", "Springfield", "88.05", "250", "PVC", "MH-2", "MH-3"},
			},
		),
		Ratings: tabular.New(
			[]string{"InspectionID", "STQuickRating", "OMQuickRating", "OverallPipeRatingsIndex"},
			[][]string{
				{"I-1", "2", "3", "2.5"},
				{"I-2", "41", "0", "1.756"},
			},
		),
	}
}

func TestGroups(t *testing.T) {
	rq := require.New(t)

	groups, err := merge.Groups(testTables())
	rq.NoError(err)
	rq.Len(groups, 3)

	// Group order is first appearance in the conditions table.
	rq.Equal("I-1", groups[0].InspectionID)
	rq.Equal("PS-10", groups[0].SegmentRef)
	rq.Equal("I-2", groups[1].InspectionID)
	rq.Equal("I-3", groups[2].InspectionID)

	// In-group row order is source order.
	first := groups[0]
	rq.Len(first.Rows, 3)
	rq.Equal("CC", first.Rows[0].Code)
	rq.Equal("S1", first.Rows[0].Marker)
	rq.Equal("CC", first.Rows[1].Code)
	rq.Equal("F1", first.Rows[1].Marker)
	rq.Equal("RPL", first.Rows[2].Code)

	rq.Equal("2024-03-01", first.Meta.InspectionDate)
	rq.Equal("Main St", first.Meta.Street)
	rq.Equal("Springfield", first.Meta.City)
	rq.Equal("91.4", first.Meta.LengthSurveyed)
	rq.Equal("200", first.Meta.Diameter)
	rq.Equal("VCP", first.Meta.Material)
	rq.Equal("MH-1", first.Meta.UpstreamMH)
	rq.Equal("MH-2", first.Meta.DownstreamMH)
	rq.Equal("2", first.Ratings.Structural)
	rq.Equal("3", first.Ratings.OM)
	rq.Equal("2.5", first.Ratings.Overall)

	// Left join: a condition row without metadata still forms a group,
	// with absent scalars degraded to empty values.
	orphan := groups[2]
	rq.Equal("", orphan.SegmentRef)
	rq.Len(orphan.Rows, 1)
	rq.Equal("", orphan.Meta.Street)
	rq.Equal("", orphan.Ratings.Structural)
}

func TestGroupsRowCountMatchesDistinctPairs(t *testing.T) {
	rq := require.New(t)

	groups, err := merge.Groups(testTables())
	rq.NoError(err)

	seen := map[string]bool{}
	for _, g := range groups {
		key := g.InspectionID + "|" + g.SegmentRef
		rq.False(seen[key], "duplicate group %s", key)
		seen[key] = true
	}
	rq.Len(seen, 3)
}

func TestGroupsMissingRequiredColumn(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name   string
		mutate func(*merge.Tables)
	}{
		{
			name: "Conditions without InspectionID",
			mutate: func(tables *merge.Tables) {
				tables.Conditions = tabular.New([]string{"PACP_Code"}, nil)
			},
		},
		{
			name: "Conditions without PACP_Code",
			mutate: func(tables *merge.Tables) {
				tables.Conditions = tabular.New([]string{"InspectionID"}, nil)
			},
		},
		{
			name: "Inspections without segment reference",
			mutate: func(tables *merge.Tables) {
				tables.Inspections = tabular.New([]string{"InspectionID"}, nil)
			},
		},
		{
			name: "Ratings without InspectionID",
			mutate: func(tables *merge.Tables) {
				tables.Ratings = tabular.New([]string{"STQuickRating"}, nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			tables := testTables()
			tc.mutate(&tables)

			_, err := merge.Groups(tables)
			rq.Error(err)
			rq.True(failure.IsInvalidArgumentError(err))
			rq.Equal(errcodes.MissingColumn, failure.Code(err))
		})
	}
}

func TestGroupsOptionalColumnsDegrade(t *testing.T) {
	rq := require.New(t)

	tables := testTables()
	// Strip everything optional from the inspections export.
	tables.Inspections = tabular.New(
		[]string{"InspectionID", "Pipe_Segment_Reference"},
		[][]string{{"I-1", "PS-10"}, {"I-2", "PS-11"}},
	)
	tables.Conditions = tabular.New(
		[]string{"InspectionID", "PACP_Code"},
		[][]string{{"I-1", "CC"}},
	)

	groups, err := merge.Groups(tables)
	rq.NoError(err)
	rq.Len(groups, 1)
	rq.Equal("PS-10", groups[0].SegmentRef)
	rq.Equal("", groups[0].Meta.InspectionDate)
	rq.Equal("", groups[0].Rows[0].Marker)
}

func TestGroupsDuplicateInspectionRowFirstWins(t *testing.T) {
	rq := require.New(t)

	tables := testTables()
	tables.Inspections = tabular.New(
		[]string{"InspectionID", "Pipe_Segment_Reference", "Street"},
		[][]string{
			{"I-1", "PS-10", "Main St"},
			{"I-1", "PS-99", "Elm St"},
		},
	)

	groups, err := merge.Groups(tables)
	rq.NoError(err)
	rq.Equal("PS-10", groups[0].SegmentRef)
	rq.Equal("Main St", groups[0].Meta.Street)
}
