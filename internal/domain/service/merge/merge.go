// Package merge joins the three inspection exports into per-segment row
// groups. Conditions drive the join: every condition row survives even when
// its inspection metadata or ratings are missing.
package merge

import (
	"fmt"
	"strings"

	"git.appkode.ru/pub/go/failure"

	"pacp_coder/internal/domain/entity"
	"pacp_coder/internal/infrastructure/tabular"
	"pacp_coder/pkg/errcodes"
)

// Column names as produced by the PACP export tooling.
const (
	ColumnInspectionID = "InspectionID"
	ColumnCode         = "PACP_Code"
	ColumnContinuous   = "Continuous"
	ColumnSegmentRef   = "Pipe_Segment_Reference"

	ColumnInspectionDate = "Inspection_Date"
	ColumnStreet         = "Street"
	ColumnCity           = "City"
	ColumnLengthSurveyed = "Length_Surveyed"
	ColumnHeight         = "Height" // pipe diameter in the inspections export
	ColumnMaterial       = "Material"
	ColumnUpstreamMH     = "Upstream_MH"
	ColumnDownstreamMH   = "Downstream_MH"

	ColumnSTQuickRating = "STQuickRating"
	ColumnOMQuickRating = "OMQuickRating"
	ColumnOverallRating = "OverallPipeRatingsIndex"
)

// Tables bundles the three parsed input exports of one run.
type Tables struct {
	Conditions  tabular.Table
	Inspections tabular.Table
	Ratings     tabular.Table
}

type groupKey struct {
	inspectionID string
	segmentRef   string
}

// Groups left-joins conditions onto inspections and ratings by inspection
// identity and partitions the result by (inspection, segment). Group order
// is first appearance in the conditions table; in-group row order is source
// order. A missing required column is a fatal configuration error.
func Groups(tables Tables) ([]entity.InspectionGroup, error) {
	condID, err := requiredColumn(tables.Conditions, "conditions", ColumnInspectionID)
	if err != nil {
		return nil, err
	}

	condCode, err := requiredColumn(tables.Conditions, "conditions", ColumnCode)
	if err != nil {
		return nil, err
	}

	inspID, err := requiredColumn(tables.Inspections, "inspections", ColumnInspectionID)
	if err != nil {
		return nil, err
	}

	segRef, err := requiredColumn(tables.Inspections, "inspections", ColumnSegmentRef)
	if err != nil {
		return nil, err
	}

	ratingID, err := requiredColumn(tables.Ratings, "ratings", ColumnInspectionID)
	if err != nil {
		return nil, err
	}

	condMarker := tables.Conditions.OptionalColumn(ColumnContinuous)

	inspectionRows := indexByID(inspID, tables.Inspections.RowCount())
	ratingRows := indexByID(ratingID, tables.Ratings.RowCount())

	meta := metaColumns{
		date:     tables.Inspections.OptionalColumn(ColumnInspectionDate),
		street:   tables.Inspections.OptionalColumn(ColumnStreet),
		city:     tables.Inspections.OptionalColumn(ColumnCity),
		length:   tables.Inspections.OptionalColumn(ColumnLengthSurveyed),
		height:   tables.Inspections.OptionalColumn(ColumnHeight),
		material: tables.Inspections.OptionalColumn(ColumnMaterial),
		upMH:     tables.Inspections.OptionalColumn(ColumnUpstreamMH),
		downMH:   tables.Inspections.OptionalColumn(ColumnDownstreamMH),
	}

	ratings := ratingColumns{
		structural: tables.Ratings.OptionalColumn(ColumnSTQuickRating),
		om:         tables.Ratings.OptionalColumn(ColumnOMQuickRating),
		overall:    tables.Ratings.OptionalColumn(ColumnOverallRating),
	}

	var (
		order  []groupKey
		groups = make(map[groupKey]*entity.InspectionGroup)
	)

	for row := 0; row < tables.Conditions.RowCount(); row++ {
		inspectionID := strings.TrimSpace(condID.Value(row))

		segmentRef := ""
		inspectionRow, joined := inspectionRows[inspectionID]

		if joined {
			segmentRef = strings.TrimSpace(segRef.Value(inspectionRow))
		}

		key := groupKey{inspectionID: inspectionID, segmentRef: segmentRef}

		group, ok := groups[key]
		if !ok {
			group = &entity.InspectionGroup{
				InspectionID: inspectionID,
				SegmentRef:   segmentRef,
			}

			if joined {
				group.Meta = meta.read(inspectionRow)
			}

			if ratingRow, ok := ratingRows[inspectionID]; ok {
				group.Ratings = ratings.read(ratingRow)
			}

			groups[key] = group
			order = append(order, key)
		}

		group.Rows = append(group.Rows, entity.Observation{
			Code:   condCode.Value(row),
			Marker: condMarker.Value(row),
		})
	}

	result := make([]entity.InspectionGroup, 0, len(order))
	for _, key := range order {
		result = append(result, *groups[key])
	}

	return result, nil
}

type metaColumns struct {
	date     tabular.Column
	street   tabular.Column
	city     tabular.Column
	length   tabular.Column
	height   tabular.Column
	material tabular.Column
	upMH     tabular.Column
	downMH   tabular.Column
}

func (m metaColumns) read(row int) entity.SegmentMeta {
	return entity.SegmentMeta{
		InspectionDate: m.date.Value(row),
		Street:         m.street.Value(row),
		City:           m.city.Value(row),
		LengthSurveyed: m.length.Value(row),
		Diameter:       m.height.Value(row),
		Material:       m.material.Value(row),
		UpstreamMH:     m.upMH.Value(row),
		DownstreamMH:   m.downMH.Value(row),
	}
}

type ratingColumns struct {
	structural tabular.Column
	om         tabular.Column
	overall    tabular.Column
}

func (r ratingColumns) read(row int) entity.RawRatings {
	return entity.RawRatings{
		Structural: r.structural.Value(row),
		OM:         r.om.Value(row),
		Overall:    r.overall.Value(row),
	}
}

// indexByID maps a normalized inspection identity to its row. The first row
// of a duplicated identity wins.
func indexByID(id tabular.Column, rowCount int) map[string]int {
	index := make(map[string]int, rowCount)

	for row := 0; row < rowCount; row++ {
		key := strings.TrimSpace(id.Value(row))
		if key == "" {
			continue
		}

		if _, ok := index[key]; !ok {
			index[key] = row
		}
	}

	return index
}

func requiredColumn(t tabular.Table, tableName, columnName string) (tabular.Column, error) {
	column, ok := t.Column(columnName)
	if !ok {
		return tabular.Column{}, failure.NewInvalidArgumentError(
			fmt.Sprintf("%s table: required column %q is missing", tableName, columnName),
			failure.WithCode(errcodes.MissingColumn),
			failure.WithDescription(fmt.Sprintf("Column %q is required in the %s export", columnName, tableName)),
		)
	}

	return column, nil
}
