// Package report orchestrates one processing run: merge the three exports,
// consolidate each group's codes and assemble the summary rows.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rs/xid"

	"pacp_coder/internal/domain/entity"
	"pacp_coder/internal/domain/service/consolidate"
	"pacp_coder/internal/domain/service/merge"
	"pacp_coder/internal/domain/value"
	"pacp_coder/pkg/contextx"
	"pacp_coder/pkg/logx"
	"pacp_coder/pkg/lox"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Service struct {
	baseAdd    []value.Code
	baseRemove []value.Code
}

func NewService() *Service {
	return &Service{}
}

// WithBaseOverlay sets a server-wide exclusion delta applied before the
// per-request one.
func (s *Service) WithBaseOverlay(add, remove []value.Code) *Service {
	s.baseAdd = add
	s.baseRemove = remove

	return s
}

// Build runs one complete batch: a configuration error aborts the whole run,
// data-quality problems degrade to sentinels per field.
func (s *Service) Build(
	ctx context.Context,
	tables merge.Tables,
	add, remove []value.Code,
) (entity.Report, error) {
	start := time.Now()

	excluded := value.DefaultExclusions().
		Overlay(s.baseAdd, s.baseRemove).
		Overlay(add, remove)

	groups, err := merge.Groups(tables)
	if err != nil {
		return entity.Report{}, fmt.Errorf("merge.Groups: %w", err)
	}

	rows := lox.Map(groups, func(group entity.InspectionGroup) entity.SummaryRow {
		codes := consolidate.Codes(group.Rows, excluded)
		codesEmitted.Add(float64(len(codes)))

		return entity.SummaryRow{
			InspectionID:   group.InspectionID,
			SegmentRef:     group.SegmentRef,
			InspectionDate: group.Meta.InspectionDate,
			Street:         group.Meta.Street,
			City:           group.Meta.City,
			LengthSurveyed: parseRounded(group.Meta.LengthSurveyed),
			Diameter:       group.Meta.Diameter,
			Material:       group.Meta.Material,
			UpstreamMH:     group.Meta.UpstreamMH,
			DownstreamMH:   group.Meta.DownstreamMH,
			STRScore:       value.QuickScore(group.Ratings.Structural),
			OMScore:        value.QuickScore(group.Ratings.OM),
			OverallScore:   parseRounded(group.Ratings.Overall),
			Codes:          codes,
		}
	})

	report := entity.Report{
		ID:        xid.New().String(),
		CreatedAt: time.Now(),
		Excluded:  excluded.Codes(),
		Rows:      rows,
	}

	reportsBuilt.Inc()
	groupsProcessed.Add(float64(len(groups)))
	buildDuration.Observe(time.Since(start).Seconds())

	logger(ctx).Info(
		"report built",
		slog.String(logx.FieldReportID, report.ID),
		slog.Int(logx.FieldGroupCount, len(rows)),
		slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
	)

	return report, nil
}

// parseRounded reads a numeric cell rounded to 2 decimals; unparseable or
// empty cells degrade to absent rather than failing the row.
func parseRounded(raw string) *float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil
	}

	rounded := math.Round(parsed*100) / 100 //nolint:mnd

	return &rounded
}
