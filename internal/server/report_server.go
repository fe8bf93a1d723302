package server

import (
	"context"
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	"github.com/rs/xid"

	"pacp_coder/internal/domain/entity"
	"pacp_coder/internal/domain/service/merge"
	"pacp_coder/internal/domain/service/report"
	"pacp_coder/internal/domain/value"
	"pacp_coder/internal/infrastructure/tabular"
	"pacp_coder/pkg/errcodes"
	"pacp_coder/pkg/httpx/reply"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Multipart part names of the three uploaded exports.
const (
	partConditions  = "conditions"
	partInspections = "inspections"
	partRatings     = "ratings"
)

type reportService interface {
	Build(ctx context.Context, tables merge.Tables, add, remove []value.Code) (entity.Report, error)
}

type reportStore interface {
	Put(report entity.Report)
	Get(id string) (entity.Report, bool)
}

type ReportServer struct {
	reports        reportService
	store          reportStore
	maxUploadBytes int64
}

func NewReportServer(
	reports reportService,
	store reportStore,
	maxUploadBytes int64,
) ReportServer {
	return ReportServer{
		reports:        reports,
		store:          store,
		maxUploadBytes: maxUploadBytes,
	}
}

func (s ReportServer) postV1Reports(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		return failure.NewInvalidArgumentError(
			fmt.Errorf("r.ParseMultipartForm: %w", err).Error(),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("Invalid multipart form"),
		)
	}

	tables, err := s.readTables(r)
	if err != nil {
		return fmt.Errorf("s.readTables: %w", err)
	}

	add := value.ParseCodeList(r.FormValue("exclude_add"))
	remove := value.ParseCodeList(r.FormValue("exclude_remove"))

	builtReport, err := s.reports.Build(ctx, tables, add, remove)
	if err != nil {
		return fmt.Errorf("reports.Build: %w", err)
	}

	s.store.Put(builtReport)

	reply.JSON(ctx, w, http.StatusCreated, newRESTReport(builtReport))

	return nil
}

func (s ReportServer) getV1Report(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	storedReport, err := s.storedReport(r)
	if err != nil {
		return err
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTReport(storedReport))

	return nil
}

func (s ReportServer) getV1ReportExport(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	storedReport, err := s.storedReport(r)
	if err != nil {
		return err
	}

	data, err := tabular.WriteWorkbook(report.ExportSheetName, report.ExportTable(storedReport))
	if err != nil {
		return fmt.Errorf("tabular.WriteWorkbook: %w", err)
	}

	reply.Attachment(ctx, w, report.ExportSheetName+".xlsx", xlsxContentType, data)

	return nil
}

func (s ReportServer) storedReport(r *http.Request) (entity.Report, error) {
	id := r.PathValue("id")

	if _, err := xid.FromString(id); err != nil {
		return entity.Report{}, failure.NewInvalidArgumentError(
			fmt.Errorf("xid.FromString: %w", err).Error(),
			failure.WithCode(errcodes.InvalidReportID),
			failure.WithDescription("Invalid report id"),
		)
	}

	storedReport, ok := s.store.Get(id)
	if !ok {
		return entity.Report{}, failure.NewNotFoundError(
			fmt.Sprintf("report %q not found", id),
			failure.WithCode(errcodes.ReportNotFound),
			failure.WithDescription("Report not found or expired"),
		)
	}

	return storedReport, nil
}

func (s ReportServer) readTables(r *http.Request) (merge.Tables, error) {
	conditions, err := s.readWorkbookPart(r, partConditions)
	if err != nil {
		return merge.Tables{}, err
	}

	inspections, err := s.readWorkbookPart(r, partInspections)
	if err != nil {
		return merge.Tables{}, err
	}

	ratings, err := s.readWorkbookPart(r, partRatings)
	if err != nil {
		return merge.Tables{}, err
	}

	return merge.Tables{
		Conditions:  conditions,
		Inspections: inspections,
		Ratings:     ratings,
	}, nil
}

func (s ReportServer) readWorkbookPart(r *http.Request, name string) (tabular.Table, error) {
	file, _, err := r.FormFile(name)
	if err != nil {
		return tabular.Table{}, failure.NewInvalidArgumentError(
			fmt.Errorf("r.FormFile(%q): %w", name, err).Error(),
			failure.WithCode(errcodes.MissingUploadPart),
			failure.WithDescription(fmt.Sprintf("Upload part %q is required", name)),
		)
	}
	defer file.Close() //nolint:errcheck

	table, err := tabular.ReadWorkbook(file)
	if err != nil {
		return tabular.Table{}, failure.NewInvalidArgumentError(
			fmt.Errorf("tabular.ReadWorkbook(%q): %w", name, err).Error(),
			failure.WithCode(errcodes.InvalidWorkbook),
			failure.WithDescription(fmt.Sprintf("Part %q is not a readable workbook", name)),
		)
	}

	return table, nil
}
