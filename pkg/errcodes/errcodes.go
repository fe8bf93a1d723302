package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Report pipeline codes.
	ReportNotFound     failure.ErrorCode = "ReportNotFound"
	InvalidReportID    failure.ErrorCode = "InvalidReportID"
	MissingUploadPart  failure.ErrorCode = "MissingUploadPart"
	InvalidWorkbook    failure.ErrorCode = "InvalidWorkbook"
	MissingColumn      failure.ErrorCode = "MissingColumn"
	InvalidCodeList    failure.ErrorCode = "InvalidCodeList"
	ExportFailed       failure.ErrorCode = "ExportFailed"
	EmptyConditions    failure.ErrorCode = "EmptyConditions"
	InvalidExclusions  failure.ErrorCode = "InvalidExclusions"
	ReportBuildAborted failure.ErrorCode = "ReportBuildAborted"
)
