// Package service implements the upload ingestion business logic.
package service

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/suchithrkar/kci-upload-creation-tool/internal/casedata"
	"github.com/suchithrkar/kci-upload-creation-tool/internal/ingest/loader"
	"github.com/suchithrkar/kci-upload-creation-tool/internal/ingest/transport"
	"github.com/suchithrkar/kci-upload-creation-tool/platform/apperr"
	"github.com/suchithrkar/kci-upload-creation-tool/platform/logger"
)

const (
	msgUnsupportedWorkbook = "unsupported file type, expected .xlsx or .xls"
	msgUnsupportedTable    = "unsupported file type, expected .xlsx, .xls or .csv"
	msgUnreadableFile      = "file could not be read"
	msgNoDataRows          = "file contains no data rows"
)

// Service parses uploaded files and replaces data sets in the store.
type Service struct {
	store *casedata.Store
	log   *logger.Logger
}

// New creates a new ingest service.
func New(store *casedata.Store, log *logger.Logger) *Service {
	return &Service{store: store, log: log}
}

// IngestCaseExport parses a case export workbook and replaces the case,
// work order, material order, line item, and service order data sets in a
// single swap. Sheets absent from the workbook load as empty sets.
func (s *Service) IngestCaseExport(filename string, r io.Reader) (transport.CaseExportResponse, error) {
	if !isWorkbook(filename) {
		return transport.CaseExportResponse{}, apperr.BadRequest(msgUnsupportedWorkbook)
	}

	wb, err := loader.OpenWorkbook(r)
	if err != nil {
		return transport.CaseExportResponse{}, s.unreadable("open case export workbook", err)
	}
	defer wb.Close()

	dump, err := wb.Sheet(loader.SheetDump)
	if err != nil {
		return transport.CaseExportResponse{}, s.unreadable("read dump sheet", err)
	}
	wo, err := wb.Sheet(loader.SheetWO)
	if err != nil {
		return transport.CaseExportResponse{}, s.unreadable("read work order sheet", err)
	}
	mo, err := wb.Sheet(loader.SheetMO)
	if err != nil {
		return transport.CaseExportResponse{}, s.unreadable("read material order sheet", err)
	}
	moItems, err := wb.Sheet(loader.SheetMOItems)
	if err != nil {
		return transport.CaseExportResponse{}, s.unreadable("read material order items sheet", err)
	}
	so, err := wb.Sheet(loader.SheetSO)
	if err != nil {
		return transport.CaseExportResponse{}, s.unreadable("read service order sheet", err)
	}

	cases := loader.Cases(dump)
	if len(cases) == 0 {
		return transport.CaseExportResponse{}, apperr.Validation(msgNoDataRows)
	}
	workOrders := loader.WorkOrders(wo)
	materialOrders := loader.MaterialOrders(mo)
	lines := loader.MaterialOrderLines(moItems)
	serviceOrders := loader.ServiceOrders(so)

	s.store.ReplaceCaseExport(cases, workOrders, materialOrders, lines, serviceOrders)
	s.log.UploadEvent("case-export", filename, len(cases))

	return transport.CaseExportResponse{
		Cases:              len(cases),
		WorkOrders:         len(workOrders),
		MaterialOrders:     len(materialOrders),
		MaterialOrderLines: len(lines),
		ServiceOrders:      len(serviceOrders),
	}, nil
}

// IngestClosedCases parses a closed-case table and replaces the closed
// case data set.
func (s *Service) IngestClosedCases(filename string, r io.Reader) (transport.UploadResponse, error) {
	table, err := s.parseTable(filename, r)
	if err != nil {
		return transport.UploadResponse{}, err
	}

	closed := loader.ClosedCases(table)
	if len(closed) == 0 {
		return transport.UploadResponse{}, apperr.Validation(msgNoDataRows)
	}

	s.store.ReplaceClosedCases(closed)
	s.log.UploadEvent("closed-cases", filename, len(closed))
	return transport.UploadResponse{DataSet: "closed-cases", Rows: len(closed)}, nil
}

// IngestCSOStatuses parses the offsite status feed and replaces the CSO
// status data set.
func (s *Service) IngestCSOStatuses(filename string, r io.Reader) (transport.UploadResponse, error) {
	table, err := s.parseTable(filename, r)
	if err != nil {
		return transport.UploadResponse{}, err
	}

	statuses := loader.CSOStatuses(table)
	if len(statuses) == 0 {
		return transport.UploadResponse{}, apperr.Validation(msgNoDataRows)
	}

	s.store.ReplaceCSOStatuses(statuses)
	s.log.UploadEvent("cso-status", filename, len(statuses))
	return transport.UploadResponse{DataSet: "cso-status", Rows: len(statuses)}, nil
}

// IngestDeliveries parses the delivery status feed and replaces the
// delivery data set.
func (s *Service) IngestDeliveries(filename string, r io.Reader) (transport.UploadResponse, error) {
	table, err := s.parseTable(filename, r)
	if err != nil {
		return transport.UploadResponse{}, err
	}

	deliveries := loader.Deliveries(table)
	if len(deliveries) == 0 {
		return transport.UploadResponse{}, apperr.Validation(msgNoDataRows)
	}

	s.store.ReplaceDeliveries(deliveries)
	s.log.UploadEvent("delivery-status", filename, len(deliveries))
	return transport.UploadResponse{DataSet: "delivery-status", Rows: len(deliveries)}, nil
}

// ClearSession drops every loaded data set, ending the session.
func (s *Service) ClearSession() {
	s.store.Clear()
	s.log.Info("session cleared")
}

// parseTable reads a single-table upload, dispatching on file extension.
func (s *Service) parseTable(filename string, r io.Reader) (loader.Table, error) {
	switch ext(filename) {
	case ".csv":
		table, err := loader.ParseCSV(r)
		if err != nil {
			return loader.Table{}, s.unreadable("parse "+filename, err)
		}
		return table, nil
	case ".xlsx", ".xls":
		wb, err := loader.OpenWorkbook(r)
		if err != nil {
			return loader.Table{}, s.unreadable("open "+filename, err)
		}
		defer wb.Close()

		table, err := wb.FirstSheet()
		if err != nil {
			return loader.Table{}, s.unreadable("read "+filename, err)
		}
		return table, nil
	default:
		return loader.Table{}, apperr.BadRequest(msgUnsupportedTable)
	}
}

// unreadable logs a parse failure and converts it to the client error.
func (s *Service) unreadable(operation string, err error) *apperr.Error {
	s.log.DataError(operation, err)
	return apperr.Wrap(apperr.KindBadRequest, msgUnreadableFile, err)
}

func isWorkbook(filename string) bool {
	switch ext(filename) {
	case ".xlsx", ".xls":
		return true
	}
	return false
}

func ext(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}
