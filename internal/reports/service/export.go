package service

import (
	"bytes"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/suchithrkar/kci-upload-creation-tool/internal/casedata"
	"github.com/suchithrkar/kci-upload-creation-tool/internal/reports/engine"
	"github.com/suchithrkar/kci-upload-creation-tool/platform/apperr"
)

const exportSheet = "Repair Cases"

var exportHeader = []interface{}{
	"Case ID", "Customer Name", "Created On", "Created By", "Country",
	"Resolution Code", "Case Owner", "OTC Code", "CA Group", "TL", "SBD",
	"Onsite RFC", "CSR RFC", "Bench RFC", "Market", "WO Closure Notes",
	"Tracking Status", "Part Number", "Part Name", "Serial Number",
	"Product Name", "Email Status", "DNAP",
}

// ExportRepairCases renders the repair-case report as an xlsx workbook.
func (s *Service) ExportRepairCases() ([]byte, error) {
	snap := s.store.Snapshot()
	if len(snap.Cases) == 0 {
		return nil, apperr.Precondition(msgCaseExportNotLoaded)
	}
	cases := engine.BuildRepairCases(s.now(), snap, s.rules)

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to render export workbook", err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to render export workbook", err)
	}
	for i, rc := range cases {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "failed to render export workbook", err)
		}
		row := exportRow(rc)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "failed to render export workbook", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to render export workbook", err)
	}
	return buf.Bytes(), nil
}

func exportRow(rc casedata.RepairCase) []interface{} {
	return []interface{}{
		rc.CaseID, rc.CustomerName, formatExportTime(rc.CreatedOn), rc.CreatedBy,
		rc.Country, rc.ResolutionCode, rc.CaseOwner, rc.OTCCode, rc.CAGroup,
		rc.TL, rc.SBD, rc.OnsiteRFC, rc.CSRRFC, rc.BenchRFC, rc.Market,
		rc.WOClosureNotes, rc.TrackingStatus, rc.PartNumber, rc.PartName,
		rc.SerialNumber, rc.ProductName, rc.EmailStatus, rc.DNAP,
	}
}

func formatExportTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}
