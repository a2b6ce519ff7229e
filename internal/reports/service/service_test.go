package service

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/suchithrkar/kci-upload-creation-tool/internal/casedata"
	"github.com/suchithrkar/kci-upload-creation-tool/internal/rules"
	"github.com/suchithrkar/kci-upload-creation-tool/platform/apperr"
	"github.com/suchithrkar/kci-upload-creation-tool/platform/logger"
)

var serviceTestNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func newTestReports(t *testing.T, store *casedata.Store) *Service {
	t.Helper()
	r := rules.Rules{
		TeamLeads: []rules.TeamLead{{Name: "Lena", Agents: []string{"jdoe"}}},
		Markets:   []rules.Market{{Name: "DACH", Countries: []string{"Germany"}}},
	}
	svc := New(store, r, 6, logger.New("development"))
	svc.now = func() time.Time { return serviceTestNow }
	return svc
}

func seedCaseExport(store *casedata.Store) {
	store.ReplaceCaseExport(
		[]casedata.Case{
			{
				CaseID:         "CAS-1",
				CustomerName:   "Acme",
				CreatedOn:      serviceTestNow.Add(-48 * time.Hour),
				Country:        "Germany",
				ResolutionCode: casedata.ResolutionOnsiteSolution,
				CaseOwner:      "jdoe",
			},
		},
		[]casedata.WorkOrder{
			{CaseID: "CAS-1", CreatedOn: serviceTestNow.Add(-47 * time.Hour), SystemStatus: "Completed", ResolutionNotes: "replaced fan"},
		},
		nil, nil, nil,
	)
}

func TestRepairCasesRequiresCaseExport(t *testing.T) {
	store := casedata.NewStore()
	svc := newTestReports(t, store)

	_, err := svc.RepairCases()
	if !apperr.Is(err, apperr.KindPrecondition) {
		t.Fatalf("err = %v, want precondition", err)
	}
}

func TestRepairCasesDerivation(t *testing.T) {
	store := casedata.NewStore()
	svc := newTestReports(t, store)
	seedCaseExport(store)

	result, err := svc.RepairCases()
	if err != nil {
		t.Fatalf("repair cases: %v", err)
	}
	if result.Count != 1 || len(result.Cases) != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
	rc := result.Cases[0]
	if rc.TL != "Lena" || rc.Market != "DACH" {
		t.Fatalf("rules not applied: %+v", rc)
	}
	if rc.OnsiteRFC != "Completed" || rc.WOClosureNotes != "replaced fan" {
		t.Fatalf("onsite fields not borrowed: %+v", rc)
	}
}

func TestClosedCasesPreconditions(t *testing.T) {
	store := casedata.NewStore()
	svc := newTestReports(t, store)

	if _, err := svc.ClosedCases(0); !apperr.Is(err, apperr.KindPrecondition) {
		t.Fatalf("err = %v, want precondition for missing export", err)
	}

	seedCaseExport(store)
	if _, err := svc.ClosedCases(0); !apperr.Is(err, apperr.KindPrecondition) {
		t.Fatalf("err = %v, want precondition for missing closed cases", err)
	}
}

func TestClosedCasesDefaultWindow(t *testing.T) {
	store := casedata.NewStore()
	svc := newTestReports(t, store)
	seedCaseExport(store)
	store.ReplaceClosedCases([]casedata.ClosedCase{
		{CaseID: "CAS-1", ModifiedBy: "jdoe", Owner: "asmith", ClosedOn: serviceTestNow.Add(-24 * time.Hour)},
	})

	result, err := svc.ClosedCases(0)
	if err != nil {
		t.Fatalf("closed cases: %v", err)
	}
	if result.Months != 6 {
		t.Fatalf("months = %d, want configured default 6", result.Months)
	}
	if result.Count != 1 || result.Cases[0].ClosedBy != "jdoe" {
		t.Fatalf("unexpected result: %+v", result)
	}

	narrow, err := svc.ClosedCases(3)
	if err != nil {
		t.Fatalf("closed cases: %v", err)
	}
	if narrow.Months != 3 {
		t.Fatalf("months = %d, want 3", narrow.Months)
	}
}

func TestCopyTextJoinsWithTrailingNewline(t *testing.T) {
	store := casedata.NewStore()
	svc := newTestReports(t, store)
	store.ReplaceCaseExport(
		[]casedata.Case{
			{CaseID: "CAS-7", CreatedOn: serviceTestNow.Add(-time.Hour), ResolutionCode: casedata.ResolutionOffsiteSolution},
		},
		nil, nil, nil,
		[]casedata.ServiceOrder{
			{CaseID: "CAS-7", SubmittedOn: serviceTestNow.Add(-time.Hour), OrderReferenceID: "ABC123-01"},
		},
	)

	body, err := svc.ServiceOrderCopyText()
	if err != nil {
		t.Fatalf("copy text: %v", err)
	}
	if body != "CAS-7,ABC123\n" {
		t.Fatalf("body = %q", body)
	}

	tracking, err := svc.TrackingURLCopyText()
	if err != nil {
		t.Fatalf("tracking text: %v", err)
	}
	if tracking != "" {
		t.Fatalf("tracking = %q, want empty", tracking)
	}
}

func TestExportRepairCasesWorkbook(t *testing.T) {
	store := casedata.NewStore()
	svc := newTestReports(t, store)
	seedCaseExport(store)

	data, err := svc.ExportRepairCases()
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open exported workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header plus one case", len(rows))
	}
	if rows[0][0] != "Case ID" || rows[1][0] != "CAS-1" {
		t.Fatalf("unexpected rows: %v", rows)
	}
	if !strings.Contains(strings.Join(rows[1], "|"), "Lena") {
		t.Fatalf("team lead missing from row: %v", rows[1])
	}
}
