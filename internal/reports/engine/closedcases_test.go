package engine

import (
	"testing"
	"time"

	"github.com/suchithrkar/kci-upload-creation-tool/internal/casedata"
)

func closedCase(caseID, modifiedBy string, closedOn time.Time) casedata.ClosedCase {
	return casedata.ClosedCase{
		CaseID:         caseID,
		CustomerName:   "Acme GmbH",
		CreatedOn:      closedOn.Add(-72 * time.Hour),
		CreatedBy:      "intake.bot",
		ModifiedBy:     modifiedBy,
		ModifiedOn:     closedOn,
		ClosedOn:       closedOn,
		Owner:          "alice.brown",
		Country:        "US",
		ResolutionCode: casedata.ResolutionOnsiteSolution,
		CaseOwner:      "alice.brown",
		OTCCode:        "OTC-9",
	}
}

func repairFor(caseID string) casedata.RepairCase {
	return casedata.RepairCase{CaseID: caseID, TL: "Dana Scott", SBD: SBDMet, Market: "North America"}
}

func TestClosedCaseReportBorrowsRepairFields(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

	out := BuildClosedCaseReports(now,
		[]casedata.ClosedCase{closedCase("CAS-1", "jane.doe", now.Add(-48*time.Hour))},
		[]casedata.RepairCase{repairFor("CAS-1")},
		6,
	)
	if len(out) != 1 {
		t.Fatalf("expected 1 report, got %d", len(out))
	}

	report := out[0]
	if report.TL != "Dana Scott" || report.SBD != SBDMet || report.Market != "North America" {
		t.Fatalf("expected borrowed repair-case fields, got %+v", report)
	}
	if report.ClosedBy != "jane.doe" {
		t.Fatalf("expected modified-by verbatim for a regular agent, got %q", report.ClosedBy)
	}
}

func TestClosedCaseReportCutoffExcludesOldCases(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

	// Cutoff for 6 months back is 2026-02-01; a January close is out even
	// with a matching repair case.
	old := closedCase("CAS-1", "jane.doe", time.Date(2026, 1, 31, 23, 59, 0, 0, time.UTC))
	edge := closedCase("CAS-2", "jane.doe", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))

	out := BuildClosedCaseReports(now,
		[]casedata.ClosedCase{old, edge},
		[]casedata.RepairCase{repairFor("CAS-1"), repairFor("CAS-2")},
		6,
	)
	if len(out) != 1 || out[0].CaseID != "CAS-2" {
		t.Fatalf("expected only the on-cutoff case, got %+v", out)
	}
}

func TestClosedCaseReportCutoffYearRollover(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	// 6 months back from March 2026 is September 2025.
	kept := closedCase("CAS-1", "jane.doe", time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC))
	dropped := closedCase("CAS-2", "jane.doe", time.Date(2025, 8, 31, 12, 0, 0, 0, time.UTC))

	out := BuildClosedCaseReports(now,
		[]casedata.ClosedCase{kept, dropped},
		[]casedata.RepairCase{repairFor("CAS-1"), repairFor("CAS-2")},
		6,
	)
	if len(out) != 1 || out[0].CaseID != "CAS-1" {
		t.Fatalf("expected year rollover cutoff at 2025-09-01, got %+v", out)
	}
}

func TestClosedCaseReportRequiresRepairCase(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

	out := BuildClosedCaseReports(now,
		[]casedata.ClosedCase{closedCase("CAS-1", "jane.doe", now.Add(-time.Hour))},
		nil,
		6,
	)
	if len(out) != 0 {
		t.Fatalf("expected no reports without a matching repair case, got %+v", out)
	}
}

func TestClosedByAutoClose(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

	cc := closedCase("CAS-1", "# CrmWebJobUser-Prod", now.Add(-time.Hour))
	cc.Owner = "someone.else"

	out := BuildClosedCaseReports(now, []casedata.ClosedCase{cc}, []casedata.RepairCase{repairFor("CAS-1")}, 6)
	if out[0].ClosedBy != "CRM Auto Closed" {
		t.Fatalf("expected CRM Auto Closed regardless of owner, got %q", out[0].ClosedBy)
	}
}

func TestClosedBySystemActorsUseOwner(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

	for _, actor := range []string{
		"# MSFT-ServiceSystemAdmin",
		"# CrmEEGUser-Prod",
		"# MSFT-ServiceSystemAdminDev",
		"SYSTEM",
	} {
		cc := closedCase("CAS-1", actor, now.Add(-time.Hour))
		out := BuildClosedCaseReports(now, []casedata.ClosedCase{cc}, []casedata.RepairCase{repairFor("CAS-1")}, 6)
		if out[0].ClosedBy != "alice.brown" {
			t.Fatalf("actor %q: expected owner as closed-by, got %q", actor, out[0].ClosedBy)
		}
	}
}

func TestClosedCaseReportDefaultWindowOnNonPositiveMonths(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

	// A close 3 months ago is inside the default 6-month window.
	cc := closedCase("CAS-1", "jane.doe", now.AddDate(0, -3, 0))
	out := BuildClosedCaseReports(now, []casedata.ClosedCase{cc}, []casedata.RepairCase{repairFor("CAS-1")}, 0)
	if len(out) != 1 {
		t.Fatalf("expected default window to apply, got %+v", out)
	}
}
