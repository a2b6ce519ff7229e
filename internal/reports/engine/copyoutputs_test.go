package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/suchithrkar/kci-upload-creation-tool/internal/casedata"
)

func TestServiceOrderCopyListStripsReferenceSuffix(t *testing.T) {
	snap := casedata.Snapshot{
		Cases: []casedata.Case{baseCase("CAS-1", casedata.ResolutionOffsiteSolution)},
		ServiceOrders: []casedata.ServiceOrder{
			{CaseID: "CAS-1", SubmittedOn: testNow.Add(-2 * time.Hour), OrderReferenceID: "ABC123-01"},
		},
	}

	lines := BuildServiceOrderCopyList(snap)
	if len(lines) != 1 || lines[0] != "CAS-1,ABC123" {
		t.Fatalf("expected suffix stripped at first hyphen, got %+v", lines)
	}
}

func TestServiceOrderCopyListUsesLatestSubmission(t *testing.T) {
	snap := casedata.Snapshot{
		Cases: []casedata.Case{baseCase("CAS-1", casedata.ResolutionOffsiteSolution)},
		ServiceOrders: []casedata.ServiceOrder{
			{CaseID: "CAS-1", SubmittedOn: testNow.Add(-48 * time.Hour), OrderReferenceID: "OLD-1"},
			{CaseID: "CAS-1", SubmittedOn: testNow.Add(-time.Hour), OrderReferenceID: "NEW-1"},
		},
	}

	lines := BuildServiceOrderCopyList(snap)
	if len(lines) != 1 || lines[0] != "CAS-1,NEW" {
		t.Fatalf("expected latest service order, got %+v", lines)
	}
}

func TestServiceOrderCopyListExclusions(t *testing.T) {
	onsite := baseCase("CAS-1", casedata.ResolutionOnsiteSolution)
	delivered := baseCase("CAS-2", casedata.ResolutionOffsiteSolution)
	cancelled := baseCase("CAS-3", casedata.ResolutionOffsiteSolution)
	noOrders := baseCase("CAS-4", casedata.ResolutionOffsiteSolution)
	kept := baseCase("CAS-5", casedata.ResolutionOffsiteSolution)

	snap := casedata.Snapshot{
		Cases: []casedata.Case{onsite, delivered, cancelled, noOrders, kept},
		CSOStatuses: []casedata.CSOStatus{
			{CaseID: "CAS-2", Status: "Delivered"},
			{CaseID: "CAS-3", Status: "Order Cancelled, Not To Be Reopened"},
			{CaseID: "CAS-5", Status: "In Repair"},
		},
		ServiceOrders: []casedata.ServiceOrder{
			{CaseID: "CAS-1", SubmittedOn: testNow, OrderReferenceID: "X-1"},
			{CaseID: "CAS-2", SubmittedOn: testNow, OrderReferenceID: "Y-1"},
			{CaseID: "CAS-3", SubmittedOn: testNow, OrderReferenceID: "Z-1"},
			{CaseID: "CAS-5", SubmittedOn: testNow, OrderReferenceID: "K-1"},
		},
	}

	lines := BuildServiceOrderCopyList(snap)
	if len(lines) != 1 || lines[0] != "CAS-5,K" {
		t.Fatalf("expected only CAS-5 to survive the exclusions, got %+v", lines)
	}
}

func TestTrackingURLCopyListFromPrimaryLine(t *testing.T) {
	snap := casedata.Snapshot{
		Cases: []casedata.Case{baseCase("CAS-1", casedata.ResolutionPartsShipped)},
		MaterialOrders: []casedata.MaterialOrder{
			{OrderNumber: "ORD-1", CaseID: "CAS-1", CreatedOn: testNow.Add(-time.Hour), OrderStatus: "Closed"},
		},
		MaterialLines: []casedata.MaterialOrderLine{
			{OrderNumber: "ORD-1", LineName: "Line-1 - 1", PartNumber: "PN-1", Description: "Part - Widget", TrackingURL: "https://track.example/1Z999"},
		},
	}

	lines := BuildTrackingURLCopyList(snap)
	if len(lines) != 1 || lines[0] != "CAS-1 | https://track.example/1Z999" {
		t.Fatalf("expected primary-line tracking URL, got %+v", lines)
	}
}

func TestTrackingURLCopyListRequiresTrackableStatus(t *testing.T) {
	snap := casedata.Snapshot{
		Cases: []casedata.Case{baseCase("CAS-1", casedata.ResolutionPartsShipped)},
		MaterialOrders: []casedata.MaterialOrder{
			{OrderNumber: "ORD-1", CaseID: "CAS-1", CreatedOn: testNow.Add(-time.Hour), OrderStatus: "Ordered"},
		},
		MaterialLines: []casedata.MaterialOrderLine{
			{OrderNumber: "ORD-1", LineName: "Line-1 - 1", PartNumber: "PN-1", Description: "Part - Widget", TrackingURL: "https://track.example/1Z999"},
		},
	}

	if lines := BuildTrackingURLCopyList(snap); len(lines) != 0 {
		t.Fatalf("expected no line for an order still in Ordered, got %+v", lines)
	}
}

func TestTrackingURLCopyListUPSFallback(t *testing.T) {
	snap := casedata.Snapshot{
		Cases: []casedata.Case{baseCase("CAS-1", casedata.ResolutionOffsiteSolution)},
		CSOStatuses: []casedata.CSOStatus{
			{CaseID: "CAS-1", Status: "Delivered", TrackingNumber: "1Z999AA1"},
		},
	}

	want := "CAS-1 | " + fmt.Sprintf(upsTrackingURL, "1Z999AA1")
	lines := BuildTrackingURLCopyList(snap)
	if len(lines) != 1 || lines[0] != want {
		t.Fatalf("expected UPS fallback URL, got %+v", lines)
	}
}

func TestTrackingURLCopyListDeliveryExclusion(t *testing.T) {
	snap := casedata.Snapshot{
		Cases: []casedata.Case{
			baseCase("CAS-1", casedata.ResolutionOffsiteSolution),
			baseCase("CAS-2", casedata.ResolutionOffsiteSolution),
		},
		CSOStatuses: []casedata.CSOStatus{
			{CaseID: "CAS-1", Status: "Delivered", TrackingNumber: "1Z1"},
			{CaseID: "CAS-2", Status: "Delivered", TrackingNumber: "1Z2"},
		},
		Deliveries: []casedata.DeliveryStatus{
			{CaseID: "CAS-1", CurrentStatus: "Out For Delivery"},
			// "No Status Found" does not exclude.
			{CaseID: "CAS-2", CurrentStatus: "No Status Found"},
		},
	}

	lines := BuildTrackingURLCopyList(snap)
	if len(lines) != 1 || lines[0] != "CAS-2 | "+fmt.Sprintf(upsTrackingURL, "1Z2") {
		t.Fatalf("expected only CAS-2 (no real delivery status), got %+v", lines)
	}
}

// End-to-end scenario from the derivation chain: one parts-shipped case
// with a closed material order and a tracked primary line shows up both in
// the repair-case output and the tracking copy list.
func TestPartsShippedEndToEnd(t *testing.T) {
	c := baseCase("CAS-1", casedata.ResolutionPartsShipped)

	snap := casedata.Snapshot{
		Cases: []casedata.Case{c},
		MaterialOrders: []casedata.MaterialOrder{
			{OrderNumber: "ORD-1", CaseID: "CAS-1", CreatedOn: c.CreatedOn, OrderStatus: "closed"},
		},
		MaterialLines: []casedata.MaterialOrderLine{
			{OrderNumber: "ORD-1", LineName: "Line-1 - 1", PartNumber: "PN-42", Description: "Part - Widget", TrackingURL: "https://track.example/42"},
		},
	}

	repairs := BuildRepairCases(testNow, snap, testRules())
	if len(repairs) != 1 {
		t.Fatalf("expected 1 repair case, got %d", len(repairs))
	}
	rc := repairs[0]
	if rc.PartNumber != "PN-42" || rc.PartName != "Widget" || rc.CSRRFC != "closed" {
		t.Fatalf("unexpected derivation: %+v", rc)
	}

	lines := BuildTrackingURLCopyList(snap)
	if len(lines) != 1 || lines[0] != "CAS-1 | https://track.example/42" {
		t.Fatalf("expected tracking copy line for the same case, got %+v", lines)
	}
}
