package loader

import (
	"time"

	"github.com/suchithrkar/kci-upload-creation-tool/internal/casedata"
)

// Column names are the snake_case headers of the source exports.

// Cases decodes dump case records; rows without a case id are dropped.
func Cases(t Table) []casedata.Case {
	out := make([]casedata.Case, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		caseID := t.Cell(i, "case_id")
		if caseID == "" {
			continue
		}
		out = append(out, casedata.Case{
			CaseID:         caseID,
			CustomerName:   t.Cell(i, "customer_name"),
			CreatedOn:      timestampCell(t, i, "created_on"),
			CreatedBy:      t.Cell(i, "created_by"),
			Country:        t.Cell(i, "country"),
			ResolutionCode: t.Cell(i, "resolution_code"),
			CaseOwner:      t.Cell(i, "case_owner"),
			OTCCode:        t.Cell(i, "otc_code"),
			SerialNumber:   t.Cell(i, "serial_number"),
			ProductName:    t.Cell(i, "product_name"),
			EmailStatus:    t.Cell(i, "email_status"),
		})
	}
	return out
}

// WorkOrders decodes work order records.
func WorkOrders(t Table) []casedata.WorkOrder {
	out := make([]casedata.WorkOrder, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		caseID := t.Cell(i, "case_id")
		if caseID == "" {
			continue
		}
		out = append(out, casedata.WorkOrder{
			CaseID:          caseID,
			WorkOrderNumber: t.Cell(i, "work_order_number"),
			CreatedOn:       timestampCell(t, i, "created_on"),
			SystemStatus:    t.Cell(i, "system_status"),
			Workgroup:       t.Cell(i, "workgroup"),
			Country:         t.Cell(i, "country"),
			ResolutionNotes: t.Cell(i, "resolution_notes"),
		})
	}
	return out
}

// MaterialOrders decodes material order records.
func MaterialOrders(t Table) []casedata.MaterialOrder {
	out := make([]casedata.MaterialOrder, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		caseID := t.Cell(i, "case_id")
		if caseID == "" {
			continue
		}
		out = append(out, casedata.MaterialOrder{
			OrderNumber: t.Cell(i, "order_number"),
			CaseID:      caseID,
			CreatedOn:   timestampCell(t, i, "created_on"),
			OrderStatus: t.Cell(i, "order_status"),
		})
	}
	return out
}

// MaterialOrderLines decodes line items; their identifier is the order
// number rather than a case id.
func MaterialOrderLines(t Table) []casedata.MaterialOrderLine {
	out := make([]casedata.MaterialOrderLine, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		orderNumber := t.Cell(i, "order_number")
		if orderNumber == "" {
			continue
		}
		out = append(out, casedata.MaterialOrderLine{
			OrderNumber: orderNumber,
			LineName:    t.Cell(i, "line_name"),
			PartNumber:  t.Cell(i, "part_number"),
			Description: t.Cell(i, "description"),
			TrackingURL: t.Cell(i, "tracking_url"),
		})
	}
	return out
}

// ServiceOrders decodes service order records.
func ServiceOrders(t Table) []casedata.ServiceOrder {
	out := make([]casedata.ServiceOrder, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		caseID := t.Cell(i, "case_id")
		if caseID == "" {
			continue
		}
		out = append(out, casedata.ServiceOrder{
			CaseID:           caseID,
			SubmittedOn:      timestampCell(t, i, "submitted_on"),
			OrderReferenceID: t.Cell(i, "order_reference_id"),
		})
	}
	return out
}

// CSOStatuses decodes the offsite status feed.
func CSOStatuses(t Table) []casedata.CSOStatus {
	out := make([]casedata.CSOStatus, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		caseID := t.Cell(i, "case_id")
		if caseID == "" {
			continue
		}
		out = append(out, casedata.CSOStatus{
			CaseID:         caseID,
			CSO:            t.Cell(i, "cso"),
			Status:         t.Cell(i, "status"),
			TrackingNumber: t.Cell(i, "tracking_number"),
			RepairStatus:   t.Cell(i, "repair_status"),
		})
	}
	return out
}

// Deliveries decodes the delivery status feed.
func Deliveries(t Table) []casedata.DeliveryStatus {
	out := make([]casedata.DeliveryStatus, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		caseID := t.Cell(i, "case_id")
		if caseID == "" {
			continue
		}
		out = append(out, casedata.DeliveryStatus{
			CaseID:        caseID,
			CurrentStatus: t.Cell(i, "current_status"),
		})
	}
	return out
}

// ClosedCases decodes closed case records.
func ClosedCases(t Table) []casedata.ClosedCase {
	out := make([]casedata.ClosedCase, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		caseID := t.Cell(i, "case_id")
		if caseID == "" {
			continue
		}
		out = append(out, casedata.ClosedCase{
			CaseID:         caseID,
			CustomerName:   t.Cell(i, "customer_name"),
			CreatedOn:      timestampCell(t, i, "created_on"),
			CreatedBy:      t.Cell(i, "created_by"),
			ModifiedBy:     t.Cell(i, "modified_by"),
			ModifiedOn:     timestampCell(t, i, "modified_on"),
			ClosedOn:       timestampCell(t, i, "closed_on"),
			ClosedBy:       t.Cell(i, "closed_by"),
			Owner:          t.Cell(i, "owner"),
			Country:        t.Cell(i, "country"),
			ResolutionCode: t.Cell(i, "resolution_code"),
			CaseOwner:      t.Cell(i, "case_owner"),
			OTCCode:        t.Cell(i, "otc_code"),
		})
	}
	return out
}

func timestampCell(t Table, i int, column string) time.Time {
	ts, _ := ParseTimestamp(t.Cell(i, column))
	return ts
}
