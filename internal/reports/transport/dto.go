// Package transport defines the request/response DTOs for report endpoints.
package transport

import "github.com/suchithrkar/kci-upload-creation-tool/internal/casedata"

// ClosedCasesRequest selects the trailing window for the closed-case
// report. Months of zero falls back to the configured default.
type ClosedCasesRequest struct {
	Months int `json:"months" validate:"omitempty,gte=1,lte=24"`
}

// RepairCasesResponse wraps the derived repair-case report.
type RepairCasesResponse struct {
	Count int                   `json:"count"`
	Cases []casedata.RepairCase `json:"cases"`
}

// ClosedCasesResponse wraps the derived closed-case report.
type ClosedCasesResponse struct {
	Count  int                         `json:"count"`
	Months int                         `json:"months"`
	Cases  []casedata.ClosedCaseReport `json:"cases"`
}
