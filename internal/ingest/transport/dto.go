// Package transport defines the request/response DTOs for upload endpoints.
package transport

// CaseExportResponse reports the row counts loaded from each sheet of a
// case export workbook.
type CaseExportResponse struct {
	Cases              int `json:"cases"`
	WorkOrders         int `json:"workOrders"`
	MaterialOrders     int `json:"materialOrders"`
	MaterialOrderLines int `json:"materialOrderLines"`
	ServiceOrders      int `json:"serviceOrders"`
}

// UploadResponse reports the row count loaded from a single-table upload.
type UploadResponse struct {
	DataSet string `json:"dataSet"`
	Rows    int    `json:"rows"`
}
