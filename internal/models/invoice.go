package models

type InvoiceStatus string

const (
	InvoicePaid    InvoiceStatus = "paid"
	InvoicePending InvoiceStatus = "pending"
	InvoiceOverdue InvoiceStatus = "overdue"
)

type Invoice struct {
	ID          string        `json:"id" binding:"required"`
	PatientID   string        `json:"patientId"`
	PatientName string        `json:"patientName" binding:"required"`
	Date        string        `json:"date" binding:"required"`
	Amount      float64       `json:"amount" binding:"gte=0"`
	Status      InvoiceStatus `json:"status" binding:"required,oneof=paid pending overdue"`
	Services    []string      `json:"services" binding:"required,min=1"`
	Insurance   string        `json:"insurance"`
}
