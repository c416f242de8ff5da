package export

import (
	"fmt"
	"strings"

	"github.com/harentsoaR/medicare-api/internal/models"
)

const TaxRate = 0.085

func (g *Generator) PatientReport(p models.Patient) ([]byte, error) {
	d := g.newDocument("PATIENT REPORT")
	g.generated(d)

	d.section("PATIENT INFORMATION")
	d.field("Name", p.FirstName+" "+p.LastName)
	d.field("Email", p.Email)
	d.field("Phone", p.Phone)
	d.field("Date of Birth", p.DateOfBirth)
	d.field("Gender", string(p.Gender))
	d.field("Address", orNotProvided(p.Address))
	d.field("Emergency Contact", orNotProvided(p.EmergencyContact))

	d.section("MEDICAL INFORMATION")
	d.field("Insurance", orNotProvided(p.Insurance))
	d.field("Patient ID", p.ID)
	d.text("Medical History:")
	d.paragraph(orDefault(p.MedicalHistory, "No medical history recorded"))

	return d.bytes()
}

func PatientReportName(p models.Patient) string {
	return fmt.Sprintf("patient-report-%s-%s.pdf", p.FirstName, p.LastName)
}

func (g *Generator) MedicalRecordReport(r models.MedicalRecordView) ([]byte, error) {
	d := g.newDocument("MEDICAL RECORD")
	g.generated(d)

	d.section("RECORD DETAILS")
	d.field("Record ID", r.ID)
	d.field("Date", r.Date)
	d.field("Patient", r.PatientName)
	d.field("Doctor", r.DoctorName)
	d.field("Diagnosis", r.Diagnosis)
	d.field("Treatment", r.Treatment)
	d.field("Prescription", r.Prescription)

	d.section("NOTES")
	d.paragraph(orDefault(r.Notes, "No additional notes"))

	return d.bytes()
}

func MedicalRecordReportName(r models.MedicalRecordView) string {
	return fmt.Sprintf("medical-record-%s-%s.pdf", r.ID, r.Date)
}

// InvoiceTotals splits amount evenly across services and adds tax.
type InvoiceTotals struct {
	PerService float64
	Subtotal   float64
	Tax        float64
	Total      float64
}

func ComputeInvoiceTotals(inv models.Invoice) InvoiceTotals {
	t := InvoiceTotals{
		Subtotal: inv.Amount,
		Tax:      inv.Amount * TaxRate,
		Total:    inv.Amount * (1 + TaxRate),
	}
	if n := len(inv.Services); n > 0 {
		t.PerService = inv.Amount / float64(n)
	}
	return t
}

func (g *Generator) Invoice(inv models.Invoice) ([]byte, error) {
	d := g.newDocument("MEDICAL INVOICE")
	d.text(HospitalAddress)
	d.text(HospitalContact)

	d.section("INVOICE DETAILS")
	d.field("Invoice ID", inv.ID)
	d.field("Date", inv.Date)
	d.field("Patient", inv.PatientName)
	d.field("Patient ID", inv.PatientID)
	d.field("Insurance", orNotProvided(inv.Insurance))

	totals := ComputeInvoiceTotals(inv)

	d.section("SERVICES PROVIDED")
	for i, service := range inv.Services {
		d.text(fmt.Sprintf("%d. %s - $%.2f", i+1, service, totals.PerService))
	}

	d.section("SUMMARY")
	d.field("Subtotal", fmt.Sprintf("$%.2f", totals.Subtotal))
	d.field("Tax (8.5%)", fmt.Sprintf("$%.2f", totals.Tax))
	d.field("Total Amount", fmt.Sprintf("$%.2f", totals.Total))
	d.field("Payment Status", strings.ToUpper(string(inv.Status)))

	return d.bytes()
}

func InvoiceName(inv models.Invoice) string {
	return fmt.Sprintf("invoice-%s.pdf", inv.ID)
}

func (g *Generator) ComprehensiveReport(s models.DashboardStats, ps models.PatientStatistics) ([]byte, error) {
	d := g.newDocument("COMPREHENSIVE HOSPITAL REPORT")
	g.generated(d)

	d.section("EXECUTIVE SUMMARY")
	d.paragraph("This comprehensive report provides an overview of hospital operations, " +
		"including patient care metrics, appointment activity and financial performance.")

	d.section("KEY PERFORMANCE INDICATORS")
	d.text(fmt.Sprintf("- Total Patients: %d", s.TotalPatients))
	d.text(fmt.Sprintf("- Total Doctors: %d", s.TotalDoctors))
	d.text(fmt.Sprintf("- Today's Appointments: %d", s.TodayAppointments))
	d.text(fmt.Sprintf("- Pending Appointments: %d", s.PendingAppointments))
	d.text(fmt.Sprintf("- Completed Appointments: %d", s.CompletedAppointments))
	d.text(fmt.Sprintf("- Revenue: $%.2f", s.Revenue))

	d.section("PATIENT CARE METRICS")
	d.text(fmt.Sprintf("- Male Patients: %d", ps.MalePatients))
	d.text(fmt.Sprintf("- Female Patients: %d", ps.FemalePatients))
	d.text(fmt.Sprintf("- Other Patients: %d", ps.OtherPatients))
	d.text(fmt.Sprintf("- Average Age: %.1f", ps.AverageAge))

	return d.bytes()
}

func (g *Generator) ComprehensiveReportName() string {
	return fmt.Sprintf("comprehensive-hospital-report-%s.pdf", g.Now().UTC().Format("2006-01-02"))
}
