package models

type MedicalRecordFields struct {
	PatientID     string `json:"patientId"`
	DoctorID      string `json:"doctorId"`
	AppointmentID string `json:"appointmentId"`
	Diagnosis     string `json:"diagnosis"`
	Treatment     string `json:"treatment"`
	Prescription  string `json:"prescription"`
	Notes         string `json:"notes"`
}

// MedicalRecord is not backed by a collection; records arrive with export
// requests.
type MedicalRecord struct {
	Meta
	MedicalRecordFields
}

// MedicalRecordView is a record denormalised for display, with the patient
// and doctor names resolved.
type MedicalRecordView struct {
	MedicalRecord
	Date        string `json:"date"`
	PatientName string `json:"patientName"`
	DoctorName  string `json:"doctorName"`
}

// Matches searches patient name, doctor name and diagnosis.
func (v MedicalRecordView) Matches(term string) bool {
	return containsFold(term, v.PatientName, v.DoctorName, v.Diagnosis)
}
