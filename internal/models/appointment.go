package models

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no-show"
)

// AppointmentFields references a patient and a doctor by id. The references
// are never checked against their collections.
type AppointmentFields struct {
	PatientID string            `json:"patientId" binding:"required"`
	DoctorID  string            `json:"doctorId" binding:"required"`
	Date      string            `json:"date" binding:"required,datetime=2006-01-02"`
	Time      string            `json:"time"`
	Status    AppointmentStatus `json:"status" binding:"required,oneof=scheduled completed cancelled no-show"`
	Reason    string            `json:"reason"`
	Notes     string            `json:"notes"`
}

type Appointment struct {
	Meta
	AppointmentFields
}

func (a Appointment) Metadata() Meta { return a.Meta }

func (a Appointment) WithMeta(m Meta) Appointment {
	a.Meta = m
	return a
}

// Matches searches the reason and the raw patient id.
func (a Appointment) Matches(term string) bool {
	return containsFold(term, a.Reason, a.PatientID)
}

func (f AppointmentFields) ApplyTo(a Appointment) Appointment {
	a.AppointmentFields = f
	return a
}

type AppointmentPatch struct {
	PatientID *string            `json:"patientId" binding:"omitempty,min=1"`
	DoctorID  *string            `json:"doctorId" binding:"omitempty,min=1"`
	Date      *string            `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Time      *string            `json:"time"`
	Status    *AppointmentStatus `json:"status" binding:"omitempty,oneof=scheduled completed cancelled no-show"`
	Reason    *string            `json:"reason"`
	Notes     *string            `json:"notes"`
}

func (ap AppointmentPatch) ApplyTo(a Appointment) Appointment {
	setString(&a.PatientID, ap.PatientID)
	setString(&a.DoctorID, ap.DoctorID)
	setString(&a.Date, ap.Date)
	setString(&a.Time, ap.Time)
	if ap.Status != nil {
		a.Status = *ap.Status
	}
	setString(&a.Reason, ap.Reason)
	setString(&a.Notes, ap.Notes)
	return a
}

// StatusPatch only moves an appointment to the given status.
func StatusPatch(s AppointmentStatus) AppointmentPatch {
	return AppointmentPatch{Status: &s}
}
