package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestMatches(t *testing.T) {
	p := Patient{PatientFields: PatientFields{FirstName: "Sarah", LastName: "Johnson", Email: "sarah.johnson@email.com", Insurance: "Aetna"}}
	d := Doctor{DoctorFields: DoctorFields{FirstName: "Emily", LastName: "Wilson", Specialization: "Cardiology", Department: "Cardiac Surgery"}}
	a := Appointment{AppointmentFields: AppointmentFields{PatientID: "17", Reason: "Regular checkup", Notes: "chest pain"}}
	r := MedicalRecordView{PatientName: "John Doe", DoctorName: "Dr. Emily Wilson", MedicalRecord: MedicalRecord{MedicalRecordFields: MedicalRecordFields{Diagnosis: "Hypertension"}}}

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"patient last name ignores case", p.Matches("JOHN"), true},
		{"patient email", p.Matches("@email"), true},
		{"patient insurance is not searched", p.Matches("aetna"), false},
		{"empty term matches", p.Matches(""), true},
		{"doctor specialization", d.Matches("cardio"), true},
		{"doctor department is not searched", d.Matches("surgery"), false},
		{"appointment reason", a.Matches("CHECKUP"), true},
		{"appointment raw patient id", a.Matches("17"), true},
		{"appointment notes are not searched", a.Matches("chest"), false},
		{"record doctor name", r.Matches("wilson"), true},
		{"record diagnosis", r.Matches("tension"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestFieldsReplaceEverythingButMeta(t *testing.T) {
	meta := Meta{ID: "1", CreatedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)}
	p := Patient{Meta: meta, PatientFields: PatientFields{FirstName: "John", LastName: "Doe", Insurance: "Cigna"}}

	out := PatientFields{FirstName: "Jon", LastName: "Doe"}.ApplyTo(p)

	assert.Equal(t, meta, out.Meta)
	assert.Equal(t, "Jon", out.FirstName)
	assert.Empty(t, out.Insurance, "a full field set clears what it omits")
}

func TestPatchesOnlyTouchWhatTheyCarry(t *testing.T) {
	t.Run("patient", func(t *testing.T) {
		p := Patient{PatientFields: PatientFields{FirstName: "John", Phone: "1", Gender: GenderMale}}
		out := PatientPatch{Phone: ptr("2"), Gender: ptr(GenderOther)}.ApplyTo(p)
		assert.Equal(t, "John", out.FirstName)
		assert.Equal(t, "2", out.Phone)
		assert.Equal(t, GenderOther, out.Gender)
	})

	t.Run("doctor", func(t *testing.T) {
		d := Doctor{DoctorFields: DoctorFields{FirstName: "Emily", Experience: 15}}
		out := DoctorPatch{Experience: ptr(0)}.ApplyTo(d)
		assert.Equal(t, "Emily", out.FirstName)
		assert.Equal(t, 0, out.Experience)
	})

	t.Run("appointment status", func(t *testing.T) {
		a := Appointment{AppointmentFields: AppointmentFields{Reason: "Checkup", Status: StatusScheduled}}
		out := StatusPatch(StatusNoShow).ApplyTo(a)
		assert.Equal(t, StatusNoShow, out.Status)
		assert.Equal(t, "Checkup", out.Reason)
	})
}

func TestWithMetaKeepsFields(t *testing.T) {
	d := Doctor{DoctorFields: DoctorFields{FirstName: "Robert", LastName: "Martinez"}}
	out := d.WithMeta(Meta{ID: "9"})
	assert.Equal(t, "9", out.Metadata().ID)
	assert.Equal(t, "Dr. Robert Martinez", out.FullName())
}
