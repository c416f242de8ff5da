package store

import (
	"time"

	"github.com/harentsoaR/medicare-api/internal/models"
)

func seedMeta(id, created, updated string) models.Meta {
	return models.Meta{ID: id, CreatedAt: mustTime(created), UpdatedAt: mustTime(updated)}
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func SeedPatients() []models.Patient {
	return []models.Patient{
		{
			Meta: seedMeta("1", "2024-01-15T10:30:00Z", "2024-01-20T14:45:00Z"),
			PatientFields: models.PatientFields{
				FirstName:        "John",
				LastName:         "Doe",
				Email:            "john.doe@email.com",
				Phone:            "+1 (555) 123-4567",
				DateOfBirth:      "1985-06-15",
				Gender:           models.GenderMale,
				Address:          "123 Main St, City, State 12345",
				EmergencyContact: "Jane Doe - (555) 987-6543",
				MedicalHistory:   "Hypertension, Type 2 Diabetes",
				Insurance:        "Blue Cross Blue Shield",
			},
		},
		{
			Meta: seedMeta("2", "2024-01-16T09:15:00Z", "2024-01-21T11:20:00Z"),
			PatientFields: models.PatientFields{
				FirstName:        "Sarah",
				LastName:         "Johnson",
				Email:            "sarah.johnson@email.com",
				Phone:            "+1 (555) 234-5678",
				DateOfBirth:      "1990-03-22",
				Gender:           models.GenderFemale,
				Address:          "456 Oak Ave, City, State 12345",
				EmergencyContact: "Mike Johnson - (555) 876-5432",
				MedicalHistory:   "Asthma, Allergies to penicillin",
				Insurance:        "Aetna",
			},
		},
		{
			Meta: seedMeta("3", "2024-01-17T13:45:00Z", "2024-01-22T16:30:00Z"),
			PatientFields: models.PatientFields{
				FirstName:        "Michael",
				LastName:         "Brown",
				Email:            "michael.brown@email.com",
				Phone:            "+1 (555) 345-6789",
				DateOfBirth:      "1978-11-08",
				Gender:           models.GenderMale,
				Address:          "789 Pine St, City, State 12345",
				EmergencyContact: "Lisa Brown - (555) 765-4321",
				MedicalHistory:   "No significant medical history",
				Insurance:        "Cigna",
			},
		},
	}
}

func SeedDoctors() []models.Doctor {
	return []models.Doctor{
		{
			Meta: seedMeta("1", "2024-01-10T08:00:00Z", "2024-01-20T10:30:00Z"),
			DoctorFields: models.DoctorFields{
				FirstName:      "Emily",
				LastName:       "Wilson",
				Email:          "emily.wilson@hospital.com",
				Phone:          "+1 (555) 111-2222",
				Specialization: "Cardiology",
				Department:     "Cardiac Surgery",
				Experience:     15,
				Qualification:  "MD, FACC",
				Schedule:       "Monday-Friday 8:00 AM - 5:00 PM",
			},
		},
		{
			Meta: seedMeta("2", "2024-01-11T09:00:00Z", "2024-01-21T11:45:00Z"),
			DoctorFields: models.DoctorFields{
				FirstName:      "Robert",
				LastName:       "Martinez",
				Email:          "robert.martinez@hospital.com",
				Phone:          "+1 (555) 222-3333",
				Specialization: "Pediatrics",
				Department:     "Pediatric Medicine",
				Experience:     12,
				Qualification:  "MD, FAAP",
				Schedule:       "Monday-Friday 9:00 AM - 6:00 PM",
			},
		},
		{
			Meta: seedMeta("3", "2024-01-12T07:30:00Z", "2024-01-22T13:15:00Z"),
			DoctorFields: models.DoctorFields{
				FirstName:      "Jennifer",
				LastName:       "Davis",
				Email:          "jennifer.davis@hospital.com",
				Phone:          "+1 (555) 333-4444",
				Specialization: "Neurology",
				Department:     "Neuroscience",
				Experience:     20,
				Qualification:  "MD, PhD, FAAN",
				Schedule:       "Monday-Thursday 7:00 AM - 4:00 PM",
			},
		},
	}
}

func SeedAppointments() []models.Appointment {
	return []models.Appointment{
		{
			Meta: seedMeta("1", "2024-01-20T14:30:00Z", "2024-01-20T14:30:00Z"),
			AppointmentFields: models.AppointmentFields{
				PatientID: "1",
				DoctorID:  "1",
				Date:      "2024-01-25",
				Time:      "10:00 AM",
				Status:    models.StatusScheduled,
				Reason:    "Regular checkup",
				Notes:     "Patient complains of chest pain",
			},
		},
		{
			Meta: seedMeta("2", "2024-01-21T09:15:00Z", "2024-01-25T14:30:00Z"),
			AppointmentFields: models.AppointmentFields{
				PatientID: "2",
				DoctorID:  "2",
				Date:      "2024-01-25",
				Time:      "2:00 PM",
				Status:    models.StatusCompleted,
				Reason:    "Follow-up consultation",
				Notes:     "Medication adjustment needed",
			},
		},
		{
			Meta: seedMeta("3", "2024-01-22T16:45:00Z", "2024-01-22T16:45:00Z"),
			AppointmentFields: models.AppointmentFields{
				PatientID: "3",
				DoctorID:  "3",
				Date:      "2024-01-26",
				Time:      "11:30 AM",
				Status:    models.StatusScheduled,
				Reason:    "Headache consultation",
				Notes:     "Recurring headaches for 2 weeks",
			},
		},
	}
}

// Empty is a seed func for collections that should start with no records.
func Empty[T any]() []T { return []T{} }
