package store

import (
	"context"
	"time"

	"github.com/harentsoaR/medicare-api/internal/models"
	"github.com/harentsoaR/medicare-api/internal/storage"
)

// Storage keys, one per collection.
const (
	KeyPatients     = "hospital_patients"
	KeyDoctors      = "hospital_doctors"
	KeyAppointments = "hospital_appointments"
)

// Stores groups the three persisted collections.
type Stores struct {
	Patients     *Collection[models.Patient]
	Doctors      *Collection[models.Doctor]
	Appointments *Collection[models.Appointment]
}

// New wires the three collections to kv with their default seeds and the
// patient rules.
func New(kv storage.KV, opts Options) *Stores {
	s := &Stores{
		Patients:     NewCollection(KeyPatients, kv, SeedPatients, opts),
		Doctors:      NewCollection(KeyDoctors, kv, SeedDoctors, opts),
		Appointments: NewCollection(KeyAppointments, kv, SeedAppointments, opts),
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	s.Patients.Validate(PatientRules(clock))
	return s
}

// LoadAll loads every collection, stopping at the first failure.
func (s *Stores) LoadAll(ctx context.Context) error {
	if err := s.Patients.Load(ctx); err != nil {
		return err
	}
	if err := s.Doctors.Load(ctx); err != nil {
		return err
	}
	return s.Appointments.Load(ctx)
}
