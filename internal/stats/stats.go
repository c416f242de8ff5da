// Package stats derives the dashboard figures from the live collections.
package stats

import (
	"sync"
	"time"

	"github.com/harentsoaR/medicare-api/internal/models"
	"github.com/harentsoaR/medicare-api/internal/store"
)

// DefaultUnitPrice is the flat amount billed per completed appointment.
const DefaultUnitPrice = 150.0

const dateLayout = "2006-01-02"

// Today formats now as the UTC calendar date appointments are compared to.
func Today(now time.Time) string {
	return now.UTC().Format(dateLayout)
}

// Compute counts appointments whose Date equals today (plain string
// comparison), scheduled ones as pending and completed ones as revenue at
// unitPrice each.
func Compute(patients []models.Patient, doctors []models.Doctor, appointments []models.Appointment, today string, unitPrice float64) models.DashboardStats {
	s := models.DashboardStats{
		TotalPatients: len(patients),
		TotalDoctors:  len(doctors),
	}
	for _, a := range appointments {
		if a.Date == today {
			s.TodayAppointments++
		}
		switch a.Status {
		case models.StatusScheduled:
			s.PendingAppointments++
		case models.StatusCompleted:
			s.CompletedAppointments++
		}
	}
	s.Revenue = float64(s.CompletedAppointments) * unitPrice
	return s
}

// Aggregator keeps DashboardStats current by recomputing whenever one of
// the three collections changes.
type Aggregator struct {
	unitPrice float64
	now       func() time.Time

	mu           sync.RWMutex
	patients     []models.Patient
	doctors      []models.Doctor
	appointments []models.Appointment
	current      models.DashboardStats
}

func NewAggregator(unitPrice float64, now func() time.Time) *Aggregator {
	if now == nil {
		now = time.Now
	}
	return &Aggregator{unitPrice: unitPrice, now: now}
}

// Watch subscribes the aggregator to the collections in s.
func (a *Aggregator) Watch(s *store.Stores) {
	s.Patients.Subscribe(func(items []models.Patient) {
		a.mu.Lock()
		defer a.mu.Unlock()
		a.patients = items
		a.recompute()
	})
	s.Doctors.Subscribe(func(items []models.Doctor) {
		a.mu.Lock()
		defer a.mu.Unlock()
		a.doctors = items
		a.recompute()
	})
	s.Appointments.Subscribe(func(items []models.Appointment) {
		a.mu.Lock()
		defer a.mu.Unlock()
		a.appointments = items
		a.recompute()
	})
}

// Refresh recomputes against the current date without a source change, for
// when the day rolls over.
func (a *Aggregator) Refresh() models.DashboardStats {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.recompute()
	return a.current
}

func (a *Aggregator) Stats() models.DashboardStats {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.current
}

func (a *Aggregator) recompute() {
	a.current = Compute(a.patients, a.doctors, a.appointments, Today(a.now()), a.unitPrice)
}
