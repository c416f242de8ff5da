package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/harentsoaR/medicare-api/internal/models"
	"github.com/harentsoaR/medicare-api/internal/stats"
	"github.com/harentsoaR/medicare-api/internal/store"
)

// Scheduler runs the daily reminder job and the midnight stats rollover.
type Scheduler struct {
	cron          *cron.Cron
	stores        *store.Stores
	notifications *NotificationService
	aggregator    *stats.Aggregator
	now           func() time.Time
}

func NewScheduler(stores *store.Stores, notifications *NotificationService, aggregator *stats.Aggregator, now func() time.Time) *Scheduler {
	if now == nil {
		now = time.Now
	}
	return &Scheduler{
		cron:          cron.New(cron.WithLocation(time.UTC)),
		stores:        stores,
		notifications: notifications,
		aggregator:    aggregator,
		now:           now,
	}
}

// Start registers both jobs and starts the cron loop in the background.
func (s *Scheduler) Start(reminderSpec string) error {
	if _, err := s.cron.AddFunc(reminderSpec, func() {
		if _, err := s.SendDailyReminders(context.Background()); err != nil {
			log.Error().Err(err).Msg("daily reminders failed")
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule reminder job: %w", err)
	}
	if _, err := s.cron.AddFunc("0 0 * * *", func() {
		st := s.aggregator.Refresh()
		log.Info().Int("today_appointments", st.TodayAppointments).Msg("dashboard stats rolled over")
	}); err != nil {
		return fmt.Errorf("failed to schedule stats rollover: %w", err)
	}
	s.cron.Start()
	return nil
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// SendDailyReminders notifies the patient of every scheduled appointment
// dated today. Appointments pointing at a deleted patient are skipped.
func (s *Scheduler) SendDailyReminders(ctx context.Context) (int, error) {
	today := stats.Today(s.now())
	due, err := s.stores.Appointments.Filter(ctx, func(a models.Appointment) bool {
		return a.Date == today && a.Status == models.StatusScheduled
	})
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, apt := range due {
		patient, ok, err := s.stores.Patients.Get(ctx, apt.PatientID)
		if err != nil {
			return sent, err
		}
		if !ok {
			log.Warn().Str("appointment_id", apt.ID).Str("patient_id", apt.PatientID).Msg("reminder skipped, patient not found")
			continue
		}
		var doctor *models.Doctor
		if d, ok, err := s.stores.Doctors.Get(ctx, apt.DoctorID); err == nil && ok {
			doctor = &d
		}
		s.notifications.AppointmentReminder(patient, doctor, apt)
		sent++
	}
	log.Info().Str("date", today).Int("reminders", sent).Msg("daily reminders processed")
	return sent, nil
}
