package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/harentsoaR/medicare-api/internal/models"
)

const textbeltURL = "https://textbelt.com/text"

// NotificationService sends appointment SMS through Textbelt. Without an API
// key it only logs what it would have sent.
type NotificationService struct {
	apiKey   string
	endpoint string
	client   *http.Client
	async    bool
}

func NewNotificationService(apiKey string) *NotificationService {
	return &NotificationService{
		apiKey:   apiKey,
		endpoint: textbeltURL,
		client:   &http.Client{Timeout: 10 * time.Second},
		async:    true,
	}
}

func (s *NotificationService) Enabled() bool { return s.apiKey != "" }

// AppointmentBooked texts the patient a confirmation.
func (s *NotificationService) AppointmentBooked(patient models.Patient, doctor *models.Doctor, apt models.Appointment) {
	s.send(patient, confirmationMessage(patient, doctor, apt))
}

// AppointmentReminder texts the patient on the day of the appointment.
func (s *NotificationService) AppointmentReminder(patient models.Patient, doctor *models.Doctor, apt models.Appointment) {
	s.send(patient, reminderMessage(patient, doctor, apt))
}

func confirmationMessage(patient models.Patient, doctor *models.Doctor, apt models.Appointment) string {
	return fmt.Sprintf("Appointment Confirmed: %s for %s on %s at %s%s.",
		orDash(apt.Reason), patient.FullName(), apt.Date, apt.Time, withDoctor(doctor))
}

func reminderMessage(patient models.Patient, doctor *models.Doctor, apt models.Appointment) string {
	return fmt.Sprintf("Reminder: %s, you have an appointment today at %s%s.",
		patient.FullName(), apt.Time, withDoctor(doctor))
}

func withDoctor(doctor *models.Doctor) string {
	if doctor == nil {
		return ""
	}
	return " with " + doctor.FullName()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func (s *NotificationService) send(patient models.Patient, message string) {
	if patient.Phone == "" {
		log.Info().Str("patient_id", patient.ID).Msg("SMS not sent: patient has no phone number")
		return
	}
	if !s.Enabled() {
		log.Debug().Str("patient_id", patient.ID).Str("message", message).Msg("SMS disabled, skipping")
		return
	}
	if s.async {
		go s.deliver(patient.Phone, message)
		return
	}
	s.deliver(patient.Phone, message)
}

type textbeltResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (s *NotificationService) deliver(phone, message string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	postBody, _ := json.Marshal(map[string]string{
		"phone":   phone,
		"message": message,
		"key":     s.apiKey,
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(postBody))
	if err != nil {
		log.Error().Err(err).Msg("failed to build Textbelt request")
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("phone", phone).Msg("failed to send Textbelt request")
		return
	}
	defer resp.Body.Close()

	var result textbeltResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Error().Err(err).Str("phone", phone).Msg("failed to decode Textbelt response")
		return
	}
	if !result.Success {
		log.Warn().Str("phone", phone).Str("reason", result.Error).Msg("Textbelt rejected SMS")
		return
	}
	log.Info().Str("phone", phone).Msg("sent SMS via Textbelt")
}
