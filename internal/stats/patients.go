package stats

import (
	"time"

	"github.com/harentsoaR/medicare-api/internal/models"
)

// PatientBreakdown counts patients by gender and averages the age of those
// with a parseable date of birth that is not in the future.
func PatientBreakdown(patients []models.Patient, now time.Time) models.PatientStatistics {
	s := models.PatientStatistics{TotalPatients: len(patients)}

	var ageSum, aged int
	for _, p := range patients {
		switch p.Gender {
		case models.GenderMale:
			s.MalePatients++
		case models.GenderFemale:
			s.FemalePatients++
		default:
			s.OtherPatients++
		}

		age, ok := AgeOn(p.DateOfBirth, now)
		if !ok {
			continue
		}
		ageSum += age
		aged++
	}
	if aged > 0 {
		s.AverageAge = float64(ageSum) / float64(aged)
	}
	return s
}

// Age is the number of whole years between dob and now.
func Age(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	return years
}

// AgeOn parses a "2006-01-02" date of birth and returns the age at now. It
// reports false for an unparseable or future date.
func AgeOn(dateOfBirth string, now time.Time) (int, bool) {
	dob, err := time.Parse(dateLayout, dateOfBirth)
	if err != nil || dob.After(now) {
		return 0, false
	}
	return Age(dob, now), true
}

// BirthdayWindowDays is how far ahead UpcomingBirthdays looks.
const BirthdayWindowDays = 30

// UpcomingBirthdays returns the patients whose next birthday falls after
// today and less than days from now, in stored order.
func UpcomingBirthdays(patients []models.Patient, now time.Time, days int) []models.Patient {
	today, _ := time.Parse(dateLayout, Today(now))
	until := today.AddDate(0, 0, days)

	out := []models.Patient{}
	for _, p := range patients {
		dob, err := time.Parse(dateLayout, p.DateOfBirth)
		if err != nil || dob.After(today) {
			continue
		}
		next := time.Date(today.Year(), dob.Month(), dob.Day(), 0, 0, 0, 0, time.UTC)
		if !next.After(today) {
			next = time.Date(today.Year()+1, dob.Month(), dob.Day(), 0, 0, 0, 0, time.UTC)
		}
		if next.Before(until) {
			out = append(out, p)
		}
	}
	return out
}
