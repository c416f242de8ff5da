package store

import (
	"strings"
	"time"

	"github.com/harentsoaR/medicare-api/internal/models"
)

// RuleError is a write refused by a collection rule. Nothing was stored.
type RuleError struct {
	Reason string
}

func (e *RuleError) Error() string { return e.Reason }

// PatientRules rejects a date of birth after today and an email already used
// by another patient. Stored data is never re-checked.
func PatientRules(now func() time.Time) func(models.Patient, []models.Patient) error {
	return func(p models.Patient, others []models.Patient) error {
		if dob, err := time.Parse("2006-01-02", p.DateOfBirth); err == nil && dob.After(now().UTC()) {
			return &RuleError{Reason: "date of birth cannot be in the future"}
		}
		for _, o := range others {
			if p.Email != "" && strings.EqualFold(o.Email, p.Email) {
				return &RuleError{Reason: "email already exists"}
			}
		}
		return nil
	}
}
