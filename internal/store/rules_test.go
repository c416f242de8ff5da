package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harentsoaR/medicare-api/internal/models"
	"github.com/harentsoaR/medicare-api/internal/storage"
)

func TestPatientRules(t *testing.T) {
	now := func() time.Time { return time.Date(2024, 1, 25, 14, 30, 0, 0, time.UTC) }
	check := PatientRules(now)
	others := SeedPatients()

	tests := []struct {
		name   string
		dob    string
		email  string
		reason string
	}{
		{"valid", "1992-04-01", "jane.smith@email.com", ""},
		{"born today", "2024-01-25", "baby@email.com", ""},
		{"born tomorrow", "2024-01-26", "baby@email.com", "date of birth cannot be in the future"},
		{"duplicate email ignores case", "1992-04-01", "John.Doe@Email.com", "email already exists"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := models.Patient{PatientFields: models.PatientFields{DateOfBirth: tt.dob, Email: tt.email}}
			err := check(p, others)
			if tt.reason == "" {
				assert.NoError(t, err)
				return
			}
			var rule *RuleError
			require.ErrorAs(t, err, &rule)
			assert.Equal(t, tt.reason, rule.Reason)
		})
	}
}

func TestStores_PatientRulesGuardWrites(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	s := New(kv, Options{
		IDs:   &CounterIDs{},
		Clock: func() time.Time { return time.Date(2024, 1, 25, 14, 30, 0, 0, time.UTC) },
	})
	require.NoError(t, s.LoadAll(ctx))
	before := stored(t, kv, KeyPatients)

	_, err := s.Patients.Add(ctx, models.PatientFields{FirstName: "Dup", LastName: "Licate", Email: "sarah.johnson@email.com"})
	var rule *RuleError
	require.True(t, errors.As(err, &rule))

	email := "michael.brown@email.com"
	_, found, err := s.Patients.Update(ctx, "1", models.PatientPatch{Email: &email})
	require.ErrorAs(t, err, &rule)
	assert.False(t, found)

	assert.Equal(t, before, stored(t, kv, KeyPatients), "refused writes are not persisted")

	own := "john.doe@email.com"
	_, found, err = s.Patients.Update(ctx, "1", models.PatientPatch{Email: &own})
	require.NoError(t, err, "a patient keeps its own email")
	assert.True(t, found)
}
