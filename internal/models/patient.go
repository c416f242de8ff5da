package models

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// PatientFields is everything about a patient except identity and timestamps.
type PatientFields struct {
	FirstName        string `json:"firstName" binding:"required"`
	LastName         string `json:"lastName" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone"`
	DateOfBirth      string `json:"dateOfBirth" binding:"required,datetime=2006-01-02"`
	Gender           Gender `json:"gender" binding:"required,oneof=male female other"`
	Address          string `json:"address"`
	EmergencyContact string `json:"emergencyContact"`
	MedicalHistory   string `json:"medicalHistory"`
	Insurance        string `json:"insurance"`
}

type Patient struct {
	Meta
	PatientFields
}

func (p Patient) Metadata() Meta { return p.Meta }

func (p Patient) WithMeta(m Meta) Patient {
	p.Meta = m
	return p
}

func (p Patient) FullName() string { return p.FirstName + " " + p.LastName }

// InsuredBy reports whether the insurance provider contains term, ignoring
// case.
func (p Patient) InsuredBy(term string) bool {
	return containsFold(term, p.Insurance)
}

// Matches searches first name, last name and email.
func (p Patient) Matches(term string) bool {
	return containsFold(term, p.FirstName, p.LastName, p.Email)
}

func (f PatientFields) ApplyTo(p Patient) Patient {
	p.PatientFields = f
	return p
}

// PatientPatch is a partial update; nil fields are left alone.
type PatientPatch struct {
	FirstName        *string `json:"firstName" binding:"omitempty,min=1"`
	LastName         *string `json:"lastName" binding:"omitempty,min=1"`
	Email            *string `json:"email" binding:"omitempty,email"`
	Phone            *string `json:"phone"`
	DateOfBirth      *string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
	Gender           *Gender `json:"gender" binding:"omitempty,oneof=male female other"`
	Address          *string `json:"address"`
	EmergencyContact *string `json:"emergencyContact"`
	MedicalHistory   *string `json:"medicalHistory"`
	Insurance        *string `json:"insurance"`
}

func (pp PatientPatch) ApplyTo(p Patient) Patient {
	setString(&p.FirstName, pp.FirstName)
	setString(&p.LastName, pp.LastName)
	setString(&p.Email, pp.Email)
	setString(&p.Phone, pp.Phone)
	setString(&p.DateOfBirth, pp.DateOfBirth)
	if pp.Gender != nil {
		p.Gender = *pp.Gender
	}
	setString(&p.Address, pp.Address)
	setString(&p.EmergencyContact, pp.EmergencyContact)
	setString(&p.MedicalHistory, pp.MedicalHistory)
	setString(&p.Insurance, pp.Insurance)
	return p
}
