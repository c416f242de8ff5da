package models

type DoctorFields struct {
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	Specialization string `json:"specialization" binding:"required"`
	Department     string `json:"department"`
	Experience     int    `json:"experience" binding:"gte=0"`
	Qualification  string `json:"qualification"`
	Schedule       string `json:"schedule"`
}

type Doctor struct {
	Meta
	DoctorFields
}

func (d Doctor) Metadata() Meta { return d.Meta }

func (d Doctor) WithMeta(m Meta) Doctor {
	d.Meta = m
	return d
}

func (d Doctor) FullName() string { return "Dr. " + d.FirstName + " " + d.LastName }

// Matches searches first name, last name and specialization.
func (d Doctor) Matches(term string) bool {
	return containsFold(term, d.FirstName, d.LastName, d.Specialization)
}

func (f DoctorFields) ApplyTo(d Doctor) Doctor {
	d.DoctorFields = f
	return d
}

type DoctorPatch struct {
	FirstName      *string `json:"firstName" binding:"omitempty,min=1"`
	LastName       *string `json:"lastName" binding:"omitempty,min=1"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Phone          *string `json:"phone"`
	Specialization *string `json:"specialization" binding:"omitempty,min=1"`
	Department     *string `json:"department"`
	Experience     *int    `json:"experience" binding:"omitempty,gte=0"`
	Qualification  *string `json:"qualification"`
	Schedule       *string `json:"schedule"`
}

func (dp DoctorPatch) ApplyTo(d Doctor) Doctor {
	setString(&d.FirstName, dp.FirstName)
	setString(&d.LastName, dp.LastName)
	setString(&d.Email, dp.Email)
	setString(&d.Phone, dp.Phone)
	setString(&d.Specialization, dp.Specialization)
	setString(&d.Department, dp.Department)
	if dp.Experience != nil {
		d.Experience = *dp.Experience
	}
	setString(&d.Qualification, dp.Qualification)
	setString(&d.Schedule, dp.Schedule)
	return d
}
