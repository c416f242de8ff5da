package models

// DashboardStats is derived from the live collections and never stored.
type DashboardStats struct {
	TotalPatients         int     `json:"totalPatients"`
	TotalDoctors          int     `json:"totalDoctors"`
	TodayAppointments     int     `json:"todayAppointments"`
	PendingAppointments   int     `json:"pendingAppointments"`
	CompletedAppointments int     `json:"completedAppointments"`
	Revenue               float64 `json:"revenue"`
}

type PatientStatistics struct {
	TotalPatients  int     `json:"totalPatients"`
	MalePatients   int     `json:"malePatients"`
	FemalePatients int     `json:"femalePatients"`
	OtherPatients  int     `json:"otherPatients"`
	AverageAge     float64 `json:"averageAge"`
}
