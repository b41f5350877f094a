package models

import "time"

// Patient is a record in the 'patients' table. PatientID is the external hospital number.
type Patient struct {
	ID             int64     `json:"id" db:"id"`
	PatientID      string    `json:"patientId" db:"patient_id" example:"P-0001"`
	FirstName      string    `json:"firstName" db:"first_name"`
	LastName       string    `json:"lastName" db:"last_name"`
	DOB            time.Time `json:"dob" db:"dob"`
	Gender         string    `json:"gender" db:"gender" example:"female"`
	BloodType      *string   `json:"bloodType,omitempty" db:"blood_type"`
	Allergies      *string   `json:"allergies,omitempty" db:"allergies"`
	MedicalHistory *string   `json:"medicalHistory,omitempty" db:"medical_history"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// FullName returns "First Last"
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

// AgeAt returns the patient's age in whole years on the given day
func (p *Patient) AgeAt(now time.Time) int {
	years := now.Year() - p.DOB.Year()
	if now.Month() < p.DOB.Month() || (now.Month() == p.DOB.Month() && now.Day() < p.DOB.Day()) {
		years--
	}
	return years
}
