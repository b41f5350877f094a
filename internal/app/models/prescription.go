package models

import "time"

// Prescription is the parent row of a medication order
type Prescription struct {
	ID             int64              `json:"id" db:"id"`
	PatientID      int64              `json:"patientId" db:"patient_id"`
	PrescriberID   int64              `json:"prescriberId" db:"prescriber_id"`
	DatePrescribed time.Time          `json:"datePrescribed" db:"date_prescribed"`
	Status         PrescriptionStatus `json:"status" db:"status"`
	Instructions   *string            `json:"instructions,omitempty" db:"instructions"`

	Patient    *Patient            `json:"patient,omitempty"`    // Relation, no db tag
	Prescriber *User               `json:"prescriber,omitempty"` // Relation, no db tag
	Items      []*PrescriptionItem `json:"items,omitempty"`
}

// IsPending reports whether the prescription still awaits approval
func (p *Prescription) IsPending() bool {
	return p.Status == StatusPending
}

// PrescriptionItem is one medication line of a prescription
type PrescriptionItem struct {
	ID             int64   `json:"id" db:"id"`
	PrescriptionID int64   `json:"prescriptionId" db:"prescription_id"`
	MedicationID   int64   `json:"medicationId" db:"medication_id"`
	Dosage         string  `json:"dosage" db:"dosage"`
	Frequency      string  `json:"frequency" db:"frequency"`
	Duration       *string `json:"duration,omitempty" db:"duration"`

	Medication *Medication `json:"medication,omitempty"` // Relation, no db tag
}
