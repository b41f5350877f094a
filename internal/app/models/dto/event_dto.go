package dto

import "time"

// Prescription feed event types
const (
	EventPrescriptionCreated  = "prescription.created"
	EventPrescriptionApproved = "prescription.approved"
)

// PrescriptionEvent is pushed to teachers connected to the approval feed
type PrescriptionEvent struct {
	Type           string    `json:"type"`
	PrescriptionID int64     `json:"prescriptionId"`
	PatientID      int64     `json:"patientId"`
	Status         string    `json:"status"`
	ActorID        int64     `json:"actorId"`
	ActorName      string    `json:"actorName"`
	OccurredAt     time.Time `json:"occurredAt"`
}
