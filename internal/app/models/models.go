package models

// RoleType defines the user role type
type RoleType string

const (
	RoleTeacher RoleType = "teacher"
	RoleStudent RoleType = "student"
)

// IsValid reports whether r is a known role
func (r RoleType) IsValid() bool {
	return r == RoleTeacher || r == RoleStudent
}

// PrescriptionStatus is the lifecycle state of a prescription
type PrescriptionStatus string

// Denied and dispensed are declared for the schema but no workflow step produces them.
const (
	StatusPending   PrescriptionStatus = "pending"
	StatusApproved  PrescriptionStatus = "approved"
	StatusDenied    PrescriptionStatus = "denied"
	StatusDispensed PrescriptionStatus = "dispensed"
)

// InitialStatusFor returns the status a new prescription gets from its prescriber's role
func InitialStatusFor(role RoleType) PrescriptionStatus {
	if role == RoleStudent {
		return StatusPending
	}
	return StatusApproved
}
