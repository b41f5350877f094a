package dto

// LoginForm is posted by the login page
type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// PatientForm is posted by the add-patient page. Dates arrive as YYYY-MM-DD.
type PatientForm struct {
	PatientID      string `form:"patient_id" binding:"required,max=20"`
	FirstName      string `form:"first_name" binding:"required,max=100"`
	LastName       string `form:"last_name" binding:"required,max=100"`
	DOB            string `form:"dob" binding:"required"`
	Gender         string `form:"gender" binding:"required,max=10"`
	BloodType      string `form:"blood_type" binding:"max=5"`
	Allergies      string `form:"allergies"`
	MedicalHistory string `form:"medical_history"`
}

// MedicationForm is posted by the add-medication page.
// Quantity and ReorderLevel stay strings so a parse failure reaches the flash text.
type MedicationForm struct {
	Name              string `form:"name" binding:"required,max=100"`
	GenericName       string `form:"generic_name" binding:"max=100"`
	DosageForm        string `form:"dosage_form" binding:"max=50"`
	Strength          string `form:"strength" binding:"max=50"`
	Manufacturer      string `form:"manufacturer" binding:"max=100"`
	Quantity          string `form:"quantity"`
	ReorderLevel      string `form:"reorder_level"`
	Indications       string `form:"indications"`
	Contraindications string `form:"contraindications"`
	SideEffects       string `form:"side_effects"`
}

// PrescriptionForm carries parallel item arrays; they are zipped to the shortest length.
type PrescriptionForm struct {
	PatientID     string   `form:"patient_id" binding:"required"`
	Instructions  string   `form:"instructions"`
	MedicationIDs []string `form:"medication_id[]"`
	Dosages       []string `form:"dosage[]"`
	Frequencies   []string `form:"frequency[]"`
	Durations     []string `form:"duration[]"`
}

// ClinicalNoteForm is posted from the patient page
type ClinicalNoteForm struct {
	NoteType string `form:"note_type" binding:"max=50"`
	Content  string `form:"content" binding:"required"`
}

// UserForm is posted by the teacher-only add-user page
type UserForm struct {
	Username string `form:"username" binding:"required,min=3,max=80"`
	Password string `form:"password" binding:"required,min=6"`
	Role     string `form:"role" binding:"required,oneof=teacher student"`
}
