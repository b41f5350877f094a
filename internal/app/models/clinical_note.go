package models

import "time"

// ClinicalNote is a free-text note attached to a patient
type ClinicalNote struct {
	ID        int64     `db:"id" json:"id"`
	PatientID int64     `db:"patient_id" json:"patientId"`
	AuthorID  int64     `db:"author_id" json:"authorId"`
	Date      time.Time `db:"date" json:"date"`
	NoteType  *string   `db:"note_type" json:"noteType,omitempty"`
	Content   string    `db:"content" json:"content"`

	Author *User `json:"author,omitempty"` // Relation, no db tag
}
