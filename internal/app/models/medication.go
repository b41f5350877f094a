package models

// DefaultReorderLevel applies when a medication is created without a reorder level
const DefaultReorderLevel = 10

// Medication is a stock item in the 'medications' table
type Medication struct {
	ID                int64   `json:"id" db:"id"`
	Name              string  `json:"name" db:"name" example:"Amoxicillin"`
	GenericName       *string `json:"genericName,omitempty" db:"generic_name"`
	DosageForm        *string `json:"dosageForm,omitempty" db:"dosage_form" example:"Capsule"`
	Strength          *string `json:"strength,omitempty" db:"strength" example:"500 mg"`
	Manufacturer      *string `json:"manufacturer,omitempty" db:"manufacturer"`
	Quantity          int     `json:"quantity" db:"quantity"`
	ReorderLevel      int     `json:"reorderLevel" db:"reorder_level"`
	Indications       *string `json:"indications,omitempty" db:"indications"`
	Contraindications *string `json:"contraindications,omitempty" db:"contraindications"`
	SideEffects       *string `json:"sideEffects,omitempty" db:"side_effects"`
}

// IsLowStock reports quantity at or below the reorder level
func (m *Medication) IsLowStock() bool {
	return m.Quantity <= m.ReorderLevel
}
