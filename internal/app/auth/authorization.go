package auth

import (
	"github.com/yigit/pharmalab/internal/app/models"
	"github.com/yigit/pharmalab/internal/pkg/apperrors"
)

// Principal is the authenticated user attached to a request
type Principal struct {
	UserID    int64
	Username  string
	Role      models.RoleType
	SessionID string
}

// IsTeacher reports whether the principal holds the teacher role
func (p *Principal) IsTeacher() bool {
	return p != nil && p.Role == models.RoleTeacher
}

// ValidateTeacher returns ErrTeacherRequired unless the principal is a teacher
func ValidateTeacher(p *Principal) error {
	if !p.IsTeacher() {
		return apperrors.ErrTeacherRequired
	}
	return nil
}

// PrescriptionListScope returns the prescriber filter for listing prescriptions:
// nil for teachers (all rows), the principal's own id otherwise.
func PrescriptionListScope(p *Principal) *int64 {
	if p.IsTeacher() {
		return nil
	}
	id := p.UserID
	return &id
}
