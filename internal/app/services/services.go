package services

import (
	"context"

	appauth "github.com/yigit/pharmalab/internal/app/auth"
	"github.com/yigit/pharmalab/internal/app/models"
	"github.com/yigit/pharmalab/internal/pkg/auth"
)

// Services defined in this package:
// - AuthService: login, logout and session checks
// - UserService: account creation by teachers and the CLI
// - PatientService, MedicationService, ClinicalNoteService: record keeping
// - PrescriptionService: the create/approve workflow
// - DashboardService: counters and charts
// - BackupService: the backup stub run on each dashboard visit

// SessionService is the part of AuthService the web layer depends on
type SessionService interface {
	Login(ctx context.Context, username, password string) (*auth.Session, *models.User, error)
	Authenticate(ctx context.Context, token string) (*appauth.Principal, *auth.Claims, error)
	Logout(ctx context.Context, claims *auth.Claims) error
}

var _ SessionService = (*AuthService)(nil)

// EventPublisher receives workflow events for the live approval feed
type EventPublisher interface {
	Publish(v interface{})
}

// PrescriptionMetrics records workflow counters
type PrescriptionMetrics interface {
	PrescriptionCreated(status string)
	PrescriptionApproved()
}

// LoginMetrics records login outcomes
type LoginMetrics interface {
	LoginAttempt(success bool)
}

type noopPublisher struct{}

func (noopPublisher) Publish(interface{}) {}

type noopMetrics struct{}

func (noopMetrics) PrescriptionCreated(string) {}
func (noopMetrics) PrescriptionApproved()      {}
func (noopMetrics) LoginAttempt(bool)          {}
