package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/pharmalab/internal/app/models"
	"github.com/yigit/pharmalab/internal/app/models/dto"
	"github.com/yigit/pharmalab/internal/app/repositories"
)

// Dashboard is the data behind the index page. Chart fields hold Plotly figure JSON.
type Dashboard struct {
	Stats           dto.DashboardStats
	GenderChart     string
	DosageFormChart string
}

// Backupper runs the backup stub
type Backupper interface {
	Run(ctx context.Context) (string, error)
}

// DashboardService builds the dashboard
type DashboardService interface {
	Build(ctx context.Context) (*Dashboard, error)
}

type dashboardServiceImpl struct {
	patientRepo      repositories.IPatientRepository
	medicationRepo   repositories.IMedicationRepository
	prescriptionRepo repositories.IPrescriptionRepository
	backup           Backupper
	logger           zerolog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	patientRepo repositories.IPatientRepository,
	medicationRepo repositories.IMedicationRepository,
	prescriptionRepo repositories.IPrescriptionRepository,
	backup Backupper,
	logger zerolog.Logger,
) DashboardService {
	return &dashboardServiceImpl{
		patientRepo:      patientRepo,
		medicationRepo:   medicationRepo,
		prescriptionRepo: prescriptionRepo,
		backup:           backup,
		logger:           logger,
	}
}

// Build collects the counters and charts. Chart failures are logged and rendered as "{}";
// a failed backup never blocks the page.
func (s *dashboardServiceImpl) Build(ctx context.Context) (*Dashboard, error) {
	if _, err := s.backup.Run(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("Backup stub failed")
	}

	stats, err := s.stats(ctx)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Stats:           *stats,
		GenderChart:     s.chart(ctx, "gender", s.genderChart),
		DosageFormChart: s.chart(ctx, "dosage_form", s.dosageFormChart),
	}, nil
}

func (s *dashboardServiceImpl) stats(ctx context.Context) (*dto.DashboardStats, error) {
	var st dto.DashboardStats
	var err error

	if st.PatientCount, err = s.patientRepo.Count(ctx); err != nil {
		return nil, err
	}
	if st.MedicationCount, err = s.medicationRepo.Count(ctx); err != nil {
		return nil, err
	}
	if st.ActivePrescriptions, err = s.prescriptionRepo.CountByStatus(ctx, models.StatusApproved); err != nil {
		return nil, err
	}
	if st.LowStock, err = s.medicationRepo.CountLowStock(ctx); err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *dashboardServiceImpl) chart(ctx context.Context, name string, build func(context.Context) (*dto.PlotlyFigure, error)) string {
	fig, err := build(ctx)
	if err == nil {
		var raw []byte
		if raw, err = json.Marshal(fig); err == nil {
			return string(raw)
		}
	}
	s.logger.Error().Err(err).Str("chart", name).Msg("Error building dashboard chart")
	return dto.EmptyChart
}

func (s *dashboardServiceImpl) genderChart(ctx context.Context) (*dto.PlotlyFigure, error) {
	counts, err := s.patientRepo.CountByGender(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting patients by gender: %w", err)
	}
	return PieChart("Patients by Gender", counts), nil
}

func (s *dashboardServiceImpl) dosageFormChart(ctx context.Context) (*dto.PlotlyFigure, error) {
	counts, err := s.medicationRepo.CountByDosageForm(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting medications by dosage form: %w", err)
	}
	return BarChart("Medications by Dosage Form", counts), nil
}

// PieChart builds a Plotly pie figure from grouped counts
func PieChart(title string, counts []dto.CategoryCount) *dto.PlotlyFigure {
	labels, values := split(counts)
	return &dto.PlotlyFigure{
		Data:   []dto.PlotlyTrace{{Type: "pie", Labels: labels, Values: values, Hole: 0.3}},
		Layout: map[string]interface{}{"title": map[string]string{"text": title}},
	}
}

// BarChart builds a Plotly bar figure from grouped counts
func BarChart(title string, counts []dto.CategoryCount) *dto.PlotlyFigure {
	labels, values := split(counts)
	return &dto.PlotlyFigure{
		Data: []dto.PlotlyTrace{{Type: "bar", X: labels, Y: values, Marker: &dto.PlotlyMarker{Color: "#2a6ebb"}}},
		Layout: map[string]interface{}{
			"title": map[string]string{"text": title},
			"xaxis": map[string]string{"title": "Dosage Form"},
			"yaxis": map[string]string{"title": "Count"},
		},
	}
}

func split(counts []dto.CategoryCount) ([]string, []int64) {
	labels := make([]string, 0, len(counts))
	values := make([]int64, 0, len(counts))
	for _, c := range counts {
		labels = append(labels, c.Label)
		values = append(values, c.Count)
	}
	return labels, values
}
