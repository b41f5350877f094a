package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/pharmalab/internal/app/models/dto"
	"github.com/yigit/pharmalab/internal/middleware"
	"github.com/yigit/pharmalab/internal/pkg/clinical"
)

// CalculatorMetrics counts calculator calls
type CalculatorMetrics interface {
	CalculatorRequest(calculator string, ok bool)
}

type noopCalculatorMetrics struct{}

func (noopCalculatorMetrics) CalculatorRequest(string, bool) {}

// CalculatorController serves the clinical calculators
type CalculatorController struct {
	metrics CalculatorMetrics
	logger  zerolog.Logger
}

// NewCalculatorController creates a new CalculatorController. metrics may be nil.
func NewCalculatorController(metrics CalculatorMetrics, logger zerolog.Logger) *CalculatorController {
	if metrics == nil {
		metrics = noopCalculatorMetrics{}
	}
	return &CalculatorController{metrics: metrics, logger: logger}
}

// Page renders the calculators page
func (c *CalculatorController) Page(ctx *gin.Context) {
	middleware.Render(ctx, http.StatusOK, "calculators.html", gin.H{"Title": "Clinical Calculators"})
}

// BMI computes the body mass index
// @Summary Body mass index
// @Description Computes weight / (height/100)^2 rounded to two decimals with its WHO category. Errors are reported in the envelope with HTTP 200.
// @Tags calculators
// @Security SessionCookie
// @Accept json
// @Produce json
// @Param request body dto.BMIRequest true "Weight in kg and height in cm"
// @Success 200 {object} dto.CalculatorResponse "BMI and category"
// @Router /calculate/bmi [post]
func (c *CalculatorController) BMI(ctx *gin.Context) {
	var req dto.BMIRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.fail(ctx, "bmi", err)
		return
	}

	res, err := clinical.BMI(float64(*req.Weight), float64(*req.Height))
	if err != nil {
		c.fail(ctx, "bmi", err)
		return
	}

	c.metrics.CalculatorRequest("bmi", true)
	ctx.JSON(http.StatusOK, dto.CalculatorResponse{Result: res.Value, Category: res.Category, Status: dto.StatusSuccess})
}

// CreatinineClearance computes the Cockcroft-Gault creatinine clearance
// @Summary Creatinine clearance
// @Description Cockcroft-Gault estimate in mL/min, multiplied by 0.85 unless gender is "male". Errors are reported in the envelope with HTTP 200.
// @Tags calculators
// @Security SessionCookie
// @Accept json
// @Produce json
// @Param request body dto.CreatinineClearanceRequest true "Age, weight (kg), serum creatinine (mg/dL) and gender"
// @Success 200 {object} dto.CalculatorResponse "Creatinine clearance"
// @Router /calculate/creatinine_clearance [post]
func (c *CalculatorController) CreatinineClearance(ctx *gin.Context) {
	var req dto.CreatinineClearanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.fail(ctx, "creatinine_clearance", err)
		return
	}

	result, err := clinical.CreatinineClearance(float64(*req.Age), float64(*req.Weight), float64(*req.SCr), *req.Gender)
	if err != nil {
		c.fail(ctx, "creatinine_clearance", err)
		return
	}

	c.metrics.CalculatorRequest("creatinine_clearance", true)
	ctx.JSON(http.StatusOK, dto.CalculatorResponse{Result: result, Status: dto.StatusSuccess})
}

func (c *CalculatorController) fail(ctx *gin.Context, calculator string, err error) {
	c.logger.Debug().Err(err).Str("calculator", calculator).Msg("Calculator input rejected")
	c.metrics.CalculatorRequest(calculator, false)
	ctx.JSON(http.StatusOK, dto.NewErrorEnvelope(err))
}
