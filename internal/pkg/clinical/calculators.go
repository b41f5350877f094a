// Package clinical holds the stateless bedside calculators.
package clinical

import (
	"math"

	"github.com/yigit/pharmalab/internal/pkg/apperrors"
)

// BMI categories
const (
	CategoryUnderweight = "Underweight"
	CategoryNormal      = "Normal weight"
	CategoryOverweight  = "Overweight"
	CategoryObese       = "Obese"
)

// femaleFactor scales Cockcroft-Gault for any gender other than male
const femaleFactor = 0.85

// BMIResult is a body mass index with its category
type BMIResult struct {
	Value    float64
	Category string
}

// BMI computes weight(kg) / (height(m))^2 from a height in centimetres. The category
// is taken from the unrounded value; only Value is rounded to 2 decimals.
func BMI(weightKg, heightCm float64) (BMIResult, error) {
	if heightCm == 0 {
		return BMIResult{}, apperrors.ErrDivisionByZero
	}
	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)
	return BMIResult{Value: round2(bmi), Category: BMICategory(bmi)}, nil
}

// BMICategory classifies a BMI
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return CategoryUnderweight
	case bmi < 25:
		return CategoryNormal
	case bmi < 30:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}

// CreatinineClearance estimates CrCl (mL/min) with Cockcroft-Gault, rounded to 2 decimals.
// Age is truncated to whole years. The gender match is exact: only "male" skips the 0.85 factor.
func CreatinineClearance(age, weightKg, serumCreatinine float64, gender string) (float64, error) {
	if serumCreatinine == 0 {
		return 0, apperrors.ErrDivisionByZero
	}
	ccr := ((140 - math.Trunc(age)) * weightKg) / (72 * serumCreatinine)
	if gender != "male" {
		ccr *= femaleFactor
	}
	return round2(ccr), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
