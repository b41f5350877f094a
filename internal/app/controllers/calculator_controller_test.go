package controllers

import (
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingMetrics map[string]int

func (m countingMetrics) CalculatorRequest(name string, ok bool) {
	if ok {
		m[name+":ok"]++
	} else {
		m[name+":err"]++
	}
}

func TestCalculators(t *testing.T) {
	metrics := countingMetrics{}
	ctrl := NewCalculatorController(metrics, zerolog.Nop())
	r := newEngine(student)
	r.POST("/calculate/bmi", ctrl.BMI)
	r.POST("/calculate/creatinine_clearance", ctrl.CreatinineClearance)

	tests := []struct {
		name string
		path string
		body string
		want map[string]interface{}
	}{
		{"bmi numbers", "/calculate/bmi", `{"weight":70,"height":175}`,
			map[string]interface{}{"result": 22.86, "category": "Normal weight", "status": "success"}},
		{"bmi numeric strings", "/calculate/bmi", `{"weight":"50","height":"180"}`,
			map[string]interface{}{"result": 15.43, "category": "Underweight", "status": "success"}},
		{"bmi zero height", "/calculate/bmi", `{"weight":70,"height":0}`,
			map[string]interface{}{"status": "error", "message": "float division by zero"}},
		{"ccr male", "/calculate/creatinine_clearance", `{"age":60,"weight":72,"scr":1.0,"gender":"male"}`,
			map[string]interface{}{"result": 80.0, "status": "success"}},
		{"ccr female", "/calculate/creatinine_clearance", `{"age":60,"weight":72,"scr":1.0,"gender":"female"}`,
			map[string]interface{}{"result": 68.0, "status": "success"}},
		{"ccr fractional age", "/calculate/creatinine_clearance", `{"age":60.7,"weight":72,"scr":1.0,"gender":"male"}`,
			map[string]interface{}{"result": 80.0, "status": "success"}},
		{"ccr empty gender", "/calculate/creatinine_clearance", `{"age":60,"weight":72,"scr":1.0,"gender":""}`,
			map[string]interface{}{"result": 68.0, "status": "success"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, tt.path, tt.body)
			require.Equal(t, 200, w.Code)
			var got map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got)
		})
	}

	for _, body := range []string{`{"weight":70}`, `{"weight":"heavy","height":170}`, `not json`} {
		w := doJSON(r, "/calculate/bmi", body)
		require.Equal(t, 200, w.Code)
		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "error", got["status"], body)
		assert.NotEmpty(t, got["message"], body)
	}

	w := doJSON(r, "/calculate/creatinine_clearance", `{"age":60,"weight":72,"scr":1.0}`)
	var missing map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &missing))
	assert.Equal(t, "error", missing["status"])

	assert.Equal(t, 2, metrics["bmi:ok"])
	assert.Equal(t, 4, metrics["bmi:err"])
	assert.Equal(t, 4, metrics["creatinine_clearance:ok"])
	assert.Equal(t, 1, metrics["creatinine_clearance:err"])
}
