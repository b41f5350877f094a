package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Number accepts a JSON number or a numeric string such as "72.5"
type Number float64

// UnmarshalJSON implements json.Unmarshaler
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("could not convert string to float: %q", s)
		}
		*n = Number(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

// BMIRequest is the body of POST /calculate/bmi
type BMIRequest struct {
	Weight *Number `json:"weight" binding:"required" swaggertype:"number" example:"70"`
	Height *Number `json:"height" binding:"required" swaggertype:"number" example:"175"`
}

// CreatinineClearanceRequest is the body of POST /calculate/creatinine_clearance.
// Gender must be present but may be empty.
type CreatinineClearanceRequest struct {
	Age    *Number `json:"age" binding:"required" swaggertype:"number" example:"60"`
	Weight *Number `json:"weight" binding:"required" swaggertype:"number" example:"72"`
	SCr    *Number `json:"scr" binding:"required" swaggertype:"number" example:"1.0"`
	Gender *string `json:"gender" binding:"required" example:"male"`
}

// CalculatorResponse is the success envelope of both calculators
type CalculatorResponse struct {
	Result   float64 `json:"result" example:"22.86"`
	Category string  `json:"category,omitempty" example:"Normal weight"`
	Status   string  `json:"status" example:"success"`
}

// StatusResponse is the generic JSON envelope used for errors
type StatusResponse struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message,omitempty" example:"float division by zero"`
}

// Envelope statuses
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// NewErrorEnvelope wraps err in the generic error envelope
func NewErrorEnvelope(err error) StatusResponse {
	return StatusResponse{Status: StatusError, Message: err.Error()}
}
