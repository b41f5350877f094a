package dto

// DashboardStats are the four counters on the dashboard
type DashboardStats struct {
	PatientCount        int64 `json:"patientCount"`
	MedicationCount     int64 `json:"medicationCount"`
	ActivePrescriptions int64 `json:"activePrescriptions"`
	LowStock            int64 `json:"lowStock"`
}

// CategoryCount is one bucket of a grouped count
type CategoryCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// PlotlyTrace is one data series of a Plotly figure
type PlotlyTrace struct {
	Type   string        `json:"type"`
	Labels []string      `json:"labels,omitempty"`
	Values []int64       `json:"values,omitempty"`
	X      []string      `json:"x,omitempty"`
	Y      []int64       `json:"y,omitempty"`
	Hole   float64       `json:"hole,omitempty"`
	Marker *PlotlyMarker `json:"marker,omitempty"`
}

// PlotlyMarker styles a trace
type PlotlyMarker struct {
	Color string `json:"color,omitempty"`
}

// PlotlyFigure is the {data, layout} object Plotly.newPlot consumes
type PlotlyFigure struct {
	Data   []PlotlyTrace          `json:"data"`
	Layout map[string]interface{} `json:"layout"`
}

// EmptyChart is rendered when a chart cannot be built
const EmptyChart = "{}"
