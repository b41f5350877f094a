package routes

import (
	"html/template"
	"time"

	"github.com/yigit/pharmalab/internal/app/models"
	"github.com/yigit/pharmalab/internal/pkg/helpers"
)

// TemplateFuncs are the helpers available to every page template
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"date": func(t time.Time) string {
			return t.Format(helpers.DateLayout)
		},
		"datetime": func(t time.Time) string {
			return t.Format("2006-01-02 15:04")
		},
		"deref": helpers.Deref,
		"now":   time.Now,
		"statusClass": func(s models.PrescriptionStatus) string {
			switch s {
			case models.StatusApproved:
				return "success"
			case models.StatusPending:
				return "warning"
			case models.StatusDenied:
				return "danger"
			default:
				return "secondary"
			}
		},
	}
}
