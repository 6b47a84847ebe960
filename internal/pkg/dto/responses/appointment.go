package responses

import "cura-booking-service/internal/pkg/constvars"

// ConfirmationRecord is scraped from the booking confirmation page once the
// form is submitted. It is built a single time and only read afterwards.
type ConfirmationRecord struct {
	Facility    string `json:"facility"`
	Readmission string `json:"readmission"`
	Program     string `json:"program"`
	VisitDate   string `json:"visit_date"`
	Comment     string `json:"comment"`
}

var confirmationKeys = []string{
	constvars.ConfirmationKeyFacility,
	constvars.ConfirmationKeyReadmission,
	constvars.ConfirmationKeyProgram,
	constvars.ConfirmationKeyVisitDate,
	constvars.ConfirmationKeyComment,
}

// ConfirmationKeys returns the record keys in display order.
func ConfirmationKeys() []string {
	keys := make([]string, len(confirmationKeys))
	copy(keys, confirmationKeys)
	return keys
}

func (r ConfirmationRecord) Map() map[string]string {
	return map[string]string{
		constvars.ConfirmationKeyFacility:    r.Facility,
		constvars.ConfirmationKeyReadmission: r.Readmission,
		constvars.ConfirmationKeyProgram:     r.Program,
		constvars.ConfirmationKeyVisitDate:   r.VisitDate,
		constvars.ConfirmationKeyComment:     r.Comment,
	}
}
