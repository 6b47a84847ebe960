package requests

// AppointmentRequest holds the two values the operator types in before a run.
type AppointmentRequest struct {
	VisitDate string `json:"visit_date" validate:"required,visit_date"`
	Comment   string `json:"comment" validate:"max=1000"`
}
