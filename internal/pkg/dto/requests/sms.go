package requests

type SMSMessage struct {
	From string `json:"from" validate:"required,e164_phone"`
	To   string `json:"to" validate:"required,e164_phone"`
	Body string `json:"body" validate:"required"`
}
