package responses

// SMSReceipt is what the gateway hands back synchronously for an accepted message.
type SMSReceipt struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}
