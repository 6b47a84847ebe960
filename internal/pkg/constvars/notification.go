package constvars

const (
	ConfirmationKeyFacility    = "facility"
	ConfirmationKeyReadmission = "readmission"
	ConfirmationKeyProgram     = "program"
	ConfirmationKeyVisitDate   = "visit_date"
	ConfirmationKeyComment     = "comment"
)

const (
	EmailConfirmationSubject         = "Cura Healthcare Appointment"
	EmailSendBasicEmailSubjectFormat = "From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/plain; charset=\"UTF-8\";\r\n\r\n%s\r\n"
	ConfirmationBodyFormat           = "Cura Healthcare Appointment Confirmation Details:\nlocation: %s\nreadmission: %s\nprogram: %s\ndate: %s\ncomments: %s\n"
)

const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

const (
	SMTPDefaultHost = "smtp.gmail.com"
	SMTPDefaultPort = 587
)

const (
	SMSDefaultFromNumber = "+18336973859"
	SMSDefaultToNumber   = "+18777804236"
)
