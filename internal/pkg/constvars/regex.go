package constvars

const (
	RegexPhoneNumberGeneral = `^\+[1-9]\d{9,14}$`
)

// VisitDateLayout is the MM/DD/YYYY layout the booking form accepts.
const VisitDateLayout = "01/02/2006"
