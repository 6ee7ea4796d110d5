package models

// ContactField names one of the five inputs of the contact form.
type ContactField string

const (
	FieldName    ContactField = "name"
	FieldEmail   ContactField = "email"
	FieldPhone   ContactField = "phone"
	FieldSubject ContactField = "subject"
	FieldMessage ContactField = "message"
)

// ContactFields is the form's field order, which is also the order of the
// labelled lines in the outgoing WhatsApp message.
var ContactFields = []ContactField{FieldName, FieldEmail, FieldPhone, FieldSubject, FieldMessage}

// ParseContactField reports whether s names a form field.
func ParseContactField(s string) (ContactField, bool) {
	for _, f := range ContactFields {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

// ContactFormData holds the raw values typed by the visitor.
type ContactFormData struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (d ContactFormData) Get(field ContactField) string {
	switch field {
	case FieldName:
		return d.Name
	case FieldEmail:
		return d.Email
	case FieldPhone:
		return d.Phone
	case FieldSubject:
		return d.Subject
	case FieldMessage:
		return d.Message
	}
	return ""
}

func (d *ContactFormData) Set(field ContactField, value string) {
	switch field {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldPhone:
		d.Phone = value
	case FieldSubject:
		d.Subject = value
	case FieldMessage:
		d.Message = value
	}
}

// NoticeType is the flavour of the transient banner shown above the form.
type NoticeType string

const (
	NoticeNone    NoticeType = ""
	NoticeSuccess NoticeType = "success"
	NoticeError   NoticeType = "error"
)

// Notice is the transient banner shown after a submit attempt.
type Notice struct {
	Message string     `json:"message"`
	Type    NoticeType `json:"type"`
}
