package services

import (
	"regexp"
	"strings"
	"unicode/utf16"

	"github.com/jrmferreira/construcoes-backend/models"
)

// whitespace is the browser regex \s class: ASCII space, \v, BOM and every
// Unicode space separator. RE2's \s alone is ASCII only.
const whitespace = `\s\x{0B}\x{FEFF}\pZ`

var (
	nameRegex  = regexp.MustCompile(`^[a-zA-Z\x{00C0}-\x{00FF}` + whitespace + `]+$`)
	emailRegex = regexp.MustCompile(`^[^` + whitespace + `@]+@[^` + whitespace + `@]+\.[^` + whitespace + `@]+$`)
	// Optional +55, area code with or without parentheses, optional leading 9, then 4+4 digits.
	phoneRegex = regexp.MustCompile(`^(?:\+55\s?)?(?:\(\d{2}\)\s?|\d{2}\s?)(?:9\s?)?\d{4}[-\s]?\d{4}$`)
	nonDigit   = regexp.MustCompile(`\D`)
)

const (
	minNameLength    = 2
	minSubjectLength = 3
	minMessageLength = 10
	maxMessageLength = 1000
)

// ValidationResult is the outcome of checking one field.
type ValidationResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

func valid() ValidationResult {
	return ValidationResult{Valid: true}
}

func invalid(message string) ValidationResult {
	return ValidationResult{Message: message}
}

// ValidateField applies the site's rule for field to the trimmed value.
// Unknown fields are always valid.
func ValidateField(field models.ContactField, value string) ValidationResult {
	value = strings.TrimSpace(value)
	length := textLength(value)

	switch field {
	case models.FieldName:
		if length < minNameLength {
			return invalid("Nome deve ter pelo menos 2 caracteres")
		}
		if !nameRegex.MatchString(value) {
			return invalid("Nome deve conter apenas letras")
		}

	case models.FieldEmail:
		if !emailRegex.MatchString(value) {
			return invalid("Email deve ter um formato válido")
		}

	case models.FieldPhone:
		if value != "" && !phoneRegex.MatchString(value) {
			return invalid("Telefone deve ter um formato válido (ex: (11) 99999-9999)")
		}

	case models.FieldSubject:
		if length < minSubjectLength {
			return invalid("Assunto deve ter pelo menos 3 caracteres")
		}

	case models.FieldMessage:
		if length < minMessageLength {
			return invalid("Mensagem deve ter pelo menos 10 caracteres")
		}
		if length > maxMessageLength {
			return invalid("Mensagem deve ter no máximo 1000 caracteres")
		}
	}

	return valid()
}

// textLength counts UTF-16 code units, the unit browsers use for string
// length, so an emoji counts as two.
func textLength(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

// Digits strips everything but 0-9 from s.
func Digits(s string) string {
	return nonDigit.ReplaceAllString(s, "")
}
