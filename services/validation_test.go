package services

import (
	"strings"
	"testing"

	"github.com/jrmferreira/construcoes-backend/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
	)
}

func TestValidateField(t *testing.T) {
	tests := []struct {
		name    string
		field   models.ContactField
		value   string
		valid   bool
		message string
	}{
		{"name too short", models.FieldName, "J", false, "Nome deve ter pelo menos 2 caracteres"},
		{"name two letters", models.FieldName, "Jo", true, ""},
		{"name accented", models.FieldName, "João da Conceição", true, ""},
		{"name trimmed", models.FieldName, "   J   ", false, "Nome deve ter pelo menos 2 caracteres"},
		{"name digits", models.FieldName, "R2D2", false, "Nome deve conter apenas letras"},
		{"name punctuation", models.FieldName, "Ana-Maria", false, "Nome deve conter apenas letras"},
		{"name no-break space", models.FieldName, "João\u00A0Silva", true, ""},
		{"name ideographic space", models.FieldName, "Ana\u3000Lima", true, ""},
		{"email no tld", models.FieldEmail, "a@b", false, "Email deve ter um formato válido"},
		{"email ok", models.FieldEmail, "a@b.com", true, ""},
		{"email spaces", models.FieldEmail, "a b@c.com", false, "Email deve ter um formato válido"},
		{"email empty", models.FieldEmail, "", false, "Email deve ter um formato válido"},
		{"email no-break space", models.FieldEmail, "a\u00A0b@c.com", false, "Email deve ter um formato válido"},
		{"email byte order mark", models.FieldEmail, "a@c\uFEFFd.com", false, "Email deve ter um formato válido"},
		{"phone empty", models.FieldPhone, "", true, ""},
		{"phone blank", models.FieldPhone, "   ", true, ""},
		{"phone mobile", models.FieldPhone, "(11) 99999-9999", true, ""},
		{"phone with country", models.FieldPhone, "+55 21 99221-5224", true, ""},
		{"phone landline", models.FieldPhone, "11 3333-4444", true, ""},
		{"phone bare digits", models.FieldPhone, "21992215224", true, ""},
		{"phone short", models.FieldPhone, "12345", false, "Telefone deve ter um formato válido (ex: (11) 99999-9999)"},
		{"subject short", models.FieldSubject, "ab", false, "Assunto deve ter pelo menos 3 caracteres"},
		{"subject ok", models.FieldSubject, "Reforma", true, ""},
		{"message short", models.FieldMessage, "short", false, "Mensagem deve ter pelo menos 10 caracteres"},
		{"message exactly ten", models.FieldMessage, "0123456789", true, ""},
		{"message 500", models.FieldMessage, strings.Repeat("a", 500), true, ""},
		{"message 1000", models.FieldMessage, strings.Repeat("a", 1000), true, ""},
		{"message 1001", models.FieldMessage, strings.Repeat("a", 1001), false, "Mensagem deve ter no máximo 1000 caracteres"},
		{"message accents count once", models.FieldMessage, strings.Repeat("ç", 1000), true, ""},
		{"message emoji count twice", models.FieldMessage, strings.Repeat("🏠", 5), true, ""},
		{"message four emoji too short", models.FieldMessage, strings.Repeat("🏠", 4), false, "Mensagem deve ter pelo menos 10 caracteres"},
		{"message 500 emoji", models.FieldMessage, strings.Repeat("🏠", 500), true, ""},
		{"message 501 emoji", models.FieldMessage, strings.Repeat("🏠", 501), false, "Mensagem deve ter no máximo 1000 caracteres"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateField(tt.field, tt.value)
			assert.Equal(t, tt.valid, got.Valid)
			assert.Equal(t, tt.message, got.Message)
		})
	}
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "5521992215224", Digits("+55 (21) 99221-5224"))
	assert.Equal(t, "", Digits("abc"))
}
