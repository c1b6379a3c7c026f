package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var blankInputs = []string{"", " ", "   ", "\t\n", "\u00a0\u00a0", "\u3000", "\uFEFF"}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "Ana", "Ana"},
		{"surrounding spaces", "  Ana María  ", "Ana María"},
		{"tabs and newlines", "\tAna\n", "Ana"},
		{"non breaking space", "\u00a0Ana\u00a0", "Ana"},
		{"byte order mark", "\uFEFFAna", "Ana"},
		{"next line is kept", "\u0085Ana", "\u0085Ana"},
		{"inner spaces kept", "a  b", "a  b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestBlankInputIsAlwaysRequired(t *testing.T) {
	validators := map[Kind]func(string) Result{
		KindName:    ValidateName,
		KindSurname: ValidateSurname,
		KindPhone:   ValidatePhone,
		KindEmail:   ValidateEmail,
	}
	for kind, validate := range validators {
		for _, in := range blankInputs {
			res := validate(in)
			assert.False(t, res.OK, "%s(%q)", kind, in)
			assert.Equal(t, CodeRequired, res.Code, "%s(%q)", kind, in)
			assert.NotEmpty(t, res.Message)
		}
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantOK   bool
		wantCode string
	}{
		{"simple", "Ana", true, ""},
		{"with spaces", "Ana María", true, ""},
		{"spanish diacritics", "Íñigo", true, ""},
		{"other scripts", "Дмитрий", true, ""},
		{"exactly 15 letters", strings.Repeat("á", 15), true, ""},
		{"trimmed before counting", "  " + strings.Repeat("a", 15) + "  ", true, ""},
		{"16 letters", strings.Repeat("a", 16), false, CodeTooLong},
		{"digit", "Ana1", false, CodeInvalidChars},
		{"symbol", "Ana-María", false, CodeInvalidChars},
		{"apostrophe", "D'Arcy", false, CodeInvalidChars},
		{"length checked before characters", strings.Repeat("1", 16), false, CodeTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateName(tt.in)
			assert.Equal(t, tt.wantOK, res.OK)
			assert.Equal(t, tt.wantCode, res.Code)
			assert.Equal(t, !tt.wantOK, res.Message != "")
		})
	}

	t.Run("should use the name specific messages", func(t *testing.T) {
		assert.Equal(t, MsgNameRequired, ValidateName("").Message)
		assert.Equal(t, MsgNameTooLong, ValidateName(strings.Repeat("a", 16)).Message)
		assert.Equal(t, MsgLettersOnly, ValidateName("R2D2").Message)
	})
}

func TestValidateSurname(t *testing.T) {
	t.Run("should accept up to 40 letters and spaces", func(t *testing.T) {
		res := ValidateSurname(strings.Repeat("ñ", 20) + " " + strings.Repeat("o", 19))
		assert.True(t, res.OK)
		assert.Empty(t, res.Message)
	})

	t.Run("should reject 41 characters", func(t *testing.T) {
		res := ValidateSurname(strings.Repeat("a", 41))
		assert.False(t, res.OK)
		assert.Equal(t, MsgSurnameTooLong, res.Message)
	})

	t.Run("should reject invalid characters", func(t *testing.T) {
		res := ValidateSurname("García-López")
		assert.Equal(t, CodeInvalidChars, res.Code)
	})

	t.Run("should report missing surname", func(t *testing.T) {
		assert.Equal(t, MsgSurnameRequired, ValidateSurname("  ").Message)
	})
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		in       string
		wantOK   bool
		wantCode string
	}{
		{"123456789", true, ""},
		{" 612345678 ", true, ""},
		{"12345", false, CodeWrongLength},
		{"1234567890", false, CodeWrongLength},
		{"12345678a", false, CodeDigitsOnly},
		{"123 456 789", false, CodeDigitsOnly},
		{"+34612345678", false, CodeDigitsOnly},
		{"١٢٣٤٥٦٧٨٩", false, CodeDigitsOnly},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			res := ValidatePhone(tt.in)
			assert.Equal(t, tt.wantOK, res.OK)
			assert.Equal(t, tt.wantCode, res.Code)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		in     string
		wantOK bool
	}{
		{"a@b.co", true},
		{"ana.garcia@estudio.es", true},
		{"ana+news@sub.domain.com", true},
		{"  a@b.co  ", true},
		{"a@b.c.d", true},
		{"a@b", false},
		{"a@b.c", false},
		{"a b@c.com", false},
		{"a@b c.com", false},
		{"a\u00a0b@c.com", false},
		{"a@@b.com", false},
		{"@b.com", false},
		{"a@.com", false},
		{"plainaddress", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			res := ValidateEmail(tt.in)
			assert.Equal(t, tt.wantOK, res.OK)
			if !tt.wantOK {
				assert.Equal(t, CodeInvalidFormat, res.Code)
				assert.Equal(t, MsgEmailFormat, res.Message)
			}
		})
	}
}

func TestValidateTerms(t *testing.T) {
	assert.Equal(t, Valid(), ValidateTerms(true))

	res := ValidateTerms(false)
	assert.False(t, res.OK)
	assert.Equal(t, MsgTermsRequired, res.Message)
	assert.Equal(t, CodeTermsNotAccepted, res.Code)
}

func TestValidate(t *testing.T) {
	t.Run("should dispatch on kind", func(t *testing.T) {
		res, err := Validate(KindPhone, "123456789")
		require.NoError(t, err)
		assert.True(t, res.OK)

		res, err = Validate(KindEmail, "a@b")
		require.NoError(t, err)
		assert.False(t, res.OK)
	})

	t.Run("should read checkbox values for terms", func(t *testing.T) {
		for _, v := range []string{"on", "true", "1", "yes", " ON "} {
			res, err := Validate(KindTerms, v)
			require.NoError(t, err)
			assert.True(t, res.OK, v)
		}
		for _, v := range []string{"", "off", "false", "0", "nope"} {
			res, err := Validate(KindTerms, v)
			require.NoError(t, err)
			assert.False(t, res.OK, v)
		}
	})

	t.Run("should fail on unknown kind", func(t *testing.T) {
		_, err := Validate(Kind("address"), "x")
		assert.ErrorIs(t, err, ErrUnknownKind)
	})
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Email ")
	require.NoError(t, err)
	assert.Equal(t, KindEmail, k)

	_, err = ParseKind("address")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestValidateContact(t *testing.T) {
	t.Run("should pass a complete form", func(t *testing.T) {
		// given
		form := ContactForm{Name: "Lucía", Surname: "Fernández Ruiz", Phone: "612345678", Email: "lucia@example.es", TermsAccepted: true}

		// when
		report := ValidateContact(form)

		// then
		assert.True(t, report.OK())
		assert.Empty(t, report.Failures())
		assert.Len(t, report, len(Kinds))
	})

	t.Run("should report every failing field", func(t *testing.T) {
		// given
		form := ContactForm{Name: "Lucía", Phone: "12", Email: "lucia@example"}

		// when
		report := ValidateContact(form)

		// then
		assert.False(t, report.OK())
		failures := report.Failures()
		assert.Len(t, failures, 4)
		assert.Equal(t, CodeRequired, failures[KindSurname].Code)
		assert.Equal(t, CodeWrongLength, failures[KindPhone].Code)
		assert.Equal(t, CodeInvalidFormat, failures[KindEmail].Code)
		assert.Equal(t, CodeTermsNotAccepted, failures[KindTerms].Code)
	})

	t.Run("should not be OK when a field is missing from the report", func(t *testing.T) {
		report := Report{KindName: Valid()}
		assert.False(t, report.OK())
	})
}
