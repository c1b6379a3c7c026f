package validation

import (
	"regexp"
	"unicode/utf8"
)

const (
	CodeRequired         = "required"
	CodeTooLong          = "too_long"
	CodeInvalidChars     = "invalid_chars"
	CodeDigitsOnly       = "digits_only"
	CodeWrongLength      = "wrong_length"
	CodeInvalidFormat    = "invalid_format"
	CodeTermsNotAccepted = "terms_not_accepted"
)

const (
	MsgNameRequired    = "El nombre es obligatorio."
	MsgSurnameRequired = "Los apellidos son obligatorios."
	MsgPhoneRequired   = "El teléfono es obligatorio."
	MsgEmailRequired   = "El correo es obligatorio."
	MsgNameTooLong     = "Máximo 15 caracteres."
	MsgSurnameTooLong  = "Máximo 40 caracteres."
	MsgLettersOnly     = "Solo letras y espacios."
	MsgDigitsOnly      = "Solo números."
	MsgPhoneLength     = "Debe tener 9 dígitos."
	MsgEmailFormat     = "Formato de correo inválido."
	MsgTermsRequired   = "Debes aceptar las condiciones."
)

const (
	NameMaxLength    = 15
	SurnameMaxLength = 40
	PhoneLength      = 9
)

// whitespace as understood by browser regular expressions, which is wider than RE2's \s.
const jsSpace = `\s\x0B\p{Zs}\x{2028}\x{2029}\x{FEFF}`

var (
	lettersPattern = regexp.MustCompile(`^[\p{L} ]+$`)
	digitsPattern  = regexp.MustCompile(`^[0-9]+$`)
	// local@domain.tld, deliberately permissive
	emailPattern = regexp.MustCompile(`^[^` + jsSpace + `@]+@[^` + jsSpace + `@]+\.[^` + jsSpace + `@]{2,}$`)
)

type rule struct {
	code    string
	message string
	passes  func(v string) bool
}

// ruleSet is evaluated in order and stops at the first failing rule.
type ruleSet []rule

func (rs ruleSet) evaluate(v string) Result {
	for _, r := range rs {
		if !r.passes(v) {
			return Invalid(r.code, r.message)
		}
	}
	return Valid()
}

func required(message string) rule {
	return rule{code: CodeRequired, message: message, passes: func(v string) bool { return v != "" }}
}

func maxLength(n int, message string) rule {
	return rule{code: CodeTooLong, message: message, passes: func(v string) bool {
		return utf8.RuneCountInString(v) <= n
	}}
}

func exactLength(n int, message string) rule {
	return rule{code: CodeWrongLength, message: message, passes: func(v string) bool {
		return utf8.RuneCountInString(v) == n
	}}
}

func matches(re *regexp.Regexp, code, message string) rule {
	return rule{code: code, message: message, passes: re.MatchString}
}

var (
	nameRules = ruleSet{
		required(MsgNameRequired),
		maxLength(NameMaxLength, MsgNameTooLong),
		matches(lettersPattern, CodeInvalidChars, MsgLettersOnly),
	}
	surnameRules = ruleSet{
		required(MsgSurnameRequired),
		maxLength(SurnameMaxLength, MsgSurnameTooLong),
		matches(lettersPattern, CodeInvalidChars, MsgLettersOnly),
	}
	phoneRules = ruleSet{
		required(MsgPhoneRequired),
		matches(digitsPattern, CodeDigitsOnly, MsgDigitsOnly),
		exactLength(PhoneLength, MsgPhoneLength),
	}
	emailRules = ruleSet{
		required(MsgEmailRequired),
		matches(emailPattern, CodeInvalidFormat, MsgEmailFormat),
	}
)
