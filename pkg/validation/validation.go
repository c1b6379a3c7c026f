package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var ErrUnknownKind = errors.New("unknown field kind")

// Result is the outcome of validating a single form field.
// Message and Code are empty if and only if OK is true.
type Result struct {
	OK      bool
	Message string
	Code    string
}

func Valid() Result {
	return Result{OK: true}
}

func Invalid(code, message string) Result {
	return Result{OK: false, Code: code, Message: message}
}

// Kind identifies a contact form field with its own rule set.
type Kind string

const (
	KindName    Kind = "name"
	KindSurname Kind = "surname"
	KindPhone   Kind = "phone"
	KindEmail   Kind = "email"
	KindTerms   Kind = "terms"
)

var Kinds = []Kind{KindName, KindSurname, KindPhone, KindEmail, KindTerms}

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Normalize trims leading and trailing whitespace the way a browser's String.prototype.trim does:
// Unicode spaces, line terminators and the byte order mark, but not U+0085.
func Normalize(raw string) string {
	return strings.TrimFunc(raw, isTrimmable)
}

func isTrimmable(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

func ValidateName(raw string) Result {
	return nameRules.evaluate(Normalize(raw))
}

func ValidateSurname(raw string) Result {
	return surnameRules.evaluate(Normalize(raw))
}

func ValidatePhone(raw string) Result {
	return phoneRules.evaluate(Normalize(raw))
}

func ValidateEmail(raw string) Result {
	return emailRules.evaluate(Normalize(raw))
}

func ValidateTerms(checked bool) Result {
	if !checked {
		return Invalid(CodeTermsNotAccepted, MsgTermsRequired)
	}
	return Valid()
}

// Validate dispatches on the field kind. For KindTerms the value is read as a checkbox
// value: "true", "on", "yes", "checked" and "1" mean checked, anything else means unchecked.
func Validate(kind Kind, value string) (Result, error) {
	switch kind {
	case KindName:
		return ValidateName(value), nil
	case KindSurname:
		return ValidateSurname(value), nil
	case KindPhone:
		return ValidatePhone(value), nil
	case KindEmail:
		return ValidateEmail(value), nil
	case KindTerms:
		return ValidateTerms(IsChecked(value)), nil
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
}

func IsChecked(value string) bool {
	v := strings.ToLower(Normalize(value))
	switch v {
	case "on", "yes", "checked":
		return true
	}
	checked, err := strconv.ParseBool(v)
	return err == nil && checked
}
