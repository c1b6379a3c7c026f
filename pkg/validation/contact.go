package validation

type ContactForm struct {
	Name          string
	Surname       string
	Phone         string
	Email         string
	TermsAccepted bool
}

// Report holds the result of every contact field, keyed by kind.
type Report map[Kind]Result

func (r Report) OK() bool {
	for _, k := range Kinds {
		if res, ok := r[k]; !ok || !res.OK {
			return false
		}
	}
	return true
}

// Failures returns the failing fields only.
func (r Report) Failures() Report {
	failed := Report{}
	for k, res := range r {
		if !res.OK {
			failed[k] = res
		}
	}
	return failed
}

func ValidateContact(form ContactForm) Report {
	return Report{
		KindName:    ValidateName(form.Name),
		KindSurname: ValidateSurname(form.Surname),
		KindPhone:   ValidatePhone(form.Phone),
		KindEmail:   ValidateEmail(form.Email),
		KindTerms:   ValidateTerms(form.TermsAccepted),
	}
}
