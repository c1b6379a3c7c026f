package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/programstile/studio/pkg/validation"
	"github.com/spf13/cobra"
)

var ErrInvalidForm = errors.New("the contact form has invalid fields")

type FieldReport struct {
	Field   string `json:"field" yaml:"field"`
	OK      bool   `json:"ok" yaml:"ok"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
	Code    string `json:"code,omitempty" yaml:"code,omitempty"`
}

type ContactReport struct {
	OK     bool          `json:"ok" yaml:"ok"`
	Fields []FieldReport `json:"fields" yaml:"fields"`
}

func (app *CLIApp) validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check contact form values with the same rules as the website",
		RunE:  app.runValidate,
	}
	cmd.Flags().String("name", "", "Name")
	cmd.Flags().String("surname", "", "Surname")
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().Bool("terms", false, "Terms accepted")
	return cmd
}

func (app *CLIApp) runValidate(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	form := validation.ContactForm{}
	form.Name, _ = flags.GetString("name")
	form.Surname, _ = flags.GetString("surname")
	form.Phone, _ = flags.GetString("phone")
	form.Email, _ = flags.GetString("email")
	form.TermsAccepted, _ = flags.GetBool("terms")

	report := contactReport(validation.ValidateContact(form))
	err := app.render(cmd, report, func(w io.Writer) {
		for _, f := range report.Fields {
			if f.OK {
				fmt.Fprintf(w, "%-8s ok\n", f.Field)
			} else {
				fmt.Fprintf(w, "%-8s %s\n", f.Field, f.Message)
			}
		}
	})
	if err != nil {
		return err
	}
	if !report.OK {
		return ErrInvalidForm
	}
	return nil
}

func contactReport(r validation.Report) ContactReport {
	report := ContactReport{OK: r.OK()}
	for _, kind := range validation.Kinds {
		res := r[kind]
		report.Fields = append(report.Fields, FieldReport{Field: string(kind), OK: res.OK, Message: res.Message, Code: res.Code})
	}
	return report
}
