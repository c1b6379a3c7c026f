package cli

import (
	"fmt"
	"io"

	"github.com/programstile/studio/pkg/budget"
	"github.com/spf13/cobra"
)

type DiscountReport struct {
	Months       float64 `json:"months" yaml:"months"`
	DiscountRate float64 `json:"discountRate" yaml:"discountRate"`
}

func (app *CLIApp) discountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "discount",
		Short: "Show the discount rate for a contract length",
		RunE: func(cmd *cobra.Command, args []string) error {
			months, _ := cmd.Flags().GetFloat64("months")
			report := DiscountReport{Months: months, DiscountRate: budget.DiscountRateForMonths(months)}
			return app.render(cmd, report, func(w io.Writer) {
				fmt.Fprintf(w, "%v meses: %s%% de descuento\n", months, percent(report.DiscountRate))
			})
		},
	}
	cmd.Flags().Float64("months", 0, "Contract length in months")
	_ = cmd.MarkFlagRequired("months")
	return cmd
}
