package cli

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/programstile/studio/pkg/budget"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type QuoteReport struct {
	Available      bool    `json:"available" yaml:"available"`
	SubTotal       float64 `json:"subTotal" yaml:"subTotal"`
	DiscountRate   float64 `json:"discountRate" yaml:"discountRate"`
	DiscountAmount float64 `json:"discountAmount" yaml:"discountAmount"`
	Total          float64 `json:"total" yaml:"total"`
	Formatted      struct {
		SubTotal string `json:"subTotal" yaml:"subTotal"`
		Discount string `json:"discount" yaml:"discount"`
		Total    string `json:"total" yaml:"total"`
	} `json:"formatted" yaml:"formatted"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

func (app *CLIApp) estimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Compute a budget from raw amounts or from catalog ids",
		Example: "  budgetctl estimate --base-price 1000 --months 12 --extras-total 200\n" +
			"  budgetctl estimate --product corporate --months 12 --extra seo --extra blog -o json",
		RunE: app.runEstimate,
	}
	cmd.Flags().Float64("base-price", 0, "Base price of the product in euros")
	cmd.Flags().Float64("extras-total", 0, "Sum of the selected extras in euros")
	cmd.Flags().Float64("months", 0, "Contract length in months")
	cmd.Flags().String("product", "", "Catalog product id, replaces --base-price")
	cmd.Flags().StringArray("extra", nil, "Catalog extra id, repeatable, replaces --extras-total")
	cmd.MarkFlagsMutuallyExclusive("product", "base-price")
	cmd.MarkFlagsMutuallyExclusive("extra", "extras-total")
	return cmd
}

func (app *CLIApp) runEstimate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	flags := cmd.Flags()
	months := floatFlag(cmd, "months")

	var quote budget.Quote
	var err error
	if product, _ := flags.GetString("product"); product != "" {
		cfg, cfgErr := app.loadConfig(cmd)
		if cfgErr != nil {
			return cfgErr
		}
		extras, _ := flags.GetStringArray("extra")
		service := budget.NewBudgetServiceImpl(budget.NewCatalogRepo(cfg.Catalog))
		quote, err = service.Estimate(ctx, budget.Selection{ProductID: product, Months: months, ExtraIDs: extras})
	} else {
		in := budget.Input{
			BasePrice:   floatFlag(cmd, "base-price"),
			Months:      months,
			ExtrasTotal: floatFlag(cmd, "extras-total"),
		}
		quote = budget.UnavailableQuote(in)
		var res budget.Result
		if res, err = budget.ComputeBudget(in); err == nil {
			quote = budget.NewQuote(in, res)
		}
	}

	report := quoteReport(quote, err)
	if renderErr := app.render(cmd, report, func(w io.Writer) { writeQuoteText(w, report) }); renderErr != nil {
		return renderErr
	}
	return err
}

// floatFlag reads a float flag, treating an unset flag as a missing amount.
func floatFlag(cmd *cobra.Command, name string) float64 {
	if !cmd.Flags().Changed(name) {
		return math.NaN()
	}
	v, _ := cmd.Flags().GetFloat64(name)
	return v
}

func quoteReport(quote budget.Quote, err error) QuoteReport {
	report := QuoteReport{
		Available:      quote.Available,
		SubTotal:       quote.Result.SubTotal,
		DiscountRate:   quote.Result.DiscountRate,
		DiscountAmount: quote.Result.DiscountAmount,
		Total:          quote.Result.Total,
	}
	report.Formatted.SubTotal = quote.Formatted.SubTotal
	report.Formatted.Discount = quote.Formatted.Discount
	report.Formatted.Total = quote.Formatted.Total
	if err != nil {
		report.Error = err.Error()
	}
	return report
}

func writeQuoteText(w io.Writer, r QuoteReport) {
	fmt.Fprintf(w, "Subtotal:  %s\n", r.Formatted.SubTotal)
	if r.Available {
		fmt.Fprintf(w, "Descuento: %s (%s%%)\n", r.Formatted.Discount, percent(r.DiscountRate))
	} else {
		fmt.Fprintf(w, "Descuento: %s\n", r.Formatted.Discount)
	}
	fmt.Fprintf(w, "Total:     %s\n", r.Formatted.Total)
}

func percent(rate float64) string {
	return decimal.NewFromFloat(rate).Shift(2).String()
}
