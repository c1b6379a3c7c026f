package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/programstile/studio/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// CLIApp is the budgetctl command tree.
type CLIApp struct {
	rootCmd *cobra.Command
	out     io.Writer
}

func NewCLIApp(out io.Writer) *CLIApp {
	app := &CLIApp{out: out}

	rootCmd := &cobra.Command{
		Use:           "budgetctl",
		Short:         "Offline budget estimates and contact form checks for ProgramStile Studio",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)
	rootCmd.PersistentFlags().StringP("config", "c", "./config/application.yaml", "Path to the YAML configuration file")
	rootCmd.PersistentFlags().StringP("output", "o", OutputText, "Output format: text, json or yaml")

	rootCmd.AddCommand(app.estimateCmd(), app.discountCmd(), app.validateCmd())

	app.rootCmd = rootCmd
	return app
}

func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

func (app *CLIApp) SetArgs(args []string) {
	app.rootCmd.SetArgs(args)
}

func (app *CLIApp) loadConfig(cmd *cobra.Command) (config.Application, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// render prints v in the selected format; text output is produced by the text callback.
func (app *CLIApp) render(cmd *cobra.Command, v any, text func(w io.Writer)) error {
	format, _ := cmd.Flags().GetString("output")
	switch format {
	case OutputText:
		text(app.out)
		return nil
	case OutputJSON:
		enc := json.NewEncoder(app.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case OutputYAML:
		enc := yaml.NewEncoder(app.out)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
