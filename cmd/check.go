package cmd

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sqlward/sqlward/pkg/analyzer"
	"github.com/sqlward/sqlward/pkg/config"
	"github.com/sqlward/sqlward/pkg/reporter"
	"github.com/sqlward/sqlward/pkg/types"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [sql-file]",
	Short: "Analyze SQL statements for problems",
	Long: `Analyze the SQL statements in a file (or stdin when no file is
given) and report every detected problem with its severity,
dimension, and location.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	// Flags for check command
	checkCmd.Flags().StringP("dialect", "d", "", "SQL dialect (default: auto-detect per statement)")
	checkCmd.Flags().StringP("output", "o", "text", "output format (text, json)")
	checkCmd.Flags().StringP("rules-config", "r", "", "path to analysis configuration file")
	checkCmd.Flags().StringSlice("disable", nil, "rule ids to disable")
	checkCmd.Flags().String("min-severity", "", "hide findings below this severity")
	checkCmd.Flags().String("fail-on", "", "exit non-zero when a finding is at or above this severity")

	// Bind flags to viper
	_ = viper.BindPFlag("dialect", checkCmd.Flags().Lookup("dialect"))
	_ = viper.BindPFlag("output", checkCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("rules-config", checkCmd.Flags().Lookup("rules-config"))
	_ = viper.BindPFlag("disable", checkCmd.Flags().Lookup("disable"))
	_ = viper.BindPFlag("min-severity", checkCmd.Flags().Lookup("min-severity"))
	_ = viper.BindPFlag("fail-on", checkCmd.Flags().Lookup("fail-on"))
}

func runCheck(cmd *cobra.Command, args []string) error {
	sql, source, err := readInput(args)
	if err != nil {
		return err
	}
	slog.Debug("input read", "source", source, "size", len(sql))

	cfg, err := loadAnalysisConfig()
	if err != nil {
		return err
	}

	dialect := viper.GetString("dialect")
	if dialect == "" {
		dialect = cfg.Dialect
	}
	disabled := append(cfg.DisabledRules, viper.GetStringSlice("disable")...)

	a, err := analyzer.New(
		analyzer.WithDialect(dialect),
		analyzer.WithDisabledRules(disabled...),
	)
	if err != nil {
		return err
	}

	result := a.Analyze(cmd.Context(), sql)
	for i := range result.Statements {
		result.Statements[i].Location.File = source
	}
	for i := range result.Findings {
		result.Findings[i].Location.File = source
	}

	minSeverity, err := severityFlag("min-severity", cfg.MinSeverity)
	if err != nil {
		return err
	}
	if err := outputResult(result, viper.GetString("output"), minSeverity); err != nil {
		return err
	}

	failOn, err := severityFlag("fail-on", "")
	if err != nil {
		return err
	}
	if failOn != "" && result.HasSeverityAtLeast(failOn) {
		os.Exit(1)
	}
	return nil
}

// readInput returns the SQL text and a display name for locations.
func readInput(args []string) (string, string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", errors.Wrap(err, "read stdin")
		}
		return string(data), "<stdin>", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", errors.Wrapf(err, "read SQL file %s", args[0])
	}
	return string(data), args[0], nil
}

func loadAnalysisConfig() (*config.Config, error) {
	path := viper.GetString("rules-config")
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(path)
}

// severityFlag resolves a severity flag, falling back to a config
// value when the flag is unset.
func severityFlag(name string, fallback types.Severity) (types.Severity, error) {
	s := types.Severity(strings.ToUpper(viper.GetString(name)))
	if s == "" {
		s = fallback
	}
	if s != "" && !s.Valid() {
		return "", errors.Errorf("invalid %s %q", name, s)
	}
	return s, nil
}

func outputResult(result *types.AnalysisResult, format string, minSeverity types.Severity) error {
	switch format {
	case "json":
		r := reporter.NewJSONReporter(os.Stdout)
		r.MinSeverity = minSeverity
		return r.Report(result)
	case "text":
		r := reporter.NewConsoleReporter(os.Stdout)
		r.MinSeverity = minSeverity
		return r.Report(result)
	default:
		return errors.Errorf("unsupported output format: %s", format)
	}
}
