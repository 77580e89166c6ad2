package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sqlward/sqlward/pkg/rules"
	"github.com/sqlward/sqlward/pkg/types"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect the rule catalog",
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered rules",
	RunE:  runRulesList,
}

var rulesSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search rules by id, name, or description",
	Args:  cobra.ExactArgs(1),
	RunE:  runRulesSearch,
}

var rulesStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate rule counts",
	RunE:  runRulesStats,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.AddCommand(rulesListCmd, rulesSearchCmd, rulesStatsCmd)

	for _, c := range []*cobra.Command{rulesListCmd, rulesSearchCmd} {
		c.Flags().String("dimension", "", "filter by dimension")
		c.Flags().String("severity", "", "filter by severity")
	}
	rulesListCmd.Flags().String("prefix", "", "filter by id prefix")

	_ = viper.BindPFlag("rules.dimension", rulesListCmd.Flags().Lookup("dimension"))
	_ = viper.BindPFlag("rules.severity", rulesListCmd.Flags().Lookup("severity"))
	_ = viper.BindPFlag("rules.prefix", rulesListCmd.Flags().Lookup("prefix"))
}

func runRulesList(cmd *cobra.Command, args []string) error {
	registry := rules.Global()

	listed := registry.GetAll()
	if prefix, _ := cmd.Flags().GetString("prefix"); prefix != "" {
		listed = registry.GetByPrefix(prefix)
	}

	filter, err := filterFromFlags(cmd)
	if err != nil {
		return err
	}
	return printRules(applyFilter(listed, filter))
}

func runRulesSearch(cmd *cobra.Command, args []string) error {
	filter, err := filterFromFlags(cmd)
	if err != nil {
		return err
	}
	return printRules(rules.Global().Search(args[0], filter))
}

func runRulesStats(cmd *cobra.Command, args []string) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rules.Global().Stats())
}

func filterFromFlags(cmd *cobra.Command) (rules.SearchFilter, error) {
	var filter rules.SearchFilter

	if s, _ := cmd.Flags().GetString("dimension"); s != "" {
		d := types.Dimension(strings.ToUpper(s))
		if !d.Valid() {
			return filter, fmt.Errorf("invalid dimension %q", s)
		}
		filter.Dimensions = []types.Dimension{d}
	}
	if s, _ := cmd.Flags().GetString("severity"); s != "" {
		sev := types.Severity(strings.ToUpper(s))
		if !sev.Valid() {
			return filter, fmt.Errorf("invalid severity %q", s)
		}
		filter.Severities = []types.Severity{sev}
	}
	return filter, nil
}

func applyFilter(listed []rules.Rule, filter rules.SearchFilter) []rules.Rule {
	if len(filter.Dimensions) == 0 && len(filter.Severities) == 0 {
		return listed
	}
	var out []rules.Rule
	for _, r := range listed {
		if len(filter.Dimensions) > 0 && r.Dimension != filter.Dimensions[0] {
			continue
		}
		if len(filter.Severities) > 0 && r.Severity != filter.Severities[0] {
			continue
		}
		out = append(out, r)
	}
	return out
}

func printRules(listed []rules.Rule) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSEVERITY\tDIMENSION\tNAME")
	for _, r := range listed {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.ID, r.Severity, r.Dimension, r.Name)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d rule(s)\n", len(listed))
	return nil
}
