package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sqlward/sqlward/pkg/logger"
	"github.com/sqlward/sqlward/pkg/sqlparser"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sqlward",
	Short: "A static analyzer for SQL",
	Long: `sqlward analyzes SQL statements for security, performance,
reliability, compliance, quality, and cost problems without
executing them.

Supported dialects: ` + dialectList() + `.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sqlward.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable verbose output")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug output")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	logger.Setup(viper.GetBool("verbose"), viper.GetBool("debug"))

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".sqlward" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".sqlward")
	}

	viper.SetEnvPrefix("SQLWARD")
	viper.AutomaticEnv() // read in environment variables that match

	// A missing config file is not an error.
	_ = viper.ReadInConfig()
}

func dialectList() string {
	var names []string
	for _, d := range sqlparser.SupportedDialects() {
		names = append(names, string(d))
	}
	return strings.Join(names, ", ")
}
