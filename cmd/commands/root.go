package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "crscore",
	Short: "crscore - a ModSecurity/OWASP Core Rule Set directive engine",
	Long: `crscore parses ModSecurity/OWASP Core Rule Set directive files (SecRule,
SecAction, SecMarker, SecComponentSignature), extracts the variables those
rules reference from an HTTP request, evaluates the rules' operators against
them, and runs FTW-format YAML test suites against the result.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default to 'test' when no subcommand is given.
		return testCmd.RunE(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./crscore.yaml)")

	// Add subcommands
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(configCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in current directory
		viper.AddConfigPath(".")
		viper.SetConfigName("crscore")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it but don't fail if it's not found
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
