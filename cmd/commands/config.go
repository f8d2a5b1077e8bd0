package commands

import (
	"fmt"
	"os"

	"github.com/shieldcli/crscore/pkg/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration files",
	Long:  `Manage crscore configuration files`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return configInit()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a configuration file's parsed contents",
	RunE: func(cmd *cobra.Command, args []string) error {
		return configShow()
	},
}

var outputFile string

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().StringVar(&outputFile, "output", "crscore.yaml", "Output file path")
	configShowCmd.Flags().StringVar(&outputFile, "file", "crscore.yaml", "Config file to read")
}

func configInit() error {
	if _, err := os.Stat(outputFile); err == nil {
		fmt.Printf("File %s already exists. Overwrite? (y/n): ", outputFile)
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	cfg := &config.ConfigFile{}
	cfg.Rules.Dir = "./rules"
	cfg.Rules.StrictRoundTrip = false

	cfg.Tests.Dir = "./tests"

	cfg.Logging.TerminalEnabled = true
	cfg.Logging.TerminalLevel = "info"
	cfg.Logging.FilePath = "./crscore.log"
	cfg.Logging.FileFormat = "json"

	if err := config.SaveConfigFile(outputFile, cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		return err
	}

	fmt.Printf("Configuration file created: %s\n", outputFile)
	return nil
}

func configShow() error {
	cfg, err := config.LoadConfigFile(outputFile)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		return err
	}

	fmt.Printf("rules.dir: %s\n", cfg.Rules.Dir)
	fmt.Printf("rules.strict_round_trip: %v\n", cfg.Rules.StrictRoundTrip)
	fmt.Printf("tests.dir: %s\n", cfg.Tests.Dir)
	fmt.Printf("logging.terminal_enabled: %v\n", cfg.Logging.TerminalEnabled)
	fmt.Printf("logging.terminal_level: %s\n", cfg.Logging.TerminalLevel)
	fmt.Printf("logging.file_path: %s\n", cfg.Logging.FilePath)
	fmt.Printf("logging.file_format: %s\n", cfg.Logging.FileFormat)
	return nil
}
