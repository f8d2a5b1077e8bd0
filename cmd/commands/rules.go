package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shieldcli/crscore/internal/crs"
	"github.com/shieldcli/crscore/internal/orchestrate"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect a directory of CRS directive files",
	Long:  `Load and inspect ModSecurity/OWASP Core Rule Set directive files.`,
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every compiled rule found under --rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		return rulesList()
	},
}

var rulesValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Parse every rule file and report parse or round-trip errors",
	RunE: func(cmd *cobra.Command, args []string) error {
		return rulesValidate()
	},
}

func init() {
	rulesCmd.AddCommand(rulesListCmd)
	rulesCmd.AddCommand(rulesValidateCmd)

	rulesCmd.PersistentFlags().StringVar(&ruleDir, "rules", "./rules", "Directory of .conf rule files")
	rulesValidateCmd.Flags().BoolVar(&strictRoundTrip, "strict-round-trip", false, "Fail when format(parse(x)) does not reparse to the same AST")
}

func rulesList() error {
	files, errs := crs.LoadDir(ruleDir, false)
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "parse error: %v\n", e)
	}

	compiled := orchestrate.CompileRules(files)
	if len(compiled) == 0 {
		fmt.Println("No rules found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPHASE\tDISRUPTIVE\tCHAIN LEN\tMSG")
	fmt.Fprintln(w, "--\t-----\t----------\t---------\t---")
	for _, r := range compiled {
		fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%s\n", r.ID, r.Phase, r.Disruptive, len(r.Chain), r.Msg)
	}
	w.Flush()

	fmt.Printf("\nTotal: %d rule(s) across %d file(s)\n", len(compiled), len(files))
	return nil
}

func rulesValidate() error {
	files, errs := crs.LoadDir(ruleDir, strictRoundTrip)
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "%v\n", e)
	}

	fmt.Printf("Loaded %d file(s), %d error(s)\n", len(files), len(errs))
	if len(errs) > 0 {
		os.Exit(1)
	}
	return nil
}
