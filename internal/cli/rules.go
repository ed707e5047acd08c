package cli

import (
	"encoding/json"
	"fmt"

	"github.com/dosewise/dosewise/internal/catalog"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rules [key]",
		Short: "List built-in interaction rules",
		Long:  "List the built-in interaction rules, or show one by rule key. Retired rules are included; use --active to filter.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runRules,
	}

	cmd.Flags().Bool("active", false, "Only output active rules")

	RootCmd.AddCommand(cmd)
}

func runRules(cmd *cobra.Command, args []string) {
	if len(args) == 1 {
		r := catalog.RuleByKey(args[0])
		if r == nil {
			exitErr("rules", fmt.Errorf("no rule with key %q", args[0]))
		}
		b, _ := json.MarshalIndent(r, "", "  ")
		fmt.Println(string(b))
		return
	}

	rules := catalog.Rules()
	if active, _ := cmd.Flags().GetBool("active"); active {
		rules = catalog.ActiveRules(nil)
	}

	b, _ := json.MarshalIndent(rules, "", "  ")
	fmt.Println(string(b))
}
