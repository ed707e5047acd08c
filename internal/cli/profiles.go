package cli

import (
	"encoding/json"
	"fmt"

	"github.com/dosewise/dosewise/internal/catalog"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "profiles [name]",
		Short: "List built-in item profiles",
		Long:  "List the built-in item profiles, or show one by canonical name.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runProfiles,
	}

	cmd.Flags().Bool("names-only", false, "Only output canonical names")

	RootCmd.AddCommand(cmd)
}

func runProfiles(cmd *cobra.Command, args []string) {
	if len(args) == 1 {
		p := catalog.ProfileByName(args[0])
		if p == nil {
			exitErr("profiles", fmt.Errorf("no profile for %q", args[0]))
		}
		b, _ := json.MarshalIndent(p, "", "  ")
		fmt.Println(string(b))
		return
	}

	profiles := catalog.Profiles()
	namesOnly, _ := cmd.Flags().GetBool("names-only")
	if namesOnly {
		for _, p := range profiles {
			fmt.Println(p.CanonicalName)
		}
		return
	}

	b, _ := json.MarshalIndent(profiles, "", "  ")
	fmt.Println(string(b))
}
