package cli

import (
	"encoding/json"
	"fmt"

	"github.com/dosewise/dosewise/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Browse saved schedule runs",
		Run:   runHistoryList,
	}
	historyCmd.Flags().String("date", "", "Filter by date YYYY-MM-DD")
	historyCmd.Flags().Int("min-confidence", 0, "Only runs at or above this confidence")
	historyCmd.Flags().IntP("limit", "l", 20, "Max results")
	historyCmd.Flags().Bool("ids-only", false, "Only output run IDs")

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a saved run by ID",
		Args:  cobra.ExactArgs(1),
		Run:   runHistoryGet,
	}

	latestCmd := &cobra.Command{
		Use:   "latest <date>",
		Short: "Show the most recent run for a date",
		Args:  cobra.ExactArgs(1),
		Run:   runHistoryLatest,
	}

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a saved run",
		Long:  "Delete a saved run. Soft-delete by default; --hard removes it permanently.",
		Args:  cobra.ExactArgs(1),
		Run:   runHistoryRm,
	}
	rmCmd.Flags().Bool("hard", false, "Permanently delete")

	searchCmd := &cobra.Command{
		Use:   "search <item>",
		Short: "Find runs that included an item",
		Args:  cobra.ExactArgs(1),
		Run:   runHistorySearch,
	}
	searchCmd.Flags().IntP("limit", "l", 20, "Max results")

	historyCmd.AddCommand(getCmd, latestCmd, rmCmd, searchCmd)
	RootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) {
	date, _ := cmd.Flags().GetString("date")
	minConf, _ := cmd.Flags().GetInt("min-confidence")
	limit, _ := cmd.Flags().GetInt("limit")
	idsOnly, _ := cmd.Flags().GetBool("ids-only")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	records, err := s.List(cmd.Context(), store.ListParams{
		Date:          date,
		MinConfidence: minConf,
		Limit:         limit,
	})
	if err != nil {
		exitErr("history", err)
	}

	if idsOnly {
		for _, r := range records {
			fmt.Println(r.ID)
		}
		return
	}

	b, _ := json.MarshalIndent(records, "", "  ")
	fmt.Println(string(b))
}

func runHistoryGet(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	rec, err := s.Get(cmd.Context(), args[0])
	if err != nil {
		exitErr("get", err)
	}

	b, _ := json.MarshalIndent(rec, "", "  ")
	fmt.Println(string(b))
}

func runHistoryLatest(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	rec, err := s.Latest(cmd.Context(), args[0])
	if err != nil {
		exitErr("latest", err)
	}

	b, _ := json.MarshalIndent(rec, "", "  ")
	fmt.Println(string(b))
}

func runHistoryRm(cmd *cobra.Command, args []string) {
	hard, _ := cmd.Flags().GetBool("hard")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.Rm(cmd.Context(), store.RmParams{ID: args[0], Hard: hard}); err != nil {
		exitErr("rm", err)
	}

	fmt.Printf(`{"ok":true,"id":%q,"hard":%t}`+"\n", args[0], hard)
}

func runHistorySearch(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	records, err := s.Search(cmd.Context(), args[0], limit)
	if err != nil {
		exitErr("search", err)
	}

	b, _ := json.MarshalIndent(records, "", "  ")
	fmt.Println(string(b))
}
