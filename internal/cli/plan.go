package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dosewise/dosewise/internal/catalog"
	"github.com/dosewise/dosewise/internal/engine"
	"github.com/dosewise/dosewise/internal/model"
	"github.com/dosewise/dosewise/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a daily schedule",
		Long:  "Generate a daily schedule for a set of items. Items are comma-separated canonical names, each optionally with a dose as name=dose.",
		Run:   runPlan,
	}

	cmd.Flags().StringP("items", "i", "", "Comma-separated items, e.g. levothyroxine,iron-supplement=65mg (required)")
	cmd.Flags().StringP("wake", "w", "", "Wake time HH:MM (default 07:00)")
	cmd.Flags().String("breakfast", "", "Breakfast time HH:MM")
	cmd.Flags().String("lunch", "", "Lunch time HH:MM")
	cmd.Flags().String("dinner", "", "Dinner time HH:MM")
	cmd.Flags().String("date", "", "Schedule date YYYY-MM-DD (default today)")
	cmd.Flags().String("rules", "", "Extra interaction rules YAML file")
	cmd.Flags().String("profiles", "", "Extra item profiles YAML file")
	cmd.Flags().BoolP("save", "s", false, "Save the run to history")

	cmd.MarkFlagRequired("items")

	RootCmd.AddCommand(cmd)
}

func runPlan(cmd *cobra.Command, args []string) {
	itemsStr, _ := cmd.Flags().GetString("items")
	date, _ := cmd.Flags().GetString("date")
	rulesPath, _ := cmd.Flags().GetString("rules")
	profilesPath, _ := cmd.Flags().GetString("profiles")
	save, _ := cmd.Flags().GetBool("save")

	items := parseItems(itemsStr)
	if len(items) == 0 {
		exitErr("plan", fmt.Errorf("at least one item is required"))
	}
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	wake := parseTimeFlag(cmd, "wake")
	meals := model.MealTimes{
		Breakfast: parseTimeFlag(cmd, "breakfast"),
		Lunch:     parseTimeFlag(cmd, "lunch"),
		Dinner:    parseTimeFlag(cmd, "dinner"),
	}

	profiles := catalog.Profiles()
	if profilesPath != "" {
		extra, err := catalog.LoadProfiles(profilesPath)
		if err != nil {
			exitErr("load profiles", err)
		}
		profiles = catalog.MergeProfiles(profiles, extra)
	}

	var extraRules []model.InteractionRule
	if rulesPath != "" {
		loaded, err := catalog.LoadRules(rulesPath)
		if err != nil {
			exitErr("load rules", err)
		}
		extraRules = loaded
	}

	output := engine.Generate(engine.Request{
		Date:     date,
		Items:    items,
		Profiles: profiles,
		Rules:    catalog.ActiveRules(extraRules),
		WakeTime: wake,
		Meals:    meals,
	})

	if save {
		s, err := openStore()
		if err != nil {
			exitErr("open store", err)
		}
		defer s.Close()

		w := engine.DefaultWakeTime
		if wake != nil {
			w = *wake
		}
		rec, err := s.Save(cmd.Context(), store.SaveParams{
			Date:     date,
			WakeTime: w,
			Meals:    meals,
			Items:    items,
			Output:   output,
		})
		if err != nil {
			exitErr("save run", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "saved run %s\n", rec.ID)
	}

	if formatFlag == "text" {
		printScheduleText(output)
		return
	}
	b, _ := json.MarshalIndent(output, "", "  ")
	fmt.Println(string(b))
}

// parseItems splits a comma-separated item list. Each entry is a canonical
// name, optionally followed by =dose.
func parseItems(s string) []model.InputItem {
	var items []model.InputItem
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, dose, _ := strings.Cut(part, "=")
		items = append(items, model.InputItem{
			CanonicalName: strings.TrimSpace(name),
			Dose:          strings.TrimSpace(dose),
		})
	}
	return items
}

func parseTimeFlag(cmd *cobra.Command, name string) *model.TimeOfDay {
	s, _ := cmd.Flags().GetString(name)
	if s == "" {
		return nil
	}
	t, err := model.ParseTimeOfDay(s)
	if err != nil {
		exitErr("--"+name, err)
	}
	return &t
}

func printScheduleText(out model.ScheduleOutput) {
	fmt.Printf("Schedule for %s (confidence %d)\n\n", out.Date, out.OverallConfidence)
	for _, item := range out.Items {
		food := ""
		if item.WithFood {
			food = " (with food)"
		}
		fmt.Printf("  %s  %-9s %s%s\n", item.ScheduledTime, item.SlotLabel, item.DisplayName, food)
		for _, note := range item.Notes {
			fmt.Printf("           - %s\n", note)
		}
	}
	if len(out.Warnings) > 0 {
		fmt.Println("\nWarnings:")
		for _, w := range out.Warnings {
			fmt.Printf("  [%s] %s\n", w.Severity, w.Message)
		}
	}
	fmt.Printf("\n%s\n", out.Disclaimer)
}
