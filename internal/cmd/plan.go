package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dentrack/dentrack-go/internal/output"
	"github.com/dentrack/dentrack-go/internal/progress"
)

var planView string

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Prioritize what the next meetings should cover",
	Long: `Rank every required requirement by den-wide completion, lowest first.
The requirements at the top are the ones the fewest scouts have; cover
those at the next meetings.

Views:
  all         every required requirement (default)
  incomplete  only requirements at least one scout is missing
  needed      only requirements below 100% that name the missing scouts`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planView, "view", "all", "which requirements to list: all, incomplete, needed")
}

func runPlan(cmd *cobra.Command, args []string) error {
	_, s, err := loadStore()
	if err != nil {
		return err
	}

	snap := progress.Take(s)
	entries := snap.PlanningReport()
	if len(entries) == 0 {
		cmd.Println("No required requirements in the catalog.")
		return nil
	}

	switch strings.ToLower(planView) {
	case "all":
	case "incomplete", "needed":
		var filtered []progress.PlanningEntry
		for _, e := range entries {
			if !e.AllComplete() {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	default:
		return fmt.Errorf("unknown view %q (expected all, incomplete, or needed)", planView)
	}

	if len(entries) == 0 {
		cmd.Println("Every scout has completed every required requirement.")
		return nil
	}

	cmd.Println(output.Header("Meeting Planner", 72))
	cmd.Println()

	showMissing := strings.EqualFold(planView, "needed")
	headers := []string{"Req ID", "Adventure", "Requirement", "Done", "Coverage"}
	if showMissing {
		headers = append(headers, "Missing")
	}
	table := output.NewTable(headers...)
	for _, e := range entries {
		row := []string{
			e.Requirement.ID,
			e.Requirement.Adventure,
			output.Truncate(e.Requirement.Description, 40),
			fmt.Sprintf("%d/%d", e.Completed, e.TotalScouts),
			fmt.Sprintf("%s %s", output.ProgressBar(e.Percent, 10), output.FormatPercent(e.Percent)),
		}
		if showMissing {
			row = append(row, strings.Join(e.ScoutsMissing, ", "))
		}
		table.AddRow(row...)
	}
	cmd.Print(table.Render())
	return nil
}
