package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dentrack/dentrack-go/internal/output"
	"github.com/dentrack/dentrack-go/internal/progress"
)

var reportSources bool

var reportCmd = &cobra.Command{
	Use:   "report <scout>",
	Short: "Show an individual scout report with den comparison",
	Long: `Report one scout's advancement: adventure rollups, rank eligibility,
how the scout compares to the den averages, missed meetings with the
credit still outstanding, and the attendance rate.

With --sources, list the meeting(s) that granted each completed
requirement.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&reportSources, "sources", false, "show which meetings granted each requirement")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, s, err := loadStore()
	if err != nil {
		return err
	}

	scout, err := requireScout(s, args[0])
	if err != nil {
		return err
	}

	snap := progress.Take(s)
	width := 72

	cmd.Println(output.Header("Scout Report: "+scout, width))
	cmd.Println()

	printAdventureRollups(cmd, snap, scout)

	e := snap.RankEligibility(scout, cfg.Dentrack.MinElectives)
	cmd.Println()
	cmd.Printf("Rank eligibility: required %s, electives %d/%d, earned %s\n",
		output.Checkmark(e.AllRequiredComplete),
		e.CompletedElectives, cfg.Dentrack.MinElectives,
		output.Checkmark(e.RankEarned))

	comparison := snap.Comparison(scout)
	cmd.Println()
	cmd.Println(output.SubHeader("Den Comparison", width))
	printComparison(cmd, comparison)

	if len(comparison.MissedMeetings) > 0 {
		cmd.Println()
		cmd.Println(output.SubHeader("Missed Meetings", width))
		printMissedMeetings(cmd, comparison.MissedMeetings)
	}

	if reportSources {
		cmd.Println()
		cmd.Println(output.SubHeader("Completion Sources", width))
		printSources(cmd, snap, scout)
	}

	return nil
}

func printAdventureRollups(cmd *cobra.Command, snap *progress.Snapshot, scout string) {
	table := output.NewTable("Adventure", "Type", "Progress", "")
	for _, adventure := range snap.RequiredAdventures() {
		completed, total, pct := snap.AdventureProgress(scout, adventure)
		table.AddRow(adventure, "required",
			fmt.Sprintf("%s %d/%d", output.ProgressBar(pct, 10), completed, total),
			output.DoneIcon(snap.AdventureComplete(scout, adventure)))
	}
	for _, adventure := range snap.ElectiveAdventures() {
		completed, total, pct := snap.AdventureProgress(scout, adventure)
		table.AddRow(adventure, "elective",
			fmt.Sprintf("%s %d/%d", output.ProgressBar(pct, 10), completed, total),
			output.DoneIcon(snap.AdventureComplete(scout, adventure)))
	}
	cmd.Print(table.Render())
}

func printComparison(cmd *cobra.Command, c progress.ComparisonReport) {
	table := output.NewTable("Metric", c.Scout, fmt.Sprintf("Den avg (%d scouts)", c.DenSize))
	table.AddRow("Required adventures complete",
		fmt.Sprintf("%d", c.RequiredAdventures),
		fmt.Sprintf("%.1f", c.DenAvgRequiredAdventures))
	table.AddRow("Elective adventures complete",
		fmt.Sprintf("%d", c.ElectiveAdventures),
		fmt.Sprintf("%.1f", c.DenAvgElectiveAdventures))
	table.AddRow("Requirements completed",
		fmt.Sprintf("%d", c.RequirementsCompleted),
		fmt.Sprintf("%.1f", c.DenAvgRequirements))
	cmd.Print(table.Render())
	cmd.Printf("Attendance rate (non-optional meetings): %s\n", output.FormatPercent(c.AttendanceRate))
}

func printMissedMeetings(cmd *cobra.Command, missed []progress.MissedMeeting) {
	table := output.NewTable("Date", "Meeting", "Still Needed")
	for _, m := range missed {
		ids := make([]string, 0, len(m.Incomplete))
		for _, req := range m.Incomplete {
			ids = append(ids, req.ID)
		}
		needed := strings.Join(ids, ", ")
		if needed == "" {
			needed = output.Color("caught up elsewhere", output.Dim)
		}
		table.AddRow(m.Date, m.Title, needed)
	}
	cmd.Print(table.Render())
}

func printSources(cmd *cobra.Command, snap *progress.Snapshot, scout string) {
	sources := snap.CompletionSources(scout)
	if len(sources) == 0 {
		cmd.Println("No completed requirements yet.")
		return
	}
	table := output.NewTable("Req ID", "Earned At")
	for _, req := range snap.Requirements() {
		granting, ok := sources[req.ID]
		if !ok {
			continue
		}
		parts := make([]string, 0, len(granting))
		for _, src := range granting {
			parts = append(parts, fmt.Sprintf("%s (%s)", src.Date, src.Title))
		}
		table.AddRow(req.ID, strings.Join(parts, "; "))
	}
	cmd.Print(table.Render())
}
