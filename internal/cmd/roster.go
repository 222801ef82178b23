package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dentrack/dentrack-go/internal/output"
	"github.com/dentrack/dentrack-go/internal/progress"
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Manage the den roster",
}

var rosterListCmd = &cobra.Command{
	Use:   "list",
	Short: "List scouts with their overall progress",
	RunE:  runRosterList,
}

var rosterAddCmd = &cobra.Command{
	Use:   "add <name>...",
	Short: "Add scouts to the roster",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRosterAdd,
}

var rosterRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a scout from the roster",
	Long: `Remove a scout from the roster. The scout's attendance records are
kept, so re-adding the scout later restores their progress.`,
	Args: cobra.ExactArgs(1),
	RunE: runRosterRemove,
}

func init() {
	rosterCmd.AddCommand(rosterListCmd)
	rosterCmd.AddCommand(rosterAddCmd)
	rosterCmd.AddCommand(rosterRemoveCmd)
}

func runRosterList(cmd *cobra.Command, args []string) error {
	_, s, err := loadStore()
	if err != nil {
		return err
	}

	scouts := s.Scouts()
	if len(scouts) == 0 {
		cmd.Println("Roster is empty. Add scouts with: dentrack roster add <name>")
		return nil
	}

	snap := progress.Take(s)
	total := len(snap.Requirements())

	table := output.NewTable("Scout", "Requirements", "Progress")
	for _, scout := range scouts {
		done := 0
		for _, req := range snap.Requirements() {
			if snap.Completed(scout, req.ID) {
				done++
			}
		}
		pct := 0.0
		if total > 0 {
			pct = float64(done) / float64(total) * 100
		}
		table.AddRow(scout,
			fmt.Sprintf("%d/%d", done, total),
			fmt.Sprintf("%s %s", output.ProgressBar(pct, 10), output.FormatPercent(pct)))
	}
	cmd.Print(table.Render())
	return nil
}

func runRosterAdd(cmd *cobra.Command, args []string) error {
	_, s, err := loadStore()
	if err != nil {
		return err
	}

	added, skipped := s.AddScouts(args)
	for _, name := range skipped {
		cmd.Printf("Skipped %q: already in roster.\n", name)
	}
	if added == 0 {
		return nil
	}
	if err := s.Save(""); err != nil {
		return err
	}
	cmd.Printf("Added %d scout(s). Roster has %d scouts.\n", added, s.DenSize())
	return nil
}

func runRosterRemove(cmd *cobra.Command, args []string) error {
	_, s, err := loadStore()
	if err != nil {
		return err
	}

	scout, err := requireScout(s, args[0])
	if err != nil {
		return err
	}
	if err := s.RemoveScout(scout); err != nil {
		return err
	}
	if err := s.Save(""); err != nil {
		return err
	}
	cmd.Printf("Removed %q from the roster. Attendance history kept.\n", scout)
	return nil
}
