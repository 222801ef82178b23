package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/dentrack/dentrack-go/internal/store"
)

var attendCmd = &cobra.Command{
	Use:   "attend <date> [scout]...",
	Short: "Record who attended a meeting",
	Long: `Replace the attendance for the meeting on <date> with the listed
scouts. Every name must be in the roster (matched case-insensitively).
With no scouts, the meeting's attendance is cleared.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAttend,
}

func runAttend(cmd *cobra.Command, args []string) error {
	_, s, err := loadStore()
	if err != nil {
		return err
	}

	date, err := store.NormalizeDate(args[0])
	if err != nil {
		return err
	}

	scouts := make([]string, 0, len(args)-1)
	for _, name := range args[1:] {
		scout, err := requireScout(s, name)
		if err != nil {
			return err
		}
		scouts = append(scouts, scout)
	}

	if err := s.SetAttendance(date, scouts); err != nil {
		return err
	}
	if err := s.Save(""); err != nil {
		return err
	}

	if len(scouts) == 0 {
		cmd.Printf("Cleared attendance for %s.\n", date)
		return nil
	}
	cmd.Printf("Recorded %d scout(s) at %s: %s\n", len(scouts), date, strings.Join(s.Attendees(date), ", "))
	return nil
}
