package cmd

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dentrack/dentrack-go/internal/output"
	"github.com/dentrack/dentrack-go/internal/progress"
	"github.com/dentrack/dentrack-go/internal/store"
)

var (
	meetingTitle    string
	meetingCovers   []string
	meetingOptional bool
)

var meetingCmd = &cobra.Command{
	Use:   "meeting",
	Short: "Manage the meeting catalog",
}

var meetingListCmd = &cobra.Command{
	Use:   "list",
	Short: "List meetings with coverage and turnout",
	RunE:  runMeetingList,
}

var meetingAddCmd = &cobra.Command{
	Use:   "add <date>",
	Short: "Add a meeting",
	Long: `Add a meeting on the given date (the date is the meeting's unique key).
Requirement IDs passed with --covers grant credit to every scout who
attends. Meetings marked --optional never count against attendance.`,
	Args: cobra.ExactArgs(1),
	RunE: runMeetingAdd,
}

var meetingRemoveCmd = &cobra.Command{
	Use:   "remove <date>",
	Short: "Remove a meeting and its attendance",
	Args:  cobra.ExactArgs(1),
	RunE:  runMeetingRemove,
}

var meetingReportCmd = &cobra.Command{
	Use:   "report <date>",
	Short: "Show who attended a meeting and what it covered",
	Args:  cobra.ExactArgs(1),
	RunE:  runMeetingReport,
}

func init() {
	meetingAddCmd.Flags().StringVar(&meetingTitle, "title", "", "meeting title")
	meetingAddCmd.Flags().StringSliceVar(&meetingCovers, "covers", nil, "requirement IDs the meeting covers")
	meetingAddCmd.Flags().BoolVar(&meetingOptional, "optional", false, "mark as an optional event")

	meetingCmd.AddCommand(meetingListCmd)
	meetingCmd.AddCommand(meetingAddCmd)
	meetingCmd.AddCommand(meetingRemoveCmd)
	meetingCmd.AddCommand(meetingReportCmd)
}

func runMeetingList(cmd *cobra.Command, args []string) error {
	_, s, err := loadStore()
	if err != nil {
		return err
	}

	meetings := s.Meetings()
	if len(meetings) == 0 {
		cmd.Println("No meetings yet. Add one with: dentrack meeting add <date> --title ... --covers ...")
		return nil
	}

	table := output.NewTable("Date", "Title", "Covers", "Optional", "Attended")
	for _, m := range meetings {
		table.AddRow(
			m.Date,
			m.Title,
			m.Covered.String(),
			output.DoneIcon(m.Optional),
			fmt.Sprintf("%d/%d", len(s.Attendees(m.Date)), s.DenSize()),
		)
	}
	cmd.Print(table.Render())
	return nil
}

func runMeetingAdd(cmd *cobra.Command, args []string) error {
	_, s, err := loadStore()
	if err != nil {
		return err
	}

	covered := store.NewReqIDList(meetingCovers...)
	for _, id := range covered {
		if !s.HasRequirement(id) {
			log.Warnf("requirement %q is not in the catalog; it will grant no credit", id)
		}
	}

	date, err := store.NormalizeDate(args[0])
	if err != nil {
		return err
	}
	m := store.Meeting{
		Date:     date,
		Title:    meetingTitle,
		Covered:  covered,
		Optional: meetingOptional,
	}
	if err := s.AddMeeting(m); err != nil {
		return err
	}
	if err := s.Save(""); err != nil {
		return err
	}

	cmd.Printf("Added meeting %s %q covering %d requirement(s).\n", date, meetingTitle, len(covered))
	cmd.Printf("Log attendance with: dentrack attend %s <scouts...>\n", date)
	return nil
}

func runMeetingRemove(cmd *cobra.Command, args []string) error {
	_, s, err := loadStore()
	if err != nil {
		return err
	}

	date, err := store.NormalizeDate(args[0])
	if err != nil {
		return err
	}
	if err := s.RemoveMeeting(date); err != nil {
		return err
	}
	if err := s.Save(""); err != nil {
		return err
	}
	cmd.Printf("Removed meeting %s and its attendance records.\n", date)
	return nil
}

func runMeetingReport(cmd *cobra.Command, args []string) error {
	_, s, err := loadStore()
	if err != nil {
		return err
	}

	date, err := store.NormalizeDate(args[0])
	if err != nil {
		return err
	}

	snap := progress.Take(s)
	summary, ok := snap.MeetingReport(date)
	if !ok {
		return fmt.Errorf("no meeting on %s", date)
	}

	m := summary.Meeting
	title := m.Title
	if title == "" {
		title = "(untitled)"
	}
	cmd.Println(output.Header(fmt.Sprintf("Meeting %s: %s", m.Date, title), 72))
	if m.Optional {
		cmd.Println(output.Color("Optional event: absences do not count against attendance.", output.Dim))
	}
	cmd.Println()

	cmd.Printf("Turnout: %d/%d scouts (%s)\n", len(summary.Present), len(summary.Present)+len(summary.Absent), output.FormatPercent(summary.Rate))
	if len(summary.Present) > 0 {
		cmd.Printf("Present: %s\n", strings.Join(summary.Present, ", "))
	}
	if len(summary.Absent) > 0 {
		cmd.Printf("Absent:  %s\n", strings.Join(summary.Absent, ", "))
	}

	if len(summary.Covered) > 0 {
		cmd.Println()
		table := output.NewTable("Req ID", "Adventure", "Requirement")
		for _, req := range summary.Covered {
			table.AddRow(req.ID, req.Adventure, output.Truncate(req.Description, 48))
		}
		cmd.Print(table.Render())
	}
	return nil
}
