package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dentrack/dentrack-go/internal/output"
	"github.com/dentrack/dentrack-go/internal/progress"
)

var statusDetail bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show den advancement status",
	Long: `Display adventure completion and rank eligibility for every scout in
the den. With --detail, also print the full per-requirement matrix.`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&statusDetail, "detail", false, "show the per-requirement completion matrix")
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, s, err := loadStore()
	if err != nil {
		return err
	}

	scouts := s.Scouts()
	if len(scouts) == 0 {
		cmd.Println("No scouts in the roster yet. Add scouts with: dentrack roster add <name>")
		return nil
	}

	snap := progress.Take(s)
	width := 72

	title := "Den Status"
	if cfg.Dentrack.DenName != "" {
		title = cfg.Dentrack.DenName + " Status"
	}
	cmd.Println(output.Header(title, width))
	cmd.Println()

	required := snap.RequiredAdventures()
	elective := snap.ElectiveAdventures()

	cmd.Printf("Required Adventures (complete all %d)\n", len(required))
	cmd.Print(adventureTable(snap, scouts, required))
	cmd.Println()

	cmd.Printf("Elective Adventures (complete any %d)\n", cfg.Dentrack.MinElectives)
	cmd.Print(adventureTable(snap, scouts, elective))
	cmd.Println()

	cmd.Println("Rank Eligibility")
	rank := output.NewTable("Scout", "Required", "Electives", "Rank Earned")
	for _, scout := range scouts {
		e := snap.RankEligibility(scout, cfg.Dentrack.MinElectives)
		rank.AddRow(
			scout,
			output.Checkmark(e.AllRequiredComplete),
			fmt.Sprintf("%d / %d", e.CompletedElectives, cfg.Dentrack.MinElectives),
			output.Checkmark(e.RankEarned),
		)
	}
	cmd.Print(rank.Render())

	if statusDetail {
		cmd.Println()
		cmd.Println(output.SubHeader("Requirement Matrix", width))
		matrix := output.NewTable(append([]string{"Requirement"}, scouts...)...)
		for _, req := range snap.Requirements() {
			row := []string{req.ID}
			for _, scout := range scouts {
				row = append(row, output.DoneIcon(snap.Completed(scout, req.ID)))
			}
			matrix.AddRow(row...)
		}
		cmd.Print(matrix.Render())
	}

	return nil
}

// adventureTable renders one progress bar per scout per adventure.
func adventureTable(snap *progress.Snapshot, scouts, adventures []string) string {
	table := output.NewTable(append([]string{"Scout"}, adventures...)...)
	for _, scout := range scouts {
		row := []string{scout}
		for _, adventure := range adventures {
			completed, total, pct := snap.AdventureProgress(scout, adventure)
			cell := fmt.Sprintf("%s %d/%d", output.ProgressBar(pct, 8), completed, total)
			row = append(row, cell)
		}
		table.AddRow(row...)
	}
	return table.Render()
}
