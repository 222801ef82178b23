package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dentrack/dentrack-go/internal/catalog"
	"github.com/dentrack/dentrack-go/internal/store"
)

var initScouts []string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the den data directory",
	Long: `Create the data directory and the four relation CSV files. The
requirement catalog is seeded with the built-in catalog for the configured
rank; existing files are never overwritten. Scouts passed with --scout are
added to the roster.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringArrayVar(&initScouts, "scout", nil, "scout to add to the roster (repeatable)")
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, cwd, err := loadConfig()
	if err != nil {
		return err
	}

	rank := cfg.Dentrack.Rank
	if rank == "" {
		rank = "lion"
	}
	seed, known := catalog.ForRank(rank)
	if !known {
		cmd.Printf("No built-in catalog for rank %q (have: %s); starting with an empty catalog.\n",
			rank, strings.Join(catalog.Ranks(), ", "))
	}

	dataDir := cfg.DataPath(cwd)
	firstRun := store.IsFirstRun(dataDir)

	s, err := store.Init(dataDir, seed)
	if err != nil {
		return err
	}

	if len(initScouts) > 0 {
		added, skipped := s.AddScouts(initScouts)
		if added > 0 {
			if err := s.Save(""); err != nil {
				return err
			}
		}
		if len(skipped) > 0 {
			cmd.Printf("Skipped %d scout(s) already in roster: %s\n", len(skipped), strings.Join(skipped, ", "))
		}
		cmd.Printf("Added %d scout(s) to the roster.\n", added)
	}

	if firstRun {
		cmd.Printf("Initialized den data in %s (%d catalog requirements).\n", dataDir, len(s.Requirements()))
		cmd.Println()
		cmd.Println("Next steps:")
		cmd.Println("  dentrack roster add <name>        add your scouts")
		cmd.Println("  dentrack meeting add <date> ...   plan a meeting")
		cmd.Println("  dentrack attend <date> <names>    log who came")
		cmd.Println("  dentrack status                   see den progress")
		return nil
	}

	cmd.Printf("Den data already present in %s; nothing overwritten.\n", dataDir)
	return nil
}

// requireScout resolves a scout argument against the roster, offering a
// case-insensitive match before failing.
func requireScout(s *store.Store, name string) (string, error) {
	if s.HasScout(name) {
		return name, nil
	}
	for _, scout := range s.Scouts() {
		if strings.EqualFold(scout, name) {
			return scout, nil
		}
	}
	return "", fmt.Errorf("scout %q not in roster", name)
}
