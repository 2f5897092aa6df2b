package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim/internal/storage"
)

var timesLimit int

var timesCmd = &cobra.Command{
	Use:   "times",
	Short: "List best solve times",
	Long:  `Display the fastest solved sessions recorded in the local database.`,
	RunE:  runTimes,
}

func init() {
	rootCmd.AddCommand(timesCmd)
	timesCmd.Flags().IntVar(&timesLimit, "limit", 10, "Maximum number of times to display")
}

func runTimes(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSessionRepository(db)
	sessions, err := repo.BestTimes(timesLimit)
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("No solved sessions recorded yet. Run 'cubesim play' and solve one!")
		return nil
	}

	fmt.Printf("%-4s %-12s %-7s %-20s\n", "#", "Time", "Moves", "Date")
	for i, s := range sessions {
		duration := time.Duration(*s.DurationMs) * time.Millisecond
		fmt.Printf("%-4d %-12s %-7d %-20s\n",
			i+1,
			formatDuration(duration),
			s.MoveCount,
			s.StartedAt.Local().Format("2006-01-02 15:04"),
		)
	}
	return nil
}

// formatDuration renders a solve time as m:ss.mmm.
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := d.Seconds() - float64(minutes)*60
	if minutes > 0 {
		return fmt.Sprintf("%d:%06.3f", minutes, seconds)
	}
	return fmt.Sprintf("%.3f", seconds)
}
