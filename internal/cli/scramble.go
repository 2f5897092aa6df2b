package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble [count]",
	Short: "Print a random scramble sequence",
	Long: `Generate a random scramble in standard notation.

The count defaults to 20 moves. Axis, slice and direction are drawn
uniformly, so middle-slice moves (M, E, S) appear alongside face turns.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
}

func runScramble(cmd *cobra.Command, args []string) error {
	count := 20
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid scramble count: %s", args[0])
		}
		count = n
	}

	gen := cubesim.NewScrambleGenerator(nil)
	fmt.Println(cubesim.FormatMoves(gen.Generate(count)))
	return nil
}
