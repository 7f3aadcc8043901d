package cmd

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hubertat/relayplus/board"
)

var inreadCmd = &cobra.Command{
	Use:   "inread <stack> [channel]",
	Short: "Read opto input states",
	Long: `Read one opto input as 0/1, or all four as a bitmask (bit 0 =
input 1). The inputs are wired active-low; a driven input reads as 1.

Examples:
  4relplus inread 0 2    # state of input 2 of card 0
  4relplus inread 0      # all inputs of card 0 as a bitmask`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runInread,
}

func init() {
	rootCmd.AddCommand(inreadCmd)
}

func runInread(cmd *cobra.Command, args []string) error {
	b, bus, err := openBoard(args[0])
	if err != nil {
		return err
	}
	defer bus.Close()

	if len(args) == 2 {
		ch, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.Wrapf(board.ErrInvalidChannel, "channel %q", args[1])
		}
		state, err := b.Input(ch)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d\n", state)
		return nil
	}

	inputs, err := b.Inputs()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d\n", inputs)
	return nil
}
