package cmd

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hubertat/relayplus/board"
)

var readCmd = &cobra.Command{
	Use:   "read <stack> [channel]",
	Short: "Read relay states",
	Long: `Read one relay as 0/1, or all four as a bitmask (bit 0 = relay 1).

Examples:
  4relplus read 0 2    # state of relay 2 of card 0
  4relplus read 0      # all relays of card 0 as a bitmask`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRead,
}

func init() {
	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
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
		state, err := b.Relay(ch)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d\n", state)
		return nil
	}

	relays, err := b.Relays()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d\n", relays)
	return nil
}
