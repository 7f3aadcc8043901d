package cmd

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hubertat/relayplus/board"
)

var writeCmd = &cobra.Command{
	Use:   "write <stack> <channel> <on|off> | write <stack> <value>",
	Short: "Switch relays on or off",
	Long: `Switch a single relay, verifying the change through a readback,
or replace the whole relay register at once.

Examples:
  4relplus write 0 2 on     # relay 2 of card 0 on
  4relplus write 0 2 0      # relay 2 of card 0 off
  4relplus write 1 10       # relays 2 and 4 of card 1 on, 1 and 3 off`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runWrite,
}

func init() {
	rootCmd.AddCommand(writeCmd)
}

func runWrite(cmd *cobra.Command, args []string) error {
	b, bus, err := openBoard(args[0])
	if err != nil {
		return err
	}
	defer bus.Close()

	if len(args) == 3 {
		ch, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.Wrapf(board.ErrInvalidChannel, "channel %q", args[1])
		}
		state, err := board.ParseState(args[2])
		if err != nil {
			return err
		}
		return b.WriteRelay(ch, state)
	}

	value, err := strconv.Atoi(args[1])
	if err != nil {
		return errors.Wrapf(board.ErrInvalidState, "relay value %q", args[1])
	}
	return b.WriteRelays(value)
}
