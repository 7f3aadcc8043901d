package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hubertat/relayplus/board"
	"github.com/hubertat/relayplus/drivers"
)

var busName string

var rootCmd = &cobra.Command{
	Use:   "4relplus",
	Short: "Control stackable 4-relay cards over I2C",
	Long: `Control a stack of up to eight 4-relay cards sharing one I2C bus.
Cards are addressed by their stack level (0..7), set with the onboard
address jumpers. Relay and input channels are numbered 1..4.

Examples:
  4relplus list                # find populated stack levels
  4relplus write 0 2 on        # switch relay 2 of card 0 on
  4relplus write 0 15          # switch all relays of card 0 on
  4relplus read 0              # read card 0 relays as a bitmask
  4relplus inread 0 3          # read opto input 3 of card 0
  4relplus test 0              # production relay test`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command; any error exits with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&busName, "bus", "",
		"I2C bus name or number (default: first available)")
}

// openBus is a variable so command tests can swap in a mock bus.
var openBus = func() (drivers.Opener, error) {
	return drivers.OpenI2C(busName)
}

func parseStack(arg string) (int, error) {
	stack, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Wrapf(board.ErrInvalidStack, "stack level %q", arg)
	}
	return stack, nil
}

// openBoard resolves a stack-level argument into an open card session. The
// caller owns both returned handles and must close the bus on every path.
func openBoard(arg string) (*board.Board, drivers.Opener, error) {
	stack, err := parseStack(arg)
	if err != nil {
		return nil, nil, err
	}

	bus, err := openBus()
	if err != nil {
		return nil, nil, err
	}

	b, err := board.Open(bus, stack)
	if err != nil {
		bus.Close()
		return nil, nil, err
	}
	return b, bus, nil
}
