package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hubertat/relayplus/selftest"
)

var testCmd = &cobra.Command{
	Use:   "test <stack> [resultFile]",
	Short: "Production relay test",
	Long: `Cycle every relay of the card on and off in sequence until a key
is pressed: y confirms the sequencing (PASS), any other key fails the test.
The PASS/FAIL line goes to the result file when one is given, otherwise to
standard output.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runTest,
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	b, bus, err := openBoard(args[0])
	if err != nil {
		return err
	}
	defer bus.Close()

	out := cmd.OutOrStdout()
	if len(args) == 2 {
		file, err := os.Create(args[1])
		if err != nil {
			return errors.Wrapf(err, "failed to open result file %q", args[1])
		}
		defer file.Close()
		out = file
	}

	fmt.Fprint(cmd.OutOrStdout(),
		"Are all relays and LEDs turning on and off in sequence?\n"+
			"Press y for Yes or any key for No....")

	keys := cmd.InOrStdin()
	if restore, err := rawKeys(keys); err == nil && restore != nil {
		defer restore()
	}

	_, err = selftest.Run(b, keys, out)
	fmt.Fprintln(cmd.OutOrStdout())
	return err
}

// rawKeys puts an interactive terminal into raw mode so a single keystroke
// ends the test without waiting for Enter. Non-terminal input (pipes, test
// buffers) is read as-is.
func rawKeys(keys io.Reader) (restore func(), err error) {
	file, ok := keys.(*os.File)
	if !ok || !isatty.IsTerminal(file.Fd()) {
		return nil, nil
	}

	old, err := term.MakeRaw(int(file.Fd()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to set terminal raw mode")
	}
	return func() { term.Restore(int(file.Fd()), old) }, nil
}
