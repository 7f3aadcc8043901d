package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hubertat/relayplus/board"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the stack levels of all connected cards",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	bus, err := openBus()
	if err != nil {
		return err
	}
	defer bus.Close()

	found := board.Scan(bus)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d board(s) detected\n", len(found))
	if len(found) > 0 {
		fmt.Fprint(out, "Id:")
		for _, stack := range found {
			fmt.Fprintf(out, " %d", stack)
		}
		fmt.Fprintln(out)
	}
	return nil
}
