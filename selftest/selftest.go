// Package selftest drives the production test of a relay card: every relay
// is cycled on and off in sequence until the operator, watching the LEDs,
// presses a key to deliver the verdict.
package selftest

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/hubertat/relayplus/board"
)

// Result of a completed test. A fatal sweep error is reported separately
// and yields no result at all.
type Result int

const (
	Failed Result = iota
	Passed
)

func (r Result) String() string {
	if r == Passed {
		return "PASS"
	}
	return "FAIL"
}

// dwell keeps each relay state long enough for the operator to see the LED.
const dwell = 150 * time.Millisecond

var relayOrder = [board.ChannelCount]int{1, 2, 3, 4}

// Run sweeps the relays until a key arrives on keys: 'y' confirms the
// sequencing (PASS), any other key fails the test. The verdict line is
// written to out. The keypress is observed at channel boundaries only, never
// mid-write. Whatever the outcome, the card is left with every relay
// released; a write-verify exhaustion or bus failure during the sweep is
// fatal and returned as an error instead of a verdict.
func Run(b *board.Board, keys io.Reader, out io.Writer) (Result, error) {
	verdict := make(chan Result, 1)
	go watchKeys(keys, verdict)

	result, err := sweep(b, verdict)
	b.SetRelays(0)
	if err != nil {
		return Failed, err
	}

	if result == Passed {
		fmt.Fprintln(out, "Relay Test ............................ PASS")
	} else {
		fmt.Fprintln(out, "Relay Test ............................ FAIL!")
	}
	return result, nil
}

// watchKeys posts exactly one verdict after the first byte read. A closed
// or failing reader counts as FAIL so an unattended test cannot pass.
func watchKeys(keys io.Reader, verdict chan<- Result) {
	var buf [1]byte
	if _, err := keys.Read(buf[:]); err != nil {
		verdict <- Failed
		return
	}
	if buf[0] == 'y' || buf[0] == 'Y' {
		verdict <- Passed
	} else {
		verdict <- Failed
	}
}

func sweep(b *board.Board, verdict <-chan Result) (Result, error) {
	for {
		for _, state := range [2]board.State{board.On, board.Off} {
			for _, ch := range relayOrder {
				select {
				case r := <-verdict:
					return r, nil
				default:
				}

				if err := step(b, ch, state); err != nil {
					return Failed, errors.Wrapf(err, "relay %d %s step failed", ch, state)
				}
				time.Sleep(dwell)
			}
		}
	}
}

// step switches one relay and verifies it against the whole-register
// readback: the channel's bit must be present after an ON step and absent
// after an OFF step.
func step(b *board.Board, ch int, state board.State) error {
	bit := uint8(1) << (ch - 1)

	return board.WriteVerify(
		func() error { return b.SetRelay(ch, state) },
		func() (bool, error) {
			relays, err := b.Relays()
			if err != nil {
				return false, err
			}
			if state == board.On {
				return relays&bit != 0, nil
			}
			return relays&bit == 0, nil
		},
	)
}
