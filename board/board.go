package board

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/hubertat/relayplus/drivers"
)

// cfgSentinel configures the expander's low nibble as inputs and high
// nibble as outputs; its presence marks an already-initialised card.
const cfgSentinel = 0x0f

// State of a single relay or opto input.
type State uint8

const (
	Off State = 0
	On  State = 1

	stateInvalid State = 0xff
)

func (s State) String() string {
	switch s {
	case Off:
		return "off"
	case On:
		return "on"
	}
	return "invalid"
}

// ParseState understands the state tokens accepted on the command line.
func ParseState(token string) (State, error) {
	switch strings.ToLower(token) {
	case "on", "up", "1":
		return On, nil
	case "off", "down", "0":
		return Off, nil
	}
	return stateInvalid, errors.Wrapf(ErrInvalidState, "state %q", token)
}

// Board is an open session to one relay card. It is not safe for concurrent
// use; the self-test's single sweep goroutine is the only writer there.
type Board struct {
	conn  drivers.Conn
	stack int
}

// Open locates the card at the given stack level and initialises its pin
// directions on first use after power-up. The configuration register doubles
// as the presence probe: a card that does not answer the read is reported as
// not detected. Initialisation runs only when the direction sentinel is
// absent, so reopening a live card never disturbs relay state.
func Open(op drivers.Opener, stack int) (*Board, error) {
	addr, err := StackAddress(stack)
	if err != nil {
		return nil, err
	}

	conn, err := op.Open(addr)
	if err != nil {
		return nil, errors.Wrapf(ErrNotDetected, "card %d: %v", stack, err)
	}

	cfg, err := conn.ReadReg(drivers.RegConfig)
	if err != nil {
		return nil, errors.Wrapf(ErrNotDetected, "card %d: %v", stack, err)
	}

	if cfg != cfgSentinel {
		// Fresh expander: make 4 pins input, 4 output, all relays released.
		if err := conn.WriteReg(drivers.RegConfig, cfgSentinel); err != nil {
			return nil, errors.Wrapf(err, "failed to configure card %d", stack)
		}
		if err := conn.WriteReg(drivers.RegOutputPort, 0); err != nil {
			return nil, errors.Wrapf(err, "failed to clear card %d outputs", stack)
		}
	}

	return &Board{conn: conn, stack: stack}, nil
}

// Stack returns the stack level the session was opened for.
func (b *Board) Stack() int {
	return b.stack
}

// Close releases the underlying connection when the transport supports it.
// The bus handle itself belongs to the Opener.
func (b *Board) Close() error {
	if closer, ok := b.conn.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
