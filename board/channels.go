package board

import (
	"github.com/pkg/errors"

	"github.com/hubertat/relayplus/drivers"
)

func checkChannel(ch int) error {
	if ch < 1 || ch > ChannelCount {
		return errors.Wrapf(ErrInvalidChannel, "channel %d", ch)
	}
	return nil
}

// SetRelay switches a single relay, leaving the other channels untouched.
// The current register is read back first so the write only flips the one
// remapped bit.
func (b *Board) SetRelay(ch int, state State) error {
	if err := checkChannel(ch); err != nil {
		return err
	}

	cur, err := b.conn.ReadReg(drivers.RegInputPort)
	if err != nil {
		return errors.Wrapf(ErrReadFailed, "card %d: %v", b.stack, err)
	}

	switch state {
	case Off:
		cur &^= relayMaskRemap[ch-1]
	case On:
		cur |= relayMaskRemap[ch-1]
	default:
		return errors.Wrapf(ErrInvalidState, "state %d", state)
	}

	if err := b.conn.WriteReg(drivers.RegOutputPort, cur); err != nil {
		return errors.Wrapf(ErrWriteFailed, "card %d: %v", b.stack, err)
	}
	return nil
}

// Relay reads back the state of a single relay.
func (b *Board) Relay(ch int) (State, error) {
	if err := checkChannel(ch); err != nil {
		return stateInvalid, err
	}

	io, err := b.conn.ReadReg(drivers.RegInputPort)
	if err != nil {
		return stateInvalid, errors.Wrapf(ErrReadFailed, "card %d: %v", b.stack, err)
	}

	if io&relayMaskRemap[ch-1] != 0 {
		return On, nil
	}
	return Off, nil
}

// SetRelays replaces the whole output register from a logical relay mask.
// Only the low 4 bits are meaningful on the wire.
func (b *Board) SetRelays(relays uint8) error {
	if err := b.conn.WriteReg(drivers.RegOutputPort, RelayToIO(relays)); err != nil {
		return errors.Wrapf(ErrWriteFailed, "card %d: %v", b.stack, err)
	}
	return nil
}

// Relays reads all four relay states as a logical mask.
func (b *Board) Relays() (uint8, error) {
	io, err := b.conn.ReadReg(drivers.RegInputPort)
	if err != nil {
		return 0, errors.Wrapf(ErrReadFailed, "card %d: %v", b.stack, err)
	}
	return IOToRelay(io), nil
}

// Input reads a single opto input, honoring the active-low wiring.
func (b *Board) Input(ch int) (State, error) {
	if err := checkChannel(ch); err != nil {
		return stateInvalid, err
	}

	io, err := b.conn.ReadReg(drivers.RegInputPort)
	if err != nil {
		return stateInvalid, errors.Wrapf(ErrReadFailed, "card %d: %v", b.stack, err)
	}

	if io&inMaskRemap[ch-1] == 0 {
		return On, nil
	}
	return Off, nil
}

// Inputs reads all four opto inputs as a logical mask.
func (b *Board) Inputs() (uint8, error) {
	io, err := b.conn.ReadReg(drivers.RegInputPort)
	if err != nil {
		return 0, errors.Wrapf(ErrReadFailed, "card %d: %v", b.stack, err)
	}
	return IOToIn(io), nil
}
