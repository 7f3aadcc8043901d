package board

import "github.com/pkg/errors"

// retryTimes bounds every write-verify loop. The bus is subject to
// electrical noise, so a single readback mismatch is common and self-heals;
// a persistent one means the card is broken.
const retryTimes = 10

// WriteVerify repeats a write and readback pair until the readback confirms
// the write, up to the retry budget. Only a mismatch counts as transient: a
// failed bus call in either closure aborts immediately without retrying.
func WriteVerify(write func() error, verify func() (bool, error)) error {
	for retry := retryTimes; retry > 0; retry-- {
		if err := write(); err != nil {
			return err
		}

		ok, err := verify()
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}
	return errors.WithStack(ErrVerifyExhausted)
}

// WriteRelay sets one relay and confirms the change through a readback of
// that channel alone.
func (b *Board) WriteRelay(ch int, state State) error {
	if err := checkChannel(ch); err != nil {
		return err
	}
	if state != Off && state != On {
		return errors.Wrapf(ErrInvalidState, "state %d", state)
	}

	return WriteVerify(
		func() error { return b.SetRelay(ch, state) },
		func() (bool, error) {
			got, err := b.Relay(ch)
			return got == state, err
		},
	)
}

// WriteRelays replaces the whole output register and confirms it. Only the
// four relay bits read back, so verification masks the value accordingly.
func (b *Board) WriteRelays(value int) error {
	if value < 0 || value > 255 {
		return errors.Wrapf(ErrInvalidState, "relay value %d out of range [0..255]", value)
	}

	want := uint8(value) & 0x0f
	return WriteVerify(
		func() error { return b.SetRelays(uint8(value)) },
		func() (bool, error) {
			got, err := b.Relays()
			return got == want, err
		},
	)
}
