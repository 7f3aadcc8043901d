package drivers

import (
	"github.com/pkg/errors"
)

// MockBus is an in-memory Opener for tests: one expander register file per
// populated address. Addresses without a chip behave like an unacknowledged
// bus transaction.
type MockBus struct {
	Chips  map[uint16]*MockExpander
	Closed bool
}

func NewMockBus() *MockBus {
	return &MockBus{Chips: make(map[uint16]*MockExpander)}
}

// AddChip populates an address with an expander in its power-up state:
// every pin configured as input, input pins pulled high (deasserted).
func (b *MockBus) AddChip(addr uint16) *MockExpander {
	chip := &MockExpander{Config: 0xff, Inputs: 0x0f}
	b.Chips[addr] = chip
	return chip
}

func (b *MockBus) Open(addr uint16) (Conn, error) {
	chip, ok := b.Chips[addr]
	if !ok {
		return &absentChip{addr: addr}, nil
	}
	return chip, nil
}

func (b *MockBus) Close() error {
	b.Closed = true
	return nil
}

// MockExpander models one PCA9538: the output latch is a plain register,
// while an input-port read mixes the latch's output nibble with the Inputs
// pin image.
type MockExpander struct {
	Config   byte
	Polarity byte
	Out      byte
	Inputs   byte

	ReadErr  error
	WriteErr error

	Reads  int
	Writes int
}

func (m *MockExpander) ReadReg(reg uint8) (byte, error) {
	if m.ReadErr != nil {
		return 0, m.ReadErr
	}
	m.Reads++

	switch reg {
	case RegInputPort:
		return (m.Out & 0xf0) | (m.Inputs & 0x0f), nil
	case RegOutputPort:
		return m.Out, nil
	case RegPolarity:
		return m.Polarity, nil
	case RegConfig:
		return m.Config, nil
	}

	return 0, errors.Errorf("mock expander: unknown register 0x%02x", reg)
}

func (m *MockExpander) WriteReg(reg uint8, value byte) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Writes++

	switch reg {
	case RegOutputPort:
		m.Out = value
	case RegPolarity:
		m.Polarity = value
	case RegConfig:
		m.Config = value
	case RegInputPort:
		return errors.New("mock expander: input port is read only")
	default:
		return errors.Errorf("mock expander: unknown register 0x%02x", reg)
	}

	return nil
}

type absentChip struct {
	addr uint16
}

func (a *absentChip) ReadReg(reg uint8) (byte, error) {
	return 0, errors.Errorf("no ack from address 0x%02x", a.addr)
}

func (a *absentChip) WriteReg(reg uint8, value byte) error {
	return errors.Errorf("no ack from address 0x%02x", a.addr)
}
