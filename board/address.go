package board

import (
	"github.com/pkg/errors"

	"github.com/hubertat/relayplus/drivers"
)

const baseAddr = 0x20

// StackAddress maps a stack position to the card's expander bus address.
// The address jumpers permute the position bits before the base offset and
// the jumper lines are inverted, so the transform interleaves and flips:
//
//	addr = (base + ((s & 0b010) | ((s >> 2) & 0b001) | ((s << 2) & 0b100))) ^ 0b111
//
// The permutation is a bijection over [0,7]: every stack level lands on its
// own address in [0x20,0x27].
func StackAddress(stack int) (uint16, error) {
	if stack < 0 || stack > 7 {
		return 0, errors.Wrapf(ErrInvalidStack, "stack level %d", stack)
	}

	sel := uint16(stack&0x02) | uint16((stack>>2)&0x01) | uint16((stack<<2)&0x04)
	return (baseAddr + sel) ^ 0x07, nil
}

// Scan probes all eight stack positions and returns the ones with a card
// answering on the bus. Presence is inferred from a successful read of the
// configuration register; the content is not checked.
func Scan(op drivers.Opener) []int {
	var found []int
	for stack := 0; stack < 8; stack++ {
		addr, err := StackAddress(stack)
		if err != nil {
			continue
		}
		conn, err := op.Open(addr)
		if err != nil {
			continue
		}
		if _, err := conn.ReadReg(drivers.RegConfig); err == nil {
			found = append(found, stack)
		}
	}
	return found
}
