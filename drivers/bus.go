package drivers

// PCA9538 register map, shared by every card revision.
const (
	RegInputPort  uint8 = 0x00
	RegOutputPort uint8 = 0x01
	RegPolarity   uint8 = 0x02
	RegConfig     uint8 = 0x03
)

// Conn is a register-level connection to a single expander chip.
type Conn interface {
	ReadReg(reg uint8) (byte, error)
	WriteReg(reg uint8, value byte) error
}

// Opener hands out register connections for individual bus addresses and
// owns the underlying bus handle.
type Opener interface {
	Open(addr uint16) (Conn, error)
	Close() error
}
