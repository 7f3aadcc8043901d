package drivers

import (
	"sync"

	"github.com/pkg/errors"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

var (
	hostOnce sync.Once
	hostErr  error
)

// I2C is an Opener backed by a periph.io I2C bus.
type I2C struct {
	bus i2c.BusCloser
}

// OpenI2C opens the I2C bus with the given periph name or number.
// An empty name picks the first available bus.
func OpenI2C(name string) (*I2C, error) {
	hostOnce.Do(func() {
		_, hostErr = host.Init()
	})
	if hostErr != nil {
		return nil, errors.Wrap(hostErr, "host init failed")
	}

	bus, err := i2creg.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open i2c bus %q", name)
	}

	return &I2C{bus: bus}, nil
}

func (b *I2C) Open(addr uint16) (Conn, error) {
	return &i2cConn{dev: i2c.Dev{Bus: b.bus, Addr: addr}}, nil
}

func (b *I2C) Close() error {
	return b.bus.Close()
}

type i2cConn struct {
	dev i2c.Dev
}

func (c *i2cConn) ReadReg(reg uint8) (value byte, err error) {
	var buf [1]byte
	err = c.dev.Tx([]byte{reg}, buf[:])
	if err != nil {
		return
	}

	value = buf[0]
	return
}

func (c *i2cConn) WriteReg(reg uint8, value byte) error {
	return c.dev.Tx([]byte{reg, value}, nil)
}
