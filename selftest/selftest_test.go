package selftest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/hubertat/relayplus/board"
	"github.com/hubertat/relayplus/drivers"
)

func newTestBoard(t testing.TB) (*board.Board, *drivers.MockExpander) {
	t.Helper()

	bus := drivers.NewMockBus()
	addr, err := board.StackAddress(0)
	if err != nil {
		t.Fatalf("StackAddress(0): %v", err)
	}
	chip := bus.AddChip(addr)
	chip.Config = 0x0f

	b, err := board.Open(bus, 0)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return b, chip
}

// blockedKeys never delivers a keypress.
type blockedKeys struct{}

func (blockedKeys) Read(p []byte) (int, error) {
	select {}
}

func TestRunPassVerdict(t *testing.T) {
	b, chip := newTestBoard(t)
	out := &bytes.Buffer{}

	result, err := Run(b, strings.NewReader("y"), out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result != Passed {
		t.Errorf("result = %v want PASS", result)
	}
	if !strings.Contains(out.String(), "PASS") {
		t.Errorf("output %q missing PASS line", out.String())
	}
	if chip.Out&0xf0 != 0 {
		t.Errorf("relays left energised: output register %#02x", chip.Out)
	}
}

func TestRunFailVerdict(t *testing.T) {
	b, chip := newTestBoard(t)
	out := &bytes.Buffer{}

	result, err := Run(b, strings.NewReader("n"), out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result != Failed {
		t.Errorf("result = %v want FAIL", result)
	}
	if !strings.Contains(out.String(), "FAIL!") {
		t.Errorf("output %q missing FAIL line", out.String())
	}
	if chip.Out&0xf0 != 0 {
		t.Errorf("relays left energised: output register %#02x", chip.Out)
	}
}

func TestRunClosedInputFails(t *testing.T) {
	b, _ := newTestBoard(t)
	out := &bytes.Buffer{}

	result, err := Run(b, strings.NewReader(""), out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result != Failed {
		t.Errorf("result = %v want FAIL on closed input", result)
	}
}

func TestRunFatalBusError(t *testing.T) {
	b, chip := newTestBoard(t)
	out := &bytes.Buffer{}
	chip.WriteErr = errors.New("bus glitch")

	_, err := Run(b, blockedKeys{}, out)
	if err == nil {
		t.Fatal("Run succeeded with a failing bus")
	}
	if out.Len() != 0 {
		t.Errorf("fatal sweep emitted a verdict line: %q", out.String())
	}
}

func TestResultString(t *testing.T) {
	if Passed.String() != "PASS" || Failed.String() != "FAIL" {
		t.Errorf("unexpected result strings: %v %v", Passed, Failed)
	}
}
