package board

import (
	"errors"
	"testing"

	"github.com/hubertat/relayplus/drivers"
)

func TestStackAddress(t *testing.T) {
	want := map[int]uint16{
		0: 0x27,
		1: 0x23,
		2: 0x25,
		3: 0x21,
		4: 0x26,
		5: 0x22,
		6: 0x24,
		7: 0x20,
	}

	seen := make(map[uint16]int)
	for stack := 0; stack < 8; stack++ {
		addr, err := StackAddress(stack)
		if err != nil {
			t.Fatalf("StackAddress(%d): %v", stack, err)
		}
		if addr != want[stack] {
			t.Errorf("StackAddress(%d) = %#02x want %#02x", stack, addr, want[stack])
		}
		if addr < 0x20 || addr > 0x27 {
			t.Errorf("StackAddress(%d) = %#02x outside [0x20,0x27]", stack, addr)
		}
		if prev, dup := seen[addr]; dup {
			t.Errorf("address %#02x of stack %d collides with stack %d", addr, stack, prev)
		}
		seen[addr] = stack
	}
}

func TestStackAddressRange(t *testing.T) {
	for _, stack := range []int{-1, 8, 100} {
		_, err := StackAddress(stack)
		if !errors.Is(err, ErrInvalidStack) {
			t.Errorf("StackAddress(%d): got %v want ErrInvalidStack", stack, err)
		}
	}
}

func TestScan(t *testing.T) {
	bus := drivers.NewMockBus()
	for _, stack := range []int{0, 3, 5} {
		addr, err := StackAddress(stack)
		if err != nil {
			t.Fatalf("StackAddress(%d): %v", stack, err)
		}
		bus.AddChip(addr)
	}

	got := Scan(bus)
	want := []int{0, 3, 5}

	if len(got) != len(want) {
		t.Fatalf("Scan found %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Scan found %v want %v", got, want)
			break
		}
	}
}

func TestScanEmptyBus(t *testing.T) {
	found := Scan(drivers.NewMockBus())
	if len(found) != 0 {
		t.Errorf("Scan on empty bus found %v", found)
	}
}
