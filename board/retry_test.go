package board

import (
	"errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
)

func TestWriteVerifyExhaustsBudget(t *testing.T) {
	writes, verifies := 0, 0

	err := WriteVerify(
		func() error { writes++; return nil },
		func() (bool, error) { verifies++; return false, nil },
	)

	if !errors.Is(err, ErrVerifyExhausted) {
		t.Errorf("got %v want ErrVerifyExhausted", err)
	}
	if writes != retryTimes {
		t.Errorf("write attempted %d times want %d", writes, retryTimes)
	}
	if verifies != retryTimes {
		t.Errorf("verify attempted %d times want %d", verifies, retryTimes)
	}
}

func TestWriteVerifyWriteFailureAborts(t *testing.T) {
	boom := pkgerrors.New("bus glitch")
	writes, verifies := 0, 0

	err := WriteVerify(
		func() error { writes++; return boom },
		func() (bool, error) { verifies++; return false, nil },
	)

	if !errors.Is(err, boom) {
		t.Errorf("got %v want the write error", err)
	}
	if errors.Is(err, ErrVerifyExhausted) {
		t.Error("write failure reported as verify exhaustion")
	}
	if writes != 1 {
		t.Errorf("write attempted %d times want 1", writes)
	}
	if verifies != 0 {
		t.Errorf("verify attempted %d times want 0", verifies)
	}
}

func TestWriteVerifyReadFailureAborts(t *testing.T) {
	boom := pkgerrors.New("bus glitch")
	writes := 0

	err := WriteVerify(
		func() error { writes++; return nil },
		func() (bool, error) { return false, boom },
	)

	if !errors.Is(err, boom) {
		t.Errorf("got %v want the read error", err)
	}
	if writes != 1 {
		t.Errorf("write attempted %d times want 1", writes)
	}
}

func TestWriteVerifyRecoversFromMismatch(t *testing.T) {
	writes := 0

	err := WriteVerify(
		func() error { writes++; return nil },
		func() (bool, error) { return writes >= 3, nil },
	)

	if err != nil {
		t.Fatalf("got %v want success", err)
	}
	if writes != 3 {
		t.Errorf("write attempted %d times want 3", writes)
	}
}

func TestWriteRelayVerified(t *testing.T) {
	b, _ := newTestBoard(t)

	if err := b.WriteRelay(3, On); err != nil {
		t.Fatalf("WriteRelay: %v", err)
	}

	state, err := b.Relay(3)
	if err != nil {
		t.Fatalf("Relay(3): %v", err)
	}
	if state != On {
		t.Errorf("Relay(3) = %v want on", state)
	}
}

func TestWriteRelaysFullByte(t *testing.T) {
	b, _ := newTestBoard(t)

	if err := b.WriteRelays(255); err != nil {
		t.Fatalf("WriteRelays(255): %v", err)
	}
	assertRelays(t, b, 0b1111)

	if err := b.WriteRelays(0); err != nil {
		t.Fatalf("WriteRelays(0): %v", err)
	}
	assertRelays(t, b, 0)

	for _, value := range []int{-1, 256} {
		if err := b.WriteRelays(value); !errors.Is(err, ErrInvalidState) {
			t.Errorf("WriteRelays(%d): got %v want ErrInvalidState", value, err)
		}
	}
}

func TestWriteRelayValidation(t *testing.T) {
	b, chip := newTestBoard(t)

	if err := b.WriteRelay(0, On); !errors.Is(err, ErrInvalidChannel) {
		t.Errorf("got %v want ErrInvalidChannel", err)
	}
	if err := b.WriteRelay(1, stateInvalid); !errors.Is(err, ErrInvalidState) {
		t.Errorf("got %v want ErrInvalidState", err)
	}
	if chip.Writes != 0 {
		t.Errorf("invalid arguments reached the bus: %d writes", chip.Writes)
	}
}
