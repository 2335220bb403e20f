package platform

import "testing"

// TestSingleInstance verifies the lock excludes a second acquirer and can be
// reacquired after release.
func TestSingleInstance(t *testing.T) {
	const name = "PomoStudyTest"

	guard, err := AcquireSingleInstance(name)
	if err != nil {
		t.Fatalf("first acquire: %v", err)
	}
	if guard.Address() == "" {
		t.Fatal("guard has no address")
	}

	if _, err := AcquireSingleInstance(name); err != ErrAlreadyRunning {
		t.Fatalf("second acquire err = %v, want ErrAlreadyRunning", err)
	}

	if err := guard.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}

	guard, err = AcquireSingleInstance(name)
	if err != nil {
		t.Fatalf("reacquire after release: %v", err)
	}
	_ = guard.Release()
}

// TestPortFromNameStable verifies the derived port is deterministic and in
// range.
func TestPortFromNameStable(t *testing.T) {
	first := portFromName("PomoStudy")
	second := portFromName("PomoStudy")
	if first != second {
		t.Fatalf("port not stable: %d != %d", first, second)
	}
	if first < 20000 || first > 39999 {
		t.Fatalf("port %d out of range", first)
	}
}

// TestReleaseNil verifies releasing a nil guard is a no-op.
func TestReleaseNil(t *testing.T) {
	var guard *InstanceGuard
	if err := guard.Release(); err != nil {
		t.Fatalf("nil release: %v", err)
	}
}
