package registry

import "testing"

func TestRegistry_SetGet(t *testing.T) {
	r := New()
	if _, ok := r.GetGlobal("k"); ok {
		t.Fatal("empty registry returned a value")
	}
	r.SetGlobal("k", 42)
	v, ok := r.GetGlobal("k")
	if !ok || v.(int) != 42 {
		t.Errorf("GetGlobal = %v, %v", v, ok)
	}
}

func TestRegistry_LockPanicsOnWrite(t *testing.T) {
	r := New()
	r.SetGlobal("k", 1)
	r.Lock("k")
	if !r.IsLocked("k") {
		t.Fatal("IsLocked = false after Lock")
	}
	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected panic writing a locked key")
			}
		}()
		r.SetGlobal("k", 2)
	}()

	r.UnlockForTesting("k")
	r.SetGlobal("k", 3)
	if v, _ := r.GetGlobal("k"); v.(int) != 3 {
		t.Errorf("value = %v, want 3", v)
	}
}
