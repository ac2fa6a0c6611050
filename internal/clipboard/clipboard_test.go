package clipboard

import (
	"errors"
	"testing"
)

type recorder struct {
	got   []string
	err   error
	calls int
}

func (r *recorder) write(text string) error {
	r.calls++
	if r.err != nil {
		return r.err
	}
	r.got = append(r.got, text)
	return nil
}

func TestCopy_Primary(t *testing.T) {
	primary := &recorder{}
	fallback := &recorder{}
	c := NewWith(primary.write, fallback.write)

	method, err := c.Copy("kipp3fn")
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if method != MethodSystem {
		t.Errorf("method: expected %q, got %q", MethodSystem, method)
	}
	if len(primary.got) != 1 || primary.got[0] != "kipp3fn" {
		t.Errorf("primary received %q", primary.got)
	}
	if fallback.calls != 0 {
		t.Errorf("fallback should not run, ran %d times", fallback.calls)
	}
}

func TestCopy_FallsBack(t *testing.T) {
	primary := &recorder{err: ErrUnavailable}
	fallback := &recorder{}
	c := NewWith(primary.write, fallback.write)

	method, err := c.Copy("kipp3fn")
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if method != MethodOSC52 {
		t.Errorf("method: expected %q, got %q", MethodOSC52, method)
	}
	if len(fallback.got) != 1 || fallback.got[0] != "kipp3fn" {
		t.Errorf("fallback received %q", fallback.got)
	}
}

func TestCopy_BothFail(t *testing.T) {
	denied := errors.New("denied")
	c := NewWith((&recorder{err: denied}).write, nil)

	_, err := c.Copy("kipp3fn")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, denied) {
		t.Errorf("expected primary cause in %v", err)
	}
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable in %v", err)
	}
}
