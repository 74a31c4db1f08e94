package debounce

import (
	"sync"
	"testing"
	"time"
)

type recorder struct {
	mu    sync.Mutex
	calls []string
	done  chan struct{}
}

func newRecorder() *recorder {
	return &recorder{done: make(chan struct{}, 16)}
}

func (r *recorder) record(v string) {
	r.mu.Lock()
	r.calls = append(r.calls, v)
	r.mu.Unlock()
	r.done <- struct{}{}
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func TestDebouncer_BurstFiresOnceWithLatest(t *testing.T) {
	rec := newRecorder()
	d := New(30*time.Millisecond, rec.record)

	for _, v := range []string{"w", "wi", "wil", "will"} {
		d.Call(v)
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case <-rec.done:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced function never fired")
	}
	time.Sleep(60 * time.Millisecond)

	got := rec.snapshot()
	if len(got) != 1 || got[0] != "will" {
		t.Fatalf("calls = %v, want [will]", got)
	}
	if d.Pending() {
		t.Fatal("Pending() = true after firing")
	}
}

func TestDebouncer_SeparateBurstsFireSeparately(t *testing.T) {
	rec := newRecorder()
	d := New(10*time.Millisecond, rec.record)

	d.Call("a")
	<-rec.done
	d.Call("b")
	<-rec.done

	got := rec.snapshot()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("calls = %v, want [a b]", got)
	}
}

func TestDebouncer_Flush(t *testing.T) {
	rec := newRecorder()
	d := New(time.Hour, rec.record)

	d.Call("x")
	d.Flush()
	got := rec.snapshot()
	if len(got) != 1 || got[0] != "x" {
		t.Fatalf("calls = %v, want [x]", got)
	}

	d.Flush()
	if n := len(rec.snapshot()); n != 1 {
		t.Fatalf("second Flush fired, calls = %d", n)
	}
}

func TestDebouncer_Stop(t *testing.T) {
	rec := newRecorder()
	d := New(10*time.Millisecond, rec.record)

	d.Call("dropped")
	d.Stop()
	time.Sleep(50 * time.Millisecond)

	if got := rec.snapshot(); len(got) != 0 {
		t.Fatalf("calls = %v, want none", got)
	}
}
