package service

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

type recorder struct {
	events []string
}

func (r *recorder) svc(name string, deps []string, startErr error) *Func {
	return &Func{
		ID:       name,
		Requires: deps,
		OnStart: func() error {
			r.events = append(r.events, "start "+name)
			return startErr
		},
		OnStop: func() error {
			r.events = append(r.events, "stop "+name)
			return nil
		},
	}
}

func TestHubOrder(t *testing.T) {
	rec := &recorder{}
	h := NewHub(nil)
	h.Register(rec.svc("feed", []string{"scheduler"}, nil))
	h.Register(rec.svc("scheduler", []string{"audio", "recorder"}, nil))
	h.Register(rec.svc("recorder", nil, nil))
	h.Register(rec.svc("audio", nil, nil))

	if err := h.StartAll(); err != nil {
		t.Fatalf("StartAll failed: %v", err)
	}
	h.StopAll()

	want := []string{
		"start audio", "start recorder", "start scheduler", "start feed",
		"stop feed", "stop scheduler", "stop recorder", "stop audio",
	}
	if !reflect.DeepEqual(rec.events, want) {
		t.Errorf("Expected %v, got %v", want, rec.events)
	}
	if len(h.Started()) != 0 {
		t.Errorf("Expected nothing running after StopAll, got %v", h.Started())
	}
}

func TestHubRollback(t *testing.T) {
	rec := &recorder{}
	h := NewHub(nil)
	h.Register(rec.svc("a", nil, nil))
	h.Register(rec.svc("b", []string{"a"}, errors.New("boom")))

	err := h.StartAll()
	if err == nil || !strings.Contains(err.Error(), "service b start failed") {
		t.Fatalf("Expected start failure for b, got %v", err)
	}
	want := []string{"start a", "start b", "stop a"}
	if !reflect.DeepEqual(rec.events, want) {
		t.Errorf("Expected %v, got %v", want, rec.events)
	}
}

func TestHubRegistrationErrors(t *testing.T) {
	h := NewHub(nil)
	if err := h.Register(&Func{ID: "x"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := h.Register(&Func{ID: "x"}); err == nil {
		t.Error("Expected duplicate registration error")
	}

	missing := NewHub(nil)
	missing.Register(&Func{ID: "y", Requires: []string{"ghost"}})
	if err := missing.StartAll(); err == nil || !strings.Contains(err.Error(), "unregistered") {
		t.Errorf("Expected unregistered dependency error, got %v", err)
	}

	cycle := NewHub(nil)
	cycle.Register(&Func{ID: "p", Requires: []string{"q"}})
	cycle.Register(&Func{ID: "q", Requires: []string{"p"}})
	if err := cycle.StartAll(); err == nil || !strings.Contains(err.Error(), "circular") {
		t.Errorf("Expected circular dependency error, got %v", err)
	}
}

func TestMustGet(t *testing.T) {
	h := NewHub(nil)
	h.Register(&Func{ID: "f"})
	if got := MustGet[*Func](h, "f"); got.ID != "f" {
		t.Errorf("Expected f, got %s", got.ID)
	}
	if names := h.Names(); !reflect.DeepEqual(names, []string{"f"}) {
		t.Errorf("Expected [f], got %v", names)
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for missing service")
		}
	}()
	MustGet[*Func](h, "missing")
}
