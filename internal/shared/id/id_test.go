package id

import (
	"strings"
	"sync"
	"testing"
)

func TestGenerate(t *testing.T) {
	gen := NewGenerator()

	id1 := gen.Generate()
	id2 := gen.Generate()

	if id1.String() == id2.String() {
		t.Error("Generated IDs should be unique")
	}
}

func TestGenerateString(t *testing.T) {
	gen := NewGenerator()

	id := gen.GenerateString()

	if len(id) != 26 {
		t.Errorf("ULID should be 26 characters, got %d", len(id))
	}
}

func TestGenerateWithPrefix(t *testing.T) {
	gen := NewGenerator()

	tests := []struct {
		prefix string
	}{
		{WindowPrefix},
		{AppPrefix},
		{SessionPrefix},
	}

	for _, tt := range tests {
		id := gen.GenerateWithPrefix(tt.prefix)

		if !strings.HasPrefix(id, tt.prefix+"_") {
			t.Errorf("ID should start with '%s_', got: %s", tt.prefix, id)
		}

		parts := strings.Split(id, "_")
		if len(parts) != 2 {
			t.Errorf("Prefixed ID should have format 'prefix_ulid', got: %s", id)
		}

		if !IsValid(parts[1]) {
			t.Errorf("ULID part should be valid: %s", parts[1])
		}
	}
}

func TestTypedIDs(t *testing.T) {
	win := NewWindowID()
	if !strings.HasPrefix(win.String(), "win_") {
		t.Errorf("Window ID should have win_ prefix, got: %s", win)
	}

	sess := NewSessionID()
	if !strings.HasPrefix(sess.String(), "sess_") {
		t.Errorf("Session ID should have sess_ prefix, got: %s", sess)
	}
}

func TestConcurrentGeneration(t *testing.T) {
	gen := NewGenerator()

	const workers = 8
	const perWorker = 100

	var wg sync.WaitGroup
	seen := sync.Map{}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				id := gen.GenerateString()
				if _, dup := seen.LoadOrStore(id, true); dup {
					t.Errorf("Duplicate ID generated: %s", id)
				}
			}
		}()
	}

	wg.Wait()
}

func TestIsValid(t *testing.T) {
	if IsValid("not-a-ulid") {
		t.Error("Expected invalid ULID to fail validation")
	}

	if !IsValid(NewGenerator().GenerateString()) {
		t.Error("Expected generated ULID to pass validation")
	}
}
