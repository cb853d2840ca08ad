package registry

import (
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

type stubGame struct {
	id    string
	title string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub_b", func() Game { return &stubGame{id: "zz_stub_b", title: "Stub B"} })
	Register("zz_stub_a", func() Game { return &stubGame{id: "zz_stub_a", title: "Stub A"} })

	if !Exists("zz_stub_a") || Exists("zz_missing") {
		t.Error("Exists() does not reflect registrations")
	}

	g, err := Create("zz_stub_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub_a" {
		t.Errorf("Create() returned %q", g.ID())
	}

	if _, err := Create("zz_missing"); err == nil {
		t.Error("Create() should fail for unknown IDs")
	}

	// List is sorted by ID and carries titles.
	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "zz_stub_b" && info.Title != "Stub B" {
			t.Errorf("title = %q, expected Stub B", info.Title)
		}
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List() not sorted: %v", ids)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}
