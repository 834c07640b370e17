package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/maze-escape/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func register(t *testing.T, id string, f Factory) {
	t.Helper()
	Register(GameInfo{ID: id, Title: "Stub " + id}, f)
	t.Cleanup(func() { unregister(id) })
}

func TestRegisterAndCreate(t *testing.T) {
	register(t, "stub_b", func(Options) (Game, error) { return &stubGame{id: "stub_b"}, nil })
	register(t, "stub_a", func(Options) (Game, error) { return &stubGame{id: "stub_a"}, nil })

	if !Exists("stub_a") {
		t.Fatal("stub_a should exist")
	}

	g, err := Create("stub_a", DefaultOptions())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID() = %q, expected stub_a", g.ID())
	}

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "stub_") {
			ids = append(ids, info.ID)
		}
	}
	if strings.Join(ids, ",") != "stub_a,stub_b" {
		t.Errorf("List() should be sorted, got %v", ids)
	}

	info, ok := Info("stub_b")
	if !ok || info.Title != "Stub stub_b" {
		t.Errorf("Info(stub_b) = %+v, %v", info, ok)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does_not_exist", DefaultOptions()); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestCreateFactoryError(t *testing.T) {
	boom := errors.New("boom")
	register(t, "stub_err", func(Options) (Game, error) { return nil, boom })

	_, err := Create("stub_err", DefaultOptions())
	if !errors.Is(err, boom) {
		t.Errorf("Create error = %v, expected to wrap boom", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	register(t, "stub_dup", func(Options) (Game, error) { return &stubGame{}, nil })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(GameInfo{ID: "stub_dup"}, func(Options) (Game, error) { return &stubGame{}, nil })
}
