package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/personform/core"
)

type marker struct{ Label string }
type other struct{ V int }

func TestStoreInsertionOrder(t *testing.T) {
	s := NewStore[marker]()
	s.SetComponent(3, marker{"c"})
	s.SetComponent(1, marker{"a"})
	s.SetComponent(3, marker{"c2"}) // update keeps position

	if diff := cmp.Diff([]core.Entity{3, 1}, s.GetAllEntities()); diff != "" {
		t.Errorf("Entity order mismatch (-want +got):\n%s", diff)
	}
	if m, _ := s.GetComponent(3); m.Label != "c2" {
		t.Errorf("Expected updated component, got %q", m.Label)
	}

	s.RemoveEntity(3)
	if s.HasEntity(3) || s.CountEntities() != 1 {
		t.Errorf("Expected entity 3 removed, count %d", s.CountEntities())
	}
}

func TestCommandsDeferUntilFlush(t *testing.T) {
	w := NewWorld()
	markers := GetStore[marker](w)

	eb := With(With(w.Commands().Spawn(), marker{"m"}), other{7})
	e := eb.Entity()

	if w.Alive(e) {
		t.Fatal("Expected spawn to be deferred")
	}
	if w.Commands().Len() != 1 {
		t.Errorf("Expected 1 queued command, got %d", w.Commands().Len())
	}

	w.Commands().Flush()
	if !markers.HasEntity(e) || !GetStore[other](w).HasEntity(e) {
		t.Fatal("Expected both components after flush")
	}

	w.Commands().Despawn(e)
	if !w.Alive(e) {
		t.Error("Expected despawn to be deferred")
	}
	w.Commands().Flush()
	if w.Alive(e) {
		t.Error("Expected entity gone after flush")
	}
}

// Spawn then despawn in the same batch leaves nothing behind
func TestCommandsApplyInIssueOrder(t *testing.T) {
	w := NewWorld()
	e := With(w.Commands().Spawn(), marker{"short"}).Entity()
	w.Commands().Despawn(e)
	w.Commands().Flush()

	if w.Alive(e) {
		t.Error("Expected spawn+despawn to cancel out")
	}
}

func TestResourceStore(t *testing.T) {
	w := NewWorld()
	AddResource(w.Resources, &other{V: 1})

	got, ok := GetResource[*other](w.Resources)
	if !ok || got.V != 1 {
		t.Fatalf("Expected resource V=1, got %v %v", got, ok)
	}
	AddResource(w.Resources, &other{V: 2})
	if got := MustGetResource[*other](w.Resources); got.V != 2 {
		t.Errorf("Expected replaced resource V=2, got %d", got.V)
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected MustGetResource to panic on missing resource")
		}
	}()
	MustGetResource[*marker](w.Resources)
}
