package game

import "testing"

func TestFirstJoinerIsHost(t *testing.T) {
	r := NewRoster()

	first := r.Join("p1", "Alice")
	if !first.IsHost {
		t.Error("first joiner should be host")
	}
	if !first.IsReady {
		t.Error("host should start ready")
	}

	for i, id := range []string{"p2", "p3", "p4"} {
		p := r.Join(id, "Player")
		if p.IsHost {
			t.Errorf("joiner %d should not be host", i+2)
		}
		if p.IsReady {
			t.Errorf("joiner %d should not start ready", i+2)
		}
	}

	hosts := 0
	for _, p := range r.Players() {
		if p.IsHost {
			hosts++
		}
	}
	if hosts != 1 {
		t.Errorf("roster has %d hosts, want exactly 1", hosts)
	}
}

func TestHostStatusDoesNotTransfer(t *testing.T) {
	r := NewRoster()
	r.Join("p1", "Alice")
	r.Join("p2", "Bob")

	removed := r.Remove("p1")
	if removed == nil || !removed.IsHost {
		t.Fatal("expected to remove the host")
	}

	if p := r.Get("p2"); p.IsHost {
		t.Error("host status must not transfer to a remaining player")
	}
}

func TestSetReady(t *testing.T) {
	r := NewRoster()
	r.Join("p1", "Alice")
	r.Join("p2", "Bob")

	if r.AllReady() {
		t.Error("roster with a not-ready player should not be all ready")
	}

	r.SetReady("p2", true)
	if !r.AllReady() {
		t.Error("expected all ready after second player toggled")
	}

	r.SetReady("p2", false)
	if r.AllReady() {
		t.Error("expected not all ready after toggle back")
	}

	// Unknown ids are ignored without error.
	r.SetReady("ghost", true)
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
}

func TestAllReadyVacuouslyTrueWhenEmpty(t *testing.T) {
	if !NewRoster().AllReady() {
		t.Error("empty roster should be vacuously all ready")
	}
}

func TestRemove(t *testing.T) {
	r := NewRoster()
	r.Join("p1", "Alice")
	r.Join("p2", "Bob")
	r.Join("p3", "Carol")

	removed := r.Remove("p2")
	if removed == nil || removed.Name != "Bob" {
		t.Fatalf("Remove returned %+v, want Bob", removed)
	}
	if r.Remove("p2") != nil {
		t.Error("removing twice should return nil")
	}

	players := r.Players()
	if len(players) != 2 || players[0].ID != "p1" || players[1].ID != "p3" {
		t.Errorf("arrival order not preserved after removal: %+v", players)
	}
}
