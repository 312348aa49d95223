package toodle_test

import (
	"testing"

	"github.com/toodle-app/toodle"
)

func TestCreateItemAssignsUUID(t *testing.T) {
	mgr := toodle.NewListManager()

	a := mgr.CreateItem()
	b := mgr.CreateItem()

	if a.UUID == "" || b.UUID == "" {
		t.Fatal("created item without uuid")
	}
	if a.UUID == b.UUID {
		t.Fatalf("duplicate uuid %q", a.UUID)
	}
	if a.Name != "" || a.DueDate != nil || len(a.Labels) != 0 {
		t.Error("created item not at defaults")
	}
}

func TestInsertionOrder(t *testing.T) {
	mgr := toodle.NewListManager()
	var uuids []string
	for i := 0; i < 5; i++ {
		uuids = append(uuids, mgr.CreateItem().UUID)
	}

	got := mgr.Items()
	if len(got) != 5 {
		t.Fatalf("Items length = %d, want 5", len(got))
	}
	for i, it := range got {
		if it.UUID != uuids[i] {
			t.Errorf("item %d uuid = %q, want %q", i, it.UUID, uuids[i])
		}
	}
}

func TestLookupAndRemove(t *testing.T) {
	mgr := toodle.NewListManager()
	a := mgr.CreateItem()
	b := mgr.CreateItem()

	if got := mgr.Item(a.UUID); got != a {
		t.Error("lookup returned wrong item")
	}
	if got := mgr.Item("nope"); got != nil {
		t.Errorf("lookup of unknown uuid = %v, want nil", got)
	}

	if !mgr.RemoveItem(a.UUID) {
		t.Error("RemoveItem of managed item returned false")
	}
	if mgr.RemoveItem(a.UUID) {
		t.Error("second RemoveItem returned true")
	}
	if mgr.Len() != 1 || mgr.Items()[0] != b {
		t.Error("remaining list wrong after removal")
	}
}

func TestAttachLabel(t *testing.T) {
	mgr := toodle.NewListManager()
	it := mgr.CreateItem()

	urgent := mgr.DefineLabel("urgent", "#FF5F5F")
	home := mgr.DefineLabel("home", "#42A5F5")

	mgr.AttachLabel(it, urgent)
	mgr.AttachLabel(it, home)
	mgr.AttachLabel(it, urgent) // duplicates are fine

	want := []string{"urgent", "home", "urgent"}
	if len(it.Labels) != len(want) {
		t.Fatalf("labels length = %d, want %d", len(it.Labels), len(want))
	}
	for i, l := range it.Labels {
		if l.Name != want[i] {
			t.Errorf("label %d = %q, want %q", i, l.Name, want[i])
		}
	}

	// The catalog entry is a value; attaching stored copies.
	urgent.Name = "renamed"
	if it.Labels[0].Name != "urgent" {
		t.Errorf("attached label aliased the catalog entry: %q", it.Labels[0].Name)
	}
}

func TestLabelCatalog(t *testing.T) {
	mgr := toodle.NewListManager()
	mgr.DefineLabel("a", "#111111")
	mgr.DefineLabel("b", "#222222")

	got := mgr.Labels()
	if len(got) != 2 || got[0].Name != "a" || got[1].Name != "b" {
		t.Fatalf("catalog = %v", got)
	}

	got[0].Name = "mutated"
	if mgr.Labels()[0].Name != "a" {
		t.Error("catalog mutated through returned copy")
	}
}
