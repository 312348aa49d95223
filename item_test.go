package toodle_test

import (
	"testing"

	"github.com/toodle-app/toodle"
)

func TestNewItemDefaults(t *testing.T) {
	it := toodle.NewItem()

	if it.UUID != "" {
		t.Errorf("UUID = %q, want empty", it.UUID)
	}
	if it.Name != "" {
		t.Errorf("Name = %q, want empty", it.Name)
	}
	if it.DueDate != nil {
		t.Error("DueDate set, want nil")
	}
	if it.CompletionDate != nil {
		t.Error("CompletionDate set, want nil")
	}
	if len(it.Labels) != 0 {
		t.Errorf("Labels length = %d, want 0", len(it.Labels))
	}
}

func TestDates(t *testing.T) {
	t.Run("SecondsRoundTrip", func(t *testing.T) {
		it := toodle.NewItem()
		for _, sec := range []int64{0, -1, 1000, 1700000000} {
			it.SetDueDate(sec)
			got, ok := it.DueDateSeconds()
			if !ok || got != sec {
				t.Errorf("DueDateSeconds after SetDueDate(%d) = (%d, %v)", sec, got, ok)
			}
			if it.DueDate.Nanosecond() != 0 {
				t.Errorf("sub-second component = %d, want 0", it.DueDate.Nanosecond())
			}
		}
	})

	t.Run("AbsentIsNotZero", func(t *testing.T) {
		it := toodle.NewItem()
		if _, ok := it.DueDateSeconds(); ok {
			t.Error("fresh item reports a due date")
		}
		it.SetDueDate(0)
		if sec, ok := it.DueDateSeconds(); !ok || sec != 0 {
			t.Errorf("zero timestamp = (%d, %v), want (0, true)", sec, ok)
		}
		it.ClearDueDate()
		if _, ok := it.DueDateSeconds(); ok {
			t.Error("due date survives clear")
		}
	})

	t.Run("Independence", func(t *testing.T) {
		it := toodle.NewItem()
		it.SetDueDate(1000)
		it.SetCompletionDate(2000)

		it.ClearDueDate()
		if sec, ok := it.CompletionDateSeconds(); !ok || sec != 2000 {
			t.Errorf("completion date after ClearDueDate = (%d, %v), want (2000, true)", sec, ok)
		}

		it.SetDueDate(3000)
		it.ClearCompletionDate()
		if sec, ok := it.DueDateSeconds(); !ok || sec != 3000 {
			t.Errorf("due date after ClearCompletionDate = (%d, %v), want (3000, true)", sec, ok)
		}
	})

	t.Run("Completed", func(t *testing.T) {
		it := toodle.NewItem()
		if it.Completed() {
			t.Error("fresh item reports completed")
		}
		it.SetCompletionDate(1000)
		if !it.Completed() {
			t.Error("item with completion date reports not completed")
		}
	})
}

func TestLabelsCopy(t *testing.T) {
	it := toodle.NewItem()
	it.Labels = []toodle.Label{
		{Name: "urgent", Color: "#FF5F5F"},
		{Name: "home", Color: "#42A5F5"},
	}

	ls := it.LabelsCopy()
	ls[0].Name = "mutated"
	ls = append(ls, toodle.Label{Name: "extra"})
	_ = ls

	if it.Labels[0].Name != "urgent" {
		t.Errorf("item label mutated through copy: %q", it.Labels[0].Name)
	}
	if len(it.Labels) != 2 {
		t.Errorf("item labels length = %d, want 2", len(it.Labels))
	}
}

func TestClone(t *testing.T) {
	it := toodle.NewItem()
	it.UUID = "u-1"
	it.Name = "Buy milk"
	it.SetDueDate(1000)
	it.Labels = []toodle.Label{{Name: "errand", Color: "#66BB6A"}}

	cp := it.Clone()

	if cp.UUID != it.UUID || cp.Name != it.Name {
		t.Errorf("clone fields = (%q, %q), want (%q, %q)", cp.UUID, cp.Name, it.UUID, it.Name)
	}
	if sec, ok := cp.DueDateSeconds(); !ok || sec != 1000 {
		t.Errorf("clone due date = (%d, %v), want (1000, true)", sec, ok)
	}
	if cp.CompletionDate != nil {
		t.Error("clone invented a completion date")
	}

	// No shared memory: mutate the clone, original is unchanged.
	cp.SetDueDate(2000)
	cp.Labels[0].Name = "mutated"
	if sec, _ := it.DueDateSeconds(); sec != 1000 {
		t.Errorf("original due date changed to %d", sec)
	}
	if it.Labels[0].Name != "errand" {
		t.Errorf("original label changed to %q", it.Labels[0].Name)
	}
}
