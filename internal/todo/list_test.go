package todo_test

import (
	"errors"
	"slices"
	"testing"

	"todo/internal/todo"
)

func contents(l *todo.List) []string {
	var out []string
	for _, t := range l.All() {
		out = append(out, t.Content)
	}
	return out
}

func TestList_AddPreservesOrder(t *testing.T) {
	l := &todo.List{}
	want := []string{"one", "two", "three", "two"}
	for i, s := range want {
		l.Add(s)
		if l.Len() != i+1 {
			t.Fatalf("after %d adds, expected length %d, got %d", i+1, i+1, l.Len())
		}
	}

	if got := contents(l); !slices.Equal(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
	for i, task := range l.All() {
		if task.Completed {
			t.Errorf("task %d should not be completed", i)
		}
	}
}

func TestList_AddTrims(t *testing.T) {
	l := &todo.List{}
	l.Add("  Buy milk \t")

	task, err := l.Get(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Content != "Buy milk" {
		t.Errorf("expected trimmed content, got %q", task.Content)
	}
}

func TestList_AllIsRestartable(t *testing.T) {
	l := todo.NewList(todo.Task{Content: "a"}, todo.Task{Content: "b"})
	seq := l.All()

	var first, second []int
	for i := range seq {
		first = append(first, i)
	}
	for i := range seq {
		second = append(second, i)
	}
	if !slices.Equal(first, []int{0, 1}) || !slices.Equal(second, []int{0, 1}) {
		t.Errorf("expected two identical passes, got %v and %v", first, second)
	}

	// Stopping early must not panic.
	for range seq {
		break
	}
}

func TestList_Remove(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  []string
	}{
		{"first", 0, []string{"b", "c", "d"}},
		{"middle", 1, []string{"a", "c", "d"}},
		{"last", 3, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := todo.NewList(
				todo.Task{Content: "a"},
				todo.Task{Content: "b", Completed: true},
				todo.Task{Content: "c"},
				todo.Task{Content: "d"},
			)
			if err := l.Remove(tt.index); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := contents(l); !slices.Equal(got, tt.want) {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestList_OutOfRange(t *testing.T) {
	orig := []todo.Task{{Content: "a"}, {Content: "b", Completed: true}}

	ops := map[string]func(l *todo.List, i int) error{
		"remove":     func(l *todo.List, i int) error { return l.Remove(i) },
		"update":     func(l *todo.List, i int) error { return l.Update(i, "x") },
		"complete":   func(l *todo.List, i int) error { return l.Complete(i) },
		"uncomplete": func(l *todo.List, i int) error { return l.Uncomplete(i) },
		"get": func(l *todo.List, i int) error {
			_, err := l.Get(i)
			return err
		},
	}

	for name, op := range ops {
		for _, idx := range []int{2, 255, -1} {
			l := todo.NewList(orig...)
			err := op(l, idx)
			if !errors.Is(err, todo.ErrOutOfRange) {
				t.Errorf("%s(%d): expected ErrOutOfRange, got %v", name, idx, err)
			}
			var ie *todo.IndexError
			if !errors.As(err, &ie) || ie.Index != idx || ie.Len != 2 {
				t.Errorf("%s(%d): expected IndexError{%d, 2}, got %#v", name, idx, idx, ie)
			}
			if got := l.Tasks(); !slices.Equal(got, orig) {
				t.Errorf("%s(%d): list changed to %v", name, idx, got)
			}
		}
	}
}

func TestList_IndexErrorMessage(t *testing.T) {
	err := todo.NewList().Remove(7)
	if err.Error() != "task index out of range: 7" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestList_UpdateKeepsCompletion(t *testing.T) {
	l := todo.NewList(todo.Task{Content: "a", Completed: true})

	if err := l.Update(0, "  new text  "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	task, _ := l.Get(0)
	if task.Content != "new text" {
		t.Errorf("expected %q, got %q", "new text", task.Content)
	}
	if !task.Completed {
		t.Error("update should not change completion")
	}
}

func TestList_SetCompletedRoundTrip(t *testing.T) {
	l := todo.NewList(todo.Task{Content: "a"})

	if err := l.SetCompleted(0, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task, _ := l.Get(0); !task.Completed {
		t.Error("expected completed after SetCompleted(true)")
	}
	if err := l.SetCompleted(0, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task, _ := l.Get(0); task.Completed {
		t.Error("expected not completed after SetCompleted(false)")
	}
}

func TestList_Clean(t *testing.T) {
	l := todo.NewList(
		todo.Task{Content: "a", Completed: true},
		todo.Task{Content: "b"},
		todo.Task{Content: "c", Completed: true},
		todo.Task{Content: "d"},
		todo.Task{Content: "e", Completed: true},
	)

	if n := l.Clean(); n != 3 {
		t.Errorf("expected 3 removed, got %d", n)
	}
	if got := contents(l); !slices.Equal(got, []string{"b", "d"}) {
		t.Errorf("expected [b d], got %q", got)
	}
	for _, task := range l.All() {
		if task.Completed {
			t.Errorf("completed task %q survived clean", task.Content)
		}
	}

	if n := l.Clean(); n != 0 {
		t.Errorf("second clean should remove nothing, removed %d", n)
	}
}

func TestList_Purge(t *testing.T) {
	for _, l := range []*todo.List{
		{},
		todo.NewList(todo.Task{Content: "a"}),
		todo.NewList(todo.Task{Content: "a"}, todo.Task{Content: "b", Completed: true}),
	} {
		before := l.Len()
		if n := l.Purge(); n != before {
			t.Errorf("expected %d purged, got %d", before, n)
		}
		if l.Len() != 0 {
			t.Errorf("expected empty list, got length %d", l.Len())
		}
	}
}

func TestList_Scenario(t *testing.T) {
	l := &todo.List{}
	l.Add("Buy milk")
	l.Add("Make todo cli app")
	l.Add("I love linux")

	if l.Len() != 3 {
		t.Fatalf("expected 3 tasks, got %d", l.Len())
	}

	if err := l.Remove(1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got := contents(l); !slices.Equal(got, []string{"Buy milk", "I love linux"}) {
		t.Fatalf("unexpected tasks after remove: %q", got)
	}

	if err := l.Update(1, "Make the greatest todo app ever"); err != nil {
		t.Fatalf("update: %v", err)
	}
	if task, _ := l.Get(1); task.Content != "Make the greatest todo app ever" {
		t.Errorf("unexpected content %q", task.Content)
	}

	if err := l.Complete(1); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if task, _ := l.Get(1); !task.Completed {
		t.Error("expected task 1 completed")
	}
	if err := l.Uncomplete(1); err != nil {
		t.Fatalf("uncomplete: %v", err)
	}
	if task, _ := l.Get(1); task.Completed {
		t.Error("expected task 1 not completed")
	}

	l.Purge()
	if l.Len() != 0 {
		t.Errorf("expected empty list, got %d", l.Len())
	}
}
