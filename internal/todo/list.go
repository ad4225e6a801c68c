// Package todo holds the task list and its on-disk representation.
package todo

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// ErrOutOfRange is returned when an index does not name a task.
var ErrOutOfRange = errors.New("task index out of range")

// IndexError reports an index that was outside the list at the time of the call.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: %d", ErrOutOfRange, e.Index)
}

// Unwrap returns ErrOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrOutOfRange
}

// Task is a single to-do entry.
type Task struct {
	Content   string
	Completed bool
}

// List is an ordered, zero-indexed sequence of tasks.
// Insertion order is both display order and storage order.
// The zero value is an empty list ready to use.
type List struct {
	tasks []Task
}

// NewList returns a list holding a copy of tasks.
func NewList(tasks ...Task) *List {
	l := &List{}
	for _, t := range tasks {
		l.tasks = append(l.tasks, Task{Content: strings.TrimSpace(t.Content), Completed: t.Completed})
	}
	return l
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

// All returns the tasks with their current indices.
// The sequence can be ranged over any number of times.
func (l *List) All() iter.Seq2[int, Task] {
	return func(yield func(int, Task) bool) {
		for i, t := range l.tasks {
			if !yield(i, t) {
				return
			}
		}
	}
}

// Tasks returns a copy of the tasks in order.
func (l *List) Tasks() []Task {
	return slices.Clone(l.tasks)
}

// Get returns the task at index i.
func (l *List) Get(i int) (Task, error) {
	if err := l.check(i); err != nil {
		return Task{}, err
	}
	return l.tasks[i], nil
}

// Add appends a new, not completed task.
func (l *List) Add(content string) {
	l.tasks = append(l.tasks, Task{Content: strings.TrimSpace(content)})
}

// Remove deletes the task at index i. Later tasks shift down by one.
func (l *List) Remove(i int) error {
	if err := l.check(i); err != nil {
		return err
	}
	l.tasks = slices.Delete(l.tasks, i, i+1)
	return nil
}

// Update replaces the content of the task at index i.
// The completion flag is left as is.
func (l *List) Update(i int, content string) error {
	if err := l.check(i); err != nil {
		return err
	}
	l.tasks[i].Content = strings.TrimSpace(content)
	return nil
}

// SetCompleted sets the completion flag of the task at index i.
func (l *List) SetCompleted(i int, completed bool) error {
	if err := l.check(i); err != nil {
		return err
	}
	l.tasks[i].Completed = completed
	return nil
}

// Complete marks the task at index i as completed.
func (l *List) Complete(i int) error {
	return l.SetCompleted(i, true)
}

// Uncomplete marks the task at index i as not completed.
func (l *List) Uncomplete(i int) error {
	return l.SetCompleted(i, false)
}

// Clean removes every completed task, keeping the order of the rest.
// Returns the number of tasks removed.
func (l *List) Clean() int {
	before := len(l.tasks)
	l.tasks = slices.DeleteFunc(l.tasks, func(t Task) bool { return t.Completed })
	return before - len(l.tasks)
}

// Purge removes all tasks and returns how many there were.
func (l *List) Purge() int {
	n := len(l.tasks)
	l.tasks = nil
	return n
}

func (l *List) check(i int) error {
	if i < 0 || i >= len(l.tasks) {
		return &IndexError{Index: i, Len: len(l.tasks)}
	}
	return nil
}
