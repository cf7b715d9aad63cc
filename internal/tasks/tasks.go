// Package tasks holds the pure list operations behind the store. Every
// function returns a new slice and leaves its input untouched; an id that
// matches nothing is a no-op, not an error.
package tasks

import "github.com/dori/todo/internal/model"

// Toggle returns a copy of tasks with the completion of id inverted
func Toggle(tasks []model.Task, id int) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	for i := range out {
		if out[i].ID == id {
			out[i].Completed = !out[i].Completed
			break
		}
	}
	return out
}

// Remove returns a copy of tasks without the first record matching id
func Remove(tasks []model.Task, id int) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	removed := false
	for _, t := range tasks {
		if !removed && t.ID == id {
			removed = true
			continue
		}
		out = append(out, t)
	}
	return out
}

// Append returns a copy of tasks with t added at the end. The caller
// assigns t.ID.
func Append(tasks []model.Task, t model.Task) []model.Task {
	out := make([]model.Task, len(tasks), len(tasks)+1)
	copy(out, tasks)
	return append(out, t)
}

// FilterByCompletion returns the tasks whose Completed equals completed,
// in order.
func FilterByCompletion(tasks []model.Task, completed bool) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed == completed {
			out = append(out, t)
		}
	}
	return out
}

// ClearCompleted returns the incomplete tasks
func ClearCompleted(tasks []model.Task) []model.Task {
	return FilterByCompletion(tasks, false)
}

// NextID returns one more than the largest id, or 1 for an empty list
func NextID(tasks []model.Task) int {
	maxID := 0
	for _, t := range tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID + 1
}

// Find returns the task with the given id
func Find(tasks []model.Task, id int) (model.Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// DuplicateID returns the first id carried by more than one task
func DuplicateID(tasks []model.Task) (int, bool) {
	seen := make(map[int]struct{}, len(tasks))
	for _, t := range tasks {
		if _, ok := seen[t.ID]; ok {
			return t.ID, true
		}
		seen[t.ID] = struct{}{}
	}
	return 0, false
}

// Visible returns the tasks shown under filter
func Visible(tasks []model.Task, filter model.Filter) []model.Task {
	switch filter {
	case model.FilterActive:
		return FilterByCompletion(tasks, false)
	case model.FilterCompleted:
		return FilterByCompletion(tasks, true)
	default:
		out := make([]model.Task, len(tasks))
		copy(out, tasks)
		return out
	}
}

// Remaining is the "items left" figure for a visible list. Under the
// Completed filter every visible row counts.
func Remaining(visible []model.Task, filter model.Filter) int {
	if filter == model.FilterCompleted {
		return len(visible)
	}
	n := 0
	for _, t := range visible {
		if !t.Completed {
			n++
		}
	}
	return n
}
