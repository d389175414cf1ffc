package model

import (
	"cmp"
	"slices"
)

// Compare orders tasks: incomplete first, then by priority rank, then by earliest deadline.
func Compare(a, b Task) int {
	if a.Completed != b.Completed {
		if a.Completed {
			return 1
		}
		return -1
	}
	if c := cmp.Compare(a.Priority.Rank(), b.Priority.Rank()); c != 0 {
		return c
	}
	return a.Deadline.Compare(b.Deadline)
}

// SortTasks сортирует на месте, равные элементы сохраняют порядок
func SortTasks(tasks []*Task) {
	slices.SortStableFunc(tasks, func(a, b *Task) int {
		return Compare(*a, *b)
	})
}
