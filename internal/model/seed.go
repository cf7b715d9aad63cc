package model

// Seed returns the example tasks loaded at startup. Each call returns a
// fresh slice.
func Seed() []Task {
	return []Task{
		{ID: 1, Title: "Complete online JavaScript course", Completed: true},
		{ID: 2, Title: "Jog around the park 3x"},
		{ID: 3, Title: "10 minutes meditation"},
		{ID: 4, Title: "Read for 1 hour"},
		{ID: 5, Title: "Pick up groceries"},
		{ID: 6, Title: "Complete Todo App on Frontend Mentor"},
	}
}
