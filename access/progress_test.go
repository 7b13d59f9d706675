package access

import "testing"

func TestCourseProgressPercent(t *testing.T) {
	tests := []struct {
		name      string
		lessons   int
		completed int
		want      int
	}{
		{"empty course", 0, 0, 0},
		{"nothing done", 4, 0, 0},
		{"half done", 4, 2, 50},
		{"rounds up", 3, 2, 67},
		{"rounds down", 3, 1, 33},
		{"all done", 4, 4, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			store.addModule(1, 100, 1, false)
			for i := 0; i < tt.lessons; i++ {
				id := uint(10 + i)
				store.addLesson(id, 1, i+1, "L")
				if i < tt.completed {
					store.completeLesson(7, id)
				}
			}
			r := NewResolver(store)

			got := r.CourseProgressPercent(7, 100)
			if got != tt.want {
				t.Errorf("CourseProgressPercent = %d, want %d", got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("CourseProgressPercent = %d, out of [0,100]", got)
			}
		})
	}
}

func TestCourseProgressPercent_OtherUserUnaffected(t *testing.T) {
	store := newFakeStore()
	store.addModule(1, 100, 1, false)
	store.addLesson(10, 1, 1, "L1")
	store.addLesson(11, 1, 2, "L2")
	store.completeLesson(7, 10)
	store.completeLesson(7, 11)
	r := NewResolver(store)

	if got := r.CourseProgressPercent(8, 100); got != 0 {
		t.Errorf("CourseProgressPercent for untouched user = %d, want 0", got)
	}
	if got := r.CourseProgressPercent(7, 100); got != 100 {
		t.Errorf("CourseProgressPercent = %d, want 100", got)
	}
}
