package access

import "sort"

// fakeStore is an in-memory Store for resolver tests.
type fakeStore struct {
	modules   map[uint]Module
	lessons   map[uint]Lesson
	passed    map[[2]uint]bool // (userID, moduleID)
	completed map[[2]uint]bool // (userID, lessonID)
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		modules:   make(map[uint]Module),
		lessons:   make(map[uint]Lesson),
		passed:    make(map[[2]uint]bool),
		completed: make(map[[2]uint]bool),
	}
}

func (f *fakeStore) addModule(id, courseID uint, position int, requiresQuiz bool) {
	f.modules[id] = Module{ID: id, CourseID: courseID, Position: position, RequiresQuiz: requiresQuiz}
}

func (f *fakeStore) addLesson(id, moduleID uint, position int, title string) {
	f.lessons[id] = Lesson{ID: id, ModuleID: moduleID, Position: position, Title: title}
}

func (f *fakeStore) passQuiz(userID, moduleID uint) {
	f.passed[[2]uint{userID, moduleID}] = true
}

func (f *fakeStore) completeLesson(userID, lessonID uint) {
	f.completed[[2]uint{userID, lessonID}] = true
}

func (f *fakeStore) GetModule(moduleID uint) (Module, bool) {
	m, ok := f.modules[moduleID]
	return m, ok
}

func (f *fakeStore) GetPreviousModule(courseID uint, position int) (Module, bool) {
	for _, m := range f.modules {
		if m.CourseID == courseID && m.Position == position {
			return m, true
		}
	}
	return Module{}, false
}

func (f *fakeStore) GetLesson(lessonID uint) (Lesson, bool) {
	l, ok := f.lessons[lessonID]
	return l, ok
}

func (f *fakeStore) GetPreviousLesson(moduleID uint, position int) (Lesson, bool) {
	for _, l := range f.lessons {
		if l.ModuleID == moduleID && l.Position == position {
			return l, true
		}
	}
	return Lesson{}, false
}

func (f *fakeStore) HasPassedQuiz(userID, moduleID uint) bool {
	return f.passed[[2]uint{userID, moduleID}]
}

func (f *fakeStore) IsLessonCompleted(userID, lessonID uint) bool {
	return f.completed[[2]uint{userID, lessonID}]
}

func (f *fakeStore) ListLessons(moduleID uint) []Lesson {
	var lessons []Lesson
	for _, l := range f.lessons {
		if l.ModuleID == moduleID {
			lessons = append(lessons, l)
		}
	}
	sort.Slice(lessons, func(i, j int) bool { return lessons[i].Position < lessons[j].Position })
	return lessons
}

func (f *fakeStore) ListModules(courseID uint) []Module {
	var modules []Module
	for _, m := range f.modules {
		if m.CourseID == courseID {
			modules = append(modules, m)
		}
	}
	sort.Slice(modules, func(i, j int) bool { return modules[i].Position < modules[j].Position })
	return modules
}

func (f *fakeStore) ListProgressForModule(userID, moduleID uint) map[uint]bool {
	completed := make(map[uint]bool)
	for _, l := range f.lessons {
		if l.ModuleID == moduleID && f.completed[[2]uint{userID, l.ID}] {
			completed[l.ID] = true
		}
	}
	return completed
}

func (f *fakeStore) CountLessonsInCourse(courseID uint) int {
	count := 0
	for _, l := range f.lessons {
		if m, ok := f.modules[l.ModuleID]; ok && m.CourseID == courseID {
			count++
		}
	}
	return count
}

func (f *fakeStore) CountCompletedLessons(userID, courseID uint) int {
	count := 0
	for _, l := range f.lessons {
		m, ok := f.modules[l.ModuleID]
		if ok && m.CourseID == courseID && f.completed[[2]uint{userID, l.ID}] {
			count++
		}
	}
	return count
}

func uintPtr(v uint) *uint { return &v }
