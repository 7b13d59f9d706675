package access

// Module is the slice of course structure the resolvers read.
type Module struct {
	ID           uint
	CourseID     uint
	Position     int // 1-based, contiguous within a course
	RequiresQuiz bool
}

// Lesson is the slice of lesson structure the resolvers read.
type Lesson struct {
	ID       uint
	ModuleID uint
	Position int // 1-based, contiguous within a module
	Title    string
}

// Store is the read-only view of course structure and user progress that the
// resolvers run against. The production implementation is GormStore; tests
// substitute an in-memory fake. The resolvers never write through it.
type Store interface {
	GetModule(moduleID uint) (Module, bool)
	GetPreviousModule(courseID uint, position int) (Module, bool)
	GetLesson(lessonID uint) (Lesson, bool)
	GetPreviousLesson(moduleID uint, position int) (Lesson, bool)

	// HasPassedQuiz reports whether at least one passed quiz attempt exists
	// for the module. Attempt history beyond that does not matter.
	HasPassedQuiz(userID, moduleID uint) bool

	// IsLessonCompleted reports the completion flag of the user's progress
	// record for the lesson; a missing record counts as not completed.
	IsLessonCompleted(userID, lessonID uint) bool

	// ListLessons returns the module's lessons in position order.
	ListLessons(moduleID uint) []Lesson

	// ListModules returns the course's modules in position order.
	ListModules(courseID uint) []Module

	// ListProgressForModule returns the set of lesson IDs the user has
	// completed within the module. Lets the batch helpers resolve a whole
	// module in a constant number of queries.
	ListProgressForModule(userID, moduleID uint) map[uint]bool

	CountLessonsInCourse(courseID uint) int
	CountCompletedLessons(userID, courseID uint) int
}
