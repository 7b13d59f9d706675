package access

import (
	courseModels "nodo360/models/course"

	"gorm.io/gorm"
)

// GormStore adapts the course tables to the Store contract. All methods treat
// query errors the same as missing rows; the resolvers turn both into denial.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) GetModule(moduleID uint) (Module, bool) {
	var m courseModels.Module
	if err := s.db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&m).Error; err != nil {
		return Module{}, false
	}
	return Module{ID: m.ID, CourseID: m.CourseID, Position: m.Position, RequiresQuiz: m.RequiresQuiz}, true
}

func (s *GormStore) GetPreviousModule(courseID uint, position int) (Module, bool) {
	var m courseModels.Module
	if err := s.db.Where("course_id = ? AND position = ? AND is_deleted = ?", courseID, position, false).First(&m).Error; err != nil {
		return Module{}, false
	}
	return Module{ID: m.ID, CourseID: m.CourseID, Position: m.Position, RequiresQuiz: m.RequiresQuiz}, true
}

func (s *GormStore) GetLesson(lessonID uint) (Lesson, bool) {
	var l courseModels.Lesson
	if err := s.db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&l).Error; err != nil {
		return Lesson{}, false
	}
	return Lesson{ID: l.ID, ModuleID: l.ModuleID, Position: l.Position, Title: l.Title}, true
}

func (s *GormStore) GetPreviousLesson(moduleID uint, position int) (Lesson, bool) {
	var l courseModels.Lesson
	if err := s.db.Where("module_id = ? AND position = ? AND is_deleted = ?", moduleID, position, false).First(&l).Error; err != nil {
		return Lesson{}, false
	}
	return Lesson{ID: l.ID, ModuleID: l.ModuleID, Position: l.Position, Title: l.Title}, true
}

func (s *GormStore) HasPassedQuiz(userID, moduleID uint) bool {
	var count int64
	s.db.Model(&courseModels.QuizAttempt{}).
		Where("user_id = ? AND module_id = ? AND passed = ? AND is_deleted = ?", userID, moduleID, true, false).
		Count(&count)
	return count > 0
}

func (s *GormStore) IsLessonCompleted(userID, lessonID uint) bool {
	var record courseModels.ProgressRecord
	err := s.db.Where("user_id = ? AND lesson_id = ? AND is_completed = ?", userID, lessonID, true).First(&record).Error
	return err == nil
}

func (s *GormStore) ListLessons(moduleID uint) []Lesson {
	var rows []courseModels.Lesson
	s.db.Where("module_id = ? AND is_deleted = ?", moduleID, false).Order("position asc").Find(&rows)

	lessons := make([]Lesson, len(rows))
	for i, l := range rows {
		lessons[i] = Lesson{ID: l.ID, ModuleID: l.ModuleID, Position: l.Position, Title: l.Title}
	}
	return lessons
}

func (s *GormStore) ListModules(courseID uint) []Module {
	var rows []courseModels.Module
	s.db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("position asc").Find(&rows)

	modules := make([]Module, len(rows))
	for i, m := range rows {
		modules[i] = Module{ID: m.ID, CourseID: m.CourseID, Position: m.Position, RequiresQuiz: m.RequiresQuiz}
	}
	return modules
}

func (s *GormStore) ListProgressForModule(userID, moduleID uint) map[uint]bool {
	var lessonIDs []uint
	s.db.Model(&courseModels.ProgressRecord{}).
		Joins("JOIN lessons ON user_progress.lesson_id = lessons.id").
		Where("user_progress.user_id = ? AND lessons.module_id = ? AND user_progress.is_completed = ?", userID, moduleID, true).
		Pluck("user_progress.lesson_id", &lessonIDs)

	completed := make(map[uint]bool, len(lessonIDs))
	for _, id := range lessonIDs {
		completed[id] = true
	}
	return completed
}

func (s *GormStore) CountLessonsInCourse(courseID uint) int {
	var count int64
	s.db.Model(&courseModels.Lesson{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Count(&count)
	return int(count)
}

func (s *GormStore) CountCompletedLessons(userID, courseID uint) int {
	var count int64
	s.db.Model(&courseModels.ProgressRecord{}).
		Where("user_id = ? AND course_id = ? AND is_completed = ?", userID, courseID, true).
		Count(&count)
	return int(count)
}
