package course

import (
	"time"

	"gorm.io/gorm"
)

// ProgressRecord tracks a user's completion of a lesson.
// The unique index on (user_id, lesson_id) keeps at most one record per pair;
// writers must upsert against it.
type ProgressRecord struct {
	gorm.Model
	UserID      uint       `json:"user_id" gorm:"uniqueIndex:idx_user_lesson;not null"`
	LessonID    uint       `json:"lesson_id" gorm:"uniqueIndex:idx_user_lesson;not null"`
	CourseID    uint       `json:"course_id" gorm:"index;not null"`
	IsCompleted bool       `json:"is_completed" gorm:"default:false"`
	CompletedAt *time.Time `json:"completed_at"`
}

func (ProgressRecord) TableName() string {
	return "user_progress"
}
