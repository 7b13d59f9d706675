package course

import "gorm.io/gorm"

// Module represents a section/module within a course.
// Positions are 1-based and contiguous within a course; module 1 is always
// open as a preview, later modules unlock sequentially.
type Module struct {
	gorm.Model
	CourseID     uint   `json:"course_id" gorm:"index;not null"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Position     int    `json:"position" gorm:"not null;default:1"`
	RequiresQuiz bool   `json:"requires_quiz" gorm:"default:false"` // passing this module's quiz gates the next module
	IsDeleted    bool   `gorm:"default:false"`
}
