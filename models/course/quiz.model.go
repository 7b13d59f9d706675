package course

import (
	"time"

	"gorm.io/gorm"
)

// QuizQuestion represents a question in a module's end-of-module quiz
type QuizQuestion struct {
	gorm.Model
	ModuleID  uint   `json:"module_id" gorm:"index;not null"`
	Prompt    string `json:"prompt"`
	Position  int    `json:"position" gorm:"default:1"`
	IsDeleted bool   `gorm:"default:false"`
}

// QuizOption represents an answer option for a quiz question
type QuizOption struct {
	gorm.Model
	QuestionID uint   `json:"question_id" gorm:"index;not null"`
	OptionText string `json:"option_text"`
	IsCorrect  bool   `json:"is_correct" gorm:"default:false"`
	Position   int    `json:"position" gorm:"default:1"`
	IsDeleted  bool   `gorm:"default:false"`
}

// QuizAttempt records a submission of a module's end-of-module quiz.
// Attempts are append-only; only the existence of a passed attempt matters
// for unlocking the next module.
type QuizAttempt struct {
	gorm.Model
	UserID        uint      `json:"user_id" gorm:"index;not null"`
	ModuleID      uint      `json:"module_id" gorm:"index;not null"`
	Score         int       `json:"score"` // 0-100
	Passed        bool      `json:"passed" gorm:"default:false"`
	AttemptNumber int       `json:"attempt_number" gorm:"default:1"`
	CompletedAt   time.Time `json:"completed_at"`
	IsDeleted     bool      `gorm:"default:false"`
}
