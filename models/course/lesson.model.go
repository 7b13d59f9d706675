package course

import "gorm.io/gorm"

// Lesson represents a single content unit within a module.
// Positions are 1-based and contiguous within their module.
type Lesson struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	ModuleID    uint   `json:"module_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ContentType string `json:"content_type" gorm:"default:'TEXT'"` // TEXT, VIDEO
	TextContent string `json:"text_content" gorm:"type:text"`
	VideoURL    string `json:"video_url"`
	Position    int    `json:"position" gorm:"not null;default:1"`
	IsDeleted   bool   `gorm:"default:false"`
}
