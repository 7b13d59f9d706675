package access

// PassingScore is the minimum quiz score (0-100) that unlocks the next module.
const PassingScore = 70

// Reason explains an access verdict to the presentation layer.
type Reason string

const (
	ReasonFirstModule              Reason = "FIRST_MODULE"
	ReasonRequiresPremium          Reason = "REQUIRES_PREMIUM"
	ReasonNoQuizRequired           Reason = "NO_QUIZ_REQUIRED"
	ReasonQuizNotPassed            Reason = "QUIZ_NOT_PASSED"
	ReasonModuleLocked             Reason = "MODULE_LOCKED"
	ReasonPreviousLessonIncomplete Reason = "PREVIOUS_LESSON_INCOMPLETE"
	ReasonAccessible               Reason = "ACCESSIBLE"
)

// Verdict is the result of an access check. It is computed fresh on every
// query and never persisted.
//
// Exists distinguishes "the entity is missing" from "the entity is locked";
// in both cases CanAccess stays false so callers that only look at CanAccess
// keep the safe default of denial.
type Verdict struct {
	CanAccess bool   `json:"can_access"`
	Exists    bool   `json:"exists"`
	Reason    Reason `json:"reason,omitempty"`

	// Set when Reason is ReasonQuizNotPassed
	PreviousModuleID uint `json:"previous_module_id,omitempty"`
	RequiredScore    int  `json:"required_score,omitempty"`

	// Set when Reason is ReasonPreviousLessonIncomplete
	PreviousLessonID    uint   `json:"previous_lesson_id,omitempty"`
	PreviousLessonTitle string `json:"previous_lesson_title,omitempty"`
}
