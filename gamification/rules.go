package gamification

// XP awarded per event kind
const (
	XPLessonCompleted = 10
	XPQuizPassed      = 50
	XPCourseCompleted = 200
)

// XP event kinds recorded in the ledger
const (
	EventLessonCompleted = "LESSON_COMPLETED"
	EventQuizPassed      = "QUIZ_PASSED"
	EventCourseCompleted = "COURSE_COMPLETED"
)

// Badge is a milestone award tied to accumulated XP.
type Badge struct {
	Code  string
	Name  string
	MinXP int
}

// Badges lists every badge in ascending MinXP order.
var Badges = []Badge{
	{Code: "FIRST_STEPS", Name: "Primeros Pasos", MinXP: 10},
	{Code: "NODE_RUNNER", Name: "Node Runner", MinXP: 200},
	{Code: "HODLER", Name: "Hodler", MinXP: 500},
	{Code: "SATOSHI_SCHOLAR", Name: "Satoshi Scholar", MinXP: 1500},
}

// LevelForXP maps accumulated XP to a level. Level n starts at 50*n*(n-1)
// XP, so the spacing between levels grows linearly: level 2 at 100, level 3
// at 300, level 4 at 600.
func LevelForXP(xp int) int {
	if xp < 0 {
		return 1
	}
	level := 1
	for xp >= xpForLevel(level+1) {
		level++
	}
	return level
}

// XPToNextLevel returns how much XP is missing until the next level.
func XPToNextLevel(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xpForLevel(LevelForXP(xp)+1) - xp
}

// BadgesForXP returns the badges earned at the given XP total, in order.
func BadgesForXP(xp int) []Badge {
	var earned []Badge
	for _, b := range Badges {
		if xp >= b.MinXP {
			earned = append(earned, b)
		}
	}
	return earned
}

func xpForLevel(level int) int {
	return 50 * level * (level - 1)
}
