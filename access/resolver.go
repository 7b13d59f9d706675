package access

import "math"

// Resolver answers whether a user may currently open a module or lesson, and
// derives course progress. It is a stateless read path: every method issues
// reads against the store and returns, so a momentarily stale verdict
// self-corrects on the next call.
//
// Missing or inconsistent data never produces an error; it degrades to
// denial. When in doubt, the content stays locked.
type Resolver struct {
	store Store
}

// NewResolver returns a Resolver backed by the given store.
func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// ResolveModule decides whether the module is unlockable for the user.
// A nil userID means an anonymous visitor.
func (r *Resolver) ResolveModule(userID *uint, moduleID uint, courseIsFree bool) Verdict {
	mod, ok := r.store.GetModule(moduleID)
	if !ok {
		return Verdict{}
	}

	// The first module is always a preview, even for anonymous visitors
	// and free courses.
	if mod.Position == 1 {
		return Verdict{CanAccess: true, Exists: true, Reason: ReasonFirstModule}
	}

	// Free courses never unlock past module 1, regardless of quiz state.
	if courseIsFree {
		return Verdict{Exists: true, Reason: ReasonRequiresPremium}
	}

	// Anonymous visitor on a premium course.
	if userID == nil {
		return Verdict{Exists: true, Reason: ReasonRequiresPremium}
	}

	prev, ok := r.store.GetPreviousModule(mod.CourseID, mod.Position-1)
	if !ok {
		// Positions should be contiguous; a gap locks the module.
		return Verdict{Exists: true}
	}

	if !prev.RequiresQuiz {
		return Verdict{CanAccess: true, Exists: true, Reason: ReasonNoQuizRequired}
	}

	if r.store.HasPassedQuiz(*userID, prev.ID) {
		return Verdict{CanAccess: true, Exists: true, Reason: ReasonAccessible}
	}

	return Verdict{
		Exists:           true,
		Reason:           ReasonQuizNotPassed,
		PreviousModuleID: prev.ID,
		RequiredScore:    PassingScore,
	}
}

// ResolveLesson decides whether the lesson is unlockable for the user.
// Module-level denial is masked as ReasonModuleLocked; the lesson layer does
// not expose why the module is locked, only that it is.
func (r *Resolver) ResolveLesson(userID *uint, lessonID uint, courseIsFree bool) Verdict {
	lesson, ok := r.store.GetLesson(lessonID)
	if !ok {
		return Verdict{}
	}

	modVerdict := r.ResolveModule(userID, lesson.ModuleID, courseIsFree)
	if !modVerdict.CanAccess {
		return Verdict{Exists: true, Reason: ReasonModuleLocked}
	}

	// First lesson of an unlocked module is always open.
	if lesson.Position == 1 {
		return Verdict{CanAccess: true, Exists: true, Reason: ReasonAccessible}
	}

	// Anonymous progress lives in device-local state outside this package;
	// once the module is open, every lesson in it reads as accessible.
	if userID == nil {
		return Verdict{CanAccess: true, Exists: true, Reason: ReasonAccessible}
	}

	prev, ok := r.store.GetPreviousLesson(lesson.ModuleID, lesson.Position-1)
	if !ok {
		return Verdict{Exists: true}
	}

	if r.store.IsLessonCompleted(*userID, prev.ID) {
		return Verdict{CanAccess: true, Exists: true, Reason: ReasonAccessible}
	}

	return Verdict{
		Exists:              true,
		Reason:              ReasonPreviousLessonIncomplete,
		PreviousLessonID:    prev.ID,
		PreviousLessonTitle: prev.Title,
	}
}

// AccessibleLessons returns the IDs of the module's lessons the user can open,
// in position order. Access is strictly sequential, so the result is always a
// prefix of the lesson list and the walk stops at the first locked lesson.
func (r *Resolver) AccessibleLessons(userID *uint, moduleID uint, courseIsFree bool) []uint {
	lessons := r.store.ListLessons(moduleID)
	if len(lessons) == 0 {
		return nil
	}

	if !r.ResolveModule(userID, moduleID, courseIsFree).CanAccess {
		return nil
	}

	ids := make([]uint, 0, len(lessons))

	// Anonymous gating past lesson 1 is device-local, mirror ResolveLesson.
	if userID == nil {
		for _, l := range lessons {
			ids = append(ids, l.ID)
		}
		return ids
	}

	completed := r.store.ListProgressForModule(*userID, moduleID)
	for i, l := range lessons {
		if i > 0 && !completed[lessons[i-1].ID] {
			break
		}
		ids = append(ids, l.ID)
	}
	return ids
}

// NextAvailableLesson walks the course's modules in position order and returns
// the first incomplete lesson the user can open. The second return value is
// false when every lesson in every accessible module is already completed or
// no module is accessible yet.
func (r *Resolver) NextAvailableLesson(userID *uint, courseID uint, courseIsFree bool) (Lesson, bool) {
	for _, mod := range r.store.ListModules(courseID) {
		if !r.ResolveModule(userID, mod.ID, courseIsFree).CanAccess {
			continue
		}

		lessons := r.store.ListLessons(mod.ID)
		if userID == nil {
			if len(lessons) > 0 {
				return lessons[0], true
			}
			continue
		}

		completed := r.store.ListProgressForModule(*userID, mod.ID)
		for _, l := range lessons {
			if completed[l.ID] {
				continue
			}
			if r.ResolveLesson(userID, l.ID, courseIsFree).CanAccess {
				return l, true
			}
			// First incomplete lesson is locked: inconsistent data, move on.
			break
		}
	}
	return Lesson{}, false
}

// CourseProgressPercent derives the user's completion percentage for the
// course, rounded to the nearest integer. A course with no lessons reads as 0.
func (r *Resolver) CourseProgressPercent(userID, courseID uint) int {
	total := r.store.CountLessonsInCourse(courseID)
	if total <= 0 {
		return 0
	}

	completed := r.store.CountCompletedLessons(userID, courseID)
	percent := int(math.Round(100 * float64(completed) / float64(total)))
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}
