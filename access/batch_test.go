package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeLessonModule(store *fakeStore) {
	store.addModule(1, 100, 1, true)
	store.addLesson(10, 1, 1, "L1")
	store.addLesson(11, 1, 2, "L2")
	store.addLesson(12, 1, 3, "L3")
}

func TestAccessibleLessons_PrefixShape(t *testing.T) {
	store := newFakeStore()
	threeLessonModule(store)
	store.completeLesson(7, 10)
	r := NewResolver(store)

	// L1 done opens L2; L3 stays locked because L2 is not done.
	got := r.AccessibleLessons(uintPtr(7), 1, false)
	assert.Equal(t, []uint{10, 11}, got)
}

func TestAccessibleLessons_NothingCompleted(t *testing.T) {
	store := newFakeStore()
	threeLessonModule(store)
	r := NewResolver(store)

	got := r.AccessibleLessons(uintPtr(7), 1, false)
	assert.Equal(t, []uint{10}, got)
}

func TestAccessibleLessons_AllCompleted(t *testing.T) {
	store := newFakeStore()
	threeLessonModule(store)
	store.completeLesson(7, 10)
	store.completeLesson(7, 11)
	store.completeLesson(7, 12)
	r := NewResolver(store)

	got := r.AccessibleLessons(uintPtr(7), 1, false)
	assert.Equal(t, []uint{10, 11, 12}, got)
}

func TestAccessibleLessons_MatchesPerLessonResolver(t *testing.T) {
	store := newFakeStore()
	threeLessonModule(store)
	store.completeLesson(7, 10)
	r := NewResolver(store)

	// The batch result must agree with resolving each lesson directly, and
	// stay a strict prefix of the position order.
	batch := r.AccessibleLessons(uintPtr(7), 1, false)
	open := make(map[uint]bool, len(batch))
	for _, id := range batch {
		open[id] = true
	}
	for _, l := range store.ListLessons(1) {
		v := r.ResolveLesson(uintPtr(7), l.ID, false)
		assert.Equal(t, open[l.ID], v.CanAccess, "lesson %d", l.ID)
	}
}

func TestAccessibleLessons_LockedModule(t *testing.T) {
	store := newFakeStore()
	store.addModule(1, 100, 1, true)
	store.addModule(2, 100, 2, false)
	store.addLesson(20, 2, 1, "L1")
	r := NewResolver(store)

	// Module 2 locked (quiz on module 1 unpassed) hides all of its lessons.
	got := r.AccessibleLessons(uintPtr(7), 2, false)
	assert.Empty(t, got)
}

func TestAccessibleLessons_Anonymous(t *testing.T) {
	store := newFakeStore()
	threeLessonModule(store)
	r := NewResolver(store)

	got := r.AccessibleLessons(nil, 1, false)
	assert.Equal(t, []uint{10, 11, 12}, got)
}

func TestNextAvailableLesson_FirstIncomplete(t *testing.T) {
	store := newFakeStore()
	threeLessonModule(store)
	store.completeLesson(7, 10)
	r := NewResolver(store)

	lesson, ok := r.NextAvailableLesson(uintPtr(7), 100, false)
	require.True(t, ok)
	assert.Equal(t, uint(11), lesson.ID)
}

func TestNextAvailableLesson_CrossesModules(t *testing.T) {
	store := newFakeStore()
	store.addModule(1, 100, 1, false) // no quiz gate
	store.addModule(2, 100, 2, false)
	store.addLesson(10, 1, 1, "M1 L1")
	store.addLesson(20, 2, 1, "M2 L1")
	store.completeLesson(7, 10)
	r := NewResolver(store)

	// Module 1 fully done and ungated: the walk continues into module 2.
	lesson, ok := r.NextAvailableLesson(uintPtr(7), 100, false)
	require.True(t, ok)
	assert.Equal(t, uint(20), lesson.ID)
}

func TestNextAvailableLesson_CourseFinished(t *testing.T) {
	store := newFakeStore()
	store.addModule(1, 100, 1, false)
	store.addLesson(10, 1, 1, "L1")
	store.completeLesson(7, 10)
	r := NewResolver(store)

	_, ok := r.NextAvailableLesson(uintPtr(7), 100, false)
	assert.False(t, ok)
}

func TestNextAvailableLesson_SkipsLockedModules(t *testing.T) {
	store := newFakeStore()
	store.addModule(1, 100, 1, true)
	store.addModule(2, 100, 2, false)
	store.addLesson(10, 1, 1, "M1 L1")
	store.addLesson(20, 2, 1, "M2 L1")
	store.completeLesson(7, 10)
	// Quiz on module 1 not passed: module 2 stays locked even though its
	// lessons are the only incomplete ones.
	r := NewResolver(store)

	_, ok := r.NextAvailableLesson(uintPtr(7), 100, false)
	assert.False(t, ok)
}

func TestNextAvailableLesson_Anonymous(t *testing.T) {
	store := newFakeStore()
	threeLessonModule(store)
	r := NewResolver(store)

	lesson, ok := r.NextAvailableLesson(nil, 100, false)
	require.True(t, ok)
	assert.Equal(t, uint(10), lesson.ID)
}
