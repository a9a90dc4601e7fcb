package catalog

import (
	"testing"

	"learnplatform/internal/domain"
)

func TestCourseLookups(t *testing.T) {
	c := New()

	if got := len(c.Courses()); got != 6 {
		t.Fatalf("Courses: got %d, want 6", got)
	}

	course, ok := c.CourseByID("math-1")
	if !ok {
		t.Fatalf("CourseByID(math-1): not found")
	}
	if course.Category != domain.CategoryMathematics || course.LessonsCount != 3 {
		t.Fatalf("CourseByID(math-1): %+v", course)
	}

	if _, ok := c.CourseByID("nope"); ok {
		t.Fatalf("CourseByID(nope): expected miss")
	}
}

func TestLessonsOrderedWithinCourse(t *testing.T) {
	c := New()

	for _, course := range c.Courses() {
		ls := c.LessonsByCourse(course.ID)
		if len(ls) != course.LessonsCount {
			t.Fatalf("%s: lessons_count=%d but %d lessons", course.ID, course.LessonsCount, len(ls))
		}
		for i, lesson := range ls {
			if lesson.Order != i+1 {
				t.Fatalf("%s: lesson %d has order %d", course.ID, i, lesson.Order)
			}
			if lesson.CourseID != course.ID {
				t.Fatalf("%s: lesson %s points at %s", course.ID, lesson.ID, lesson.CourseID)
			}
		}
	}
}

func TestEveryLessonHasQuiz(t *testing.T) {
	c := New()

	total := 0
	for _, course := range c.Courses() {
		for _, lesson := range c.LessonsByCourse(course.ID) {
			total++
			quiz, ok := c.QuizByLesson(lesson.ID)
			if !ok {
				t.Fatalf("no quiz for lesson %s", lesson.ID)
			}
			if len(quiz.Options) < 2 {
				t.Fatalf("quiz %s: %d options", quiz.ID, len(quiz.Options))
			}
			if quiz.CorrectAnswerIndex < 0 || quiz.CorrectAnswerIndex >= len(quiz.Options) {
				t.Fatalf("quiz %s: answer index %d out of range", quiz.ID, quiz.CorrectAnswerIndex)
			}
		}
	}
	if total != c.TotalLessons() {
		t.Fatalf("TotalLessons: got %d, want %d", c.TotalLessons(), total)
	}
}

func TestFilter(t *testing.T) {
	c := New()

	if got := c.Filter("", domain.CategoryPhysics); len(got) != 2 {
		t.Fatalf("Filter(physics): got %d courses", len(got))
	}
	if got := c.Filter("", "all"); len(got) != 6 {
		t.Fatalf("Filter(all): got %d courses", len(got))
	}
	got := c.Filter("linear", "")
	if len(got) != 1 || got[0].ID != "math-2" {
		t.Fatalf("Filter(linear): %+v", got)
	}
	if got := c.Filter("linear", domain.CategoryLanguages); len(got) != 0 {
		t.Fatalf("Filter(linear, languages): expected none, got %d", len(got))
	}
}
