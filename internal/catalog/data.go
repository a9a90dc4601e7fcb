package catalog

import "learnplatform/internal/domain"

// Статичные данные каталога. Курсы и уроки фиксируются на этапе сборки,
// lessons_count дублирует фактическое число уроков для списочных экранов.
var courses = []domain.Course{
	{
		ID:           "math-1",
		Title:        "Calculus Fundamentals",
		Description:  "Limits, derivatives and integrals from the ground up.",
		Category:     domain.CategoryMathematics,
		ThumbnailURL: "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?w=400&h=300&fit=crop",
		LessonsCount: 3,
		Duration:     "2h 30m",
		Level:        domain.LevelBeginner,
	},
	{
		ID:           "math-2",
		Title:        "Linear Algebra",
		Description:  "Vectors, matrices and linear transformations.",
		Category:     domain.CategoryMathematics,
		ThumbnailURL: "https://images.unsplash.com/photo-1509228468518-180dd4864904?w=400&h=300&fit=crop",
		LessonsCount: 3,
		Duration:     "1h 45m",
		Level:        domain.LevelIntermediate,
	},
	{
		ID:           "physics-1",
		Title:        "Classical Mechanics",
		Description:  "Motion, forces and energy in everyday systems.",
		Category:     domain.CategoryPhysics,
		ThumbnailURL: "https://images.unsplash.com/photo-1636466497217-26a8cbeaf0aa?w=400&h=300&fit=crop",
		LessonsCount: 3,
		Duration:     "3h 15m",
		Level:        domain.LevelBeginner,
	},
	{
		ID:           "physics-2",
		Title:        "Quantum Physics",
		Description:  "Wavefunctions, uncertainty and quantum states.",
		Category:     domain.CategoryPhysics,
		ThumbnailURL: "https://images.unsplash.com/photo-1507413245164-6160d8298b31?w=400&h=300&fit=crop",
		LessonsCount: 3,
		Duration:     "2h 00m",
		Level:        domain.LevelAdvanced,
	},
	{
		ID:           "lang-1",
		Title:        "English for Beginners",
		Description:  "Core vocabulary and grammar for everyday speech.",
		Category:     domain.CategoryLanguages,
		ThumbnailURL: "https://images.unsplash.com/photo-1546410531-bb4caa6b424d?w=400&h=300&fit=crop",
		LessonsCount: 3,
		Duration:     "2h 45m",
		Level:        domain.LevelBeginner,
	},
	{
		ID:           "lang-2",
		Title:        "Conversational English",
		Description:  "Fluency practice for real-life conversations.",
		Category:     domain.CategoryLanguages,
		ThumbnailURL: "https://images.unsplash.com/photo-1434030216411-0b793f4b4173?w=400&h=300&fit=crop",
		LessonsCount: 3,
		Duration:     "1h 30m",
		Level:        domain.LevelIntermediate,
	},
}

var lessons = []domain.Lesson{
	// Calculus Fundamentals
	{ID: "math-1-1", CourseID: "math-1", Title: "What is a Limit", Description: "The idea behind limits with graphical intuition.", VideoID: "8hBEpVKMDLg", Duration: "12:30", Order: 1},
	{ID: "math-1-2", CourseID: "math-1", Title: "Derivatives", Description: "Rates of change and the derivative rules.", VideoID: "8hBEpVKMDLg", Duration: "15:45", Order: 2},
	{ID: "math-1-3", CourseID: "math-1", Title: "Integrals", Description: "Areas under curves and the fundamental theorem.", VideoID: "8hBEpVKMDLg", Duration: "18:20", Order: 3},

	// Linear Algebra
	{ID: "math-2-1", CourseID: "math-2", Title: "Vectors", Description: "Vector spaces and geometric meaning.", VideoID: "cJslkj9_wyg", Duration: "14:00", Order: 1},
	{ID: "math-2-2", CourseID: "math-2", Title: "Matrices", Description: "Matrix operations and linear maps.", VideoID: "cJslkj9_wyg", Duration: "16:30", Order: 2},
	{ID: "math-2-3", CourseID: "math-2", Title: "Determinants", Description: "Determinants and invertibility.", VideoID: "cJslkj9_wyg", Duration: "19:15", Order: 3},

	// Classical Mechanics
	{ID: "physics-1-1", CourseID: "physics-1", Title: "Kinematics", Description: "Describing motion without asking why.", VideoID: "eVgokiqERI8", Duration: "11:45", Order: 1},
	{ID: "physics-1-2", CourseID: "physics-1", Title: "Newton's Laws", Description: "Forces and the three laws of motion.", VideoID: "eVgokiqERI8", Duration: "13:20", Order: 2},
	{ID: "physics-1-3", CourseID: "physics-1", Title: "Energy and Work", Description: "Kinetic, potential energy and conservation.", VideoID: "eVgokiqERI8", Duration: "17:00", Order: 3},

	// Quantum Physics
	{ID: "physics-2-1", CourseID: "physics-2", Title: "Wave-Particle Duality", Description: "Why light behaves as both wave and particle.", VideoID: "dQw4w9WgXcQ", Duration: "18:00", Order: 1},
	{ID: "physics-2-2", CourseID: "physics-2", Title: "The Uncertainty Principle", Description: "Limits of simultaneous measurement.", VideoID: "dQw4w9WgXcQ", Duration: "16:45", Order: 2},
	{ID: "physics-2-3", CourseID: "physics-2", Title: "Quantum States", Description: "Superposition and measurement.", VideoID: "dQw4w9WgXcQ", Duration: "22:00", Order: 3},

	// English for Beginners
	{ID: "lang-1-1", CourseID: "lang-1", Title: "Greetings and Introductions", Description: "First phrases for meeting people.", VideoID: "ATaNvqPSZEI", Duration: "10:00", Order: 1},
	{ID: "lang-1-2", CourseID: "lang-1", Title: "Present Simple", Description: "Talking about routines and facts.", VideoID: "ATaNvqPSZEI", Duration: "12:15", Order: 2},
	{ID: "lang-1-3", CourseID: "lang-1", Title: "Everyday Vocabulary", Description: "Words for home, food and travel.", VideoID: "ATaNvqPSZEI", Duration: "11:30", Order: 3},

	// Conversational English
	{ID: "lang-2-1", CourseID: "lang-2", Title: "Small Talk", Description: "Keeping a conversation going naturally.", VideoID: "juKd26qkNAw", Duration: "13:00", Order: 1},
	{ID: "lang-2-2", CourseID: "lang-2", Title: "Asking Questions", Description: "Question forms native speakers actually use.", VideoID: "juKd26qkNAw", Duration: "14:20", Order: 2},
	{ID: "lang-2-3", CourseID: "lang-2", Title: "Phrasal Verbs", Description: "The phrasal verbs you hear every day.", VideoID: "juKd26qkNAw", Duration: "15:10", Order: 3},
}

var quizzes = []domain.Quiz{
	{ID: "quiz-math-1-1", LessonID: "math-1-1", Question: "What does a limit describe?", Options: []string{"The value a function approaches", "The maximum of a function", "The slope of a line", "The area under a curve"}, CorrectAnswerIndex: 0},
	{ID: "quiz-math-1-2", LessonID: "math-1-2", Question: "The derivative of x² is:", Options: []string{"x", "2x", "x²/2", "2"}, CorrectAnswerIndex: 1},
	{ID: "quiz-math-1-3", LessonID: "math-1-3", Question: "An integral computes:", Options: []string{"A slope", "An accumulated quantity", "A limit", "A tangent line"}, CorrectAnswerIndex: 1},

	{ID: "quiz-math-2-1", LessonID: "math-2-1", Question: "A vector has:", Options: []string{"Only magnitude", "Only direction", "Magnitude and direction", "Neither"}, CorrectAnswerIndex: 2},
	{ID: "quiz-math-2-2", LessonID: "math-2-2", Question: "Matrix multiplication is:", Options: []string{"Always commutative", "Not commutative in general", "Undefined for square matrices", "The same as addition"}, CorrectAnswerIndex: 1},
	{ID: "quiz-math-2-3", LessonID: "math-2-3", Question: "A matrix is invertible when its determinant is:", Options: []string{"Zero", "Non-zero", "Negative", "One"}, CorrectAnswerIndex: 1},

	{ID: "quiz-physics-1-1", LessonID: "physics-1-1", Question: "Kinematics studies:", Options: []string{"Causes of motion", "Description of motion", "Heat transfer", "Electric charge"}, CorrectAnswerIndex: 1},
	{ID: "quiz-physics-1-2", LessonID: "physics-1-2", Question: "Newton's second law states F equals:", Options: []string{"mv", "ma", "m/a", "a/m"}, CorrectAnswerIndex: 1},
	{ID: "quiz-physics-1-3", LessonID: "physics-1-3", Question: "Energy in a closed system is:", Options: []string{"Always lost", "Conserved", "Created by motion", "Proportional to time"}, CorrectAnswerIndex: 1},

	{ID: "quiz-physics-2-1", LessonID: "physics-2-1", Question: "Light behaves as:", Options: []string{"Only a wave", "Both wave and particle", "Only a particle", "Neither"}, CorrectAnswerIndex: 1},
	{ID: "quiz-physics-2-2", LessonID: "physics-2-2", Question: "The uncertainty principle links position and:", Options: []string{"Charge", "Momentum", "Mass", "Spin"}, CorrectAnswerIndex: 1},
	{ID: "quiz-physics-2-3", LessonID: "physics-2-3", Question: "Superposition means a system:", Options: []string{"Has collapsed", "Is in multiple states at once", "Has no state", "Is classical"}, CorrectAnswerIndex: 1},

	{ID: "quiz-lang-1-1", LessonID: "lang-1-1", Question: "Which phrase is a greeting?", Options: []string{"Goodbye", "See you", "Nice to meet you", "Take care"}, CorrectAnswerIndex: 2},
	{ID: "quiz-lang-1-2", LessonID: "lang-1-2", Question: "Present simple describes:", Options: []string{"Past events", "Habits and facts", "Future plans only", "Hypotheticals"}, CorrectAnswerIndex: 1},
	{ID: "quiz-lang-1-3", LessonID: "lang-1-3", Question: "Which word belongs to 'food'?", Options: []string{"Bread", "Window", "Road", "Ticket"}, CorrectAnswerIndex: 0},

	{ID: "quiz-lang-2-1", LessonID: "lang-2-1", Question: "Small talk usually starts with:", Options: []string{"A complaint", "A long story", "A light open question", "Silence"}, CorrectAnswerIndex: 2},
	{ID: "quiz-lang-2-2", LessonID: "lang-2-2", Question: "'What do you do?' asks about:", Options: []string{"Hobbies", "Your job", "Your plans", "Your family"}, CorrectAnswerIndex: 1},
	{ID: "quiz-lang-2-3", LessonID: "lang-2-3", Question: "'Give up' means:", Options: []string{"To continue", "To stop trying", "To stand up", "To donate"}, CorrectAnswerIndex: 1},
}
