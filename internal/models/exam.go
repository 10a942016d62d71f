package models

// MockExam is one practice exam from the exam sheet. Only published exams
// surface in any view; the quiz player itself is out of scope here, this is
// catalog metadata only.
type MockExam struct {
	ExamID          string  `csv:"exam id" json:"examId"`
	ExamName        string  `csv:"exam name" json:"examName"`
	ExamType        string  `csv:"exam type" json:"examType"`
	TotalQuestions  int     `csv:"total questions" json:"totalQuestions"`
	DurationMinutes int     `csv:"duration minutes" json:"durationMinutes"`
	NegativeMarking float64 `csv:"negative marking" json:"negativeMarking"`
	Published       bool    `csv:"published" json:"published"`
}
