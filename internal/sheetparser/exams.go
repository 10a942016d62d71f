package sheetparser

import (
	"strconv"
	"strings"

	"saisatyanet/jobboard/internal/csvparse"
	"saisatyanet/jobboard/internal/feederror"
	"saisatyanet/jobboard/internal/logging"
	"saisatyanet/jobboard/internal/models"
)

// RequiredExamHeaders are the columns the exam sheet must carry.
var RequiredExamHeaders = []string{"exam id", "exam name", "exam type", "total questions", "duration minutes", "published"}

// MapExams converts parsed exam-sheet records into MockExam entities.
// Numeric cells that fail to parse default to zero rather than failing the
// whole sheet; only structural column absence is an error. The Published flag
// is set when the cell reads TRUE, matching the sheet's checkbox export.
func MapExams(records []csvparse.Record, logger logging.Logger) ([]models.MockExam, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if len(records) == 0 {
		logger.Info("Exam sheet contained no rows")
		return nil, nil
	}

	if missing := missingHeaders(records[0], RequiredExamHeaders); len(missing) > 0 {
		logger.Error("Exam sheet is missing required columns",
			logging.Field{Key: logging.FieldCount, Value: len(missing)})
		return nil, &feederror.DataFormatError{MissingColumns: missing}
	}

	exams := make([]models.MockExam, 0, len(records))
	for _, row := range records {
		exams = append(exams, models.MockExam{
			ExamID:          row["exam id"],
			ExamName:        row["exam name"],
			ExamType:        row["exam type"],
			TotalQuestions:  parseIntOrZero(row["total questions"]),
			DurationMinutes: parseIntOrZero(row["duration minutes"]),
			NegativeMarking: parseFloatOrZero(row["negative marking"]),
			Published:       strings.EqualFold(row["published"], "TRUE"),
		})
	}

	logger.Info("Mapped exam rows",
		logging.Field{Key: logging.FieldCount, Value: len(exams)})
	return exams, nil
}

func parseIntOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func parseFloatOrZero(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}
