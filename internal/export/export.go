// Package export writes study sets to spreadsheet workbooks.
package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/phrazzld/studysnap/internal/domain"
)

// Sheet names of an exported workbook.
const (
	FlashcardsSheet = "Flashcards"
	QuizSheet       = "Quiz"
)

var (
	flashcardHeaders = []any{"#", "Question", "Answer"}
	quizHeaders      = []any{"#", "Question", "Option A", "Option B", "Option C", "Option D", "Correct Answer", "Explanation"}
)

// ErrNilStudySet is returned when there is nothing to export.
var ErrNilStudySet = errors.New("export: nil study set")

// Workbook builds an in-memory workbook with one sheet for the flashcards
// and one for the quiz. The caller must Close it.
func Workbook(set *domain.StudySet) (*excelize.File, error) {
	if set == nil {
		return nil, ErrNilStudySet
	}

	f := excelize.NewFile()
	if err := build(f, set); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

// Write encodes set as an xlsx workbook to w.
func Write(w io.Writer, set *domain.StudySet) error {
	f, err := Workbook(set)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// Save writes set as an xlsx workbook to path.
func Save(path string, set *domain.StudySet) error {
	f, err := Workbook(set)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

func build(f *excelize.File, set *domain.StudySet) error {
	if err := f.SetSheetName(f.GetSheetName(0), FlashcardsSheet); err != nil {
		return fmt.Errorf("failed to rename default sheet: %w", err)
	}
	if _, err := f.NewSheet(QuizSheet); err != nil {
		return fmt.Errorf("failed to create quiz sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	cards := make([][]any, 0, len(set.Flashcards))
	for i, c := range set.Flashcards {
		cards = append(cards, []any{i + 1, c.Question, c.Answer})
	}
	if err := writeSheet(f, FlashcardsSheet, header, flashcardHeaders, cards); err != nil {
		return err
	}

	questions := make([][]any, 0, len(set.Quiz))
	for i, q := range set.Quiz {
		row := []any{i + 1, q.Question}
		for _, opt := range q.Options {
			row = append(row, opt)
		}
		row = append(row, optionLetter(q.CorrectAnswer), q.Explanation)
		questions = append(questions, row)
	}
	if err := writeSheet(f, QuizSheet, header, quizHeaders, questions); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	return nil
}

func writeSheet(f *excelize.File, sheet string, headerStyle int, headers []any, rows [][]any) error {
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write %s headers: %w", sheet, err)
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("failed to style %s headers: %w", sheet, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}

	if err := f.SetColWidth(sheet, "B", "B", 60); err != nil {
		return fmt.Errorf("failed to size %s columns: %w", sheet, err)
	}
	return nil
}

// optionLetter renders an option index as A-D.
func optionLetter(index int) string {
	if index < 0 || index >= domain.OptionCount {
		return ""
	}
	return string(rune('A' + index))
}
