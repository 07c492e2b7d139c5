// Package testlib holds everything needed to organise a test: scheduling
// fields, the administered grade and the question contents with their
// answer keys.
package testlib

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/vianuedu/backend/core"
)

// Courses
type Course string

const (
	CourseGeo  Course = "Geo"
	CoursePhi  Course = "Phi"
	CourseInfo Course = "Info"
	CourseMath Course = "Math"
)

var Courses = []Course{CourseGeo, CoursePhi, CourseInfo, CourseMath}

func (c Course) IsValid() bool {
	for _, course := range Courses {
		if c == course {
			return true
		}
	}
	return false
}

type (
	// Entry is the raw wire shape of a single question: exactly one key
	// (the question text, stem first, one line per choice) mapped to its
	// tagged answer string.
	Entry map[string]string

	// Contents maps question numbers to their entries.
	Contents map[int]Entry
)

var (
	// errors
	ErrNotFound         = errors.New("test not found")
	ErrIDExists         = errors.New("a test with this ID already exists")
	ErrQuestionNotFound = errors.New("question not found in test contents")
)

// Test represents all the information necessary to organise a test.
// A Test is immutable once constructed; there are no setters.
type Test struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Course    Course    `json:"course"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Grade     string    `json:"grade"` // label of the administered class
	Contents  Contents  `json:"contents"`
}

// answerKey returns the tagged answer string for question n.
func (t Test) answerKey(n int) (string, error) {
	entry, ok := t.Contents[n]
	if !ok {
		return "", ErrQuestionNotFound
	}
	if len(entry) == 0 {
		return "", fmt.Errorf("question %d has no answer key", n)
	}
	var answer string
	for _, value := range entry {
		answer = value
	}
	return answer, nil
}

// question returns the raw question text for question n.
func (t Test) question(n int) (string, error) {
	entry, ok := t.Contents[n]
	if !ok {
		return "", ErrQuestionNotFound
	}
	if len(entry) == 0 {
		return "", fmt.Errorf("question %d has no question text", n)
	}
	var question string
	for key := range entry {
		question = key
	}
	return question, nil
}

// IsMultipleAnswer reports whether question n is a multiple-choice question,
// judged by the 17-byte tag prefixing its answer key.
func (t Test) IsMultipleAnswer(n int) (bool, error) {
	answer, err := t.answerKey(n)
	if err != nil {
		return false, err
	}
	if len(answer) < tagLen {
		return false, core.NewBoundsError(fmt.Sprintf("answer key of question %d is shorter than its type tag", n))
	}
	return answer[:tagLen] == MultipleAnswerTag, nil
}

// MultipleChoices returns the ordered choice strings of question n.
//
// TODO: the guard below looks inverted (it rejects multiple-answer questions,
// the only kind that has choices); kept as-is for compatibility with the
// answer keys already in circulation until they are re-encoded.
func (t Test) MultipleChoices(n int) ([]string, error) {
	multi, err := t.IsMultipleAnswer(n)
	if err != nil {
		return nil, err
	}
	if multi {
		return nil, core.NewValidationError(fmt.Errorf("question %d is not a multiple-choice question", n))
	}

	question, err := t.question(n)
	if err != nil {
		return nil, err
	}
	lines := splitLines(question)
	choices := make([]string, 0, len(lines)-1)
	for _, line := range lines[1:] { // first line is the question stem
		if len(line) < tagLen+1 {
			return nil, core.NewBoundsError(fmt.Sprintf("choice fragment %q of question %d is too short", line, n))
		}
		choices = append(choices, line[tagLen:len(line)-1])
	}
	return choices, nil
}

// String renders the test as an indented JSON dump.
func (t Test) String() string {
	return core.ToIndentedJSON(t)
}

// NewTest contains information needed to create a new Test.
// Field order is the validation order; the first violated invariant names the error.
type NewTest struct {
	ID        string    `json:"id" validate:"testid"`
	Name      string    `json:"name" validate:"required"`
	Course    string    `json:"course" validate:"course"`
	StartTime time.Time `json:"start_time" validate:"gt"`
	EndTime   time.Time `json:"end_time" validate:"gtfield=StartTime"`
	Grade     string    `json:"grade" validate:"gradelabel"`
	Contents  Contents  `json:"contents"`
}

func (nt *NewTest) Validate() error {
	nt.ID = core.CleanString(nt.ID)
	nt.Name = core.CleanString(nt.Name)
	nt.Grade = core.CleanString(nt.Grade)

	if err := core.Validate.Struct(nt); err != nil {
		if vErrs, ok := err.(validator.ValidationErrors); ok {
			return core.TranslateValidationErrors(vErrs)
		}
		return err
	}
	return nil
}

// New validates nt and builds the Test, all-or-nothing: on error no partial
// record is returned.
func New(nt NewTest) (Test, error) {
	if err := nt.Validate(); err != nil {
		return Test{}, err
	}
	return Test{
		ID:        nt.ID,
		Name:      nt.Name,
		Course:    Course(nt.Course),
		StartTime: nt.StartTime,
		EndTime:   nt.EndTime,
		Grade:     nt.Grade,
		Contents:  nt.Contents,
	}, nil
}

// QueryFilter applies an AND operation on its set fields.
type QueryFilter struct {
	Course Course
	Grade  string
}
