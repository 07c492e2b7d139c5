package testlib

import (
	"testing"
	"time"

	"github.com/vianuedu/backend/core"
)

func sampleContents() Contents {
	return Contents{
		1: {
			"What is 2+2?\n[POSSIBLE_ANSWER]3;\n[POSSIBLE_ANSWER]4;\n[POSSIBLE_ANSWER]5;": "[MULTIPLE_ANSWER]4",
		},
		2: {
			"Prove that sqrt(2) is irrational.": "[STANDARD_ANSWER]see the answer sheet",
		},
	}
}

func validNewTest() NewTest {
	start := time.Now().Add(time.Hour)
	return NewTest{
		ID:        "T-000001",
		Name:      "Midterm",
		Course:    "Math",
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		Grade:     "12",
		Contents:  sampleContents(),
	}
}

func firstFieldError(t *testing.T, err error) core.FieldError {
	t.Helper()
	vErr, ok := err.(*core.ValidationError)
	if !ok {
		t.Fatalf("error = %T (%v), want *core.ValidationError", err, err)
	}
	if len(vErr.Fields) == 0 {
		t.Fatal("ValidationError has no field errors")
	}
	return vErr.Fields[0]
}

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(nt *NewTest)
		wantField string
		wantErr   string // empty: only the field name is checked
	}{
		{name: "valid"},
		{name: "valid letter-only grade", mutate: func(nt *NewTest) { nt.Grade = "Z" }},
		{name: "malformed id", mutate: func(nt *NewTest) { nt.ID = "X-000001" }, wantField: "id", wantErr: testIDText},
		{name: "id without digits", mutate: func(nt *NewTest) { nt.ID = "T-" }, wantField: "id", wantErr: testIDText},
		{name: "id with letters", mutate: func(nt *NewTest) { nt.ID = "T-0abc1" }, wantField: "id", wantErr: testIDText},
		{name: "empty name", mutate: func(nt *NewTest) { nt.Name = "" }, wantField: "name", wantErr: "this field is required"},
		{name: "unsupported course", mutate: func(nt *NewTest) { nt.Course = "Bio" }, wantField: "course", wantErr: courseText},
		{name: "start time in the past", mutate: func(nt *NewTest) { nt.StartTime = time.Now().Add(-time.Hour) }, wantField: "start_time"},
		{
			name: "end time before start time",
			mutate: func(nt *NewTest) {
				nt.EndTime = nt.StartTime.Add(-time.Minute)
			},
			wantField: "end_time",
		},
		// pins for the class-label rejection: 12B, 1B and 9Z are class
		// designations; 12 and Z are whole grades
		{name: "class label 12B", mutate: func(nt *NewTest) { nt.Grade = "12B" }, wantField: "grade", wantErr: gradeLabelText},
		{name: "class label 1B", mutate: func(nt *NewTest) { nt.Grade = "1B" }, wantField: "grade", wantErr: gradeLabelText},
		{name: "class label 9Z", mutate: func(nt *NewTest) { nt.Grade = "9Z" }, wantField: "grade", wantErr: gradeLabelText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nt := validNewTest()
			if tt.mutate != nil {
				tt.mutate(&nt)
			}

			test, err := New(nt)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("New() unexpected error = %v", err)
				}
				return
			}

			fldErr := firstFieldError(t, err)
			if fldErr.Field != tt.wantField {
				t.Errorf("New() violated field = %s, want %s", fldErr.Field, tt.wantField)
			}
			if tt.wantErr != "" && fldErr.Error != tt.wantErr {
				t.Errorf("New() field error = %q, want %q", fldErr.Error, tt.wantErr)
			}
			if test.ID != "" || test.Contents != nil {
				t.Error("New() returned a partial Test on error")
			}
		})
	}
}

func TestNew_roundTrip(t *testing.T) {
	nt := validNewTest()
	test, err := New(nt)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if test.ID != "T-000001" || test.Name != "Midterm" {
		t.Errorf("New() id/name = %s/%s", test.ID, test.Name)
	}
	if test.Course != CourseMath {
		t.Errorf("New() course = %s, want %s", test.Course, CourseMath)
	}
	if !test.StartTime.Equal(nt.StartTime) || !test.EndTime.Equal(nt.EndTime) {
		t.Error("New() altered the scheduled times")
	}
	if test.Grade != "12" {
		t.Errorf("New() grade = %s, want 12", test.Grade)
	}
	if len(test.Contents) != 2 {
		t.Errorf("New() contents len = %d, want 2", len(test.Contents))
	}
}

func TestTest_IsMultipleAnswer(t *testing.T) {
	test, err := New(validNewTest())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	multi, err := test.IsMultipleAnswer(1)
	if err != nil {
		t.Fatalf("IsMultipleAnswer(1) failed: %v", err)
	}
	if !multi {
		t.Error("IsMultipleAnswer(1) = false, want true")
	}

	multi, err = test.IsMultipleAnswer(2)
	if err != nil {
		t.Fatalf("IsMultipleAnswer(2) failed: %v", err)
	}
	if multi {
		t.Error("IsMultipleAnswer(2) = true, want false")
	}

	if _, err = test.IsMultipleAnswer(99); err != ErrQuestionNotFound {
		t.Errorf("IsMultipleAnswer(99) error = %v, want %v", err, ErrQuestionNotFound)
	}

	test.Contents[3] = Entry{}
	if _, err = test.IsMultipleAnswer(3); err == nil {
		t.Error("IsMultipleAnswer() on an empty entry did not fail")
	}

	test.Contents[4] = Entry{"Short?": "42"}
	_, err = test.IsMultipleAnswer(4)
	if _, ok := err.(*core.BoundsError); !ok {
		t.Errorf("IsMultipleAnswer() on a short answer key error = %T (%v), want *core.BoundsError", err, err)
	}
}

func TestTest_MultipleChoices(t *testing.T) {
	nt := validNewTest()
	// non-multiple-answer question carrying choice lines; the guard lets these through
	nt.Contents[5] = Entry{
		"Pick the classic.\n[POSSIBLE_ANSWER]Ion;\n[POSSIBLE_ANSWER]Moara cu noroc;": "[STANDARD_ANSWER]Ion",
	}
	nt.Contents[6] = Entry{
		"Broken.\nshort": "[STANDARD_ANSWER]n/a",
	}
	test, err := New(nt)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	choices, err := test.MultipleChoices(5)
	if err != nil {
		t.Fatalf("MultipleChoices(5) failed: %v", err)
	}
	want := []string{"Ion", "Moara cu noroc"}
	if len(choices) != len(want) {
		t.Fatalf("MultipleChoices(5) = %v, want %v", choices, want)
	}
	for i := range want {
		if choices[i] != want[i] {
			t.Errorf("MultipleChoices(5)[%d] = %q, want %q", i, choices[i], want[i])
		}
	}

	// multiple-answer questions are rejected by the legacy guard
	_, err = test.MultipleChoices(1)
	if _, ok := err.(*core.ValidationError); !ok {
		t.Fatalf("MultipleChoices(1) error = %T (%v), want *core.ValidationError", err, err)
	}

	// fragments shorter than the tag + delimiter cannot be decoded
	_, err = test.MultipleChoices(6)
	if _, ok := err.(*core.BoundsError); !ok {
		t.Errorf("MultipleChoices(6) error = %T (%v), want *core.BoundsError", err, err)
	}

	if _, err = test.MultipleChoices(99); err != ErrQuestionNotFound {
		t.Errorf("MultipleChoices(99) error = %v, want %v", err, ErrQuestionNotFound)
	}
}

func TestTest_String(t *testing.T) {
	test, err := New(validNewTest())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	dump := test.String()
	if dump == "" {
		t.Fatal("String() returned an empty dump")
	}
	if dump != test.String() {
		t.Error("String() is not deterministic")
	}
}
