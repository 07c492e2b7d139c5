package testlib

import (
	"reflect"
	"testing"
)

func TestDecodeQuestion(t *testing.T) {
	tests := []struct {
		name    string
		entry   Entry
		want    Question
		wantErr bool
	}{
		{
			name:  "multiple answer",
			entry: Entry{"What is 2+2?\n[POSSIBLE_ANSWER]3;\n[POSSIBLE_ANSWER]4;": "[MULTIPLE_ANSWER]4"},
			want: Question{
				Number:    1,
				Stem:      "What is 2+2?",
				Kind:      KindMultipleAnswer,
				Choices:   []string{"3", "4"},
				AnswerKey: "4",
			},
		},
		{
			name:  "open answer",
			entry: Entry{"Prove that sqrt(2) is irrational.": "[STANDARD_ANSWER]see the answer sheet"},
			want: Question{
				Number:    1,
				Stem:      "Prove that sqrt(2) is irrational.",
				Kind:      KindOpenAnswer,
				AnswerKey: "[STANDARD_ANSWER]see the answer sheet",
			},
		},
		{
			name:  "multi-line open answer",
			entry: Entry{"Essay.\nDiscuss the causes of WWI.": "free-form"},
			want: Question{
				Number:    1,
				Stem:      "Essay.\nDiscuss the causes of WWI.",
				Kind:      KindOpenAnswer,
				AnswerKey: "free-form",
			},
		},
		{
			name:  "windows line endings",
			entry: Entry{"What is 2+2?\r\n[POSSIBLE_ANSWER]4;": "[MULTIPLE_ANSWER]4"},
			want: Question{
				Number:    1,
				Stem:      "What is 2+2?",
				Kind:      KindMultipleAnswer,
				Choices:   []string{"4"},
				AnswerKey: "4",
			},
		},
		{name: "empty entry", entry: Entry{}, wantErr: true},
		{name: "two pairs in one entry", entry: Entry{"a": "b", "c": "d"}, wantErr: true},
		{
			name:    "choice line without tag",
			entry:   Entry{"What is 2+2?\n4;": "[MULTIPLE_ANSWER]4"},
			wantErr: true,
		},
		{
			name:    "choice line without delimiter",
			entry:   Entry{"What is 2+2?\n[POSSIBLE_ANSWER]4": "[MULTIPLE_ANSWER]4"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeQuestion(1, tt.entry)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("DecodeQuestion() = %+v, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeQuestion() failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DecodeQuestion() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestQuestion_Encode_roundTrip(t *testing.T) {
	questions := []Question{
		{
			Number:    1,
			Stem:      "What is 2+2?",
			Kind:      KindMultipleAnswer,
			Choices:   []string{"3", "4", "5"},
			AnswerKey: "4",
		},
		{
			Number:    2,
			Stem:      "Prove that sqrt(2) is irrational.",
			Kind:      KindOpenAnswer,
			AnswerKey: "[STANDARD_ANSWER]see the answer sheet",
		},
	}
	for _, q := range questions {
		decoded, err := DecodeQuestion(q.Number, q.Encode())
		if err != nil {
			t.Fatalf("DecodeQuestion(Encode()) failed: %v", err)
		}
		if !reflect.DeepEqual(decoded, q) {
			t.Errorf("round trip = %+v, want %+v", decoded, q)
		}
	}
}

func TestDecodeContents(t *testing.T) {
	contents := EncodeQuestions([]Question{
		{Number: 3, Stem: "Third", Kind: KindOpenAnswer, AnswerKey: "c"},
		{Number: 1, Stem: "First", Kind: KindOpenAnswer, AnswerKey: "a"},
		{Number: 2, Stem: "Second", Kind: KindMultipleAnswer, Choices: []string{"x", "y"}, AnswerKey: "x"},
	})

	questions, err := DecodeContents(contents)
	if err != nil {
		t.Fatalf("DecodeContents() failed: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("DecodeContents() len = %d, want 3", len(questions))
	}
	for i, q := range questions {
		if q.Number != i+1 {
			t.Errorf("DecodeContents()[%d].Number = %d, want %d (ordered by question number)", i, q.Number, i+1)
		}
	}

	contents[4] = Entry{}
	if _, err := DecodeContents(contents); err == nil {
		t.Error("DecodeContents() with a malformed entry did not fail")
	}
}
