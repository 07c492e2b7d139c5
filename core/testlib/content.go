package testlib

import (
	"fmt"
	"sort"
	"strings"
)

// Answer-key tags. Both are exactly 17 bytes so that the question kind can be
// read off a fixed-width prefix.
const (
	// MultipleAnswerTag prefixes the answer key of a multiple-choice question.
	MultipleAnswerTag = "[MULTIPLE_ANSWER]"
	// PossibleAnswerTag prefixes each choice line in a multiple-choice question text.
	PossibleAnswerTag = "[POSSIBLE_ANSWER]"

	choiceDelimiter = ";"

	tagLen = len(MultipleAnswerTag)
)

// Question kinds
type QuestionKind string

const (
	// KindMultipleAnswer marks a question answered by picking among fixed choices.
	KindMultipleAnswer QuestionKind = "multiple_answer"
	// KindOpenAnswer marks everything else: free-response or single-answer questions.
	KindOpenAnswer QuestionKind = "open_answer"
)

// Question is the decoded form of a contents entry. Instead of reconstructing
// structure from delimiter offsets at each call site, decode once and switch
// on Kind.
type Question struct {
	Number    int          `json:"number"`
	Stem      string       `json:"stem"`
	Kind      QuestionKind `json:"kind"`
	Choices   []string     `json:"choices,omitempty"`
	AnswerKey string       `json:"answer_key"`
}

// Encode renders the question back into its wire entry. Decode(Encode(q))
// yields q for every well-formed question.
func (q Question) Encode() Entry {
	switch q.Kind {
	case KindMultipleAnswer:
		var b strings.Builder
		b.WriteString(q.Stem)
		for _, choice := range q.Choices {
			b.WriteString("\n")
			b.WriteString(PossibleAnswerTag)
			b.WriteString(choice)
			b.WriteString(choiceDelimiter)
		}
		return Entry{b.String(): MultipleAnswerTag + q.AnswerKey}
	default:
		return Entry{q.Stem: q.AnswerKey}
	}
}

// DecodeQuestion decodes the entry of question n into its tagged-variant form.
// The entry must hold exactly one question-text/answer-key pair.
func DecodeQuestion(n int, entry Entry) (Question, error) {
	if len(entry) != 1 {
		return Question{}, fmt.Errorf("question %d: entry must hold exactly one question/answer pair, got %d", n, len(entry))
	}

	var question, answer string
	for key, value := range entry {
		question, answer = key, value
	}

	q := Question{Number: n, Kind: KindOpenAnswer, Stem: question, AnswerKey: answer}
	if !strings.HasPrefix(answer, MultipleAnswerTag) {
		return q, nil
	}

	q.Kind = KindMultipleAnswer
	q.AnswerKey = answer[tagLen:]

	lines := splitLines(question)
	q.Stem = lines[0]
	q.Choices = make([]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if !strings.HasPrefix(line, PossibleAnswerTag) || !strings.HasSuffix(line, choiceDelimiter) {
			return Question{}, fmt.Errorf("question %d: malformed choice line %q", n, line)
		}
		q.Choices = append(q.Choices, line[tagLen:len(line)-1])
	}
	return q, nil
}

// DecodeContents decodes every entry, ordered by question number.
func DecodeContents(contents Contents) ([]Question, error) {
	numbers := make([]int, 0, len(contents))
	for n := range contents {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	questions := make([]Question, 0, len(numbers))
	for _, n := range numbers {
		q, err := DecodeQuestion(n, contents[n])
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// EncodeQuestions is the inverse of DecodeContents.
func EncodeQuestions(questions []Question) Contents {
	contents := make(Contents, len(questions))
	for _, q := range questions {
		contents[q.Number] = q.Encode()
	}
	return contents
}

func splitLines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}
