// Package render projects a quiz into a display structure. It is pure: no
// I/O and no styling, so the TUI and the CLI share one layout of a quiz.
package render

import (
	"fmt"
	"strings"

	"github.com/abhisek/wikiquiz/internal/quiz"
)

// Section names one block of a rendered quiz, in display order.
type Section string

const (
	SectionTitle         Section = "title"
	SectionSummary       Section = "summary"
	SectionKeyEntities   Section = "key_entities"
	SectionRelatedTopics Section = "related_topics"
	SectionQuestions     Section = "questions"
)

// Document is the displayable form of a quiz.
type Document struct {
	Title         string
	Summary       string
	KeyEntities   []string
	RelatedTopics []string
	Questions     []QuestionBlock
}

// QuestionBlock is one numbered question with lettered options.
type QuestionBlock struct {
	Number      int
	Text        string
	Options     []Option
	Answer      string
	AnswerLabel string // label of the option matching Answer, "" if none
	Explanation string
}

// Option is a lettered answer choice.
type Option struct {
	Label string
	Text  string
}

// Render builds the Document for q. A nil quiz renders to nil.
func Render(q *quiz.Quiz) *Document {
	if q == nil {
		return nil
	}

	doc := &Document{
		Title:         q.ArticleTitle,
		Summary:       q.Summary,
		KeyEntities:   append([]string(nil), q.KeyEntities...),
		RelatedTopics: append([]string(nil), q.RelatedTopics...),
		Questions:     make([]QuestionBlock, 0, len(q.Questions)),
	}

	for i, question := range q.Questions {
		block := QuestionBlock{
			Number:      i + 1,
			Text:        question.Question,
			Options:     make([]Option, 0, len(question.Options)),
			Answer:      question.Answer,
			Explanation: question.Explanation,
		}
		for j, text := range question.Options {
			block.Options = append(block.Options, Option{Label: OptionLabel(j), Text: text})
		}
		if idx := question.AnswerIndex(); idx >= 0 {
			block.AnswerLabel = OptionLabel(idx)
		}
		doc.Questions = append(doc.Questions, block)
	}

	return doc
}

// Sections lists the blocks present in d, in display order. Key entities
// and related topics appear only when non-empty.
func (d *Document) Sections() []Section {
	if d == nil {
		return nil
	}
	sections := []Section{SectionTitle, SectionSummary}
	if len(d.KeyEntities) > 0 {
		sections = append(sections, SectionKeyEntities)
	}
	if len(d.RelatedTopics) > 0 {
		sections = append(sections, SectionRelatedTopics)
	}
	return append(sections, SectionQuestions)
}

// AnswerLine formats the labelled answer, e.g. "Answer: B. Wolf".
func (b QuestionBlock) AnswerLine() string {
	if b.AnswerLabel == "" {
		return "Answer: " + b.Answer
	}
	return fmt.Sprintf("Answer: %s. %s", b.AnswerLabel, b.Answer)
}

// OptionLabel returns A, B, ..., Z, then AA, AB, ... for index i.
func OptionLabel(i int) string {
	label := ""
	for i >= 0 {
		label = string(rune('A'+i%26)) + label
		i = i/26 - 1
	}
	return label
}

// Text renders d as plain text. A nil document renders to "".
func Text(d *Document) string {
	if d == nil {
		return ""
	}

	var b strings.Builder
	for _, section := range d.Sections() {
		switch section {
		case SectionTitle:
			b.WriteString(d.Title)
			b.WriteString("\n")
			b.WriteString(strings.Repeat("=", len([]rune(d.Title))))
			b.WriteString("\n\n")
		case SectionSummary:
			b.WriteString(d.Summary)
			b.WriteString("\n\n")
		case SectionKeyEntities:
			b.WriteString("Key Entities: " + strings.Join(d.KeyEntities, ", "))
			b.WriteString("\n")
		case SectionRelatedTopics:
			b.WriteString("Related Topics: " + strings.Join(d.RelatedTopics, ", "))
			b.WriteString("\n")
		case SectionQuestions:
			if len(d.KeyEntities) > 0 || len(d.RelatedTopics) > 0 {
				b.WriteString("\n")
			}
			b.WriteString("Quiz Questions\n")
			if len(d.Questions) == 0 {
				b.WriteString("\n(no questions)\n")
			}
			for _, q := range d.Questions {
				fmt.Fprintf(&b, "\n%d. %s\n", q.Number, q.Text)
				for _, o := range q.Options {
					fmt.Fprintf(&b, "   %s. %s\n", o.Label, o.Text)
				}
				b.WriteString("   " + q.AnswerLine() + "\n")
				if q.Explanation != "" {
					b.WriteString("   Explanation: " + q.Explanation + "\n")
				}
			}
		}
	}
	return b.String()
}
