package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wikiquiz/internal/render"
	"github.com/abhisek/wikiquiz/internal/ui/theme"
)

// QuizView renders a quiz document as styled, wrapped text. Sections
// appear in the order render.Sections reports.
func QuizView(doc *render.Document, width int) string {
	if doc == nil {
		return ""
	}

	wrap := lipgloss.NewStyle().Width(max(width, 10))
	var b strings.Builder

	for i, section := range doc.Sections() {
		if i > 0 {
			b.WriteString("\n")
		}
		switch section {
		case render.SectionTitle:
			b.WriteString(theme.Title.Render(doc.Title))
			b.WriteString("\n")
		case render.SectionSummary:
			b.WriteString(wrap.Foreground(theme.Text).Render(doc.Summary))
			b.WriteString("\n")
		case render.SectionKeyEntities:
			b.WriteString(theme.Label.Render("Key Entities: "))
			b.WriteString(wrap.Foreground(theme.Text).Render(strings.Join(doc.KeyEntities, ", ")))
			b.WriteString("\n")
		case render.SectionRelatedTopics:
			b.WriteString(theme.Label.Render("Related Topics: "))
			b.WriteString(wrap.Foreground(theme.Text).Render(strings.Join(doc.RelatedTopics, ", ")))
			b.WriteString("\n")
		case render.SectionQuestions:
			b.WriteString(theme.Heading.Render("Quiz Questions"))
			b.WriteString("\n")
			if len(doc.Questions) == 0 {
				b.WriteString(theme.Hint.Render("No questions."))
				b.WriteString("\n")
			}
			for _, q := range doc.Questions {
				b.WriteString("\n")
				b.WriteString(questionView(q, width))
			}
		}
	}
	return b.String()
}

func questionView(q render.QuestionBlock, width int) string {
	var b strings.Builder
	indent := lipgloss.NewStyle().PaddingLeft(3).Width(max(width, 10))

	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Width(max(width, 10)).
		Render(fmt.Sprintf("%d. %s", q.Number, q.Text)))
	b.WriteString("\n")
	for _, opt := range q.Options {
		line := opt.Label + ". " + opt.Text
		if opt.Label == q.AnswerLabel {
			b.WriteString(indent.Inherit(theme.Answer).Render(line))
		} else {
			b.WriteString(indent.Foreground(theme.Text).Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString(indent.Inherit(theme.Answer).Render(q.AnswerLine()))
	b.WriteString("\n")
	if q.Explanation != "" {
		b.WriteString(indent.Inherit(theme.Hint).Render(q.Explanation))
		b.WriteString("\n")
	}
	return b.String()
}
