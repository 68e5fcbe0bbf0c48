// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/forum-agent/internal/agenda"
	"github.com/jonathan/forum-agent/internal/timefmt"
	"github.com/jonathan/forum-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintQuestionnaire outputs a summary of the fetched questionnaire.
func (p *Printer) PrintQuestionnaire(q *types.Questionnaire) {
	if q == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Questions: %d\n\n", len(q.Questions)))

	count := min(len(q.Questions), maxItemsToShow)
	for i := 0; i < count; i++ {
		question := q.Questions[i]
		text := question.QuestionText
		if len(text) > 40 {
			text = text[:37] + "..."
		}
		marker := " "
		if question.IsRequired {
			marker = "*"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", marker, text))
		sb.WriteString(fmt.Sprintf("  [%s]\n", question.QuestionType))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(q.Questions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more questions", len(q.Questions)-maxItemsToShow))
	}

	p.printBox("OFFER QUESTIONNAIRE", sb.String())
}

// PrintAgendaDays outputs the day-grouped slot listing.
func (p *Printer) PrintAgendaDays(days []agenda.DayGroup) {
	if len(days) == 0 {
		p.printBox("INTERVIEW SLOTS", "No available slots.")
		return
	}

	var sb strings.Builder
	for i, day := range days {
		sb.WriteString(fmt.Sprintf("%s\n", timefmt.FormatDate(day.Date)))
		count := min(len(day.Slots), maxItemsToShow)
		for j := 0; j < count; j++ {
			slot := day.Slots[j]
			sb.WriteString(fmt.Sprintf("  #%d  %s - %s (%d min)",
				slot.ID,
				timefmt.FormatTime(slot.StartTime),
				timefmt.FormatTime(slot.EndTime),
				timefmt.SlotDuration(slot.StartTime, slot.EndTime)))
			if slot.Recruiter != nil {
				sb.WriteString(fmt.Sprintf("  %s", slot.Recruiter.Name))
			}
			sb.WriteString("\n")
		}
		if len(day.Slots) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more slots\n", len(day.Slots)-maxItemsToShow))
		}
		if i < len(days)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("INTERVIEW SLOTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProgrammeDays outputs the day-grouped programme listing.
func (p *Printer) PrintProgrammeDays(days []agenda.ProgrammeDay) {
	if len(days) == 0 {
		return
	}

	var sb strings.Builder
	for i, day := range days {
		sb.WriteString(fmt.Sprintf("%s\n", timefmt.FormatDate(day.Date)))
		for _, programme := range day.Programmes {
			title := programme.Title
			if len(title) > 38 {
				title = title[:35] + "..."
			}
			sb.WriteString(fmt.Sprintf("  %s  %s\n", programme.StartsAt.Format("15:04"), title))
			if programme.Speaker != "" {
				sb.WriteString(fmt.Sprintf("        %s\n", programme.Speaker))
			}
		}
		if i < len(days)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("PROGRAMME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintConfirmation outputs the confirmation-step summary of a draft.
func (p *Printer) PrintConfirmation(draft *types.ApplicationDraft) {
	if draft == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Offer:    %s\n", draft.Offer.Title))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", draft.Offer.Company))

	if draft.Questionnaire != nil {
		sb.WriteString(fmt.Sprintf("Answers:  %d\n", len(draft.Questionnaire.Answers)))
	} else {
		sb.WriteString("Answers:  (no questionnaire)\n")
	}

	if draft.Slot != nil {
		sb.WriteString(fmt.Sprintf("Slot:     %s %s",
			timefmt.FormatDate(draft.Slot.Date),
			timefmt.FormatTime(draft.Slot.StartTime)))
	} else {
		sb.WriteString("Slot:     none selected")
	}

	p.printBox("APPLICATION SUMMARY", sb.String())
}
