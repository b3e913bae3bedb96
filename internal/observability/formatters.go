// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mandy1eigh007/resume-workshop-app/internal/content"
	"github.com/mandy1eigh007/resume-workshop-app/internal/normalize"
	"github.com/mandy1eigh007/resume-workshop-app/internal/packet"
	"github.com/mandy1eigh007/resume-workshop-app/internal/rewriting"
	"github.com/mandy1eigh007/resume-workshop-app/internal/types"
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
func (p *Printer) printBox(title string, body string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(body, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, boxWidth-4), boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, ending in "..." when cut.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

func pad(s string, n int) string {
	if c := utf8.RuneCountInString(s); c < n {
		return s + strings.Repeat(" ", n-c)
	}
	return s
}

// writeList writes up to limit items as "  • item" lines and a remainder count.
func writeList(sb *strings.Builder, items []string, limit int) {
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		fmt.Fprintf(sb, "  • %s\n", items[i])
	}
	if len(items) > limit {
		fmt.Fprintf(sb, "  ... and %d more\n", len(items)-limit)
	}
}

// PrintContentSummary outputs the load state and counts of the content model.
func (p *Printer) PrintContentSummary(reg *content.Registry) {
	if reg == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Source:   %s\n", reg.Source())
	fmt.Fprintf(&sb, "State:    %s\n", reg.State())
	if at := reg.LoadedAt(); !at.IsZero() {
		fmt.Fprintf(&sb, "Loaded:   %s\n", at.Format(time.RFC3339))
	}
	if msg := reg.LoadError(); msg != "" {
		fmt.Fprintf(&sb, "Error:    %s\n", msg)
	}
	sb.WriteString("\n")

	s := reg.Stats()
	fmt.Fprintf(&sb, "Trades:          %d (%d objectives)\n", s.Trades, s.Objectives)
	fmt.Fprintf(&sb, "Roles:           %d (%d bullets)\n", s.Roles, s.RoleBullets)
	fmt.Fprintf(&sb, "Skills:          %d\n", s.Skills)
	fmt.Fprintf(&sb, "Badges:          %d\n", s.Badges)
	fmt.Fprintf(&sb, "Templates:       %d\n", s.Templates)
	fmt.Fprintf(&sb, "Certifications:  %d\n", s.Certifications)
	fmt.Fprintf(&sb, "Keywords:        %d\n", s.Keywords)
	fmt.Fprintf(&sb, "Translations:    %d\n", s.Translations)

	if warnings := reg.Warnings(); len(warnings) > 0 {
		sb.WriteString("\nWarnings:\n")
		lines := make([]string, len(warnings))
		for i, w := range warnings {
			lines[i] = w.String()
		}
		writeList(&sb, lines, maxItemsToShow)
	}

	p.printBox("CONTENT MODEL", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintObjectives outputs the objective starters for one trade.
func (p *Printer) PrintObjectives(trade string, appType types.ApplicationType, objectives []string) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Trade:  %s\n", trade)
	fmt.Fprintf(&sb, "Type:   %s\n\n", appType)
	if len(objectives) == 0 {
		sb.WriteString("No objectives for this trade.")
	} else {
		writeList(&sb, objectives, len(objectives))
	}
	p.printBox("OBJECTIVE STARTERS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCertResults outputs how each raw certification resolved.
func (p *Printer) PrintCertResults(results []normalize.CertResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	for _, r := range results {
		mark := "✓"
		if !r.Recognized {
			mark = "?"
		}
		fmt.Fprintf(&sb, "%s %s → %s\n", mark, r.Input, r.Canonical)
	}
	if unknown := normalize.Unrecognized(results); len(unknown) > 0 {
		fmt.Fprintf(&sb, "\n%d not in the certification table", len(unknown))
	}
	p.printBox("CERTIFICATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkills outputs inferred or suggested skill labels.
func (p *Printer) PrintSkills(title string, labels []string) {
	var sb strings.Builder
	if len(labels) == 0 {
		sb.WriteString("No matches.")
	} else {
		fmt.Fprintf(&sb, "%d skills:\n\n", len(labels))
		writeList(&sb, labels, len(labels))
	}
	p.printBox(strings.ToUpper(title), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBulletSuggestions outputs duty bullets suggested from a job description.
func (p *Printer) PrintBulletSuggestions(trade string, bullets []string) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Trade: %s\n\n", trade)
	writeList(&sb, bullets, maxItemsToShow)
	p.printBox("SUGGESTED BULLETS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMeasurableBullets outputs measurable bullets with style check indicators.
func (p *Printer) PrintMeasurableBullets(bullets []types.MeasurableBullet) {
	if len(bullets) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(bullets), maxItemsToShow)
	for i := 0; i < count; i++ {
		b := bullets[i]
		fmt.Fprintf(&sb, "• %s\n", truncate(b.Text(), 50))

		checks := rewriting.ValidateStyle(b)
		var marks []string
		if checks.StrongVerb {
			marks = append(marks, "✓verb")
		}
		if checks.Quantified {
			marks = append(marks, "✓number")
		}
		if checks.HasSafety {
			marks = append(marks, "✓safety")
		}
		if checks.HasVerification {
			marks = append(marks, "✓verified")
		}
		if len(marks) > 0 {
			fmt.Fprintf(&sb, "  [%s]\n", strings.Join(marks, " "))
		}
	}
	if len(bullets) > maxItemsToShow {
		fmt.Fprintf(&sb, "\n... and %d more bullets", len(bullets)-maxItemsToShow)
	}

	p.printBox("MEASURABLE BULLETS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPacket outputs the artifact tracker of a pathway packet.
func (p *Printer) PrintPacket(pk *types.Packet) {
	if pk == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Student:  %s\n", pk.Student)
	fmt.Fprintf(&sb, "Trade:    %s\n", pk.Trade)
	complete, total := packet.Progress(pk)
	fmt.Fprintf(&sb, "Artifacts complete: %d/%d\n", complete, total)

	for _, a := range pk.Artifacts {
		if a.Complete {
			continue
		}
		fmt.Fprintf(&sb, "  ✗ %s (missing %s)\n", a.Template, strings.Join(a.Missing, ", "))
	}

	p.printBox("PATHWAY PACKET", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintViolations outputs any constraint violations found.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations *types.Violations) {
	if violations == nil || len(violations.Violations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %s │\n", pad("✅ NO VIOLATIONS FOUND", boxWidth-4))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d violations:\n\n", len(violations.Violations))

	for i, v := range violations.Violations {
		fmt.Fprintf(&sb, "⚠ %s %s (%s)\n", v.Field, v.Type, v.Severity)
		fmt.Fprintf(&sb, "  %s\n", truncate(v.Details, 45))
		if i < len(violations.Violations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CONSTRAINT VIOLATIONS", strings.TrimSuffix(sb.String(), "\n"))
}
