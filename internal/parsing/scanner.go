package parsing

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// State is a state of the section scanner.
type State int

const (
	StateSeekingSection State = iota
	StateInSection
	StateInGroup
	StateInSublistA
	StateInSublistB
	StateInLabeled
	StateDone
)

func (s State) String() string {
	switch s {
	case StateSeekingSection:
		return "seeking_section"
	case StateInSection:
		return "in_section"
	case StateInGroup:
		return "in_group"
	case StateInSublistA:
		return "in_sublist_a"
	case StateInSublistB:
		return "in_sublist_b"
	case StateInLabeled:
		return "in_labeled"
	case StateDone:
		return "done"
	}
	return "unknown"
}

// SectionSpec describes where a section starts and ends and how its groups are laid out.
//
// Start and End are matched case-insensitively against heading text by containment.
// An empty Start treats the whole document as the section; an empty End runs the
// section until a heading at or above its own level, or end of input.
// GroupLevel defaults to one level below the section heading.
type SectionSpec struct {
	Name       string
	Start      string
	End        string
	GroupLevel int
	SublistA   string
	SublistB   string
}

// Block is a run of list items under a bold label that is neither sublist.
type Block struct {
	Label string
	Items []string
}

// Group is one heading-delimited group inside a section (a trade, role, template...).
type Group struct {
	Name   string
	Text   []string
	Items  []string
	A      []string
	B      []string
	Blocks []Block
}

// ScanResult is the output of ScanGroups.
type ScanResult struct {
	Found    bool
	Groups   []Group
	Warnings []Warning
}

// scanner holds the mutable state of one ScanGroups run.
type scanner struct {
	spec         SectionSpec
	state        State
	sectionLevel int
	groupLevel   int
	current      *Group
	result       ScanResult
}

// ScanGroups extracts the groups of one section. It never fails: malformed lines
// are skipped and reported as warnings, and the final group is always flushed.
func ScanGroups(text string, spec SectionSpec) ScanResult {
	s := &scanner{spec: spec, state: StateSeekingSection}
	if strings.TrimSpace(spec.Start) == "" {
		s.enterSection(0)
	}

	for i, raw := range SplitLines(text) {
		line := ClassifyLine(raw)
		line.Number = i + 1
		s.step(line)
		if s.state == StateDone {
			break
		}
	}
	s.flush()

	if !s.result.Found {
		s.warn(0, fmt.Sprintf("section %q not found", spec.Start))
	}
	return s.result
}

func (s *scanner) enterSection(level int) {
	s.result.Found = true
	s.sectionLevel = level
	s.groupLevel = s.spec.GroupLevel
	if s.groupLevel <= level {
		s.groupLevel = level + 1
	}
	s.state = StateInSection
}

func (s *scanner) step(line Line) {
	if s.state == StateSeekingSection {
		if line.Kind == LineHeading && headingMatches(line.Text, s.spec.Start) {
			s.enterSection(line.Level)
		}
		return
	}

	switch line.Kind {
	case LineBlank:
		return
	case LineHeading:
		s.onHeading(line)
	case LineBoldLabel:
		s.onBoldLabel(line)
	case LineNumbered, LineBulleted:
		s.onItem(line)
	case LineText:
		s.onText(line)
	}
}

func (s *scanner) onHeading(line Line) {
	if s.spec.End != "" && headingMatches(line.Text, s.spec.End) {
		s.flush()
		s.state = StateDone
		return
	}
	if s.sectionLevel > 0 && line.Level <= s.sectionLevel {
		s.flush()
		s.state = StateDone
		return
	}
	if line.Level != s.groupLevel {
		// Deeper headings inside a group carry no records.
		return
	}

	s.flush()
	if line.Text == "" {
		s.warn(line.Number, "group heading has no name; skipping group")
		s.state = StateInSection
		return
	}
	s.current = &Group{Name: line.Text}
	s.state = StateInGroup
}

func (s *scanner) onBoldLabel(line Line) {
	if s.current == nil {
		s.warn(line.Number, fmt.Sprintf("label %q outside any group", line.Text))
		return
	}
	switch {
	case labelMatches(line.Text, s.spec.SublistA):
		s.state = StateInSublistA
	case labelMatches(line.Text, s.spec.SublistB):
		s.state = StateInSublistB
	default:
		s.current.Blocks = append(s.current.Blocks, Block{Label: line.Text})
		s.state = StateInLabeled
	}
}

func (s *scanner) onItem(line Line) {
	if line.Text == "" {
		s.warn(line.Number, "empty list item")
		return
	}
	if s.current == nil {
		s.warn(line.Number, "list item outside any group")
		return
	}
	switch s.state {
	case StateInSublistA:
		s.current.A = append(s.current.A, line.Text)
	case StateInSublistB:
		s.current.B = append(s.current.B, line.Text)
	case StateInLabeled:
		last := &s.current.Blocks[len(s.current.Blocks)-1]
		last.Items = append(last.Items, line.Text)
	default:
		s.current.Items = append(s.current.Items, line.Text)
	}
}

func (s *scanner) onText(line Line) {
	if s.current == nil {
		return
	}
	s.current.Text = append(s.current.Text, line.Text)
}

// flush saves the in-progress group, even when it has no items.
func (s *scanner) flush() {
	if s.current == nil {
		return
	}
	s.result.Groups = append(s.result.Groups, *s.current)
	s.current = nil
	if s.state != StateDone {
		s.state = StateInSection
	}
}

func (s *scanner) warn(line int, msg string) {
	s.result.Warnings = append(s.result.Warnings, Warning{Section: s.spec.Name, Line: line, Message: msg})
}

func headingMatches(heading, marker string) bool {
	marker = strings.TrimSpace(marker)
	if marker == "" {
		return false
	}
	return strings.Contains(strings.ToLower(heading), strings.ToLower(marker))
}

// labelMatches reports whether label is want, optionally followed by a
// qualifier such as "Job (entry-level)" or "Apprenticeship:". A longer word
// like "Jobsite" does not match "Job".
func labelMatches(label, want string) bool {
	want = strings.ToLower(strings.TrimSpace(want))
	if want == "" {
		return false
	}
	rest, ok := strings.CutPrefix(strings.ToLower(strings.TrimSpace(label)), want)
	if !ok {
		return false
	}
	if rest == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
