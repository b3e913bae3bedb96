package packet

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mandy1eigh007/resume-workshop-app/internal/types"
)

// SourceDoc is a pathway document with its extracted text.
type SourceDoc struct {
	Name string
	Text string
}

// WriteText writes the packet as plain text. Source documents are included in
// full, one section each, in the order given.
func WriteText(w io.Writer, p *types.Packet, docs []SourceDoc) error {
	bw := bufio.NewWriter(w)
	line := func(format string, args ...interface{}) {
		fmt.Fprintf(bw, format+"\n", args...)
	}

	line("INSTRUCTOR PATHWAY PACKET")
	line("Student: %s | Trade: %s | Application type: %s", p.Student, p.Trade, p.ApplicationType)
	line("Generated: %s", p.GeneratedAt.Format("2006-01-02 15:04 MST"))

	line("")
	line("OBJECTIVE STARTERS")
	if len(p.Objectives) == 0 {
		line("  (none in the library for this trade)")
	}
	for i, o := range p.Objectives {
		line("  %d. %s", i+1, o)
	}

	if len(p.Badges) > 0 {
		line("")
		line("CREDENTIAL BADGES")
		for _, b := range p.Badges {
			line("  %s", b.Name)
			line("    Resume phrase: %s", b.ResumePhrase)
			if b.Proof != "" {
				line("    Proof: %s", b.Proof)
			}
		}
	}

	if len(p.Artifacts) > 0 {
		complete, total := Progress(p)
		line("")
		line("ARTIFACT TRACKER (%d of %d complete)", complete, total)
		for _, a := range p.Artifacts {
			status := "complete"
			if !a.Complete {
				status = "missing: " + strings.Join(a.Missing, ", ")
				if len(a.Missing) == 0 {
					status = "no fields defined"
				}
			}
			line("  [%s] %s", mark(a.Complete), a.Template)
			line("      %s", status)
		}
	}

	for _, d := range docs {
		line("")
		line("%s", strings.Repeat("=", 72))
		line("%s", d.Name)
		line("%s", strings.Repeat("=", 72))
		text := strings.TrimSpace(d.Text)
		if text == "" {
			line("(no text could be extracted)")
			continue
		}
		line("%s", text)
	}

	return bw.Flush()
}

func mark(done bool) string {
	if done {
		return "x"
	}
	return " "
}
