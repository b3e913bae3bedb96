// Package schemas bundles the JSON Schemas for the workshop's JSON documents.
package schemas

import "embed"

//go:embed *.schema.json
var files embed.FS

// Schema file names.
const (
	TemplateVars = "template_vars.schema.json"
	Violations   = "violations.schema.json"
	ResumeDraft  = "resume_draft.schema.json"
	Packet       = "packet.schema.json"
)

// All lists every bundled schema.
var All = []string{TemplateVars, Violations, ResumeDraft, Packet}

// Read returns the content of a bundled schema.
func Read(name string) ([]byte, error) {
	return files.ReadFile(name)
}
