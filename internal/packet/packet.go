// Package packet assembles the instructor pathway packet for one student and trade.
package packet

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mandy1eigh007/resume-workshop-app/internal/types"
)

// Content is the subset of the content registry a packet needs.
type Content interface {
	ObjectivesForTrade(trade string) (types.TradeObjectives, bool)
	BadgesForTrade(trade string) []types.CredentialBadge
	TemplateByName(name string) (types.ArtifactTemplate, bool)
}

// Request describes the packet to build.
type Request struct {
	Student         string
	Trade           string
	ApplicationType types.ApplicationType
	// Artifacts maps a template name to the values entered so far.
	Artifacts map[string]map[string]string
	// Sources are the pathway document names chosen for the packet.
	Sources []string
}

// Assemble builds the packet. Unknown trades produce an empty objective list
// and an unknown template is tracked with every field missing.
func Assemble(content Content, req Request) *types.Packet {
	appType := req.ApplicationType
	if appType == "" {
		appType = types.ApplicationApprenticeship
	}

	p := &types.Packet{
		ID:              uuid.NewString(),
		Student:         strings.TrimSpace(req.Student),
		Trade:           strings.TrimSpace(req.Trade),
		ApplicationType: appType,
		Objectives:      []string{},
		Badges:          content.BadgesForTrade(req.Trade),
		Artifacts:       []types.ArtifactRecord{},
		Sources:         req.Sources,
		GeneratedAt:     time.Now().UTC(),
	}
	if obj, ok := content.ObjectivesForTrade(req.Trade); ok {
		p.Objectives = append(p.Objectives, obj.ForApplication(appType)...)
	}

	names := make([]string, 0, len(req.Artifacts))
	for name := range req.Artifacts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		tmpl, ok := content.TemplateByName(name)
		if !ok {
			tmpl = types.ArtifactTemplate{Name: name}
		}
		p.Artifacts = append(p.Artifacts, ArtifactStatus(tmpl, req.Artifacts[name]))
	}
	return p
}

// ArtifactStatus reports whether every field of the template has a non-blank
// value. Field names match case-insensitively. A template with no fields is
// never complete.
func ArtifactStatus(tmpl types.ArtifactTemplate, values map[string]string) types.ArtifactRecord {
	byKey := make(map[string]string, len(values))
	for k, v := range values {
		byKey[strings.ToLower(strings.TrimSpace(k))] = v
	}

	rec := types.ArtifactRecord{Template: tmpl.Name, Values: values}
	for _, field := range tmpl.Fields {
		if strings.TrimSpace(byKey[strings.ToLower(strings.TrimSpace(field))]) == "" {
			rec.Missing = append(rec.Missing, field)
		}
	}
	rec.Complete = len(tmpl.Fields) > 0 && len(rec.Missing) == 0
	return rec
}

// Progress counts complete artifacts.
func Progress(p *types.Packet) (complete, total int) {
	for _, a := range p.Artifacts {
		if a.Complete {
			complete++
		}
	}
	return complete, len(p.Artifacts)
}
