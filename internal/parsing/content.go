package parsing

import (
	"fmt"
	"strings"

	"github.com/mandy1eigh007/resume-workshop-app/internal/types"
)

// ObjectivesSection is the layout of the objective starters bank.
var ObjectivesSection = SectionSpec{
	Name:       "objectives",
	Start:      "Objective Starters",
	GroupLevel: 3,
	SublistA:   "Apprenticeship",
	SublistB:   "Job",
}

// Section layouts of the other library files.
var (
	RoleBulletsSection = SectionSpec{Name: "roles", Start: "Role Bullets", GroupLevel: 3}
	SkillsCanonSection = SectionSpec{Name: "skills", Start: "Skills Canon", GroupLevel: 3}
	BadgesSection      = SectionSpec{Name: "badges", Start: "Credential Badges", GroupLevel: 3}
	TemplatesSection   = SectionSpec{Name: "templates", Start: "Artifact Templates", GroupLevel: 3}
)

// ParseObjectives extracts per-trade objective starters. A trade with no objectives
// is kept with empty lists.
func ParseObjectives(text string) ([]types.TradeObjectives, []Warning) {
	res := ScanGroups(text, ObjectivesSection)
	warnings := res.Warnings
	seen := make(map[string]bool)

	out := make([]types.TradeObjectives, 0, len(res.Groups))
	for _, g := range res.Groups {
		if seen[strings.ToLower(g.Name)] {
			warnings = append(warnings, Warning{Section: ObjectivesSection.Name, Message: fmt.Sprintf("duplicate trade %q ignored", g.Name)})
			continue
		}
		seen[strings.ToLower(g.Name)] = true
		if n := len(g.Items) + blockItemCount(g.Blocks); n > 0 {
			warnings = append(warnings, Warning{
				Section: ObjectivesSection.Name,
				Message: fmt.Sprintf("trade %q: %d objectives outside an Apprenticeship/Job list ignored", g.Name, n),
			})
		}
		out = append(out, types.TradeObjectives{
			Trade:          g.Name,
			Apprenticeship: nonNil(g.A),
			Job:            nonNil(g.B),
		})
	}
	return out, warnings
}

// ParseRoleBullets extracts duty bullets per past-job role.
func ParseRoleBullets(text string) ([]types.RoleBullets, []Warning) {
	res := ScanGroups(text, RoleBulletsSection)
	warnings := res.Warnings
	seen := make(map[string]bool)

	out := make([]types.RoleBullets, 0, len(res.Groups))
	for _, g := range res.Groups {
		if seen[strings.ToLower(g.Name)] {
			warnings = append(warnings, Warning{Section: RoleBulletsSection.Name, Message: fmt.Sprintf("duplicate role %q ignored", g.Name)})
			continue
		}
		seen[strings.ToLower(g.Name)] = true

		bullets := append([]string{}, g.Items...)
		bullets = append(bullets, g.A...)
		bullets = append(bullets, g.B...)
		for _, b := range g.Blocks {
			bullets = append(bullets, b.Items...)
		}
		out = append(out, types.RoleBullets{Role: g.Name, Bullets: nonNil(types.DedupeFold(bullets))})
	}
	return out, warnings
}

// ParseSkillsCanon extracts the three skill buckets. Items may be one per line or
// several on one line separated by "•".
func ParseSkillsCanon(text string) (types.SkillsCanon, []Warning) {
	res := ScanGroups(text, SkillsCanonSection)
	warnings := res.Warnings
	buckets := make(map[types.SkillBucket][]string)

	for _, g := range res.Groups {
		bucket, ok := BucketForHeading(g.Name)
		if !ok {
			warnings = append(warnings, Warning{Section: SkillsCanonSection.Name, Message: fmt.Sprintf("unknown skills bucket %q ignored", g.Name)})
			continue
		}
		var labels []string
		for _, line := range append(append([]string{}, g.Items...), g.Text...) {
			labels = append(labels, splitBullets(line)...)
		}
		buckets[bucket] = types.DedupeFold(buckets[bucket], labels)
	}

	return types.SkillsCanon{
		Transferable:   nonNil(buckets[types.BucketTransferable]),
		JobSpecific:    nonNil(buckets[types.BucketJobSpecific]),
		SelfManagement: nonNil(buckets[types.BucketSelfManagement]),
	}, warnings
}

// BucketForHeading maps a bucket heading or name such as "Job-Specific Skills" to a bucket.
func BucketForHeading(heading string) (types.SkillBucket, bool) {
	key := alnumLower(heading)
	switch {
	case strings.Contains(key, "transferable"):
		return types.BucketTransferable, true
	case strings.Contains(key, "selfmanagement"):
		return types.BucketSelfManagement, true
	case strings.Contains(key, "jobspecific"):
		return types.BucketJobSpecific, true
	}
	return "", false
}

// ParseBadges extracts credential badges grouped by trade. Each badge is a bold
// label followed by "Resume phrase:" and "Proof:" items.
func ParseBadges(text string) ([]types.CredentialBadge, []Warning) {
	res := ScanGroups(text, BadgesSection)
	warnings := res.Warnings

	var out []types.CredentialBadge
	for _, g := range res.Groups {
		for _, block := range g.Blocks {
			badge := types.CredentialBadge{Trade: g.Name, Name: block.Label}
			for _, item := range block.Items {
				key, value, ok := splitKeyValue(item)
				if !ok {
					warnings = append(warnings, Warning{Section: BadgesSection.Name, Message: fmt.Sprintf("badge %q: unrecognised item %q", block.Label, item)})
					continue
				}
				switch key {
				case "resumephrase", "phrase", "resume":
					badge.ResumePhrase = value
				case "proof", "proofrequired", "evidence":
					badge.Proof = value
				default:
					warnings = append(warnings, Warning{Section: BadgesSection.Name, Message: fmt.Sprintf("badge %q: unknown field %q", block.Label, key)})
				}
			}
			if badge.ResumePhrase == "" {
				warnings = append(warnings, Warning{Section: BadgesSection.Name, Message: fmt.Sprintf("badge %q for %q has no resume phrase; skipped", block.Label, g.Name)})
				continue
			}
			out = append(out, badge)
		}
	}
	return out, warnings
}

// ParseArtifactTemplates extracts evidence forms. Plain text under the heading is
// the description; list items are the field labels.
func ParseArtifactTemplates(text string) ([]types.ArtifactTemplate, []Warning) {
	res := ScanGroups(text, TemplatesSection)

	out := make([]types.ArtifactTemplate, 0, len(res.Groups))
	for _, g := range res.Groups {
		out = append(out, types.ArtifactTemplate{
			Name:        g.Name,
			Description: strings.Join(g.Text, " "),
			Fields:      nonNil(g.Items),
		})
	}
	return out, res.Warnings
}

func splitBullets(line string) []string {
	parts := strings.Split(line, "•")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func splitKeyValue(item string) (string, string, bool) {
	idx := strings.Index(item, ":")
	if idx <= 0 {
		return "", "", false
	}
	value := strings.TrimSpace(item[idx+1:])
	if value == "" {
		return "", "", false
	}
	return alnumLower(item[:idx]), value, true
}

func alnumLower(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func blockItemCount(blocks []Block) int {
	n := 0
	for _, b := range blocks {
		n += len(b.Items)
	}
	return n
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
