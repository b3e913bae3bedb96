package packet

import (
	"strings"

	"github.com/mandy1eigh007/resume-workshop-app/internal/skills"
)

// SelectPathwayFiles picks the document names relevant to trade. The general
// roadmap is always kept. When nothing matches, every name is returned so the
// instructor still gets the full set.
func SelectPathwayFiles(trade string, names []string, pathways skills.PathwayFiles) []string {
	fragments, _ := pathways.Fragments(trade)

	var hits []string
	for _, name := range names {
		lower := strings.ToLower(name)
		if pathways.Roadmap != "" && strings.Contains(lower, pathways.Roadmap) {
			hits = append(hits, name)
			continue
		}
		for _, f := range fragments {
			if strings.Contains(lower, f) {
				hits = append(hits, name)
				break
			}
		}
	}
	if len(hits) == 0 {
		return append([]string{}, names...)
	}
	return hits
}
