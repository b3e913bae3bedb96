package rewriting

import (
	"github.com/mandy1eigh007/resume-workshop-app/internal/types"
)

// CheckBannedTermsInDraft scans the objective and every bullet and duty of a draft.
// Returns a map of field path to the banned terms found there.
func CheckBannedTermsInDraft(draft *types.ResumeDraft, filter *NeutralFilter) map[string][]string {
	if draft == nil || filter == nil {
		return nil
	}

	result := make(map[string][]string)
	add := func(field, text string) {
		if found := filter.FindBannedTerms(text); len(found) > 0 {
			result[field] = found
		}
	}

	add(types.FieldObjective, draft.Objective)
	for i, job := range draft.Jobs {
		for j, b := range job.Bullets {
			add(types.BulletField(i, j), b.Text())
		}
		for j, d := range job.Duties {
			add(types.DutyField(i, j), d)
		}
	}
	return result
}
