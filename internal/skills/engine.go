package skills

import (
	"sort"
	"strings"

	"github.com/mandy1eigh007/resume-workshop-app/internal/normalize"
	"github.com/mandy1eigh007/resume-workshop-app/internal/types"
)

// MaxSuggestedBullets caps SuggestBulletsFromText.
const MaxSuggestedBullets = 4

// Engine applies a keyword table. Matching is lowercase substring containment,
// so "pipe" also fires inside "pipeline".
type Engine struct {
	table    *KeywordTable
	keywords []string
	profiles map[string]TradeProfile
}

// NewEngine builds an engine over table. A nil table yields an engine that
// infers nothing.
func NewEngine(table *KeywordTable) *Engine {
	if table == nil {
		table = &KeywordTable{}
	}
	e := &Engine{table: table, profiles: make(map[string]TradeProfile)}
	for kw := range table.Keywords {
		e.keywords = append(e.keywords, kw)
	}
	sort.Strings(e.keywords)
	for _, p := range table.TradeProfiles {
		key := strings.ToLower(strings.TrimSpace(p.Trade))
		if _, exists := e.profiles[key]; !exists {
			e.profiles[key] = p
		}
	}
	return e
}

// Table returns the keyword table the engine was built from.
func (e *Engine) Table() *KeywordTable {
	return e.table
}

// InferFromBullets returns the sorted, deduplicated skills implied by bullets.
func (e *Engine) InferFromBullets(bullets []string) []string {
	return e.SuggestFromText(strings.Join(bullets, "\n"))
}

// SuggestFromText returns the sorted, deduplicated skills implied by free text.
func (e *Engine) SuggestFromText(text string) []string {
	low := strings.ToLower(text)
	if strings.TrimSpace(low) == "" {
		return nil
	}

	found := make(map[string]bool)
	for _, kw := range e.keywords {
		if !strings.Contains(low, kw) {
			continue
		}
		for _, label := range e.table.Keywords[kw] {
			if label = strings.TrimSpace(label); label != "" {
				found[label] = true
			}
		}
	}

	if len(found) == 0 {
		return nil
	}
	out := make([]string, 0, len(found))
	for label := range found {
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}

// CanonSkillsForTrade returns the canon skills of the first trade family whose
// match substring occurs in the uppercased trade, or the general list.
func (e *Engine) CanonSkillsForTrade(trade string) []string {
	upper := strings.ToUpper(trade)
	if strings.TrimSpace(upper) != "" {
		for _, f := range e.table.TradeFamilies {
			for _, m := range f.Match {
				m = strings.ToUpper(strings.TrimSpace(m))
				if m != "" && strings.Contains(upper, m) {
					return append([]string(nil), f.Skills...)
				}
			}
		}
	}
	return append([]string(nil), e.table.General...)
}

// FamilyForTrade names the trade family CanonSkillsForTrade would use, or
// GeneralProfile.
func (e *Engine) FamilyForTrade(trade string) string {
	upper := strings.ToUpper(trade)
	for _, f := range e.table.TradeFamilies {
		for _, m := range f.Match {
			m = strings.ToUpper(strings.TrimSpace(m))
			if m != "" && strings.Contains(upper, m) {
				return f.Name
			}
		}
	}
	return GeneralProfile
}

// SuggestBulletsFromText suggests entry-level bullets from a job description
// using the trade's profile, or the general profile. When text is present but
// no keyword fires, the fallback bullets are offered. At most
// MaxSuggestedBullets are returned.
func (e *Engine) SuggestBulletsFromText(text, trade string) []string {
	low := strings.ToLower(text)
	if strings.TrimSpace(low) == "" {
		return nil
	}

	profile, ok := e.profiles[strings.ToLower(strings.TrimSpace(trade))]
	if !ok {
		profile = e.profiles[strings.ToLower(GeneralProfile)]
	}

	var picks []string
	for _, stub := range profile.Stubs {
		if stub.Keyword != "" && strings.Contains(low, stub.Keyword) {
			picks = append(picks, stub.Bullet)
		}
	}
	if len(picks) == 0 {
		picks = e.table.FallbackBullets
	}

	out := make([]string, 0, MaxSuggestedBullets)
	for _, b := range types.DedupeFold(picks) {
		if len(out) == MaxSuggestedBullets {
			break
		}
		out = append(out, normalize.CleanBullet(b))
	}
	return out
}

// DiscoverTrades returns the trades named in text, sorted and unique. When
// trades is empty the table's master list is used.
func (e *Engine) DiscoverTrades(text string, trades []string) []string {
	if len(trades) == 0 {
		trades = e.table.Trades
	}
	low := strings.ToLower(text)

	seen := make(map[string]bool)
	var out []string
	for _, t := range trades {
		name := strings.TrimSpace(t)
		if name == "" || seen[name] {
			continue
		}
		if strings.Contains(low, strings.ToLower(name)) {
			seen[name] = true
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Populate fills the provenance collections of set: skills suggested by the
// job-description text and skills inferred from the student's bullets.
func (e *Engine) Populate(set *types.SkillSet, jobText string, bullets []string) {
	set.AddSuggested(e.SuggestFromText(jobText)...)
	set.AddInferred(e.InferFromBullets(bullets)...)
}
