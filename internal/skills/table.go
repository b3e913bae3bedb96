// Package skills infers skill labels and bullet suggestions from free text using
// a keyword table that ships as configuration data.
package skills

import (
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// KeywordTable is the configuration behind every inference rule.
type KeywordTable struct {
	// Keywords maps a lowercase substring to the skill labels it implies.
	Keywords map[string][]string `yaml:"keywords"`
	// TradeFamilies are checked in order; the first family with a matching
	// substring supplies the canon skills for a trade.
	TradeFamilies []TradeFamily `yaml:"trade_families"`
	// General is the canon used when no family matches.
	General []string `yaml:"general"`
	// TradeProfiles hold keyword-triggered bullet stubs per trade.
	TradeProfiles []TradeProfile `yaml:"trade_profiles"`
	// FallbackBullets are suggested when text is present but nothing matched.
	FallbackBullets []string `yaml:"fallback_bullets"`
	// Trades is the master trade list used for discovery.
	Trades []string `yaml:"trades"`
	// SkillSynonyms maps a lowercase spelling to the library label it stands for.
	SkillSynonyms map[string]string `yaml:"skill_synonyms"`
	// Pathways selects pathway documents for a trade by file name.
	Pathways PathwayFiles `yaml:"pathway_files"`
}

// PathwayFiles maps trades to the file-name fragments of their pathway documents.
type PathwayFiles struct {
	// Roadmap marks the general roadmap document, kept for every trade.
	Roadmap string `yaml:"roadmap"`
	// Trades maps a lowercase trade name to file-name fragments.
	Trades map[string][]string `yaml:"trades"`
}

// Fragments returns the file-name fragments for trade, matched case-insensitively.
func (p PathwayFiles) Fragments(trade string) ([]string, bool) {
	f, ok := p.Trades[strings.ToLower(strings.TrimSpace(trade))]
	return f, ok
}

// TradeNames lists the trades with pathway fragments, sorted.
func (p PathwayFiles) TradeNames() []string {
	out := make([]string, 0, len(p.Trades))
	for t := range p.Trades {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// TradeFamily groups trades that share canon skills.
type TradeFamily struct {
	Name   string   `yaml:"name"`
	Match  []string `yaml:"match"`
	Skills []string `yaml:"skills"`
}

// TradeProfile lists the bullet stubs for one trade in priority order.
type TradeProfile struct {
	Trade string        `yaml:"trade"`
	Stubs []KeywordStub `yaml:"stubs"`
}

// KeywordStub suggests Bullet when Keyword appears in a job description.
type KeywordStub struct {
	Keyword string `yaml:"keyword"`
	Bullet  string `yaml:"bullet"`
}

// GeneralProfile names the profile used for trades without their own.
const GeneralProfile = "General"

// ParseKeywordTable decodes a YAML keyword table and validates it.
func ParseKeywordTable(data []byte) (*KeywordTable, error) {
	var table KeywordTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, &TableError{Message: "failed to decode keyword table", Cause: err}
	}
	table.normalize()
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &table, nil
}

// LoadKeywordTable reads and parses a keyword table file.
func LoadKeywordTable(path string) (*KeywordTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &TableError{Message: "failed to read keyword table " + path, Cause: err}
	}
	return ParseKeywordTable(data)
}

// Validate checks that every rule can fire and every family has a match.
func (t *KeywordTable) Validate() error {
	for kw, labels := range t.Keywords {
		if strings.TrimSpace(kw) == "" {
			return &TableError{Message: "keyword table has an empty keyword"}
		}
		if len(labels) == 0 {
			return &TableError{Message: "keyword " + kw + " maps to no skills"}
		}
	}
	for _, f := range t.TradeFamilies {
		if len(f.Match) == 0 {
			return &TableError{Message: "trade family " + f.Name + " has no match substrings"}
		}
	}
	for _, p := range t.TradeProfiles {
		if strings.TrimSpace(p.Trade) == "" {
			return &TableError{Message: "trade profile without a trade name"}
		}
	}
	return nil
}

// Labels returns every skill label the table can produce, in table order:
// family skills, the general list, then keyword labels sorted by keyword.
func (t *KeywordTable) Labels() []string {
	if t == nil {
		return nil
	}
	var out []string
	for _, f := range t.TradeFamilies {
		out = append(out, f.Skills...)
	}
	out = append(out, t.General...)
	kws := make([]string, 0, len(t.Keywords))
	for kw := range t.Keywords {
		kws = append(kws, kw)
	}
	sort.Strings(kws)
	for _, kw := range kws {
		out = append(out, t.Keywords[kw]...)
	}
	return out
}

func (t *KeywordTable) normalize() {
	keywords := make(map[string][]string, len(t.Keywords))
	for kw, labels := range t.Keywords {
		key := strings.ToLower(strings.TrimSpace(kw))
		keywords[key] = append(keywords[key], labels...)
	}
	t.Keywords = keywords

	synonyms := make(map[string]string, len(t.SkillSynonyms))
	for from, to := range t.SkillSynonyms {
		synonyms[strings.ToLower(strings.TrimSpace(from))] = strings.TrimSpace(to)
	}
	t.SkillSynonyms = synonyms

	t.Pathways.Roadmap = strings.ToLower(strings.TrimSpace(t.Pathways.Roadmap))
	pathways := make(map[string][]string, len(t.Pathways.Trades))
	for trade, fragments := range t.Pathways.Trades {
		key := strings.ToLower(strings.TrimSpace(trade))
		for _, f := range fragments {
			if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
				pathways[key] = append(pathways[key], f)
			}
		}
	}
	t.Pathways.Trades = pathways
	for i := range t.TradeProfiles {
		for j := range t.TradeProfiles[i].Stubs {
			stub := &t.TradeProfiles[i].Stubs[j]
			stub.Keyword = strings.ToLower(strings.TrimSpace(stub.Keyword))
		}
	}
}
