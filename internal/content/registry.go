// Package content holds the parsed content library and the loader that builds it.
package content

import (
	"strings"
	"time"

	"github.com/mandy1eigh007/resume-workshop-app/internal/normalize"
	"github.com/mandy1eigh007/resume-workshop-app/internal/parsing"
	"github.com/mandy1eigh007/resume-workshop-app/internal/rewriting"
	"github.com/mandy1eigh007/resume-workshop-app/internal/skills"
	"github.com/mandy1eigh007/resume-workshop-app/internal/types"
)

// LoadState distinguishes "not yet loaded" from "loaded but empty".
type LoadState int

const (
	StateNotLoaded LoadState = iota
	StateLoaded
	StateLoadedEmpty
)

func (s LoadState) String() string {
	switch s {
	case StateNotLoaded:
		return "not_loaded"
	case StateLoaded:
		return "loaded"
	case StateLoadedEmpty:
		return "loaded_empty"
	}
	return "unknown"
}

// Library is every parsed collection, before indexing.
type Library struct {
	Objectives     []types.TradeObjectives
	Roles          []types.RoleBullets
	Skills         types.SkillsCanon
	Badges         []types.CredentialBadge
	Templates      []types.ArtifactTemplate
	Certifications []types.CertificationEntry
	Keywords       *skills.KeywordTable
	Translations   []rewriting.TranslationRule
}

// IsEmpty reports whether the library carries no content at all.
func (l Library) IsEmpty() bool {
	return len(l.Objectives) == 0 && len(l.Roles) == 0 && len(l.Skills.All()) == 0 &&
		len(l.Badges) == 0 && len(l.Templates) == 0 && len(l.Certifications) == 0
}

// Stats counts each collection.
type Stats struct {
	Trades         int `json:"trades"`
	Objectives     int `json:"objectives"`
	Roles          int `json:"roles"`
	RoleBullets    int `json:"role_bullets"`
	Skills         int `json:"skills"`
	Badges         int `json:"badges"`
	Templates      int `json:"templates"`
	Certifications int `json:"certifications"`
	Keywords       int `json:"keywords"`
	Translations   int `json:"translations"`
}

// Registry is the read-only content model. It is immutable after construction;
// every query returns copies.
type Registry struct {
	lib      Library
	state    LoadState
	loadErr  string
	warnings []parsing.Warning
	source   string
	loadedAt time.Time

	objectives map[string]int
	roles      map[string]int
	badges     map[string][]types.CredentialBadge
	templates  map[string]int

	certs      *normalize.CertNormalizer
	labels     *normalize.SkillLabeler
	engine     *skills.Engine
	translator *rewriting.Translator
}

// NewRegistry indexes lib. The state is Loaded, or LoadedEmpty when lib has no content.
func NewRegistry(lib Library) *Registry {
	r := &Registry{
		lib:        lib,
		state:      StateLoaded,
		loadedAt:   time.Now(),
		objectives: make(map[string]int),
		roles:      make(map[string]int),
		badges:     make(map[string][]types.CredentialBadge),
		templates:  make(map[string]int),
	}
	if lib.IsEmpty() {
		r.state = StateLoadedEmpty
	}

	for i, o := range lib.Objectives {
		if _, ok := r.objectives[key(o.Trade)]; !ok {
			r.objectives[key(o.Trade)] = i
		}
	}
	for i, rb := range lib.Roles {
		if _, ok := r.roles[key(rb.Role)]; !ok {
			r.roles[key(rb.Role)] = i
		}
	}
	for _, b := range lib.Badges {
		r.badges[key(b.Trade)] = append(r.badges[key(b.Trade)], b)
	}
	for i, t := range lib.Templates {
		if _, ok := r.templates[key(t.Name)]; !ok {
			r.templates[key(t.Name)] = i
		}
	}

	r.certs = normalize.NewCertNormalizer(lib.Certifications)
	r.engine = skills.NewEngine(lib.Keywords)
	var synonyms map[string]string
	if lib.Keywords != nil {
		synonyms = lib.Keywords.SkillSynonyms
	}
	r.labels = normalize.NewSkillLabeler(append(lib.Skills.All(), lib.Keywords.Labels()...), synonyms)
	r.translator = rewriting.NewTranslator(lib.Translations)
	return r
}

// NotLoaded returns the registry served before any load completes.
func NotLoaded() *Registry {
	r := NewRegistry(Library{})
	r.state = StateNotLoaded
	r.loadedAt = time.Time{}
	return r
}

// emptyRegistry is the all-empty model used when a source file is unreadable.
func emptyRegistry(source string, err error) *Registry {
	r := NewRegistry(Library{})
	r.state = StateLoadedEmpty
	r.source = source
	if err != nil {
		r.loadErr = err.Error()
	}
	return r
}

func key(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsLoaded reports whether a load has completed, successfully or not.
func (r *Registry) IsLoaded() bool {
	return r.state != StateNotLoaded
}

// State returns the load state.
func (r *Registry) State() LoadState {
	return r.state
}

// LoadError returns the message of the failed load, or "".
func (r *Registry) LoadError() string {
	return r.loadErr
}

// Warnings returns the non-fatal problems found while parsing.
func (r *Registry) Warnings() []parsing.Warning {
	return append([]parsing.Warning(nil), r.warnings...)
}

// Source describes where the content came from.
func (r *Registry) Source() string {
	return r.source
}

// LoadedAt is when the registry was built; zero when not loaded.
func (r *Registry) LoadedAt() time.Time {
	return r.loadedAt
}

// ObjectivesForTrade looks a trade up case-insensitively.
func (r *Registry) ObjectivesForTrade(trade string) (types.TradeObjectives, bool) {
	i, ok := r.objectives[key(trade)]
	if !ok {
		return types.TradeObjectives{}, false
	}
	o := r.lib.Objectives[i]
	return types.TradeObjectives{
		Trade:          o.Trade,
		Apprenticeship: copyStrings(o.Apprenticeship),
		Job:            copyStrings(o.Job),
	}, true
}

// BulletsForRole looks a role up case-insensitively.
func (r *Registry) BulletsForRole(role string) (types.RoleBullets, bool) {
	i, ok := r.roles[key(role)]
	if !ok {
		return types.RoleBullets{}, false
	}
	rb := r.lib.Roles[i]
	return types.RoleBullets{Role: rb.Role, Bullets: copyStrings(rb.Bullets)}, true
}

// Trades lists trade names in library order.
func (r *Registry) Trades() []string {
	out := make([]string, 0, len(r.lib.Objectives))
	for _, o := range r.lib.Objectives {
		out = append(out, o.Trade)
	}
	return out
}

// Roles lists role names in library order.
func (r *Registry) Roles() []string {
	out := make([]string, 0, len(r.lib.Roles))
	for _, rb := range r.lib.Roles {
		out = append(out, rb.Role)
	}
	return out
}

// SkillsByBucket returns one bucket of the skills canon.
func (r *Registry) SkillsByBucket(bucket types.SkillBucket) []string {
	return copyStrings(r.lib.Skills.Bucket(bucket))
}

// AllSkills returns every canon skill once, in first-seen order.
func (r *Registry) AllSkills() []string {
	return copyStrings(r.lib.Skills.All())
}

// Certifications returns the normalization table.
func (r *Registry) Certifications() []types.CertificationEntry {
	out := make([]types.CertificationEntry, len(r.lib.Certifications))
	for i, c := range r.lib.Certifications {
		c.Variants = copyStrings(c.Variants)
		out[i] = c
	}
	return out
}

// BadgesForTrade returns a trade's badges in library order.
func (r *Registry) BadgesForTrade(trade string) []types.CredentialBadge {
	return append([]types.CredentialBadge{}, r.badges[key(trade)]...)
}

// ArtifactTemplates returns every template.
func (r *Registry) ArtifactTemplates() []types.ArtifactTemplate {
	out := make([]types.ArtifactTemplate, len(r.lib.Templates))
	for i, t := range r.lib.Templates {
		t.Fields = copyStrings(t.Fields)
		out[i] = t
	}
	return out
}

// TemplateByName matches the name case-insensitively and exactly.
func (r *Registry) TemplateByName(name string) (types.ArtifactTemplate, bool) {
	i, ok := r.templates[key(name)]
	if !ok {
		return types.ArtifactTemplate{}, false
	}
	t := r.lib.Templates[i]
	t.Fields = copyStrings(t.Fields)
	return t, true
}

// CertNormalizer returns the normalizer built from the certification table.
func (r *Registry) CertNormalizer() *normalize.CertNormalizer {
	return r.certs
}

// SkillLabeler spells canon, keyword, and trade-family labels the way the
// library does and title-cases anything else.
func (r *Registry) SkillLabeler() *normalize.SkillLabeler {
	return r.labels
}

// Pathways returns the pathway file selection table.
func (r *Registry) Pathways() skills.PathwayFiles {
	if r.lib.Keywords == nil {
		return skills.PathwayFiles{}
	}
	return r.lib.Keywords.Pathways
}

// Engine returns the inference engine built from the keyword table.
func (r *Registry) Engine() *skills.Engine {
	return r.engine
}

// Translator returns the prior-industry translator.
func (r *Registry) Translator() *rewriting.Translator {
	return r.translator
}

// Stats counts the loaded content.
func (r *Registry) Stats() Stats {
	s := Stats{
		Trades:         len(r.lib.Objectives),
		Roles:          len(r.lib.Roles),
		Skills:         len(r.lib.Skills.All()),
		Badges:         len(r.lib.Badges),
		Templates:      len(r.lib.Templates),
		Certifications: len(r.lib.Certifications),
		Translations:   len(r.lib.Translations),
	}
	for _, o := range r.lib.Objectives {
		s.Objectives += len(o.All())
	}
	for _, rb := range r.lib.Roles {
		s.RoleBullets += len(rb.Bullets)
	}
	if r.lib.Keywords != nil {
		s.Keywords = len(r.lib.Keywords.Keywords)
	}
	return s
}

func copyStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return append([]string(nil), in...)
}
