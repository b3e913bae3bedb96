// Package types provides type definitions for structured data used throughout the resume workshop.
//
//nolint:revive // types is a standard Go package name pattern
package types

// TradeObjectives holds the objective starters for one trade.
// A trade present with empty lists is distinct from an absent trade.
type TradeObjectives struct {
	Trade          string   `json:"trade"`
	Apprenticeship []string `json:"apprenticeship"`
	Job            []string `json:"job"`
}

// All returns apprenticeship objectives followed by job objectives.
func (t TradeObjectives) All() []string {
	all := make([]string, 0, len(t.Apprenticeship)+len(t.Job))
	all = append(all, t.Apprenticeship...)
	return append(all, t.Job...)
}

// ForApplication returns the objective list for an application type.
func (t TradeObjectives) ForApplication(appType ApplicationType) []string {
	if appType == ApplicationJob {
		return t.Job
	}
	return t.Apprenticeship
}

// RoleBullets holds the duty bullets for a past-job role category.
type RoleBullets struct {
	Role    string   `json:"role"`
	Bullets []string `json:"bullets"`
}

// SkillBucket names one of the three skills canon buckets.
type SkillBucket string

const (
	BucketTransferable   SkillBucket = "transferable"
	BucketJobSpecific    SkillBucket = "job_specific"
	BucketSelfManagement SkillBucket = "self_management"
)

// SkillBuckets lists the buckets in canonical order.
var SkillBuckets = []SkillBucket{BucketTransferable, BucketJobSpecific, BucketSelfManagement}

// SkillsCanon is the three-bucket canonical skills list.
type SkillsCanon struct {
	Transferable   []string `json:"transferable"`
	JobSpecific    []string `json:"job_specific"`
	SelfManagement []string `json:"self_management"`
}

// Bucket returns the labels of a bucket, or nil for an unknown bucket.
func (c SkillsCanon) Bucket(b SkillBucket) []string {
	switch b {
	case BucketTransferable:
		return c.Transferable
	case BucketJobSpecific:
		return c.JobSpecific
	case BucketSelfManagement:
		return c.SelfManagement
	}
	return nil
}

// All returns every label across buckets, deduplicated in first-seen order.
func (c SkillsCanon) All() []string {
	return DedupeFold(c.Transferable, c.JobSpecific, c.SelfManagement)
}

// CredentialBadge is a credential a student can earn for a trade.
type CredentialBadge struct {
	Trade        string `json:"trade"`
	Name         string `json:"name"`
	ResumePhrase string `json:"resume_phrase"`
	Proof        string `json:"proof"`
}

// CertificationEntry maps a family of variant spellings to one canonical resume phrase.
type CertificationEntry struct {
	Variants  []string `json:"variants"`
	Canonical string   `json:"canonical"`
	Note      string   `json:"note,omitempty"`
}

// ArtifactTemplate is a named evidence-collection form.
type ArtifactTemplate struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Fields      []string `json:"fields"`
}
