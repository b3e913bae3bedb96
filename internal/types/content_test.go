package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTradeObjectives_All(t *testing.T) {
	o := TradeObjectives{
		Trade:          "Electrician – Inside (01)",
		Apprenticeship: []string{"a1", "a2"},
		Job:            []string{"j1"},
	}
	assert.Equal(t, []string{"a1", "a2", "j1"}, o.All())
	assert.Equal(t, []string{"j1"}, o.ForApplication(ApplicationJob))
	assert.Equal(t, []string{"a1", "a2"}, o.ForApplication(ApplicationApprenticeship))
	assert.Empty(t, TradeObjectives{Trade: "Glazier"}.All())
}

func TestSkillsCanon_AllDedupsAcrossBuckets(t *testing.T) {
	c := SkillsCanon{
		Transferable:   []string{"Documentation & Recordkeeping", "Teamwork & collaboration"},
		JobSpecific:    []string{"Hand & power tools", "teamwork & collaboration"},
		SelfManagement: []string{"Punctuality"},
	}
	all := c.All()
	assert.Equal(t, []string{"Documentation & Recordkeeping", "Teamwork & collaboration", "Hand & power tools", "Punctuality"}, all)
	assert.Equal(t, c.JobSpecific, c.Bucket(BucketJobSpecific))
	assert.Nil(t, c.Bucket("hobbies"))
}

func TestDedupeFold(t *testing.T) {
	assert.Equal(t, []string{"A", "b"}, DedupeFold([]string{" A ", "a", ""}, []string{"b", "B"}))
	assert.Nil(t, DedupeFold())
}
