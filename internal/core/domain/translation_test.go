package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewProductTranslationJob(t *testing.T) {
	p := Product{ID: 7, Name: " HubSpot CRM ", Description: "", Category: "CRM"}
	job := NewProductTranslationJob(p, []string{"de", "fr"})

	assert.Equal(t, EntityProduct, job.EntityType)
	assert.Equal(t, int64(7), job.EntityID)
	assert.Equal(t, map[string]string{"name": "HubSpot CRM", "category": "CRM"}, job.Fields)
	assert.Equal(t, []string{"de", "fr"}, job.TargetLanguages)
	assert.True(t, strings.HasPrefix(job.IdempotencyKey, "product:7:"))

	again := NewProductTranslationJob(p, []string{"es"})
	assert.Equal(t, job.IdempotencyKey, again.IdempotencyKey, "key depends on the text only")

	p.Description = "Free CRM"
	edited := NewProductTranslationJob(p, []string{"de", "fr"})
	assert.NotEqual(t, job.IdempotencyKey, edited.IdempotencyKey)
}

func TestOutboxBackoff(t *testing.T) {
	cases := map[int]time.Duration{
		0:  30 * time.Second,
		1:  30 * time.Second,
		2:  time.Minute,
		3:  2 * time.Minute,
		7:  32 * time.Minute,
		8:  time.Hour,
		40: time.Hour,
	}
	for attempt, want := range cases {
		assert.Equal(t, want, OutboxBackoff(attempt), "attempt %d", attempt)
	}
}
