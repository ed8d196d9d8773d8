package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"
)

// OutboxStatus is the delivery state of a translation job.
type OutboxStatus string

const (
	OutboxPending OutboxStatus = "pending"
	OutboxSent    OutboxStatus = "sent"
	OutboxFailed  OutboxStatus = "failed"
)

// TranslationJob asks the translation service to translate the text fields
// of one entity.
type TranslationJob struct {
	ID              int64             `json:"-"`
	EntityType      string            `json:"entityType"`
	EntityID        int64             `json:"entityId"`
	IdempotencyKey  string            `json:"idempotencyKey"`
	Fields          map[string]string `json:"fields"`
	TargetLanguages []string          `json:"targetLanguages"`
	Attempts        int               `json:"-"`
}

// EntityProduct is the translation entity type of products.
const EntityProduct = "product"

// NewProductTranslationJob extracts the translatable fields of p. Empty
// fields are skipped. The idempotency key changes whenever the extracted
// text changes, so edits are re-translated and retries are not.
func NewProductTranslationJob(p Product, languages []string) TranslationJob {
	fields := make(map[string]string, 3)
	for k, v := range map[string]string{
		"name":        p.Name,
		"description": p.Description,
		"category":    p.Category,
	} {
		if v = strings.TrimSpace(v); v != "" {
			fields[k] = v
		}
	}
	return TranslationJob{
		EntityType:      EntityProduct,
		EntityID:        p.ID,
		IdempotencyKey:  idempotencyKey(EntityProduct, p.ID, fields),
		Fields:          fields,
		TargetLanguages: languages,
	}
}

func idempotencyKey(entity string, id int64, fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	h := sha256.New()
	for _, k := range keys {
		fmt.Fprintf(h, "%s=%s\x00", k, fields[k])
	}
	return fmt.Sprintf("%s:%d:%s", entity, id, hex.EncodeToString(h.Sum(nil))[:16])
}

// OutboxBackoff returns the delay before retry number attempt (1-based):
// 30s doubled per attempt, capped at one hour.
func OutboxBackoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := 30 * time.Second
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= time.Hour {
			return time.Hour
		}
	}
	return d
}
