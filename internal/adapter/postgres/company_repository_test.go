package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikeEscaper(t *testing.T) {
	cases := map[string]string{
		"acme":       "acme",
		"50%":        `50\%`,
		"legacy_co":  `legacy\_co`,
		`back\slash`: `back\\slash`,
		"":           "",
	}
	for in, want := range cases {
		assert.Equal(t, want, likeEscaper.Replace(in), in)
	}
}
