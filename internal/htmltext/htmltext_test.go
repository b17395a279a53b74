package htmltext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/irkoudo/yehoshua-focus/internal/htmltext"
)

func TestFlattenStripsMarkup(t *testing.T) {
	got := htmltext.Flatten(`<html><head><style>p{color:red}</style></head><body><p>Finir le module auth</p><div>avant 18h</div></body></html>`)

	assert.Contains(t, got, "Finir le module auth")
	assert.Contains(t, got, "avant 18h")
	assert.NotContains(t, got, "color:red")
}

func TestFlattenKeepsBlockBoundaries(t *testing.T) {
	got := htmltext.Flatten(`<p>Oui</p><blockquote>tu avais dit quoi ?</blockquote>`)

	// The blockquote must not merge into the reply line.
	assert.Contains(t, got, "Oui\n")
}

func TestFlattenEmpty(t *testing.T) {
	assert.Equal(t, "", htmltext.Flatten(""))
	assert.Equal(t, "", htmltext.Flatten("   "))
}
