package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "Bridal Mehndi Ideas", "bridal-mehndi-ideas"},
		{"punctuation runs", "Top 10 Tips -- for   Dark Stains!!", "top-10-tips-for-dark-stains"},
		{"leading and trailing", "  ...Hello World...  ", "hello-world"},
		{"accents", "Café Henné", "cafe-henne"},
		{"dots become hyphens", "v1.2 release", "v1-2-release"},
		{"only symbols", "!@#$%", ""},
		{"already a slug", "arabic-designs-2026", "arabic-designs-2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.input))
		})
	}
}

func TestMakeIsIdempotent(t *testing.T) {
	for _, title := range []string{"Mehndi & Sangeet: 2026 Guide", "Why Henna Fades?", "A--B__C"} {
		once := Make(title)
		assert.Equal(t, once, Make(once), title)
		assert.Equal(t, once, Make(title), "derivation must be deterministic")
		if once != "" {
			assert.True(t, IsValid(once), once)
		}
	}
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "About Us", Title("about-us"))
	assert.Equal(t, "Home", Title("home"))
	assert.Equal(t, "", Title(""))
}
