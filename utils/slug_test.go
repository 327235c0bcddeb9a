package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Pizzaria do João":      "pizzaria-do-joao",
		"Hambúrgueria do Zé!":   "hamburgueria-do-ze",
		"  Café & Cia  ":        "cafe-cia",
		"AÇAÍ PREMIUM":          "acai-premium",
		"sushi---bar":           "sushi-bar",
		"123 Burgers":           "123-burgers",
		"Cantina da Nona!!!":    "cantina-da-nona",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "input %q", in)
	}
}

func TestSlugifyCapsLength(t *testing.T) {
	long := strings.Repeat("churrascaria ", 10)
	got := Slugify(long)
	assert.LessOrEqual(t, len(got), 50)
	assert.False(t, strings.HasSuffix(got, "-"))
	assert.False(t, strings.HasPrefix(got, "-"))
}
