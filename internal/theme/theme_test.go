package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTheme(t *testing.T) {
	tests := map[string]Theme{
		"":             "",
		"Light Mode":   Light,
		" darkmode ":   Dark,
		"System Theme": System,
		"DARK":         Dark,
		"neon":         "neon",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeTheme(in), "input %q", in)
	}
}

func TestNormalizeFont(t *testing.T) {
	tests := map[string]Font{
		"":           "",
		"Inter":      Sans,
		"sans-serif": Sans,
		"SansSerif":  Sans,
		"Serif":      Serif,
		"monospace":  Mono,
		"mono":       Mono,
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeFont(in), "input %q", in)
	}
}

func TestResolveSystemFollowsTerminal(t *testing.T) {
	orig := DarkBackground
	t.Cleanup(func() { DarkBackground = orig })

	DarkBackground = func() bool { return false }
	assert.Equal(t, Light, Resolve(System))

	DarkBackground = func() bool { return true }
	assert.Equal(t, Dark, Resolve(System))
}

func TestResolveFallsBackToDark(t *testing.T) {
	assert.Equal(t, Dark, Resolve(""))
	assert.Equal(t, Dark, Resolve("neon"))
	assert.Equal(t, Light, Resolve("Light Mode"))
}

func TestResolveFont(t *testing.T) {
	assert.Equal(t, Sans, ResolveFont(""))
	assert.Equal(t, Sans, ResolveFont("comic"))
	assert.Equal(t, Mono, ResolveFont("monospace"))
}

func TestWithDefaults(t *testing.T) {
	assert.Equal(t, Defaults(), Preferences{}.WithDefaults())
	assert.Equal(t, Preferences{Theme: Light, Font: Sans}, Preferences{Theme: Light}.WithDefaults())
}
