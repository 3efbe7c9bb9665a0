package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToUsername(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Anna Schmidt", "annaschmidt"},
		{"umlauts", "Jürgen Öztürk", "juergenoeztuerk"},
		{"capital umlaut", "Ärger Müller", "aergermueller"},
		{"eszett", "Weiß", "weiss"},
		{"digits kept", "Kellner 2", "kellner2"},
		{"punctuation dropped", "Jean-Luc O'Neil", "jeanluconeil"},
		{"tabs and newlines", "a\tb\nc", "abc"},
		{"accents dropped", "José", "jos"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToUsername(tt.in))
		})
	}
}

func TestToUsername_ResultMatchesUsernamePattern(t *testing.T) {
	for _, in := range []string{"Anna Schmidt", "Jürgen", "Weiß 42"} {
		assert.Regexp(t, usernamePattern, ToUsername(in))
	}
}
