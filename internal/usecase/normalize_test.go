package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Obaol Exports", "obaol exports"},
		{"  obaol_exports  ", "obaol exports"},
		{"OBAOL   EXPORTS", "obaol exports"},
		{"obaol_exports", "obaol exports"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, NormalizeName(tt.in), "input %q", tt.in)
	}
}
