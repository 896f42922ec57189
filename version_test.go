package docsmcp_test

import (
	"testing"

	"github.com/fwojciec/docsmcp"
	"github.com/stretchr/testify/assert"
)

func TestMatchVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		available []string
		target    string
		want      string
		found     bool
	}{
		{"latest is numeric aware", []string{"1.0", "2.0", "10.0"}, "", "10.0", true},
		{"latest with unversioned", []string{"unversioned", "1.2"}, "", "1.2", true},
		{"latest compares later digit runs", []string{"1.9.0", "1.10.0", "1.2.0"}, "", "1.10.0", true},
		{"latest breaks ties by string", []string{"v1.0", "1.0"}, "", "v1.0", true},
		{"latest with very long digit runs", []string{"99999999999999999999", "100000000000000000000"}, "", "100000000000000000000", true},
		{"wildcard picks greatest match", []string{"5.0", "5.1", "5.2"}, "5.x", "5.2", true},
		{"wildcard is case insensitive", []string{"V5.0", "v5.3", "v4.9"}, "v5.X", "v5.3", true},
		{"wildcard without match", []string{"4.0", "4.1"}, "5.x", "", false},
		{"wildcard prefix is lexicographic", []string{"5.9", "5.10"}, "5.x", "5.9", true},
		{"exact match", []string{"1.0", "1.0.1"}, "1.0", "1.0", true},
		{"prefix match", []string{"2.1.0", "2.1.3", "2.2.0"}, "2.1", "2.1.3", true},
		{"prefix match is lexicographic", []string{"3.9.0", "3.10.0"}, "3.", "3.9.0", true},
		{"no match", []string{"3.0"}, "9.0", "", false},
		{"target is trimmed", []string{"1.0"}, " 1.0 ", "1.0", true},
		{"empty set", nil, "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := docsmcp.MatchVersion(tc.available, tc.target)

			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestVersionOrDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, docsmcp.Unversioned, docsmcp.VersionOrDefault(""))
	assert.Equal(t, docsmcp.Unversioned, docsmcp.VersionOrDefault("   "))
	assert.Equal(t, "1.2", docsmcp.VersionOrDefault(" 1.2 "))
}
