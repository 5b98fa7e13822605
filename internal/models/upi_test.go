package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeUPI(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"bare name", "Alice", "alice@bvdu", false},
		{"already normalized", "alice@bvdu", "alice@bvdu", false},
		{"upper-case domain", "Bob42@BVDU", "bob42@bvdu", false},
		{"trailing newline", "carol\n", "carol@bvdu", false},
		{"leading space", " alice", "alice@bvdu", false},
		{"surrounding tabs", "\tdave@bvdu\t", "dave@bvdu", false},
		{"blank", "   ", "", true},
		{"other domain", "alice@gmail", "", true},
		{"two at signs", "a@b@bvdu", "", true},
		{"empty local part", "@bvdu", "", true},
		{"punctuation", "al.ice", "", true},
		{"space", "al ice", "", true},
		{"non-ascii", "émile", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeUPI(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidUPI)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveUPI(t *testing.T) {
	upi, err := ResolveUPI("", "Ravi", 1005)
	require.NoError(t, err)
	assert.Equal(t, "ravi@bvdu", upi)

	upi, err = ResolveUPI("", "Ravi Kumar", 1005)
	require.NoError(t, err)
	assert.Equal(t, "1005@bvdu", upi)

	upi, err = ResolveUPI("rk@bvdu", "Ravi Kumar", 1005)
	require.NoError(t, err)
	assert.Equal(t, "rk@bvdu", upi)

	_, err = ResolveUPI("rk@upi", "Ravi", 1005)
	assert.ErrorIs(t, err, ErrInvalidUPI)

	upi, err = ResolveUPI("  ", "Ravi", 1005)
	require.NoError(t, err)
	assert.Equal(t, "ravi@bvdu", upi)
}
