package entityid_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storehub-server/utils/entityid"
)

func TestNewCarriesPrefix(t *testing.T) {
	id := entityid.New("blob")
	assert.True(t, strings.HasPrefix(id, "blob_"))
	assert.True(t, entityid.IsValid("blob", id))
}

func TestNewIsUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := entityid.New("prod")
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"wrong prefix", entityid.New("prod"), false},
		{"no prefix", "01h455vb4pex5vsknk084sn02q", false},
		{"garbage payload", "blob_not-a-ulid", false},
		{"valid", entityid.New("blob"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, entityid.IsValid("blob", tt.value))
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	id := entityid.New("blob")
	parsed, err := entityid.Parse("blob", id)
	require.NoError(t, err)
	assert.Equal(t, strings.TrimPrefix(id, "blob_"), strings.ToLower(parsed.String()))
}
