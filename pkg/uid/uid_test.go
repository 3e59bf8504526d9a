package uid

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var idPattern = regexp.MustCompile(`^[0-9A-Z]{8}$`)

func TestGenerator_New_Format(t *testing.T) {
	g := NewGenerator()

	for i := 0; i < 100; i++ {
		id := g.New()
		assert.Regexp(t, idPattern, id)
	}
}

func TestGenerator_New_NoReuse(t *testing.T) {
	g := NewGenerator()
	seen := make(map[string]struct{})

	for i := 0; i < 5000; i++ {
		id := g.New()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
