//go:build unit

package patch_test

import (
	"testing"

	"storefront-partners/internal/pkg/patch"
	"storefront-partners/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "Resona", patch.Coalesce(ptr.To("Resona"), "Mizuho"))
	assert.Equal(t, "Mizuho", patch.Coalesce(nil, "Mizuho"))
	assert.False(t, patch.Coalesce(ptr.To(false), true))
}

func TestAnySet(t *testing.T) {
	assert.False(t, patch.AnySet[string]())
	assert.False(t, patch.AnySet[string](nil, nil))
	assert.True(t, patch.AnySet(nil, ptr.To("1234567"), nil))
}
