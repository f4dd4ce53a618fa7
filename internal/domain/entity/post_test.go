package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostType_CreationPoints(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 20, PostTypeVerse.CreationPoints())
	assert.Equal(t, 15, PostTypePrayer.CreationPoints())
	assert.Equal(t, 10, PostTypeTestimony.CreationPoints())
	assert.Equal(t, 10, PostTypeGeneral.CreationPoints())
}

func TestPostType_IsValid(t *testing.T) {
	t.Parallel()

	for _, valid := range []PostType{PostTypeVerse, PostTypePrayer, PostTypeTestimony, PostTypeGeneral} {
		assert.True(t, valid.IsValid(), valid)
	}
	assert.False(t, PostType("sermon").IsValid())
	assert.False(t, PostType("").IsValid())
}

func TestRole_IsValid(t *testing.T) {
	t.Parallel()

	for _, valid := range []Role{RoleShopper, RoleBusiness, RoleDeliveryDriver} {
		assert.True(t, valid.IsValid(), valid)
	}
	assert.False(t, Role("admin").IsValid())
}
