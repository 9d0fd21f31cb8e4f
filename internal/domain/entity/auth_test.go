package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserMetadata_Merge(t *testing.T) {
	first := "Ada"
	base := UserMetadata{FirstName: "Old", LastName: "Name"}

	merged := base.Merge(MetadataPatch{Role: RoleShopkeeper.Ptr(), FirstName: &first})

	require.NotNil(t, merged.Role)
	assert.Equal(t, RoleShopkeeper, *merged.Role)
	assert.Equal(t, "Ada", merged.FirstName)
	assert.Equal(t, "Name", merged.LastName)
	assert.Nil(t, base.Role, "merge must not mutate the receiver")
}

func TestUserMetadata_MergeIsIdempotent(t *testing.T) {
	patch := MetadataPatch{Role: RoleUser.Ptr()}
	base := UserMetadata{FirstName: "Ada"}

	once := base.Merge(patch)
	twice := once.Merge(patch)

	assert.Equal(t, once, twice)
}

func TestParseRole(t *testing.T) {
	role, ok := ParseRole(" Shopkeeper ")
	assert.True(t, ok)
	assert.Equal(t, RoleShopkeeper, role)

	_, ok = ParseRole("unknown")
	assert.False(t, ok)

	_, ok = ParseRole("merchant")
	assert.False(t, ok)
}
