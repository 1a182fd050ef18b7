package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAdmin(t *testing.T) {
	d := NewSeededDirectory()

	admin, found := d.FindAdmin("owner@fadebarber.shop", "change-me")
	require.True(t, found)
	assert.Equal(t, 1, admin.AdminID)

	_, found = d.FindAdmin("owner@fadebarber.shop", "wrong")
	assert.False(t, found)

	_, found = d.FindAdmin("nobody@fadebarber.shop", "change-me")
	assert.False(t, found)
}
