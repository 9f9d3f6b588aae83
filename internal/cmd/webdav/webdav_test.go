package webdav

import (
	"testing"
	serverConfig "webdisk/internal/server/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *serverConfig.Server {
	c := serverConfig.Default()
	return &c
}

func TestApplyToggle(t *testing.T) {
	c := testConfig()

	require.NoError(t, apply(c, []string{"true"}))
	assert.True(t, c.Webdav.Enabled)

	require.NoError(t, apply(c, []string{"false"}))
	assert.False(t, c.Webdav.Enabled)
}

func TestAddUserDefaults(t *testing.T) {
	c := testConfig()

	require.NoError(t, apply(c, []string{"add", "bob"}))

	bob, ok := c.Webdav.Users.Get("bob")
	require.True(t, ok)
	assert.Equal(t, serverConfig.PermRead, bob.Permissions)
	assert.Len(t, bob.Password, randomPasswordLength)
}

func TestAddUserWithPermAndPassword(t *testing.T) {
	c := testConfig()

	require.NoError(t, apply(c, []string{"add", "alice:rw", "secret"}))

	alice, ok := c.Webdav.Users.Get("alice")
	require.True(t, ok)
	assert.Equal(t, serverConfig.PermRead|serverConfig.PermWrite, alice.Permissions)
	assert.Equal(t, "secret", alice.Password)
}

func TestAddUserRejectsInvalid(t *testing.T) {
	c := testConfig()

	assert.Error(t, apply(c, []string{"add"}))
	assert.Error(t, apply(c, []string{"add", ":rw", "pw"}))
	assert.Error(t, apply(c, []string{"add", "eve:rq", "pw"}))
	assert.Error(t, apply(c, []string{"add", "admin", "pw"})) // already exists

	_, ok := c.Webdav.Users.Get("eve")
	assert.False(t, ok, "nothing persisted on a rejected permission string")
}

func TestDelUser(t *testing.T) {
	c := testConfig()

	require.NoError(t, apply(c, []string{"del", "admin"}))
	assert.Equal(t, 0, c.Webdav.Users.Len())

	assert.Error(t, apply(c, []string{"del", "admin"}))
}

func TestUpdateUserPermAndPassword(t *testing.T) {
	c := testConfig()

	require.NoError(t, apply(c, []string{"admin:r"}))
	admin, _ := c.Webdav.Users.Get("admin")
	assert.Equal(t, serverConfig.PermRead, admin.Permissions)
	assert.Equal(t, "admin", admin.Password, "password untouched by a perm-only update")

	require.NoError(t, apply(c, []string{"admin", "newpw"}))
	admin, _ = c.Webdav.Users.Get("admin")
	assert.Equal(t, "newpw", admin.Password)
	assert.Equal(t, serverConfig.PermRead, admin.Permissions, "perm untouched by a password-only update")

	require.NoError(t, apply(c, []string{"admin:rwx", "adminpw"}))
	admin, _ = c.Webdav.Users.Get("admin")
	assert.Equal(t, serverConfig.PermRead|serverConfig.PermWrite|serverConfig.PermExecute, admin.Permissions)
	assert.Equal(t, "adminpw", admin.Password)
}

func TestUpdateUnknownUserWithPermAndPasswordCreates(t *testing.T) {
	c := testConfig()

	require.NoError(t, apply(c, []string{"carol:rw", "cpw"}))

	carol, ok := c.Webdav.Users.Get("carol")
	require.True(t, ok)
	assert.Equal(t, serverConfig.PermRead|serverConfig.PermWrite, carol.Permissions)
	assert.Equal(t, "cpw", carol.Password)
}

func TestUpdateUnknownUserWithoutPasswordFails(t *testing.T) {
	c := testConfig()

	assert.Error(t, apply(c, []string{"carol:rw"}))
	assert.Error(t, apply(c, []string{"carol", "pw"}))

	_, ok := c.Webdav.Users.Get("carol")
	assert.False(t, ok)
}

func TestUpdateUserRejectsBadPermission(t *testing.T) {
	c := testConfig()

	assert.Error(t, apply(c, []string{"admin:rz"}))
	admin, _ := c.Webdav.Users.Get("admin")
	assert.Equal(t, serverConfig.PermRead|serverConfig.PermWrite|serverConfig.PermExecute, admin.Permissions)

	assert.Error(t, apply(c, []string{"admin"}))
}
