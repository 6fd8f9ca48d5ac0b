package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	for _, raw := range []string{"admin", "user", "readers"} {
		role, ok := ParseRole(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, Role(raw), role)
	}

	for _, raw := range []string{"", "reader", "Admin", "superuser"} {
		_, ok := ParseRole(raw)
		assert.False(t, ok, raw)
	}
}

func TestRoleSatisfies(t *testing.T) {
	cases := []struct {
		role Role
		req  Requirement
		want bool
	}{
		{RoleAdmin, AnyAuthenticated, true},
		{RoleUser, AnyAuthenticated, true},
		{RoleReader, AnyAuthenticated, true},
		{RoleAdmin, NotReader, true},
		{RoleUser, NotReader, true},
		{RoleReader, NotReader, false},
		{RoleAdmin, AdminOnly, true},
		{RoleUser, AdminOnly, false},
		{RoleReader, AdminOnly, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.role.Satisfies(tc.req), "%s vs %v", tc.role, tc.req)
	}
}

func TestRoleSatisfiesIsPure(t *testing.T) {
	// The same inputs always yield the same answer.
	for i := 0; i < 3; i++ {
		assert.False(t, RoleReader.Satisfies(NotReader))
		assert.True(t, RoleAdmin.Satisfies(AdminOnly))
	}
}

func TestParsePermission(t *testing.T) {
	for _, raw := range []string{"text", "images", "videos"} {
		p, ok := ParsePermission(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, Permission(raw), p)
	}
	_, ok := ParsePermission("audio")
	assert.False(t, ok)
}

func TestPermissionField(t *testing.T) {
	assert.Equal(t, FieldURLImage, PermissionImages.Field())
	assert.Equal(t, FieldURLVideo, PermissionVideos.Field())
	assert.Equal(t, FieldContentText, PermissionText.Field())
}

func TestCategoryLicenses(t *testing.T) {
	cat := &Category{Permissions: []Permission{PermissionImages, PermissionText}}

	assert.True(t, cat.Licenses(PermissionImages))
	assert.True(t, cat.Licenses(PermissionText))
	assert.False(t, cat.Licenses(PermissionVideos))
}

func TestLicensesTextDefaultChannel(t *testing.T) {
	// Explicit text tag.
	withText := &Category{Permissions: []Permission{PermissionText}}
	assert.True(t, withText.LicensesText())

	// Media-only category does not license the text body.
	mediaOnly := &Category{Permissions: []Permission{PermissionImages, PermissionVideos}}
	assert.False(t, mediaOnly.LicensesText())

	// With no media tags the text body is the implied default channel.
	empty := &Category{}
	assert.True(t, empty.LicensesText())
}

func TestAllowedFields(t *testing.T) {
	cat := &Category{Permissions: []Permission{PermissionImages, PermissionText}}
	assert.ElementsMatch(t, []string{FieldContentText, FieldURLImage}, cat.AllowedFields())

	videosOnly := &Category{Permissions: []Permission{PermissionVideos}}
	assert.ElementsMatch(t, []string{FieldURLVideo}, videosOnly.AllowedFields())
}
