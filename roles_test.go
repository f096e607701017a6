package freeconnect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	freeconnect "github.com/freeconnect/freeconnect-go"
)

func TestRoleIsValid(t *testing.T) {
	assert.True(t, freeconnect.RoleClient.IsValid())
	assert.True(t, freeconnect.RoleFreelancer.IsValid())
	assert.True(t, freeconnect.RoleAdmin.IsValid())
	assert.False(t, freeconnect.Role("superuser").IsValid())
	assert.False(t, freeconnect.Role("").IsValid())
}

func TestParseRole(t *testing.T) {
	cases := []struct {
		input string
		want  freeconnect.Role
		ok    bool
	}{
		{"client", freeconnect.RoleClient, true},
		{"Client", freeconnect.RoleClient, true},
		{"FREELANCER", freeconnect.RoleFreelancer, true},
		{"  admin  ", freeconnect.RoleAdmin, true},
		{"superuser", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := freeconnect.ParseRole(tc.input)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestGetAllRoles(t *testing.T) {
	roles := freeconnect.GetAllRoles()
	assert.Len(t, roles, 3)
	assert.Contains(t, roles, freeconnect.RoleClient)
	assert.Contains(t, roles, freeconnect.RoleFreelancer)
	assert.Contains(t, roles, freeconnect.RoleAdmin)
}
