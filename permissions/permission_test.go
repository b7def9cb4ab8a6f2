package permissions_test

import (
	"net/http"
	"summit/permissions"
	"summit/shared/constant"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_EmbeddedPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)
	require.NotEmpty(t, data.Endpoints)

	tests := []struct {
		path     string
		method   string
		skip     bool
		contains string
		excludes string
	}{
		{path: "/v1/adventures", method: http.MethodGet, skip: true},
		{path: "/v1/adventures/", method: http.MethodGet, skip: true},
		{path: "/v1/bookings", method: http.MethodPost, contains: constant.RoleCustomer, excludes: constant.RoleGuide},
		{path: "/v1/bookings/{id}/refund", method: http.MethodPost, contains: constant.RoleAdmin, excludes: constant.RoleCustomer},
		{path: "/v1/bookings/{id}/progress", method: http.MethodPost, contains: constant.RolePorter, excludes: constant.RoleCustomer},
		{path: "/v1/reviews", method: http.MethodPost, contains: constant.RoleCustomer, excludes: constant.RoleAdmin},
		{path: "/v1/ratings/{target_type}/{target_id}/recompute", method: "post", contains: constant.RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.skip, permission.Skip)

			if tt.contains != "" {
				assert.Contains(t, permission.Permissions, tt.contains)
			}

			if tt.excludes != "" {
				assert.NotContains(t, permission.Permissions, tt.excludes)
			}
		})
	}
}

func TestFindPermissions_Unknown(t *testing.T) {
	data, err := permissions.Parse([]byte(`{"endpoints":[{"path":"/v1/x","method":"GET","permissions":["admin"]}]}`))
	require.NoError(t, err)

	assert.Equal(t, permissions.Permission{}, data.FindPermissions("/v1/y", http.MethodGet))
	assert.Equal(t, permissions.Permission{}, data.FindPermissions("/v1/x", http.MethodPost))
}

func TestParse_Invalid(t *testing.T) {
	_, err := permissions.Parse([]byte(`{`))

	assert.Error(t, err)
}
