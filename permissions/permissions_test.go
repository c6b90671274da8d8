package permissions_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grandresort/permissions"
)

func TestAuthorize(t *testing.T) {
	allowed := []string{"SUPER_ADMIN", "MANAGER"}

	tests := []struct {
		name string
		role string
		want permissions.Decision
	}{
		{
			name: "empty role redirects to login",
			role: "",
			want: permissions.RedirectToLogin,
		},
		{
			name: "allowed role passes",
			role: "MANAGER",
			want: permissions.Allow,
		},
		{
			name: "known but unlisted role is denied",
			role: "HOUSEKEEPING",
			want: permissions.Deny,
		},
		{
			name: "unknown role is denied",
			role: "INTERN",
			want: permissions.Deny,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, permissions.Authorize(tt.role, allowed))
		})
	}
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "redirect_to_login", permissions.RedirectToLogin.String())
	assert.Equal(t, "deny", permissions.Deny.String())
	assert.Equal(t, "allow", permissions.Allow.String())
}

func TestGet_LoadsEmbeddedTable(t *testing.T) {
	data := permissions.Get()

	require.NotNil(t, data)
	assert.NotEmpty(t, data.Pages)
	assert.NotEmpty(t, data.Endpoints)

	// Every page and endpoint must carry a non-empty allow-list unless the
	// endpoint is explicitly public.
	for _, page := range data.Pages {
		assert.NotEmpty(t, page.Roles, "page %s has no roles", page.ID)
	}

	for _, endpoint := range data.Endpoints {
		if !endpoint.Skip {
			assert.NotEmpty(t, endpoint.Roles, "endpoint %s %s has no roles", endpoint.Method, endpoint.Path)
		}
	}
}

func TestGet_SuperAdminSeesEveryPage(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	pages := data.PagesFor("SUPER_ADMIN")

	assert.Len(t, pages, len(data.Pages))
}

func TestPagesFor_RoleVisibility(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	pageIDs := func(role string) []string {
		ids := []string{}
		for _, page := range data.PagesFor(role) {
			ids = append(ids, page.ID)
		}

		return ids
	}

	housekeeping := pageIDs("HOUSEKEEPING")
	assert.Contains(t, housekeeping, "housekeeping")
	assert.Contains(t, housekeeping, "rooms")
	assert.NotContains(t, housekeeping, "invoices")
	assert.NotContains(t, housekeeping, "settings")

	accountant := pageIDs("ACCOUNTANT")
	assert.Contains(t, accountant, "payments")
	assert.Contains(t, accountant, "invoices")
	assert.NotContains(t, accountant, "reservations")

	assert.Empty(t, pageIDs(""))
}

func TestFindPermission(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	wizardStart := data.FindPermission("/v1/wizard", http.MethodPost)
	assert.True(t, wizardStart.Skip)

	health := data.FindPermission("/health", http.MethodGet)
	assert.True(t, health.Skip)

	swagger := data.FindPermission("/swagger/*", http.MethodGet)
	assert.True(t, swagger.Skip)

	settingsWrite := data.FindPermission("/v1/settings/{key}", http.MethodPut)
	assert.False(t, settingsWrite.Skip)
	assert.Equal(t, []string{"SUPER_ADMIN"}, settingsWrite.Roles)

	unknown := data.FindPermission("/v1/nope", http.MethodGet)
	assert.False(t, unknown.Skip)
	assert.Empty(t, unknown.Roles)
}

func TestFindPage(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	page, ok := data.FindPage("housekeeping")
	require.True(t, ok)
	assert.Equal(t, "/console/housekeeping", page.Path)

	_, ok = data.FindPage("payroll")
	assert.False(t, ok)
}
