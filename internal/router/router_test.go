package router

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"studentrent/internal/domain"
)

func TestParse(t *testing.T) {
	tests := []struct {
		token string
		want  Route
	}{
		{"", Home},
		{"home", Home},
		{"listings", Listings},
		{"login", Login},
		{"signup", Signup},
		{"tenant", Tenant},
		{"landlord", Landlord},
		{"garbage", Home},
		{"LISTINGS", Home}, // token 区分大小写
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Parse(tt.token), "Parse(%q)", tt.token)
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, r := range []Route{Home, Listings, Login, Signup, Tenant, Landlord} {
		assert.Equal(t, r, Parse(r.String()))
	}
	assert.Equal(t, "home", Route(99).String())
}

func TestResolvePublicRoutes(t *testing.T) {
	for _, token := range []string{"home", "listings", "login", "signup"} {
		res := Resolve(token, nil)
		assert.False(t, res.Redirected, "token %q", token)
		assert.Equal(t, res.Requested, res.Route)
	}
}

func TestResolveGuards(t *testing.T) {
	ten := &domain.User{ID: 1, Role: domain.RoleTenant}
	ll := &domain.User{ID: 2, Role: domain.RoleLandlord}

	tests := []struct {
		name    string
		token   string
		session *domain.User
		want    Route
		redir   bool
	}{
		{"tenant view, no session", "tenant", nil, Login, true},
		{"tenant view, tenant session", "tenant", ten, Tenant, false},
		{"tenant view, landlord session", "tenant", ll, Login, true},
		{"landlord view, no session", "landlord", nil, Login, true},
		{"landlord view, landlord session", "landlord", ll, Landlord, false},
		{"landlord view, tenant session", "landlord", ten, Login, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(tt.token, tt.session)
			assert.Equal(t, tt.want, res.Route)
			assert.Equal(t, tt.redir, res.Redirected)
			assert.Equal(t, Parse(tt.token), res.Requested)
		})
	}
}
