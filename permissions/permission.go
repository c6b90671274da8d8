package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission is the allow-list for a single endpoint. Skip marks public
// endpoints that bypass authentication entirely.
type Permission struct {
	Roles  []string `json:"roles"`
	Path   string   `json:"path"`
	Method string   `json:"method"`
	Skip   bool     `json:"skip"`
}

// Page is one console page in the capability table. The navigation endpoint
// and the route guards both read this table, so menu visibility and route
// enforcement can never drift apart.
type Page struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Path  string   `json:"path"`
	Roles []string `json:"roles"`
}

type PermissionData struct {
	Pages     []Page       `json:"pages"`
	Endpoints []Permission `json:"endpoints"`
}

func (r *PermissionData) FindPermission(path, method string) Permission {
	idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
		return rp.Path == path && rp.Method == method
	})

	if idx == -1 {
		return Permission{}
	}

	return r.Endpoints[idx]
}

func (r *PermissionData) FindPage(id string) (Page, bool) {
	idx := slices.IndexFunc(r.Pages, func(p Page) bool {
		return p.ID == id
	})

	if idx == -1 {
		return Page{}, false
	}

	return r.Pages[idx], true
}

// PagesFor returns the console pages visible to the given role, in table
// order.
func (r *PermissionData) PagesFor(role string) []Page {
	pages := []Page{}

	for _, page := range r.Pages {
		if Authorize(role, page.Roles) == Allow {
			pages = append(pages, page)
		}
	}

	return pages
}

func Get() *PermissionData {
	var permissions PermissionData

	err := json.Unmarshal(permissionsData, &permissions)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().
		Int("pages", len(permissions.Pages)).
		Int("endpoints", len(permissions.Endpoints)).
		Msg("Successfully loaded embedded permissions")

	return &permissions
}
