package navigation

import (
	"log"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"NCCPortal/internal/session"
)

// Destination names gated by role.
const (
	DestProfile   = "profile"
	DestDashboard = "dashboard"
	DestCamps     = "camps"
	DestStocks    = "stocks"
	DestCadets    = "cadets"
)

// Link is one visible navigation entry.
type Link struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

const navModel = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act`

// navPolicy lists which destinations each role may see. This is UX
// convenience only: hiding a link does not prevent calling the underlying
// route, and real authorization lives behind the remote API.
var navPolicy = [][]string{
	{session.RoleCadet, DestProfile, "view"},
	{session.RoleCadet, DestDashboard, "view"},
	{session.RoleCadet, DestCamps, "view"},
	{session.RoleCadet, DestStocks, "view"},
	{session.RoleANO, DestProfile, "view"},
	{session.RoleANO, DestDashboard, "view"},
	{session.RoleANO, DestCamps, "view"},
	{session.RoleANO, DestStocks, "view"},
	{session.RoleANO, DestCadets, "view"},
}

// Navigator derives the set of visible destinations and role-specific link
// targets from a session. Pure derivation, no side effects.
type Navigator struct {
	enforcer *casbin.Enforcer
}

func NewNavigator() (*Navigator, error) {
	m, err := model.NewModelFromString(navModel)
	if err != nil {
		return nil, err
	}
	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}
	for _, rule := range navPolicy {
		if _, err := enforcer.AddPolicy(rule[0], rule[1], rule[2]); err != nil {
			return nil, err
		}
	}
	return &Navigator{enforcer: enforcer}, nil
}

// Visible reports whether the session's role may see a destination.
// Enforcement failures degrade to not-visible.
func (n *Navigator) Visible(sess session.Session, dest string) bool {
	if !sess.LoggedIn() {
		return false
	}
	allowed, err := n.enforcer.Enforce(sess.Role, dest, "view")
	if err != nil {
		log.Println("Navigation enforce error:", err)
		return false
	}
	return allowed
}

// CampsLink resolves the camps destination for the current role, and to the
// neutral default when logged out.
func (n *Navigator) CampsLink(sess session.Session) string {
	switch sess.Role {
	case session.RoleANO:
		return "/ano-camps"
	case session.RoleCadet:
		return "/camps"
	default:
		return "/"
	}
}

func (n *Navigator) StocksLink(sess session.Session) string {
	if sess.Role == session.RoleANO {
		return "/ano-stocks"
	}
	return "/stocks"
}

// Links returns the navigation entries visible to the session, in display
// order. A logged-out session sees only the login entry.
func (n *Navigator) Links(sess session.Session) []Link {
	if !sess.LoggedIn() {
		return []Link{{Name: "Login", Path: "/login"}}
	}

	links := []Link{}
	if n.Visible(sess, DestProfile) {
		links = append(links, Link{Name: "Profile", Path: "/profile"})
	}
	if n.Visible(sess, DestDashboard) {
		links = append(links, Link{Name: "Dashboard", Path: "/dashboard"})
	}
	if n.Visible(sess, DestCamps) {
		links = append(links, Link{Name: "Camps", Path: n.CampsLink(sess)})
	}
	if n.Visible(sess, DestStocks) {
		links = append(links, Link{Name: "Stocks", Path: n.StocksLink(sess)})
	}
	if n.Visible(sess, DestCadets) {
		links = append(links, Link{Name: "Cadets", Path: "/cadets"})
	}
	return links
}
