package gate

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/mobilecarebd/off-white/internal/model"
)

// RouteClass is the access class a request path falls into.
type RouteClass string

const (
	RoutePublic   RouteClass = "public"
	RouteAuthOnly RouteClass = "auth_only"
	RouteUser     RouteClass = "user"
	RouteAdmin    RouteClass = "admin"

	// routeUnparsable labels requests whose URL could not be parsed at all.
	routeUnparsable RouteClass = "unparsable"
)

// Redirect error reasons carried in the login URL.
const (
	ReasonUnauthorized = "unauthorized"
	ReasonAuthError    = "auth_error"
)

const (
	adminMessage     = "You must be an admin to access this area"
	authErrorMessage = "Your session could not be verified. Please log in again."
)

// Config is the static route table plus redirect targets. The table is
// explicit configuration; nothing is inferred from handlers.
type Config struct {
	AdminPrefixes    []string
	UserPrefixes     []string
	AuthOnlyPrefixes []string

	// PublicPrefixes are checked before everything else so API and asset
	// traffic never pays for a classification beyond one prefix scan.
	PublicPrefixes []string

	LoginPath string
	HomePath  string
}

// DefaultConfig returns the route table for the site.
func DefaultConfig() Config {
	return Config{
		AdminPrefixes:    []string{"/admin"},
		UserPrefixes:     []string{"/profile"},
		AuthOnlyPrefixes: []string{"/login", "/register"},
		PublicPrefixes: []string{
			"/api", "/static", "/images", "/healthz", "/metrics",
			"/swagger", "/favicon.ico",
		},
		LoginPath: "/login",
		HomePath:  "/",
	}
}

// Decision is the gate's verdict for one request. Either the request is
// allowed through, or the caller must issue a redirect to Location.
type Decision struct {
	Allow    bool
	Location string
}

func allow() Decision { return Decision{Allow: true} }

// userLookup validates a session token against the auth API.
type userLookup interface {
	MeWithToken(ctx context.Context, token string) (*model.User, error)
}

// Gate decides, for every intercepted request, whether it may proceed or must
// be redirected. It holds no mutable state; the auth API call for
// admin-protected paths is its only side effect.
type Gate struct {
	cfg  Config
	auth userLookup
}

// New builds a gate over the given route table and auth client.
func New(cfg Config, auth userLookup) *Gate {
	return &Gate{cfg: cfg, auth: auth}
}

// Classify maps a request path to its route class. The public short-circuit
// comes first so the overwhelming majority of traffic never goes further.
func (g *Gate) Classify(path string) RouteClass {
	if hasAnyPrefix(path, g.cfg.PublicPrefixes) {
		return RoutePublic
	}
	if hasAnyPrefix(path, g.cfg.AdminPrefixes) {
		return RouteAdmin
	}
	if hasAnyPrefix(path, g.cfg.UserPrefixes) {
		return RouteUser
	}
	if hasAnyPrefix(path, g.cfg.AuthOnlyPrefixes) {
		return RouteAuthOnly
	}
	return RoutePublic
}

// Decide returns the verdict for a request. requestURL is the absolute
// original URL, used both for classification and as the post-login callback.
// token is the raw session cookie value, empty when the cookie is absent.
//
// Every path through here terminates in Allow or a well-formed redirect;
// an unreachable or misbehaving auth API reads as an invalid session.
func (g *Gate) Decide(ctx context.Context, requestURL string, token string) Decision {
	u, err := url.Parse(requestURL)
	if err != nil {
		// A target that cannot be parsed cannot be classified. Send it to
		// login like any other unverifiable request; the URL is not trusted
		// enough to carry along as a callback.
		d := Decision{Location: g.cfg.LoginPath}
		observeDecision(routeUnparsable, d)
		return d
	}

	class := g.Classify(u.Path)
	d := g.decide(ctx, class, requestURL, token)
	observeDecision(class, d)
	return d
}

func (g *Gate) decide(ctx context.Context, class RouteClass, requestURL, token string) Decision {
	switch class {
	case RoutePublic:
		return allow()

	case RouteAuthOnly:
		// Presence alone gates login/register; a stale token still
		// counts. No validation round-trip here.
		if token != "" {
			return Decision{Location: g.cfg.HomePath}
		}
		return allow()

	case RouteUser:
		// Presence-only; the page re-validates a revoked session itself.
		if token == "" {
			return Decision{Location: g.loginRedirect(requestURL, "", "")}
		}
		return allow()

	case RouteAdmin:
		if token == "" {
			return Decision{Location: g.loginRedirect(requestURL, "", "")}
		}

		start := time.Now()
		user, err := g.auth.MeWithToken(ctx, token)
		observeLookup(time.Since(start), err)
		if err != nil {
			return Decision{Location: g.loginRedirect(requestURL, ReasonAuthError, authErrorMessage)}
		}
		if !user.IsAdmin {
			return Decision{Location: g.loginRedirect(requestURL, ReasonUnauthorized, adminMessage)}
		}
		return allow()
	}

	return allow()
}

func (g *Gate) loginRedirect(callbackURL, reason, message string) string {
	q := url.Values{}
	q.Set("callbackUrl", callbackURL)
	if reason != "" {
		q.Set("error", reason)
	}
	if message != "" {
		q.Set("message", message)
	}
	return g.cfg.LoginPath + "?" + q.Encode()
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
