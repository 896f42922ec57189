package docsmcp

import (
	"net/url"
	"strings"
)

// Scope restricts which discovered links a crawl follows.
type Scope string

// Crawl scopes.
const (
	// ScopeSubpages follows links on the same host whose path lies under
	// the directory of the seed URL.
	ScopeSubpages Scope = "subpages"
	// ScopeHostname follows links on the same host.
	ScopeHostname Scope = "hostname"
	// ScopeDomain follows links sharing the last two labels of the host.
	ScopeDomain Scope = "domain"
)

// ParseScope validates a scope name. The empty string selects
// ScopeSubpages.
func ParseScope(s string) (Scope, error) {
	switch Scope(strings.TrimSpace(s)) {
	case "", ScopeSubpages:
		return ScopeSubpages, nil
	case ScopeHostname:
		return ScopeHostname, nil
	case ScopeDomain:
		return ScopeDomain, nil
	}
	return "", Errorf(EINVALID, "unknown scope %q: want subpages, hostname or domain", s)
}

// SameScope reports whether candidate may be crawled from a crawl seeded
// at base. Hosts are compared including the port. Unparseable URLs and
// unknown scopes are out of scope.
func SameScope(scope Scope, base, candidate string) bool {
	b, err := url.Parse(base)
	if err != nil {
		return false
	}
	c, err := url.Parse(candidate)
	if err != nil {
		return false
	}

	switch scope {
	case ScopeSubpages:
		dir := dirname(b.Path)
		if dir == "" {
			dir = "/"
		}
		return c.Host == b.Host && strings.HasPrefix(c.Path, dir)
	case ScopeHostname:
		return c.Host == b.Host
	case ScopeDomain:
		return registrableDomain(c.Host) == registrableDomain(b.Host)
	}
	return false
}

// dirname returns everything before the final slash of p, with trailing
// slashes removed unless the result is only slashes. Unlike path.Dir it
// does not clean, so "/docs/" yields "/docs" and "" yields "".
func dirname(p string) string {
	i := strings.LastIndex(p, "/")
	if i < 0 {
		return ""
	}
	head := p[:i+1]
	if trimmed := strings.TrimRight(head, "/"); trimmed != "" {
		return trimmed
	}
	return head
}

func registrableDomain(host string) string {
	parts := strings.Split(host, ".")
	if len(parts) < 2 {
		return host
	}
	return strings.Join(parts[len(parts)-2:], ".")
}
