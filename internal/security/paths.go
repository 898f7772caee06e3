package security

import "strings"

// PublicRoutes decides whether a request path may be served without an
// identity. It is built once from configuration and is safe for
// concurrent use.
type PublicRoutes struct {
	patterns [][]string
}

func NewPublicRoutes(patterns []string) *PublicRoutes {
	pr := &PublicRoutes{}
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		pr.patterns = append(pr.patterns, splitPath(p))
	}
	return pr
}

func (pr *PublicRoutes) Match(path string) bool {
	segments := splitPath(path)
	for _, pattern := range pr.patterns {
		if matchSegments(pattern, segments) {
			return true
		}
	}
	return false
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func matchSegments(pattern, path []string) bool {
	for i, seg := range pattern {
		if seg == "**" {
			// "**" swallows the remainder, including nothing at all.
			return i == len(pattern)-1 || matchTail(pattern[i+1:], path[min(i, len(path)):])
		}
		if i >= len(path) {
			return false
		}
		if seg != "*" && seg != path[i] {
			return false
		}
	}
	return len(pattern) == len(path)
}

func matchTail(pattern, path []string) bool {
	for start := 0; start <= len(path); start++ {
		if matchSegments(pattern, path[start:]) {
			return true
		}
	}
	return false
}
