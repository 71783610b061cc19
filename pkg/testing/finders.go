package testing

import (
	"fmt"
	"strings"

	"github.com/go-drift/widgetkit/pkg/core"
	"github.com/go-drift/widgetkit/pkg/rendering"
)

// Finder locates nodes in a scene.
type Finder interface {
	// Evaluate returns all matching nodes in depth-first pre-order.
	Evaluate(scene *rendering.Scene) []rendering.Node
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	nodes  []rendering.Node
	finder Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() rendering.Node {
	if len(r.nodes) == 0 {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("Finder found no nodes: %s", desc))
	}
	return r.nodes[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() rendering.Node {
	if len(r.nodes) == 0 {
		return nil
	}
	return r.nodes[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) rendering.Node {
	if index < 0 || index >= len(r.nodes) {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.nodes), desc))
	}
	return r.nodes[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []rendering.Node {
	return r.nodes
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.nodes)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.nodes) > 0
}

// predicateFinder matches nodes satisfying a predicate.
type predicateFinder struct {
	fn   func(rendering.Node) bool
	desc string
}

func (f *predicateFinder) Evaluate(scene *rendering.Scene) []rendering.Node {
	var out []rendering.Node
	scene.Walk(func(n rendering.Node, _ int) bool {
		if f.fn(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder that matches nodes satisfying fn.
func ByPredicate(fn func(rendering.Node) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// ByRole returns a finder that matches nodes whose published "role"
// attribute equals role. Only components that have run Update carry one.
func ByRole(role core.Role) Finder {
	return &predicateFinder{
		fn: func(n rendering.Node) bool {
			v, ok := n.Attr("role")
			return ok && v == string(role)
		},
		desc: fmt.Sprintf("ByRole(%s)", role),
	}
}

// ByText returns a finder that matches text nodes with exact content.
func ByText(text string) Finder {
	return &predicateFinder{
		fn: func(n rendering.Node) bool {
			return n.Kind() == rendering.KindText && n.Content() == text
		},
		desc: fmt.Sprintf("ByText(%q)", text),
	}
}

// ByTextContaining returns a finder that matches text nodes containing
// substring.
func ByTextContaining(substring string) Finder {
	return &predicateFinder{
		fn: func(n rendering.Node) bool {
			return n.Kind() == rendering.KindText && strings.Contains(n.Content(), substring)
		},
		desc: fmt.Sprintf("ByTextContaining(%q)", substring),
	}
}

// ByNode returns a finder that matches exactly node.
func ByNode(node rendering.Node) Finder {
	return &predicateFinder{
		fn:   func(n rendering.Node) bool { return n == node },
		desc: fmt.Sprintf("ByNode(%s)", node.ID()),
	}
}

// descendantFinder finds nodes matching 'matching' below nodes matching 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(scene *rendering.Scene) []rendering.Node {
	ancestors := f.of.Evaluate(scene)
	if len(ancestors) == 0 {
		return nil
	}
	var results []rendering.Node
	for _, n := range f.matching.Evaluate(scene) {
		for _, a := range ancestors {
			if isAncestorOf(a, n) {
				results = append(results, n)
				break
			}
		}
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches nodes satisfying 'matching' that
// are descendants of nodes matching 'of'.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

// isAncestorOf reports whether ancestor is a strict ancestor of n.
func isAncestorOf(ancestor, n rendering.Node) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p == ancestor {
			return true
		}
	}
	return false
}
