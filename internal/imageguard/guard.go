// Package imageguard keeps image slots from ever rendering broken.
//
// A failed load is retried once from the local asset directory using the
// filename of the original URL; a second failure substitutes a generated
// placeholder. An element receives at most two fallback assignments.
package imageguard

import (
	"net/url"
	"path"
	"strings"
)

// PlaceholderText is the caption of the generated placeholder.
const PlaceholderText = "Image unavailable"

const placeholderPrefix = "data:image/svg+xml;utf8,"

// Placeholder is the inline placeholder source.
var Placeholder = PlaceholderURI(PlaceholderText)

// MaxAssignments bounds the fallback assignments of one element.
const MaxAssignments = 2

// PlaceholderURI returns an inline SVG data URI showing text.
func PlaceholderURI(text string) string {
	svg := `<svg xmlns="http://www.w3.org/2000/svg" width="400" height="400">` +
		`<rect width="100%" height="100%" fill="#0b0b0b"/>` +
		`<text x="50%" y="50%" fill="#ffffff" font-size="18" font-family="Arial" ` +
		`text-anchor="middle" dominant-baseline="middle">` + text + `</text></svg>`
	return placeholderPrefix + url.PathEscape(svg)
}

// IsPlaceholder reports whether src is a generated placeholder.
func IsPlaceholder(src string) bool {
	return strings.HasPrefix(src, placeholderPrefix)
}

// Element is one image slot's source state.
type Element struct {
	Src         string
	tried       bool
	assignments int
}

// NewElement returns an element showing src.
func NewElement(src string) *Element {
	return &Element{Src: src}
}

// Tried reports whether the local fallback was already attempted.
func (e *Element) Tried() bool { return e.tried }

// Assignments returns how many fallback sources were assigned.
func (e *Element) Assignments() int { return e.assignments }

func (e *Element) assign(src string) {
	e.Src = src
	e.assignments++
}

// Resolver maps an image filename to a local path.
type Resolver interface {
	ImagePath(name string) string
}

// Guard applies the fallback progression.
type Guard struct {
	local Resolver
}

// New creates a guard resolving local fallbacks through r.
func New(r Resolver) *Guard {
	return &Guard{local: r}
}

// HandleError records a load failure of e.Src and assigns the next source.
// It returns false when nothing changed: the placeholder itself failed or
// the element has used up its assignments.
func (g *Guard) HandleError(e *Element) bool {
	if e == nil || IsPlaceholder(e.Src) || e.assignments >= MaxAssignments {
		return false
	}
	if e.tried {
		e.assign(Placeholder)
		return true
	}
	e.tried = true
	if name := Filename(e.Src); name != "" && g.local != nil {
		e.assign(g.local.ImagePath(name))
		return true
	}
	e.assign(Placeholder)
	return true
}

// Filename returns the last path segment of src's URL path, or "".
// Query and fragment are ignored.
func Filename(src string) string {
	if src == "" || IsPlaceholder(src) {
		return ""
	}
	u, err := url.Parse(src)
	if err != nil {
		return ""
	}
	p := u.Path
	if p == "" || strings.HasSuffix(p, "/") {
		return ""
	}
	name := path.Base(p)
	if name == "." || name == "/" {
		return ""
	}
	return name
}
