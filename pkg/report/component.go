package report

import (
	"fmt"
	"path"
	"path/filepath"
	"runtime"
	"strings"
)

// Policy controls where component tags appear in a rendered chain.
type Policy int

const (
	// TagTransitions prints the outermost tag and a new tag every time the
	// chain crosses into a frame owned by a different component.
	TagTransitions Policy = iota
	// TagOutermost prints a single tag for the outermost frame only.
	TagOutermost
)

// String returns the config spelling of the policy.
func (p Policy) String() string {
	switch p {
	case TagTransitions:
		return "transitions"
	case TagOutermost:
		return "outermost"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy parses the config spelling of a policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "transitions":
		return TagTransitions, nil
	case "outermost":
		return TagOutermost, nil
	}
	return 0, fmt.Errorf("unknown tag policy %q", s)
}

// Component is the identity attached to every frame created through it.
// A Component is a value; it never changes after NewComponent returns.
type Component struct {
	name    string
	version string
	policy  Policy
	root    string
}

// ComponentOption configures a Component during NewComponent.
type ComponentOption func(*Component)

// WithPolicy sets the tag policy used when a chain headed by this component is rendered.
func WithPolicy(p Policy) ComponentOption {
	return func(c *Component) { c.policy = p }
}

// WithRoot sets the directory recorded file paths are made relative to.
func WithRoot(dir string) ComponentOption {
	return func(c *Component) { c.root = cleanRoot(dir) }
}

// WithRootFromCaller derives the component root from the file that calls it.
// relDir is the caller's directory relative to the root, e.g. "internal/store".
// It is meant for generated wrap-site files and works with and without -trimpath.
func WithRootFromCaller(relDir string) ComponentOption {
	_, file, _, ok := runtime.Caller(1)
	return func(c *Component) {
		if ok {
			c.root = rootOf(path.Dir(filepath.ToSlash(file)), relDir)
		}
	}
}

// NewComponent returns the component identity for name and version.
func NewComponent(name, version string, opts ...ComponentOption) Component {
	c := Component{name: name, version: version}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// Name returns the component name.
func (c Component) Name() string { return c.name }

// Version returns the component version.
func (c Component) Version() string { return c.version }

// Policy returns the tag policy.
func (c Component) Policy() Policy { return c.policy }

// Root returns the directory file paths are trimmed against ("" when unset).
func (c Component) Root() string { return c.root }

// String returns "name@version".
func (c Component) String() string { return c.name + "@" + c.version }

// Same reports whether c and other carry the same identity.
// Policy and root are not part of the identity.
func (c Component) Same(other Component) bool {
	return c.name == other.name && c.version == other.version
}

func (c Component) tag() string { return "{" + c.String() + "}" }

// relative returns file relative to the component root, or file unchanged
// when it lives outside of it.
func (c Component) relative(file string) string {
	file = filepath.ToSlash(file)
	if c.root == "" {
		return file
	}
	if rest, ok := strings.CutPrefix(file, strings.TrimSuffix(c.root, "/")+"/"); ok {
		return rest
	}
	return file
}

func cleanRoot(dir string) string {
	if dir == "" {
		return ""
	}
	dir = path.Clean(filepath.ToSlash(dir))
	if dir == "." {
		return ""
	}
	return dir
}

// rootOf strips relDir from the end of dir.
func rootOf(dir, relDir string) string {
	rel := strings.TrimPrefix(path.Clean("/"+filepath.ToSlash(relDir)), "/")
	if rel == "" {
		return dir
	}
	if root, ok := strings.CutSuffix(dir, "/"+rel); ok {
		return root
	}
	return ""
}
