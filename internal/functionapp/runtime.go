package functionapp

import (
	"fmt"
)

// RuntimeOption is one selectable version of a runtime stack. Stack and Version
// are the values sent to the backend.
type RuntimeOption struct {
	Key     string `json:"key" yaml:"key"`
	Text    string `json:"text" yaml:"text"`
	Stack   string `json:"stack" yaml:"stack"`
	Version string `json:"version" yaml:"version"`
}

// RuntimeStack groups the versions offered for one language runtime.
type RuntimeStack struct {
	Key      string          `json:"key" yaml:"key"`
	Text     string          `json:"text" yaml:"text"`
	Disabled bool            `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Versions []RuntimeOption `json:"versions" yaml:"versions"`
	// DefaultVersion is the key selected when the stack is picked. Empty means
	// the first version.
	DefaultVersion string `json:"defaultVersion,omitempty" yaml:"defaultVersion,omitempty"`
}

// Default returns the option selected when this stack is chosen.
func (s RuntimeStack) Default() RuntimeOption {
	if s.DefaultVersion != "" {
		if opt, ok := s.Version(s.DefaultVersion); ok {
			return opt
		}
	}
	return s.Versions[0]
}

// Version looks up an option by key.
func (s RuntimeStack) Version(key string) (RuntimeOption, bool) {
	for _, v := range s.Versions {
		if v.Key == key {
			return v, true
		}
	}
	return RuntimeOption{}, false
}

// Catalog is the ordered stack -> versions lookup table.
type Catalog []RuntimeStack

// DefaultCatalog is the runtime table offered when creating apps.
var DefaultCatalog = MustCatalog(Catalog{
	{
		Key: "dotnet", Text: ".NET", Versions: []RuntimeOption{
			{Key: "v8.0", Text: "8 (LTS), isolated workerModel", Stack: "dotnet-isolated", Version: "v8.0"},
			{Key: "v6.0", Text: "6 (LTS), isolated workerModel", Stack: "dotnet-isolated", Version: "v6.0"},
			{Key: "v4.8", Text: ".NET Framework 4.8, isolated workerModel", Stack: "dotnet-isolated", Version: "v4.0"},
			{Key: "v6.00", Text: "6 (LTS), in-process model", Stack: "dotnet", Version: "v6.0"},
		},
	},
	{
		Key: "node", Text: "Node.js", Versions: []RuntimeOption{
			{Key: "20", Text: "20 LTS", Stack: "node", Version: "~20"},
			{Key: "18", Text: "18 LTS", Stack: "node", Version: "~18"},
			{Key: "16", Text: "16 LTS", Stack: "node", Version: "~16"},
		},
	},
	{
		Key: "python", Text: "Python", Disabled: true, Versions: []RuntimeOption{
			{Key: "3.11", Text: "3.11", Stack: "python", Version: "3.11"},
			{Key: "3.10", Text: "3.10", Stack: "python", Version: "3.10"},
			{Key: "3.9", Text: "3.9", Stack: "python", Version: "3.9"},
			{Key: "3.8", Text: "3.8", Stack: "python", Version: "3.8"},
		},
	},
	{
		Key: "java", Text: "Java", Versions: []RuntimeOption{
			{Key: "17.0", Text: "17.0", Stack: "java", Version: "17"},
			{Key: "11.0", Text: "11.0", Stack: "java", Version: "11"},
			{Key: "8.0", Text: "8.0", Stack: "java", Version: "8"},
		},
	},
	{
		Key: "psc", Text: "PowerShell Core", Versions: []RuntimeOption{
			{Key: "7.4", Text: "7.4 (Preview)", Stack: "powershell", Version: "7.4"},
			{Key: "7.2", Text: "7.2", Stack: "powershell", Version: "7.2"},
		},
	},
	{
		Key: "custom", Text: "Custom Handler", Versions: []RuntimeOption{
			{Key: "custom", Text: "custom", Stack: "custom", Version: ""},
		},
	},
})

// MustCatalog panics if c fails validation. Used for static tables.
func MustCatalog(c Catalog) Catalog {
	if err := c.Validate(); err != nil {
		panic(err)
	}
	return c
}

// Validate checks referential consistency of the table.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("runtime catalog is empty")
	}
	stacks := make(map[string]bool, len(c))
	enabled := 0
	for _, s := range c {
		if s.Key == "" {
			return fmt.Errorf("runtime stack %q has no key", s.Text)
		}
		if stacks[s.Key] {
			return fmt.Errorf("duplicate runtime stack %q", s.Key)
		}
		stacks[s.Key] = true
		if !s.Disabled {
			enabled++
		}
		if len(s.Versions) == 0 {
			return fmt.Errorf("runtime stack %q has no versions", s.Key)
		}
		versions := make(map[string]bool, len(s.Versions))
		for _, v := range s.Versions {
			if v.Key == "" || v.Stack == "" {
				return fmt.Errorf("runtime stack %q has an incomplete version entry", s.Key)
			}
			if versions[v.Key] {
				return fmt.Errorf("runtime stack %q has duplicate version %q", s.Key, v.Key)
			}
			versions[v.Key] = true
		}
		if s.DefaultVersion != "" && !versions[s.DefaultVersion] {
			return fmt.Errorf("runtime stack %q default version %q is not in its version list", s.Key, s.DefaultVersion)
		}
	}
	if enabled == 0 {
		return fmt.Errorf("runtime catalog has no enabled stacks")
	}
	return nil
}

// DefaultStack is the first enabled stack.
func (c Catalog) DefaultStack() RuntimeStack {
	for _, s := range c {
		if !s.Disabled {
			return s
		}
	}
	return c[0]
}

// Stack looks up a stack by key.
func (c Catalog) Stack(key string) (RuntimeStack, bool) {
	for _, s := range c {
		if s.Key == key {
			return s, true
		}
	}
	return RuntimeStack{}, false
}

// Resolve returns the option for a stack/version key pair. Disabled stacks
// never resolve.
func (c Catalog) Resolve(stackKey, versionKey string) (RuntimeOption, error) {
	s, ok := c.Stack(stackKey)
	if !ok {
		return RuntimeOption{}, fmt.Errorf("%w: stack %q", ErrUnknownRuntime, stackKey)
	}
	if s.Disabled {
		return RuntimeOption{}, fmt.Errorf("%w: stack %q is disabled", ErrUnknownRuntime, stackKey)
	}
	if versionKey == "" {
		return s.Default(), nil
	}
	opt, ok := s.Version(versionKey)
	if !ok {
		return RuntimeOption{}, fmt.Errorf("%w: version %q of stack %q", ErrUnknownRuntime, versionKey, stackKey)
	}
	return opt, nil
}

// Contains reports whether the backend pair (stack, version) is offered by an
// enabled stack of the catalog.
func (c Catalog) Contains(stack, version string) bool {
	for _, s := range c {
		if s.Disabled {
			continue
		}
		for _, v := range s.Versions {
			if v.Stack == stack && v.Version == version {
				return true
			}
		}
	}
	return false
}

// Next returns the stack after (delta > 0) or before (delta < 0) current,
// skipping disabled stacks and wrapping around.
func (c Catalog) Next(current string, delta int) RuntimeStack {
	n := len(c)
	idx := 0
	for i, s := range c {
		if s.Key == current {
			idx = i
			break
		}
	}
	step := 1
	if delta < 0 {
		step = -1
	}
	for i := 1; i <= n; i++ {
		cand := c[((idx+step*i)%n+n)%n]
		if !cand.Disabled {
			return cand
		}
	}
	return c[idx]
}
