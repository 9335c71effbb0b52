/*
   Copyright 2025 The Saggitarius Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package parser

import (
	"errors"
	"strings"

	"github.com/dhindustries/saggitarius-typing/apis"
	"github.com/dhindustries/saggitarius-typing/config"
	"github.com/dhindustries/saggitarius-typing/identity"
)

var (
	// ErrEmptyReference is returned when an empty type reference is
	// provided.
	ErrEmptyReference = errors.New("typing(parser): empty type reference")
	// ErrUnbalancedBrackets indicates a reference whose angle brackets do
	// not balance.
	ErrUnbalancedBrackets = errors.New("typing(parser): unbalanced angle brackets")
	// ErrNestingTooDeep indicates generic nesting beyond the configured
	// limit.
	ErrNestingTooDeep = errors.New("typing(parser): generic nesting exceeds limit")
)

// New constructs a Parser over the given registry and interner.
// Only StrictBrackets and MaxNesting are used here.
func New(reg apis.Registry, in apis.Interner, cfg apis.Config) apis.Parser {
	if cfg.MaxNesting <= 0 {
		cfg.MaxNesting = config.DefaultMaxNesting
	}
	return &parser{reg: reg, in: in, cfg: cfg}
}

// parser resolves textual type references of the form
// [module::]path[<paramList>] into canonical types.
type parser struct {
	// reg resolves and creates named types.
	reg apis.Registry
	// in deduplicates parameterized types.
	in apis.Interner
	// cfg carries the parsing knobs.
	cfg apis.Config
}

// Parse resolves ref to its canonical Type.
func (p *parser) Parse(ref string) (*identity.Type, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, ErrEmptyReference
	}

	// Fast path: a registered name or known primitive resolves without
	// re-parsing. Canonical display names of previously parsed generics
	// land here via the alias written below.
	if t, ok := p.reg.Lookup(ref); ok {
		return t, nil
	}

	if p.cfg.StrictBrackets {
		if err := checkBrackets(ref, p.cfg.MaxNesting); err != nil {
			return nil, err
		}
	}
	return p.parse(ref)
}

// parse handles the slow path: module split, parameter split, recursion.
func (p *parser) parse(ref string) (*identity.Type, error) {
	module, rest := splitModule(ref)
	path, params, generic := splitParams(rest)
	if path == "" {
		return nil, ErrEmptyReference
	}

	name := path
	if module != "" {
		name = module + "::" + path
	}
	base := p.reg.Named(name)
	base.SetModule(module)
	base.SetPath(path)

	if !generic {
		return base, nil
	}

	args := make([]*identity.Type, 0, 2)
	for _, part := range splitList(params) {
		arg, err := p.Parse(part)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	t := p.in.Complex(base, args)

	// Register the computed canonical display name as an alias so the
	// next parse of the identical canonical string hits the fast path.
	// Bindings are never overwritten, so a name claimed directly via
	// Named keeps its type; the alias result is advisory.
	_ = p.reg.Alias(t.Name(), t)

	t.SetModule(module)
	t.SetPath(path)
	return t, nil
}

// splitModule separates an optional module prefix on the first "::".
// Only the text before the first "<" is considered, so parameter lists
// may freely contain namespaced references.
func splitModule(ref string) (module, rest string) {
	limit := strings.IndexByte(ref, '<')
	if limit < 0 {
		limit = len(ref)
	}
	if i := strings.Index(ref[:limit], "::"); i >= 0 {
		return ref[:i], ref[i+len("::"):]
	}
	return "", ref
}

// splitParams matches an optional trailing "<...>" parameter-list suffix.
// Without a well-formed suffix the whole input is the bare path.
func splitParams(rest string) (path, params string, generic bool) {
	i := strings.IndexByte(rest, '<')
	if i < 0 || !strings.HasSuffix(rest, ">") {
		return rest, "", false
	}
	return rest[:i], rest[i+1 : len(rest)-1], true
}

// splitList splits a parameter list at commas that sit at bracket depth
// zero, so nested generics keep their inner commas.
func splitList(params string) []string {
	parts := make([]string, 0, 2)
	depth := 0
	start := 0
	for i := 0; i < len(params); i++ {
		switch params[i] {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, params[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, params[start:])
}

// checkBrackets validates bracket balance and nesting depth up front,
// before any registry state is touched.
func checkBrackets(ref string, maxNesting int) error {
	depth := 0
	for i := 0; i < len(ref); i++ {
		switch ref[i] {
		case '<':
			depth++
			if depth > maxNesting {
				return ErrNestingTooDeep
			}
		case '>':
			depth--
			if depth < 0 {
				return ErrUnbalancedBrackets
			}
		}
	}
	if depth != 0 {
		return ErrUnbalancedBrackets
	}
	return nil
}
