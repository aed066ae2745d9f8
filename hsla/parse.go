// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsla

import (
	"slices"
	"strings"

	"cogentcore.org/hsla/names"
)

// Kinds reported by [Parser.Detect] for strings that are not
// matched by any [Grammar].
const (
	KindName        = "name"
	KindTransparent = "transparent"
)

// Parser converts color strings to HSLA using an ordered list of
// grammars followed by a named color lookup. A Parser must not be
// modified once it is in use, after which it is safe for concurrent use.
type Parser struct {

	// Grammars are tried in order and the first match is used.
	Grammars []Grammar

	// Names is consulted when no grammar matches. It may be nil.
	Names names.Table
}

// NewParser returns a new parser with the standard [Grammars]
// and the given named color table.
func NewParser(tbl names.Table) *Parser {
	return &Parser{Grammars: slices.Clone(Grammars), Names: tbl}
}

// DefaultParser is the parser used by [FromString] and [Detect].
var DefaultParser = NewParser(names.CSS)

// FromString returns the color represented by the given string using
// [DefaultParser]. It never fails: anything that cannot be parsed
// results in [Default]. It accepts hsl(), hsla(), #rgb, #rrggbb, rgb()
// and rgba() with integer or percent channels, CSS color names,
// and "transparent", ignoring case and surrounding whitespace.
func FromString(str string) HSLA {
	return DefaultParser.FromString(str)
}

// Detect is like [FromString], but also returns the name of the grammar
// or kind that matched, and whether anything matched at all. This
// distinguishes "transparent" from an unparseable string, which both
// result in [Default].
func Detect(str string) (HSLA, string, bool) {
	return DefaultParser.Detect(str)
}

// FromString returns the color represented by the given string,
// or [Default] if it cannot be parsed. See the package-level [FromString].
func (p *Parser) FromString(str string) HSLA {
	c, _, _ := p.Detect(str)
	return c
}

// Detect returns the color represented by the given string, the name of
// the grammar or kind that matched it, and whether it matched. Any error
// or panic from a grammar results in [Default] and false.
func (p *Parser) Detect(str string) (c HSLA, kind string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			c, kind, ok = Default, "", false
		}
	}()

	str = strings.ToLower(strings.TrimSpace(str))
	for _, g := range p.Grammars {
		m := g.Pattern.FindStringSubmatch(str)
		if m == nil {
			continue
		}
		c, err := g.Convert(m)
		if err != nil {
			return Default, "", false
		}
		return c, g.Name, true
	}
	if p.Names != nil {
		if n, ok := p.Names.Lookup(str); ok {
			return FromPacked(n), KindName, true
		}
	}
	if str == "transparent" {
		return FromRGBA(0, 0, 0, 0), KindTransparent, true
	}
	return Default, "", false
}
