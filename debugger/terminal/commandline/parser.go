// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package commandline

import (
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// ParseCommandTemplate turns the supplied template into an instance of
// Commands, ready for validation and tab completion of user input.
//
// Each entry in the template is the definition of a single command. The first
// word of a definition is the command itself; subsequent words are the
// arguments to that command. Definitions are case-insensitive (they are
// normalised to upper case during parsing) and the order of the template is
// preserved.
//
// Arguments can be grouped with the following indicators:
//
//	[ ... ]    required group
//	( ... )    optional group
//	{ ... }    repeat group (optional by definition)
//
// Within a group, the pipe character separates alternatives:
//
//	[RISING|FALLING]
//
// means that exactly one of the words RISING or FALLING must be present.
// Groups can be nested to any depth.
//
// In addition to regular words, placeholder directives describe the type of
// an argument:
//
//	%N         numeric argument
//	%P         floating-point argument
//	%S         string argument
//	%F         filename argument
//
// A placeholder can be labelled for the benefit of help text. For example:
//
//	%<address>N
//
// Placeholder directives must be free standing, separated from surrounding
// text. The double directive %% represents the literal percent character.
func ParseCommandTemplate(template []string) (*Commands, error) {
	cmds := &Commands{
		Index: make(map[string]*node),
		cmds:  make([]*node, 0, len(template)),
	}

	for t := range template {
		defn := template[t]

		// tidy up definition - removing excess white space and normalising
		// to upper case
		defn = strings.Join(strings.Fields(defn), " ")
		defn = strings.ToUpper(defn)

		// ignore empty definitions
		if defn == "" {
			continue
		}

		p, d, err := parseDefinition(defn, "")
		if err != nil {
			return nil, curated.Errorf("parser: %s: %s (char %d)", defn, err, d)
		}

		if _, ok := cmds.Index[p.tag]; ok {
			return nil, curated.Errorf("parser: duplicate definition (%s)", p.tag)
		}

		cmds.cmds = append(cmds.cmds, p)
		cmds.Index[p.tag] = p
	}

	return cmds, nil
}

// parseDefinition parses a single command definition, returning the head node
// of the definition (or group). the trigger argument indicates the type of
// group being parsed - the empty string indicates the root of the definition.
//
// the int return value is the number of characters consumed. in the case of
// an error it points at the offending character.
func parseDefinition(defn string, trigger string) (*node, int, error) {
	// the type given to every node created at this level
	var typ nodeType

	switch trigger {
	case "":
		typ = nodeRoot
	case "(":
		typ = nodeOptional
	case "[":
		typ = nodeRequired
	case "{":
		// nodes in a repeat group are optional by definition. the repeat
		// fields themselves are wired by the caller once the group has been
		// parsed in full
		typ = nodeOptional
	default:
		return nil, 0, curated.Errorf("unknown group type (%s)", trigger)
	}

	// the head node of the first alternative. this is the node returned to
	// the caller
	var resultNode *node

	// the head node of the alternative currently being parsed. the first
	// node of every subsequent alternative becomes a branch of resultNode;
	// any other node is sequenced through the next array of sequenceHead
	var sequenceHead *node

	// the word currently being accumulated
	var tag strings.Builder

	// attach a new node to the current alternative
	addNode := func(n *node) {
		if sequenceHead == nil {
			sequenceHead = n
			if resultNode == nil {
				resultNode = n
			} else {
				resultNode.branch = append(resultNode.branch, n)
			}
		} else {
			sequenceHead.next = append(sequenceHead.next, n)
		}
	}

	// attach a parsed group to the current alternative. a group of a
	// different type at the head of an alternative is wrapped in a node with
	// an empty tag - validation and printing of the group is then reached
	// through the empty node
	addGroup := func(g *node) {
		if sequenceHead == nil && g.typ != typ {
			addNode(&node{typ: typ, next: []*node{g}})
			return
		}
		addNode(g)
	}

	// turn the accumulated word into a new node, checking any placeholder
	// directive for correctness
	commitWord := func() error {
		if tag.Len() == 0 {
			return nil
		}
		defer tag.Reset()

		w := tag.String()
		n := &node{tag: w, typ: typ}

		// the double directive %% is allowed through as a literal
		if strings.ContainsRune(w, '%') && w != "%%" {
			if w[0] != '%' {
				return curated.Errorf("placeholder directives must be free standing (%s)", w)
			}
			if len(w) < 2 {
				return curated.Errorf("unfinished placeholder directive (%s)", w)
			}

			p := w
			if w[1] == '<' {
				k := strings.IndexRune(w, '>')
				if k == -1 || k+1 >= len(w) {
					return curated.Errorf("unfinished placeholder label (%s)", w)
				}
				n.placeholderLabel = w[2:k]
				p = "%" + w[k+1:]
				n.tag = p
			}

			switch p {
			case "%N", "%P", "%S", "%F":
			default:
				return curated.Errorf("unrecognised placeholder directive (%s)", w)
			}
		}

		addNode(n)
		return nil
	}

	i := 0
	for i < len(defn) {
		c := defn[i]

		switch c {
		case ' ':
			if err := commitWord(); err != nil {
				return nil, i, err
			}

		case '(', '[', '{':
			if err := commitWord(); err != nil {
				return nil, i, err
			}

			g, d, err := parseDefinition(defn[i+1:], string(c))
			if err != nil {
				return nil, i + d + 1, err
			}

			if c == '{' {
				// a repeat group loops back to its head node. the node that
				// triggers the repetition is the last node in the sequence,
				// which for groups headed by an empty-tag node is not the
				// head node itself
				g.repeatStart = true
				a := g
				if a.tag == "" && a.next != nil {
					a = a.next[len(a.next)-1]
				}
				a.repeat = g
				for bi := range a.branch {
					a.branch[bi].repeat = g
				}
				if a != g {
					for bi := range g.branch {
						g.branch[bi].repeat = g
					}
				}
			}

			addGroup(g)

			// skip over the group
			i += d + 1

		case ')', ']', '}':
			if (c == ')' && trigger != "(") || (c == ']' && trigger != "[") || (c == '}' && trigger != "{") {
				return nil, i, curated.Errorf("unexpected group close indicator (%c)", c)
			}

			if err := commitWord(); err != nil {
				return nil, i, err
			}

			if resultNode == nil {
				return nil, i, curated.Errorf("empty group")
			}
			if sequenceHead == nil {
				return nil, i, curated.Errorf("orphaned branch indicator")
			}

			return resultNode, i, nil

		case '|':
			if trigger == "" {
				return nil, i, curated.Errorf("branching not allowed at the top level")
			}

			if err := commitWord(); err != nil {
				return nil, i, err
			}

			if sequenceHead == nil {
				return nil, i, curated.Errorf("empty branch")
			}

			// subsequent words begin a new alternative
			sequenceHead = nil

		default:
			tag.WriteByte(c)
		}

		i++
	}

	if trigger != "" {
		return nil, i, curated.Errorf("unclosed group (%s)", trigger)
	}

	if err := commitWord(); err != nil {
		return nil, i, err
	}

	return resultNode, i, nil
}
