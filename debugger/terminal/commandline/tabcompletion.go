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
	"strconv"
	"strings"
)

// TabCompletion provides tab completion for an instance of Commands.
type TabCompletion struct {
	cmds *Commands

	// the options for the current completion session filtered by the word
	// being completed
	options []string
	opt     int

	// the words preceding the completed word, exactly as the user typed them
	stub string

	// the string returned by the previous call to Complete(). if the next
	// call receives this exact string as input then the user is cycling
	// through the options
	lastCompletion string
}

// NewTabCompletion is the preferred method of initialisation for the
// TabCompletion type.
func NewTabCompletion(cmds *Commands) *TabCompletion {
	return &TabCompletion{cmds: cmds}
}

// Complete transforms the input such that the last word in the string is
// expanded to the next available completion option. if no completion is
// possible the input is returned unchanged.
func (tc *TabCompletion) Complete(input string) string {
	// the same input as the last completion means the user is cycling
	// through the options
	if len(tc.options) > 0 && input == tc.lastCompletion {
		tc.opt++
		if tc.opt >= len(tc.options) {
			tc.opt = 0
		}
		tc.lastCompletion = tc.build()
		return tc.lastCompletion
	}

	// a new completion session
	tc.Reset()

	words := tokeniseInput(input)
	if len(words) == 0 {
		return input
	}

	// the word being completed and the words (as typed) that precede it
	guess := strings.ToUpper(words[len(words)-1])
	context := words[:len(words)-1]

	var candidates []string

	if len(context) == 0 {
		// completing the command word itself
		for _, n := range tc.cmds.cmds {
			candidates = append(candidates, n.tag)
		}
	} else {
		// look up the command and walk its argument template with the
		// remaining context words
		n, ok := tc.cmds.Index[strings.ToUpper(context[0])]
		if !ok {
			return input
		}

		tokens := &Tokens{tokens: context[1:]}
		tc.options = tc.options[:0]
		if !tc.seqCompletion(n.next, tokens) || !tokens.IsEnd() {
			tc.options = tc.options[:0]
			return input
		}
		candidates = tc.options
	}

	// filter candidates by the word being completed
	tc.options = make([]string, 0, len(candidates))
	for _, c := range candidates {
		if strings.HasPrefix(c, guess) {
			tc.options = append(tc.options, c)
		}
	}

	if len(tc.options) == 0 {
		return input
	}

	tc.stub = strings.Join(context, " ")
	tc.lastCompletion = tc.build()

	return tc.lastCompletion
}

// Reset can be used to ensure the next call to Complete() is treated as a
// new completion session.
func (tc *TabCompletion) Reset() {
	tc.options = tc.options[:0]
	tc.opt = 0
	tc.stub = ""
	tc.lastCompletion = ""
}

// build the completed input from the current option. a trailing space is
// added so that the user can continue typing (or tabbing) immediately.
func (tc *TabCompletion) build() string {
	s := strings.Builder{}
	if tc.stub != "" {
		s.WriteString(tc.stub)
		s.WriteString(" ")
	}
	s.WriteString(tc.options[tc.opt])
	s.WriteString(" ")
	return s.String()
}

// seqCompletion matches tokens against a sequence of nodes. once the tokens
// are exhausted, candidate options are gathered from the position reached.
// returns false if the tokens cannot be matched against the sequence.
func (tc *TabCompletion) seqCompletion(seq []*node, tokens *Tokens) bool {
	for _, n := range seq {
		if tokens.IsEnd() {
			tc.collect(n)

			// optional nodes mean that candidates can also be gathered from
			// the nodes that follow
			if n.typ != nodeOptional {
				return true
			}
			continue
		}

		if !tc.nodeCompletion(n, tokens) {
			if n.typ == nodeOptional {
				continue
			}
			return false
		}
	}

	return true
}

// nodeCompletion matches tokens against a single node position, including
// any repetition of the node's group.
func (tc *TabCompletion) nodeCompletion(n *node, tokens *Tokens) bool {
	if !tc.tryAlternatives(n, tokens) {
		return false
	}

	if n.repeatStart {
		for !tokens.IsEnd() {
			if !tc.tryAlternatives(n, tokens) {
				break
			}
		}
		if tokens.IsEnd() {
			// the group can repeat so its words are candidates once more
			tc.collect(n)
		}
	}

	return true
}

// tryAlternatives matches tokens against each alternative of a node in turn,
// rewinding the token list between attempts.
func (tc *TabCompletion) tryAlternatives(n *node, tokens *Tokens) bool {
	mark := tokens.curr

	if tc.altCompletion(n, tokens) {
		return true
	}
	tokens.curr = mark

	for bi := range n.branch {
		if tc.altCompletion(n.branch[bi], tokens) {
			return true
		}
		tokens.curr = mark
	}

	return false
}

// altCompletion matches tokens against a single alternative - the alternative
// head node followed by the sequence hanging from it.
func (tc *TabCompletion) altCompletion(a *node, tokens *Tokens) bool {
	if a.tag == "" {
		if a.next == nil {
			return false
		}
		return tc.seqCompletion(a.next, tokens)
	}

	tok, ok := tokens.Get()
	if !ok {
		return false
	}
	tok = strings.ToUpper(tok)

	switch a.tag {
	case "%N":
		if _, err := strconv.ParseInt(tok, 0, 32); err != nil {
			return false
		}
	case "%P":
		if _, err := strconv.ParseFloat(tok, 32); err != nil {
			return false
		}
	case "%S", "%F":
		// placeholders that match any word
	default:
		if tok != a.tag {
			return false
		}
	}

	return tc.seqCompletion(a.next, tokens)
}

// collect gathers the candidate options for a node - the node's own tag, the
// tags of its branches and, for nodes with an empty tag, the tags gathered
// from the sequence hanging from the node. placeholders are never candidates.
func (tc *TabCompletion) collect(n *node) {
	if n.tag == "" {
		tc.collectSequence(n.next)
	} else if !n.isPlaceholder() {
		tc.options = append(tc.options, n.tag)
	}

	for bi := range n.branch {
		tc.collect(n.branch[bi])
	}
}

// collectSequence gathers candidate options from a sequence of nodes,
// stopping at the first node that is not optional.
func (tc *TabCompletion) collectSequence(seq []*node) {
	for _, n := range seq {
		tc.collect(n)
		if n.typ != nodeOptional {
			return
		}
	}
}
