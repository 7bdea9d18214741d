// Package syntax parses a restricted regular-expression dialect into an
// abstract syntax tree.
//
// The dialect supports literal characters, the `.` wildcard, the `^` and `$`
// whole-input assertions, the `+` `*` `?` quantifiers, alternation with `|`,
// grouping with parentheses, and backslash escapes of the metacharacters
// themselves. Character classes, captures and lazy quantifiers are not part
// of the dialect.
//
// Parsing is iterative: parenthesis nesting is tracked on an explicit stack
// of snapshots, so nesting depth is bounded by memory, not by the call stack.
//
// Example:
//
//	ast, err := syntax.Parse("abc|(de|cd)+")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(ast)
package syntax

import (
	"fmt"
	"strings"
)

// Op identifies the kind of an AST node.
type Op uint8

const (
	// OpChar matches a single literal rune.
	OpChar Op = iota

	// OpAnyChar matches any single rune (`.`).
	OpAnyChar

	// OpBeginText asserts position 0 without consuming input (`^`).
	OpBeginText

	// OpEndText asserts the end-of-input position without consuming (`$`).
	OpEndText

	// OpPlus matches its sub-expression one or more times (`+`).
	OpPlus

	// OpStar matches its sub-expression zero or more times (`*`).
	OpStar

	// OpQuest matches its sub-expression zero or one time (`?`).
	OpQuest

	// OpAlternate matches either of its two sub-expressions (`|`).
	// Alternation lists fold right-associatively into nested binary nodes.
	OpAlternate

	// OpConcat matches its sub-expressions in order.
	OpConcat
)

// String returns a human-readable name for the Op.
func (op Op) String() string {
	switch op {
	case OpChar:
		return "Char"
	case OpAnyChar:
		return "AnyChar"
	case OpBeginText:
		return "BeginText"
	case OpEndText:
		return "EndText"
	case OpPlus:
		return "Plus"
	case OpStar:
		return "Star"
	case OpQuest:
		return "Quest"
	case OpAlternate:
		return "Alternate"
	case OpConcat:
		return "Concat"
	default:
		return fmt.Sprintf("Unknown(%d)", op)
	}
}

// Regexp is a node in the abstract syntax tree of a parsed pattern.
// Each node exclusively owns its children; the tree is finite and acyclic.
//
// Which fields are valid depends on Op:
//   - OpChar: Rune
//   - OpPlus, OpStar, OpQuest: Sub[0]
//   - OpAlternate: Sub[0], Sub[1]
//   - OpConcat: Sub (match order)
//   - OpAnyChar, OpBeginText, OpEndText: no operands
type Regexp struct {
	Op   Op
	Rune rune
	Sub  []*Regexp
}

// Equal reports whether two trees are structurally identical.
func (re *Regexp) Equal(other *Regexp) bool {
	if re == nil || other == nil {
		return re == other
	}
	if re.Op != other.Op || re.Rune != other.Rune || len(re.Sub) != len(other.Sub) {
		return false
	}
	for i, sub := range re.Sub {
		if !sub.Equal(other.Sub[i]) {
			return false
		}
	}
	return true
}

// String renders the tree in a compact prefix form, e.g.
// "Alternate(Concat(Char(a),Char(b)),Char(c))".
func (re *Regexp) String() string {
	var b strings.Builder
	re.writeTo(&b)
	return b.String()
}

func (re *Regexp) writeTo(b *strings.Builder) {
	if re == nil {
		b.WriteString("<nil>")
		return
	}
	b.WriteString(re.Op.String())
	switch re.Op {
	case OpChar:
		b.WriteByte('(')
		b.WriteRune(re.Rune)
		b.WriteByte(')')
	case OpAnyChar, OpBeginText, OpEndText:
		// no operands
	default:
		b.WriteByte('(')
		for i, sub := range re.Sub {
			if i > 0 {
				b.WriteByte(',')
			}
			sub.writeTo(b)
		}
		b.WriteByte(')')
	}
}
