package syntax

// parser holds the in-flight state of a single Parse call.
//
// seq accumulates completed sub-expressions of the current concatenation.
// seqOr accumulates completed concatenations as alternation branches.
// Every `(` snapshots both onto an explicit stack and `)` restores them,
// which substitutes for recursive descent: group nesting consumes heap,
// not call-stack frames.
type parser struct {
	seq   []*Regexp
	seqOr []*Regexp
	stack []parserFrame
}

// parserFrame is the snapshot saved when a group opens.
type parserFrame struct {
	seq   []*Regexp
	seqOr []*Regexp
}

// Parse converts a pattern into its abstract syntax tree.
// Positions in the returned *ParseError count runes, not bytes.
func Parse(pattern string) (*Regexp, error) {
	p := &parser{}
	escaped := false

	pos := 0
	for _, c := range pattern {
		if escaped {
			ast, err := parseEscape(pos, c)
			if err != nil {
				return nil, err
			}
			p.seq = append(p.seq, ast)
			escaped = false
			pos++
			continue
		}

		switch c {
		case '+':
			if err := p.wrapRepeat(OpPlus, pos); err != nil {
				return nil, err
			}
		case '*':
			if err := p.wrapRepeat(OpStar, pos); err != nil {
				return nil, err
			}
		case '?':
			if err := p.wrapRepeat(OpQuest, pos); err != nil {
				return nil, err
			}
		case '(':
			p.stack = append(p.stack, parserFrame{seq: p.seq, seqOr: p.seqOr})
			p.seq = nil
			p.seqOr = nil
		case ')':
			if err := p.closeGroup(pos); err != nil {
				return nil, err
			}
		case '|':
			if len(p.seq) == 0 {
				return nil, &ParseError{Code: ErrMissingArgument, Pos: pos}
			}
			p.seqOr = append(p.seqOr, &Regexp{Op: OpConcat, Sub: p.seq})
			p.seq = nil
		case '\\':
			escaped = true
		case '.':
			p.seq = append(p.seq, &Regexp{Op: OpAnyChar})
		case '^':
			p.seq = append(p.seq, &Regexp{Op: OpBeginText})
		case '$':
			p.seq = append(p.seq, &Regexp{Op: OpEndText})
		default:
			p.seq = append(p.seq, &Regexp{Op: OpChar, Rune: c})
		}
		pos++
	}

	if len(p.stack) != 0 {
		return nil, &ParseError{Code: ErrMissingRightParen, Pos: -1}
	}
	if len(p.seq) != 0 {
		p.seqOr = append(p.seqOr, &Regexp{Op: OpConcat, Sub: p.seq})
	}
	ast := foldAlternation(p.seqOr)
	if ast == nil {
		return nil, &ParseError{Code: ErrEmptyPattern, Pos: -1}
	}
	return ast, nil
}

// wrapRepeat replaces the most recent sub-expression with a quantified node.
func (p *parser) wrapRepeat(op Op, pos int) error {
	n := len(p.seq)
	if n == 0 {
		return &ParseError{Code: ErrMissingArgument, Pos: pos}
	}
	p.seq[n-1] = &Regexp{Op: op, Sub: []*Regexp{p.seq[n-1]}}
	return nil
}

// closeGroup pops the save stack, folds the group's alternation branches
// and appends the result to the enclosing concatenation. An empty group
// `()` contributes nothing.
func (p *parser) closeGroup(pos int) error {
	n := len(p.stack)
	if n == 0 {
		return &ParseError{Code: ErrInvalidRightParen, Pos: pos}
	}
	frame := p.stack[n-1]
	p.stack = p.stack[:n-1]

	if len(p.seq) != 0 {
		p.seqOr = append(p.seqOr, &Regexp{Op: OpConcat, Sub: p.seq})
	}
	group := foldAlternation(p.seqOr)

	p.seq = frame.seq
	p.seqOr = frame.seqOr
	if group != nil {
		p.seq = append(p.seq, group)
	}
	return nil
}

// parseEscape validates a backslash escape. Only the dialect's own
// metacharacters may be escaped.
func parseEscape(pos int, c rune) (*Regexp, error) {
	switch c {
	case '\\', '(', ')', '|', '+', '*', '?', '.':
		return &Regexp{Op: OpChar, Rune: c}, nil
	default:
		return nil, &ParseError{Code: ErrInvalidEscape, Pos: pos, Char: c}
	}
}

// foldAlternation combines alternation branches right-associatively into
// nested OpAlternate nodes. A single branch is returned as-is; no branches
// returns nil.
func foldAlternation(branches []*Regexp) *Regexp {
	n := len(branches)
	if n == 0 {
		return nil
	}
	ast := branches[n-1]
	for i := n - 2; i >= 0; i-- {
		ast = &Regexp{Op: OpAlternate, Sub: []*Regexp{branches[i], ast}}
	}
	return ast
}
