package geometry

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// symbolValues are the tokens allowed inside size and gravity expressions.
// Edge names evaluate to the corresponding fraction of the axis they appear
// on, so "TOP" is 0 as an expression token but a full anchor as a gravity
// name.
var symbolValues = map[string]float64{
	"FULL":    1,
	"HALF":    0.5,
	"THIRD":   1.0 / 3,
	"QUARTER": 0.25,
	"LEFT":    0,
	"TOP":     0,
	"UP":      0,
	"RIGHT":   1,
	"BOTTOM":  1,
	"DOWN":    1,
	"MIDDLE":  0.5,
	"CENTER":  0.5,
}

// evalExpr evaluates an arithmetic expression over decimal numbers and
// symbolic tokens, with the usual * / over + - precedence.
func evalExpr(text string) (float64, error) {
	p := &exprParser{input: strings.TrimSpace(text)}
	if p.input == "" {
		return 0, fmt.Errorf("empty expression")
	}
	value, err := p.sum()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return 0, fmt.Errorf("unexpected %q in expression %q", p.input[p.pos:], text)
	}
	return value, nil
}

type exprParser struct {
	input string
	pos   int
}

func (p *exprParser) sum() (float64, error) {
	value, err := p.product()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.operator('+', '-')
		if !ok {
			return value, nil
		}
		right, err := p.product()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			value += right
		} else {
			value -= right
		}
	}
}

func (p *exprParser) product() (float64, error) {
	value, err := p.operand()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.operator('*', '/')
		if !ok {
			return value, nil
		}
		right, err := p.operand()
		if err != nil {
			return 0, err
		}
		if op == '*' {
			value *= right
		} else {
			if right == 0 {
				return 0, fmt.Errorf("division by zero in %q", p.input)
			}
			value /= right
		}
	}
}

func (p *exprParser) operand() (float64, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) {
		c := rune(p.input[p.pos])
		if unicode.IsDigit(c) || c == '.' {
			p.pos++
			continue
		}
		break
	}
	if p.pos > start {
		value, err := strconv.ParseFloat(p.input[start:p.pos], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number %q", p.input[start:p.pos])
		}
		return value, nil
	}
	for p.pos < len(p.input) {
		c := rune(p.input[p.pos])
		if unicode.IsLetter(c) || c == '_' {
			p.pos++
			continue
		}
		break
	}
	if p.pos == start {
		return 0, fmt.Errorf("expected number or token at %q", p.input[start:])
	}
	token := p.input[start:p.pos]
	value, ok := symbolValues[token]
	if !ok {
		return 0, fmt.Errorf("unknown token %q", token)
	}
	return value, nil
}

func (p *exprParser) operator(a, b byte) (byte, bool) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return 0, false
	}
	c := p.input[p.pos]
	if c != a && c != b {
		return 0, false
	}
	p.pos++
	return c, true
}

func (p *exprParser) skipSpace() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}
