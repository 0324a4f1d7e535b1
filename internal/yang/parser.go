// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ubicity Corp.

package yang

import (
	"fmt"
	"strings"
)

// Parse parses YANG source text into a statement tree. The root
// statement must be a module or submodule. Only the statement grammar
// of RFC 7950 §6.3 is enforced; statement-specific cardinality rules
// are not checked here.
func Parse(data []byte) (*Node, error) {
	p := &parser{src: string(data), line: 1}
	p.skipSpace()
	root, err := p.statement(nil)
	if err != nil {
		return nil, err
	}
	if root.Keyword != KwModule && root.Keyword != KwSubmodule {
		return nil, fmt.Errorf("line %d: expected module or submodule, found %q", 1, root.Keyword)
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, p.errorf("unexpected text after module statement")
	}
	return root, nil
}

type parser struct {
	src  string
	pos  int
	line int
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("line %d: %s", p.line, fmt.Sprintf(format, args...))
}

func (p *parser) statement(parent *Node) (*Node, error) {
	keyword, err := p.keyword()
	if err != nil {
		return nil, err
	}
	node := &Node{Keyword: keyword, Parent: parent}

	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, p.errorf("unexpected end of input in %q statement", keyword)
	}

	// Optional argument.
	if c := p.src[p.pos]; c != ';' && c != '{' {
		arg, err := p.argument()
		if err != nil {
			return nil, err
		}
		node.Argument = arg
		p.skipSpace()
	}

	if p.pos >= len(p.src) {
		return nil, p.errorf("unterminated %q statement", keyword)
	}
	switch p.src[p.pos] {
	case ';':
		p.pos++
		return node, nil
	case '{':
		p.pos++
		for {
			p.skipSpace()
			if p.pos >= len(p.src) {
				return nil, p.errorf("missing '}' in %q statement", keyword)
			}
			if p.src[p.pos] == '}' {
				p.pos++
				return node, nil
			}
			child, err := p.statement(node)
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, child)
		}
	default:
		return nil, p.errorf("expected ';' or '{' after %q", keyword)
	}
}

// keyword reads an unquoted identifier, optionally prefix-qualified
// (extension statements use "prefix:keyword").
func (p *parser) keyword() (string, error) {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if isAlnum(c) || c == '-' || c == '_' || c == '.' || c == ':' {
			p.pos++
			continue
		}
		break
	}
	if p.pos == start {
		return "", p.errorf("expected statement keyword")
	}
	return p.src[start:p.pos], nil
}

// argument reads a statement argument: either a sequence of quoted
// strings joined by '+', or a single unquoted token.
func (p *parser) argument() (string, error) {
	if c := p.src[p.pos]; c == '"' || c == '\'' {
		var sb strings.Builder
		for {
			part, err := p.quoted()
			if err != nil {
				return "", err
			}
			sb.WriteString(part)
			p.skipSpace()
			if p.pos < len(p.src) && p.src[p.pos] == '+' {
				p.pos++
				p.skipSpace()
				if p.pos >= len(p.src) || (p.src[p.pos] != '"' && p.src[p.pos] != '\'') {
					return "", p.errorf("expected quoted string after '+'")
				}
				continue
			}
			return sb.String(), nil
		}
	}
	return p.unquoted()
}

func (p *parser) unquoted() (string, error) {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ';' || c == '{' || c == '}' {
			break
		}
		// Comment introducers terminate an unquoted argument.
		if c == '/' && p.pos+1 < len(p.src) && (p.src[p.pos+1] == '/' || p.src[p.pos+1] == '*') {
			break
		}
		p.pos++
	}
	if p.pos == start {
		return "", p.errorf("expected statement argument")
	}
	return p.src[start:p.pos], nil
}

func (p *parser) quoted() (string, error) {
	quote := p.src[p.pos]
	p.pos++
	var sb strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == quote:
			p.pos++
			return sb.String(), nil
		case c == '\\' && quote == '"':
			// Double-quoted strings support \n, \t, \", and \\.
			p.pos++
			if p.pos >= len(p.src) {
				return "", p.errorf("unterminated string")
			}
			switch p.src[p.pos] {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			default:
				sb.WriteByte('\\')
				sb.WriteByte(p.src[p.pos])
			}
			p.pos++
		default:
			if c == '\n' {
				p.line++
			}
			sb.WriteByte(c)
			p.pos++
		}
	}
	return "", p.errorf("unterminated string")
}

// skipSpace consumes whitespace and both comment forms.
func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == '\n':
			p.line++
			p.pos++
		case c == ' ' || c == '\t' || c == '\r':
			p.pos++
		case c == '/' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '/':
			for p.pos < len(p.src) && p.src[p.pos] != '\n' {
				p.pos++
			}
		case c == '/' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '*':
			p.pos += 2
			for p.pos < len(p.src) {
				if p.src[p.pos] == '\n' {
					p.line++
				}
				if p.src[p.pos] == '*' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '/' {
					p.pos += 2
					break
				}
				p.pos++
			}
		default:
			return
		}
	}
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
