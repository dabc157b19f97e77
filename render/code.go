package render

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

var codeKeywords = map[string]bool{
	"import": true, "from": true, "export": true, "const": true, "let": true,
	"true": true, "false": true, "function": true, "return": true,
	"npm": true, "install": true, "go": true, "get": true,
	"package": true, "func": true, "var": true, "type": true, "nil": true,
	"if": true, "for": true, "range": true, "defer": true,
}

// CodeBlock is a bordered snippet with light token coloring
type CodeBlock struct {
	Lines []string
}

// NewCodeBlock splits src into lines, tabs become two spaces
func NewCodeBlock(src string) *CodeBlock {
	src = strings.ReplaceAll(strings.TrimSpace(src), "\t", "  ")
	return &CodeBlock{Lines: strings.Split(src, "\n")}
}

// Height returns rows needed including the border
func (c *CodeBlock) Height() int {
	return len(c.Lines) + 2
}

// Draw renders the snippet, long lines are clipped
func (c *CodeBlock) Draw(r Region, pal Palette) {
	inner := r.Box(LineRounded, pal.Border, pal.CardBg)
	for i, line := range c.Lines {
		x := 1
		for _, tok := range Tokenize(line) {
			x += inner.Text(x, i, tok.Text, tok.color(pal), pal.CardBg, tok.attrs())
		}
	}
}

// TokenKind classifies a snippet token
type TokenKind uint8

const (
	TokenPlain TokenKind = iota
	TokenKeyword
	TokenString
	TokenComment
	TokenTag
)

// Token is a run of snippet text with one kind
type Token struct {
	Kind TokenKind
	Text string
}

func (t Token) color(pal Palette) colorful.Color {
	switch t.Kind {
	case TokenKeyword:
		return pal.Keyword
	case TokenString:
		return pal.String
	case TokenComment:
		return pal.Comment
	case TokenTag:
		return pal.Tag
	}
	return pal.Text
}

func (t Token) attrs() tcell.AttrMask {
	if t.Kind == TokenComment {
		return tcell.AttrItalic
	}
	return tcell.AttrNone
}

// Tokenize splits one line into comment, string, tag, keyword and plain runs
func Tokenize(line string) []Token {
	var toks []Token
	emit := func(kind TokenKind, s string) {
		if s == "" {
			return
		}
		if n := len(toks); n > 0 && toks[n-1].Kind == kind {
			toks[n-1].Text += s
			return
		}
		toks = append(toks, Token{Kind: kind, Text: s})
	}

	rs := []rune(line)
	for i := 0; i < len(rs); {
		ch := rs[i]
		switch {
		case ch == '/' && i+1 < len(rs) && rs[i+1] == '/':
			emit(TokenComment, string(rs[i:]))
			return toks
		case ch == '"' || ch == '\'' || ch == '`':
			j := i + 1
			for j < len(rs) && rs[j] != ch {
				j++
			}
			if j < len(rs) {
				j++
			}
			emit(TokenString, string(rs[i:j]))
			i = j
		case ch == '<':
			j := i + 1
			if j < len(rs) && rs[j] == '/' {
				j++
			}
			for j < len(rs) && (unicode.IsLetter(rs[j]) || unicode.IsDigit(rs[j])) {
				j++
			}
			if j < len(rs) && rs[j] == '>' {
				j++
			}
			emit(TokenTag, string(rs[i:j]))
			i = j
		case ch == '>' || (ch == '/' && i+1 < len(rs) && rs[i+1] == '>'):
			j := i + 1
			if ch == '/' {
				j++
			}
			emit(TokenTag, string(rs[i:j]))
			i = j
		case unicode.IsLetter(ch) || ch == '_':
			j := i
			for j < len(rs) && (unicode.IsLetter(rs[j]) || unicode.IsDigit(rs[j]) || rs[j] == '_') {
				j++
			}
			word := string(rs[i:j])
			if codeKeywords[word] {
				emit(TokenKeyword, word)
			} else {
				emit(TokenPlain, word)
			}
			i = j
		default:
			emit(TokenPlain, string(ch))
			i++
		}
	}
	return toks
}
