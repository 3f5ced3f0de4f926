// Package source defines source file and source position types used by lexer.
package source

import (
	"bytes"
	"sort"
	"unicode/utf8"
)

// Source contains source name and content. Source is immutable.
type Source struct {
	name       string
	content    []byte
	lineStarts []int
}

// New creates new Source.
func New(name string, content []byte) *Source {
	s := &Source{name: name, content: content}
	lineCnt := bytes.Count(content, []byte("\n")) + 1
	s.lineStarts = make([]int, 1, lineCnt)
	for i, b := range content {
		if b == '\n' {
			s.lineStarts = append(s.lineStarts, i+1)
		}
	}

	return s
}

// Name returns source name, may be empty.
func (s *Source) Name() string {
	return s.name
}

// Content returns source content. Caller must not modify it.
func (s *Source) Content() []byte {
	return s.content
}

// Len returns content length in bytes.
func (s *Source) Len() int {
	return len(s.content)
}

// Lines returns the number of lines, a trailing newline starts an empty last line.
func (s *Source) Lines() int {
	return len(s.lineStarts)
}

// LineCol returns 1-based line and column numbers for byte position pos.
// Columns are counted in runes. Out-of-range positions are clamped.
func (s *Source) LineCol(pos int) (line, col int) {
	if pos < 0 {
		pos = 0
	} else if pos > len(s.content) {
		pos = len(s.content)
	}

	lineIndex := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > pos
	}) - 1
	lineStart := s.lineStarts[lineIndex]
	return lineIndex + 1, utf8.RuneCount(s.content[lineStart:pos]) + 1
}

// Pos describes a position in source.
type Pos struct {
	src            *Source
	pos, line, col int
}

// NewPos creates position info for byte position pos in src.
func NewPos(src *Source, pos int) Pos {
	line, col := src.LineCol(pos)
	return Pos{src, pos, line, col}
}

func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	}

	return p.src.name
}

func (p Pos) Pos() int {
	return p.pos
}

func (p Pos) Line() int {
	return p.line
}

func (p Pos) Col() int {
	return p.col
}
