package lexer

import "bytes"

// indentStack tracks nested indentations of non-empty lines.
// Indentations are compared as byte strings: a deeper indentation must start with
// the enclosing one, a shallower indentation must equal one of enclosing indentations.
type indentStack struct {
	stack [][]byte
	valid []byte
}

// Adjust emits INDENT or DEDENT tokens needed to switch to indentation current.
// Calls invalid and returns its result if current matches no enclosing level.
func (s *indentStack) Adjust(current []byte, emit func(Kind, []byte), invalid func() error) error {
	currentLen := len(current)
	validLen := len(s.valid)

	switch {
	case currentLen == validLen:
		if bytes.Equal(current, s.valid) {
			return nil
		}

	case currentLen > validLen:
		if bytes.HasPrefix(current, s.valid) {
			s.stack = append(s.stack, s.valid)
			s.valid = current
			emit(Indent, current)
			return nil
		}

	default:
		if !bytes.HasPrefix(s.valid, current) {
			break
		}

		for i := len(s.stack) - 1; i >= 0; i-- {
			if len(s.stack[i]) == currentLen {
				for range s.stack[i:] {
					emit(Dedent, nil)
				}
				s.valid = s.stack[i]
				s.stack = s.stack[:i]
				return nil
			}
		}
	}

	return invalid()
}

// Close emits DEDENT token for each open indentation level.
func (s *indentStack) Close(emit func(Kind, []byte)) {
	for range s.stack {
		emit(Dedent, nil)
	}
	s.stack = nil
	s.valid = nil
}
