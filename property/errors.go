package property

import "fmt"

// ErrNotLexable indicates the raw input contains a token the lexer does
// not recognize.
type ErrNotLexable struct {
	Raw   string
	Token string
}

func (e ErrNotLexable) Error() string {
	return fmt.Sprintf("property: %q not lexable at %q", e.Raw, e.Token)
}

// ErrNotParseable indicates the raw input lexes cleanly but does not
// match the CTL grammar.
type ErrNotParseable struct {
	Raw string
}

func (e ErrNotParseable) Error() string {
	return fmt.Sprintf("property: %q not parseable", e.Raw)
}
