// Package selector retains a subset of an archive's conversations.
//
// A Selector is built once from the CLI flags, either from a set of
// identifiers or from a case-insensitive name pattern, and then applied to
// the loaded archive. Application preserves input order.
package selector

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/fyrsmithlabs/convoctl/internal/archive"
)

// ErrInvalidPattern indicates a name pattern that does not compile.
var ErrInvalidPattern = errors.New("invalid name pattern")

// Selector decides which conversations to retain.
type Selector interface {
	// Match reports whether the conversation should be retained.
	Match(c archive.Conversation) bool
	// String describes the selection criteria for log output.
	String() string
}

type byIdentifiers struct {
	ids map[string]struct{}
}

type byPattern struct {
	re *regexp.Regexp
}

// ByIdentifiers selects conversations whose uuid field is in ids.
// At least one identifier is required.
func ByIdentifiers(ids []string) (Selector, error) {
	if len(ids) == 0 {
		return nil, errors.New("at least one identifier is required")
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return &byIdentifiers{ids: set}, nil
}

// ByPattern selects conversations whose name matches expr, compiled
// case-insensitively. The pattern is searched anywhere in the name; an
// empty name never matches.
func ByPattern(expr string) (Selector, error) {
	re, err := regexp.Compile("(?i)" + expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, expr, err)
	}
	return &byPattern{re: re}, nil
}

func (s *byIdentifiers) Match(c archive.Conversation) bool {
	_, ok := s.ids[c.UUID]
	return ok
}

func (s *byIdentifiers) String() string {
	return fmt.Sprintf("%d identifier(s)", len(s.ids))
}

func (s *byPattern) Match(c archive.Conversation) bool {
	return c.Name != "" && s.re.MatchString(c.Name)
}

func (s *byPattern) String() string {
	return fmt.Sprintf("name pattern %q", s.re.String())
}

// Apply returns the conversations retained by sel, in input order.
func Apply(sel Selector, arc archive.Archive) archive.Archive {
	var retained archive.Archive
	for _, c := range arc {
		if sel.Match(c) {
			retained = append(retained, c)
		}
	}
	return retained
}
