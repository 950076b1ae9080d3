package repl

import (
	"reflect"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/expr-lang/expr/builtin"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/synbuild/script"
)

// ctrlCommands are the available control-mode commands.
//
//nolint:gochecknoglobals
var ctrlCommands = []string{
	"help", "list", "format", "pretty", "tree", "edit", "clear", "quit",
}

// isWordBoundary returns true if the rune is a word delimiter for completion
// purposes. This includes whitespace, the member-access dot, and expr-lang
// operator/punctuation characters.
func isWordBoundary(r rune) bool {
	switch r {
	case '.', ' ', '\t',
		'(', ')', '[', ']', '{', '}',
		'+', '-', '*', '/', '%',
		'<', '>', '=', '!',
		'&', '|', ',', '?', ':', ';', '"', '\'':
		return true
	}

	return false
}

// wordBounds returns the current word at the cursor position and its byte
// boundaries within input.
// Returns an empty word when the cursor sits on a boundary (after a space,
// after a dot, start of line, etc.).
func wordBounds(input string, cursor int) (word string, start, end int) {
	if cursor > len(input) {
		cursor = len(input)
	}

	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// afterDot reports whether the word starting at wordStart is a member access,
// as in the "With" of `variant("A").With`.
func afterDot(input string, wordStart int) bool {
	return wordStart > 0 && input[wordStart-1] == '.'
}

// setStrings returns the elements of a string treeset in order.
func setStrings(set *treeset.Set) []string {
	out := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		out = append(out, v.(string)) //nolint:forcetypeassert
	}

	return out
}

// topLevelNames returns the sorted names completed at the start of an
// expression: the script environment and the expr-lang builtins.
//
//nolint:gochecknoglobals
var topLevelNames = sync.OnceValue(func() []string {
	set := treeset.NewWithStringComparator()

	for _, name := range script.Names() {
		set.Add(name)
	}

	for name := range exprLangBuiltins {
		set.Add(name)
	}

	return setStrings(set)
})

// methodTypes maps each exported method name of the node types returned by
// the script constructors to its type, receiver excluded.
//
//nolint:gochecknoglobals
var methodTypes = sync.OnceValue(func() map[string]reflect.Type {
	types := make(map[string]reflect.Type)

	for _, name := range script.Names() {
		fn, ok := script.Func(name)
		if !ok {
			continue
		}

		ft := reflect.TypeOf(fn)
		if ft.Kind() != reflect.Func || ft.NumOut() == 0 {
			continue
		}

		rt := ft.Out(0)
		for i := range rt.NumMethod() {
			m := rt.Method(i)
			if !m.IsExported() {
				continue
			}

			if _, seen := types[m.Name]; seen {
				continue
			}

			mt := m.Type
			if rt.Kind() != reflect.Interface {
				mt = dropReceiver(mt)
			}

			types[m.Name] = mt
		}
	}

	return types
})

// methodNames returns the sorted names of [methodTypes].
//
//nolint:gochecknoglobals
var methodNames = sync.OnceValue(func() []string {
	set := treeset.NewWithStringComparator()

	for name := range methodTypes() {
		set.Add(name)
	}

	return setStrings(set)
})

// dropReceiver returns the method type t without its leading receiver.
func dropReceiver(t reflect.Type) reflect.Type {
	in := make([]reflect.Type, 0, t.NumIn()-1)
	for i := 1; i < t.NumIn(); i++ {
		in = append(in, t.In(i))
	}

	out := make([]reflect.Type, t.NumOut())
	for i := range out {
		out[i] = t.Out(i)
	}

	return reflect.FuncOf(in, out, t.IsVariadic())
}

// computeMatches calculates the fuzzy match results for the word at the cursor.
// It returns the matches (ranked best-first), the candidate list, and the word
// boundaries. When the current word is empty at the top level, it returns nil
// matches. When the word is empty after a dot (member access), it returns all
// methods as matches.
func (m model) computeMatches() (
	matches fuzzy.Matches,
	candidates []string,
	wordStart, wordEnd int,
) {
	input := m.input.Value()
	cursor := m.input.Position()

	word, ws, we := wordBounds(input, cursor)
	wordStart, wordEnd = ws, we

	member := false

	if m.mode == modeCtrl {
		if word == "" || strings.ContainsRune(input[:wordStart], ' ') {
			return nil, nil, wordStart, wordEnd
		}

		candidates = ctrlCommands
	} else {
		member = afterDot(input, wordStart)
		if member {
			candidates = methodNames()
		} else {
			candidates = topLevelNames()
		}
	}

	if word == "" {
		if !member {
			return nil, nil, wordStart, wordEnd
		}

		matches = make(fuzzy.Matches, len(candidates))
		for i, c := range candidates {
			matches[i] = fuzzy.Match{Str: c, Index: i}
		}

		return matches, candidates, wordStart, wordEnd
	}

	matches = fuzzy.Find(word, candidates)

	return matches, candidates, wordStart, wordEnd
}

// renderCandidateBar builds the single-line completion bar, ellipsized to fit
// within the given terminal width. Each candidate is rendered with its matched
// characters highlighted. The selected candidate (when tabbing) uses the
// selected style.
func renderCandidateBar(
	matches fuzzy.Matches,
	suggIdx int,
	tabActive bool,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	sepWidth := lipgloss.Width(sep)
	ellipsis := hintStyle.Render("...")
	ellipsisWidth := lipgloss.Width(ellipsis)

	var b strings.Builder

	used := 0

	for i, match := range matches {
		selected := tabActive && i == suggIdx
		rendered := renderCandidate(match, selected)

		entryWidth := lipgloss.Width(rendered)
		if i > 0 {
			entryWidth += sepWidth
		}

		if used+entryWidth+ellipsisWidth > width && i > 0 {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entryWidth
	}

	return b.String()
}

// renderCandidate renders a single candidate with matched characters
// highlighted. Functions are displayed with a "()" suffix.
func renderCandidate(match fuzzy.Match, selected bool) string {
	baseStyle := suggestionStyle
	highlightStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("4")).
		Bold(true)

	if selected {
		baseStyle = selectedStyle
		highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4")).
			Bold(true)
	}

	matchSet := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matchSet[idx] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		if matchSet[i] {
			b.WriteString(highlightStyle.Render(string(r)))
		} else {
			b.WriteString(baseStyle.Render(string(r)))
		}
	}

	if isFunction(match.Str) {
		b.WriteString(baseStyle.Render("()"))
	}

	return b.String()
}

// isFunction reports whether name is callable: an expr-lang builtin, a
// function of the script environment or a builder method.
func isFunction(name string) bool {
	if _, ok := builtin.Index[name]; ok {
		return true
	}

	if _, ok := methodTypes()[name]; ok {
		return true
	}

	v, ok := envValue(name)

	return ok && reflect.TypeOf(v).Kind() == reflect.Func
}

// envValue looks up name in the script environment.
//
//nolint:gochecknoglobals
var envValue = func() func(string) (any, bool) {
	env := sync.OnceValue(script.Env)

	return func(name string) (any, bool) {
		v, ok := env()[name]

		return v, ok && v != nil
	}
}()
