package ja

import "strings"

const (
	Wildcard  = "*"
	Levels    = 4
	Separator = ","
)

// Pattern is a POS hierarchy padded to exactly four levels.
type Pattern [Levels]string

// Normalize copies at most four levels from parts; missing levels are Wildcard
// and anything past the fourth is dropped.
func Normalize(parts []string) Pattern {
	p := Pattern{Wildcard, Wildcard, Wildcard, Wildcard}
	for i := 0; i < len(parts) && i < Levels; i++ {
		p[i] = parts[i]
	}
	return p
}

// ParsePattern splits a raw tag such as "助詞,格助詞" and normalizes it.
func ParsePattern(raw string) Pattern {
	return Normalize(strings.Split(raw, Separator))
}

// TokenPattern takes the POS levels out of a token's details. Entries with
// fewer than four details only carry a single catch-all tag, so only the
// first one is used for them.
func TokenPattern(details []string) Pattern {
	n := 1
	if len(details) >= Levels {
		n = Levels
	}
	if len(details) < n {
		n = len(details)
	}
	return Normalize(details[:n])
}

func (p Pattern) String() string {
	return strings.Join(p[:], Separator)
}

// Depth counts the leading non-wildcard levels.
func (p Pattern) Depth() int {
	for i, v := range p {
		if v == Wildcard {
			return i
		}
	}
	return Levels
}
