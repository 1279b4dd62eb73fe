package renamer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// titleStopWords stay lower-case in title mode unless they open or
// close the stem.
var titleStopWords = map[string]bool{
	"a": true, "an": true, "the": true,
	"and": true, "but": true, "or": true, "for": true, "nor": true,
	"as": true, "at": true, "by": true, "from": true, "in": true,
	"into": true, "near": true, "of": true, "on": true, "onto": true,
	"to": true, "with": true,
}

// wordSeparators matches the runs that delimit words in title mode.
var wordSeparators = regexp.MustCompile(`[\s_-]+`)

// ChangeCase transforms the stem of name according to option, leaving
// the extension untouched. Unknown options return the name unchanged.
func ChangeCase(name string, option CaseOption) string {
	stem, ext := SplitName(name)
	switch option {
	case CaseLower:
		return strings.ToLower(stem) + ext
	case CaseUpper:
		return strings.ToUpper(stem) + ext
	case CaseTitle:
		return TitleCase(stem) + ext
	default:
		return name
	}
}

// TitleCase capitalizes each word of text, keeping separator runs
// (whitespace, hyphens, underscores) exactly as they appear. Short
// function words stay lower-case unless they are the first or last
// token. A word containing an apostrophe capitalizes both sides, so
// "o'connor's" becomes "O'Connor's".
func TitleCase(text string) string {
	tokens := splitOnSeparators(text)
	for i := 0; i < len(tokens); i += 2 {
		word := tokens[i]
		if word == "" {
			continue
		}
		switch {
		case strings.Contains(word, "'"):
			parts := strings.SplitN(word, "'", 2)
			tokens[i] = capitalize(parts[0]) + "'" + capitalize(parts[1])
		case titleStopWords[strings.ToLower(word)] && i != 0 && i != len(tokens)-1:
			tokens[i] = strings.ToLower(word)
		default:
			tokens[i] = capitalize(word)
		}
	}
	return strings.Join(tokens, "")
}

// splitOnSeparators returns alternating word and separator tokens. The
// slice always starts and ends with a word token, which may be empty
// when text starts or ends with a separator.
func splitOnSeparators(text string) []string {
	spans := wordSeparators.FindAllStringIndex(text, -1)
	tokens := make([]string, 0, 2*len(spans)+1)
	last := 0
	for _, span := range spans {
		tokens = append(tokens, text[last:span[0]], text[span[0]:span[1]])
		last = span[1]
	}
	return append(tokens, text[last:])
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(word string) string {
	if word == "" {
		return word
	}
	r, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
}
