// Package segment turns raw content identifiers into the ordered name
// segments used as nesting levels of a composed data tree.
package segment

import "strings"

// Delimiters lists every character that splits an identifier. Path
// separators and the extension dot are treated as equivalent split points.
const Delimiters = `\/.`

// Tokens splits id at every delimiter and drops empty tokens.
func Tokens(id string) []string {
	return strings.FieldsFunc(id, isDelimiter)
}

// Normalize splits id at every delimiter, drops empty tokens and, when more
// than one token remains, drops the trailing one as a file extension.
//
// Casing and whitespace are preserved. Normalize never fails; an identifier
// made only of delimiters yields a nil slice.
func Normalize(id string) []string {
	tokens := Tokens(id)
	if len(tokens) > 1 {
		tokens = tokens[:len(tokens)-1]
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// Join renders segments back into a readable slash path, used in logs and errors.
func Join(segments []string) string {
	return strings.Join(segments, "/")
}

func isDelimiter(r rune) bool {
	return strings.ContainsRune(Delimiters, r)
}
