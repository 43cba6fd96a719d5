// Package search decides how a needle is matched and filters lines with it.
//
// A needle is classified once: if it compiles under the regexp2 grammar it is
// a Pattern, otherwise it is a Literal and is searched for as raw text. The
// compiled pattern lives in a Matcher and is reused for every line, both for
// filtering and for locating occurrences to highlight.
//
// An invalid pattern silently falls back to literal search: "[a-z" looks for
// the four characters "[a-z". Callers rely on this; whether it should instead
// be reported is an open product question, so leave it unchanged.
package search
