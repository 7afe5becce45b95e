// Package subject loads and cleans the text handed to the grader.
//
// [Normalize] trims the input, unifies line endings and converts HTML
// documents to Markdown with github.com/JohannesKaufmann/html-to-markdown/v2,
// so essays exported from web editors are graded on their text rather than
// their markup. [Load] reads a subject from a file, from stdin ("-") or from
// an http(s) URL.
package subject
