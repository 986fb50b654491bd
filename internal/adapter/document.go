package adapter

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	m "autotestfix.dev/pkg/autotestfix/internal/model"
)

var (
	// ErrUnresolved is returned when a location reference does not map to a file.
	ErrUnresolved = errors.New("location does not resolve to a document")
	// ErrLineOutOfRange is returned for line lookups past the end of the document.
	ErrLineOutOfRange = errors.New("line out of range")
	// ErrSpanOutOfRange is returned when an edit does not fit inside the document.
	ErrSpanOutOfRange = errors.New("span out of range")
)

// Transaction stages edits inside Document.Edit.
type Transaction interface {
	// Replace substitutes text for [start, end).
	Replace(start, end int, text string) error
}

// Document is a mutable, line-indexed text buffer for one source file.
type Document interface {
	Path() m.Path
	Text() string
	LineCount() int
	// LineStartOffset returns the offset of the first character of a zero-based line.
	LineStartOffset(line int) (int, error)
	// LineEndOffset returns the offset just before the line terminator of a zero-based line.
	LineEndOffset(line int) (int, error)
	// Edit runs fn as one all-or-nothing transaction: if fn or any staged edit fails,
	// the buffer is left unchanged.
	Edit(fn func(tx Transaction) error) error
	// Modified reports whether the buffer differs from the last saved content.
	Modified() bool
	// Save persists the buffer.
	Save(ctx context.Context) error
}

// DocumentAccess resolves location references to documents.
type DocumentAccess interface {
	Open(ctx context.Context, locationRef string) (Document, error)
}

// saveFunc persists document content.
type saveFunc func(ctx context.Context, path m.Path, content []byte) error

// TextDocument is an in-memory Document.
type TextDocument struct {
	path       m.Path
	text       string
	lineStarts []int
	modified   bool
	save       saveFunc
}

// NewTextDocument creates a document over text. A nil save makes Save a no-op.
func NewTextDocument(path m.Path, text string, save saveFunc) *TextDocument {
	doc := &TextDocument{
		path: path,
		save: save,
	}
	doc.reset(text)

	return doc
}

func (d *TextDocument) reset(text string) {
	d.text = text
	d.lineStarts = d.lineStarts[:0]
	d.lineStarts = append(d.lineStarts, 0)

	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			d.lineStarts = append(d.lineStarts, i+1)
		}
	}
}

// Path implements Document.
func (d *TextDocument) Path() m.Path {
	return d.path
}

// Text implements Document.
func (d *TextDocument) Text() string {
	return d.text
}

// LineCount implements Document.
func (d *TextDocument) LineCount() int {
	return len(d.lineStarts)
}

// LineStartOffset implements Document.
func (d *TextDocument) LineStartOffset(line int) (int, error) {
	if line < 0 || line >= len(d.lineStarts) {
		return 0, fmt.Errorf("%w: %d of %d in %s", ErrLineOutOfRange, line, len(d.lineStarts), d.path)
	}

	return d.lineStarts[line], nil
}

// LineEndOffset implements Document.
func (d *TextDocument) LineEndOffset(line int) (int, error) {
	if line < 0 || line >= len(d.lineStarts) {
		return 0, fmt.Errorf("%w: %d of %d in %s", ErrLineOutOfRange, line, len(d.lineStarts), d.path)
	}

	if line+1 < len(d.lineStarts) {
		end := d.lineStarts[line+1] - 1
		if end > 0 && d.text[end-1] == '\r' {
			end--
		}

		return end, nil
	}

	return len(d.text), nil
}

// LineAt returns the text of a zero-based line without its terminator.
func LineAt(doc Document, line int) (string, error) {
	start, err := doc.LineStartOffset(line)
	if err != nil {
		return "", err
	}

	end, err := doc.LineEndOffset(line)
	if err != nil {
		return "", err
	}

	return doc.Text()[start:end], nil
}

// Edit implements Document.
func (d *TextDocument) Edit(fn func(tx Transaction) error) error {
	tx := &textTransaction{text: d.text}

	if err := fn(tx); err != nil {
		return err
	}

	if len(tx.edits) == 0 {
		return nil
	}

	d.reset(tx.apply())
	d.modified = true

	return nil
}

// Modified implements Document.
func (d *TextDocument) Modified() bool {
	return d.modified
}

// Save implements Document.
func (d *TextDocument) Save(ctx context.Context) error {
	if !d.modified || d.save == nil {
		return nil
	}

	if err := d.save(ctx, d.path, []byte(d.text)); err != nil {
		return err
	}

	d.modified = false

	return nil
}

type textEdit struct {
	start, end int
	text       string
}

// textTransaction records edits against the text as it was when the transaction began.
type textTransaction struct {
	text  string
	edits []textEdit
}

// Replace implements Transaction.
func (tx *textTransaction) Replace(start, end int, text string) error {
	if start < 0 || end < start || end > len(tx.text) {
		return fmt.Errorf("%w: [%d, %d) of %d", ErrSpanOutOfRange, start, end, len(tx.text))
	}

	for _, other := range tx.edits {
		if start < other.end && other.start < end {
			return fmt.Errorf("%w: [%d, %d) overlaps [%d, %d)", ErrSpanOutOfRange, start, end, other.start, other.end)
		}
	}

	tx.edits = append(tx.edits, textEdit{start: start, end: end, text: text})

	return nil
}

func (tx *textTransaction) apply() string {
	edits := make([]textEdit, len(tx.edits))
	copy(edits, tx.edits)

	sort.Slice(edits, func(i, j int) bool {
		return edits[i].start < edits[j].start
	})

	var b strings.Builder

	last := 0
	for _, edit := range edits {
		b.WriteString(tx.text[last:edit.start])
		b.WriteString(edit.text)
		last = edit.end
	}

	b.WriteString(tx.text[last:])

	return b.String()
}
