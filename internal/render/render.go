// Package render turns a grouped catalog.Mirror into the static HTML index.
//
// Catalog text (titles, descriptions, file names) is written verbatim. The
// catalog is trusted input; anything that needs escaping must already be
// escaped by its author.
package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"

	"pocmirror/internal/catalog"
	"pocmirror/internal/digest"
	"pocmirror/internal/failure"
)

const (
	// DefaultTitle is the document heading.
	DefaultTitle = "International Journal of Proof-of-Concept or Get The Fuck Out (PoC||GTFO)"
	// DefaultLinkPrefix is prepended to file names in every link.
	DefaultLinkPrefix = "./files/"
	// issueLabel formats the link text of an issue's primary download.
	issueLabel = "POC||GTFO 0x%02d"
)

// Document is a rendered index together with every file hash computed
// while rendering, in render order.
type Document struct {
	HTML  []byte
	Files []digest.HashedFile
}

// Renderer renders mirrors. Files are read from src by name.
type Renderer struct {
	src        fs.FS
	title      string
	linkPrefix string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTitle overrides the document heading.
func WithTitle(title string) Option {
	return func(r *Renderer) {
		if title != "" {
			r.title = title
		}
	}
}

// WithLinkPrefix overrides the prefix used for file links.
func WithLinkPrefix(prefix string) Option {
	return func(r *Renderer) { r.linkPrefix = prefix }
}

// New returns a Renderer reading file content from src.
func New(src fs.FS, opts ...Option) *Renderer {
	r := &Renderer{
		src:        src,
		title:      DefaultTitle,
		linkPrefix: DefaultLinkPrefix,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render hashes every file referenced by m and produces the index. The
// first unreadable file aborts the render and no document is returned.
// ctx is checked before each issue is hashed.
func (r *Renderer) Render(ctx context.Context, m catalog.Mirror) (*Document, error) {
	var buf bytes.Buffer
	doc := &Document{}

	fmt.Fprintf(&buf, `<!doctype html><html><meta charset="utf-8"><h1>%s</h1>`, r.title)
	for _, y := range m.Years {
		hashed, err := r.writeYear(ctx, &buf, y)
		if err != nil {
			return nil, err
		}
		doc.Files = append(doc.Files, hashed...)
	}
	buf.WriteString("</html>")

	doc.HTML = buf.Bytes()
	return doc, nil
}

func (r *Renderer) writeYear(ctx context.Context, w *bytes.Buffer, y catalog.Year) ([]digest.HashedFile, error) {
	var all []digest.HashedFile
	fmt.Fprintf(w, "<h2>%d</h2><ul>", y.Year)
	for _, issue := range y.Issues {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		hashed, err := r.writeIssue(w, issue)
		if err != nil {
			return nil, err
		}
		all = append(all, hashed...)
	}
	w.WriteString("</ul>")
	return all, nil
}

func (r *Renderer) writeIssue(w *bytes.Buffer, issue catalog.Issue) ([]digest.HashedFile, error) {
	if err := issue.Validate(); err != nil {
		return nil, failure.New(failure.Input, "render issue", fmt.Sprintf("volume %d", issue.Volume), err)
	}

	hashed := make([]digest.HashedFile, 0, len(issue.Files))
	for _, f := range issue.Files {
		hf, err := digest.HashFile(r.src, f.Name())
		if err != nil {
			return nil, err
		}
		hashed = append(hashed, hf)
	}

	fmt.Fprintf(w, `<li><h3><a href="%s%s">`+issueLabel+`</a></h3>`,
		r.linkPrefix, issue.PrimaryFile().Name(), issue.Volume)
	fmt.Fprintf(w, "<ul><li>%s %d<li>%s<li>", issue.Month, issue.Year, issue.Description)
	r.writeFiles(w, hashed)
	w.WriteString("</ul>\n")
	return hashed, nil
}

// writeFiles emits the SHA-1 block, a blank line, then the SHA-256 block,
// both in the issue's declared file order.
func (r *Renderer) writeFiles(w io.Writer, hashed []digest.HashedFile) {
	io.WriteString(w, "<pre>")
	for _, hf := range hashed {
		fmt.Fprintf(w, "SHA1(%s) = %s\n", hf.SHA1, r.link(hf.Name))
	}
	io.WriteString(w, "\n")
	for _, hf := range hashed {
		fmt.Fprintf(w, "SHA256(%s) = %s\n", hf.SHA256, r.link(hf.Name))
	}
	io.WriteString(w, "</pre>")
}

func (r *Renderer) link(name string) string {
	return fmt.Sprintf(`<a href="%s%s">%s</a>`, r.linkPrefix, name, name)
}
