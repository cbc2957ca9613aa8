package report

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/valyala/fasttemplate"
)

// Text writes one templated line per Result.
type Text struct {
	tmpl *fasttemplate.Template
}

// NewText parses tmpl. Only the digest, file and bytes tags are accepted.
func NewText(tmpl string) (*Text, error) {
	t, err := fasttemplate.NewTemplate(tmpl, "{{", "}}")
	if err != nil {
		return nil, errors.Wrap(err, "parse template")
	}

	// a dry run rejects unknown tags up front instead of on the first result
	if _, err := t.ExecuteFuncStringWithErr(func(w io.Writer, tag string) (int, error) {
		if !knownTag(tag) {
			return 0, errors.Errorf("unknown template tag %q", tag)
		}
		return 0, nil
	}); err != nil {
		return nil, err
	}

	return &Text{tmpl: t}, nil
}

func knownTag(tag string) bool {
	switch tag {
	case TagDigest, TagFile, TagBytes:
		return true
	}
	return false
}

// Format writes the line for r followed by a newline.
func (t *Text) Format(w io.Writer, r Result) error {
	line := t.tmpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		switch tag {
		case TagDigest:
			return io.WriteString(w, r.Hex())
		case TagFile:
			return io.WriteString(w, r.File)
		case TagBytes:
			return io.WriteString(w, strconv.FormatInt(r.Bytes, 10))
		}
		return 0, nil
	})
	_, err := io.WriteString(w, line+"\n")
	return errors.WithStack(err)
}
