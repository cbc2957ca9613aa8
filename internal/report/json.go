package report

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type record struct {
	File  string `json:"file"`
	MD5   string `json:"md5"`
	Bytes int64  `json:"bytes"`
}

// JSON writes one object per line.
type JSON struct{}

func (JSON) Format(w io.Writer, r Result) error {
	return errors.WithStack(json.NewEncoder(w).Encode(record{
		File:  r.File,
		MD5:   r.Hex(),
		Bytes: r.Bytes,
	}))
}
