package golang

import (
	"golang.org/x/tools/imports"

	"github.com/broady/enumgen/ir"
)

// Format runs goimports over src, adding the fmt import the String method
// needs and applying gofmt layout. filename may be empty.
func Format(filename string, src []byte) ([]byte, error) {
	out, err := imports.Process(filename, src, &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, ir.TemplateError("", "formatting generated source").WithCause(err)
	}
	return out, nil
}
