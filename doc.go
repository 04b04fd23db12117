// Package enumgen generates typed Go enumerations from YAML specs.
//
// A spec names the type, its package and underlying integer type, and maps
// integer codes to labels. The generated file declares one constant per code,
// a lookup table from value to label, a String method and an IsX function
// that reports whether a raw value is a defined member.
//
// Example:
//
//	src, err := enumgen.FromFile("command.yaml").
//	    WithGoimports().
//	    Generate()
//
// The enumgen command wraps the same pipeline:
//
//	//go:generate go run github.com/broady/enumgen/cmd/enumgen -o command_gen.go --goimports command.yaml
package enumgen
