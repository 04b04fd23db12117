// Package cell holds enumerations generated from the specs in this
// directory. It doubles as the fixture that checks generated code compiles
// and behaves as documented.
package cell

//go:generate go run github.com/broady/enumgen/cmd/enumgen --goimports -o command_gen.go command.yaml
//go:generate go run github.com/broady/enumgen/cmd/enumgen --goimports -o link_spec_type_gen.go link_spec_type.yaml
