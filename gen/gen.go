// Package gen holds generated code.
package gen

//go:generate go tool ogen --config ../.ogen.yml --target oas --package oas --clean ../api/openapi.yaml
