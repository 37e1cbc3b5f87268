//go:build tools
// +build tools

package tools

// Development tools tracked in go.mod: linting, migrations, swagger docs,
// mock generation and benchmark comparison.

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/swaggo/swag/cmd/swag"
	_ "github.com/vektra/mockery/v2"
	_ "golang.org/x/perf/cmd/benchstat"
)
