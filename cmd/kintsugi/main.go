// Package main is the single-binary entrypoint for Kintsugi.
// A local-first accomplishment journal — one binary, your data stays home.
package main

import "github.com/kintsugi-journal/kintsugi/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
