package main_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"

	main "github.com/fwojciec/sitedraft/cmd/sitedraft"
)

// newDeps returns dependencies writing to fresh buffers.
func newDeps() (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config: main.DefaultConfig(),
	}, stdout, stderr
}

const bakeryResponse = "Here is your site.\n\n" +
	"<!-- filename: index.html -->\n```html\n<h1>Rosa's Bakery</h1>\n```\n\n" +
	"<!-- filename: menu.html -->\n```html\n<h1>Menu</h1>\n```\n\n" +
	"```css\nh1 { color: brown; }\n```\n"
