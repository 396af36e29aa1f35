package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/sitedraft"
)

// Publisher extracts and publishes a response that was generated elsewhere.
type Publisher interface {
	Publish(ctx context.Context, prompt, raw string) *sitedraft.Submission
}

// MarkdownRenderer renders markdown for the terminal.
type MarkdownRenderer interface {
	Render(in string) (string, error)
}

// Server serves the preview API until ctx is canceled.
type Server interface {
	ListenAndServe(ctx context.Context, addr string) error
}

// Dependencies holds all services and configuration for command execution.
// Commands use only the fields their wiring sets.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config Config

	Artifacts     sitedraft.ArtifactService
	Submitter     sitedraft.Submitter
	Publisher     Publisher
	Tokens        sitedraft.TokenCounter
	SiteWriter    sitedraft.SiteWriter
	Screenshotter sitedraft.Screenshotter
	Converter     sitedraft.Converter
	Highlighter   sitedraft.Highlighter
	Titles        sitedraft.TitleExtractor
	Markdown      MarkdownRenderer
	Server        Server
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `type:"path" env:"SITEDRAFT_CONFIG" help:"Config file (default ~/.sitedraft/config.toml)"`
	Verbose bool   `short:"v" help:"Log debug output to stderr"`

	Generate   GenerateCmd   `cmd:"" help:"Generate a site from a prompt"`
	Extract    ExtractCmd    `cmd:"" help:"Extract pages from a saved model response"`
	List       ListCmd       `cmd:"" help:"List saved artifact sets"`
	Show       ShowCmd       `cmd:"" help:"Show a saved artifact set"`
	Export     ExportCmd     `cmd:"" help:"Write a saved artifact set as a static site"`
	Screenshot ScreenshotCmd `cmd:"" help:"Capture PNG screenshots of every page of a set"`
	Delete     DeleteCmd     `cmd:"" help:"Delete a saved artifact set"`
	Serve      ServeCmd      `cmd:"" help:"Run the preview server"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	Prompt string `arg:"" help:"Description of the site to build"`
	Out    string `short:"o" type:"path" help:"Also write the site to this directory"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File   string `arg:"" help:"Response file, or - for stdin"`
	JSON   bool   `help:"Print the extraction as JSON"`
	Page   string `short:"p" help:"Print the preview document of one page"`
	Out    string `short:"o" type:"path" help:"Write the site to this directory"`
	Save   bool   `short:"s" help:"Save the response and its pages"`
	Prompt string `help:"Prompt to record with --save"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Limit int `short:"n" default:"20" help:"Maximum number of sets to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Artifact set ID"`
	Text bool   `xor:"view" help:"Render the pages as text"`
	Code bool   `xor:"view" help:"Print highlighted source"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	ID      string `arg:"" help:"Artifact set ID"`
	Dir     string `arg:"" type:"path" help:"Output directory; pages from an earlier export are replaced"`
	BaseURL string `name:"base-url" help:"Public URL of the site; enables sitemap.xml"`
}

// ScreenshotCmd is the "screenshot" subcommand.
type ScreenshotCmd struct {
	ID   string `arg:"" help:"Artifact set ID"`
	Dir  string `arg:"" type:"path" help:"Directory for the PNG files"`
	Page string `short:"p" help:"Capture only this page"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Artifact set ID"`
	Force bool   `help:"Confirm deletion"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `short:"a" help:"Listen address (default from config)"`
}
