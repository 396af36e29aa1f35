package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/glamour"
	"github.com/fwojciec/sitedraft"
	"github.com/fwojciec/sitedraft/chroma"
	"github.com/fwojciec/sitedraft/fs"
	"github.com/fwojciec/sitedraft/gemini"
	"github.com/fwojciec/sitedraft/goquery"
	"github.com/fwojciec/sitedraft/groq"
	"github.com/fwojciec/sitedraft/htmltomarkdown"
	sdhttp "github.com/fwojciec/sitedraft/http"
	"github.com/fwojciec/sitedraft/pipeline"
	"github.com/fwojciec/sitedraft/rod"
	sdslog "github.com/fwojciec/sitedraft/slog"
	"github.com/fwojciec/sitedraft/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path overriding the configuration. Set before calling Run().
	DBPath string

	// Stdin is read by "extract -".
	Stdin io.Reader

	// Getenv looks up environment variables.
	Getenv func(string) string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ArtifactService sitedraft.ArtifactService
	ResponseService sitedraft.ResponseService

	// Generator replaces the configured provider when set.
	Generator sitedraft.Generator
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin:  os.Stdin,
		Getenv: os.Getenv,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitedraft"),
		kong.Description("Turn model responses into previewable multi-page sites."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sitedraft --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// .env is optional; it only seeds variables that are not already set.
	_ = godotenv.Load()

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	cfg, err := LoadConfig(cli.Config, m.Getenv)
	if err != nil {
		return err
	}
	if m.DBPath != "" {
		cfg.DB = m.DBPath
	}
	deps.Config = cfg
	deps.Logger = newLogger(stderr, cli.Verbose)

	if err := os.MkdirAll(filepath.Dir(cfg.DB), 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	m.DB = sqlite.NewDB(cfg.DB)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SITEDRAFT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", cfg.DB, err)
	}
	defer m.Close()

	m.ArtifactService = sdslog.NewLoggingArtifactService(sqlite.NewArtifactService(m.DB), deps.Logger)
	m.ResponseService = sqlite.NewResponseService(m.DB)
	deps.Artifacts = m.ArtifactService

	switch cmd {
	case "generate", "serve":
		gen, err := m.generator(ctx, cfg, deps.Logger, stderr)
		if err != nil && cmd == "generate" {
			return err
		} else if err != nil {
			deps.Logger.Warn("generation disabled", "err", err)
		} else {
			deps.Submitter = m.pipeline(gen, deps.Logger)
		}
		if cmd == "generate" && cfg.Provider == ProviderGemini {
			if tc, err := gemini.NewTokenCounter(cfg.Model); err == nil {
				deps.Tokens = tc
			} else {
				deps.Logger.Debug("token counter unavailable", "err", err)
			}
		}
	case "extract":
		deps.Publisher = m.pipeline(nil, deps.Logger)
	}

	switch cmd {
	case "generate":
		deps.SiteWriter = fs.NewSiteWriter(cli.Generate.Out)
	case "extract":
		deps.SiteWriter = fs.NewSiteWriter(cli.Extract.Out)
	case "export":
		deps.SiteWriter = fs.NewSiteWriter(cli.Export.Dir, fs.WithBaseURL(cli.Export.BaseURL))
	}

	if cmd == "generate" || cmd == "show" {
		deps.Titles = goquery.NewTitleExtractor()
	}

	if cmd == "show" {
		deps.Converter = htmltomarkdown.NewConverter()
		deps.Highlighter = chroma.NewHighlighter(chroma.WithStyle("monokai"), chroma.WithTerminal())
		if r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100)); err == nil {
			deps.Markdown = r
		}
	}

	if cmd == "screenshot" {
		manager, err := rod.NewBrowserManager()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		screenshotter := sdslog.NewLoggingScreenshotter(rod.NewScreenshotter(manager), deps.Logger)
		defer screenshotter.Close()
		deps.Screenshotter = screenshotter
	}

	if cmd == "serve" {
		s := sdhttp.NewServer()
		s.Submitter = deps.Submitter
		s.Artifacts = m.ArtifactService
		s.Responses = m.ResponseService
		s.Titles = goquery.NewTitleExtractor()
		s.Links = goquery.NewLinkRewriter()
		s.Highlighter = chroma.NewHighlighter()
		s.Limiter = pipeline.NewKeyLimiter(cfg.RateLimit, cfg.Burst)
		s.Logger = deps.Logger
		s.TrustProxy = cfg.TrustProxy
		deps.Server = s
	}

	return kongCtx.Run(deps)
}

// pipeline wires the subscribers that persist every submission.
func (m *Main) pipeline(gen sitedraft.Generator, logger *slog.Logger) *pipeline.Pipeline {
	return &pipeline.Pipeline{
		Generator: gen,
		Subscribers: []sitedraft.Subscriber{
			sdslog.NewLoggingSubscriber(&pipeline.ResponseRecorder{Responses: m.ResponseService}, "responses", logger),
			sdslog.NewLoggingSubscriber(&pipeline.ArtifactSaver{Artifacts: m.ArtifactService}, "artifacts", logger),
		},
		Logger: logger,
	}
}

// generator returns the configured model provider wrapped with logging.
func (m *Main) generator(ctx context.Context, cfg Config, logger *slog.Logger, stderr io.Writer) (sitedraft.Generator, error) {
	if m.Generator != nil {
		return sdslog.NewLoggingGenerator(m.Generator, "custom", logger), nil
	}

	switch cfg.Provider {
	case ProviderGemini:
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: set GEMINI_API_KEY. Get a key at https://aistudio.google.com/apikey")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return sdslog.NewLoggingGenerator(gemini.NewGenerator(client, cfg.Model), ProviderGemini, logger), nil
	default:
		if cfg.GroqAPIKey == "" {
			fmt.Fprintln(stderr, "Hint: set GROQ_API_KEY, or SITEDRAFT_PROVIDER=gemini with GEMINI_API_KEY")
			return nil, sitedraft.Errorf(sitedraft.EINVALID, "GROQ_API_KEY not set")
		}
		return sdslog.NewLoggingGenerator(groq.NewGenerator(cfg.GroqAPIKey, groq.WithModel(cfg.Model)), ProviderGroq, logger), nil
	}
}

// newLogger writes text logs to stderr: warnings by default, everything
// with --verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
