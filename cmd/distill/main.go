package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/distill"
	"github.com/fwojciec/distill/extract"
	"github.com/fwojciec/distill/fs"
	"github.com/fwojciec/distill/goquery"
	"github.com/fwojciec/distill/htmltomarkdown"
	dhttp "github.com/fwojciec/distill/http"
	"github.com/fwojciec/distill/readability"
	"github.com/fwojciec/distill/rod"
	dslog "github.com/fwojciec/distill/slog"
	"github.com/fwojciec/distill/sqlite"
	"github.com/fwojciec/distill/trafilatura"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// A missing .env file is fine.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// User agent for page and robots.txt requests.
	UserAgent string

	// Input for "-" sources.
	Stdin io.Reader

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	ua := os.Getenv("DISTILL_USER_AGENT")
	if ua == "" {
		ua = dhttp.DefaultUserAgent
	}
	return &Main{
		DBPath:    defaultDBPath(),
		UserAgent: ua,
		Stdin:     os.Stdin,
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
		kong.Name("distill"),
		kong.Description("Extract the main article content from web pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'distill --help' to see available commands")
	}

	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	needsDB := cmd == "list" || cmd == "show" || cmd == "delete" || (cmd == "extract" && cli.Extract.Save)
	if needsDB {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set DISTILL_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()
		deps.Articles = sqlite.NewArticleService(m.DB)
	}

	deps.Metadata = goquery.NewMetadataReader()

	if cmd == "inspect" || cmd == "extract" {
		fetcher, err := m.newFetcher(cmd == "extract" && cli.Extract.Browser)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		if logger != nil {
			fetcher = dslog.NewLoggingFetcher(fetcher, logger)
		}
		defer fetcher.Close()
		deps.Fetcher = fetcher
	}

	if cmd == "extract" {
		deps.Pipeline, deps.Writer = m.newPipeline(cli.Extract, deps, logger)
	}

	return kongCtx.Run(deps)
}

func (m *Main) newFetcher(browser bool) (distill.Fetcher, error) {
	if browser {
		return rod.NewFetcher()
	}
	return dhttp.NewFetcher(dhttp.WithUserAgent(m.UserAgent)), nil
}

func (m *Main) newPipeline(c ExtractCmd, deps *Dependencies, logger *slog.Logger) (*extract.Pipeline, distill.ArticleWriter) {
	var extractor distill.Extractor
	switch c.Engine {
	case "readability":
		extractor = readability.NewExtractor()
	default:
		extractor = trafilatura.NewExtractor()
	}

	var writers multiWriter
	if c.Out != "" {
		var opts []fs.WriterOption
		if c.Format == "html" {
			opts = append(opts, fs.WithHTML())
		}
		writers = append(writers, fs.NewWriter(c.Out, opts...))
	}
	if c.Save {
		writers = append(writers, deps.Articles)
	}

	var writer distill.ArticleWriter
	if len(writers) > 0 {
		writer = writers
	}

	if logger != nil {
		extractor = dslog.NewLoggingExtractor(extractor, logger)
		if writer != nil {
			writer = dslog.NewLoggingArticleWriter(writer, logger)
		}
	}

	p := &extract.Pipeline{
		Extractor: extractor,
		Converter: htmltomarkdown.NewConverter(),
		Metadata:  deps.Metadata,
		Fetcher:   deps.Fetcher,
		Limiter:   extract.NewDomainLimiter(c.RPS),
		Writer:    writer,
	}
	if !c.IgnoreRobots {
		p.Robots = dhttp.NewRobots(
			dhttp.WithRobotsUserAgent(m.UserAgent),
			dhttp.WithRobotsTimeout(c.RobotsTimeout),
		)
	}
	return p, writer
}

// multiWriter stores an article with each writer in turn.
type multiWriter []distill.ArticleWriter

func (w multiWriter) CreateArticle(ctx context.Context, article *distill.Article) error {
	for _, next := range w {
		if err := next.CreateArticle(ctx, article); err != nil {
			return err
		}
	}
	return nil
}

func defaultDBPath() string {
	if path := os.Getenv("DISTILL_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "distill.db"
	}
	dir := filepath.Join(home, ".distill")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "distill.db")
}
