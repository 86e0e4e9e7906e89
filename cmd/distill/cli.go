package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/distill"
	"github.com/fwojciec/distill/extract"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Articles distill.ArticleService
	Metadata distill.MetadataReader
	Fetcher  distill.Fetcher
	Pipeline *extract.Pipeline
	Writer   distill.ArticleWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log fetches and extractions to stderr"`

	Inspect InspectCmd `cmd:"" help:"Print text density metrics for a page"`
	Extract ExtractCmd `cmd:"" help:"Extract the main article from pages"`
	List    ListCmd    `cmd:"" help:"List saved articles"`
	Show    ShowCmd    `cmd:"" help:"Show a saved article"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a saved article"`
}

// InspectCmd is the "inspect" subcommand.
type InspectCmd struct {
	Source string `arg:"" help:"File path, URL, or - for stdin"`
	Base   string `help:"Base URL for resolving relative references (defaults to the source URL)"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Sources       []string      `arg:"" help:"File paths, URLs, or - for stdin"`
	Base          string        `help:"Source URL to assume for file and stdin input"`
	Engine        string        `short:"e" enum:"readability,trafilatura" default:"trafilatura" help:"Content extraction engine"`
	Format        string        `short:"f" enum:"markdown,html" default:"markdown" help:"Output format"`
	Out           string        `short:"o" type:"path" help:"Write articles under this directory instead of stdout"`
	Save          bool          `help:"Save articles to the database"`
	Browser       bool          `short:"b" help:"Render pages in a headless browser"`
	Concurrency   int           `short:"c" default:"4" help:"Concurrent fetch limit"`
	RPS           float64       `name:"rps" default:"1" help:"Requests per second per domain (0 disables)"`
	IgnoreRobots  bool          `help:"Fetch pages disallowed by robots.txt"`
	RobotsTimeout time.Duration `default:"5s" help:"Timeout for each robots.txt download"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	URL   string `help:"Only list articles extracted from this URL"`
	Limit int    `short:"n" default:"20" help:"Maximum number of articles"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Article ID"`
	HTML bool   `help:"Print the content HTML instead of Markdown"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Article ID"`
	Force bool   `help:"Confirm deletion"`
}
