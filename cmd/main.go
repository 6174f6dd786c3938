package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/w-h-a/rdbrain"
	"github.com/w-h-a/rdbrain/arxiv"
	"github.com/w-h-a/rdbrain/embedder"
	googleembedder "github.com/w-h-a/rdbrain/embedder/google"
	openaiembedder "github.com/w-h-a/rdbrain/embedder/openai"
	"github.com/w-h-a/rdbrain/generator"
	"github.com/w-h-a/rdbrain/generator/anthropic"
	googlegenerator "github.com/w-h-a/rdbrain/generator/google"
	"github.com/w-h-a/rdbrain/generator/openai"
	"github.com/w-h-a/rdbrain/intake"
	"github.com/w-h-a/rdbrain/retrieval"
	"github.com/w-h-a/rdbrain/review"
	"github.com/w-h-a/rdbrain/server"
	httpserver "github.com/w-h-a/rdbrain/server/http"
	"github.com/w-h-a/rdbrain/store"
	memorystore "github.com/w-h-a/rdbrain/store/memory"
	"github.com/w-h-a/rdbrain/store/postgres"
	"github.com/w-h-a/rdbrain/websearch"
	"github.com/w-h-a/rdbrain/websearch/duckduckgo"
	"go.uber.org/zap"
)

type globals struct {
	Provider   string `help:"Chat model provider." enum:"openai,anthropic,google" default:"openai" env:"RDBRAIN_PROVIDER"`
	Model      string `help:"Chat model name; defaults per provider." env:"RDBRAIN_MODEL"`
	EmbedModel string `help:"Embedding model name." default:"text-embedding-3-small" env:"RDBRAIN_EMBED_MODEL"`
	Store      string `help:"Interview store backend." enum:"memory,postgres" default:"memory" env:"RDBRAIN_STORE"`
	Postgres   string `help:"Postgres connection string." env:"RDBRAIN_POSTGRES_URL"`
	Debug      bool   `help:"Enable debug logging."`
}

type runCmd struct {
	Memo        string   `arg:"" optional:"" help:"Interview memo text; reads stdin when omitted."`
	Tags        []string `help:"Technology tags for the memo." short:"t"`
	Department  string   `help:"Department of the interviewed company."`
	Company     string   `help:"Company name."`
	Contact     string   `help:"Contact info."`
	SkipReview  bool     `help:"Run the pipeline even if the intake gate finds the memo insufficient."`
	SkipPersist bool     `help:"Do not save the memo to the interview store."`
}

type serveCmd struct {
	Address string `help:"Listen address." default:":8080" env:"RDBRAIN_ADDRESS"`
}

var cli struct {
	globals

	Run   runCmd   `cmd:"" help:"Review one interview memo and drive the agent pipeline to a strategy report."`
	Serve serveCmd `cmd:"" help:"Serve the review and pipeline APIs over HTTP."`
}

type deps struct {
	logger    *zap.Logger
	generator generator.Generator
	embedder  embedder.Embedder
	store     store.Store
	reviewer  *review.Reviewer
	intake    *intake.Intake
	squad     func(opts ...rdbrain.Option) *rdbrain.Squad
}

func main() {
	godotenv.Load()

	ktx := kong.Parse(&cli,
		kong.Name("rdbrain"),
		kong.Description("Turns sales interview memos into R&D strategy reports via a multi-agent pipeline."),
		kong.UsageOnError(),
	)

	logger := newLogger(cli.Debug)
	defer logger.Sync()

	d := build(cli.globals, logger)

	ktx.FatalIfErrorf(ktx.Run(d))
}

func newLogger(debug bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return logger
}

func build(g globals, logger *zap.Logger) *deps {
	gen := newGenerator(g)
	emb := newEmbedder(g)
	st := newStore(g, logger)

	ddg := duckduckgo.NewSearcher(websearch.WithLogger(logger))

	retrievalOpts := []retrieval.Option{
		retrieval.WithEmbedder(emb),
		retrieval.WithStore(st),
		retrieval.WithWeb(ddg),
		retrieval.WithArxiv(arxiv.NewClient()),
		retrieval.WithLogger(logger),
	}

	cross := retrieval.NewCrossPollination(retrievalOpts...)
	patents := retrieval.NewPatentSearcher(retrievalOpts...)
	academic := retrieval.NewAcademicSearcher(retrievalOpts...)
	market := retrieval.NewMarketSearcher(retrievalOpts...)

	return &deps{
		logger:    logger,
		generator: gen,
		embedder:  emb,
		store:     st,
		reviewer: review.NewReviewer(
			review.WithGenerator(gen),
			review.WithLogger(logger),
		),
		intake: intake.NewIntake(
			intake.WithEmbedder(emb),
			intake.WithStore(st),
			intake.WithLogger(logger),
		),
		squad: func(opts ...rdbrain.Option) *rdbrain.Squad {
			return rdbrain.New(append([]rdbrain.Option{
				rdbrain.WithGenerator(gen),
				rdbrain.WithCrossPollination(cross),
				rdbrain.WithPatents(patents),
				rdbrain.WithAcademic(academic),
				rdbrain.WithMarket(market),
				rdbrain.WithLogger(logger),
			}, opts...)...)
		},
	}
}

func newGenerator(g globals) generator.Generator {
	switch g.Provider {
	case "anthropic":
		return anthropic.NewGenerator(
			generator.WithApiKey(os.Getenv("ANTHROPIC_API_KEY")),
			generator.WithModel(modelOr(g.Model, "claude-sonnet-4-20250514")),
		)
	case "google":
		return googlegenerator.NewGenerator(
			generator.WithApiKey(os.Getenv("GOOGLE_API_KEY")),
			generator.WithModel(modelOr(g.Model, "gemini-2.0-flash")),
		)
	default:
		return openai.NewGenerator(
			generator.WithApiKey(os.Getenv("OPENAI_API_KEY")),
			generator.WithModel(modelOr(g.Model, "gpt-4o-mini")),
		)
	}
}

// Anthropic has no embedding endpoint, so that provider pairs with the OpenAI
// embedder.
func newEmbedder(g globals) embedder.Embedder {
	if g.Provider == "google" {
		return googleembedder.NewEmbedder(
			embedder.WithApiKey(os.Getenv("GOOGLE_API_KEY")),
			embedder.WithModel("text-embedding-004"),
		)
	}
	return openaiembedder.NewEmbedder(
		embedder.WithApiKey(os.Getenv("OPENAI_API_KEY")),
		embedder.WithModel(g.EmbedModel),
	)
}

func newStore(g globals, logger *zap.Logger) store.Store {
	if g.Store == "postgres" {
		return postgres.NewStore(
			store.WithLocation(g.Postgres),
			store.WithLogger(logger),
		)
	}
	return memorystore.NewStore(
		store.WithLogger(logger),
	)
}

func modelOr(model, fallback string) string {
	if len(model) > 0 {
		return model
	}
	return fallback
}

func (c *runCmd) Run(d *deps) error {
	ctx := context.Background()

	memo := c.Memo
	if len(memo) == 0 {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read memo from stdin: %w", err)
		}
		memo = strings.TrimSpace(string(raw))
	}
	if len(memo) == 0 {
		return fmt.Errorf("interview memo is required")
	}

	verdict, err := d.reviewer.Review(ctx, memo)
	if err != nil {
		return err
	}

	tags := c.Tags
	if len(tags) == 0 {
		tags = verdict.TechTags
	}

	if !verdict.IsSufficient {
		fmt.Fprintln(os.Stderr, "The memo needs more detail before a useful report can be produced:")
		for _, q := range verdict.Questions {
			fmt.Fprintf(os.Stderr, "  - %s\n", q)
		}
		if !c.SkipReview {
			return fmt.Errorf("memo rejected by intake review")
		}
	}

	if !c.SkipPersist {
		if err := d.intake.Save(ctx, intake.InterviewRecord{
			CompanyName: c.Company,
			ContactInfo: c.Contact,
			Department:  c.Department,
			RawText:     memo,
			TechTags:    tags,
		}); err != nil {
			d.logger.Warn("interview save failed", zap.Error(err))
		}
	}

	pc := rdbrain.NewPipelineContext(func(percent int, label string) {
		fmt.Fprintf(os.Stderr, "[%3d%%] %s\n", percent, label)
	})

	squad := d.squad(rdbrain.WithOnChunk(func(agent rdbrain.Role, chunk string) {
		fmt.Fprint(os.Stderr, chunk)
	}))

	result, err := squad.Run(ctx, pc, rdbrain.Request{
		InterviewMemo: memo,
		TechTags:      tags,
		Department:    c.Department,
		CompanyName:   c.Company,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr)
	fmt.Println(result.FinalReport)

	return nil
}

func (c *serveCmd) Run(d *deps) error {
	srv := httpserver.NewServer(
		server.WithAddress(c.Address),
		server.WithLogger(d.logger),
		httpserver.WithReviewer(d.reviewer),
		httpserver.WithIntake(d.intake),
		httpserver.WithSquad(d.squad()),
	)

	return srv.Run()
}
