package app

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/afero"

	"github.com/mskmysht/covid-treatment-sickbed/internal/adapter/htmladapter"
	"github.com/mskmysht/covid-treatment-sickbed/internal/adapter/xlsxadapter"
	"github.com/mskmysht/covid-treatment-sickbed/internal/config"
	"github.com/mskmysht/covid-treatment-sickbed/internal/parser"
	"github.com/mskmysht/covid-treatment-sickbed/internal/repository/edition"
	srvformatter "github.com/mskmysht/covid-treatment-sickbed/internal/service/formatter"
	srvscraper "github.com/mskmysht/covid-treatment-sickbed/internal/service/scraper"
)

const oldestEditionLayout = "2006-01-02 15:04"

type App struct {
	cfg *config.Config
	log *slog.Logger
}

func New(cfgPath string) *App {
	cfg := config.MustLoad(cfgPath)

	lo := &slog.HandlerOptions{}
	switch cfg.LogLevel {
	case config.LogLevelInfo:
		lo.Level = slog.LevelInfo
	case config.LogLevelWarn:
		lo.Level = slog.LevelWarn
	case config.LogLevelError:
		lo.Level = slog.LevelError
	case config.LogLevelDebug:
		lo.Level = slog.LevelDebug
	default:
		panic("unknown log level")
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, lo))

	return &App{
		cfg: cfg,
		log: log,
	}
}

// Scrape downloads every report edition listed on the index page, back to
// the configured oldest one, into saveTo. Exits non-zero on failure.
func (a *App) Scrape(saveTo string, n int) {
	opt, err := redis.ParseURL(a.cfg.RedisURL)
	if err != nil {
		panic(err)
	}

	rdb := redis.NewClient(opt)
	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		panic(err)
	}

	stopAt, err := time.ParseInLocation(oldestEditionLayout, a.cfg.Scraper.OldestEdition, parser.JST)
	if err != nil {
		panic(err)
	}

	cl := resty.New().SetBaseURL(a.cfg.Scraper.BaseURL)
	ledger := edition.NewEditionRepository(rdb, a.log)
	indexParser := htmladapter.NewIndexParser(stopAt, a.log)
	srv := srvscraper.NewScraperService(cl, indexParser, ledger, &a.cfg.Scraper, afero.NewOsFs(), a.log)

	if err := srv.Run(ctx, saveTo, n); err != nil {
		a.log.Error("Cannot scrape reports", slog.Any("error", err))
		os.Exit(1)
	}
}

// Format extracts the records of one downloaded report file into a JSON
// document in saveTo. Exits non-zero on failure.
func (a *App) Format(reportFile, saveTo string) {
	extractor := xlsxadapter.NewExtractor(&a.cfg.Layout, a.log)
	srv := srvformatter.NewFormatterService(extractor, afero.NewOsFs(), a.log)

	if err := srv.Format(reportFile, saveTo); err != nil {
		a.log.Error("Cannot format report", slog.Any("error", err))
		os.Exit(1)
	}
}
