package scraper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"path/filepath"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/mskmysht/covid-treatment-sickbed/internal/common"
	"github.com/mskmysht/covid-treatment-sickbed/internal/config"
	"github.com/mskmysht/covid-treatment-sickbed/internal/entity"
)

// Downloaded files are named after the edition timestamp, e.g.
// "20221228T0000JST.xlsx".
const filenameLayout = "20060102T1504MST"

type IndexParser interface {
	Parse(r io.Reader, limit int) ([]*entity.Report, error)
}

type EditionLedger interface {
	Seen(ctx context.Context, report *entity.Report) (bool, error)
	Mark(ctx context.Context, report *entity.Report) error
}

type ScraperService struct {
	cl     *resty.Client
	parser IndexParser
	ledger EditionLedger
	cfg    *config.ScraperConfig
	fs     afero.Fs
	log    *slog.Logger
}

func NewScraperService(cl *resty.Client, parser IndexParser, ledger EditionLedger,
	cfg *config.ScraperConfig, fs afero.Fs, log *slog.Logger) *ScraperService {
	return &ScraperService{
		cl:     cl,
		parser: parser,
		ledger: ledger,
		cfg:    cfg,
		fs:     fs,
		log:    log.With(slog.String("item", "ScraperService")),
	}
}

// Run fetches the index page, scans it for editions and downloads every one
// not yet on disk and not yet in the ledger. A limit of 0 means all listed
// editions back to the configured oldest one.
func (s *ScraperService) Run(ctx context.Context, saveTo string, limit int) error {
	ok, err := afero.DirExists(s.fs, saveTo)
	if err != nil {
		return fmt.Errorf("cannot check save directory: %w", err)
	}
	if !ok {
		return fmt.Errorf("%s: %w", saveTo, common.ErrSaveDirNotFoundError)
	}

	log := s.log.With(slog.String("run_id", uuid.NewString()))

	resp, err := s.cl.R().SetContext(ctx).Get(s.cfg.IndexURL)
	if err != nil {
		return fmt.Errorf("cannot fetch index page: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("cannot fetch index page: status %s", resp.Status())
	}

	reports, err := s.parser.Parse(bytes.NewReader(resp.Body()), limit)
	if err != nil {
		return fmt.Errorf("cannot parse index page: %w", err)
	}

	log.Info("Found report editions", slog.Int("count", len(reports)))

	for _, report := range reports {
		if err := s.fetchReport(ctx, log, report, saveTo); err != nil {
			return err
		}
	}

	return nil
}

func (s *ScraperService) fetchReport(ctx context.Context, log *slog.Logger, report *entity.Report, saveTo string) error {
	timestamp := report.Timestamp.Format("2006-01-02 15:04 MST")

	seen, err := s.ledger.Seen(ctx, report)
	if err != nil {
		return fmt.Errorf("cannot check ledger: %w", err)
	}
	if seen {
		log.Info("Edition already fetched", slog.String("timestamp", timestamp))

		return nil
	}

	filename := report.Timestamp.Format(filenameLayout)
	if ext := path.Ext(report.Path); ext != "" {
		filename += ext
	}
	outPath := filepath.Join(saveTo, filename)

	exists, err := afero.Exists(s.fs, outPath)
	if err != nil {
		return fmt.Errorf("cannot check output file: %w", err)
	}
	if exists {
		log.Warn("File already exists", slog.String("path", outPath))

		return nil
	}

	resp, err := s.cl.R().SetContext(ctx).Get(report.Path)
	if err != nil {
		return fmt.Errorf("cannot download report of %s: %w", timestamp, err)
	}
	if resp.IsError() {
		return fmt.Errorf("cannot download report of %s: status %s", timestamp, resp.Status())
	}

	if err := afero.WriteFile(s.fs, outPath, resp.Body(), 0o644); err != nil {
		return fmt.Errorf("cannot write %s: %w", outPath, err)
	}

	if err := s.ledger.Mark(ctx, report); err != nil {
		return fmt.Errorf("cannot mark edition: %w", err)
	}

	log.Info("Report exported", slog.String("timestamp", timestamp), slog.String("path", outPath))

	return nil
}
