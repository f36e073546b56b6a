package formatter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/mskmysht/covid-treatment-sickbed/internal/adapter/xlsxadapter"
	"github.com/mskmysht/covid-treatment-sickbed/internal/common"
	"github.com/mskmysht/covid-treatment-sickbed/internal/entity"
)

type RecordExtractor interface {
	Extract(grid xlsxadapter.Grid) ([]*entity.Record, error)
}

type FormatterService struct {
	extractor RecordExtractor
	fs        afero.Fs
	log       *slog.Logger
}

func NewFormatterService(extractor RecordExtractor, fs afero.Fs, log *slog.Logger) *FormatterService {
	return &FormatterService{
		extractor: extractor,
		fs:        fs,
		log:       log.With(slog.String("item", "FormatterService")),
	}
}

// Format extracts the records of one downloaded report and writes them as
// pretty-printed JSON next to the other formatted reports. An output file
// that already exists is left alone.
func (s *FormatterService) Format(reportFile, saveTo string) error {
	ok, err := afero.Exists(s.fs, reportFile)
	if err != nil {
		return fmt.Errorf("cannot check report file: %w", err)
	}
	if !ok {
		return fmt.Errorf("%s: %w", reportFile, common.ErrReportFileNotFoundError)
	}

	ok, err = afero.DirExists(s.fs, saveTo)
	if err != nil {
		return fmt.Errorf("cannot check save directory: %w", err)
	}
	if !ok {
		return fmt.Errorf("%s: %w", saveTo, common.ErrSaveDirNotFoundError)
	}

	base := filepath.Base(reportFile)
	outPath := filepath.Join(saveTo, strings.TrimSuffix(base, filepath.Ext(base))+".json")

	exists, err := afero.Exists(s.fs, outPath)
	if err != nil {
		return fmt.Errorf("cannot check output file: %w", err)
	}
	if exists {
		s.log.Warn("Skipped, file already exists", slog.String("path", outPath))

		return nil
	}

	f, err := s.fs.Open(reportFile)
	if err != nil {
		return fmt.Errorf("cannot open report file: %w", err)
	}
	defer f.Close()

	grid, sheet, err := xlsxadapter.OpenGrid(f)
	if err != nil {
		return fmt.Errorf("cannot read workbook %s: %w", reportFile, err)
	}

	s.log.Info("Extracting records", slog.String("sheet", sheet), slog.String("path", reportFile))

	records, err := s.extractor.Extract(grid)
	if err != nil {
		return fmt.Errorf("cannot extract records from %s: %w", reportFile, err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot serialize records: %w", err)
	}

	if err := afero.WriteFile(s.fs, outPath, data, 0o644); err != nil {
		return fmt.Errorf("cannot write %s: %w", outPath, err)
	}

	s.log.Info("Done", slog.String("path", outPath), slog.Int("records", len(records)))

	return nil
}
