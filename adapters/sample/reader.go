package sample

import (
	"bufio"
	"context"
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"godist/internal"
	"godist/internal/errors"
)

// Options selects where the observations live inside a tabular file
type Options struct {
	Sheet      string // xlsx only
	Column     int    // zero-based
	SkipHeader bool   // csv and xlsx
}

// DefaultOptions reads the first column of Sheet1 with no header row
func DefaultOptions() Options {
	return Options{Sheet: "Sheet1"}
}

// Reader loads a numeric sample from a text, CSV or Excel file
type Reader struct {
	filePath string
	fileType string // "txt", "csv" or "xlsx"
	opts     Options
	logger   *internal.Logger
}

// NewReader picks the file format from the extension. Anything that is not
// .csv or .xlsx is read as one value per line.
func NewReader(filePath string, opts Options) *Reader {
	fileType := "txt"
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".csv":
		fileType = "csv"
	case ".xlsx":
		fileType = "xlsx"
	}
	if opts.Sheet == "" {
		opts.Sheet = "Sheet1"
	}
	return &Reader{filePath: filePath, fileType: fileType, opts: opts, logger: internal.DefaultLogger}
}

// WithLogger replaces the package default logger; nil keeps the default.
func (r *Reader) WithLogger(logger *internal.Logger) *Reader {
	if logger != nil {
		r.logger = logger
	}
	return r
}

// Read returns every observation in file order
func (r *Reader) Read() ([]float64, error) {
	r.logger.Debug("[SampleReader] Starting to read %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.NotFound("sample file " + r.filePath)
	}

	start := time.Now()
	var values []float64
	var err error
	switch r.fileType {
	case "csv":
		values, err = r.readCSV()
	case "xlsx":
		values, err = r.readExcel()
	default:
		values, err = r.readLines()
	}
	if err != nil {
		return nil, err
	}

	r.logger.Info("[SampleReader] Read %d values from %s in %.2fms",
		len(values), r.filePath, float64(time.Since(start).Nanoseconds())/1e6)
	return values, nil
}

func (r *Reader) readLines() ([]float64, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sample file %s", r.filePath)
	}
	defer file.Close()

	var values []float64
	scanner := bufio.NewScanner(file)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, errors.InvalidInput(fmt.Sprintf("%s line %d: %q is not a number", r.filePath, line, text))
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read sample file %s", r.filePath)
	}
	return values, nil
}

func (r *Reader) readCSV() ([]float64, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open CSV file %s", r.filePath)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.WithCode(errors.CodeInvalidInput, fmt.Errorf("failed to parse CSV file %s: %w", r.filePath, err))
	}
	r.logger.Trace("[SampleReader] CSV file parsed (%d rows)", len(rows))

	return r.processRows(rows)
}

func (r *Reader) readExcel() ([]float64, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.WithCode(errors.CodeInvalidInput, fmt.Errorf("failed to open Excel file %s: %w", r.filePath, err))
	}
	defer f.Close()

	rows, err := f.GetRows(r.opts.Sheet)
	if err != nil {
		var missing excelize.ErrSheetNotExist
		if stderrors.As(err, &missing) {
			return nil, errors.NotFound(fmt.Sprintf("sheet %q in %s", r.opts.Sheet, r.filePath))
		}
		return nil, errors.Wrapf(err, "failed to read %s", r.opts.Sheet)
	}
	r.logger.Trace("[SampleReader] %s read (%d rows)", r.opts.Sheet, len(rows))

	return r.processRows(rows)
}

// processRows pulls the configured column out of raw string rows. Empty
// cells and rows too short to reach the column are skipped.
func (r *Reader) processRows(rows [][]string) ([]float64, error) {
	first := 0
	if r.opts.SkipHeader {
		first = 1
	}

	var values []float64
	for i := first; i < len(rows); i++ {
		row := rows[i]
		if r.opts.Column >= len(row) {
			continue
		}
		cell := strings.TrimSpace(row[r.opts.Column])
		if cell == "" {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, errors.InvalidInput(fmt.Sprintf("%s row %d: %q is not a number", r.filePath, i+1, cell))
		}
		values = append(values, v)
	}
	return values, nil
}

// ReadFiles reads several sample files concurrently and concatenates their
// values in argument order. The first failure cancels the remaining reads.
func ReadFiles(ctx context.Context, paths []string, opts Options, concurrency int, logger *internal.Logger) ([]float64, error) {
	if concurrency < 1 {
		concurrency = 1
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}
	results := make([][]float64, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			values, err := NewReader(path, opts).WithLogger(logger).Read()
			if err != nil {
				return err
			}
			results[i] = values
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []float64
	for _, values := range results {
		all = append(all, values...)
	}
	logger.Debug("[SampleReader] Combined %d values from %d files", len(all), len(paths))
	return all, nil
}
