package data

import (
	"bufio"
	"context"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"commodity-profits/internal/logging"
	"commodity-profits/internal/model"
)

// ParseMode selects what happens when a row has a non-integer day or profit,
// the wrong number of fields, or a day outside 1..28.
type ParseMode string

const (
	// ParseStrict stops the load at the first malformed row. Months loaded
	// before the failure stay in the grid.
	ParseStrict ParseMode = "strict"
	// ParseLenient skips malformed rows and keeps going.
	ParseLenient ParseMode = "lenient"
)

// ParseParseMode validates a mode string. Empty means strict.
func ParseParseMode(s string) (ParseMode, error) {
	switch ParseMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ParseStrict:
		return ParseStrict, nil
	case ParseLenient:
		return ParseLenient, nil
	default:
		return "", errors.Newf("unknown parse mode %q (want strict or lenient)", s)
	}
}

// ErrMalformedRow marks row-level parse failures. Use errors.Is to detect it.
var ErrMalformedRow = errors.New("malformed row")

const (
	fieldsPerRow = 3
	headerLines  = 1
	maxLineBytes = 1 << 20
)

// LoadReport summarizes a load. Unknown commodity rows are dropped silently
// but still counted here.
type LoadReport struct {
	MonthsLoaded         []string `json:"months_loaded"`
	MissingMonths        []string `json:"missing_months"`
	RowsApplied          int      `json:"rows_applied"`
	UnknownCommodityRows int      `json:"unknown_commodity_rows"`
	MalformedRows        int      `json:"malformed_rows"`
}

// Loader populates a Grid from a Source, one month at a time.
type Loader struct {
	src    Source
	mode   ParseMode
	logger *zap.Logger
}

func NewLoader(src Source, mode ParseMode, logger *zap.Logger) *Loader {
	if mode == "" {
		mode = ParseStrict
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{src: src, mode: mode, logger: logger}
}

// LoadGrid allocates a fresh grid and loads it. The grid is returned even when
// err != nil so callers can inspect whatever loaded before a strict failure.
func LoadGrid(ctx context.Context, src Source, mode ParseMode, logger *zap.Logger) (*model.Grid, *LoadReport, error) {
	g := &model.Grid{}
	report, err := NewLoader(src, mode, logger).Load(ctx, g)
	return g, report, err
}

// Load reads all twelve months into g. Missing sources are skipped. Rows that
// name an unknown commodity are dropped. Later rows for the same cell
// overwrite earlier ones, so loading the same sources twice gives the same grid.
func (l *Loader) Load(ctx context.Context, g *model.Grid) (*LoadReport, error) {
	report := &LoadReport{MonthsLoaded: []string{}, MissingMonths: []string{}}
	for m, month := range model.MonthNames {
		if err := ctx.Err(); err != nil {
			return report, errors.Wrapf(err, "load interrupted before %s", month)
		}
		rc, err := l.src.Open(month)
		if err != nil {
			report.MissingMonths = append(report.MissingMonths, month)
			if errors.Is(err, fs.ErrNotExist) {
				l.logger.Info("month source missing, leaving zeros",
					zap.String(logging.FieldMonth, month),
					zap.String(logging.FieldFile, l.src.Name(month)))
			} else {
				l.logger.Warn("month source unreadable, leaving zeros",
					zap.String(logging.FieldMonth, month),
					zap.String(logging.FieldFile, l.src.Name(month)),
					zap.Error(err))
			}
			continue
		}
		if err := l.loadSource(m, rc, g, report); err != nil {
			return report, errors.Wrapf(err, "load %s", l.src.Name(month))
		}
		report.MonthsLoaded = append(report.MonthsLoaded, month)
	}

	l.logger.Info("dataset loaded",
		zap.Int("months_loaded", len(report.MonthsLoaded)),
		zap.Strings("missing_months", report.MissingMonths),
		zap.Int("rows_applied", report.RowsApplied),
		zap.Int("unknown_commodity_rows", report.UnknownCommodityRows),
		zap.Int("malformed_rows", report.MalformedRows))
	return report, nil
}

// loadSource loads one opened month and closes it. A failed close fails the month.
func (l *Loader) loadSource(m int, rc io.ReadCloser, g *model.Grid, report *LoadReport) (err error) {
	defer func() {
		if cerr := rc.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close")
		}
	}()
	return l.loadMonth(m, rc, g, report)
}

func (l *Loader) loadMonth(m int, r io.Reader, g *model.Grid, report *LoadReport) error {
	month := model.MonthNames[m]

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	// Exactly one header line is dropped, whatever it contains, even if blank.
	if !sc.Scan() {
		return errors.Wrap(sc.Err(), "read header")
	}

	applied := 0
	line := headerLines
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		row, err := parseRow(splitFields(text))
		if err != nil {
			if rowErr := l.malformed(month, line, err, report); rowErr != nil {
				return rowErr
			}
			continue
		}
		c, ok := model.CommodityIndex(row.commodity)
		if !ok {
			report.UnknownCommodityRows++
			continue
		}
		g.Set(m, row.day-1, c, row.profit)
		applied++
	}
	if err := sc.Err(); err != nil {
		return errors.Wrapf(err, "read line %d", line+1)
	}
	report.RowsApplied += applied
	l.logger.Debug("month loaded",
		zap.String(logging.FieldMonth, month),
		zap.Int(logging.FieldCount, applied))
	return nil
}

// splitFields splits a row on every comma. Quotes have no meaning and empty
// trailing fields are dropped, so "1,Gold,5," is a three-field row.
func splitFields(text string) []string {
	fields := strings.Split(text, ",")
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}

// malformed applies the parse mode: nil means the row was skipped.
func (l *Loader) malformed(month string, line int, cause error, report *LoadReport) error {
	if l.mode == ParseLenient {
		report.MalformedRows++
		l.logger.Debug("skipping malformed row",
			zap.String(logging.FieldMonth, month),
			zap.Int(logging.FieldLine, line),
			zap.Error(cause))
		return nil
	}
	return errors.Mark(errors.Wrapf(cause, "line %d", line), ErrMalformedRow)
}

type row struct {
	day       int
	commodity string
	profit    int
}

func parseRow(rec []string) (row, error) {
	if len(rec) != fieldsPerRow {
		return row{}, errors.Newf("expected %d fields, got %d", fieldsPerRow, len(rec))
	}
	dayField := strings.TrimSpace(rec[0])
	day, err := strconv.Atoi(dayField)
	if err != nil {
		return row{}, errors.Newf("day %q is not an integer", dayField)
	}
	if !model.ValidDay(day) {
		return row{}, errors.Newf("day %d outside 1..%d", day, model.Days)
	}
	profitField := strings.TrimSpace(rec[2])
	profit, err := strconv.Atoi(profitField)
	if err != nil {
		return row{}, errors.Newf("profit %q is not an integer", profitField)
	}
	return row{day: day, commodity: strings.TrimSpace(rec[1]), profit: profit}, nil
}
