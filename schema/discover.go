package schema

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode"
)

// ============================================================================
// AUTO-DISCOVERY — Heuristic column classification
// ============================================================================
// Inspects raw cells and generates a schema.Config automatically.
//
// Classification pipeline per column:
//   1. Sample values → detect kind (bool, numeric, date, string)
//   2. Pattern matching → detect temporal columns (years, months, quarters)
//   3. Kind + pattern → role (measure, category, time)
//   4. Columns with no values at all are skipped
// ============================================================================

// DiscoverOptions controls discovery behavior.
type DiscoverOptions struct {
	SampleSize int    // Max rows to inspect (0 = all). Default: 1000
	Name       string // Dataset name override
	Source     string // Recorded as DiscoveredFrom. Default: "CSV" or "rows"
}

// DefaultDiscoverOptions returns sensible defaults.
func DefaultDiscoverOptions() DiscoverOptions {
	return DiscoverOptions{
		SampleSize: 1000,
	}
}

// ErrNoColumns is returned for a source without a header row.
var ErrNoColumns = errors.New("source has no columns")

// ErrNoRows is returned for a source with a header row only.
var ErrNoRows = errors.New("source has no data rows")

// ReadCSV reads a header row and every data row from CSV text.
// Short rows are padded with empty cells; malformed rows fail the read.
func ReadCSV(data []byte) ([]string, [][]string, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, nil, ErrNoColumns
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}
	for i := range headers {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(headers[i], "\ufeff"))
	}

	var rows [][]string
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read CSV row %d: %w", line, err)
		}
		rows = append(rows, padRow(row, len(headers)))
	}
	return headers, rows, nil
}

// DiscoverFromCSV generates a schema.Config by inspecting CSV data.
func DiscoverFromCSV(data []byte, opts ...DiscoverOptions) (*Config, error) {
	headers, rows, err := ReadCSV(data)
	if err != nil {
		return nil, err
	}
	opt := pickOptions(opts)
	if opt.Source == "" {
		opt.Source = "CSV"
	}
	return DiscoverFromRows(headers, rows, opt)
}

// DiscoverFromRows generates a schema.Config from a header row and data
// rows, e.g. the cells of a spreadsheet.
func DiscoverFromRows(headers []string, rows [][]string, opts ...DiscoverOptions) (*Config, error) {
	opt := pickOptions(opts)
	if len(headers) == 0 {
		return nil, ErrNoColumns
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	sample := rows
	if opt.SampleSize > 0 && len(sample) > opt.SampleSize {
		sample = sample[:opt.SampleSize]
	}

	config := &Config{
		Name:           opt.Name,
		Rows:           len(rows),
		DiscoveredFrom: opt.Source,
		DiscoveredAt:   time.Now().Format(time.RFC3339),
	}
	if config.Name == "" {
		config.Name = "Auto-discovered Dataset"
	}
	if config.DiscoveredFrom == "" {
		config.DiscoveredFrom = "rows"
	}

	for i, header := range headers {
		col, skipReason := analyzeColumn(header, i, sample)
		if skipReason != "" {
			config.SkippedColumns = append(config.SkippedColumns, SkippedColumn{
				Column: header,
				Reason: skipReason,
			})
		}
		config.Columns = append(config.Columns, col)
	}
	return config, nil
}

func pickOptions(opts []DiscoverOptions) DiscoverOptions {
	if len(opts) > 0 {
		return opts[0]
	}
	return DefaultDiscoverOptions()
}

func padRow(row []string, n int) []string {
	for len(row) < n {
		row = append(row, "")
	}
	return row
}

// ============================================================================
// COLUMN ANALYSIS
// ============================================================================

// analyzeColumn inspects all values in a column and classifies it.
// A non-empty skip reason means the column holds nothing plottable.
func analyzeColumn(header string, index int, rows [][]string) (ColumnMeta, string) {
	col := ColumnMeta{
		Key:         header,
		DisplayName: toDisplayName(header),
		Index:       index,
		Kind:        KindString,
		Role:        RoleCategory,
	}

	values := make([]string, 0, len(rows))
	uniqueSet := make(map[string]bool)
	for _, row := range rows {
		if index >= len(row) || IsNull(row[index]) {
			col.NullCount++
			continue
		}
		val := strings.TrimSpace(row[index])
		values = append(values, val)
		uniqueSet[val] = true
	}
	col.UniqueCount = len(uniqueSet)
	col.SampleValues = collectSamples(uniqueSet, 10)

	switch {
	case col.UniqueCount <= 10:
		col.CardinalityHint = "low"
	case col.UniqueCount <= 100:
		col.CardinalityHint = "medium"
	default:
		col.CardinalityHint = "high"
	}

	if len(values) == 0 {
		return col, "All values are empty/null"
	}

	col.Kind = detectKind(values)

	switch col.Kind {
	case KindNumeric:
		col.Role = RoleMeasure
		col.Integer = col.NullCount == 0 && allWhole(values)
		if col.Integer {
			col.IsTemporal, col.TemporalFormat = detectTemporalPattern(col.SampleValues)
		}
	case KindDate:
		col.IsTemporal = true
		_, col.TemporalFormat = detectTemporalPattern(col.SampleValues)
	case KindString:
		col.IsTemporal, col.TemporalFormat = detectTemporalPattern(col.SampleValues)
	}
	if col.IsTemporal {
		col.Role = RoleTime
	}
	return col, ""
}

// ============================================================================
// TYPE DETECTION
// ============================================================================

// detectKind inspects values to determine the column kind.
// Requires 80%+ of non-null values to match for bool/numeric/date.
func detectKind(values []string) Kind {
	if len(values) == 0 {
		return KindString
	}

	numCount := 0
	dateCount := 0
	boolCount := 0

	for _, v := range values {
		if isNumeric(v) {
			numCount++
		}
		if isDate(v) {
			dateCount++
		}
		if isBool(v) {
			boolCount++
		}
	}

	threshold := int(math.Ceil(float64(len(values)) * 0.8))

	// Numbers win over dates: a column of years is plotted as numbers.
	if boolCount >= threshold {
		return KindBool
	}
	if numCount >= threshold {
		return KindNumeric
	}
	if dateCount >= threshold {
		return KindDate
	}
	return KindString
}

func isNumeric(s string) bool {
	_, err := ParseNumber(s)
	return err == nil
}

func allWhole(values []string) bool {
	for _, v := range values {
		f, err := ParseNumber(v)
		if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

var dateFormats = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"02/01/2006",
	"Jan-2006",
	"January 2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

func isDate(s string) bool {
	s = strings.TrimSpace(s)
	for _, layout := range dateFormats {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

func isBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "false" || s == "yes" || s == "no"
}

// ============================================================================
// TEMPORAL PATTERN DETECTION
// ============================================================================

var temporalPatterns = []struct {
	re     *regexp.Regexp
	format string
}{
	{regexp.MustCompile(`^[A-Z][a-z]{2}-\d{4}$`), "MMM-yyyy"}, // Jan-2026
	{regexp.MustCompile(`^\d{4}-\d{2}$`), "yyyy-MM"},          // 2026-01
	{regexp.MustCompile(`^Q[1-4]-\d{4}$`), "QN-yyyy"},         // Q1-2026
	{regexp.MustCompile(`^Q[1-4]\s+\d{4}$`), "QN yyyy"},       // Q1 2026
	{regexp.MustCompile(`^(1[5-9]|20)\d{2}$`), "yyyy"},        // 2026
	{regexp.MustCompile(`^[A-Z][a-z]+ \d{4}$`), "MMMM yyyy"},  // January 2026
}

// detectTemporalPattern checks if values match known year/month/quarter patterns.
func detectTemporalPattern(samples []string) (bool, string) {
	if len(samples) == 0 {
		return false, ""
	}

	for _, pattern := range temporalPatterns {
		matches := 0
		for _, s := range samples {
			if pattern.re.MatchString(strings.TrimSpace(s)) {
				matches++
			}
		}
		if float64(matches)/float64(len(samples)) >= 0.8 {
			return true, pattern.format
		}
	}

	return false, ""
}

// ============================================================================
// STRING UTILITIES
// ============================================================================

// toDisplayName cleans a header for human display.
// "life_exp" → "Life Exp", "gdpPercap" → "Gdp Percap"
func toDisplayName(s string) string {
	s = strings.TrimSpace(s)
	if strings.Contains(s, " ") {
		return s
	}

	// Split camelCase before converting snake_case
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) && i > 0 {
			prev := rune(s[i-1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				b.WriteRune(' ')
			}
		}
		b.WriteRune(r)
	}
	s = strings.NewReplacer("_", " ", "-", " ").Replace(b.String())

	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// collectSamples picks up to maxSamples representative values.
func collectSamples(uniqueSet map[string]bool, maxSamples int) []string {
	samples := make([]string, 0, len(uniqueSet))
	for v := range uniqueSet {
		samples = append(samples, v)
	}

	// Sort for deterministic output
	sort.Strings(samples)

	if len(samples) > maxSamples {
		samples = samples[:maxSamples]
	}
	return samples
}
