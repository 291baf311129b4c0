// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package fontconfig

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/kovidgoyal/fontcache/utils"
)

var _ = fmt.Print

var ErrMalformedRecord = errors.New("malformed font record")
var ErrUnknownStyleCode = errors.New("unknown style code")

// number of fields in a record: file, family list, slant, weight, width
const numRecordFields = 5

var slantNames = map[string]string{
	"0":   "normal",
	"100": "italic",
	"110": "oblique",
}

var widthNames = map[string]string{
	"50":  "ultra-condensed",
	"63":  "extra-condensed",
	"75":  "condensed",
	"87":  "semi-condensed",
	"100": "normal",
	"113": "semi-expanded",
	"125": "expanded",
	"150": "extra-expanded",
	"200": "ultra-expanded",
}

// Correspondence points from FcWeightToOpenType. Note that 215 (EXTRABLACK)
// does not appear in the fontconfig docs, only in the header.
var fcWeights = []float64{0, 40, 50, 55, 75, 80, 100, 180, 200, 205, 210, 215}
var cssWeights = []float64{100, 200, 300, 350, 380, 400, 500, 600, 700, 800, 900, 1000}

// A bracketed weight value means a variable weight font, which the cache
// consumer does not support.
var variableWeightPat = regexp.MustCompile(`^\[.*\]$`)

// WeightFromFontconfig maps a fontconfig weight onto the CSS 100-1000 scale
// by piecewise linear interpolation between the FcWeightToOpenType
// correspondence points. Values outside the table are clamped to the nearest
// endpoint. Halves round up.
func WeightFromFontconfig(fc_weight float64) int {
	last := len(fcWeights) - 1
	switch {
	case fc_weight <= fcWeights[0]:
		return int(cssWeights[0])
	case fc_weight >= fcWeights[last]:
		return int(cssWeights[last])
	}
	i := sort.SearchFloat64s(fcWeights, fc_weight)
	if fcWeights[i] == fc_weight {
		return int(cssWeights[i])
	}
	frac := (fc_weight - fcWeights[i-1]) / (fcWeights[i] - fcWeights[i-1])
	return int(math.Floor(cssWeights[i-1] + frac*(cssWeights[i]-cssWeights[i-1]) + 0.5))
}

// Normalize parses the raw text from the font matching service into
// FontEntry values. Records with N comma separated families produce N
// entries. Variable weight fonts are skipped with a warning. The result is
// sorted by file path, stable for equal paths.
func Normalize(raw string) ([]FontEntry, error) {
	entries := make([]FontEntry, 0, 256)
	t := NewTokenizer(strings.NewReader(raw))
	fields := make([]string, 0, numRecordFields)
	for {
		token, err := t.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMalformedRecord, err)
		}
		switch token.Type {
		case FieldToken:
			fields = append(fields, token.Value)
		case RecordEndToken:
			record_entries, err := normalizeRecord(fields)
			if err != nil {
				return nil, err
			}
			entries = append(entries, record_entries...)
			fields = fields[:0]
		}
	}
	utils.StableSortWithKey(entries, func(e FontEntry) string { return e.File })
	return entries, nil
}

func normalizeRecord(fields []string) ([]FontEntry, error) {
	if len(fields) != numRecordFields {
		return nil, fmt.Errorf("%w: expected %d fields, got %d in: %s",
			ErrMalformedRecord, numRecordFields, len(fields), strings.Join(fields, " "))
	}
	file, err := Unescape(fields[0])
	if err != nil || file == "" {
		return nil, fmt.Errorf("%w: bad file path %q", ErrMalformedRecord, fields[0])
	}
	raw_weight := fields[3]
	if variableWeightPat.MatchString(raw_weight) {
		slog.Warn("Skipping font with unsupported variable weight", "file", file)
		return nil, nil
	}
	style, ok := slantNames[fields[2]]
	if !ok {
		return nil, fmt.Errorf("%w: slant %q for %s", ErrUnknownStyleCode, fields[2], file)
	}
	stretch, ok := widthNames[fields[4]]
	if !ok {
		return nil, fmt.Errorf("%w: width %q for %s", ErrUnknownStyleCode, fields[4], file)
	}
	fc_weight, err := strconv.ParseFloat(raw_weight, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: weight %q for %s", ErrUnknownStyleCode, raw_weight, file)
	}
	weight := WeightFromFontconfig(fc_weight)
	family_list := SplitEscaped(fields[1], ',')
	ans := make([]FontEntry, 0, len(family_list))
	for _, raw_family := range family_list {
		family, err := Unescape(raw_family)
		if err != nil || family == "" {
			return nil, fmt.Errorf("%w: bad family %q for %s", ErrMalformedRecord, raw_family, file)
		}
		ans = append(ans, FontEntry{
			File: file, Family: family, Style: style, Variant: "normal",
			Weight: weight, Stretch: stretch, Size: "scalable",
		})
	}
	return ans, nil
}
