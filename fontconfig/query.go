// License: GPLv3 Copyright: 2025, Kovid Goyal, <kovid at kovidgoyal.net>

package fontconfig

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/kovidgoyal/go-parallel"
)

var _ = fmt.Print

var ErrServiceUnavailable = errors.New("font matching service unavailable")

// One record per matched face: file, family list, slant, weight, width.
// FcPatternFormat's escape(chars) converter takes the set of characters to
// backslash escape as its argument: the backslash itself (listed first so
// literal backslashes are representable), the field separator, the family
// list separator and the record terminator. With that set applied to the
// two free text fields the stream is parseable by Tokenizer. Changing this
// string breaks Normalize.
const queryFormat = `--format=%{file|escape(\\ ,\n)} %{family|escape(\\ ,\n)} %{slant} %{weight} %{width}\n`

// Matcher finds font faces and reports their attributes as formatted text
// records. Query with no files scans the entire system catalog. Fake it
// with canned text in tests.
type Matcher interface {
	Query(files ...string) (string, error)
}

type fcMatcher struct {
	query_exe, list_exe string
}

// NewMatcher returns a Matcher backed by the system fontconfig utilities,
// fc-query for explicit files and fc-list for the whole catalog.
func NewMatcher() Matcher {
	return &fcMatcher{query_exe: "fc-query", list_exe: "fc-list"}
}

func (self *fcMatcher) Query(files ...string) (string, error) {
	var cmd *exec.Cmd
	if len(files) == 0 {
		cmd = exec.Command(self.list_exe, queryFormat)
	} else {
		cmd = exec.Command(self.query_exe, append([]string{queryFormat}, files...)...)
	}
	stdout, stderr := bytes.Buffer{}, bytes.Buffer{}
	cmd.Stdout, cmd.Stderr = &stdout, &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("%w: %s: %s", ErrServiceUnavailable, cmd.Args[0], msg)
	}
	return stdout.String(), nil
}

// Collect queries the bundled font files and the whole system catalog and
// returns the raw output of both as one logical stream. The two queries are
// independent and run concurrently. Relative ordering of the two result sets
// is irrelevant as Normalize sorts by file path. With no bundled files only
// the catalog is queried.
func Collect(m Matcher, bundled []string) (string, error) {
	var results [2]string
	var errs [2]error
	var wg sync.WaitGroup
	run := func(idx int, files ...string) {
		defer func() {
			if r := recover(); r != nil {
				errs[idx] = parallel.Format_stacktrace_on_panic(r, 1)
			}
			wg.Done()
		}()
		results[idx], errs[idx] = m.Query(files...)
	}
	if len(bundled) > 0 {
		wg.Add(1)
		go run(0, bundled...)
	}
	wg.Add(1)
	go run(1)
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return "", err
		}
	}
	return results[0] + results[1], nil
}

// Entries runs the full pipeline: query bundled and system fonts, then
// normalize into a sorted sequence of font entries.
func Entries(m Matcher, bundled []string) ([]FontEntry, error) {
	raw, err := Collect(m, bundled)
	if err != nil {
		return nil, fmt.Errorf("querying fonts: %w", err)
	}
	ans, err := Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing font records: %w", err)
	}
	return ans, nil
}

// BundledFonts expands dir into the sorted list of scalable font files
// bundled with the application. An empty or missing directory yields no
// files, which is not an error.
func BundledFonts(dir string) ([]string, error) {
	if dir == "" {
		return nil, nil
	}
	matches, err := doublestar.FilepathGlob(filepath.Join(dir, "*.{ttf,otf}"))
	if err != nil {
		return nil, fmt.Errorf("globbing bundled fonts in %s: %w", dir, err)
	}
	slices.Sort(matches)
	return matches, nil
}
