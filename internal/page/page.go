// Package page writes a demo page for a set of records: a copied static
// stylesheet, the generated record stylesheet, an HTML page linking both,
// and optionally a plot of the aggregate hues.
package page

import (
	_ "embed"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/amonks/colormix/internal/record"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Names of the files written to the output directory.
const (
	StylesheetFile = "style.css"
	RecordsFile    = "records.css"
	IndexFile      = "index.html"
	PlotFile       = "hues.png"
)

//go:embed static/style.css
var defaultStylesheet []byte

type Options struct {
	Title string
	// Stylesheet, if set, is copied instead of the built-in stylesheet.
	Stylesheet string
	// Plot renders PlotFile and links it from the page.
	Plot bool
	// Now stamps the page. It defaults to time.Now.
	Now func() time.Time
}

// Summary describes a completed write.
type Summary struct {
	Dir   string
	RunID string
	Files []File
}

type File struct {
	Name string
	Size int64
}

// Bytes totals the sizes of every written file.
func (s Summary) Bytes() int64 {
	var n int64
	for _, f := range s.Files {
		n += f.Size
	}
	return n
}

// Write creates dir if necessary and writes the page for records into it.
// The first I/O failure aborts the write.
func Write(dir string, records []record.Record, opts Options) (Summary, error) {
	s := Summary{Dir: dir, RunID: uuid.NewString()}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return s, errors.Wrap(err, "creating output directory")
	}

	stylesheet := defaultStylesheet
	if opts.Stylesheet != "" {
		bs, err := os.ReadFile(opts.Stylesheet)
		if err != nil {
			return s, errors.Wrap(err, "reading stylesheet")
		}
		stylesheet = bs
	}
	if err := s.write(StylesheetFile, stylesheet); err != nil {
		return s, err
	}

	if err := s.write(RecordsFile, []byte(record.CSS(records))); err != nil {
		return s, err
	}

	if opts.Plot {
		bs, err := huePlot(records)
		if err != nil {
			return s, err
		}
		if err := s.write(PlotFile, bs); err != nil {
			return s, err
		}
	}

	if err := s.write(IndexFile, []byte(index(s.RunID, records, opts))); err != nil {
		return s, err
	}

	return s, nil
}

func (s *Summary) write(name string, bs []byte) error {
	if err := os.WriteFile(filepath.Join(s.Dir, name), bs, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", name)
	}
	s.Files = append(s.Files, File{Name: name, Size: int64(len(bs))})
	return nil
}

func index(runID string, records []record.Record, opts Options) string {
	title := html.EscapeString(opts.Title)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html lang=\"en\">\n")
	b.WriteString("<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", title)
	fmt.Fprintf(&b, "<link rel=\"stylesheet\" href=\"%s\">\n", StylesheetFile)
	fmt.Fprintf(&b, "<link rel=\"stylesheet\" href=\"%s\">\n", RecordsFile)
	b.WriteString("</head>\n")
	b.WriteString("<body>\n")
	b.WriteString("<header>\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", title)
	fmt.Fprintf(&b, "<p>Run %s, generated %s. %d records.</p>\n",
		runID, opts.Now().UTC().Format(time.RFC3339), len(records))
	b.WriteString("</header>\n")
	if opts.Plot {
		fmt.Fprintf(&b, "<div class=\"plot\"><img src=\"%s\" alt=\"aggregate hue by set size\"></div>\n", PlotFile)
	}
	b.WriteString(record.HTML(records))
	b.WriteString("</body>\n")
	b.WriteString("</html>\n")
	return b.String()
}
