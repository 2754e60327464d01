package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"time"

	meta "github.com/amonks/colormix"
	"github.com/amonks/colormix/internal/config"
	"github.com/amonks/colormix/internal/page"
	"github.com/amonks/colormix/internal/printer"
	"github.com/amonks/colormix/internal/record"
	"github.com/amonks/colormix/internal/styles"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// flags holds the parsed command line. Each field points into the FlagSet
// that produced it.
type flags struct {
	set *flag.FlagSet

	config     *string
	out        *string
	min        *int
	max        *int
	rounds     *int
	seed       *uint64
	stylesheet *string
	plot       *bool
	preview    *bool
	verbose    *bool

	version      *bool
	help         *bool
	license      *bool
	contributors *bool
}

func newFlags(output io.Writer) *flags {
	fs := flag.NewFlagSet("colormix", flag.ContinueOnError)
	fs.SetOutput(output)
	f := &flags{
		set: fs,

		config:     fs.String("config", "", "Read parameters from the given TOML file. Flags given on the command line override it."),
		out:        fs.String("out", "out", "Write the page into the given directory, creating it if needed."),
		min:        fs.Int("min", 2, "Smallest sample-set size."),
		max:        fs.Int("max", 5, "Largest sample-set size."),
		rounds:     fs.Int("rounds", 10, "Number of sample sets generated for each size."),
		seed:       fs.Uint64("seed", 0, "Seed for the color source. 0 picks a seed from the clock; the seed used is logged."),
		stylesheet: fs.String("stylesheet", "", "Copy the given stylesheet into the output directory instead of the built-in one."),
		plot:       fs.Bool("plot", true, "Render a plot of aggregate hues alongside the page."),
		preview:    fs.Bool("preview", true, "Print the records as color swatches when stdout is a terminal."),
		verbose:    fs.Bool("v", false, "Log debug output, including every generated sample set."),

		version:      fs.Bool("version", false, "Display the version and exit."),
		help:         fs.Bool("help", false, "Display the help text and exit."),
		license:      fs.Bool("license", false, "Display the license info and exit."),
		contributors: fs.Bool("contributors", false, "Display the contributors list and exit."),
	}
	fs.Usage = func() {
		w := fs.Output()
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, usageText())
		fmt.Fprintln(w, flagText(fs))
	}
	return f
}

func main() {
	f := newFlags(os.Stderr)
	if err := f.set.Parse(os.Args[1:]); err == flag.ErrHelp {
		os.Exit(0)
	} else if err != nil {
		os.Exit(2)
	}

	if *f.version {
		fmt.Println(versionText())
		os.Exit(0)
	} else if *f.help {
		fmt.Println("\n" + helpText(f.set))
		os.Exit(0)
	} else if *f.contributors {
		fmt.Print(contributorsText())
		os.Exit(0)
	} else if *f.license {
		fmt.Println("\n" + licenseText())
		os.Exit(0)
	}

	cfg, err := f.loadConfig()
	if err != nil {
		fmt.Println(styles.Error.Render("Error loading config:"))
		fmt.Println(err)
		os.Exit(1)
	}

	logConfig := zap.NewProductionConfig()
	if *f.verbose {
		logConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	log, err := logConfig.Build()
	if err != nil {
		fmt.Printf("Error: failed to initialize logger: %s\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	var preview io.Writer
	if *f.preview && term.IsTerminal(int(os.Stdout.Fd())) {
		preview = os.Stdout
	}

	summary, err := run(log, cfg, preview, termenv.EnvColorProfile())
	if err != nil {
		log.Sync()
		fmt.Printf("%s %s\n", styles.Error.Render("Error:"), err)
		os.Exit(1)
	}

	fmt.Println(summaryText(summary))
}

// loadConfig starts from the config file, if any, and applies every flag
// that was set explicitly.
func (f *flags) loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *f.config != "" {
		var err error
		if cfg, err = config.Load(*f.config); err != nil {
			return cfg, err
		}
	}

	f.set.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "out":
			cfg.Out = *f.out
		case "min":
			cfg.MinSize = *f.min
		case "max":
			cfg.MaxSize = *f.max
		case "rounds":
			cfg.Rounds = *f.rounds
		case "seed":
			cfg.Seed = *f.seed
		case "stylesheet":
			cfg.Stylesheet = *f.stylesheet
		case "plot":
			cfg.Plot = *f.plot
		}
	})

	return cfg, cfg.Validate()
}

// run generates the records described by cfg and writes their page. When
// preview is non-nil the records are also printed to it as swatches.
func run(log *zap.Logger, cfg config.Config, preview io.Writer, profile termenv.Profile) (page.Summary, error) {
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	log.Info("generating records",
		zap.Int("min_size", cfg.MinSize),
		zap.Int("max_size", cfg.MaxSize),
		zap.Int("rounds", cfg.Rounds),
		zap.Uint64("seed", cfg.Seed))

	records := record.Generate(log, cfg.RecordOptions())

	if preview != nil {
		if err := printer.New(preview, profile).Print(records); err != nil {
			return page.Summary{}, err
		}
	}

	summary, err := page.Write(cfg.Out, records, page.Options{
		Title:      cfg.Title,
		Stylesheet: cfg.Stylesheet,
		Plot:       cfg.Plot,
	})
	if err != nil {
		return summary, err
	}
	log.Info("wrote page",
		zap.String("dir", summary.Dir),
		zap.String("run", summary.RunID),
		zap.Int("records", len(records)))
	return summary, nil
}

func summaryText(s page.Summary) string {
	b := &strings.Builder{}
	fmt.Fprintln(b, styles.Header.Render("WROTE"))
	for _, f := range s.Files {
		name := fmt.Sprintf("%-12s", f.Name)
		fmt.Fprintf(b, "  %s %s\n", styles.File.Render(name), styles.Italic.Render(humanize.Bytes(uint64(f.Size))))
	}
	b.WriteString(styles.Success.Render(fmt.Sprintf("  %d files, %s, in %s", len(s.Files), humanize.Bytes(uint64(s.Bytes())), s.Dir)))
	return b.String()
}

func helpText(fs *flag.FlagSet) string {
	b := &strings.Builder{}
	b.WriteString("Colormix generates sets of random colors, averages each set three\n")
	b.WriteString("different ways, and writes the results as an HTML page for comparison.\n")
	b.WriteString("\n")
	b.WriteString(usageText())
	b.WriteString("\n")
	b.WriteString(flagText(fs))
	b.WriteString("\n")
	b.WriteString(versionText())
	return b.String()
}

func usageText() string {
	b := &strings.Builder{}
	fmt.Fprintln(b, styles.Header.Render("USAGE"))
	b.WriteString("  colormix [flags]\n")
	return b.String()
}

func flagText(fs *flag.FlagSet) string {
	var b strings.Builder
	fmt.Fprintln(&b, styles.Header.Render("FLAGS"))

	fs.VisitAll(func(f *flag.Flag) {
		fmt.Fprintf(&b, "  -%s", f.Name)
		name, usage := flag.UnquoteUsage(f)
		if len(name) > 0 {
			b.WriteString("=")
			b.WriteString(name)
		}
		if isZero := isZeroValue(f, f.DefValue); !isZero {
			fmt.Fprintf(&b, " (default %q)", f.DefValue)
		}
		b.WriteString("\n")

		usage = wordwrap.String(usage, 52)
		usage = indent.String(usage, 8)
		b.WriteString(usage)

		b.WriteString("\n")
	})
	return b.String()
}

// isZeroValue determines whether the string represents the zero
// value for a flag.
func isZeroValue(f *flag.Flag, value string) bool {
	typ := reflect.TypeOf(f.Value)
	var z reflect.Value
	if typ.Kind() == reflect.Pointer {
		z = reflect.New(typ.Elem())
	} else {
		z = reflect.Zero(typ)
	}
	return value == z.Interface().(flag.Value).String()
}

func versionText() string {
	b := &strings.Builder{}
	fmt.Fprintln(b, styles.Header.Render("VERSION"))
	fmt.Fprintln(b, "  Version:", meta.Version)
	if meta.Revision != "unknown" {
		if meta.DirtyBuild {
			fmt.Fprintln(b, "  Dirty Build")
			fmt.Fprintln(b, "  Last commit:", meta.ReleaseDate)
		} else {
			fmt.Fprintln(b, "  Revision:", meta.Revision)
			fmt.Fprintln(b, "  Committed:", meta.ReleaseDate)
		}
	}
	return b.String()
}

func contributorsText() string {
	b := &strings.Builder{}
	fmt.Fprintln(b, styles.Header.Render("CONTRIBUTORS"))
	fmt.Fprintln(b, indent.String(wordwrap.String(meta.Contributors, 78), 2))
	return b.String()
}

func licenseText() string {
	b := &strings.Builder{}
	fmt.Fprintln(b, styles.Header.Render("LICENSE"))
	b.WriteString(indent.String(wordwrap.String(meta.License, 78), 2))
	return b.String()
}
