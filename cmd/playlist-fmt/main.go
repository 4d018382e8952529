package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/playlist-formatter/internal/config"
	"github.com/handiism/playlist-formatter/internal/format"
	"github.com/handiism/playlist-formatter/internal/logging"
	"github.com/handiism/playlist-formatter/internal/model"
	"github.com/handiism/playlist-formatter/internal/playlist"
	"github.com/handiism/playlist-formatter/internal/save"
)

var (
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))
)

// saveFlag is a flag that may be given bare ("-save") or with a value
// ("-save=path"). Bare means "save using a derived file name".
type saveFlag struct {
	set  bool
	path string
}

func (s *saveFlag) String() string { return s.path }

func (s *saveFlag) Set(value string) error {
	s.set = true
	if value != "true" {
		s.path = value
	}
	return nil
}

// IsBoolFlag lets the flag package accept "-save" without a value.
func (s *saveFlag) IsBoolFlag() bool { return true }

func main() {
	// Command line flags
	var (
		forceFlag    = flag.Bool("force", false, "Overwrite an existing output file")
		defaultFlag  = flag.Bool("default", false, "Use the default save directory for derived names")
		basicFlag    = flag.Bool("basic", false, "Use basic print formatting style")
		numberedFlag = flag.Bool("numbered", false, "Use numbered print formatting style")
		tagsFlag     = flag.Bool("tags", false, "Read ID3 tags for playlist lines that are MP3 paths")
		logFlag      = flag.String("log", "", "Log level: debug, info, warn or error")
		configFlag   = flag.String("config", "", "Path to settings file")
		saveOpt      saveFlag
	)
	flag.Var(&saveOpt, "save", "Save formatted playlist to file; bare -save derives a name")

	// Short aliases
	flag.BoolVar(forceFlag, "f", false, "Overwrite an existing output file")
	flag.BoolVar(defaultFlag, "d", false, "Use the default save directory for derived names")
	flag.BoolVar(basicFlag, "b", false, "Use basic print formatting style")
	flag.BoolVar(numberedFlag, "n", false, "Use numbered print formatting style")
	flag.BoolVar(tagsFlag, "t", false, "Read ID3 tags for playlist lines that are MP3 paths")
	flag.StringVar(logFlag, "l", "", "Log level: debug, info, warn or error")
	flag.Var(&saveOpt, "s", "Save formatted playlist to file; bare -s derives a name")

	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(1)
	}

	opts := cliOptions{
		file:          flag.Arg(0),
		output:        flag.Arg(1),
		force:         *forceFlag,
		useDefaultDir: *defaultFlag,
		basic:         *basicFlag,
		numbered:      *numberedFlag,
		readTags:      *tagsFlag,
		logLevel:      *logFlag,
		configPath:    *configFlag,
		save:          saveOpt,
	}

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

// cliOptions is the validated parameter set handed to run.
type cliOptions struct {
	file          string
	output        string
	force         bool
	useDefaultDir bool
	basic         bool
	numbered      bool
	readTags      bool
	logLevel      string
	configPath    string
	save          saveFlag
}

func usage() {
	fmt.Fprintln(os.Stderr, "playlist-fmt - DJ playlist formatting utility.")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Reads raw playlist files and prints a nicely formatted version.")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  playlist-fmt [options] <file> [output]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "For interactive mode, use: playlist-tui")
	fmt.Fprintln(os.Stderr)
	flag.PrintDefaults()
}

func run(opts cliOptions) error {
	inputFile := strings.TrimSpace(opts.file)
	if inputFile == "" {
		return errors.New("empty input file")
	}

	// Configuration conflicts are rejected before the core runs.
	if opts.basic && opts.numbered {
		return errors.New("only one of -basic and -numbered may be given")
	}
	if opts.output != "" && opts.save.set {
		return errors.New("positional output and -save are mutually exclusive")
	}

	// Load settings
	settingsPath := opts.configPath
	if settingsPath == "" {
		settingsPath = config.DefaultPath()
	}
	settings, err := config.Load(settingsPath)
	if err != nil {
		return fmt.Errorf("load settings %q: %w", settingsPath, err)
	}

	// Flags override file settings
	logLevel := opts.logLevel
	if logLevel == "" {
		logLevel = settings.LogLevel
	}
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logger := logging.New(os.Stderr, level)
	logger.Debugf("using log level: %s", level)

	style := model.StylePretty
	switch {
	case opts.basic:
		style = model.StyleBasic
	case opts.numbered:
		style = model.StyleNumbered
	}
	logger.Debugf("formatting style: %s", style)

	pl, err := playlist.New(inputFile, playlist.WithTagReading(opts.readTags || settings.ReadTags))
	if err != nil {
		return err
	}
	logger.Debugf("playlist file: %s", pl.Info.Path)
	logger.Debugf("parsed %d tracks", pl.Len())

	if style == model.StylePretty {
		format.PrintInfo(os.Stdout, pl)
	}
	for _, line := range format.Render(pl, style) {
		fmt.Println(line)
	}

	req := save.Request{
		ExplicitPath:  opts.output,
		Save:          opts.save.set,
		SavePath:      opts.save.path,
		UseDefaultDir: opts.useDefaultDir,
		Force:         opts.force,
	}
	target, ok := save.Resolve(req, pl.Info.Path, settings.DefaultOutputDir, settings.OutputNameSuffix)
	if !ok {
		return nil
	}

	if err := save.Write(target, format.Text(pl, style), opts.force); err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, successStyle.Render("Saved playlist to "+target))
	return nil
}
