package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/oakwood-commons/colx/internal/config"
	"github.com/oakwood-commons/colx/internal/limiter"
	"github.com/oakwood-commons/colx/internal/measure"
	"github.com/oakwood-commons/colx/pkg/grid"
	"github.com/oakwood-commons/colx/pkg/logger"
	"github.com/oakwood-commons/colx/pkg/settings"
)

// termGetSize is swapped in tests.
var termGetSize = term.GetSize

// rootOptions holds the values bound to the root command's flags.
type rootOptions struct {
	configFile    string
	debug         bool
	width         int
	padding       int
	autoWidth     bool
	measureMode   string
	limitRecords  int
	offsetRecords int
	tailRecords   int
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   settings.CliBinaryName + " [file]",
		Short: settings.CliBinaryName + " - lay out lines of text in columns",
		Long: `colx reads lines of text and prints them in as many columns as fit the
width budget (120 by default). Lines are placed left to right, top to bottom.
Each column is as wide as its widest line and columns are separated by at
least --padding spaces. ANSI color sequences and control characters do not
count towards a line's width.

If no layout with two or more columns fits, the lines are printed unchanged.`,
		Example: "\n  ls | colx\n  colx names.txt --width 80\n  seq 1 500 | colx --padding 1 --auto-width\n",
		Args:    cobra.MaximumNArgs(1),
		// main prints the error; usage is noise for input errors.
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Map CLI debug flag to log level: debug => zap.DebugLevel (-1), else zap.InfoLevel (0)
			var level int8 = 0
			if opts.debug {
				level = -1
			}
			lgr := logger.Get(level)
			lgr = logger.WithValues(lgr, logger.RootCommandKey, settings.CliBinaryName, logger.SubCommandKey, cmd.Name())

			run := settings.NewCliParams()
			run.MinLogLevel = level
			run.ConfigPath = resolveConfigPath(opts.configFile)
			if len(args) > 0 {
				run.WithInputPath(args[0])
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = logger.WithLogger(ctx, lgr)
			cmd.SetContext(settings.IntoContext(ctx, run))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoot(cmd, opts)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&opts.configFile, "config-file", "", "path to a YAML config file (default $XDG_CONFIG_HOME/colx/config.yaml)")
	f.BoolVar(&opts.debug, "debug", false, "log layout decisions to stderr")

	lf := cmd.Flags()
	lf.IntVarP(&opts.width, "width", "w", config.DefaultWidth, "maximum row width in columns")
	lf.IntVarP(&opts.padding, "padding", "p", config.DefaultPadding, "minimum spaces between columns")
	lf.BoolVar(&opts.autoWidth, "auto-width", false, "use the terminal width when it can be detected")
	lf.StringVar(&opts.measureMode, "measure", string(measure.ModeRunes), "how characters are counted: runes|cells")
	lf.IntVar(&opts.limitRecords, "limit", 0, "lay out at most N lines")
	lf.IntVar(&opts.offsetRecords, "offset", 0, "skip the first N lines")
	lf.IntVar(&opts.tailRecords, "tail", 0, "lay out only the last N lines (mutually exclusive with --limit; ignores --offset)")

	cmd.Version = cliVersionString()
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newConfigCmd(opts))

	return cmd
}

func runRoot(cmd *cobra.Command, opts *rootOptions) error {
	run, ok := settings.FromContext(cmd.Context())
	if !ok {
		run = settings.NewCliParams()
	}

	cfg, err := loadMergedConfig(run.ConfigPath)
	if err != nil {
		return err
	}
	gridOpts, err := resolveOptions(cmd.Flags(), opts, cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	in, closeInput, err := openInput(cmd, run.Input)
	if err != nil {
		return err
	}
	defer closeInput()

	lgr := logger.FromContext(cmd.Context())
	lgr.V(1).Info("laying out input",
		logger.InputKey, run.Input.Path,
		logger.MaxWidthKey, gridOpts.MaxWidth,
		logger.PaddingKey, gridOpts.Padding,
	)
	return grid.Arrange(cmd.Context(), in, cmd.OutOrStdout(), gridOpts)
}

// resolveOptions applies flags that were set explicitly on top of cfg. w is
// probed for a terminal width when auto width is on.
func resolveOptions(flags *pflag.FlagSet, opts *rootOptions, cfg config.Config, w io.Writer) (grid.Options, error) {
	if flags.Changed("width") {
		cfg.Layout.Width = &opts.width
	}
	if flags.Changed("padding") {
		cfg.Layout.Padding = &opts.padding
	}
	if flags.Changed("auto-width") {
		cfg.Layout.AutoWidth = &opts.autoWidth
	}
	if flags.Changed("measure") {
		cfg.Layout.Measure = &opts.measureMode
	}

	mode, err := measure.ParseMode(cfg.MeasureMode())
	if err != nil {
		return grid.Options{}, err
	}
	out := grid.Options{
		MaxWidth: cfg.Width(),
		Padding:  cfg.Padding(),
		Measure:  mode,
		Window: limiter.Config{
			Limit:  opts.limitRecords,
			Offset: opts.offsetRecords,
			Tail:   opts.tailRecords,
		},
	}
	if cfg.AutoWidth() {
		if tw := detectTerminalWidth(w); tw > 0 {
			out.MaxWidth = tw
		}
	}
	if err := out.Validate(); err != nil {
		return grid.Options{}, err
	}
	return out, nil
}

// detectTerminalWidth returns the width of the terminal behind out, then
// $COLUMNS, or 0 when neither is available.
func detectTerminalWidth(out io.Writer) int {
	if f, ok := out.(*os.File); ok {
		if w, _, err := termGetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	if col := os.Getenv("COLUMNS"); col != "" {
		if w, err := strconv.Atoi(col); err == nil && w > 0 {
			return w
		}
	}
	return 0
}

func openInput(cmd *cobra.Command, in settings.InputSettings) (io.Reader, func(), error) {
	if in.FromStdin {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(in.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func Execute() error {
	return rootCmd.Execute()
}
