package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sieve/internal/config"
	"github.com/san-kum/sieve/internal/export"
	"github.com/san-kum/sieve/internal/grid"
	"github.com/san-kum/sieve/internal/log"
	"github.com/san-kum/sieve/internal/playback"
	"github.com/san-kum/sieve/internal/render"
	"github.com/san-kum/sieve/internal/sieve"
	"github.com/san-kum/sieve/internal/storage"
	"github.com/san-kum/sieve/internal/tui"
	"github.com/san-kum/sieve/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	verbose    bool
	logFile    string
	// Launch parameters
	frameRate  int
	dimensions int
	size       int
	theme      string
	preset     string
	// Output files
	gifOut string
	svgOut string
	// Plain text mode
	plain  bool
	cycles int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers commands and flags. The root command opens the
// preset menu when no subcommand is given.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sieve",
		Short: "animated sieve of eratosthenes",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.Init(os.Stderr, verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			closeLog, err := tuiLogging()
			if err != nil {
				return err
			}
			defer closeLog()
			return viz.RunInteractive(liveOptions(cfg), presetOptions(cmd))
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".sieve", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "log file for the terminal UI")
	addLaunchFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the animation",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addLaunchFlags(runCmd)
	runCmd.Flags().BoolVar(&plain, "plain", false, "print frames as plain text instead of the full-screen UI")
	runCmd.Flags().IntVar(&cycles, "cycles", 0, "stop after this many cycles in plain mode (0 = forever)")

	sequenceCmd := &cobra.Command{
		Use:   "sequence [size]",
		Short: "print the discovery order",
		Args:  cobra.MaximumNArgs(1),
		RunE:  printSequence,
	}
	addLaunchFlags(sequenceCmd)

	saveCmd := &cobra.Command{
		Use:   "save [size]",
		Short: "store the discovery order as a run",
		Args:  cobra.MaximumNArgs(1),
		RunE:  saveRun,
	}
	addLaunchFlags(saveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot primes found per step",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	gifCmd := &cobra.Command{
		Use:   "gif [size]",
		Short: "render one animation cycle to a GIF",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportGIF,
	}
	addLaunchFlags(gifCmd)
	gifCmd.Flags().StringVarP(&gifOut, "out", "o", "sieve.gif", "output file")

	svgCmd := &cobra.Command{
		Use:   "svg [size]",
		Short: "render the finished grid to an SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportSVG,
	}
	addLaunchFlags(svgCmd)
	svgCmd.Flags().StringVarP(&svgOut, "out", "o", "sieve.svg", "output file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSIZE\tFPS\tDIMENSIONS\tTHEME")
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n", name, p.Size, p.FrameRate, p.Dimensions, p.Theme)
			}
			return w.Flush()
		},
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list color themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range viz.ThemeNames() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, sequenceCmd, saveCmd, listCmd, plotCmd, exportJSONCmd, gifCmd, svgCmd, presetsCmd, themesCmd)
	return rootCmd
}

func addLaunchFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&frameRate, "frame-rate", config.DefaultFrameRate, "frames per second (10-40)")
	cmd.Flags().IntVar(&dimensions, "dimensions", config.DefaultDimensions, "rendered image size in pixels (800-2000)")
	cmd.Flags().IntVar(&size, "size", grid.DefaultSize, "grid size (10-18)")
	cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order, and clamps the result.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p, err := config.GetPreset(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
	}

	flags := cmd.Flags()
	if flags.Changed("frame-rate") || (preset == "" && configFile == "") {
		cfg.FrameRate = frameRate
	}
	if flags.Changed("dimensions") || (preset == "" && configFile == "") {
		cfg.Dimensions = dimensions
	}
	if flags.Changed("size") || (preset == "" && configFile == "") {
		cfg.Size = size
	}
	if flags.Changed("theme") || (preset == "" && configFile == "") {
		cfg.Theme = theme
	}

	cfg.Normalize()
	log.Debug("configuration", "frame_rate", cfg.FrameRate, "window_dimension", cfg.Dimensions, "size", cfg.Size, "theme", cfg.Theme)
	return cfg, nil
}

// sizeArg reads an optional size argument, falling back to the resolved config.
func sizeArg(args []string, cfg *config.Config) (grid.Config, error) {
	if len(args) == 0 {
		return grid.New(cfg.Size), nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return grid.Config{}, fmt.Errorf("invalid size %q: %w", args[0], err)
	}
	return grid.New(n), nil
}

// presetOptions resolves a preset picked in the menu with the same
// precedence as --preset, so explicitly set flags still win.
func presetOptions(cmd *cobra.Command) viz.PresetResolver {
	return func(name string) (viz.Options, error) {
		prev := preset
		preset = name
		defer func() { preset = prev }()

		cfg, err := resolveConfig(cmd)
		if err != nil {
			return viz.Options{}, err
		}
		return liveOptions(cfg), nil
	}
}

func liveOptions(cfg *config.Config) viz.Options {
	th, ok := viz.ResolveTheme(cfg.Theme)
	if !ok {
		log.Warn("unknown theme, using classic", "theme", cfg.Theme)
	}
	return viz.Options{
		Size:       cfg.Size,
		FrameRate:  cfg.FrameRate,
		Dimensions: cfg.Dimensions,
		Theme:      th,
	}
}

// tuiLogging keeps log output off the alternate screen.
func tuiLogging() (func(), error) {
	if logFile == "" {
		log.Discard()
		return func() {}, nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.Init(f, verbose)
	return func() { f.Close() }, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if plain {
		return runPlain(cfg)
	}
	closeLog, err := tuiLogging()
	if err != nil {
		return err
	}
	defer closeLog()

	log.Info("starting animation", "size", cfg.Size, "frame_rate", cfg.FrameRate)
	return viz.RunLive(liveOptions(cfg))
}

func runPlain(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := tui.NewLiveRenderer(os.Stdout, true)
	e := playback.New(cfg.Size, playback.WithObserver(r))
	r.Start()
	defer r.Stop()

	log.Info("starting plain animation", "size", cfg.Size, "frame_rate", cfg.FrameRate, "cycles", cycles)
	err := tui.Run(ctx, e, cfg.FrameRate, cycles)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func printSequence(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	g, err := sizeArg(args, cfg)
	if err != nil {
		return err
	}
	return writeSequence(os.Stdout, g)
}

func writeSequence(out io.Writer, g grid.Config) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tVALUE\tKIND\tROW\tCOL")
	step := 0
	for cv := range sieve.Generate(g.Limit()) {
		row, col := g.CellPosition(cv.Value)
		fmt.Fprintf(w, "%d\t%d\t%s\t%d\t%d\n", step, cv.Value, cv.Kind.Short(), row, col)
		step++
	}
	return w.Flush()
}

func saveRun(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	g, err := sizeArg(args, cfg)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	values := sieve.Collect(g.Limit())
	runID, err := st.Save(g, values)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	log.Debug("run saved", "id", runID, "dir", dataDir)

	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("grid: %dx%d\n", g.Size(), g.Size())
	fmt.Printf("primes: %d\n", sieve.CountPrimes(values))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSIZE\tPRIMES\tCOMPOSITES\tTIMESTAMP")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n", r.ID, r.Size, r.Primes, r.Composites, r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	steps, err := st.LoadSequence(runID)
	if err != nil {
		return err
	}
	if len(steps) < 2 {
		return fmt.Errorf("run %s has too few steps to plot", runID)
	}

	caption := fmt.Sprintf("primes found per step (%dx%d, %d primes)", meta.Size, meta.Size, meta.Primes)
	graph := asciigraph.Plot(storage.PrimeCurve(steps),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	steps, err := st.LoadSequence(runID)
	if err != nil {
		return err
	}

	out := struct {
		Metadata *storage.RunMetadata `json:"metadata"`
		Steps    []storage.Step       `json:"steps"`
	}{meta, steps}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func exportGIF(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	g, err := sizeArg(args, cfg)
	if err != nil {
		return err
	}
	th, _ := viz.ResolveTheme(cfg.Theme)

	anim, err := render.Cycle(context.Background(), g, cfg.Dimensions, cfg.FrameRate, th.Palette())
	if err != nil {
		return fmt.Errorf("render gif: %w", err)
	}

	f, err := os.Create(gifOut)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := render.EncodeGIF(f, anim); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}

	fmt.Printf("wrote %s (%dx%d grid, %d frames, %dpx)\n", gifOut, g.Size(), g.Size(), len(anim.Image), cfg.Dimensions)
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	g, err := sizeArg(args, cfg)
	if err != nil {
		return err
	}
	th, _ := viz.ResolveTheme(cfg.Theme)

	e := playback.New(g.Size())
	for !e.Done() {
		e.Advance()
	}

	svg := export.GridToSVG(g, e.RevealedCells(), cfg.Dimensions, th.Palette())
	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", svgOut)
	return nil
}
