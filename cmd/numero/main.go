package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/numero/internal/animator"
	"github.com/san-kum/numero/internal/config"
	"github.com/san-kum/numero/internal/logging"
	"github.com/san-kum/numero/internal/prompt"
	"github.com/san-kum/numero/internal/render"
	"github.com/san-kum/numero/internal/viz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configFile     string
	preset         string
	seed           uint64
	logFile        string
	logLevel       string
	suppressErrors bool
	policy         string
	noPrompt       bool
	themeName      string
	force          bool
)

// main is the entry point for the numero CLI. Without a subcommand it runs the
// interactive animation on the plain terminal.
// It exits the process with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "numero",
		Short:        "slot machine number reveal for the terminal",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runAnimation,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write JSON logs to this file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level")
	rootCmd.PersistentFlags().BoolVar(&suppressErrors, "suppress-errors", false, "print a generic message instead of failing on unexpected errors")
	rootCmd.PersistentFlags().StringVar(&policy, "policy", config.DefaultPolicy, "scramble policy (distinct, independent)")
	rootCmd.PersistentFlags().BoolVar(&noPrompt, "no-prompt", false, "skip the setup questions and use the configured settings")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the animation full screen",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&themeName, "theme", config.DefaultTheme, "color theme")

	pacingCmd := &cobra.Command{
		Use:   "pacing [digits]",
		Short: "plot the settle delay schedule",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotPacing,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the effective settings to a yaml file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(tuiCmd, pacingCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig layers defaults, preset, config file and explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Overlay(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("suppress-errors") {
		cfg.SuppressErrors = suppressErrors
	}
	if flags.Changed("policy") {
		cfg.Policy = policy
	}
	if flags.Lookup("theme") != nil && flags.Changed("theme") {
		cfg.Theme = themeName
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newRand(seed uint64) (*rand.Rand, uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x5eed5eed5eed5eed)), seed
}

// session holds what both front ends share: config, logger, rng and the
// user supplied settings.
type session struct {
	cfg      *config.Config
	logger   *zap.Logger
	rng      *rand.Rand
	prompter *prompt.Prompter
	screen   *render.Screen
	settings animator.Settings
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	rng, usedSeed := newRand(cfg.Seed)
	logger.Info("session start", zap.Uint64("seed", usedSeed), zap.String("policy", cfg.Policy))

	return &session{
		cfg:      cfg,
		logger:   logger,
		rng:      rng,
		prompter: prompt.New(os.Stdin, os.Stdout, cfg.MinDigits, cfg.MaxDigits),
		screen:   render.NewScreen(os.Stdout),
	}, nil
}

// collect asks the setup questions unless prompting is disabled.
func (s *session) collect() error {
	base, err := s.cfg.ToSettings()
	if err != nil {
		return err
	}

	fmt.Println("\nNow is the time to resize the console, if you wish.")
	time.Sleep(s.cfg.ResizePauseDuration())

	if noPrompt {
		s.settings = base
	} else {
		s.settings, err = s.prompter.Collect(s.rng, base)
		if err != nil {
			return err
		}
	}
	s.logger.Info("settings",
		zap.Int("digits", s.settings.NumDigits),
		zap.Bool("shuffle_reveal", s.settings.ShuffleReveal),
		zap.Bool("explicit_final", s.settings.Final != nil),
	)
	return nil
}

// guard applies the error suppression setting. Validation errors always
// fail the command.
func (s *session) guard(err *error) {
	if r := recover(); r != nil {
		if !s.cfg.SuppressErrors {
			panic(r)
		}
		s.logger.Error("recovered panic", zap.Any("panic", r))
		*err = nil
		fmt.Println("Error :(")
		return
	}
	if *err == nil || !s.cfg.SuppressErrors || prompt.IsValidation(*err) {
		return
	}
	s.logger.Error("suppressed error", zap.Error(*err))
	*err = nil
	fmt.Println("Error :(")
}

func runAnimation(cmd *cobra.Command, args []string) (err error) {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.logger.Sync()
	defer s.guard(&err)

	if err := s.collect(); err != nil {
		return err
	}
	return s.animate(cmd.Context())
}

func (s *session) animate(ctx context.Context) error {
	cols, lines := s.screen.Size()
	before, after := render.VerticalPadding(lines)
	s.screen.Clear()
	if err := s.screen.Newlines(before); err != nil {
		return err
	}

	term := render.NewTerminal(os.Stdout, s.settings.Separator, cols, animator.SystemClock.Sleep)
	a, err := animator.New(s.settings, s.rng, animator.SystemClock, term)
	if err != nil {
		return err
	}
	a.AddObserver(logging.NewFrameObserver(s.logger))

	result, err := a.Run(ctx)
	if err != nil {
		return err
	}
	s.logger.Info("settled",
		zap.String("final", result.Final.String()),
		zap.Ints("order", result.Order),
		zap.Int("scramble_frames", result.ScrambleFrames),
		zap.Duration("elapsed", result.Elapsed),
	)

	if err := s.screen.Newlines(after); err != nil {
		return err
	}
	typed, err := s.prompter.Close()
	if err != nil {
		return err
	}
	s.screen.Clear()
	if msg := prompt.Scold(typed); msg != "" {
		fmt.Println(msg)
	}
	return nil
}

func runTUI(cmd *cobra.Command, args []string) (err error) {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.logger.Sync()
	defer s.guard(&err)

	if err := s.collect(); err != nil {
		return err
	}

	a, err := animator.New(s.settings, s.rng, animator.SystemClock, nil)
	if err != nil {
		return err
	}
	a.AddObserver(logging.NewFrameObserver(s.logger))

	typed, err := viz.Run(a, animator.SystemClock, viz.GetTheme(s.cfg.Theme))
	if errors.Is(err, viz.ErrAborted) {
		return nil
	}
	if err != nil {
		return err
	}
	if msg := prompt.Scold(typed); msg != "" {
		fmt.Println(msg)
	}
	return nil
}

func plotPacing(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	settings, err := cfg.ToSettings()
	if err != nil {
		return err
	}

	n := settings.NumDigits
	if len(args) > 0 {
		n, err = strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid digit count: %s", args[0])
		}
	}

	delays := animator.DelaySchedule(settings.BaseDelay, settings.Multiplier, n)
	data := make([]float64, len(delays))
	var total time.Duration
	for i, d := range delays {
		data[i] = float64(d) / float64(time.Millisecond)
		total += d
	}

	if len(data) > 1 {
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption(fmt.Sprintf("reveal delay (ms), x%.2f per digit", settings.Multiplier)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	fmt.Printf("digits: %d\n", n)
	fmt.Printf("first reveal: %v\n", delays[0])
	fmt.Printf("last reveal: %v\n", delays[len(delays)-1])
	fmt.Printf("settle time: %v (+%v pre-reveal)\n", total.Round(time.Millisecond), settings.BaseDelay)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDIGITS\tDURATION\tPACING\tMULT\tPOLICY\tSHUFFLE")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%.1fs\t%.3fs\t%.2f\t%s\t%v\n",
			name, p.Digits, p.Duration, p.Pacing, p.Multiplier, p.Policy, p.ShuffleReveal)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "numero.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
