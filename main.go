package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/aaronzipp/detective-quest/internal/config"
	"github.com/aaronzipp/detective-quest/internal/console"
	"github.com/aaronzipp/detective-quest/internal/game"
	"github.com/aaronzipp/detective-quest/internal/logging"
	"github.com/aaronzipp/detective-quest/internal/models"
	"github.com/aaronzipp/detective-quest/internal/render"
	"github.com/aaronzipp/detective-quest/internal/scenario"
)

// flags holds the command line overrides shared by every command
type flags struct {
	configPath   string
	scenarioPath string
	plain        bool
	debug        bool
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:          "detective-quest",
		Short:        "Explore the mansion, collect clues and accuse the culprit",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return play(cmd, f, in, out)
		},
	}
	root.PersistentFlags().StringVar(&f.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&f.scenarioPath, "scenario", "", "path to a YAML scenario (default: built-in mansion)")
	root.PersistentFlags().BoolVar(&f.plain, "plain", false, "disable colors and borders")
	root.PersistentFlags().BoolVar(&f.debug, "debug", false, "log every game event to stderr")

	root.AddCommand(&cobra.Command{
		Use:   "suspects",
		Short: "Print the evidence table of the scenario (clue and suspect)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listSuspects(f, out)
		},
	})
	root.SetIn(in)
	root.SetOut(out)
	return root
}

// setup loads the config and scenario, applying command line overrides
func setup(f *flags) (config.Config, *models.Scenario, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, nil, err
	}
	if f.scenarioPath != "" {
		cfg.Scenario = f.scenarioPath
	}
	if f.plain {
		cfg.Output.Plain = true
	}
	if f.debug {
		cfg.Log.Level = "debug"
	}

	s, err := scenario.Load(cfg.Scenario)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, s, nil
}

func play(cmd *cobra.Command, f *flags, in io.Reader, out io.Writer) error {
	cfg, s, err := setup(f)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging())
	if err != nil {
		return err
	}
	defer logger.Close()

	for _, clue := range scenario.UnlinkedClues(s) {
		logger.Warn("clue has no suspect in the evidence table", "clue", clue)
	}

	session := game.NewSession(
		game.NewCase(s, cfg.BucketCount),
		console.New(in, out),
		game.Options{
			Threshold: cfg.EvidenceThreshold,
			Renderer:  render.New(cfg.Output.Plain || !isTerminal(out)),
			Logger:    logger.Logger,
		},
	)
	return session.Run(cmd.Context())
}

func listSuspects(f *flags, out io.Writer) error {
	cfg, s, err := setup(f)
	if err != nil {
		return err
	}

	idx := scenario.BuildIndex(s, cfg.BucketCount)
	var rows [][2]string
	idx.Entries(func(clue, suspect string) {
		rows = append(rows, [2]string{clue, suspect})
	})
	sort.Slice(rows, func(i, j int) bool { return rows[i][0] < rows[j][0] })

	r := render.New(cfg.Output.Plain || !isTerminal(out))
	fmt.Fprintln(out, r.EvidenceTable(rows))
	return nil
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
