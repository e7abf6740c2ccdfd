// Command alcgen generates ALC class expressions and persisted benchmark
// datasets from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/nodeadmin/alcgen"
	"github.com/nodeadmin/alcgen/config"
	"github.com/nodeadmin/alcgen/dataset"
	"github.com/nodeadmin/alcgen/guide"
	"github.com/nodeadmin/alcgen/manchester"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "alcgen",
		Short: "Generate ALC class expressions for benchmarking description-logic reasoners",
	}
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newDatasetCmd())
	return root
}

// addVerboseFlag registers the --verbose flag shared by every subcommand.
func addVerboseFlag(f *pflag.FlagSet, verbose *bool) {
	f.BoolVar(verbose, "verbose", false, "enable debug logging")
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func newGenerateCmd() *cobra.Command {
	var (
		depth    int
		seed     int64
		hasSeed  bool
		close    bool
		minimize bool
		prefix   string
		verbose  bool
		guideCfg = guide.DefaultRandomGuideConfig()
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a single class expression and print it in Manchester OWL syntax",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			var seedPtr *int64
			if hasSeed {
				seedPtr = &seed
			}
			gd := guide.NewRandomGuide(seedPtr, guideCfg, nil)

			coord := alcgen.NewCoordinator(log)
			ast, stats, err := coord.Generate(depth, gd, close, minimize)
			if err != nil {
				return err
			}
			log.Info("generation complete",
				zap.Duration("generate", stats.GenerateElapsed),
				zap.Duration("close", stats.CloseElapsed),
				zap.Duration("minimize", stats.MinimizeElapsed),
			)
			return manchester.Write(os.Stdout, prefix, ast)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&depth, "depth", 2, "maximum nesting depth of the generated expression")
	flags.Int64Var(&seed, "seed", 0, "seed for the random guide")
	flags.BoolVar(&hasSeed, "seeded", false, "use --seed instead of an unseeded random source")
	flags.BoolVar(&close, "close", false, "apply the closing pass (makes the expression unsatisfiable)")
	flags.BoolVar(&minimize, "minimize", false, "apply the minimisation pass")
	flags.StringVar(&prefix, "prefix", "http://example.org/alcgen", "ontology prefix URI")
	addVerboseFlag(flags, &verbose)
	flags.IntVar(&guideCfg.ConjunctsLow, "conjuncts-low", guideCfg.ConjunctsLow, "minimum conjuncts per node")
	flags.IntVar(&guideCfg.ConjunctsHigh, "conjuncts-high", guideCfg.ConjunctsHigh, "maximum conjuncts per node")
	flags.IntVar(&guideCfg.NRoles, "n-roles", guideCfg.NRoles, "number of distinct roles to draw from")

	return cmd
}

func newDatasetCmd() *cobra.Command {
	var (
		configPath string
		targetDir  string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Build a persisted benchmark dataset from a JSON configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			f, err := os.Open(configPath)
			if err != nil {
				return err
			}
			defer f.Close()

			cfg, err := config.Load(f)
			if err != nil {
				return err
			}

			return dataset.NewBuilder(log).Build(cfg, targetDir)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "path to the dataset configuration JSON file")
	flags.StringVar(&targetDir, "target", "", "directory to write the dataset into")
	addVerboseFlag(flags, &verbose)
	cmd.MarkFlagRequired("config")
	cmd.MarkFlagRequired("target")

	return cmd
}
