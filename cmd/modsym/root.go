package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/f3rmion/modsym/cosetlist"
	"github.com/f3rmion/modsym/internal/config"
	"github.com/f3rmion/modsym/internal/logger"
	"github.com/f3rmion/modsym/registry"
)

// app holds the state shared by every subcommand.
type app struct {
	v        *viper.Viper
	cfgFile  string
	level    int
	gens     []int
	logger   *zap.Logger
	registry *registry.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "modsym",
		Short: "Coset representatives for congruence subgroups Gamma_H(N)",
		Long: `modsym computes the canonical coset representatives of Gamma_H(N)
in SL_2(Z), the index set of Manin symbols for modular symbols.

The group is chosen with --level and any number of --gen flags; H is the
subgroup of (Z/NZ)^* generated by the given units. Without --gen the group
is Gamma1(N).`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./modsym.yaml or $HOME/.config/modsym/modsym.yaml)")
	flags.IntVarP(&a.level, "level", "N", 1, "level N of the group")
	flags.IntSliceVarP(&a.gens, "gen", "g", nil, "generator of H (repeatable)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))

	root.AddCommand(
		a.listCmd(),
		a.lenCmd(),
		a.itemCmd(),
		a.normalizeCmd(),
		a.containsCmd(),
		a.compareCmd(),
		a.encodeCmd(),
		a.decodeCmd(),
		a.upgradeCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	l, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	a.logger = l.With(zap.String("command", cmd.Name()))
	a.registry = registry.New(cfg.Cache.Size, registry.WithLogger(a.logger))
	return nil
}

// list returns the coset list of the group selected by the global flags.
func (a *app) list() (*cosetlist.CosetList, error) {
	l, err := a.registry.Get(a.level, a.gens...)
	if err != nil {
		return nil, fmt.Errorf("group of level %d with generators %v: %w", a.level, a.gens, err)
	}
	return l, nil
}
