package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/f3rmion/modsym/archive"
	"github.com/f3rmion/modsym/cosetlist"
	"github.com/f3rmion/modsym/group"
)

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, s := range args {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", s)
		}
		out[i] = n
	}
	return out, nil
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every coset representative",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := a.list()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, l)
			for _, p := range l.List() {
				fmt.Fprintln(out, p)
			}
			return nil
		},
	}
}

func (a *app) lenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "len",
		Short: "Print the number of cosets (the index of the group)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := a.list()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), l.Len())
			return nil
		},
	}
}

func (a *app) itemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "item <i>",
		Short: "Print the representative at position i",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInts(args)
			if err != nil {
				return err
			}
			l, err := a.list()
			if err != nil {
				return err
			}
			p, err := l.Item(n[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}
}

func (a *app) normalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <u> <v>",
		Short: "Print the representative equivalent to (u, v)",
		Long:  "Print the representative equivalent to (u, v). The result is only meaningful when gcd(u, v, N) = 1.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			uv, err := parseInts(args)
			if err != nil {
				return err
			}
			l, err := a.list()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), l.Normalize(uv[0], uv[1]))
			return nil
		},
	}
}

func (a *app) containsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contains <u> <v>",
		Short: "Report whether (u, v) is one of the representatives",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			uv, err := parseInts(args)
			if err != nil {
				return err
			}
			l, err := a.list()
			if err != nil {
				return err
			}
			i, ok := l.Index(group.Pair{U: uv[0], V: uv[1]})
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "false")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "true %d\n", i)
			return nil
		},
	}
}

func (a *app) compareCmd() *cobra.Command {
	var otherLevel int
	var otherGens []int
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare with the coset list of another group",
		Long: `Compare the selected group's coset list with another one. Prints -1, 0
or 1. Lists compare exactly as their groups do: by level, then by the
order of H, then by the elements of H.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := a.list()
			if err != nil {
				return err
			}
			if otherLevel == 0 {
				otherLevel = a.level
			}
			o, err := a.registry.Get(otherLevel, otherGens...)
			if err != nil {
				return fmt.Errorf("other group: %w", err)
			}
			c, err := l.Compare(o)
			if errors.Is(err, cosetlist.ErrNotComparable) {
				fmt.Fprintln(cmd.OutOrStdout(), "not comparable")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c)
			return nil
		},
	}
	cmd.Flags().IntVar(&otherLevel, "other-level", 0, "level of the other group (default: --level)")
	cmd.Flags().IntSliceVar(&otherGens, "other-gen", nil, "generator of the other group's H (repeatable)")
	return cmd
}

func (a *app) encodeCmd() *cobra.Command {
	var legacy bool
	cmd := &cobra.Command{
		Use:   "encode <file>",
		Short: "Write the coset list to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.list()
			if err != nil {
				return err
			}
			encode := archive.Encode
			if legacy {
				encode = archive.EncodeLegacy
			}
			data, err := encode(l)
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[0], data, 0o644); err != nil {
				return err
			}
			a.logger.Info("wrote coset list", zap.String("file", args[0]), zap.Int("bytes", len(data)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&legacy, "legacy", false, "write the version 1 format")
	return cmd
}

func (a *app) decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <file>",
		Short: "Read a coset list file and print its group and length",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			l, err := archive.Decode(data, cosetlist.WithLogger(a.logger))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), l)
			fmt.Fprintln(cmd.OutOrStdout(), l.Len())
			return nil
		},
	}
}

func (a *app) upgradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade <file>",
		Short: "Rewrite a coset list file in the current format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			from, err := archive.Version(data)
			if err != nil {
				return err
			}
			up, err := archive.Upgrade(data)
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[0], up, 0o644); err != nil {
				return err
			}
			a.logger.Info("upgraded coset list",
				zap.String("file", args[0]),
				zap.Uint("from", from),
				zap.Uint("to", archive.VersionCurrent),
			)
			return nil
		},
	}
}
