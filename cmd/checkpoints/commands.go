package checkpoints

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/Skryptex/SKX-EDIT/blockindex"
	"github.com/Skryptex/SKX-EDIT/checkpoint"
	"github.com/Skryptex/SKX-EDIT/common/types"
	"github.com/Skryptex/SKX-EDIT/log"
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the checkpoints of the selected network",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			selector, err := a.selector()
			if err != nil {
				return err
			}
			r := selector.Active()
			out := c.OutOrStdout()
			fmt.Fprintf(out, "network %s, %d checkpoints\n", r.Network(), r.Len())
			fmt.Fprintf(out, "last checkpoint time %d, txs %d, txs per day %g\n",
				r.LastCheckpointTime(), r.LastCheckpointTxs(), r.TxsPerDay())
			for _, e := range r.Entries() {
				fmt.Fprintf(out, "%d %s\n", e.Height, e.ID)
			}
			return nil
		},
	}
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <height> <id>",
		Short: "Check a block against the checkpoints",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			height, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return log.ErrBadFlags(fmt.Errorf("parse height: %w", err))
			}
			id, err := types.HexToHash32(args[1])
			if err != nil {
				return log.ErrBadFlags(fmt.Errorf("parse id: %w", err))
			}
			selector, err := a.selector()
			if err != nil {
				return err
			}
			checker, err := a.checker(selector)
			if err != nil {
				return err
			}
			if err := checker.Verify(&types.BlockHeader{Height: height, ID: id}); err != nil {
				return err
			}
			switch _, ok := selector.Active().Lookup(height); {
			case !checker.Enabled():
				fmt.Fprintln(c.OutOrStdout(), "checkpoints disabled")
			case ok:
				fmt.Fprintln(c.OutOrStdout(), "matches checkpoint")
			default:
				fmt.Fprintln(c.OutOrStdout(), "no checkpoint at height")
			}
			return nil
		},
	}
}

func (a *app) estimateCmd() *cobra.Command {
	var (
		txs       uint64
		blockTime int64
		now       int64
	)
	c := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate verification progress at a block",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			selector, err := a.selector()
			if err != nil {
				return err
			}
			clock := clockwork.NewRealClock()
			if c.Flags().Changed("now") {
				clock = clockwork.NewFakeClockAt(time.Unix(now, 0))
			}
			if !c.Flags().Changed("time") {
				blockTime = clock.Now().Unix()
			}
			estimator := checkpoint.NewEstimator(selector, checkpoint.WithClock(clock))
			progress := estimator.GuessVerificationProgress(&types.BlockHeader{
				ChainTxCount: txs,
				Time:         blockTime,
			})
			fmt.Fprintf(c.OutOrStdout(), "%.6f\n", progress)
			return nil
		},
	}
	c.Flags().Uint64Var(&txs, "txs", 0, "cumulative number of transactions up to the block")
	c.Flags().Int64Var(&blockTime, "time", 0, "block timestamp in unix seconds, defaults to now")
	c.Flags().Int64Var(&now, "now", 0, "current time in unix seconds, defaults to the wall clock")
	return c
}

func (a *app) lastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "last <headers.json>",
		Short: "Print the highest checkpoint found among known headers",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			selector, err := a.selector()
			if err != nil {
				return err
			}
			checker, err := a.checker(selector)
			if err != nil {
				return err
			}
			idx, err := blockindex.Load(a.fs, args[0], a.conf.BlockIndexSize)
			if err != nil {
				return err
			}
			header, ok := checkpoint.LastReached[*types.BlockHeader](checker, idx)
			if !ok {
				fmt.Fprintln(c.OutOrStdout(), "none")
				return nil
			}
			fmt.Fprintf(c.OutOrStdout(), "%d %s\n", header.Height, header.ID)
			return nil
		},
	}
}

func (a *app) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Write the checkpoints of the selected network to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			selector, err := a.selector()
			if err != nil {
				return err
			}
			r := selector.Active()
			if err := checkpoint.Export(a.fs, args[0], r); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "exported %d checkpoints of %s to %s\n", r.Len(), r.Network(), args[0])
			return nil
		},
	}
}

func (a *app) verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <path>",
		Short: "Validate a checkpoints file and compare it with the builtin data",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			r, err := checkpoint.LoadFile(a.fs, args[0])
			if err != nil {
				return log.ErrInvalidCheckpoints(err)
			}
			out := c.OutOrStdout()
			fmt.Fprintf(out, "valid, network %s, %d checkpoints\n", r.Network(), r.Len())
			builtin, err := checkpoint.Builtin(r.Network())
			if err != nil {
				fmt.Fprintln(out, "no builtin checkpoints for network")
				return nil
			}
			diff := cmp.Diff(builtin.Entries(), r.Entries()) + cmp.Diff(builtin.Calibration(), r.Calibration())
			if diff == "" {
				fmt.Fprintln(out, "matches builtin")
				return nil
			}
			fmt.Fprintf(out, "differs from builtin (-builtin +file):\n%s", diff)
			return nil
		},
	}
}
