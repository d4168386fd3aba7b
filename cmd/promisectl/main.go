package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	partyFlag string
	yearFlag  int
	rootCmd   = &cobra.Command{
		Use:   "promisectl",
		Short: "Admin CLI for the promise tracker stores",
	}
)

func main() {
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed manifesto promises (all, or one party and year)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(env *cliEnv) error {
				return runSeed(cmd.Context(), env, partyFlag, yearFlag)
			})
		},
	}
	seedCmd.Flags().StringVarP(&partyFlag, "party", "p", "", "Party to seed (NDC, NPP)")
	seedCmd.Flags().IntVarP(&yearFlag, "year", "y", 0, "Manifesto year, required with --party")
	rootCmd.AddCommand(seedCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete every promise",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(env *cliEnv) error { return runClear(cmd.Context(), env) })
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "reseed",
		Short: "Clear then seed every manifesto",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(env *cliEnv) error { return runReseed(cmd.Context(), env) })
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Print promise and report statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(env *cliEnv) error { return runStats(cmd.Context(), env) })
		},
	})

	var snapshot bool
	indicatorsCmd := &cobra.Command{
		Use:   "indicators",
		Short: "Fetch every economic indicator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(env *cliEnv) error { return runIndicators(cmd.Context(), env, snapshot) })
		},
	}
	indicatorsCmd.Flags().BoolVarP(&snapshot, "save", "s", false, "Also save the values to indicator history")
	rootCmd.AddCommand(indicatorsCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "hash-key KEY",
		Short: "Print the ADMIN_KEY_HASH value for an admin key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHashKey(cmd.OutOrStdout(), args[0])
		},
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
