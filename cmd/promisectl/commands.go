package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"promisewatch-be/app"
	"promisewatch-be/config"
	"promisewatch-be/logger"
	"promisewatch-be/models"
	authUtils "promisewatch-be/utils"
)

// cliEnv is what each command needs: the wired app and where to print.
type cliEnv struct {
	app *app.App
	out io.Writer
}

func withApp(cmd *cobra.Command, run func(*cliEnv) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	// The CLI never serves reports, so it needs no rate limiter.
	cfg.ReportRateLimit = 0

	log := logger.NewWithWriter(cmd.ErrOrStderr(), "promisectl", cfg.LogLevel)
	a, err := app.Build(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	return run(&cliEnv{app: a, out: cmd.OutOrStdout()})
}

func runSeed(ctx context.Context, env *cliEnv, party string, year int) error {
	var (
		count int
		err   error
	)
	if party != "" {
		if year == 0 {
			return fmt.Errorf("--year required with --party")
		}
		count, err = env.app.Promises.SeedSubset(ctx, models.Party(strings.ToUpper(party)), year)
	} else {
		count, err = env.app.Promises.SeedAll(ctx)
	}
	fmt.Fprintf(env.out, "seeded %d promises\n", count)
	return err
}

func runClear(ctx context.Context, env *cliEnv) error {
	count, err := env.app.Promises.ClearAll(ctx)
	fmt.Fprintf(env.out, "deleted %d promises\n", count)
	return err
}

func runReseed(ctx context.Context, env *cliEnv) error {
	count, err := env.app.Promises.Reseed(ctx)
	fmt.Fprintf(env.out, "reseeded %d promises\n", count)
	return err
}

func runStats(ctx context.Context, env *cliEnv) error {
	stats, err := env.app.Stats.Stats(ctx)
	if err != nil {
		return fmt.Errorf("statistics unavailable: %w", err)
	}
	return printJSON(env.out, stats)
}

func runIndicators(ctx context.Context, env *cliEnv, save bool) error {
	snap := env.app.Aggregator.All(ctx)
	if save {
		if _, err := env.app.History.SaveAll(ctx, snap.Records()); err != nil {
			return err
		}
	}
	return printJSON(env.out, snap)
}

func runHashKey(out io.Writer, key string) error {
	hash, err := authUtils.HashAdminKey(key)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, hash)
	return err
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
