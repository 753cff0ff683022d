// bulkchecker generates Solana wallets and sorts secret keys by balance.
// Usage:
//
//	bulkchecker generate --count 100
//	bulkchecker check --input skey.txt
//	bulkchecker auto --count 100
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlexZinkM/bulk-checker/internal/client"
	"github.com/AlexZinkM/bulk-checker/internal/config"
	"github.com/AlexZinkM/bulk-checker/internal/logx"
	"github.com/AlexZinkM/bulk-checker/internal/sink"
	"github.com/AlexZinkM/bulk-checker/solana"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

func main() {
	app := &cli.App{
		Name:  "bulkchecker",
		Usage: "generate Solana wallets and sort secret keys into funded and empty files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "optional YAML file overriding environment settings",
			},
		},
		Before: setup,
		After: func(*cli.Context) error {
			logx.Close()
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "generate",
				Usage:  "generate new wallets into the private and public key files",
				Flags:  []cli.Flag{countFlag()},
				Action: generate,
			},
			{
				Name:  "check",
				Usage: "check balances of the keys in an input file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"i"},
						Usage:   "input file, one secret key per line (default: INPUT_FILE)",
					},
				},
				Action: check,
			},
			{
				Name:   "auto",
				Usage:  "generate wallets and check them right away",
				Flags:  []cli.Flag{countFlag()},
				Action: auto,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func countFlag() cli.Flag {
	return &cli.IntFlag{
		Name:     "count",
		Aliases:  []string{"n"},
		Usage:    "number of wallets to generate",
		Required: true,
	}
}

func setup(c *cli.Context) error {
	if err := config.Init(c.String("config")); err != nil {
		return err
	}
	cfg := config.Get()
	return logx.Init(logx.Config{
		Level:       cfg.LogLevel,
		FilePath:    cfg.LogFile,
		HideSecrets: cfg.HideSecretsInLog,
	})
}

func generate(c *cli.Context) error {
	cfg := config.Get()
	count, err := countArg(c)
	if err != nil {
		return err
	}

	ctx, stop := withInterrupt(c.Context)
	defer stop()

	res, err := solana.GenerateKeys(ctx, count, cfg.PrivateKeysFile, cfg.PublicKeysFile)
	if err != nil {
		return err
	}

	fmt.Printf("%d key pairs written to %s (private) and %s (public)\n", len(res.Keys), res.PrivatePath, res.PublicPath)
	return nil
}

func check(c *cli.Context) error {
	cfg := config.Get()
	input := cfg.InputFile
	if in := c.String("input"); in != "" {
		input = in
	}

	opt, closeProbe, err := checkOptions(cfg, input)
	if err != nil {
		return err
	}
	defer closeProbe()
	opt.InputPath = input

	ctx, stop := withInterrupt(c.Context)
	defer stop()

	start := time.Now()
	report, err := solana.CheckWallets(ctx, opt)
	logx.S().Infow("run complete", "elapsed", logx.Since(start), "checked", report.Counters.Checked)
	return err
}

func auto(c *cli.Context) error {
	cfg := config.Get()
	count, err := countArg(c)
	if err != nil {
		return err
	}

	opt, closeProbe, err := checkOptions(cfg, cfg.PrivateKeysFile)
	if err != nil {
		return err
	}
	defer closeProbe()

	ctx, stop := withInterrupt(c.Context)
	defer stop()

	gen, report, err := solana.GenerateAndCheck(ctx, count, cfg.PrivateKeysFile, cfg.PublicKeysFile, opt)
	if gen != nil && report != nil {
		logx.S().Infow("run complete", "generated", len(gen.Keys), "checked", report.Counters.Checked)
	}
	return err
}

func countArg(c *cli.Context) (int, error) {
	count := c.Int("count")
	if count <= 0 {
		return 0, fmt.Errorf("count must be a positive number, got %d", count)
	}
	return count, nil
}

func checkOptions(cfg *config.Config, input string) (solana.CheckOptions, func(), error) {
	probe, err := solana.NewRPCProbe(cfg.SolanaRPCURL, cfg.Commitment)
	if err != nil {
		return solana.CheckOptions{}, nil, err
	}

	progress := sink.NewProgress(os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))
	printBanner(progress, probe.URL(), input, cfg)

	opt := solana.CheckOptions{
		FundedPath: cfg.FundedFile,
		EmptyPath:  cfg.EmptyFile,
		Probe:      probe,
		Throttle:   client.NewThrottle(cfg.CheckInterval),
		Progress:   progress,
		QRDir:      cfg.QRDir,
	}
	return opt, func() { _ = probe.Close() }, nil
}

func printBanner(p *sink.Progress, rpcURL, input string, cfg *config.Config) {
	p.Printf("Connected to RPC: %s\nInput File: %s\nOutput balance > 0: %s\nOutput balance = 0: %s\n\n",
		rpcURL, input, cfg.FundedFile, cfg.EmptyFile)
}

// withInterrupt cancels the returned context on SIGINT or SIGTERM.
// stop releases the signal handler and must be called when the command ends.
func withInterrupt(parent context.Context) (ctx context.Context, stop func()) {
	ctx, cancel := context.WithCancel(parent)
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-ch:
			logx.S().Warnw("interrupt received, stopping after the current wallet")
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, func() {
		signal.Stop(ch)
		cancel()
	}
}
