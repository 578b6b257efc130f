// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// laptopctl is the operator CLI of Cypher's Laptop.
//
//	laptopctl migrate [config flags]
//	laptopctl run-pass [config flags]
//	laptopctl show-store -owner 42 [-date 2026-10-14] [-mfa 123456] [-- config flags]
//	laptopctl version
//
// Config flags, environment variables and the JSON file are the same as the
// bot's.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/cyphers-laptop/internal/app"
	"github.com/MKhiriev/cyphers-laptop/internal/config"
	"github.com/MKhiriev/cyphers-laptop/internal/logger"
	"github.com/MKhiriev/cyphers-laptop/internal/tui"
	"github.com/MKhiriev/cyphers-laptop/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var errUsage = errors.New("usage: laptopctl <migrate|run-pass|show-store|version> [flags]")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, tui.RenderError(err))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "version":
		fmt.Fprintln(out, tui.RenderBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)))
		return nil
	case "migrate":
		return withRuntime(ctx, args[1:], func(rt *app.Runtime) error {
			fmt.Fprintln(out, "migrations applied, schema is ready")
			return nil
		})
	case "run-pass":
		return withRuntime(ctx, args[1:], func(rt *app.Runtime) error {
			report, err := rt.Services.ReminderService.RunPass(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, tui.RenderPassReport(report))
			return nil
		})
	case "show-store":
		return showStore(ctx, args[1:], out)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func showStore(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("show-store", flag.ContinueOnError)
	ownerID := fs.Int64("owner", 0, "Chat user id")
	date := fs.String("date", "", "Store date (2006-01-02), today when empty")
	mfa := fs.String("mfa", "", "Two-factor code")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var day time.Time
	if *date != "" {
		parsed, err := time.Parse(time.DateOnly, *date)
		if err != nil {
			return fmt.Errorf("%w: -date: %v", errUsage, err)
		}
		day = parsed
	}

	return withRuntime(ctx, fs.Args(), func(rt *app.Runtime) error {
		view, err := rt.Services.Commands.Store(ctx, *ownerID, *mfa, day)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, tui.RenderStore(*ownerID, view))
		return nil
	})
}

// withRuntime loads the config from configArgs, wires the runtime and runs the
// startup sequence before calling fn.
func withRuntime(ctx context.Context, configArgs []string, fn func(rt *app.Runtime) error) error {
	cfg, err := config.GetStructuredConfig(configArgs)
	if err != nil {
		return err
	}

	log := logger.NewLogger("laptopctl", cfg.App.LogLevel)

	rt, err := app.NewRuntime(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer rt.Close()

	if err = rt.Lifecycle.Start(ctx, rt.StartupSteps()...); err != nil {
		return err
	}
	return fn(rt)
}
