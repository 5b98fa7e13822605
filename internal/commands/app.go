// Package commands implements the one-shot bvdubank command line.
package commands

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"bvdu-bank/internal/config"
	"bvdu-bank/internal/database"
	apperrors "bvdu-bank/internal/errors"
	"bvdu-bank/internal/services"

	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// App carries what every command needs: configuration, output streams and the bank options
type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Out     io.Writer
	Err     io.Writer
	Options services.BankOptions

	// JSON switches results and failures to JSON output
	JSON bool
}

// SetFlags registers the flags shared by every command
func (a *App) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&a.JSON, "json", false, "print results and errors as JSON")
}

// Register adds every command to the commander
func (a *App) Register(c *subcommands.Commander) {
	customer := []runner{
		&createAccountCmd{},
		&balanceCmd{},
		&detailsCmd{},
		&depositCmd{},
		&withdrawCmd{},
		&transferCmd{},
		&upiTransferCmd{},
		&statementCmd{},
		&notificationsCmd{},
	}
	market := []runner{
		&pricesCmd{},
		&buyCmd{},
		&sellCmd{},
		&portfolioCmd{},
	}
	admin := []runner{
		&adminAccountsCmd{},
		&adminSetPriceCmd{},
		&adminRandomizeCmd{},
		&adminInterestCmd{},
		&adminSetFXCmd{},
		&adminUnfreezeCmd{},
		&adminDeactivateCmd{},
		&adminReactivateCmd{},
		&adminTickCmd{},
		&adminAuditCmd{},
	}

	for _, r := range customer {
		c.Register(&command{app: a, runner: r}, "banking")
	}
	for _, r := range market {
		c.Register(&command{app: a, runner: r}, "market")
	}
	for _, r := range admin {
		c.Register(&command{app: a, runner: r}, "admin")
	}
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
}

// runner is one command's flags and behaviour; command adapts it to subcommands.Command
type runner interface {
	Name() string
	Synopsis() string
	Usage() string
	SetFlags(f *flag.FlagSet)
	Run(ctx context.Context, env *Env) error
}

// Env is the opened bank handed to a running command
type Env struct {
	Bank *services.Bank
	Out  io.Writer
	JSON bool
}

// Print writes v as indented JSON when -json is set, otherwise the text form
func (e *Env) Print(v any, text func(w io.Writer)) error {
	if e.JSON {
		enc := json.NewEncoder(e.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(e.Out)
	return nil
}

type command struct {
	app    *App
	runner runner
}

func (c *command) Name() string             { return c.runner.Name() }
func (c *command) Synopsis() string         { return c.runner.Synopsis() }
func (c *command) Usage() string            { return c.runner.Usage() }
func (c *command) SetFlags(f *flag.FlagSet) { c.runner.SetFlags(f) }

func (c *command) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 0 {
		fmt.Fprintf(c.app.Err, "unexpected arguments: %v\n%s", f.Args(), c.runner.Usage())
		return subcommands.ExitUsageError
	}
	return c.app.run(ctx, c.runner)
}

func (a *App) run(ctx context.Context, r runner) subcommands.ExitStatus {
	reg := prometheus.NewRegistry()
	opts := a.Options
	if opts.Metrics == nil && a.Config.Metrics.TextfilePath != "" {
		opts.Metrics = services.NewPrometheusMetrics(reg)
	}
	if opts.Clock == nil {
		opts.Clock = services.SystemClock{}
	}

	db, err := database.Open(a.Config, a.Logger)
	if err != nil {
		return a.fail(err)
	}
	if err := database.NewSeeder(db, opts.Clock.Now).EnsureDefaults(); err != nil {
		return a.fail(err)
	}

	env := &Env{
		Bank: services.NewBank(db, opts, a.Logger),
		Out:  a.Out,
		JSON: a.JSON,
	}
	runErr := r.Run(ctx, env)

	if path := a.Config.Metrics.TextfilePath; path != "" {
		if err := prometheus.WriteToTextfile(path, reg); err != nil {
			a.Logger.Warn("failed to write metrics textfile", "path", path, "error", err)
		}
	}

	if runErr != nil {
		return a.fail(runErr)
	}
	return subcommands.ExitSuccess
}

// fail reports err on the error stream and maps it to the exit status of its kind
func (a *App) fail(err error) subcommands.ExitStatus {
	traceID := uuid.NewString()
	resp := apperrors.FromError(err, traceID)

	a.Logger.Debug("command failed", "code", resp.Error.Code, "trace_id", traceID, "error", err)
	if a.JSON {
		if b, jerr := resp.ToJSON(); jerr == nil {
			fmt.Fprintln(a.Err, string(b))
			return subcommands.ExitStatus(resp.GetExitStatus())
		}
	}
	fmt.Fprintf(a.Err, "Error: %s\n", resp.Error.Message)
	if apperrors.CodeOf(err) != apperrors.SystemInternalError {
		for _, detail := range resp.Error.Details {
			fmt.Fprintf(a.Err, "  - %s\n", detail)
		}
	}
	return subcommands.ExitStatus(resp.GetExitStatus())
}
