package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"bvdu-bank/internal/dto"
	"bvdu-bank/internal/models"
	"bvdu-bank/internal/services"

	"github.com/shopspring/decimal"
)

type adminAccountsCmd struct {
	adminCredentials
}

func (*adminAccountsCmd) Name() string     { return "admin-accounts" }
func (*adminAccountsCmd) Synopsis() string { return "list every account" }
func (*adminAccountsCmd) Usage() string {
	return "bvdubank admin-accounts -admin-pin <pin>\n"
}
func (c *adminAccountsCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *adminAccountsCmd) Run(_ context.Context, env *Env) error {
	session, logout, err := c.login(env)
	defer logout()
	if err != nil {
		return err
	}
	accounts, err := env.Bank.Admin.ListAccounts(session)
	if err != nil {
		return err
	}
	details := make([]dto.AccountDetails, 0, len(accounts))
	for i := range accounts {
		details = append(details, dto.NewAccountDetails(&accounts[i]))
	}
	return env.Print(details, func(w io.Writer) {
		fmt.Fprintf(w, "%-6s %-24s %-8s %16s  %-8s %-6s %s\n", "ACC", "NAME", "TYPE", "BALANCE", "STATUS", "FAILS", "UPI")
		for _, a := range details {
			fmt.Fprintf(w, "%-6d %-24s %-8s %16s  %-8s %-6d %s\n",
				a.Number, a.Name, a.AccountType, models.FormatINR(a.Balance), accountStatus(a), a.FailedAttempts, a.UPI)
		}
	})
}

func accountStatus(a dto.AccountDetails) string {
	switch {
	case !a.Active:
		return "inactive"
	case a.Frozen:
		return "frozen"
	default:
		return "active"
	}
}

type adminSetPriceCmd struct {
	adminCredentials
	asset string
	price decimal.Decimal
}

func (*adminSetPriceCmd) Name() string     { return "admin-set-price" }
func (*adminSetPriceCmd) Synopsis() string { return "override the quote of one asset" }
func (*adminSetPriceCmd) Usage() string {
	return "bvdubank admin-set-price -admin-pin <pin> -asset <id> -price <market currency>\n"
}
func (c *adminSetPriceCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.StringVar(&c.asset, "asset", "", "asset id")
	f.Var(newDecimalValue(&c.price), "price", "new price in the asset's market currency")
}

func (c *adminSetPriceCmd) Run(_ context.Context, env *Env) error {
	session, logout, err := c.login(env)
	defer logout()
	if err != nil {
		return err
	}
	record, err := env.Bank.Admin.SetPrice(session, dto.SetPriceRequest{AssetID: c.asset, Price: c.price})
	if record == nil {
		return err
	}
	printErr := env.Print(record, func(w io.Writer) {
		fmt.Fprintf(w, "%s price set to %s\n", record.AssetID, models.FormatMoney(record.Price, record.Market.Currency()))
	})
	return firstError(err, printErr)
}

type adminRandomizeCmd struct {
	adminCredentials
}

func (*adminRandomizeCmd) Name() string     { return "admin-randomize" }
func (*adminRandomizeCmd) Synopsis() string { return "apply a large random move to every price" }
func (*adminRandomizeCmd) Usage() string {
	return "bvdubank admin-randomize -admin-pin <pin>\n"
}
func (c *adminRandomizeCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *adminRandomizeCmd) Run(_ context.Context, env *Env) error {
	session, logout, err := c.login(env)
	defer logout()
	if err != nil {
		return err
	}
	err = env.Bank.Admin.RandomizePrices(session)
	if err != nil && !isPersistence(err) {
		return err
	}
	printErr := env.Print(map[string]bool{"randomized": true}, func(w io.Writer) {
		fmt.Fprintln(w, "Prices randomized.")
	})
	return firstError(err, printErr)
}

type adminInterestCmd struct {
	adminCredentials
	rate decimal.Decimal
}

func (*adminInterestCmd) Name() string     { return "admin-interest" }
func (*adminInterestCmd) Synopsis() string { return "credit interest to savings accounts" }
func (*adminInterestCmd) Usage() string {
	return "bvdubank admin-interest -admin-pin <pin> -rate <percent>\n"
}
func (c *adminInterestCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.Var(newDecimalValue(&c.rate), "rate", "interest rate in percent")
}

func (c *adminInterestCmd) Run(_ context.Context, env *Env) error {
	session, logout, err := c.login(env)
	defer logout()
	if err != nil {
		return err
	}
	result, err := env.Bank.Admin.ApplyInterest(session, dto.ApplyInterestRequest{RatePercent: c.rate})
	if result == nil {
		return err
	}
	printErr := env.Print(result, func(w io.Writer) {
		fmt.Fprintf(w, "Interest credited to %d accounts, total %s\n",
			result.AccountsCredited, models.FormatINR(result.TotalInterest))
	})
	return firstError(err, printErr)
}

type adminSetFXCmd struct {
	adminCredentials
	usd decimal.Decimal
	eur decimal.Decimal
}

func (*adminSetFXCmd) Name() string     { return "admin-set-fx" }
func (*adminSetFXCmd) Synopsis() string { return "replace the USD and EUR exchange rates" }
func (*adminSetFXCmd) Usage() string {
	return "bvdubank admin-set-fx -admin-pin <pin> -usd <inr per usd> -eur <inr per eur>\n"
}
func (c *adminSetFXCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.Var(newDecimalValue(&c.usd), "usd", "rupees per US dollar")
	f.Var(newDecimalValue(&c.eur), "eur", "rupees per euro")
}

func (c *adminSetFXCmd) Run(_ context.Context, env *Env) error {
	session, logout, err := c.login(env)
	defer logout()
	if err != nil {
		return err
	}
	rates, err := env.Bank.Admin.SetFXRates(session, dto.SetFXRequest{InrPerUsd: c.usd, InrPerEur: c.eur})
	if err != nil && !isPersistence(err) {
		return err
	}
	printErr := env.Print(rates, func(w io.Writer) {
		fmt.Fprintf(w, "FX updated: 1 USD = %s, 1 EUR = %s\n", models.FormatINR(rates.InrPerUsd), models.FormatINR(rates.InrPerEur))
	})
	return firstError(err, printErr)
}

type adminAccountCmd struct {
	adminCredentials
	account int
}

func (c *adminAccountCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.IntVar(&c.account, "account", 0, "account number")
}

// run applies action to the selected account and reports its new state
func (c *adminAccountCmd) run(env *Env, action func(*services.AdminSession, int) (*models.Account, error), message string) error {
	session, logout, err := c.login(env)
	defer logout()
	if err != nil {
		return err
	}
	account, err := action(session, c.account)
	if account == nil {
		return err
	}
	details := dto.NewAccountDetails(account)
	printErr := env.Print(details, func(w io.Writer) {
		fmt.Fprintf(w, "Account %d %s.\n", account.Number, message)
	})
	return firstError(err, printErr)
}

type adminUnfreezeCmd struct {
	adminAccountCmd
}

func (*adminUnfreezeCmd) Name() string     { return "admin-unfreeze" }
func (*adminUnfreezeCmd) Synopsis() string { return "unfreeze an account and reset its failed attempts" }
func (*adminUnfreezeCmd) Usage() string {
	return "bvdubank admin-unfreeze -admin-pin <pin> -account <number>\n"
}

func (c *adminUnfreezeCmd) Run(_ context.Context, env *Env) error {
	return c.run(env, env.Bank.Admin.Unfreeze, "unfrozen")
}

type adminDeactivateCmd struct {
	adminAccountCmd
}

func (*adminDeactivateCmd) Name() string     { return "admin-deactivate" }
func (*adminDeactivateCmd) Synopsis() string { return "deactivate an account" }
func (*adminDeactivateCmd) Usage() string {
	return "bvdubank admin-deactivate -admin-pin <pin> -account <number>\n"
}

func (c *adminDeactivateCmd) Run(_ context.Context, env *Env) error {
	return c.run(env, env.Bank.Admin.Deactivate, "deactivated")
}

type adminReactivateCmd struct {
	adminAccountCmd
}

func (*adminReactivateCmd) Name() string     { return "admin-reactivate" }
func (*adminReactivateCmd) Synopsis() string { return "reactivate an account" }
func (*adminReactivateCmd) Usage() string {
	return "bvdubank admin-reactivate -admin-pin <pin> -account <number>\n"
}

func (c *adminReactivateCmd) Run(_ context.Context, env *Env) error {
	return c.run(env, env.Bank.Admin.Reactivate, "reactivated")
}

type adminTickCmd struct {
	adminCredentials
}

func (*adminTickCmd) Name() string     { return "admin-tick" }
func (*adminTickCmd) Synopsis() string { return "move the prices of open markets once" }
func (*adminTickCmd) Usage() string {
	return "bvdubank admin-tick -admin-pin <pin>\n"
}
func (c *adminTickCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *adminTickCmd) Run(_ context.Context, env *Env) error {
	session, logout, err := c.login(env)
	defer logout()
	if err != nil {
		return err
	}
	moved, err := env.Bank.Admin.TickMarket(session)
	if err != nil && !isPersistence(err) {
		return err
	}
	printErr := env.Print(map[string]int{"assets_moved": moved}, func(w io.Writer) {
		fmt.Fprintf(w, "Market tick moved %d assets.\n", moved)
	})
	return firstError(err, printErr)
}

type adminAuditCmd struct {
	adminCredentials
	limit int
}

func (*adminAuditCmd) Name() string     { return "admin-audit" }
func (*adminAuditCmd) Synopsis() string { return "show the most recent audit entries" }
func (*adminAuditCmd) Usage() string {
	return "bvdubank admin-audit -admin-pin <pin> [-limit <n>]\n"
}
func (c *adminAuditCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.IntVar(&c.limit, "limit", 20, "number of entries, 0 for all")
}

func (c *adminAuditCmd) Run(_ context.Context, env *Env) error {
	session, logout, err := c.login(env)
	defer logout()
	if err != nil {
		return err
	}
	entries, err := env.Bank.Admin.AuditLog(session, c.limit)
	if err != nil {
		return err
	}
	return env.Print(entries, func(w io.Writer) {
		for i := range entries {
			fmt.Fprintln(w, entries[i].String())
		}
	})
}
