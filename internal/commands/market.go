package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"bvdu-bank/internal/dto"
	"bvdu-bank/internal/models"

	"github.com/shopspring/decimal"
)

type pricesCmd struct{}

func (*pricesCmd) Name() string     { return "prices" }
func (*pricesCmd) Synopsis() string { return "list asset quotes and market hours" }
func (*pricesCmd) Usage() string {
	return `bvdubank prices

  Lists every quote with its market state. Listing moves the prices of open markets.
`
}
func (*pricesCmd) SetFlags(*flag.FlagSet) {}

type priceLine struct {
	models.PriceRecord
	PriceINR decimal.Decimal `json:"price_inr"`
	Open     bool            `json:"open"`
}

func (c *pricesCmd) Run(_ context.Context, env *Env) error {
	prices, err := env.Bank.Market.ListPrices()
	if prices == nil {
		return err
	}
	now := env.Bank.Clock.Now()
	lines := make([]priceLine, 0, len(prices))
	for _, p := range prices {
		lines = append(lines, priceLine{
			PriceRecord: p,
			PriceINR:    env.Bank.Market.ConvertToINR(p.Market, p.Price),
			Open:        p.IsOpenAt(now.Hour()),
		})
	}
	fx := env.Bank.Market.FXRates()

	printErr := env.Print(lines, func(w io.Writer) {
		fmt.Fprintf(w, "%-6s %-28s %-3s %16s %16s  %-6s %s\n", "ASSET", "NAME", "MKT", "PRICE", "INR", "STATE", "HOURS")
		for _, l := range lines {
			state := "closed"
			if l.Open {
				state = "open"
			}
			fmt.Fprintf(w, "%-6s %-28s %-3s %16s %16s  %-6s %02d-%02d\n",
				l.AssetID, l.Name, l.Market,
				models.FormatMoney(l.Price, l.Market.Currency()), models.FormatINR(l.PriceINR),
				state, l.OpenHour, l.CloseHour)
		}
		fmt.Fprintf(w, "FX: 1 USD = %s, 1 EUR = %s\n", models.FormatINR(fx.InrPerUsd), models.FormatINR(fx.InrPerEur))
	})
	return firstError(err, printErr)
}

type buyCmd struct {
	credentials
	asset    string
	quantity decimal.Decimal
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "buy an asset with the cash balance" }
func (*buyCmd) Usage() string {
	return "bvdubank buy -account <number> -pin <pin> -asset <id> -qty <quantity>\n"
}
func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.StringVar(&c.asset, "asset", "", "asset id, e.g. INFY")
	f.Var(newDecimalValue(&c.quantity), "qty", "quantity, fractional allowed")
}

func (c *buyCmd) Run(_ context.Context, env *Env) error {
	session, logout, err := c.login(env)
	defer logout()
	if err != nil {
		return err
	}
	result, err := env.Bank.Trading.Buy(session, c.asset, c.quantity)
	return printTrade(env, "Bought", strings.TrimSpace(c.asset), c.quantity, result, err)
}

type sellCmd struct {
	credentials
	asset    string
	quantity decimal.Decimal
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell an owned asset" }
func (*sellCmd) Usage() string {
	return "bvdubank sell -account <number> -pin <pin> -asset <id> -qty <quantity>\n"
}
func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.StringVar(&c.asset, "asset", "", "asset id, e.g. INFY")
	f.Var(newDecimalValue(&c.quantity), "qty", "quantity, fractional allowed")
}

func (c *sellCmd) Run(_ context.Context, env *Env) error {
	session, logout, err := c.login(env)
	defer logout()
	if err != nil {
		return err
	}
	result, err := env.Bank.Trading.Sell(session, c.asset, c.quantity)
	return printTrade(env, "Sold", strings.TrimSpace(c.asset), c.quantity, result, err)
}

func printTrade(env *Env, verb, assetID string, quantity decimal.Decimal, result *dto.TradeResult, err error) error {
	if result == nil {
		return err
	}
	printErr := env.Print(result, func(w io.Writer) {
		fmt.Fprintf(w, "%s %s x %s for %s\n", verb, assetID,
			quantity.StringFixed(4), models.FormatINR(result.CostINR))
		fmt.Fprintf(w, "New balance: %s\n", models.FormatINR(result.BalanceINR))
	})
	return firstError(err, printErr)
}

type portfolioCmd struct {
	credentials
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "value holdings in INR" }
func (*portfolioCmd) Usage() string {
	return "bvdubank portfolio -account <number> -pin <pin>\n"
}
func (c *portfolioCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *portfolioCmd) Run(_ context.Context, env *Env) error {
	session, logout, err := c.login(env)
	defer logout()
	if err != nil {
		return err
	}
	summary, err := env.Bank.Valuation.Portfolio(session.AccountNumber)
	if err != nil {
		return err
	}
	return env.Print(summary, func(w io.Writer) {
		fmt.Fprintf(w, "Cash: %s\n", models.FormatINR(summary.CashINR))
		if len(summary.Holdings) == 0 {
			fmt.Fprintln(w, "No holdings.")
			return
		}
		for _, h := range summary.Holdings {
			price := "n/a"
			if h.Priced {
				price = models.FormatMoney(h.CurrentPrice, h.Market.Currency())
			}
			fmt.Fprintf(w, "%-6s qty %12s avg %14s now %14s value %16s P/L %14s\n",
				h.AssetID, h.Quantity.StringFixed(models.QuantityPlaces),
				models.FormatMoney(h.AvgPrice, h.Market.Currency()), price,
				models.FormatINR(h.ValueINR), models.FormatINR(h.UnrealizedPLINR))
		}
		fmt.Fprintf(w, "Holdings value: %s\n", models.FormatINR(summary.TotalValueINR))
		fmt.Fprintf(w, "Unrealized P/L: %s\n", models.FormatINR(summary.TotalUnrealizedPLINR))
	})
}
