package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"bvdu-bank/internal/dto"
	apperrors "bvdu-bank/internal/errors"
	"bvdu-bank/internal/models"

	"github.com/shopspring/decimal"
)

const timeLayout = models.TimestampLayout

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Format(timeLayout)
}

type createAccountCmd struct {
	name        string
	accountType string
	pin         int
	deposit     decimal.Decimal
	upi         string
}

func (*createAccountCmd) Name() string     { return "create-account" }
func (*createAccountCmd) Synopsis() string { return "open a new account" }
func (*createAccountCmd) Usage() string {
	return `bvdubank create-account -name <name> -pin <pin> [-type Savings|Current] [-deposit <inr>] [-upi <handle>]

  Opens an active account. The UPI handle defaults to the name, or the account number
  when the name is not a valid handle.
`
}

func (c *createAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "account holder name")
	f.StringVar(&c.accountType, "type", "Savings", "account type: Savings or Current")
	f.IntVar(&c.pin, "pin", 0, "4-digit PIN")
	f.Var(newDecimalValue(&c.deposit), "deposit", "opening deposit in INR")
	f.StringVar(&c.upi, "upi", "", "UPI handle, e.g. alice or alice@bvdu")
}

func (c *createAccountCmd) Run(_ context.Context, env *Env) error {
	account, err := env.Bank.Accounts.CreateAccount(dto.CreateAccountRequest{
		Name:           c.name,
		AccountType:    c.accountType,
		PIN:            c.pin,
		InitialDeposit: c.deposit,
		UPI:            c.upi,
	})
	if account == nil {
		return err
	}
	printErr := env.Print(dto.NewAccountDetails(account), func(w io.Writer) {
		fmt.Fprintf(w, "Account created. Account number: %d\n", account.Number)
		fmt.Fprintf(w, "UPI: %s\n", account.UPI)
		fmt.Fprintf(w, "Balance: %s\n", models.FormatINR(account.Balance))
	})
	return firstError(err, printErr)
}

type balanceCmd struct {
	credentials
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show the cash balance" }
func (*balanceCmd) Usage() string {
	return "bvdubank balance -account <number> -pin <pin>\n"
}
func (c *balanceCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *balanceCmd) Run(_ context.Context, env *Env) error {
	session, logout, err := c.login(env)
	defer logout()
	if err != nil {
		return err
	}
	account, err := env.Bank.Accounts.GetAccount(session)
	if err != nil {
		return err
	}
	return env.Print(map[string]any{"account_number": account.Number, "balance": account.Balance}, func(w io.Writer) {
		fmt.Fprintf(w, "Balance: %s\n", models.FormatINR(account.Balance))
	})
}

type detailsCmd struct {
	credentials
}

func (*detailsCmd) Name() string     { return "details" }
func (*detailsCmd) Synopsis() string { return "show account details" }
func (*detailsCmd) Usage() string {
	return "bvdubank details -account <number> -pin <pin>\n"
}
func (c *detailsCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *detailsCmd) Run(_ context.Context, env *Env) error {
	session, logout, err := c.login(env)
	defer logout()
	if err != nil {
		return err
	}
	account, err := env.Bank.Accounts.GetAccount(session)
	if err != nil {
		return err
	}
	details := dto.NewAccountDetails(account)
	return env.Print(details, func(w io.Writer) {
		fmt.Fprintf(w, "Account No : %d\n", details.Number)
		fmt.Fprintf(w, "Name       : %s\n", details.Name)
		fmt.Fprintf(w, "Type       : %s\n", details.AccountType)
		fmt.Fprintf(w, "Balance    : %s\n", models.FormatINR(details.Balance))
		fmt.Fprintf(w, "Loan       : %s\n", models.FormatINR(details.Loan))
		fmt.Fprintf(w, "UPI        : %s\n", details.UPI)
		fmt.Fprintf(w, "Last login : %s\n", formatTime(details.LastLogin))
	})
}

type depositCmd struct {
	credentials
	amount decimal.Decimal
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "deposit cash" }
func (*depositCmd) Usage() string {
	return "bvdubank deposit -account <number> -pin <pin> -amount <inr>\n"
}
func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.Var(newDecimalValue(&c.amount), "amount", "amount in INR")
}

func (c *depositCmd) Run(_ context.Context, env *Env) error {
	session, logout, err := c.login(env)
	defer logout()
	if err != nil {
		return err
	}
	account, err := env.Bank.Accounts.Deposit(session, c.amount)
	return printBalance(env, account, "Deposit successful.", err)
}

type withdrawCmd struct {
	credentials
	amount decimal.Decimal
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "withdraw cash" }
func (*withdrawCmd) Usage() string {
	return "bvdubank withdraw -account <number> -pin <pin> -amount <inr>\n"
}
func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.Var(newDecimalValue(&c.amount), "amount", "amount in INR")
}

func (c *withdrawCmd) Run(_ context.Context, env *Env) error {
	session, logout, err := c.login(env)
	defer logout()
	if err != nil {
		return err
	}
	account, err := env.Bank.Accounts.Withdraw(session, c.amount)
	return printBalance(env, account, "Withdrawal processed.", err)
}

type transferCmd struct {
	credentials
	to     int
	amount decimal.Decimal
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "transfer cash to another account" }
func (*transferCmd) Usage() string {
	return "bvdubank transfer -account <number> -pin <pin> -to <number> -amount <inr>\n"
}
func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.IntVar(&c.to, "to", 0, "destination account number")
	f.Var(newDecimalValue(&c.amount), "amount", "amount in INR")
}

func (c *transferCmd) Run(_ context.Context, env *Env) error {
	session, logout, err := c.login(env)
	defer logout()
	if err != nil {
		return err
	}
	account, err := env.Bank.Accounts.Transfer(session, c.to, c.amount)
	return printBalance(env, account, "Transfer successful.", err)
}

type upiTransferCmd struct {
	credentials
	upi    string
	amount decimal.Decimal
}

func (*upiTransferCmd) Name() string     { return "upi-transfer" }
func (*upiTransferCmd) Synopsis() string { return "transfer cash to a UPI handle" }
func (*upiTransferCmd) Usage() string {
	return "bvdubank upi-transfer -account <number> -pin <pin> -upi <handle@bvdu> -amount <inr>\n"
}
func (c *upiTransferCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.StringVar(&c.upi, "upi", "", "destination UPI handle")
	f.Var(newDecimalValue(&c.amount), "amount", "amount in INR")
}

func (c *upiTransferCmd) Run(_ context.Context, env *Env) error {
	session, logout, err := c.login(env)
	defer logout()
	if err != nil {
		return err
	}
	account, err := env.Bank.Accounts.TransferByUPI(session, c.upi, c.amount)
	return printBalance(env, account, "UPI transfer successful.", err)
}

type statementCmd struct {
	credentials
}

func (*statementCmd) Name() string     { return "statement" }
func (*statementCmd) Synopsis() string { return "show the most recent transactions" }
func (*statementCmd) Usage() string {
	return "bvdubank statement -account <number> -pin <pin>\n"
}
func (c *statementCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *statementCmd) Run(_ context.Context, env *Env) error {
	session, logout, err := c.login(env)
	defer logout()
	if err != nil {
		return err
	}
	txs, err := env.Bank.Accounts.MiniStatement(session)
	if err != nil {
		return err
	}
	return env.Print(txs, func(w io.Writer) {
		if len(txs) == 0 {
			fmt.Fprintln(w, "No transactions.")
			return
		}
		for _, tx := range txs {
			fmt.Fprintf(w, "%s  %-12s %14s  bal %14s  %s\n",
				tx.Timestamp.Format(timeLayout), tx.Type,
				models.FormatINR(tx.Amount), models.FormatINR(tx.BalanceAfter), tx.Note)
		}
	})
}

type notificationsCmd struct {
	credentials
	limit int
}

func (*notificationsCmd) Name() string     { return "notifications" }
func (*notificationsCmd) Synopsis() string { return "show the notification inbox" }
func (*notificationsCmd) Usage() string {
	return "bvdubank notifications -account <number> -pin <pin> [-limit <n>]\n"
}
func (c *notificationsCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.IntVar(&c.limit, "limit", 10, "number of messages, 0 for all")
}

func (c *notificationsCmd) Run(_ context.Context, env *Env) error {
	session, logout, err := c.login(env)
	defer logout()
	if err != nil {
		return err
	}
	notes, err := env.Bank.Accounts.Notifications(session, c.limit)
	if err != nil {
		return err
	}
	return env.Print(notes, func(w io.Writer) {
		if len(notes) == 0 {
			fmt.Fprintln(w, "No notifications.")
			return
		}
		for _, n := range notes {
			fmt.Fprintf(w, "%s  %s\n", n.Timestamp.Format(timeLayout), n.Message)
		}
	})
}

// printBalance prints the post-operation balance when the operation was applied
func printBalance(env *Env, account *models.Account, message string, err error) error {
	if account == nil {
		return err
	}
	printErr := env.Print(map[string]any{"account_number": account.Number, "balance": account.Balance}, func(w io.Writer) {
		fmt.Fprintln(w, message)
		fmt.Fprintf(w, "New balance: %s\n", models.FormatINR(account.Balance))
	})
	return firstError(err, printErr)
}

func isPersistence(err error) bool {
	return apperrors.IsPersistence(err)
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
