package commands

import (
	"flag"

	"bvdu-bank/internal/services"

	"github.com/shopspring/decimal"
)

// decimalValue is a flag.Value holding an exact decimal
type decimalValue struct {
	d *decimal.Decimal
}

func newDecimalValue(d *decimal.Decimal) *decimalValue {
	return &decimalValue{d: d}
}

func (v *decimalValue) String() string {
	if v == nil || v.d == nil {
		return "0"
	}
	return v.d.String()
}

func (v *decimalValue) Set(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	*v.d = d
	return nil
}

// credentials are the customer login flags
type credentials struct {
	account int
	pin     int
}

func (c *credentials) setFlags(f *flag.FlagSet) {
	f.IntVar(&c.account, "account", 0, "account number")
	f.IntVar(&c.pin, "pin", 0, "4-digit account PIN")
}

// login opens a customer session; callers defer the returned logout
func (c *credentials) login(env *Env) (*services.Session, func(), error) {
	session, err := env.Bank.Accounts.Authenticate(c.account, c.pin)
	if session == nil {
		return nil, func() {}, err
	}
	return session, func() { env.Bank.Accounts.Logout(session) }, err
}

// adminCredentials is the admin PIN flag
type adminCredentials struct {
	pin string
}

func (c *adminCredentials) setFlags(f *flag.FlagSet) {
	f.StringVar(&c.pin, "admin-pin", "", "administrator PIN")
}

func (c *adminCredentials) login(env *Env) (*services.AdminSession, func(), error) {
	session, err := env.Bank.Admin.VerifyPIN(c.pin)
	if err != nil {
		return nil, func() {}, err
	}
	return session, func() { _ = env.Bank.Admin.Logout(session) }, nil
}
