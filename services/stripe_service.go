package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	stripe "github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"
)

// stripeCallTimeout bounds every Stripe round trip
const stripeCallTimeout = 15 * time.Second

// ErrMissingAccountFields is returned before any provider call when the
// create-account inputs are incomplete
var ErrMissingAccountFields = errors.New("email and business name are required")

// ConnectAPI is the slice of the Stripe client the connect service uses,
// kept as an interface so tests can substitute doubles.
type ConnectAPI interface {
	NewAccount(params *stripe.AccountParams) (*stripe.Account, error)
	GetAccount(id string, params *stripe.AccountParams) (*stripe.Account, error)
	NewLoginLink(params *stripe.LoginLinkParams) (*stripe.LoginLink, error)
}

// stripeConnectAPI adapts client.API to ConnectAPI
type stripeConnectAPI struct {
	sc *client.API
}

func (a *stripeConnectAPI) NewAccount(params *stripe.AccountParams) (*stripe.Account, error) {
	return a.sc.Accounts.New(params)
}

func (a *stripeConnectAPI) GetAccount(id string, params *stripe.AccountParams) (*stripe.Account, error) {
	return a.sc.Accounts.GetByID(id, params)
}

func (a *stripeConnectAPI) NewLoginLink(params *stripe.LoginLinkParams) (*stripe.LoginLink, error) {
	return a.sc.LoginLinks.New(params)
}

// InitializeStripeAPI constructs the Stripe client handle once at startup
func InitializeStripeAPI(secretKey string) ConnectAPI {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &stripeConnectAPI{sc: sc}
}

// StripeConnectService relays Connect account operations to Stripe
type StripeConnectService struct {
	API ConnectAPI
}

// CreateAccount creates an Express account able to receive payouts.
// Incomplete inputs are rejected before any provider call.
func (ss *StripeConnectService) CreateAccount(ctx context.Context, email, businessName string) (*stripe.Account, error) {
	if email == "" || businessName == "" {
		return nil, ErrMissingAccountFields
	}

	ctx, cancel := context.WithTimeout(ctx, stripeCallTimeout)
	defer cancel()

	params := &stripe.AccountParams{
		Type:  stripe.String(string(stripe.AccountTypeExpress)),
		Email: stripe.String(email),
		BusinessProfile: &stripe.AccountBusinessProfileParams{
			Name: stripe.String(businessName),
		},
		Capabilities: &stripe.AccountCapabilitiesParams{
			CardPayments: &stripe.AccountCapabilitiesCardPaymentsParams{Requested: stripe.Bool(true)},
			Transfers:    &stripe.AccountCapabilitiesTransfersParams{Requested: stripe.Bool(true)},
		},
	}
	params.Context = ctx

	return ss.API.NewAccount(params)
}

// GetAccount fetches a Connect account. An unknown ID yields (nil, nil),
// not an error.
func (ss *StripeConnectService) GetAccount(ctx context.Context, accountID string) (*stripe.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, stripeCallTimeout)
	defer cancel()

	params := &stripe.AccountParams{}
	params.Context = ctx

	account, err := ss.API.GetAccount(accountID, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return account, nil
}

// CreateLoginLink mints a one-time dashboard login link for an account
func (ss *StripeConnectService) CreateLoginLink(ctx context.Context, accountID string) (*stripe.LoginLink, error) {
	ctx, cancel := context.WithTimeout(ctx, stripeCallTimeout)
	defer cancel()

	params := &stripe.LoginLinkParams{
		Account: stripe.String(accountID),
	}
	params.Context = ctx

	return ss.API.NewLoginLink(params)
}
