// Package bank wraps the Plaid client used to import transactions into the
// ledger.
package bank

import (
	"fmt"

	"github.com/plaid/plaid-go/v41/plaid"
)

var environments = map[string]plaid.Environment{
	"sandbox":    plaid.Sandbox,
	"production": plaid.Production,
}

// NewPlaidClient builds an API client for the named Plaid environment.
func NewPlaidClient(clientID, secret, env string) (*plaid.APIClient, error) {
	plaidEnv, ok := environments[env]
	if !ok {
		return nil, fmt.Errorf("unknown plaid environment %q", env)
	}

	configuration := plaid.NewConfiguration()
	configuration.AddDefaultHeader("PLAID-CLIENT-ID", clientID)
	configuration.AddDefaultHeader("PLAID-SECRET", secret)
	configuration.UseEnvironment(plaidEnv)

	return plaid.NewAPIClient(configuration), nil
}
