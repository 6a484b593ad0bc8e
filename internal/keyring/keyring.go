// Package keyring keeps nykha secrets in the OS credential store.
package keyring

import (
	"errors"
	"fmt"
	"strings"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/true1853/Nykha-bot/internal/constants"
)

var (
	// ErrNotFound is returned when no secret is stored under the account
	ErrNotFound = errors.New("secret not found in keyring")
	// ErrUnavailable is returned when the OS keyring cannot be reached
	ErrUnavailable = errors.New("OS keyring is not available")
)

// Account names under the nykha service.
const (
	AccountDatabase = constants.DefaultKeyringUser
)

const probeAccount = "availability-probe"

// Get returns the secret stored for account.
func Get(account string) (string, error) {
	secret, err := gokeyring.Get(constants.AppName, account)
	if err != nil {
		if errors.Is(err, gokeyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return secret, nil
}

// Set stores secret for account, replacing any previous value.
func Set(account, secret string) error {
	if strings.TrimSpace(secret) == "" {
		return fmt.Errorf("secret for %q cannot be empty", account)
	}
	if err := gokeyring.Set(constants.AppName, account, secret); err != nil {
		return fmt.Errorf("store %q in keyring: %w", account, err)
	}
	return nil
}

func Delete(account string) error {
	if err := gokeyring.Delete(constants.AppName, account); err != nil {
		if errors.Is(err, gokeyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete %q from keyring: %w", account, err)
	}
	return nil
}

// DatabaseURL returns the stored postgres connection string.
func DatabaseURL() (string, error) {
	return Get(AccountDatabase)
}

// IsAvailable probes the keyring with a read. A miss still means it works.
func IsAvailable() bool {
	_, err := gokeyring.Get(constants.AppName, probeAccount)
	return err == nil || errors.Is(err, gokeyring.ErrNotFound)
}
