package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
)

// authorize builds an HTTP client authenticated as the service account in the
// credentials file. The credentials are opaque to the rest of the application -
// nothing outside this function reads or inspects them.
func authorize(credentials string, scope string, ctx context.Context) (*http.Client, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, err
	}

	config, err := google.JWTConfigFromJSON(b, scope)
	if err != nil {
		return nil, fmt.Errorf("invalid service account credentials (%v)", err)
	}

	return config.Client(ctx), nil
}
