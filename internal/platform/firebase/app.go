// Package firebase wires up the Admin SDK clients behind the remote tiers:
// token verification for protected routes and Firestore for the catalog.
package firebase

import (
	"context"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Config selects the Firebase project. CredentialsFile is optional; without
// it the SDK falls back to application default credentials (or the emulator
// when FIRESTORE_EMULATOR_HOST is set).
type Config struct {
	ProjectID       string
	CredentialsFile string
}

// Clients bundles the initialized Admin SDK clients.
type Clients struct {
	Auth      *auth.Client
	Firestore *firestore.Client
}

// InitializeClients builds the Firebase app and both clients for it.
func InitializeClients(ctx context.Context, cfg Config) (*Clients, error) {
	app, err := newApp(ctx, cfg)
	if err != nil {
		return nil, err
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}
	fsClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, err
	}

	return &Clients{Auth: authClient, Firestore: fsClient}, nil
}

func newApp(ctx context.Context, cfg Config) (*firebase.App, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		creds, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, option.WithCredentialsJSON(creds))
	}
	return firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
}

// Close releases the Firestore connection. The auth client has no close.
func (c *Clients) Close() error {
	if c.Firestore != nil {
		return c.Firestore.Close()
	}
	return nil
}
