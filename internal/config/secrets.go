// internal/config/secrets.go
//
// Vault reference resolution for config values.
//
// Context
// -------
// Operators may set any secret-bearing config field to a reference of the
// form
//
//	vault:<mount>/<path>#<key>
//
// e.g. `password: vault:kv/photoid#db_password`.  After unmarshalling, the
// loader walks the known secret fields and replaces each reference with the
// value fetched from Vault.  Fields without the prefix pass through
// untouched, so local development needs no Vault at all.

package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/photoid-app/photoid/internal/vault"
)

const vaultPrefix = "vault:"

// secretTTL keeps resolved values warm across Reload() calls without
// hammering Vault on every config swap.
const secretTTL = 10 * time.Minute

// resolveSecrets replaces vault: references in place.  The Vault client is
// only constructed when at least one reference is present.
func resolveSecrets(ctx context.Context, cfg *Config) error {
	fields := []*string{
		&cfg.Database.Password,
		&cfg.Geo.IPInfoToken,
	}

	var cli *vault.Client
	for _, f := range fields {
		if !strings.HasPrefix(*f, vaultPrefix) {
			continue
		}
		if cli == nil {
			var err error
			cli, err = vault.New(zap.S().Infof)
			if err != nil {
				return err
			}
		}
		val, err := lookup(ctx, cli, *f)
		if err != nil {
			return err
		}
		*f = val
	}
	return nil
}

// lookup splits "vault:mount/path#key" and fetches the key.
func lookup(ctx context.Context, cli *vault.Client, ref string) (string, error) {
	body := strings.TrimPrefix(ref, vaultPrefix)
	path, key, ok := strings.Cut(body, "#")
	if !ok || path == "" || key == "" {
		return "", fmt.Errorf("malformed vault reference %q", ref)
	}
	return cli.GetKV(ctx, path, key, secretTTL)
}
