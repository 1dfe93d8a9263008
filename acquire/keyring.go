package acquire

import (
	"bytes"
	"os"

	"golang.org/x/crypto/openpgp"

	"github.com/ngx-go/ngx/buildcfg"
	"github.com/ngx-go/ngx/errors"
)

// signingKeyring loads the operator's pinned trust anchor. The
// NGX_PGP_KEYRING environment variable wins over the configured path;
// there is no bundled fallback and no way to turn verification off.
func signingKeyring(cfg buildcfg.Config) (openpgp.EntityList, error) {
	path := cfg.KeyringPath
	if env := os.Getenv("NGX_PGP_KEYRING"); env != "" {
		path = env
	}
	if path == "" {
		return nil, errors.Acquisition(errors.KindSignature, nil,
			"no signing keyring configured; fetch the maintainer keys from "+
				"https://nginx.org/en/pgp_keys.html and set KeyringPath or NGX_PGP_KEYRING")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Acquisition(errors.KindSignature, err, "read signing keyring")
	}
	keyring, err := openpgp.ReadArmoredKeyRing(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Acquisition(errors.KindSignature, err, "parse signing keyring")
	}
	if len(keyring) == 0 {
		return nil, errors.Acquisition(errors.KindSignature, nil, "signing keyring is empty")
	}
	return keyring, nil
}
