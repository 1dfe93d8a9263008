package acquire

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/crypto/openpgp"
	"golang.org/x/crypto/openpgp/armor"

	"github.com/ngx-go/ngx/buildcfg"
	"github.com/ngx-go/ngx/errors"
)

// signerFixture generates a signing key, writes its armored public
// half to a keyring file, and signs payload into archive + sig files.
func signerFixture(t *testing.T, payload []byte) (keyring, archive, sig string) {
	t.Helper()
	entity, err := openpgp.NewEntity("test signer", "", "signer@example.invalid", nil)
	if err != nil {
		t.Fatal(err)
	}
	// Signs the identity self-signatures so the public half round-trips.
	if err := entity.SerializePrivate(io.Discard, nil); err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()

	var pub bytes.Buffer
	aw, err := armor.Encode(&pub, openpgp.PublicKeyType, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := entity.Serialize(aw); err != nil {
		t.Fatal(err)
	}
	if err := aw.Close(); err != nil {
		t.Fatal(err)
	}
	keyring = filepath.Join(dir, "signing.asc")
	if err := os.WriteFile(keyring, pub.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	archive = filepath.Join(dir, "nginx-1.27.4.tar.gz")
	if err := os.WriteFile(archive, payload, 0o644); err != nil {
		t.Fatal(err)
	}

	var sigBuf bytes.Buffer
	if err := openpgp.ArmoredDetachSign(&sigBuf, entity, bytes.NewReader(payload), nil); err != nil {
		t.Fatal(err)
	}
	sig = archive + ".asc"
	if err := os.WriteFile(sig, sigBuf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return keyring, archive, sig
}

func TestVerifyRelease(t *testing.T) {
	t.Setenv("NGX_PGP_KEYRING", "")
	payload := []byte("release bytes")
	keyring, archive, sig := signerFixture(t, payload)

	sum, err := fileSHA256(archive)
	if err != nil {
		t.Fatal(err)
	}

	cfg := buildcfg.Config{
		Release:     "1.27.4",
		KeyringPath: keyring,
		ReleaseSums: map[string]string{"1.27.4": sum},
	}
	if err := verifyRelease(cfg, archive, sig); err != nil {
		t.Fatalf("valid release rejected: %v", err)
	}

	// Signature alone suffices when no sum is pinned.
	cfg.ReleaseSums = nil
	if err := verifyRelease(cfg, archive, sig); err != nil {
		t.Fatalf("unpinned release rejected: %v", err)
	}
}

func TestVerifyRelease_ChecksumMismatch(t *testing.T) {
	keyring, archive, sig := signerFixture(t, []byte("release bytes"))

	cfg := buildcfg.Config{
		Release:     "1.27.4",
		KeyringPath: keyring,
		ReleaseSums: map[string]string{"1.27.4": "0000000000000000000000000000000000000000000000000000000000000000"},
	}
	err := verifyRelease(cfg, archive, sig)
	if !errors.IsKind(err, errors.KindChecksum) {
		t.Fatalf("got %v, want checksum error", err)
	}
}

func TestVerifyRelease_NoKeyring(t *testing.T) {
	t.Setenv("NGX_PGP_KEYRING", "")
	_, archive, sig := signerFixture(t, []byte("release bytes"))

	err := verifyRelease(buildcfg.Config{Release: "1.27.4"}, archive, sig)
	if !errors.IsKind(err, errors.KindSignature) {
		t.Fatalf("got %v, want signature error for missing keyring", err)
	}
}

func TestSigningKeyringEnvOverride(t *testing.T) {
	keyring, _, _ := signerFixture(t, []byte("release bytes"))
	t.Setenv("NGX_PGP_KEYRING", keyring)

	// The env var wins even over a bogus configured path.
	el, err := signingKeyring(buildcfg.Config{KeyringPath: "/does/not/exist"})
	if err != nil {
		t.Fatal(err)
	}
	if len(el) != 1 {
		t.Fatalf("got %d keys, want 1", len(el))
	}
}

func TestVerifyDetached(t *testing.T) {
	payload := []byte("release bytes")
	keyringPath, archive, sig := signerFixture(t, payload)

	raw, err := os.ReadFile(keyringPath)
	if err != nil {
		t.Fatal(err)
	}
	keyring, err := openpgp.ReadArmoredKeyRing(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}

	if err := verifyDetached(keyring, archive, sig); err != nil {
		t.Fatalf("valid signature rejected: %v", err)
	}

	// Tampered payload must fail.
	if err := os.WriteFile(archive, []byte("release bytes!"), 0o644); err != nil {
		t.Fatal(err)
	}
	err = verifyDetached(keyring, archive, sig)
	if !errors.IsKind(err, errors.KindSignature) {
		t.Fatalf("got %v, want signature error", err)
	}

	// Signature from a key outside the keyring must fail.
	other, err := openpgp.NewEntity("other", "", "other@example.invalid", nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(archive, payload, 0o644); err != nil {
		t.Fatal(err)
	}
	var otherSig bytes.Buffer
	if err := openpgp.ArmoredDetachSign(&otherSig, other, bytes.NewReader(payload), nil); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(sig, otherSig.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	err = verifyDetached(keyring, archive, sig)
	if !errors.IsKind(err, errors.KindSignature) {
		t.Fatalf("got %v, want signature error for unpinned key", err)
	}
}

func TestVerifyTreeRelease(t *testing.T) {
	dir := t.TempDir()
	core := filepath.Join(dir, "src", "core")
	if err := os.MkdirAll(core, 0o755); err != nil {
		t.Fatal(err)
	}
	header := "#define nginx_version      1027004\n" +
		"#define NGINX_VERSION      \"1.27.4\"\n" +
		"#define NGINX_VER          \"nginx/\" NGINX_VERSION\n"
	if err := os.WriteFile(filepath.Join(core, "nginx.h"), []byte(header), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := verifyTreeRelease(dir, "1.27.4"); err != nil {
		t.Fatalf("matching tree rejected: %v", err)
	}

	err := verifyTreeRelease(dir, "1.26.3")
	if !errors.IsKind(err, errors.KindChecksum) {
		t.Fatalf("got %v, want checksum error for wrong release", err)
	}

	err = verifyTreeRelease(t.TempDir(), "1.27.4")
	if !errors.IsKind(err, errors.KindChecksum) {
		t.Fatalf("got %v, want checksum error for missing header", err)
	}
}
