// Package acquire locates or downloads the nginx source tree a build
// runs against.
//
// A caller-provided source directory bypasses acquisition entirely.
// Otherwise the release archive and its detached signature are fetched
// from a fixed mirror set, the signature is checked against the
// operator's pinned keyring (the maintainer keys published at
// https://nginx.org/en/pgp_keys.html), the sha256 is checked when the
// configuration pins one, and the tree is extracted into a disposable
// cache keyed by the build configuration. The extracted tree must
// identify itself as the requested release.
//
// Every failure here is fatal to the build. A build against unverified
// native source must not proceed, so there is no degraded mode: no
// keyring, no download.
package acquire
