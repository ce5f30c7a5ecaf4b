// Package assets issues signed, short-lived read-only URLs for attachment
// references. Binary storage itself lives outside this core; only the
// reference and the signature transit here.
package assets

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"
)

type Signer struct {
	key     []byte
	baseURL string
	ttl     time.Duration
	now     func() time.Time
}

func NewSigner(key []byte, baseURL string, ttl time.Duration) (*Signer, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("asset signing key must not be empty")
	}
	// blake2b rejects keys above 64 bytes, surface that at construction time.
	if _, err := blake2b.New256(key); err != nil {
		return nil, fmt.Errorf("invalid asset signing key: %w", err)
	}
	return &Signer{
		key:     key,
		baseURL: strings.TrimRight(baseURL, "/"),
		ttl:     ttl,
		now:     time.Now,
	}, nil
}

// Sign returns an expiring URL for the named asset.
func (s *Signer) Sign(name string) (string, error) {
	expires := s.now().Add(s.ttl).Unix()
	signature, err := s.signature(name, expires)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s?expires=%d&signature=%s",
		s.baseURL, url.PathEscape(name), expires, signature), nil
}

// Verify checks a signature produced by Sign and its expiry.
func (s *Signer) Verify(name string, expires int64, signature string) bool {
	if s.now().Unix() > expires {
		return false
	}
	want, err := s.signature(name, expires)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(want), []byte(signature)) == 1
}

func (s *Signer) signature(name string, expires int64) (string, error) {
	mac, err := blake2b.New256(s.key)
	if err != nil {
		return "", err
	}
	mac.Write([]byte(name))
	mac.Write([]byte("|"))
	mac.Write([]byte(strconv.FormatInt(expires, 10)))
	return hex.EncodeToString(mac.Sum(nil)), nil
}
