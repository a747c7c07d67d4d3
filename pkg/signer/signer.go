package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/thebartekbanach/imfilter/pkg/cachekey"
)

const signatureLength = 8

// Signer protects runtime filter URLs, so clients cannot request arbitrary
// parameter combinations.
type Signer interface {
	Sign(path string, runtimeConfig cachekey.RuntimeParameters) (string, error)
	Check(hash, path string, runtimeConfig cachekey.RuntimeParameters) bool
}

type hmacSigner struct {
	secret []byte
}

var _ Signer = (*hmacSigner)(nil)

func NewSigner(secret string) (Signer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	return &hmacSigner{[]byte(secret)}, nil
}

func (s *hmacSigner) Sign(path string, runtimeConfig cachekey.RuntimeParameters) (string, error) {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(strings.TrimLeft(path, "/")))

	if len(runtimeConfig) > 0 {
		serialized, err := json.Marshal(map[string]interface{}(runtimeConfig))
		if err != nil {
			return "", fmt.Errorf("%w: %s", cachekey.ErrInvalidParameters, err)
		}

		mac.Write(serialized)
	}

	encoded := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	return encoded[:signatureLength], nil
}

func (s *hmacSigner) Check(hash, path string, runtimeConfig cachekey.RuntimeParameters) bool {
	expected, err := s.Sign(path, runtimeConfig)
	if err != nil {
		return false
	}

	return hmac.Equal([]byte(expected), []byte(hash))
}

var ErrEmptySecret = errors.New("signer secret must not be empty")
