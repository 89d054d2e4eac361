package domain

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const idSuffixLength = 9

var idAlphabet = []rune("abcdefghijklmnopqrstuvwxyz0123456789")

// NewNativeEventID combines a millisecond timestamp with a random base36
// suffix ("native-1736946000000-k3j9x2m1q"). The format is a compatibility
// contract with existing clients; the random component makes collisions
// negligible without coordination between writers.
func NewNativeEventID() (string, error) {
	suffix := make([]rune, idSuffixLength)
	max := big.NewInt(int64(len(idAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate id suffix: %w", err)
		}
		suffix[i] = idAlphabet[n.Int64()]
	}
	return fmt.Sprintf("native-%d-%s", time.Now().UnixMilli(), string(suffix)), nil
}

// NewBatchEventID synthesizes an id for an external record that arrived
// without one. Same construction as native ids with an "event-" prefix so
// synthesized ids are distinguishable from sourced ones.
func NewBatchEventID() string {
	suffix := make([]rune, idSuffixLength)
	max := big.NewInt(int64(len(idAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failure is unrecoverable noise here; fall back to
			// the timestamp alone rather than failing normalization.
			return fmt.Sprintf("event-%d", time.Now().UnixNano())
		}
		suffix[i] = idAlphabet[n.Int64()]
	}
	return fmt.Sprintf("event-%d-%s", time.Now().UnixMilli(), string(suffix))
}
