package sync

import (
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/jivana-app/jivana/internal/constants"
)

// tempCounter is seeded from the wall clock so tokens stay unique across
// process restarts even before any remote id is assigned.
var tempCounter atomic.Int64

func init() {
	tempCounter.Store(time.Now().UnixMilli())
}

// NextTempID returns a fresh client-side id token. The token is replaced by
// the store-assigned id once a remote insert is acknowledged.
func NextTempID() string {
	return constants.TempIDPrefix + strconv.FormatInt(tempCounter.Add(1), 10)
}

// IsTempID reports whether id is a client-side token that has not been
// acknowledged by the remote store.
func IsTempID(id string) bool {
	return strings.HasPrefix(id, constants.TempIDPrefix)
}
