package clock

import "time"

// Clock provides time to the application.
//
// Token expiry checks and ledger entry dates both derive from it; injecting an
// implementation keeps those paths deterministic in tests.
type Clock interface {
	Now() time.Time
}
