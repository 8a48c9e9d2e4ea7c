package props

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
)

// FieldStore is the runtime identity store overrides are written to.
type FieldStore interface {
	SetField(key Key, value string) error
}

// Apply writes each override to store in order. A failed write is logged
// and does not stop the remaining ones; the returned error aggregates all
// failures and is nil when every write succeeded.
func Apply(store FieldStore, overrides []Override, logger hclog.Logger) (int, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	var result *multierror.Error
	applied := 0
	for _, o := range overrides {
		logger.Trace("Defining prop", "key", o.Key, "value", o.Value)
		if err := store.SetField(o.Key, o.Value); err != nil {
			logger.Warn("⚠️ Failed to set prop", "key", o.Key, "error", err)
			result = multierror.Append(result, fmt.Errorf("set %s: %w", o.Key, err))
			continue
		}
		applied++
	}

	return applied, result.ErrorOrNil()
}
