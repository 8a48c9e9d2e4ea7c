// Package build holds the runtime identity fields an application reads
// to learn what device it runs on.
package build

import (
	"fmt"
	"sync"

	"github.com/provide-io/pixelprops/go/pixelprops/pkg/props"
)

// Fields is the in-process identity store. Each recognised key has
// exactly one field, so writes never look anything up by name.
type Fields struct {
	mu sync.RWMutex

	Brand        string
	Manufacturer string
	Device       string
	Product      string
	Model        string
	Fingerprint  string
	Display      string
	Type         string
	Tags         string

	locked map[props.Key]bool
}

// NewFields creates a store seeded with real values keyed by field name.
func NewFields(real map[props.Key]string) *Fields {
	f := &Fields{locked: map[props.Key]bool{}}
	for k, v := range real {
		if p := f.field(k); p != nil {
			*p = v
		}
	}
	return f
}

// Lock marks keys as not writable. Later SetField calls for them fail.
func (f *Fields) Lock(keys ...props.Key) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range keys {
		f.locked[k] = true
	}
}

// SetField implements props.FieldStore.
func (f *Fields) SetField(key props.Key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	p := f.field(key)
	if p == nil {
		return fmt.Errorf("%w: %s", props.ErrUnknownKey, key)
	}
	if f.locked[key] {
		return fmt.Errorf("%w: %s", props.ErrFieldNotWritable, key)
	}
	*p = value
	return nil
}

// Get returns the current value of key.
func (f *Fields) Get(key props.Key) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	p := f.field(key)
	if p == nil {
		return "", false
	}
	return *p, true
}

// Snapshot returns every field in key order.
func (f *Fields) Snapshot() []props.Override {
	f.mu.RLock()
	defer f.mu.RUnlock()

	keys := props.AllKeys()
	out := make([]props.Override, 0, len(keys))
	for _, k := range keys {
		out = append(out, props.Override{Key: k, Value: *f.field(k)})
	}
	return out
}

func (f *Fields) field(key props.Key) *string {
	switch key {
	case props.KeyBrand:
		return &f.Brand
	case props.KeyManufacturer:
		return &f.Manufacturer
	case props.KeyDevice:
		return &f.Device
	case props.KeyProduct:
		return &f.Product
	case props.KeyModel:
		return &f.Model
	case props.KeyFingerprint:
		return &f.Fingerprint
	case props.KeyDisplay:
		return &f.Display
	case props.KeyType:
		return &f.Type
	case props.KeyTags:
		return &f.Tags
	default:
		return nil
	}
}
