package props

import "fmt"

// Key identifies one overridable identity attribute.
type Key uint8

const (
	KeyBrand Key = iota + 1
	KeyManufacturer
	KeyDevice
	KeyProduct
	KeyModel
	KeyFingerprint
	KeyDisplay
	KeyType
	KeyTags
)

var keyNames = map[Key]string{
	KeyBrand:        "BRAND",
	KeyManufacturer: "MANUFACTURER",
	KeyDevice:       "DEVICE",
	KeyProduct:      "PRODUCT",
	KeyModel:        "MODEL",
	KeyFingerprint:  "FINGERPRINT",
	KeyDisplay:      "DISPLAY",
	KeyType:         "TYPE",
	KeyTags:         "TAGS",
}

var namedKeys = func() map[string]Key {
	m := make(map[string]Key, len(keyNames))
	for k, name := range keyNames {
		m[name] = k
	}
	return m
}()

// AllKeys returns every recognised key in declaration order.
func AllKeys() []Key {
	return []Key{
		KeyBrand, KeyManufacturer, KeyDevice, KeyProduct, KeyModel,
		KeyFingerprint, KeyDisplay, KeyType, KeyTags,
	}
}

// ParseKey maps an upper-case field name such as "MODEL" to its Key.
func ParseKey(name string) (Key, error) {
	k, ok := namedKeys[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	return k, nil
}

// Valid reports whether k is one of the recognised keys.
func (k Key) Valid() bool {
	_, ok := keyNames[k]
	return ok
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN_%02x", uint8(k))
}

// MarshalText lets keys serialise by name in JSON and YAML output.
func (k Key) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKey, uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Override is a single identity value to present in place of the real one.
type Override struct {
	Key   Key    `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

func (o Override) String() string {
	return o.Key.String() + "=" + o.Value
}
