package transaction

import "fmt"

// Tag is the numeric discriminator placed first in a transaction's binary
// encoding. Tags are part of the wire protocol: a value is never reused and
// never renumbered.
type Tag uint8

// Registered transaction tags.
const (
	TagPay               Tag = 0x02
	TagSetRegularKey     Tag = 0x03
	TagChangeAssetScheme Tag = 0x15
	TagCustom            Tag = 0xFF
)

// Type names. These identify a kind in JSON and are independent of the
// numeric tag.
const (
	TypePay               = "pay"
	TypeSetRegularKey     = "setRegularKey"
	TypeChangeAssetScheme = "changeAssetScheme"
	TypeCustom            = "custom"
)

// registry is the closed tag <-> name table.
var registry = []struct {
	tag  Tag
	name string
}{
	{TagPay, TypePay},
	{TagSetRegularKey, TypeSetRegularKey},
	{TagChangeAssetScheme, TypeChangeAssetScheme},
	{TagCustom, TypeCustom},
}

// Tags returns every registered tag in registry order.
func Tags() []Tag {
	out := make([]Tag, len(registry))
	for i, r := range registry {
		out[i] = r.tag
	}
	return out
}

// Name returns the type name registered for t, or "" if t is unknown.
func (t Tag) Name() string {
	for _, r := range registry {
		if r.tag == t {
			return r.name
		}
	}
	return ""
}

// Known reports whether t is registered.
func (t Tag) Known() bool {
	return t.Name() != ""
}

func (t Tag) String() string {
	if name := t.Name(); name != "" {
		return fmt.Sprintf("%s(0x%02x)", name, uint8(t))
	}
	return fmt.Sprintf("unknown(0x%02x)", uint8(t))
}

// TagOf returns the tag registered for a type name.
func TagOf(name string) (Tag, bool) {
	for _, r := range registry {
		if r.name == name {
			return r.tag, true
		}
	}
	return 0, false
}
