package transaction

import (
	"github.com/suffix-labs/codechain-tx/pkg/primitives"
)

// ChangeAssetSchemeParams are the caller-supplied fields of a
// ChangeAssetScheme. Approver and Administrator are given in their external
// string form; nil means "none".
type ChangeAssetSchemeParams struct {
	NetworkID     primitives.NetworkID
	AssetType     primitives.H256
	Metadata      string
	Approver      *string
	Administrator *string
	Approvals     []string
}

// ChangeAssetScheme replaces the metadata, approver and administrator of an
// existing asset type.
type ChangeAssetScheme struct {
	networkID     primitives.NetworkID
	assetType     primitives.H256
	metadata      string
	approver      *primitives.PlatformAddress
	administrator *primitives.PlatformAddress
	approvals     []string
}

// NewChangeAssetScheme validates params and returns an immutable transaction.
// A malformed approver or administrator fails here, never at encode time.
func NewChangeAssetScheme(params ChangeAssetSchemeParams) (*ChangeAssetScheme, error) {
	approver, err := ensureOptionalAddress(TypeChangeAssetScheme, "approver", params.Approver)
	if err != nil {
		return nil, err
	}
	administrator, err := ensureOptionalAddress(TypeChangeAssetScheme, "administrator", params.Administrator)
	if err != nil {
		return nil, err
	}

	approvals := make([]string, len(params.Approvals))
	copy(approvals, params.Approvals)

	return &ChangeAssetScheme{
		networkID:     params.NetworkID,
		assetType:     params.AssetType,
		metadata:      params.Metadata,
		approver:      approver,
		administrator: administrator,
		approvals:     approvals,
	}, nil
}

func (t *ChangeAssetScheme) isTransaction() {}

func (t *ChangeAssetScheme) NetworkID() primitives.NetworkID { return t.networkID }
func (t *ChangeAssetScheme) Tag() Tag                        { return TagChangeAssetScheme }
func (t *ChangeAssetScheme) Type() string                    { return TypeChangeAssetScheme }

func (t *ChangeAssetScheme) AssetType() primitives.H256 { return t.assetType }
func (t *ChangeAssetScheme) Metadata() string           { return t.metadata }

// Approver returns the new approver, or nil for none.
func (t *ChangeAssetScheme) Approver() *primitives.PlatformAddress { return t.approver }

// Administrator returns the new administrator, or nil for none.
func (t *ChangeAssetScheme) Administrator() *primitives.PlatformAddress { return t.administrator }

// Approvals returns a copy of the attached approvals.
func (t *ChangeAssetScheme) Approvals() []string {
	out := make([]string, len(t.approvals))
	copy(out, t.approvals)
	return out
}

// ActionToEncodeObject returns
// [0x15, networkId, assetType, metadata, [approver?], [administrator?], approvals].
func (t *ChangeAssetScheme) ActionToEncodeObject() []interface{} {
	return []interface{}{
		uint64(TagChangeAssetScheme),
		t.networkID.ToEncodeObject(),
		t.assetType.ToEncodeObject(),
		t.metadata,
		encodeOptionalAccount(t.approver),
		encodeOptionalAccount(t.administrator),
		t.Approvals(),
	}
}

func (t *ChangeAssetScheme) ActionToJSON() map[string]interface{} {
	return map[string]interface{}{
		"networkId":     t.networkID.String(),
		"assetType":     t.assetType.ToJSON(),
		"metadata":      t.metadata,
		"approver":      jsonOptionalAccount(t.approver),
		"administrator": jsonOptionalAccount(t.administrator),
		"approvals":     t.Approvals(),
	}
}

type changeAssetSchemeJSON struct {
	NetworkID     primitives.NetworkID `json:"networkId"`
	AssetType     primitives.H256      `json:"assetType"`
	Metadata      string               `json:"metadata"`
	Approver      *string              `json:"approver"`
	Administrator *string              `json:"administrator"`
	Approvals     []string             `json:"approvals"`
}

func (j changeAssetSchemeJSON) build() (Transaction, error) {
	tx, err := NewChangeAssetScheme(ChangeAssetSchemeParams{
		NetworkID:     j.NetworkID,
		AssetType:     j.AssetType,
		Metadata:      j.Metadata,
		Approver:      j.Approver,
		Administrator: j.Administrator,
		Approvals:     j.Approvals,
	})
	return built(tx, err)
}

// decodeChangeAssetScheme reads the fields after the tag. The action carries
// its own network id, which is also used to rebuild the addresses.
func decodeChangeAssetScheme(fields []interface{}) (Transaction, error) {
	if len(fields) != 6 {
		return nil, &DecodeError{Code: ErrFieldCount, Message: "changeAssetScheme expects 6 fields after the tag"}
	}

	networkID, err := asString(fields[0], "networkId")
	if err != nil {
		return nil, err
	}
	rawAssetType, err := asBytes(fields[1], "assetType")
	if err != nil {
		return nil, err
	}
	assetType, err := primitives.H256FromBytes(rawAssetType)
	if err != nil {
		return nil, &DecodeError{Code: ErrInvalidField, Message: "assetType", Cause: err}
	}
	metadata, err := asString(fields[2], "metadata")
	if err != nil {
		return nil, err
	}
	approver, err := decodeOptionalAccount(fields[3], primitives.NetworkID(networkID))
	if err != nil {
		return nil, err
	}
	administrator, err := decodeOptionalAccount(fields[4], primitives.NetworkID(networkID))
	if err != nil {
		return nil, err
	}
	approvals, err := asStrings(fields[5], "approvals")
	if err != nil {
		return nil, err
	}

	tx, err := NewChangeAssetScheme(ChangeAssetSchemeParams{
		NetworkID:     primitives.NetworkID(networkID),
		AssetType:     assetType,
		Metadata:      metadata,
		Approver:      addressString(approver),
		Administrator: addressString(administrator),
		Approvals:     approvals,
	})
	return built(tx, err)
}
