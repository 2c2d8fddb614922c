// Package api provides the high-level entry points used by the cctx CLI
// and by applications that describe transactions in YAML files.
//
// The typical flow is:
//
//  1. ParseRequest - read a YAML TransactionRequest
//  2. BuildTransaction - validate it into a transaction.Unsigned
//  3. Encode - produce RLP bytes, the signing hash and the JSON form
//
// Decode goes the other way for RLP bytes received from elsewhere.
package api

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"gopkg.in/yaml.v3"

	"github.com/suffix-labs/codechain-tx/pkg/primitives"
	"github.com/suffix-labs/codechain-tx/pkg/transaction"
)

// TransactionRequest describes an unsigned transaction in YAML.
//
//	networkId: tc
//	seq: 0
//	fee: 10
//	action:
//	  type: changeAssetScheme
//	  assetType: 0x53...
//	  metadata: "{}"
//	  approver: null
//	  administrator: tcc1q9h7vnl68frvqapzv3tujrxtxtwqdnxw6yamrrgd
//	  approvals: [sig1, sig2]
type TransactionRequest struct {
	NetworkID string        `yaml:"networkId"` // Empty = use the configured default
	Seq       uint64        `yaml:"seq"`
	Fee       uint64        `yaml:"fee"`
	Action    ActionRequest `yaml:"action"`
}

// ActionRequest holds the fields of every kind; only those relevant to
// Type are read.
type ActionRequest struct {
	Type string `yaml:"type"`

	// changeAssetScheme
	AssetType     string   `yaml:"assetType"`
	Metadata      string   `yaml:"metadata"`
	Approver      *string  `yaml:"approver"`
	Administrator *string  `yaml:"administrator"`
	Approvals     []string `yaml:"approvals"`

	// pay
	Receiver string `yaml:"receiver"`
	Quantity uint64 `yaml:"quantity"`

	// setRegularKey
	Key string `yaml:"key"`

	// custom
	HandlerID uint64 `yaml:"handlerId"`
	Bytes     string `yaml:"bytes"` // 0x-prefixed hex
}

// Encoded holds both representations of a transaction plus its hash.
type Encoded struct {
	RLP  []byte          // Canonical binary form
	Hash primitives.H256 // blake256(RLP), the signing input
	JSON []byte          // Client-facing JSON form
}

// ParseRequest decodes a YAML transaction description.
func ParseRequest(data []byte) (*TransactionRequest, error) {
	var req TransactionRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse transaction request: %w", err)
	}
	return &req, nil
}

// BuildTransaction validates a request into an unsigned transaction.
// defaultNetwork is used when the request does not name a network.
func BuildTransaction(req *TransactionRequest, defaultNetwork primitives.NetworkID) (*transaction.Unsigned, error) {
	network := defaultNetwork
	if req.NetworkID != "" {
		network = primitives.NetworkID(req.NetworkID)
	}
	if _, err := primitives.ParseNetworkID(string(network)); err != nil {
		return nil, err
	}

	action, err := buildAction(&req.Action, network)
	if err != nil {
		return nil, err
	}

	return &transaction.Unsigned{
		Seq:    req.Seq,
		Fee:    primitives.U64(req.Fee),
		Action: action,
	}, nil
}

func buildAction(a *ActionRequest, network primitives.NetworkID) (transaction.Transaction, error) {
	switch a.Type {
	case transaction.TypeChangeAssetScheme:
		assetType, err := primitives.ParseH256(a.AssetType)
		if err != nil {
			return nil, fmt.Errorf("assetType: %w", err)
		}
		tx, err := transaction.NewChangeAssetScheme(transaction.ChangeAssetSchemeParams{
			NetworkID:     network,
			AssetType:     assetType,
			Metadata:      a.Metadata,
			Approver:      a.Approver,
			Administrator: a.Administrator,
			Approvals:     a.Approvals,
		})
		if err != nil {
			return nil, err
		}
		return tx, nil

	case transaction.TypePay:
		tx, err := transaction.NewPay(transaction.PayParams{
			NetworkID: network,
			Receiver:  a.Receiver,
			Quantity:  primitives.U64(a.Quantity),
		})
		if err != nil {
			return nil, err
		}
		return tx, nil

	case transaction.TypeSetRegularKey:
		key, err := primitives.ParseH512(a.Key)
		if err != nil {
			return nil, fmt.Errorf("key: %w", err)
		}
		tx, err := transaction.NewSetRegularKey(transaction.SetRegularKeyParams{
			NetworkID: network,
			Key:       key,
		})
		if err != nil {
			return nil, err
		}
		return tx, nil

	case transaction.TypeCustom:
		var payload []byte
		if a.Bytes != "" {
			b, err := hexutil.Decode(a.Bytes)
			if err != nil {
				return nil, fmt.Errorf("bytes: %w", err)
			}
			payload = b
		}
		return transaction.NewCustom(transaction.CustomParams{
			NetworkID: network,
			HandlerID: primitives.U64(a.HandlerID),
			Bytes:     payload,
		}), nil

	default:
		return nil, fmt.Errorf("unknown action type %q", a.Type)
	}
}

// Encode produces both representations of u.
func Encode(u *transaction.Unsigned) (*Encoded, error) {
	js, err := json.MarshalIndent(u, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transaction: %w", err)
	}
	raw := u.RLPBytes()
	return &Encoded{RLP: raw, Hash: primitives.Blake256(raw), JSON: js}, nil
}

// Decode parses envelope RLP given as raw bytes.
func Decode(data []byte) (*transaction.Unsigned, error) {
	return transaction.DecodeUnsigned(data)
}

// DecodeHex parses envelope RLP given as 0x-prefixed or bare hex.
func DecodeHex(s string) (*transaction.Unsigned, error) {
	if len(s) < 2 || (s[:2] != "0x" && s[:2] != "0X") {
		s = "0x" + s
	}
	data, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	return Decode(data)
}

// DerivedAddress is the account controlled by a private key.
type DerivedAddress struct {
	Public    primitives.H512
	AccountID primitives.H160
	Address   primitives.PlatformAddress
}

// DeriveAddress computes the public key, account id and platform address
// for a hex private key on the given network.
func DeriveAddress(privateKeyHex string, network primitives.NetworkID) (*DerivedAddress, error) {
	secret, err := primitives.ParseH256(privateKeyHex)
	if err != nil {
		return nil, err
	}
	pub, err := primitives.PublicFromPrivate(secret)
	if err != nil {
		return nil, err
	}
	id := primitives.AccountIDFromPublic(pub)
	addr, err := primitives.PlatformAddressFromAccountID(id, network)
	if err != nil {
		return nil, err
	}
	return &DerivedAddress{Public: pub, AccountID: id, Address: addr}, nil
}
