package transaction

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suffix-labs/codechain-tx/pkg/expect"
	"github.com/suffix-labs/codechain-tx/pkg/primitives"
)

const (
	testAddress   = "tcc1q9h7vnl68frvqapzv3tujrxtxtwqdnxw6yamrrgd"
	testAccountID = "6fe64ffa3a46c074226457c90ccb32dc06ccced1"
	testAssetType = "0x530000000000000000000000abababababababababababababababababababab"
	testPublic    = "0x55f2c44106dc980941313e0a0a8b7313ca70da62484fdae17087ef3ee318a72d155541a183824a002b02b3855e9d223f18ba803dc62370a07852ba6df4a8b9a6"
	mainnetAddr   = "ccc1q9h7vnl68frvqapzv3tujrxtxtwqdnxw6y4u3qm5"
)

func strPtr(s string) *string { return &s }

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func mustAssetType(t *testing.T) primitives.H256 {
	t.Helper()
	h, err := primitives.ParseH256(testAssetType)
	require.NoError(t, err)
	return h
}

// exampleChangeAssetScheme is the reference value: no approver, an
// administrator, two approvals.
func exampleChangeAssetScheme(t *testing.T) *ChangeAssetScheme {
	t.Helper()
	tx, err := NewChangeAssetScheme(ChangeAssetSchemeParams{
		NetworkID:     primitives.TestNet,
		AssetType:     mustAssetType(t),
		Metadata:      "{}",
		Approver:      nil,
		Administrator: strPtr(testAddress),
		Approvals:     []string{"sig1", "sig2"},
	})
	require.NoError(t, err)
	return tx
}

func examplePay(t *testing.T) *Pay {
	t.Helper()
	tx, err := NewPay(PayParams{NetworkID: primitives.TestNet, Receiver: testAddress, Quantity: 10000})
	require.NoError(t, err)
	return tx
}

func exampleSetRegularKey(t *testing.T) *SetRegularKey {
	t.Helper()
	key, err := primitives.ParseH512(testPublic)
	require.NoError(t, err)
	tx, err := NewSetRegularKey(SetRegularKeyParams{NetworkID: primitives.TestNet, Key: key})
	require.NoError(t, err)
	return tx
}

func exampleCustom() *Custom {
	return NewCustom(CustomParams{NetworkID: primitives.TestNet, HandlerID: 1, Bytes: []byte{0xde, 0xad, 0xbe, 0xef}})
}

// allExamples returns one value of every registered kind.
func allExamples(t *testing.T) []Transaction {
	return []Transaction{
		examplePay(t),
		exampleSetRegularKey(t),
		exampleChangeAssetScheme(t),
		exampleCustom(),
	}
}

// checkRoundTrip verifies that both encodings decode back to an equivalent value.
func checkRoundTrip(t *testing.T, tx Transaction) {
	t.Helper()

	encoded := RLPBytes(tx)
	decoded, err := DecodeAction(encoded, tx.NetworkID())
	require.NoError(t, err, "DecodeAction(%s)", tx.Type())
	assert.Equal(t, encoded, RLPBytes(decoded), "RLP round trip changed %s", tx.Type())
	assert.Equal(t, tx.ActionToJSON(), decoded.ActionToJSON())

	data, err := json.Marshal(tx.ActionToJSON())
	require.NoError(t, err)
	fromJSON, err := ParseActionJSON(tx.NetworkID(), tx.Type(), data)
	require.NoError(t, err, "ParseActionJSON(%s)", tx.Type())
	assert.Equal(t, encoded, RLPBytes(fromJSON), "JSON round trip changed %s", tx.Type())
}

func TestChangeAssetSchemeEncodeObject(t *testing.T) {
	tx := exampleChangeAssetScheme(t)
	assetType := mustAssetType(t)

	want := []interface{}{
		uint64(0x15),
		"tc",
		assetType[:],
		"{}",
		[]interface{}{},
		[]interface{}{mustHex(t, testAccountID)},
		[]string{"sig1", "sig2"},
	}
	assert.Equal(t, want, tx.ActionToEncodeObject())
}

func TestChangeAssetSchemeRLP(t *testing.T) {
	tx := exampleChangeAssetScheme(t)

	want := "f84a15827463a0530000000000000000000000abababababababababababababababababababab" +
		"827b7dc0d5946fe64ffa3a46c074226457c90ccb32dc06ccced1ca84736967318473696732"
	assert.Equal(t, want, hex.EncodeToString(RLPBytes(tx)))
}

func TestChangeAssetSchemeJSON(t *testing.T) {
	tx := exampleChangeAssetScheme(t)

	data, err := json.Marshal(tx.ActionToJSON())
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"networkId": "tc",
		"assetType": "`+testAssetType+`",
		"metadata": "{}",
		"approver": null,
		"administrator": "`+testAddress+`",
		"approvals": ["sig1", "sig2"]
	}`, string(data))

	// Absent optionals are present as null, not omitted.
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "approver")
	assert.Equal(t, "null", string(raw["approver"]))
}

func TestOptionalAccountsAgree(t *testing.T) {
	cases := []struct {
		name          string
		approver      *string
		administrator *string
	}{
		{"neither", nil, nil},
		{"approver only", strPtr(testAddress), nil},
		{"administrator only", nil, strPtr(testAddress)},
		{"both", strPtr(testAddress), strPtr(testAddress)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tx, err := NewChangeAssetScheme(ChangeAssetSchemeParams{
				NetworkID:     primitives.TestNet,
				AssetType:     mustAssetType(t),
				Approver:      tc.approver,
				Administrator: tc.administrator,
			})
			require.NoError(t, err)

			obj := tx.ActionToEncodeObject()
			js := tx.ActionToJSON()

			for i, opt := range []struct {
				field string
				in    *string
				addr  *primitives.PlatformAddress
			}{
				{"approver", tc.approver, tx.Approver()},
				{"administrator", tc.administrator, tx.Administrator()},
			} {
				list := obj[4+i].([]interface{})
				if opt.in == nil {
					assert.Nil(t, opt.addr)
					assert.Empty(t, list)
					assert.Nil(t, js[opt.field])
				} else {
					require.NotNil(t, opt.addr)
					assert.Len(t, list, 1)
					assert.Equal(t, opt.addr.String(), js[opt.field])
				}
			}

			checkRoundTrip(t, tx)
		})
	}
}

func TestChangeAssetSchemeRejectsMalformedAddress(t *testing.T) {
	_, err := NewChangeAssetScheme(ChangeAssetSchemeParams{
		NetworkID: primitives.TestNet,
		AssetType: mustAssetType(t),
		Approver:  strPtr("tcc1notanaddress"),
	})
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, TypeChangeAssetScheme, vErr.Type)
	assert.Equal(t, "approver", vErr.Field)

	var addrErr *primitives.AddressError
	assert.True(t, errors.As(err, &addrErr), "cause should be the address error")
}

func TestChangeAssetSchemeAcceptsAddressFromOtherNetwork(t *testing.T) {
	foreign, err := NewChangeAssetScheme(ChangeAssetSchemeParams{
		NetworkID:     primitives.TestNet,
		AssetType:     mustAssetType(t),
		Metadata:      "{}",
		Administrator: strPtr(mainnetAddr),
		Approvals:     []string{"sig1", "sig2"},
	})
	require.NoError(t, err)
	require.NotNil(t, foreign.Administrator())
	assert.Equal(t, primitives.MainNet, foreign.Administrator().NetworkID())
	assert.Equal(t, mainnetAddr, foreign.ActionToJSON()["administrator"])

	// Only the account id is encoded, so the bytes match the local address.
	local := exampleChangeAssetScheme(t)
	assert.Equal(t, RLPBytes(local), RLPBytes(foreign))

	// The JSON form keeps the address's own network.
	data, err := json.Marshal(foreign.ActionToJSON())
	require.NoError(t, err)
	fromJSON, err := ParseActionJSON(primitives.TestNet, TypeChangeAssetScheme, data)
	require.NoError(t, err)
	assert.Equal(t, foreign.ActionToJSON(), fromJSON.ActionToJSON())

	// The binary decoder rebuilds the address on the transaction's network.
	decoded, err := DecodeAction(RLPBytes(foreign), primitives.MainNet)
	require.NoError(t, err)
	cas, ok := decoded.(*ChangeAssetScheme)
	require.True(t, ok)
	require.NotNil(t, cas.Administrator())
	assert.Equal(t, testAddress, cas.Administrator().String())
	assert.Equal(t, foreign.Administrator().AccountID(), cas.Administrator().AccountID())
}

func TestApprovals(t *testing.T) {
	tx, err := NewChangeAssetScheme(ChangeAssetSchemeParams{
		NetworkID: primitives.TestNet,
		AssetType: mustAssetType(t),
	})
	require.NoError(t, err)

	// Empty approvals are an empty list in both forms.
	assert.Equal(t, []string{}, tx.ActionToEncodeObject()[6])
	data, err := json.Marshal(tx.ActionToJSON())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"approvals":[]`)

	approvals := []string{"c", "a", "b"}
	tx, err = NewChangeAssetScheme(ChangeAssetSchemeParams{
		NetworkID: primitives.TestNet,
		AssetType: mustAssetType(t),
		Approvals: approvals,
	})
	require.NoError(t, err)

	// The caller's slice is copied.
	approvals[0] = "mutated"
	assert.Equal(t, []string{"c", "a", "b"}, tx.Approvals())
	assert.Equal(t, []string{"c", "a", "b"}, tx.ActionToEncodeObject()[6])
	assert.Equal(t, []string{"c", "a", "b"}, tx.ActionToJSON()["approvals"])

	checkRoundTrip(t, tx)
}

func TestTagRegistry(t *testing.T) {
	tags := map[Tag]bool{}
	names := map[string]bool{}
	for _, tag := range Tags() {
		require.False(t, tags[tag], "duplicate tag %s", tag)
		tags[tag] = true

		name := tag.Name()
		require.NotEmpty(t, name)
		require.False(t, names[name], "duplicate name %s", name)
		names[name] = true

		back, ok := TagOf(name)
		require.True(t, ok)
		assert.Equal(t, tag, back)
	}

	assert.Equal(t, "changeAssetScheme", TagChangeAssetScheme.Name())
	assert.Equal(t, Tag(0x15), TagChangeAssetScheme)
	assert.False(t, Tag(0x16).Known())
	assert.Equal(t, "unknown(0x16)", Tag(0x16).String())
	_, ok := TagOf("mintAsset")
	assert.False(t, ok)

	for _, tx := range allExamples(t) {
		assert.Equal(t, tx.Type(), tx.Tag().Name())
		assert.Equal(t, uint64(tx.Tag()), tx.ActionToEncodeObject()[0])
	}
}

func TestVariantEncodings(t *testing.T) {
	cases := []struct {
		tx   Transaction
		rlp  string
		json string
	}{
		{
			tx:   examplePay(t),
			rlp:  "d902946fe64ffa3a46c074226457c90ccb32dc06ccced1822710",
			json: `{"receiver":"` + testAddress + `","quantity":"0x2710"}`,
		},
		{
			tx:   exampleSetRegularKey(t),
			rlp:  "f84303b840" + strings.TrimPrefix(testPublic, "0x"),
			json: `{"key":"` + testPublic + `"}`,
		},
		{
			tx:   exampleCustom(),
			rlp:  "c881ff0184deadbeef",
			json: `{"handlerId":"0x1","bytes":"0xdeadbeef"}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.tx.Type(), func(t *testing.T) {
			assert.Equal(t, tc.rlp, hex.EncodeToString(RLPBytes(tc.tx)))

			data, err := json.Marshal(tc.tx.ActionToJSON())
			require.NoError(t, err)
			assert.JSONEq(t, tc.json, string(data))
		})
	}
}

func TestRoundTripAllKinds(t *testing.T) {
	for _, tx := range allExamples(t) {
		t.Run(tx.Type(), func(t *testing.T) {
			checkRoundTrip(t, tx)
		})
	}
}

func TestSetRegularKeyRejectsInvalidKey(t *testing.T) {
	var key primitives.H512
	key[63] = 1

	_, err := NewSetRegularKey(SetRegularKeyParams{NetworkID: primitives.TestNet, Key: key})
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "key", vErr.Field)
}

func TestPayReceiverFromOtherNetwork(t *testing.T) {
	tx, err := NewPay(PayParams{NetworkID: primitives.TestNet, Receiver: mainnetAddr, Quantity: 10000})
	require.NoError(t, err)
	assert.Equal(t, mainnetAddr, tx.Receiver().String())
	assert.Equal(t, mainnetAddr, tx.ActionToJSON()["receiver"])
	assert.Equal(t, RLPBytes(examplePay(t)), RLPBytes(tx))

	decoded, err := DecodeAction(RLPBytes(tx), primitives.TestNet)
	require.NoError(t, err)
	assert.Equal(t, testAddress, decoded.(*Pay).Receiver().String())

	_, err = NewPay(PayParams{NetworkID: primitives.TestNet, Receiver: "tcc1notanaddress", Quantity: 1})
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "receiver", vErr.Field)
}

func TestEncodingIsDeterministic(t *testing.T) {
	tx := exampleChangeAssetScheme(t)
	want := RLPBytes(tx)
	tr := expect.New()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := expect.ShouldFulfill(tr, "encode", func() ([]byte, error) {
				return RLPBytes(tx), nil
			})
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()

	require.NoError(t, tr.CheckFulfilled())
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
		code string
	}{
		{"truncated", "f8", ErrMalformedRLP},
		{"not a list", "80", ErrFieldType},
		{"empty list", "c0", ErrFieldCount},
		{"unknown tag", "c116", ErrUnknownTag},
		{"tag leading zero", "c3820015", ErrInvalidField},
		{"missing fields", "c115", ErrFieldCount},
		{"tag is a list", "c1c0", ErrFieldType},
		{"short account id", "c50283aabbcc", ErrFieldCount},
		{"short receiver", "c60283aabbcc01", ErrInvalidField},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeAction(mustHex(t, tc.data), primitives.TestNet)
			require.Error(t, err)

			var dErr *DecodeError
			require.True(t, errors.As(err, &dErr), "got %v", err)
			assert.Equal(t, tc.code, dErr.Code)
		})
	}
}

func TestDecodeRejectsTwoApprovers(t *testing.T) {
	tx := exampleChangeAssetScheme(t)
	obj := tx.ActionToEncodeObject()
	id := mustHex(t, testAccountID)
	obj[4] = []interface{}{id, id}

	_, err := DecodeAction(mustEncode(obj), primitives.TestNet)
	var dErr *DecodeError
	require.True(t, errors.As(err, &dErr))
	assert.Equal(t, ErrFieldCount, dErr.Code)
}

func TestParseActionJSONErrors(t *testing.T) {
	_, err := ParseActionJSON(primitives.TestNet, "mintAsset", []byte(`{}`))
	var dErr *DecodeError
	require.True(t, errors.As(err, &dErr))
	assert.Equal(t, ErrUnknownType, dErr.Code)

	_, err = ParseActionJSON(primitives.TestNet, TypePay, []byte(`{"receiver":`))
	require.True(t, errors.As(err, &dErr))
	assert.Equal(t, ErrMalformedJSON, dErr.Code)

	_, err = ParseActionJSON(primitives.TestNet, TypeChangeAssetScheme,
		[]byte(`{"networkId":"tc","assetType":"`+testAssetType+`","metadata":"","approver":"bogus","administrator":null,"approvals":[]}`))
	require.True(t, errors.As(err, &dErr))
	assert.Equal(t, ErrInvalidField, dErr.Code)

	var vErr *ValidationError
	assert.True(t, errors.As(err, &vErr))
}
