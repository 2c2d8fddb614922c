package primitives

import (
	"hash"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	blake2b "github.com/minio/blake2b-simd"
)

// blake2bNew creates an unkeyed BLAKE2b hash with the given output size.
func blake2bNew(size uint8) hash.Hash {
	h, err := blake2b.New(&blake2b.Config{Size: size})
	if err != nil {
		// Only reachable with a size outside 1..64.
		panic(err)
	}
	return h
}

// Blake160 returns the 20-byte BLAKE2b digest of data.
func Blake160(data []byte) H160 {
	h := blake2bNew(H160Length)
	h.Write(data)
	var out H160
	copy(out[:], h.Sum(nil))
	return out
}

// Blake256 returns the 32-byte BLAKE2b digest of data.
func Blake256(data []byte) H256 {
	return H256(blake2b.Sum256(data))
}

// PublicFromPrivate derives the 64-byte secp256k1 public key (uncompressed,
// without the 0x04 prefix) for a private key. The key must lie in
// [1, N-1]; values at or above the curve order are rejected rather than
// reduced.
func PublicFromPrivate(private H256) (H512, error) {
	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(private[:]); overflow {
		return H512{}, &AddressError{Code: ErrInvalidKey, Input: private.Hex(), Message: "private key is not below the curve order"}
	}
	if scalar.IsZero() {
		return H512{}, &AddressError{Code: ErrInvalidKey, Input: private.Hex(), Message: "private key is zero"}
	}

	key := secp256k1.NewPrivateKey(&scalar)
	uncompressed := key.PubKey().SerializeUncompressed()

	var pub H512
	copy(pub[:], uncompressed[1:])
	return pub, nil
}

// ValidatePublic checks that the key is a point on secp256k1.
func ValidatePublic(public H512) error {
	raw := make([]byte, 0, 1+H512Length)
	raw = append(raw, 0x04)
	raw = append(raw, public[:]...)

	if _, err := secp256k1.ParsePubKey(raw); err != nil {
		return &AddressError{Code: ErrInvalidKey, Input: public.Hex(), Message: "not a secp256k1 public key", Cause: err}
	}
	return nil
}

// AccountIDFromPublic returns blake160(public).
func AccountIDFromPublic(public H512) H160 {
	return Blake160(public[:])
}

// AccountIDFromPrivate returns the account id owned by a private key.
func AccountIDFromPrivate(private H256) (H160, error) {
	pub, err := PublicFromPrivate(private)
	if err != nil {
		return H160{}, err
	}
	return AccountIDFromPublic(pub), nil
}
