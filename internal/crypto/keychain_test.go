package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	svc := NewKeyChainService(0)

	s1, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != SaltSize {
		t.Fatalf("salt length = %d, want %d", len(s1), SaltSize)
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestGenerateNonce_LengthAndRandomness(t *testing.T) {
	svc := NewKeyChainService(0)

	n1, err := svc.GenerateNonce()
	if err != nil {
		t.Fatalf("GenerateNonce error: %v", err)
	}
	n2, err := svc.GenerateNonce()
	if err != nil {
		t.Fatalf("GenerateNonce error: %v", err)
	}

	if len(n1) != NonceSize {
		t.Fatalf("nonce length = %d, want %d", len(n1), NonceSize)
	}
	if bytes.Equal(n1, n2) {
		t.Fatalf("expected nonces to differ, but they are equal")
	}
}

func TestDeriveKey_DeterministicForSameInputs(t *testing.T) {
	svc := NewKeyChainService(MinIterations)

	passphrase := "correct horse battery staple"
	salt := bytes.Repeat([]byte{0xAB}, SaltSize)

	k1 := svc.DeriveKey(passphrase, salt)
	k2 := svc.DeriveKey(passphrase, salt)

	if len(k1) != KeySize {
		t.Fatalf("key length = %d, want %d", len(k1), KeySize)
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected keys to match for same passphrase+salt")
	}
}

func TestDeriveKey_DifferentSaltProducesDifferentKey(t *testing.T) {
	svc := NewKeyChainService(MinIterations)

	passphrase := "same passphrase"
	salt1 := bytes.Repeat([]byte{0x01}, SaltSize)
	salt2 := bytes.Repeat([]byte{0x02}, SaltSize)

	if bytes.Equal(svc.DeriveKey(passphrase, salt1), svc.DeriveKey(passphrase, salt2)) {
		t.Fatalf("expected different keys for different salts")
	}
}

func TestNewKeyChainService_RaisesLowIterationCounts(t *testing.T) {
	svc := NewKeyChainService(1000).(*keyChainService)
	if svc.iterations != DefaultIterations {
		t.Fatalf("iterations = %d, want %d", svc.iterations, DefaultIterations)
	}

	svc = NewKeyChainService(MinIterations).(*keyChainService)
	if svc.iterations != MinIterations {
		t.Fatalf("iterations = %d, want %d", svc.iterations, MinIterations)
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	svc := NewKeyChainService(MinIterations)

	key := bytes.Repeat([]byte{0x2A}, KeySize)
	nonce := bytes.Repeat([]byte{0x0C}, NonceSize)
	plaintext := []byte("s3cr3t!")

	ciphertext, err := svc.Encrypt(plaintext, key, nonce)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if bytes.Contains(ciphertext, plaintext) {
		t.Fatalf("ciphertext contains plaintext")
	}

	got, err := svc.Decrypt(ciphertext, key, nonce)
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("round-trip mismatch: got %q, want %q", got, plaintext)
	}
}

func TestDecrypt_TamperedCiphertextFailsIntegrity(t *testing.T) {
	svc := NewKeyChainService(MinIterations)

	key := bytes.Repeat([]byte{0x2A}, KeySize)
	nonce := bytes.Repeat([]byte{0x0C}, NonceSize)

	ciphertext, err := svc.Encrypt([]byte("payload"), key, nonce)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	// Flip every byte position one at a time; each single-byte change must
	// be detected, never silently yield a different plaintext.
	for i := range ciphertext {
		tampered := append([]byte(nil), ciphertext...)
		tampered[i] ^= 0x01

		if _, err := svc.Decrypt(tampered, key, nonce); !errors.Is(err, ErrIntegrity) {
			t.Fatalf("byte %d: got err %v, want ErrIntegrity", i, err)
		}
	}
}

func TestDecrypt_WrongKeyFailsIntegrity(t *testing.T) {
	svc := NewKeyChainService(MinIterations)

	key := bytes.Repeat([]byte{0x2A}, KeySize)
	wrongKey := bytes.Repeat([]byte{0x2B}, KeySize)
	nonce := bytes.Repeat([]byte{0x0C}, NonceSize)

	ciphertext, err := svc.Encrypt([]byte("payload"), key, nonce)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if _, err := svc.Decrypt(ciphertext, wrongKey, nonce); !errors.Is(err, ErrIntegrity) {
		t.Fatalf("got err %v, want ErrIntegrity", err)
	}
}

func TestSealOpenSecret_RoundTrip(t *testing.T) {
	svc := NewKeyChainService(MinIterations)

	blob, err := svc.SealSecret("s3cr3t!", "Tr0ub4dor&3")
	if err != nil {
		t.Fatalf("SealSecret error: %v", err)
	}

	secret, err := svc.OpenSecret(blob, "Tr0ub4dor&3")
	if err != nil {
		t.Fatalf("OpenSecret error: %v", err)
	}
	if secret != "s3cr3t!" {
		t.Fatalf("secret = %q, want %q", secret, "s3cr3t!")
	}
}

func TestSealSecret_NonDeterministic(t *testing.T) {
	svc := NewKeyChainService(MinIterations)

	b1, err := svc.SealSecret("same secret", "same passphrase")
	if err != nil {
		t.Fatalf("SealSecret error: %v", err)
	}
	b2, err := svc.SealSecret("same secret", "same passphrase")
	if err != nil {
		t.Fatalf("SealSecret error: %v", err)
	}

	if b1 == b2 {
		t.Fatalf("expected distinct blobs for repeated encryption of the same secret")
	}
}

func TestOpenSecret_WrongPassphraseFailsIntegrity(t *testing.T) {
	svc := NewKeyChainService(MinIterations)

	blob, err := svc.SealSecret("s3cr3t!", "Tr0ub4dor&3")
	if err != nil {
		t.Fatalf("SealSecret error: %v", err)
	}

	if _, err := svc.OpenSecret(blob, "WrongPass"); !errors.Is(err, ErrIntegrity) {
		t.Fatalf("got err %v, want ErrIntegrity", err)
	}
}

func TestComputeCommitment_VerifyCorrectness(t *testing.T) {
	svc := NewKeyChainService(MinIterations)

	commitment, err := svc.ComputeCommitment("Tr0ub4dor&3")
	if err != nil {
		t.Fatalf("ComputeCommitment error: %v", err)
	}
	if len(commitment) != commitmentSize {
		t.Fatalf("commitment length = %d, want %d", len(commitment), commitmentSize)
	}

	if !svc.VerifyCommitment("Tr0ub4dor&3", commitment) {
		t.Fatalf("expected correct passphrase to verify")
	}
	if svc.VerifyCommitment("WrongPass", commitment) {
		t.Fatalf("expected wrong passphrase to fail verification")
	}
}

func TestVerifyCommitment_StructurallyInvalid(t *testing.T) {
	svc := NewKeyChainService(MinIterations)

	// Truncated, empty and oversized commitments all verify false, the
	// same observable result as a wrong passphrase.
	for _, commitment := range [][]byte{nil, {}, bytes.Repeat([]byte{0x01}, SaltSize), bytes.Repeat([]byte{0x01}, commitmentSize+1)} {
		if svc.VerifyCommitment("any", commitment) {
			t.Fatalf("expected invalid commitment of length %d to fail verification", len(commitment))
		}
	}
}

func TestComputeCommitment_SaltedPerCall(t *testing.T) {
	svc := NewKeyChainService(MinIterations)

	c1, err := svc.ComputeCommitment("same passphrase")
	if err != nil {
		t.Fatalf("ComputeCommitment error: %v", err)
	}
	c2, err := svc.ComputeCommitment("same passphrase")
	if err != nil {
		t.Fatalf("ComputeCommitment error: %v", err)
	}

	if bytes.Equal(c1, c2) {
		t.Fatalf("expected fresh salt per commitment")
	}
}
