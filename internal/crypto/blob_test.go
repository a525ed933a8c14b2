package crypto

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/MKhiriev/go-vault-keeper/models"
)

func TestEncodeDecodeBlob_RoundTrip(t *testing.T) {
	salt := bytes.Repeat([]byte{0x01}, SaltSize)
	nonce := bytes.Repeat([]byte{0x02}, NonceSize)
	ciphertext := []byte("ciphertext-and-tag")

	encoded := EncodeBlob(salt, nonce, ciphertext)

	gotSalt, gotNonce, gotCiphertext, err := DecodeBlob(encoded)
	if err != nil {
		t.Fatalf("DecodeBlob error: %v", err)
	}
	if !bytes.Equal(gotSalt, salt) {
		t.Fatalf("salt mismatch")
	}
	if !bytes.Equal(gotNonce, nonce) {
		t.Fatalf("nonce mismatch")
	}
	if !bytes.Equal(gotCiphertext, ciphertext) {
		t.Fatalf("ciphertext mismatch")
	}
}

func TestDecodeBlob_InvalidBase64(t *testing.T) {
	if _, _, _, err := DecodeBlob("%%% not base64 %%%"); !errors.Is(err, ErrFormat) {
		t.Fatalf("got err %v, want ErrFormat", err)
	}
}

func TestDecodeBlob_TooShort(t *testing.T) {
	// 27 bytes decodes fine but cannot hold salt+nonce.
	short := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0xFF}, minBlobSize-1))

	if _, _, _, err := DecodeBlob(models.EncryptedPassword(short)); !errors.Is(err, ErrFormat) {
		t.Fatalf("got err %v, want ErrFormat", err)
	}
}

func TestDecodeBlob_MinimumLengthEmptyCiphertext(t *testing.T) {
	// Exactly 28 bytes is structurally valid: empty ciphertext segment.
	exact := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0xFF}, minBlobSize))

	_, _, ciphertext, err := DecodeBlob(models.EncryptedPassword(exact))
	if err != nil {
		t.Fatalf("DecodeBlob error: %v", err)
	}
	if len(ciphertext) != 0 {
		t.Fatalf("ciphertext length = %d, want 0", len(ciphertext))
	}
}
