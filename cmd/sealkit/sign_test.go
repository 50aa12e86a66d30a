package main

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"strings"
	"testing"
)

func TestSignVerify_Raw(t *testing.T) {
	tc := newTestContext(t)
	resetSignFlags()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	keyPath := tc.writeKeyPEM("key.pem", key)

	resetKeyFlags()
	pubPath := tc.path("pub.pem")
	if _, err := executeCommand(rootCmd, "key", "pub", "--key", keyPath, "--out", pubPath); err != nil {
		t.Fatalf("key pub failed: %v", err)
	}

	dataPath := tc.writeFile("data.bin", []byte("message to sign"))
	sigPath := tc.path("data.sig")

	resetSignFlags()
	if _, err := executeCommand(rootCmd, "sign", "--key", keyPath, "--in", dataPath, "--out", sigPath); err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	assertFileNotEmpty(t, sigPath)

	resetSignFlags()
	out, err := executeCommand(rootCmd, "verify", "--key", pubPath, "--in", dataPath, "--sig", sigPath)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if !strings.Contains(out, "Signature OK") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestSignVerify_TamperedData(t *testing.T) {
	tc := newTestContext(t)
	resetSignFlags()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	keyPath := tc.writeKeyPEM("key.pem", key)

	resetKeyFlags()
	pubPath := tc.path("pub.pem")
	if _, err := executeCommand(rootCmd, "key", "pub", "--key", keyPath, "--out", pubPath); err != nil {
		t.Fatalf("key pub failed: %v", err)
	}

	dataPath := tc.writeFile("data.bin", []byte("message to sign"))
	sigPath := tc.path("data.sig")

	resetSignFlags()
	if _, err := executeCommand(rootCmd, "sign", "--key", keyPath, "--in", dataPath, "--out", sigPath); err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	tamperedPath := tc.writeFile("tampered.bin", []byte("message to forge"))

	resetSignFlags()
	if _, err := executeCommand(rootCmd, "verify", "--key", pubPath, "--in", tamperedPath, "--sig", sigPath); err == nil {
		t.Error("expected verification failure for tampered data")
	}
}

func TestSignVerify_COSE(t *testing.T) {
	tc := newTestContext(t)
	resetSignFlags()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	keyPath := tc.writeKeyPEM("key.pem", key)

	resetKeyFlags()
	pubPath := tc.path("pub.pem")
	if _, err := executeCommand(rootCmd, "key", "pub", "--key", keyPath, "--out", pubPath); err != nil {
		t.Fatalf("key pub failed: %v", err)
	}

	dataPath := tc.writeFile("data.bin", []byte("cose payload"))
	sigPath := tc.path("data.cose")

	resetSignFlags()
	if _, err := executeCommand(rootCmd, "sign", "--key", keyPath, "--format", "cose", "--in", dataPath, "--out", sigPath); err != nil {
		t.Fatalf("cose sign failed: %v", err)
	}

	resetSignFlags()
	out, err := executeCommand(rootCmd, "verify", "--key", pubPath, "--format", "cose", "--sig", sigPath)
	if err != nil {
		t.Fatalf("cose verify failed: %v", err)
	}
	if !strings.Contains(out, "Signature OK") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestSign_UnknownFormat(t *testing.T) {
	tc := newTestContext(t)
	resetSignFlags()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	keyPath := tc.writeKeyPEM("key.pem", key)
	dataPath := tc.writeFile("data.bin", []byte("x"))

	if _, err := executeCommand(rootCmd, "sign", "--key", keyPath, "--format", "jws", "--in", dataPath); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestEncryptDecrypt(t *testing.T) {
	tc := newTestContext(t)
	resetEncryptFlags()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	keyPath := tc.writeKeyPEM("key.pem", key)

	resetKeyFlags()
	pubPath := tc.path("pub.pem")
	if _, err := executeCommand(rootCmd, "key", "pub", "--key", keyPath, "--out", pubPath); err != nil {
		t.Fatalf("key pub failed: %v", err)
	}

	secret := []byte("0123456789abcdef0123456789abcdef")
	plainPath := tc.writeFile("secret.key", secret)
	wrappedPath := tc.path("wrapped.bin")

	resetEncryptFlags()
	if _, err := executeCommand(rootCmd, "encrypt", "--key", pubPath, "--in", plainPath, "--out", wrappedPath); err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	assertFileNotEmpty(t, wrappedPath)

	resetEncryptFlags()
	outPath := tc.path("recovered.key")
	if _, err := executeCommand(rootCmd, "decrypt", "--key", keyPath, "--in", wrappedPath, "--out", outPath); err != nil {
		t.Fatalf("decrypt failed: %v", err)
	}

	recovered, err := executeCommand(rootCmd, "digest", "--algorithm", "sha256", outPath)
	if err != nil {
		t.Fatalf("digest failed: %v", err)
	}
	original, err := executeCommand(rootCmd, "digest", "--algorithm", "sha256", plainPath)
	if err != nil {
		t.Fatalf("digest failed: %v", err)
	}
	if recovered != original {
		t.Error("decrypted content does not match original")
	}
}

func TestEncrypt_RejectsECKey(t *testing.T) {
	tc := newTestContext(t)
	resetEncryptFlags()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	keyPath := tc.writeKeyPEM("key.pem", key)

	resetKeyFlags()
	pubPath := tc.path("pub.pem")
	if _, err := executeCommand(rootCmd, "key", "pub", "--key", keyPath, "--out", pubPath); err != nil {
		t.Fatalf("key pub failed: %v", err)
	}

	dataPath := tc.writeFile("data.bin", []byte("x"))
	if _, err := executeCommand(rootCmd, "encrypt", "--key", pubPath, "--in", dataPath); err == nil {
		t.Error("expected error for non-RSA key")
	}
}
