package main

import (
	"bytes"
	"crypto"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"go.step.sm/crypto/pemutil"
)

// executeCommand executes a Cobra command with the given args and returns output.
func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err = root.Execute()
	return buf.String(), err
}

// testContext holds test resources.
type testContext struct {
	t       *testing.T
	tempDir string
}

// newTestContext creates a new test context with a temp directory.
func newTestContext(t *testing.T) *testContext {
	t.Helper()
	dir, err := os.MkdirTemp("", "sealkit-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	return &testContext{t: t, tempDir: dir}
}

// path returns a path within the temp directory.
func (tc *testContext) path(name string) string {
	return filepath.Join(tc.tempDir, name)
}

// writeFile writes content to a file in the temp directory.
func (tc *testContext) writeFile(name string, content []byte) string {
	tc.t.Helper()
	path := tc.path(name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		tc.t.Fatalf("Failed to write file %s: %v", name, err)
	}
	return path
}

// writeKeyPEM writes a private key to a PEM file.
func (tc *testContext) writeKeyPEM(name string, key crypto.Signer) string {
	tc.t.Helper()
	block, err := pemutil.Serialize(key)
	if err != nil {
		tc.t.Fatalf("Failed to serialize key: %v", err)
	}
	return tc.writeFile(name, pem.EncodeToMemory(block))
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected file %s to exist: %v", path, err)
	}
}

// assertFileNotEmpty fails the test if the file is empty.
func assertFileNotEmpty(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("Expected file %s to exist: %v", path, err)
		return
	}
	if info.Size() == 0 {
		t.Errorf("Expected file %s to be non-empty", path)
	}
}

func resetDigestFlags() {
	digestAlgorithm = "sha256"
}

func resetHMACFlags() {
	hmacAlgorithm = "sha256"
	hmacKeyFile = ""
	hmacKeyHex = ""
}

func resetKeyFlags() {
	keyGenType = "ec"
	keyGenBits = 2048
	keyGenCurve = "p-256"
	keyGenOut = ""
	keyGenPubOut = ""

	keyPubKey = ""
	keyPubOut = ""

	keyFingerprintAlgorithm = "sha256"
	keyFingerprintHSMConfig = ""
}

func resetSignFlags() {
	signKey = ""
	signAlgorithm = "sha256"
	signIn = ""
	signOut = ""
	signFormat = "raw"

	verifyKey = ""
	verifyAlgorithm = "sha256"
	verifyIn = ""
	verifySig = ""
	verifyFormat = "raw"
}

func resetEncryptFlags() {
	encryptKey = ""
	encryptIn = ""
	encryptOut = ""

	decryptKey = ""
	decryptIn = ""
	decryptOut = ""
}
