package main

import (
	"strings"
	"testing"
)

func TestKeyGen(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"EC P-256 (default)", nil, false},
		{"EC P-384", []string{"--type", "ec", "--curve", "p-384"}, false},
		{"RSA 2048", []string{"--type", "rsa", "--bits", "2048"}, false},
		{"unknown type", []string{"--type", "dsa"}, true},
		{"unknown curve", []string{"--type", "ec", "--curve", "p-163"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestContext(t)
			resetKeyFlags()

			outputPath := tc.path("key.pem")

			args := append([]string{"key", "gen", "--out", outputPath}, tt.args...)
			_, err := executeCommand(rootCmd, args...)

			if (err != nil) != tt.wantErr {
				t.Errorf("error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr {
				assertFileExists(t, outputPath)
				assertFileNotEmpty(t, outputPath)
			}
		})
	}
}

func TestKeyGen_WithPubOut(t *testing.T) {
	tc := newTestContext(t)
	resetKeyFlags()

	keyPath := tc.path("key.pem")
	pubPath := tc.path("pub.pem")

	_, err := executeCommand(rootCmd, "key", "gen", "--out", keyPath, "--pub-out", pubPath)
	if err != nil {
		t.Fatalf("key gen failed: %v", err)
	}
	assertFileNotEmpty(t, keyPath)
	assertFileNotEmpty(t, pubPath)
}

func TestKeyPub(t *testing.T) {
	tc := newTestContext(t)
	resetKeyFlags()

	keyPath := tc.path("key.pem")
	if _, err := executeCommand(rootCmd, "key", "gen", "--out", keyPath); err != nil {
		t.Fatalf("key gen failed: %v", err)
	}

	resetKeyFlags()
	pubPath := tc.path("pub.pem")
	if _, err := executeCommand(rootCmd, "key", "pub", "--key", keyPath, "--out", pubPath); err != nil {
		t.Fatalf("key pub failed: %v", err)
	}
	assertFileNotEmpty(t, pubPath)
}

func TestKeyInspect(t *testing.T) {
	tc := newTestContext(t)
	resetKeyFlags()

	keyPath := tc.path("key.pem")
	pubPath := tc.path("pub.pem")
	if _, err := executeCommand(rootCmd, "key", "gen", "--type", "rsa", "--out", keyPath, "--pub-out", pubPath); err != nil {
		t.Fatalf("key gen failed: %v", err)
	}

	resetKeyFlags()
	out, err := executeCommand(rootCmd, "key", "inspect", pubPath)
	if err != nil {
		t.Fatalf("key inspect failed: %v", err)
	}
	for _, want := range []string{"Type:     RSA", "Modulus:", "Exponent:", "Descriptor:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestKeyFingerprint(t *testing.T) {
	tc := newTestContext(t)
	resetKeyFlags()

	keyPath := tc.path("key.pem")
	pubPath := tc.path("pub.pem")
	if _, err := executeCommand(rootCmd, "key", "gen", "--out", keyPath, "--pub-out", pubPath); err != nil {
		t.Fatalf("key gen failed: %v", err)
	}

	resetKeyFlags()
	out, err := executeCommand(rootCmd, "key", "fingerprint", pubPath)
	if err != nil {
		t.Fatalf("key fingerprint failed: %v", err)
	}
	if len(strings.TrimSpace(out)) != 64 {
		t.Errorf("fingerprint hex length = %d, want 64", len(strings.TrimSpace(out)))
	}

	// Deterministic across runs
	resetKeyFlags()
	out2, err := executeCommand(rootCmd, "key", "fingerprint", pubPath)
	if err != nil {
		t.Fatalf("key fingerprint failed: %v", err)
	}
	if out != out2 {
		t.Error("fingerprint not deterministic")
	}
}

func TestKeyFingerprint_NoSource(t *testing.T) {
	resetKeyFlags()
	if _, err := executeCommand(rootCmd, "key", "fingerprint"); err == nil {
		t.Error("expected error without a key source")
	}
}
