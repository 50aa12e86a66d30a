package main

import (
	"strings"
	"testing"
)

func TestDigest(t *testing.T) {
	tests := []struct {
		name      string
		algorithm string
		content   string
		want      string
		wantErr   bool
	}{
		{"SHA-256 of abc", "sha256", "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", false},
		{"SHA-1 of abc", "sha1", "abc", "a9993e364706816aba3e25717850c26c9cd0d89d", false},
		{"unsupported algorithm", "md5", "abc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestContext(t)
			resetDigestFlags()

			path := tc.writeFile("data.bin", []byte(tt.content))

			out, err := executeCommand(rootCmd, "digest", "--algorithm", tt.algorithm, path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && strings.TrimSpace(out) != tt.want {
				t.Errorf("digest = %q, want %q", strings.TrimSpace(out), tt.want)
			}
		})
	}
}

func TestDigest_MultipleFiles(t *testing.T) {
	tc := newTestContext(t)
	resetDigestFlags()

	p1 := tc.writeFile("part1", []byte("a"))
	p2 := tc.writeFile("part2", []byte("bc"))

	out, err := executeCommand(rootCmd, "digest", "--algorithm", "sha256", p1, p2)
	if err != nil {
		t.Fatalf("digest failed: %v", err)
	}

	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if strings.TrimSpace(out) != want {
		t.Errorf("digest = %q, want %q", strings.TrimSpace(out), want)
	}
}

func TestHMAC(t *testing.T) {
	tc := newTestContext(t)
	resetHMACFlags()

	data := tc.writeFile("data.bin", []byte("payload"))

	out, err := executeCommand(rootCmd, "hmac", "--key-hex", "6b6579", data)
	if err != nil {
		t.Fatalf("hmac failed: %v", err)
	}
	if len(strings.TrimSpace(out)) != 64 {
		t.Errorf("mac hex length = %d, want 64", len(strings.TrimSpace(out)))
	}
}

func TestHMAC_MissingKey(t *testing.T) {
	tc := newTestContext(t)
	resetHMACFlags()

	data := tc.writeFile("data.bin", []byte("payload"))

	if _, err := executeCommand(rootCmd, "hmac", data); err == nil {
		t.Error("expected error without a key")
	}
}

func TestHMAC_ExclusiveKeyFlags(t *testing.T) {
	tc := newTestContext(t)
	resetHMACFlags()

	data := tc.writeFile("data.bin", []byte("payload"))
	keyFile := tc.writeFile("hmac.key", []byte("secret"))

	if _, err := executeCommand(rootCmd, "hmac", "--key-file", keyFile, "--key-hex", "6b6579", data); err == nil {
		t.Error("expected error with both key flags")
	}
}
