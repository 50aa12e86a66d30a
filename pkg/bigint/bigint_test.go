package bigint

import (
	"bytes"
	"math/big"
	"testing"
)

// =============================================================================
// [Unit] BigInt Codec Tests
// =============================================================================

func TestU_BigInt_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  []byte
	}{
		{"[Unit] RoundTrip: single byte", []byte{0x42}, []byte{0x42}},
		{"[Unit] RoundTrip: multi byte", []byte{0x01, 0x00, 0x01}, []byte{0x01, 0x00, 0x01}},
		{"[Unit] RoundTrip: leading zeros stripped", []byte{0x00, 0x00, 0xff}, []byte{0xff}},
		{"[Unit] RoundTrip: empty is zero", []byte{}, []byte{0}},
		{"[Unit] RoundTrip: all zeros is zero", []byte{0x00, 0x00}, []byte{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := FromBytes(tt.input)
			got, err := ToBytes(n)
			if err != nil {
				t.Fatalf("ToBytes() error = %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("ToBytes(FromBytes(%x)) = %x, want %x", tt.input, got, tt.want)
			}
		})
	}
}

func TestU_BigInt_FromBytes_Values(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  int64
	}{
		{"[Unit] FromBytes: empty", nil, 0},
		{"[Unit] FromBytes: zero", []byte{0}, 0},
		{"[Unit] FromBytes: 65537", []byte{0x01, 0x00, 0x01}, 65537},
		{"[Unit] FromBytes: leading zeros", []byte{0x00, 0x01, 0x00, 0x01}, 65537},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromBytes(tt.input); got.Int64() != tt.want {
				t.Errorf("FromBytes(%x) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestU_BigInt_ToBytes_Negative(t *testing.T) {
	if _, err := ToBytes(big.NewInt(-1)); err == nil {
		t.Error("expected error for negative integer, got nil")
	}
}

func TestU_BigInt_ToBytes_MinimalLength(t *testing.T) {
	n := new(big.Int).Lsh(big.NewInt(1), 2048) // 2^2048, 257 bytes
	b, err := ToBytes(n)
	if err != nil {
		t.Fatalf("ToBytes() error = %v", err)
	}
	want := n.BitLen()/8 + 1
	if len(b) != want {
		t.Errorf("encoded length = %d, want %d", len(b), want)
	}
	if b[0] == 0 {
		t.Error("encoding has a leading zero byte")
	}
}

func FuzzBigIntRoundTrip(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00})
	f.Add([]byte{0x01, 0x00, 0x01})
	f.Fuzz(func(t *testing.T, data []byte) {
		n := FromBytes(data)
		out, err := ToBytes(n)
		if err != nil {
			t.Fatalf("ToBytes() error = %v", err)
		}
		if FromBytes(out).Cmp(n) != 0 {
			t.Errorf("round trip changed value: %x -> %x", data, out)
		}
		if len(out) > 1 && out[0] == 0 {
			t.Errorf("non-minimal encoding: %x", out)
		}
	})
}
