//go:build cgo

package hsm

import (
	"crypto"
	"encoding/asn1"
	"fmt"

	"github.com/miekg/pkcs11"

	"github.com/sealkit/sealkit/pkg/keyutil"
)

// Named curve OIDs as they appear in CKA_EC_PARAMS.
var curveOIDs = map[string]keyutil.CurveID{
	"1.3.132.0.33":        keyutil.CurveP224,
	"1.2.840.10045.3.1.7": keyutil.CurveP256,
	"1.3.132.0.34":        keyutil.CurveP384,
	"1.3.132.0.35":        keyutil.CurveP521,
}

// FetchPublicKey reads the public key labelled in cfg from the token and
// rebuilds it through the key codec.
func FetchPublicKey(cfg *Config) (crypto.PublicKey, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctx := pkcs11.New(cfg.PKCS11.Lib)
	if ctx == nil {
		return nil, fmt.Errorf("failed to load PKCS#11 module %s", cfg.PKCS11.Lib)
	}
	defer ctx.Destroy()

	if err := ctx.Initialize(); err != nil {
		if p11err, ok := err.(pkcs11.Error); !ok || p11err != pkcs11.CKR_CRYPTOKI_ALREADY_INITIALIZED {
			return nil, fmt.Errorf("failed to initialize PKCS#11 module: %w", err)
		}
	}
	defer ctx.Finalize() //nolint:errcheck

	slot, err := findSlot(ctx, cfg)
	if err != nil {
		return nil, err
	}

	session, err := ctx.OpenSession(slot, pkcs11.CKF_SERIAL_SESSION)
	if err != nil {
		return nil, fmt.Errorf("failed to open session on slot %d: %w", slot, err)
	}
	defer ctx.CloseSession(session) //nolint:errcheck

	if pin := cfg.PIN(); pin != "" {
		if err := ctx.Login(session, pkcs11.CKU_USER, pin); err != nil {
			if e, ok := err.(pkcs11.Error); !ok || e != pkcs11.CKR_USER_ALREADY_LOGGED_IN {
				return nil, fmt.Errorf("failed to login: %w", err)
			}
		}
		defer ctx.Logout(session) //nolint:errcheck
	}

	handle, err := findPublicKey(ctx, session, cfg.PKCS11.KeyLabel)
	if err != nil {
		return nil, err
	}
	return extractPublicKey(ctx, session, handle)
}

// findSlot locates the slot by token label, or uses the configured slot ID.
func findSlot(ctx *pkcs11.Ctx, cfg *Config) (uint, error) {
	if cfg.PKCS11.Slot != nil {
		return *cfg.PKCS11.Slot, nil
	}

	slots, err := ctx.GetSlotList(true)
	if err != nil {
		return 0, fmt.Errorf("failed to list slots: %w", err)
	}
	for _, slot := range slots {
		info, err := ctx.GetTokenInfo(slot)
		if err != nil {
			continue
		}
		if info.Label == cfg.PKCS11.Token {
			return slot, nil
		}
	}
	return 0, fmt.Errorf("token %q not found", cfg.PKCS11.Token)
}

// findPublicKey finds exactly one public key object with the given label.
func findPublicKey(ctx *pkcs11.Ctx, session pkcs11.SessionHandle, label string) (pkcs11.ObjectHandle, error) {
	template := []*pkcs11.Attribute{
		pkcs11.NewAttribute(pkcs11.CKA_CLASS, pkcs11.CKO_PUBLIC_KEY),
		pkcs11.NewAttribute(pkcs11.CKA_LABEL, label),
	}
	if err := ctx.FindObjectsInit(session, template); err != nil {
		return 0, fmt.Errorf("failed to start key search: %w", err)
	}
	defer ctx.FindObjectsFinal(session) //nolint:errcheck

	objs, _, err := ctx.FindObjects(session, 2)
	if err != nil {
		return 0, fmt.Errorf("failed to search for key %q: %w", label, err)
	}
	if len(objs) == 0 {
		return 0, fmt.Errorf("public key %q not found", label)
	}
	if len(objs) > 1 {
		return 0, fmt.Errorf("multiple public keys labelled %q", label)
	}
	return objs[0], nil
}

// extractPublicKey reads the raw parameters off the token and rebuilds the key.
func extractPublicKey(ctx *pkcs11.Ctx, session pkcs11.SessionHandle, handle pkcs11.ObjectHandle) (crypto.PublicKey, error) {
	attrs, err := ctx.GetAttributeValue(session, handle, []*pkcs11.Attribute{
		pkcs11.NewAttribute(pkcs11.CKA_KEY_TYPE, nil),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get key type: %w", err)
	}
	keyType := bytesToUint(attrs[0].Value)

	switch keyType {
	case pkcs11.CKK_RSA:
		return extractRSAPublicKey(ctx, session, handle)
	case pkcs11.CKK_EC:
		return extractECPublicKey(ctx, session, handle)
	default:
		return nil, fmt.Errorf("unsupported key type: 0x%X", keyType)
	}
}

// extractRSAPublicKey reads CKA_MODULUS and CKA_PUBLIC_EXPONENT. Both are
// big-endian unsigned, exactly the form the key codec accepts.
func extractRSAPublicKey(ctx *pkcs11.Ctx, session pkcs11.SessionHandle, handle pkcs11.ObjectHandle) (crypto.PublicKey, error) {
	attrs, err := ctx.GetAttributeValue(session, handle, []*pkcs11.Attribute{
		pkcs11.NewAttribute(pkcs11.CKA_MODULUS, nil),
		pkcs11.NewAttribute(pkcs11.CKA_PUBLIC_EXPONENT, nil),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get RSA attributes: %w", err)
	}
	return keyutil.NewRSAPublicKey(attrs[0].Value, attrs[1].Value)
}

// extractECPublicKey reads CKA_EC_PARAMS (curve OID) and CKA_EC_POINT
// (DER octet string wrapping the uncompressed point).
func extractECPublicKey(ctx *pkcs11.Ctx, session pkcs11.SessionHandle, handle pkcs11.ObjectHandle) (crypto.PublicKey, error) {
	attrs, err := ctx.GetAttributeValue(session, handle, []*pkcs11.Attribute{
		pkcs11.NewAttribute(pkcs11.CKA_EC_PARAMS, nil),
		pkcs11.NewAttribute(pkcs11.CKA_EC_POINT, nil),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get EC attributes: %w", err)
	}

	var oid asn1.ObjectIdentifier
	if _, err := asn1.Unmarshal(attrs[0].Value, &oid); err != nil {
		return nil, fmt.Errorf("failed to parse CKA_EC_PARAMS: %w", err)
	}
	curve, ok := curveOIDs[oid.String()]
	if !ok {
		return nil, fmt.Errorf("%w: OID %s", keyutil.ErrUnsupportedCurve, oid)
	}

	var point []byte
	if _, err := asn1.Unmarshal(attrs[1].Value, &point); err != nil {
		return nil, fmt.Errorf("failed to parse CKA_EC_POINT: %w", err)
	}
	x, y, err := splitUncompressedPoint(point)
	if err != nil {
		return nil, err
	}
	return keyutil.NewECPublicKey(curve, x, y)
}

// splitUncompressedPoint splits an uncompressed SEC 1 point (0x04||X||Y)
// into its coordinates.
func splitUncompressedPoint(point []byte) (x, y []byte, err error) {
	if len(point) < 3 || point[0] != 4 || len(point)%2 != 1 {
		return nil, nil, fmt.Errorf("%w: malformed uncompressed EC point", keyutil.ErrInvalidPoint)
	}
	coord := (len(point) - 1) / 2
	return point[1 : 1+coord], point[1+coord:], nil
}

// bytesToUint decodes a little-endian CK_ULONG attribute value.
func bytesToUint(b []byte) uint {
	var v uint
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | uint(b[i])
	}
	return v
}
