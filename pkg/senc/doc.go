// Package senc implements a self-describing symmetric-encryption container
// over AES-CBC, processed as a stream rather than a buffered payload.
//
// An envelope produced by an encrypt call carries everything needed to
// reverse it except the secret itself:
//
//	password form: int32_LE(salt_len) | salt | key_size(1) | iv(16) | ciphertext
//	key form:      iv(16) | ciphertext
//
// The ciphertext is always a positive multiple of the AES block size: the
// final block is filled with random tail padding whose last byte encodes the
// pad length, and a full padding block is appended when the plaintext is
// already block-aligned.
//
// The format provides confidentiality only. There is no authentication tag,
// so a tampered envelope decrypts to garbage or fails padding validation, it
// is never detected as inauthentic.
package senc
