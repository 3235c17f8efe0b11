// Package password implements Argon2id password hashing with a
// self-describing encoded format:
//
//	$argon2id$v=19$m=<memory>,t=<iterations>,p=<parallelism>$<salt>$<hash>
//
// The encoded string embeds the algorithm parameters and a per-password
// random salt, so verification needs nothing beyond the stored string and
// the candidate plaintext:
//
//	hash, err := password.Hash("hunter2")
//	ok, err := password.Verify(hash, "hunter2") // true, nil
//
// Verify never panics on malformed input: a corrupt or unsupported hash
// string yields (false, ErrInvalidHash), which callers are expected to
// collapse into the same outcome as a wrong password.
package password
