// Package snapshot persists trained cluster models to a self-describing
// binary format.
//
// A snapshot starts with a fixed header (magic number, format version,
// compression type, codec name), followed by the codec-encoded and
// optionally compressed model payload, and ends with a CRC32 footer over
// everything before it. Loading verifies the magic, version and checksum
// before decoding, so corrupted or foreign files fail fast instead of
// producing a garbage model.
package snapshot
