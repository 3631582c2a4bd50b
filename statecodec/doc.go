// Package statecodec encodes serialized generator state for persistence or
// transport.
//
// A Codec turns a plain-data value (typically cauchy.Serialized) into bytes
// and back. Three encodings are provided:
//
//   - JSON    — human-readable, the zero value is ready to use
//   - CBOR    — compact binary; NewCBOR(true) selects RFC 8949 core
//     deterministic encoding for byte-stable output
//   - Msgpack — compact binary, the zero value is ready to use
//
// Example:
//
//	var c statecodec.JSON[*cauchy.Serialized]
//	raw, err := c.Encode(gen.Serialize())
//	...
//	restored, err := c.Decode(raw)
package statecodec
