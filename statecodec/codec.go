package statecodec

// Codec encodes/decodes values V to []byte for storage or transport.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
