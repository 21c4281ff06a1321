package compress

// Compress encodes payloads before they are written to the cache and
// decodes them on the way back out.
type Compress interface {
	Encode(data []byte) ([]byte, error)
	Decode(data []byte) ([]byte, error)
}
