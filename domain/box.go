package domain

// Box is the BoxProtobufPayload envelope: Name identifies the inner message type,
// Payload holds its encoded bytes.
type Box struct {
	Name    string
	Payload []byte
}
