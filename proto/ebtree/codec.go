package ebtreepb

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// jsonCodec marshals the message types in this package as JSON. It
// registers itself under the name "proto" (encoding.RegisterCodec's
// documented way to replace grpc-go's default codec), so every
// EBTreeService call uses it without any per-call or per-dial option.
//
// Real protoc-generated code gets this for free from a .proto file;
// this package has none (see DESIGN.md), so the messages are plain Go
// structs and this codec is what lets them travel over grpc.
type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return "proto"
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
