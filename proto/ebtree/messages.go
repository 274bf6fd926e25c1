// Package ebtreepb defines the wire types and gRPC service for
// ebtreed, the tree server in cmd/ebtreed.
//
// There is no .proto/protoc step behind this package: the messages
// below are plain Go structs carried over gRPC with a JSON codec (see
// codec.go) rather than generated protobuf bindings. See DESIGN.md for
// why.
package ebtreepb

// KeyKind selects which of the four key widths a tree was created
// with.
type KeyKind string

const (
	KeyKindU32 KeyKind = "u32"
	KeyKindS32 KeyKind = "s32"
	KeyKindU64 KeyKind = "u64"
	KeyKindS64 KeyKind = "s64"
)

// Cell is one key/payload pair as seen over the wire.
type Cell struct {
	Key     int64  `json:"key"`
	Payload []byte `json:"payload,omitempty"`
}

// CreateTreeRequest creates a new named tree of a fixed key kind.
type CreateTreeRequest struct {
	Tree   string  `json:"tree"`
	Kind   KeyKind `json:"kind"`
	Unique bool    `json:"unique"`
}

type CreateTreeResponse struct {
	Created bool `json:"created"`
}

// InsertRequest splices a cell into a named tree.
type InsertRequest struct {
	Tree    string `json:"tree"`
	Key     int64  `json:"key"`
	Payload []byte `json:"payload,omitempty"`
}

type InsertResponse struct {
	Inserted bool   `json:"inserted"`
	Existing *Cell  `json:"existing,omitempty"`
}

// LookupMode selects which of the three point queries to run.
type LookupMode string

const (
	LookupEQ LookupMode = "eq"
	LookupGE LookupMode = "ge"
	LookupLE LookupMode = "le"
)

type LookupRequest struct {
	Tree string     `json:"tree"`
	Key  int64      `json:"key"`
	Mode LookupMode `json:"mode"`
}

type LookupResponse struct {
	Found bool  `json:"found"`
	Cell  *Cell `json:"cell,omitempty"`
}

type DeleteRequest struct {
	Tree string `json:"tree"`
	Key  int64  `json:"key"`
}

type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}

// RangeRequest asks for every cell in a tree in ascending key order.
type RangeRequest struct {
	Tree string `json:"tree"`
}

type StatsRequest struct {
	Tree string `json:"tree"`
}

type StatsResponse struct {
	Tree      string  `json:"tree"`
	Kind      KeyKind `json:"kind"`
	Unique    bool    `json:"unique"`
	CellCount int64   `json:"cell_count"`
}

type HealthRequest struct{}

type HealthResponse struct {
	Healthy       bool  `json:"healthy"`
	UptimeSeconds int64 `json:"uptime_seconds"`
}
