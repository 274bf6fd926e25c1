package ebtree

// Uint32Cell, Uint32Root, Uint64Cell, and Uint64Root name the two
// unsigned key widths, u32 and u64. They need no transform: the core
// tree already orders uint32/uint64 keys correctly by their raw bit
// pattern.
type (
	Uint32Cell = Cell[uint32]
	Uint32Root = Root[uint32]
	Uint64Cell = Cell[uint64]
	Uint64Root = Root[uint64]
)

// Int32Cell and Int64Cell are the cell types for signed s32/s64
// trees. They are plain unsigned cells: the tree only ever stores and
// compares the sign-folded bit pattern (see foldInt32/foldInt64
// below), so Int32Root/Int64Root fold on the way in and unfold on the
// way out rather than exposing a distinct cell layout.
type (
	Int32Cell = Cell[uint32]
	Int64Cell = Cell[uint64]
)

// signBit32/signBit64 flip the sign bit of a two's-complement integer
// before it is reinterpreted as unsigned. XORing it in (rather than
// just casting) maps signed order onto unsigned order: the most
// negative value becomes the smallest unsigned pattern and the most
// positive becomes the largest, so the core tree's unsigned bit
// comparisons reproduce signed ordering without ever branching on a
// sign bit.
const (
	signBit32 = uint32(1) << 31
	signBit64 = uint64(1) << 63
)

// FoldInt32, UnfoldInt32, FoldInt64, and UnfoldInt64 are exported so
// callers building their own storage on top of Root[uint32]/
// Root[uint64] (rather than going through Int32Root/Int64Root) can
// apply the same sign transform at their own boundary.
func FoldInt32(v int32) uint32   { return uint32(v) ^ signBit32 }
func UnfoldInt32(v uint32) int32 { return int32(v ^ signBit32) }
func FoldInt64(v int64) uint64   { return uint64(v) ^ signBit64 }
func UnfoldInt64(v uint64) int64 { return int64(v ^ signBit64) }

func foldInt32(v int32) uint32   { return FoldInt32(v) }
func unfoldInt32(v uint32) int32 { return UnfoldInt32(v) }
func foldInt64(v int64) uint64   { return FoldInt64(v) }
func unfoldInt64(v uint64) int64 { return UnfoldInt64(v) }

// Int32Key returns c's true signed key. Only meaningful for cells
// living in an Int32Root; a cell shared with a plain Uint32Root should
// be read through its Key field instead.
func Int32Key(c *Int32Cell) int32 { return unfoldInt32(c.Key) }

// Int64Key returns c's true signed key. Only meaningful for cells
// living in an Int64Root.
func Int64Key(c *Int64Cell) int64 { return unfoldInt64(c.Key) }

// Int32Root is a tree ordered by signed 32-bit key, built directly on
// top of Root[uint32] by folding/unfolding at the boundary.
type Int32Root struct {
	Root[uint32]
}

// NewInt32Root returns an empty signed 32-bit root that allows
// duplicate keys.
func NewInt32Root() *Int32Root { return &Int32Root{} }

// NewUniqueInt32Root returns an empty signed 32-bit root that rejects
// inserting a key that already exists.
func NewUniqueInt32Root() *Int32Root {
	r := &Int32Root{}
	r.Root = *NewUniqueRoot[uint32]()
	return r
}

// Insert splices c into the tree under key.
func (r *Int32Root) Insert(c *Int32Cell, key int32) *Int32Cell {
	return r.Root.Insert(c, foldInt32(key))
}

// Lookup returns the cell holding key, or nil.
func (r *Int32Root) Lookup(key int32) *Int32Cell { return r.Root.Lookup(foldInt32(key)) }

// LookupGE returns the cell with the smallest key >= key, or nil.
func (r *Int32Root) LookupGE(key int32) *Int32Cell { return r.Root.LookupGE(foldInt32(key)) }

// LookupLE returns the cell with the largest key <= key, or nil.
func (r *Int32Root) LookupLE(key int32) *Int32Cell { return r.Root.LookupLE(foldInt32(key)) }

// Int64Root is a tree ordered by signed 64-bit key, built directly on
// top of Root[uint64] by folding/unfolding at the boundary.
type Int64Root struct {
	Root[uint64]
}

// NewInt64Root returns an empty signed 64-bit root that allows
// duplicate keys.
func NewInt64Root() *Int64Root { return &Int64Root{} }

// NewUniqueInt64Root returns an empty signed 64-bit root that rejects
// inserting a key that already exists.
func NewUniqueInt64Root() *Int64Root {
	r := &Int64Root{}
	r.Root = *NewUniqueRoot[uint64]()
	return r
}

// Insert splices c into the tree under key.
func (r *Int64Root) Insert(c *Int64Cell, key int64) *Int64Cell {
	return r.Root.Insert(c, foldInt64(key))
}

// Lookup returns the cell holding key, or nil.
func (r *Int64Root) Lookup(key int64) *Int64Cell { return r.Root.Lookup(foldInt64(key)) }

// LookupGE returns the cell with the smallest key >= key, or nil.
func (r *Int64Root) LookupGE(key int64) *Int64Cell { return r.Root.LookupGE(foldInt64(key)) }

// LookupLE returns the cell with the largest key <= key, or nil.
func (r *Int64Root) LookupLE(key int64) *Int64Cell { return r.Root.LookupLE(foldInt64(key)) }
