// Package binary provides low-level binary I/O and checksums for PNG chunk
// streams.
//
// # Byte Order
//
// PNG stores every multi-byte integer in network (big-endian) order.
// [DefaultConfig] returns a configuration with [encoding/binary.BigEndian];
// the configuration is kept so readers and writers stay symmetric.
//
// # Reading
//
// [Reader] is a cursor over an in-memory byte slice. Reads past the end of the
// slice fail with [ErrShortRead] and leave the cursor unchanged:
//
//	r := binary.NewReader(buf, binary.DefaultConfig())
//	length, err := r.ReadUint32()
//
// # Writing
//
// [Writer] appends to a growable buffer and never fails.
//
// # Checksums
//
// [Algorithm] describes a CRC parameter set. [CRC32ISOHDLC] is the
// parameterization used by PNG for chunk integrity; [PNGChecksum] computes it
// over a sequence of byte slices treated as one stream.
package binary
