package png

// WalkFunc is called for each chunk during traversal.
// index is the chunk's position in the sequence and offset is the byte
// offset of its length field in the serialized stream.
// Return nil to continue walking, or an error to stop.
type WalkFunc func(index int, offset int64, c *Chunk) error

// Walk calls fn for every chunk in order. fn must not add or remove chunks.
//
// Example:
//
//	p.Walk(func(i int, off int64, c *png.Chunk) error {
//	    fmt.Printf("%d @%d %s (%d bytes)\n", i, off, c.Type(), c.Length())
//	    return nil
//	})
func (p *PNG) Walk(fn WalkFunc) error {
	offset := int64(len(Signature))
	for i := 0; i < len(p.chunks); i++ {
		size := int64(p.chunks[i].Size())
		if err := fn(i, offset, &p.chunks[i]); err != nil {
			return err
		}
		offset += size
	}
	return nil
}
