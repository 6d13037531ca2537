package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ossrs/go-oryx-lib/logger"
	"github.com/pkg/errors"

	"github.com/robert-malhotra/go-pngstash/png"
)

// app holds the flag values shared by all commands.
type app struct {
	out    io.Writer
	file   string
	strict bool
	quiet  bool
}

func (a *app) load(ctx context.Context) (*png.PNG, os.FileMode, error) {
	info, err := os.Stat(a.file)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "stat %v", a.file)
	}

	b, err := os.ReadFile(a.file)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "read %v", a.file)
	}

	var opts []png.ParseOption
	if a.strict {
		opts = append(opts, png.WithStrictTypes())
	}
	p, err := png.Parse(b, opts...)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "parse %v", a.file)
	}

	logger.Tf(ctx, "Load %v, %v bytes, %v chunks", a.file, len(b), p.Len())
	return p, info.Mode().Perm(), nil
}

func (a *app) save(ctx context.Context, p *png.PNG, path string, perm os.FileMode) error {
	b := p.Bytes()
	if err := os.WriteFile(path, b, perm); err != nil {
		return errors.Wrapf(err, "write %v", path)
	}
	logger.Tf(ctx, "Save %v, %v bytes, %v chunks", path, len(b), p.Len())
	return nil
}

func (a *app) encode(ctx context.Context, t png.ChunkType, message, output string) error {
	p, perm, err := a.load(ctx)
	if err != nil {
		return err
	}

	if !t.IsValid() {
		logger.Wf(ctx, "Chunk type %v has the reserved bit set, strict readers will reject it", t)
	}
	if t.IsCritical() {
		logger.Wf(ctx, "Chunk type %v is critical, decoders that do not know it will reject the file", t)
	}

	p.AppendChunk(png.NewChunk(t, []byte(message)))
	return a.save(ctx, p, output, perm)
}

func (a *app) decode(ctx context.Context, t png.ChunkType) error {
	p, _, err := a.load(ctx)
	if err != nil {
		return err
	}

	c := p.ChunkByType(t.String())
	if c == nil {
		return errors.Wrapf(&png.Error{Kind: png.KindChunkNotPresent, Type: t.String()}, "decode %v", a.file)
	}

	text, err := c.DataString()
	if err != nil {
		return errors.Wrapf(err, "decode %v", a.file)
	}
	fmt.Fprintln(a.out, text)
	return nil
}

func (a *app) remove(ctx context.Context, t png.ChunkType) error {
	p, perm, err := a.load(ctx)
	if err != nil {
		return err
	}

	c, err := p.RemoveChunk(t.String())
	if err != nil {
		return errors.Wrapf(err, "remove from %v", a.file)
	}
	fmt.Fprintf(a.out, "Chunk Removed: %v\n", c)

	return a.save(ctx, p, a.file, perm)
}

func (a *app) print(ctx context.Context, only *png.ChunkType) error {
	p, _, err := a.load(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Chunks: %d\n", p.Len())
	return p.Walk(func(i int, off int64, c *png.Chunk) error {
		t := c.Type()
		if only != nil && t != *only {
			return nil
		}

		fmt.Fprintf(a.out, "#%d @%d %v length=%d crc=0x%08x %v\n",
			i, off, t, c.Length(), c.CRC(), flagString(t))
		if text, err := c.DataString(); err == nil && c.Length() > 0 {
			fmt.Fprintf(a.out, "    %q\n", text)
		}
		return nil
	})
}

func flagString(t png.ChunkType) string {
	s := "ancillary"
	if t.IsCritical() {
		s = "critical"
	}
	if t.IsPublic() {
		s += ",public"
	} else {
		s += ",private"
	}
	if !t.IsReservedBitValid() {
		s += ",reserved"
	}
	if t.IsSafeToCopy() {
		s += ",safe-to-copy"
	}
	return s
}
