// Copyright (C) 2026 Sneller Labs
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Command chunkcat concatenates ion-encoded chunk files and writes the
// result to stdout annotated with a fresh run id and optionally
// compressed, or, with -digest, prints a per-column digest instead of
// writing the result — a small CLI harness around the
// chunk/column concat kernel, in the style of the donor engine's
// single-purpose cmd/ tools (cmd/dump, cmd/sdb).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/sneller-labs/chunkwise/chunk"
	"github.com/sneller-labs/chunkwise/column"
	"github.com/sneller-labs/chunkwise/compr"
	"github.com/sneller-labs/chunkwise/ion"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "chunkcat: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("chunkcat", flag.ContinueOnError)
	compress := fs.String("compress", "none", "compress output with s2, zstd, or none")
	digest := fs.Bool("digest", false, "print each output column's content digest instead of its values")
	configPath := fs.String("config", "", "YAML config overriding -compress/-digest defaults")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "compress":
			cfg.Compress = *compress
		case "digest":
			cfg.Digest = *digest
		}
	})

	files := fs.Args()
	if len(files) == 0 {
		return fmt.Errorf("usage: chunkcat [-compress s2|zstd|none] [-digest] [-config path] FILE...")
	}

	var chunks []chunk.Chunk
	for _, f := range files {
		cs, err := readChunks(f)
		if err != nil {
			return fmt.Errorf("reading %s: %w", f, err)
		}
		chunks = append(chunks, cs...)
	}

	out, err := chunk.Concat(chunks)
	if err != nil {
		return fmt.Errorf("concat: %w", err)
	}

	if cfg.Digest {
		return printDigest(out)
	}
	return writeChunk(os.Stdout, out, cfg.Compress, uuid.New())
}

func printDigest(c chunk.Chunk) error {
	for i, v := range c.Columns {
		col := v.Broadcast(c.RowCount)
		fmt.Printf("column %d: kind=%s rows=%d digest=%016x\n", i, col.Kind(), col.Len(), column.Digest(col))
	}
	return nil
}

func readChunks(path string) ([]chunk.Chunk, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var st ion.Symtab
	var out []chunk.Chunk
	body := data
	for len(body) > 0 {
		d, rest, err := ion.ReadDatum(&st, body)
		if err != nil {
			return nil, err
		}
		body = rest
		if d.Empty() {
			continue
		}
		if _, inner, ok := d.Annotation(); ok {
			d = inner
		}
		c, err := decodeChunk(d)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func writeChunk(w *os.File, c chunk.Chunk, compressName string, runID uuid.UUID) error {
	var st ion.Symtab
	d := ion.Annotation(&st, runID.String(), encodeChunk(&st, c))

	var body ion.Buffer
	d.Encode(&body, &st)

	var out ion.Buffer
	out.StartChunk(&st)
	out.UnsafeAppend(body.Bytes())

	payload := out.Bytes()
	if compressName != "none" {
		comp := compr.Compression(compressName)
		if comp == nil {
			return fmt.Errorf("unknown compression %q", compressName)
		}
		payload = comp.Compress(payload, nil)
	}
	_, err := w.Write(payload)
	return err
}
