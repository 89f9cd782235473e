package graph

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// LoadData decodes the graph interchange document. Gzip-compressed input is
// detected from the stream magic and unwrapped transparently. A structurally
// invalid graph is an error; the core never operates on corrupt data.
func LoadData(r io.Reader) (*Data, error) {
	br := bufio.NewReader(r)

	magic, err := br.Peek(2)
	if err != nil {
		return nil, fmt.Errorf("failed to read map data: %w", err)
	}

	var src io.Reader = br
	if magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip map data: %w", err)
		}
		defer gz.Close()
		src = gz
	}

	var data Data
	if err := json.NewDecoder(src).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode map data: %w", err)
	}

	if err := data.Validate(); err != nil {
		return nil, err
	}

	return &data, nil
}

// EncodeData writes the graph interchange document, gzip-compressed when
// compress is set.
func EncodeData(w io.Writer, data *Data, compress bool) error {
	if compress {
		gz := gzip.NewWriter(w)
		if err := json.NewEncoder(gz).Encode(data); err != nil {
			return fmt.Errorf("failed to encode map data: %w", err)
		}
		return gz.Close()
	}

	if err := json.NewEncoder(w).Encode(data); err != nil {
		return fmt.Errorf("failed to encode map data: %w", err)
	}
	return nil
}

// Validate checks the construction invariants: every node index referenced
// by a way is a valid index into Nodes.
func (d *Data) Validate() error {
	for w := range d.Ways {
		for _, nodeID := range d.Ways[w].Nodes {
			if nodeID < 0 || nodeID >= len(d.Nodes) {
				return fmt.Errorf("way %d references node %d, only %d nodes loaded",
					w, nodeID, len(d.Nodes))
			}
		}
	}
	return nil
}
