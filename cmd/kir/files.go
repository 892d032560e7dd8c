package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/waozixyz/kir/pkg/codec"
)

// loadDocument reads a KIR file in either wire format, sniffing JSON by its
// leading brace.
func loadDocument(path string, strict bool) (*codec.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var opts []codec.Option
	if strict {
		opts = append(opts, codec.Strict())
	}
	if isJSON(data) {
		doc, err := codec.DecodeJSON(data)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
		return doc, nil
	}
	doc, err := codec.DecodeBinary(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return doc, nil
}

func isJSON(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// saveDocument writes doc in the format named by format, or inferred from
// the output path's extension when format is empty.
func saveDocument(path, format string, doc *codec.Document) error {
	if format == "" {
		if strings.HasSuffix(path, ".json") {
			format = "json"
		} else {
			format = "binary"
		}
	}

	var data []byte
	switch format {
	case "json":
		out, err := codec.EncodeJSON(doc)
		if err != nil {
			return err
		}
		data = out
	case "binary":
		data = codec.EncodeBinary(doc)
	default:
		return fmt.Errorf("unknown format %q (want binary or json)", format)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
