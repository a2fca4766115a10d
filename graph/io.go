// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"cogentcore.org/linkdiagram/base/iox"
	"cogentcore.org/linkdiagram/base/iox/jsonx"
	"cogentcore.org/linkdiagram/base/iox/yamlx"
)

// Format is an encoding of graph [Data].
type Format int32

const (
	// JSON is the d3-style {"nodes": [...], "links": [...]} encoding.
	JSON Format = iota

	// YAML is the same structure encoded as YAML.
	YAML
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", int32(f))
}

// ParseFormat returns the format with the given name or file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return JSON, fmt.Errorf("graph: unknown format %q", s)
}

// FormatFromPath returns the format implied by the extension of the path.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

func (f Format) decoder() iox.DecoderFunc {
	if f == YAML {
		return yamlx.NewDecoder
	}
	return jsonx.NewDecoder
}

func (f Format) encoder() iox.EncoderFunc {
	if f == YAML {
		return yamlx.NewEncoder
	}
	return jsonx.NewEncoder
}

// Read decodes graph data in the given format from the reader.
func Read(r io.Reader, f Format) (*Data, error) {
	d := &Data{}
	if err := iox.Read(d, r, f.decoder()); err != nil {
		return nil, fmt.Errorf("graph: decoding %v: %w", f, err)
	}
	return d, nil
}

// Open reads graph data from the file, using its extension for the format.
func Open(filename string) (*Data, error) {
	f, err := FormatFromPath(filename)
	if err != nil {
		return nil, err
	}
	d := &Data{}
	if err := iox.Open(d, filename, f.decoder()); err != nil {
		return nil, fmt.Errorf("graph: opening %s: %w", filename, err)
	}
	return d, nil
}

// Write encodes the graph data in the given format to the writer.
func Write(w io.Writer, f Format, d *Data) error {
	return iox.Write(d, w, f.encoder())
}

// Save writes the graph data to the file, using its extension for the format.
func Save(filename string, d *Data) error {
	f, err := FormatFromPath(filename)
	if err != nil {
		return err
	}
	return iox.Save(d, filename, f.encoder())
}
