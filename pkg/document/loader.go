package document

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/mholt/archiver/v3"
)

// compressed lists the single stream extensions Load decompresses.
var compressed = map[string]bool{
	".gz":  true,
	".zst": true,
	".bz2": true,
	".xz":  true,
	".lz4": true,
	".sz":  true,
}

// Load reads the JSON document at path, decompressing it first when the
// file name carries a known compression extension.
func Load(path string) (Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Value{}, err
	}
	if !compressed[strings.ToLower(filepath.Ext(path))] {
		return Parse(data)
	}

	format, err := archiver.ByExtension(path)
	if err != nil {
		return Value{}, err
	}
	decompressor, ok := format.(archiver.Decompressor)
	if !ok {
		return Parse(data)
	}
	var out bytes.Buffer
	if err := decompressor.Decompress(bytes.NewReader(data), &out); err != nil {
		return Value{}, err
	}
	return Parse(out.Bytes())
}
