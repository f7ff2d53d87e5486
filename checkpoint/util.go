package checkpoint

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/afero"
)

const (
	SchemaVersion = "https://skryptex.org/checkpoints.schema.json.1.0"

	schemaFile = "checkpoints.schema.json"
	dirPerm    = 0o700
)

// Schema describes the serialized form of a Registry.
const Schema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "checkpoints",
  "type": "object",
  "required": ["version", "network", "lastCheckpointTime", "lastCheckpointTxs", "txsPerDay", "checkpoints"],
  "additionalProperties": false,
  "properties": {
    "version": {"type": "string", "const": "` + SchemaVersion + `"},
    "network": {"type": "string", "minLength": 1},
    "lastCheckpointTime": {"type": "integer"},
    "lastCheckpointTxs": {"type": "integer", "minimum": 0},
    "txsPerDay": {"type": "number", "minimum": 0},
    "checkpoints": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["height", "id"],
        "additionalProperties": false,
        "properties": {
          "height": {"type": "integer", "minimum": 0},
          "id": {"type": "string", "pattern": "^0x[0-9a-fA-F]{64}$"}
        }
      }
    }
  }
}`

var compiledSchema = jsonschema.MustCompileString(schemaFile, Schema)

// File is the serialized form of a Registry.
type File struct {
	Version string `json:"version"`
	Network string `json:"network"`
	Calibration
	Checkpoints []Entry `json:"checkpoints"`
}

// ValidateSchema checks data against Schema.
func ValidateSchema(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal checkpoint data: %w", err)
	}
	if err := compiledSchema.Validate(v); err != nil {
		return fmt.Errorf("validate checkpoint data: %w", err)
	}
	return nil
}

// Decode validates data against the schema and builds a Registry from it.
func Decode(data []byte) (*Registry, error) {
	if err := ValidateSchema(data); err != nil {
		return nil, err
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode checkpoint data: %w", err)
	}
	return NewRegistry(f.Network, f.Checkpoints, f.Calibration)
}

// Encode serializes the registry in the format accepted by Decode.
func Encode(r *Registry) ([]byte, error) {
	f := File{
		Version:     SchemaVersion,
		Network:     r.Network(),
		Calibration: r.Calibration(),
		Checkpoints: r.Entries(),
	}
	if f.Checkpoints == nil {
		f.Checkpoints = []Entry{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&f); err != nil {
		return nil, fmt.Errorf("encode checkpoint data: %w", err)
	}
	return buf.Bytes(), nil
}

// LoadFile reads and validates a registry written by Export.
func LoadFile(fs afero.Fs, path string) (*Registry, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read checkpoint file %s: %w", path, err)
	}
	r, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("load checkpoint file %s: %w", path, err)
	}
	return r, nil
}

// Export writes the registry to path. The file is written to a temporary
// location first and renamed into place.
func Export(fs afero.Fs, path string, r *Registry) error {
	data, err := Encode(r)
	if err != nil {
		return err
	}
	rf, err := newRegistryFile(fs, path)
	if err != nil {
		return err
	}
	if _, err := rf.fwriter.Write(data); err != nil {
		rf.file.Close()
		return fmt.Errorf("write tmp file: %w", err)
	}
	return rf.save(fs)
}

type registryFile struct {
	file    afero.File
	fwriter *bufio.Writer
	path    string
}

func newRegistryFile(fs afero.Fs, path string) (*registryFile, error) {
	if err := fs.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return nil, fmt.Errorf("create dst dir %v: %w", filepath.Dir(path), err)
	}
	tmpf, err := afero.TempFile(fs, filepath.Dir(path), filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("%w: create tmp file", err)
	}
	return &registryFile{
		file:    tmpf,
		fwriter: bufio.NewWriter(tmpf),
		path:    path,
	}, nil
}

func (rf *registryFile) save(fs afero.Fs) error {
	defer rf.file.Close()
	if err := rf.fwriter.Flush(); err != nil {
		return fmt.Errorf("flush tmp file: %w", err)
	}
	if err := rf.file.Sync(); err != nil {
		return fmt.Errorf("%w: sync tmp file", err)
	}
	if err := rf.file.Close(); err != nil {
		return fmt.Errorf("%w: close tmp file", err)
	}
	if err := fs.Rename(rf.file.Name(), rf.path); err != nil {
		return fmt.Errorf("%w: rename tmp file %v to %v", err, rf.file.Name(), rf.path)
	}
	return nil
}
