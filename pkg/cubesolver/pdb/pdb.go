// Package pdb builds and serves the Korf pattern databases: a full 8-corner
// PDB and two disjoint 6-edge PDBs, each a dense byte array of BFS distances
// indexed by a bijective rank over the corresponding abstract state space.
package pdb

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/exp/mmap"
)

// unset is the sentinel distance for an abstract rank not yet written during
// a build. One byte suffices: no PDB distance in this domain exceeds ~20.
const unset = 0xFF

// schemaVersion is bumped whenever the on-disk layout of .data/.meta changes
// in a way older readers can't tolerate.
const schemaVersion = 1

// Meta is the JSON sidecar persisted alongside a PDB's raw distance array.
type Meta struct {
	Size             int   `json:"size"`
	SchemaVersion    int   `json:"schema_version"`
	Subset           string `json:"subset"`
	TrackedPositions []int `json:"tracked_positions,omitempty"`
}

// PDB is a dense distance table indexed by abstract-state rank. It is either
// build-owned (backed by an in-memory slice, freshly computed) or read-only
// reload-backed (backed by a memory-mapped file).
type PDB struct {
	meta   Meta
	data   []byte          // non-nil when build-owned or loaded fully into memory
	reader *mmap.ReaderAt  // non-nil when memory-mapped from disk
}

// New wraps already-computed distance data (e.g. from a build step run
// elsewhere, or a synthetic table in a test) as an in-memory PDB. data's
// length must equal meta.Size.
func New(meta Meta, data []byte) (*PDB, error) {
	if len(data) != meta.Size {
		return nil, fmt.Errorf("pdb: New: data has %d entries, metadata declares size %d", len(data), meta.Size)
	}
	return &PDB{meta: meta, data: data}, nil
}

// Get returns the distance at rank, or unset if rank is out of range.
func (p *PDB) Get(r int) uint8 {
	if r < 0 || r >= p.meta.Size {
		return unset
	}
	if p.data != nil {
		return p.data[r]
	}
	var b [1]byte
	if _, err := p.reader.ReadAt(b[:], int64(r)); err != nil {
		return unset
	}
	return b[0]
}

// Size returns the number of abstract ranks this PDB covers.
func (p *PDB) Size() int {
	return p.meta.Size
}

// Save writes the PDB's distance array to <path>.data and its metadata to
// <path>.meta. Save requires an in-memory (build-owned) PDB.
func (p *PDB) Save(path string) error {
	if p.data == nil {
		return fmt.Errorf("pdb: Save called on a PDB with no in-memory data")
	}
	if err := os.WriteFile(path+".data", p.data, 0o644); err != nil {
		return fmt.Errorf("pdb: writing data file: %w", err)
	}
	metaBytes, err := json.Marshal(p.meta)
	if err != nil {
		return fmt.Errorf("pdb: marshaling metadata: %w", err)
	}
	if err := os.WriteFile(path+".meta", metaBytes, 0o644); err != nil {
		return fmt.Errorf("pdb: writing meta file: %w", err)
	}
	return nil
}

// Load reloads a PDB previously written by Save, memory-mapping the data
// file for read-only access rather than copying it into the heap.
func Load(path string) (*PDB, error) {
	metaBytes, err := os.ReadFile(path + ".meta")
	if err != nil {
		return nil, fmt.Errorf("pdb: reading meta file: %w", err)
	}
	var meta Meta
	if err := json.Unmarshal(metaBytes, &meta); err != nil {
		return nil, fmt.Errorf("pdb: parsing meta file: %w", err)
	}
	if meta.SchemaVersion != schemaVersion {
		return nil, fmt.Errorf("pdb: %s: schema version %d, module expects %d", path, meta.SchemaVersion, schemaVersion)
	}

	reader, err := mmap.Open(path + ".data")
	if err != nil {
		return nil, fmt.Errorf("pdb: opening data file: %w", err)
	}
	if reader.Len() != meta.Size {
		reader.Close()
		return nil, fmt.Errorf("pdb: %s: data file has %d bytes, metadata declares size %d", path, reader.Len(), meta.Size)
	}

	return &PDB{meta: meta, reader: reader}, nil
}

// Close releases the memory-mapped file, if any. It is a no-op for
// build-owned PDBs.
func (p *PDB) Close() error {
	if p.reader != nil {
		return p.reader.Close()
	}
	return nil
}
