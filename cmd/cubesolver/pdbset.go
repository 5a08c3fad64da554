package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/cubeerr"
	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/heuristic"
	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/pdb"
	"github.com/rs/zerolog"
)

// loadOrBuildKorf assembles the three Korf PDBs from dir, building and
// caching whichever are missing when buildIfMissing allows it, or returning
// cubeerr.ErrPDBNotFound when it doesn't.
func loadOrBuildKorf(dir string, buildIfMissing bool, logger zerolog.Logger) (heuristic.Korf, error) {
	corner, err := loadOrBuildOne(filepath.Join(dir, "corner"), buildIfMissing, logger,
		func() *pdb.PDB { return pdb.BuildCorner(logger) })
	if err != nil {
		return heuristic.Korf{}, err
	}

	edgeA, err := loadOrBuildOne(filepath.Join(dir, "edge6-a"), buildIfMissing, logger,
		func() *pdb.PDB { return pdb.BuildEdge6(pdb.Edge6SetA, "edge6-a", logger) })
	if err != nil {
		return heuristic.Korf{}, err
	}

	edgeB, err := loadOrBuildOne(filepath.Join(dir, "edge6-b"), buildIfMissing, logger,
		func() *pdb.PDB { return pdb.BuildEdge6(pdb.Edge6SetB, "edge6-b", logger) })
	if err != nil {
		return heuristic.Korf{}, err
	}

	return heuristic.Korf{Corner: corner, EdgeA: edgeA, EdgeB: edgeB}, nil
}

func loadOrBuildOne(path string, buildIfMissing bool, logger zerolog.Logger, build func() *pdb.PDB) (*pdb.PDB, error) {
	p, err := pdb.Load(path)
	if err == nil {
		return p, nil
	}
	if !os.IsNotExist(unwrapPathError(err)) {
		return nil, err
	}
	if !buildIfMissing {
		return nil, cubeerr.ErrPDBNotFound
	}

	logger.Info().Str("path", path).Msg("pattern database missing, building")
	built := build()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	if err := built.Save(path); err != nil {
		return nil, err
	}
	return built, nil
}

// unwrapPathError finds the underlying *os.PathError wrapped by pdb.Load's
// %w chain, so a missing-file condition can be distinguished from other
// load failures (corrupt metadata, schema mismatch) with os.IsNotExist.
func unwrapPathError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr
	}
	return err
}
