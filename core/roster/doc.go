package roster

// Package roster partitions registered drivers into named run groups,
// either by skill level or by balanced random distribution.
