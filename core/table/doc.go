// Package table contains the annotation-to-residue mapping core. It never
// imports app, writers, cli, or uniprot; keep it domain-only.
//
// External outputs must not depend on the internal shape here — use pkg/api
// in the app module for stable wire types (JSON v1).
package table
