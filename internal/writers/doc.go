// Package writers turns finished annotation tables into serialized
// outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV, JSON, XLSX, pretty).
//   - The table core stays domain-only; app stays orchestration-only.
//   - JSON goes through pkg/api (v1) for a stable wire format.
package writers
