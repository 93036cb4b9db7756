package simhal

import _ "embed"

// DefaultBoardManifest is the iot01a pin manifest, embedded so cmd/moted
// runs out of the box without a filesystem path to a YAML file. A real
// deployment would instead point LoadBoardConfig at a file next to the
// binary.
//
//go:embed boards/iot01a.yaml
var DefaultBoardManifest []byte
