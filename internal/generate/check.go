package generate

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/aellingwood/flowicons/internal/icon"
	"github.com/aellingwood/flowicons/internal/slots"
	"github.com/disintegration/imaging"
)

// Drift reasons reported by Check.
const (
	ReasonMissing = "missing"
	ReasonCorrupt = "not a decodable image"
	ReasonSize    = "wrong size"
	ReasonStale   = "stale"
)

// Drift describes an output file that does not match a fresh render.
type Drift struct {
	Slot   slots.Slot
	Reason string
	Detail string
}

func (d Drift) String() string {
	if d.Detail == "" {
		return fmt.Sprintf("%s: %s", d.Slot.Path, d.Reason)
	}
	return fmt.Sprintf("%s: %s (%s)", d.Slot.Path, d.Reason, d.Detail)
}

// Check renders every slot in memory and compares the result with the file
// on disk. Rendering is deterministic, so any difference in content hash
// means the file was produced by something else or is out of date. Nothing is
// written. Each drift is also printed to the configured output as it is
// found. An empty result means every output is current.
func (g *Generator) Check(table []slots.Slot) ([]Drift, error) {
	var drifts []Drift
	for _, s := range table {
		d, err := checkSlot(s)
		if err != nil {
			return nil, err
		}
		if d != nil {
			g.printf("%s\n", d)
			drifts = append(drifts, *d)
		}
	}
	return drifts, nil
}

func checkSlot(s slots.Slot) (*Drift, error) {
	onDisk, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Drift{Slot: s, Reason: ReasonMissing}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", s.Path, err)
	}

	want, err := icon.Bytes(s.Size)
	if err != nil {
		return nil, err
	}
	if HashBytes(onDisk) == HashBytes(want) {
		return nil, nil
	}

	img, err := imaging.Decode(bytes.NewReader(onDisk))
	if err != nil {
		return &Drift{Slot: s, Reason: ReasonCorrupt, Detail: err.Error()}, nil
	}
	if b := img.Bounds(); b.Dx() != s.Size || b.Dy() != s.Size {
		return &Drift{
			Slot:   s,
			Reason: ReasonSize,
			Detail: fmt.Sprintf("got %dx%d, want %s", b.Dx(), b.Dy(), s.Dimensions()),
		}, nil
	}
	return &Drift{Slot: s, Reason: ReasonStale}, nil
}

// HashBytes returns the SHA-256 hex digest of b.
func HashBytes(b []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(b))
}
