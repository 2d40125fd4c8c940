package model

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxAssetSize = 256 * 1024

// AssetKind classifies what a piece of SVG art is for.
type AssetKind string

const (
	AssetSpeciesArt AssetKind = "species"
	AssetDaoArt     AssetKind = "dao"
	AssetTitleArt   AssetKind = "title"
	AssetUIArt      AssetKind = "ui"
)

// Valid reports whether the kind is one of the known values.
func (k AssetKind) Valid() bool {
	switch k {
	case AssetSpeciesArt, AssetDaoArt, AssetTitleArt, AssetUIArt:
		return true
	}
	return false
}

// Asset is an SVG art asset stored alongside the content it illustrates.
// Checksum is the SHA-256 of the SVG text, used by clients to skip
// re-downloading unchanged art.
type Asset struct {
	ID        uuid.UUID `json:"id"`
	Key       string    `json:"key"`
	Kind      AssetKind `json:"kind"`
	SVG       string    `json:"svg"`
	Checksum  string    `json:"checksum"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ChecksumSVG returns the hex SHA-256 of the SVG text.
func ChecksumSVG(svg string) string {
	sum := sha256.Sum256([]byte(svg))
	return hex.EncodeToString(sum[:])
}

// Validate checks an uploaded asset before it is persisted.
func (a Asset) Validate() error {
	if a.Key == "" {
		return fmt.Errorf("asset: empty key")
	}
	if !a.Kind.Valid() {
		return fmt.Errorf("asset %q: unknown kind %q", a.Key, a.Kind)
	}
	if len(a.SVG) == 0 {
		return fmt.Errorf("asset %q: empty svg", a.Key)
	}
	if len(a.SVG) > maxAssetSize {
		return fmt.Errorf("asset %q: svg too large (%d bytes, max %d)", a.Key, len(a.SVG), maxAssetSize)
	}
	if !strings.Contains(a.SVG, "<svg") {
		return fmt.Errorf("asset %q: not an svg document", a.Key)
	}
	return nil
}
