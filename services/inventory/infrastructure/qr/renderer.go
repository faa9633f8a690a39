// Package qr renders scan payloads as QR code images.
package qr

import (
	"context"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/ghuser/stitchstock/pkg/logger"
	"github.com/ghuser/stitchstock/pkg/objectstore"
	"github.com/ghuser/stitchstock/services/inventory/domain/models"
)

// imageSize is the rendered PNG edge length in pixels.
const imageSize = 300

// Renderer renders scan payloads as PNG QR codes. When an archive store is
// configured, rendered images are also uploaded there so labels can be
// reprinted without hitting the service.
type Renderer struct {
	archive *objectstore.Store
	log     logger.Logger
}

// NewRenderer returns a Renderer. archive may be nil to disable archival.
func NewRenderer(archive *objectstore.Store, log logger.Logger) *Renderer {
	return &Renderer{archive: archive, log: log}
}

// PNG renders the payload as a PNG image with high error correction, matching
// what handheld scanners in a workshop environment tolerate. Archival is
// best-effort and never fails the render.
func (r *Renderer) PNG(ctx context.Context, payload models.ScanPayload) ([]byte, error) {
	png, err := qrcode.Encode(payload.Encode(), qrcode.High, imageSize)
	if err != nil {
		return nil, fmt.Errorf("render qr: %w", err)
	}

	if r.archive != nil {
		key := archiveKey(payload.ProductID)
		if err := r.archive.Put(ctx, key, "image/png", png); err != nil {
			r.log.WarnContext(ctx, "qr archive upload failed", "key", key, "error", err)
		}
	}

	return png, nil
}

func archiveKey(productID string) string {
	return fmt.Sprintf("qr/%s.png", productID)
}
