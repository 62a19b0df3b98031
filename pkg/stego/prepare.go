// prepare.go - Carrier decoding and resize before embedding.
package stego

import (
	"image"

	"github.com/xob0t/GoVeil/pkg/codec"
)

// PrepareCarrier decodes raw carrier bytes for the hide path and ensures
// the result can hold payloadLen bytes, growing the image when the planner
// requires it and allowResize permits. The returned buffer always satisfies
// the capacity requirement; the engine never re-checks it.
func PrepareCarrier(raw []byte, payloadLen int, allowResize bool) (*image.NRGBA, error) {
	img, err := codec.Decode(raw)
	if err != nil {
		return nil, wrapError(KindCarrierDecode, "failed to load image", err)
	}

	b := img.Bounds()
	d := PlanCapacity(b.Dx(), b.Dy(), payloadLen, allowResize)
	switch d.Verdict {
	case Infeasible:
		return nil, capacityError(d.Capacity, d.Required)
	case RequiresResize:
		img = codec.Resize(img, d.TargetWidth, d.TargetHeight)
		emitCarrierResized(d.TargetWidth, d.TargetHeight)
	}
	return img, nil
}

// PrepareUnveilCarrier decodes raw carrier bytes for the unveil path.
//
// A decode failure here is reported as an unsupported format rather than a
// generic decode error: carriers produced by this system are always
// decodable, so undecodable input on this path is most likely JPEG XL,
// which is deliberately not implemented. Fail closed, no partial decode.
func PrepareUnveilCarrier(raw []byte) (*image.NRGBA, error) {
	img, err := codec.Decode(raw)
	if err != nil {
		return nil, wrapError(KindUnsupportedFormat,
			"unsupported carrier format: JPEG XL decoding is not implemented", err)
	}
	return img, nil
}
