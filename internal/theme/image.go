package theme

import (
	"fmt"
	"image"
	"io/fs"

	"github.com/disintegration/imaging"
)

// loads an image through the backing store of p
func loadImage(bundle fs.FS, p Path, id string) (image.Image, string, error) {
	file := p.ResourcePath(id)

	r, err := p.Open(bundle, file)
	if err != nil {
		return nil, file, fmt.Errorf("%w: open image %q: %v", ErrParseFailure, file, err)
	}
	defer r.Close()

	img, err := imaging.Decode(r)
	if err != nil {
		return nil, file, fmt.Errorf("%w: decode image %q: %v", ErrParseFailure, file, err)
	}

	return img, file, nil
}
