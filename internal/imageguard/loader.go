package imageguard

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/url"
	"os"
	"strings"

	_ "golang.org/x/image/webp"
)

// ErrRemoteSource is returned for http(s) sources; the app never fetches them.
var ErrRemoteSource = errors.New("imageguard: remote source not fetched")

// Loader decodes the image behind a source.
type Loader interface {
	Load(src string) (image.Image, error)
}

// FileLoader decodes local files (PNG, JPEG, GIF, WebP).
// Sources may be plain paths or file:// URLs.
type FileLoader struct{}

// Load implements Loader.
func (FileLoader) Load(src string) (image.Image, error) {
	p, err := localPath(src)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", p, err)
	}
	return img, nil
}

func localPath(src string) (string, error) {
	switch {
	case src == "":
		return "", errors.New("imageguard: empty source")
	case IsPlaceholder(src):
		return "", errors.New("imageguard: placeholder has no file")
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		return "", fmt.Errorf("%w: %s", ErrRemoteSource, src)
	case strings.HasPrefix(src, "file://"):
		u, err := url.Parse(src)
		if err != nil {
			return "", fmt.Errorf("parsing file url: %w", err)
		}
		return u.Path, nil
	}
	return src, nil
}
