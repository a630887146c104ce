// Package media loads the photos and videos shown by the celebration.
package media

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// MaxItems caps how many files a single selection may contain.
const MaxItems = 30

var (
	ErrUnsupported = errors.New("unsupported media type")
	ErrNoPoster    = errors.New("video has no poster image")
)

// Kind distinguishes still or animated pictures from video clips.
type Kind int

const (
	Image Kind = iota
	Video
)

func (k Kind) String() string {
	if k == Video {
		return "video"
	}
	return "image"
}

var (
	imageExts = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true, ".webp": true}
	videoExts = map[string]bool{".mp4": true, ".webm": true, ".mov": true, ".mkv": true, ".avi": true, ".m4v": true}
)

// ImagePatterns and VideoPatterns are the file dialog filters for Classify.
var (
	ImagePatterns = patterns(imageExts)
	VideoPatterns = patterns(videoExts)
)

// Item is one selected file. ID is its position in the selection and is not
// stable across selections.
type Item struct {
	ID    int
	Path  string
	Label string
	Kind  Kind

	// Frames holds one frame for stills and every frame for animated GIFs.
	// For videos it holds the poster image, when one is found.
	Frames []image.Image
	Delays []time.Duration

	// Err is set when the file could not be loaded; the item is then drawn as
	// a placeholder.
	Err error
}

// Missing reports whether the item failed to load. A video without a poster
// is not missing; it is drawn as a labelled tile.
func (it Item) Missing() bool {
	return it.Err != nil || (it.Kind == Image && len(it.Frames) == 0)
}

// FrameAt returns the frame to show after elapsed time, looping animations.
func (it Item) FrameAt(elapsed time.Duration) image.Image {
	if len(it.Frames) == 0 {
		return nil
	}
	if len(it.Frames) == 1 || len(it.Delays) != len(it.Frames) {
		return it.Frames[0]
	}
	var total time.Duration
	for _, d := range it.Delays {
		total += d
	}
	if total <= 0 {
		return it.Frames[0]
	}
	t := elapsed % total
	if t < 0 {
		t += total
	}
	for i, d := range it.Delays {
		if t < d {
			return it.Frames[i]
		}
		t -= d
	}
	return it.Frames[len(it.Frames)-1]
}

// Classify returns the kind of a file from its extension.
func Classify(path string) (Kind, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case imageExts[ext]:
		return Image, nil
	case videoExts[ext]:
		return Video, nil
	default:
		return Image, fmt.Errorf("%s: %w", filepath.Base(path), ErrUnsupported)
	}
}

// LoadAll loads at most limit of the given files, in order. A file that fails
// to load is kept with Err set so it can be shown as missing.
func LoadAll(paths []string, limit int) []Item {
	if limit <= 0 || limit > MaxItems {
		limit = MaxItems
	}
	if len(paths) > limit {
		log.Warn().Int("selected", len(paths)).Int("max", limit).Msg("too many media files, keeping the first ones")
		paths = paths[:limit]
	}

	items := make([]Item, 0, len(paths))
	for i, p := range paths {
		it := Load(p)
		it.ID = i
		if it.Err != nil {
			log.Warn().Err(it.Err).Str("path", p).Msg("media item will show as missing")
		}
		items = append(items, it)
	}
	return items
}

// Load reads a single file.
func Load(path string) Item {
	it := Item{Path: path, Label: filepath.Base(path)}
	kind, err := Classify(path)
	if err != nil {
		it.Err = err
		return it
	}
	it.Kind = kind

	switch kind {
	case Video:
		frame, err := loadPoster(path)
		if err != nil && !errors.Is(err, ErrNoPoster) {
			it.Err = err
			return it
		}
		if frame != nil {
			it.Frames = []image.Image{frame}
		}
	default:
		it.Frames, it.Delays, it.Err = loadImage(path)
	}
	return it
}

func loadImage(path string) ([]image.Image, []time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open media: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".gif") {
		g, err := gif.DecodeAll(f)
		if err != nil {
			return nil, nil, fmt.Errorf("decode gif %s: %w", filepath.Base(path), err)
		}
		return gifFrames(g)
	}

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return []image.Image{img}, nil, nil
}

// gifFrames composes GIF frames onto a full canvas so each frame can be drawn
// on its own.
func gifFrames(g *gif.GIF) ([]image.Image, []time.Duration, error) {
	if len(g.Image) == 0 {
		return nil, nil, fmt.Errorf("decode gif: %w", ErrUnsupported)
	}
	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		bounds = g.Image[0].Bounds()
	}
	canvas := image.NewRGBA(bounds)

	frames := make([]image.Image, 0, len(g.Image))
	delays := make([]time.Duration, 0, len(g.Image))
	for i, frame := range g.Image {
		drawOver(canvas, frame)
		snap := image.NewRGBA(bounds)
		copy(snap.Pix, canvas.Pix)
		frames = append(frames, snap)

		delay := 100 * time.Millisecond
		if i < len(g.Delay) && g.Delay[i] > 0 {
			delay = time.Duration(g.Delay[i]) * 10 * time.Millisecond
		}
		delays = append(delays, delay)

		if i < len(g.Disposal) && g.Disposal[i] == gif.DisposalBackground {
			clearRect(canvas, frame.Bounds())
		}
	}
	return frames, delays, nil
}

func drawOver(dst *image.RGBA, src *image.Paletted) {
	r := src.Bounds().Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := src.At(x, y)
			if _, _, _, a := c.RGBA(); a == 0 {
				continue
			}
			dst.Set(x, y, c)
		}
	}
}

func clearRect(dst *image.RGBA, r image.Rectangle) {
	r = r.Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.Set(x, y, image.Transparent)
		}
	}
}

// loadPoster looks for an image next to the video with the same base name.
func loadPoster(videoPath string) (image.Image, error) {
	base := strings.TrimSuffix(videoPath, filepath.Ext(videoPath))
	for _, ext := range []string{".jpg", ".jpeg", ".png", ".webp"} {
		p := base + ext
		if _, err := os.Stat(p); err != nil {
			continue
		}
		frames, _, err := loadImage(p)
		if err != nil {
			return nil, fmt.Errorf("poster: %w", err)
		}
		return frames[0], nil
	}
	return nil, ErrNoPoster
}

func patterns(exts map[string]bool) []string {
	out := make([]string, 0, len(exts))
	for ext := range exts {
		out = append(out, "*"+ext)
	}
	slices.Sort(out)
	return out
}
