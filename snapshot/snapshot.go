// Package snapshot renders skeleton poses into stick figure images for
// debugging the animation layers. Snapshots are developer-facing: a frame of
// secondary motion that looks wrong in the viewer can be captured and
// compared offline without the host engine.
package snapshot

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"

	"github.com/animus-rig/animus/motion"
	"github.com/animus-rig/animus/rig"
	"github.com/animus-rig/animus/worker"
)

const (
	defaultSize        = 512
	defaultSupersample = 2

	// fillRatio is the fraction of the image edge the skeleton extent is
	// scaled to, leaving a margin around the figure.
	fillRatio = float32(0.9)
)

// Options control how a pose is rendered.
type Options struct {
	// Size is the output image edge in pixels. Zero means 512.
	Size int
	// Supersample renders at this multiple of Size before downscaling.
	// Zero means 2; 1 disables supersampling.
	Supersample int
}

func (o Options) normalized() Options {
	if o.Size <= 0 {
		o.Size = defaultSize
	}
	if o.Supersample <= 0 {
		o.Supersample = defaultSupersample
	}
	return o
}

var (
	segmentColor = color.NRGBA{R: 210, G: 210, B: 210, A: 255}
	jointColor   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	// Spring-classified joints are tinted by group so a miscategorized
	// bone chain is visible at a glance.
	groupColors = map[string]color.NRGBA{
		rig.GroupHair:  {R: 255, G: 170, B: 40, A: 255},
		rig.GroupCloth: {R: 80, G: 160, B: 255, A: 255},
		rig.GroupUpper: {R: 90, G: 220, B: 120, A: 255},
	}
)

// Snap renders the current pose of a skeleton into a square image, drawing
// each bone as a segment to its parent with joints on top. The figure is
// projected orthographically onto the world XY plane, fitted into the image
// with a margin, and supersampled before downscaling.
func Snap(s *rig.Skeleton, opts Options) *image.NRGBA {
	opts = opts.normalized()
	img := Render(s, opts.Size*opts.Supersample)
	if opts.Supersample > 1 {
		img = Downsample(img, opts.Size)
	}
	return img
}

// Render draws the pose at exactly size pixels with no post-processing.
func Render(s *rig.Skeleton, size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	if s == nil || s.Len() == 0 {
		return img
	}

	bones := s.Bones()
	worlds := s.WorldPositions()

	bounds := rig.Bounds(s)
	min, max := bounds.Min(), bounds.Max()
	extent := math32.Max(max.X()-min.X(), max.Y()-min.Y())
	scale := float32(size)
	if extent > 1e-6 {
		scale = float32(size) * fillRatio / extent
	}
	center := min.Add(max).Mul(0.5)
	half := float32(size) / 2

	// World X grows right and world Y grows up; image rows grow down.
	project := func(i int) (int, int) {
		w := worlds[i]
		x := half + (w.X()-center.X())*scale
		y := half - (w.Y()-center.Y())*scale
		return int(motion.Round32(x, 0)), int(motion.Round32(y, 0))
	}

	index := make(map[*rig.Bone]int, len(bones))
	for i, b := range bones {
		index[b] = i
	}

	for i, b := range bones {
		if b.Parent == nil {
			continue
		}
		parent, ok := index[b.Parent]
		if !ok {
			continue
		}
		x0, y0 := project(parent)
		x1, y1 := project(i)
		drawSegment(img, x0, y0, x1, y1, segmentColor)
	}

	groups := map[*rig.Bone]string{}
	for _, target := range rig.SpringTargets(s) {
		groups[target.Bone] = target.Group
	}
	for i, b := range bones {
		c := jointColor
		if tint, ok := groupColors[groups[b]]; ok {
			c = tint
		}
		x, y := project(i)
		drawJoint(img, x, y, c)
	}
	return img
}

// drawSegment rasterizes a line between two joints with integer Bresenham
// stepping.
func drawSegment(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	dx, sx := abs(x1-x0), 1
	if x0 > x1 {
		sx = -1
	}
	dy, sy := -abs(y1-y0), 1
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	for {
		setPixel(img, x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawJoint marks a joint as a filled square around its center.
func drawJoint(img *image.NRGBA, x, y int, c color.NRGBA) {
	for oy := -1; oy <= 1; oy++ {
		for ox := -1; ox <= 1; ox++ {
			setPixel(img, x+ox, y+oy, c)
		}
	}
}

func setPixel(img *image.NRGBA, x, y int, c color.NRGBA) {
	if !(image.Point{X: x, Y: y}).In(img.Rect) {
		return
	}
	img.SetNRGBA(x, y, c)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// SaveAsync samples the pose immediately and hands downscaling and encoding
// to the shared worker pool, so a frame loop can snapshot without stalling.
// onDone receives the write result on the worker goroutine; nil discards it.
func SaveAsync(path string, s *rig.Skeleton, opts Options, onDone func(error)) {
	opts = opts.normalized()
	img := Render(s, opts.Size*opts.Supersample)

	worker.Submit(func() {
		out := img
		if opts.Supersample > 1 {
			out = Downsample(out, opts.Size)
		}
		err := WriteWebP(path, out)
		if onDone != nil {
			onDone(err)
		}
	})
}

// Save renders the pose and writes it to path as a webp image.
func Save(path string, s *rig.Skeleton, opts Options) error {
	return WriteWebP(path, Snap(s, opts))
}
