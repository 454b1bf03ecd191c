package clouds

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// SoftSurface is a CPU backed Surface. It is used for headless export and as
// the fallback when the GPU backend is not wanted.
type SoftSurface struct {
	// Workers limits how many row bands are shaded at once. Zero means
	// GOMAXPROCS.
	Workers int

	// Unavailable makes Context fail, as a surface without graphics support
	// would.
	Unavailable bool

	img *image.RGBA

	device *SoftDevice
}

func NewSoftSurface() *SoftSurface {
	return &SoftSurface{img: image.NewRGBA(image.Rectangle{})}
}

func (s *SoftSurface) Context() (Device, error) {
	if s.Unavailable {
		return nil, ErrNoContext
	}
	if s.device == nil {
		s.device = &SoftDevice{surface: s}
	}
	return s.device, nil
}

func (s *SoftSurface) SetSize(width, height int) {
	if w, h := s.Size(); w == width && h == height {
		return
	}
	s.img = image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
}

func (s *SoftSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the pixel buffer. It is replaced on every size change.
func (s *SoftSurface) Image() *image.RGBA {
	return s.img
}

// SoftDevice rasterizes the vertex buffer's triangles on the CPU and shades
// covered pixels with Shade.
type SoftDevice struct {
	surface *SoftSurface

	viewportW, viewportH int

	live        int
	doubleFrees int
	draws       int
}

type softResource struct {
	device  *SoftDevice
	deleted bool
}

func (r *softResource) Delete() {
	if r.deleted {
		r.device.doubleFrees++
		return
	}
	r.deleted = true
	r.device.live--
}

type softShader struct {
	softResource
	stage   Stage
	variant Variant
}

type softProgram struct {
	softResource
	variant Variant
}

type softBuffer struct {
	softResource
	vertices []float32
}

func (d *SoftDevice) track() softResource {
	d.live++
	return softResource{device: d}
}

// Live reports how many resources have been created and not deleted.
func (d *SoftDevice) Live() int { return d.live }

// DoubleFrees reports how many Delete calls hit an already deleted resource.
func (d *SoftDevice) DoubleFrees() int { return d.doubleFrees }

func (d *SoftDevice) Draws() int { return d.draws }

func (d *SoftDevice) Viewport() (int, int) { return d.viewportW, d.viewportH }

func (d *SoftDevice) CompileShader(src ShaderSource) (Resource, error) {
	if len(src.Code) == 0 {
		return nil, fmt.Errorf("%w: %s stage: empty source", ErrCompile, src.Stage)
	}

	shader := &softShader{stage: src.Stage}

	switch src.Stage {
	case StageVertex:
	case StageFragment:
		if src.Variant == nil {
			return nil, fmt.Errorf("%w: fragment stage has no variant", ErrCompile)
		}
		if err := src.Variant.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCompile, err)
		}
		shader.variant = *src.Variant
	default:
		return nil, fmt.Errorf("%w: unknown stage %s", ErrCompile, src.Stage)
	}

	shader.softResource = d.track()
	return shader, nil
}

func (d *SoftDevice) LinkProgram(vertex, fragment Resource) (Resource, error) {
	vs, ok := vertex.(*softShader)
	if !ok || vs.deleted || vs.stage != StageVertex {
		return nil, fmt.Errorf("%w: invalid vertex shader", ErrLink)
	}
	fs, ok := fragment.(*softShader)
	if !ok || fs.deleted || fs.stage != StageFragment {
		return nil, fmt.Errorf("%w: invalid fragment shader", ErrLink)
	}

	return &softProgram{softResource: d.track(), variant: fs.variant}, nil
}

func (d *SoftDevice) NewVertexBuffer(vertices []float32) (Resource, error) {
	if len(vertices) == 0 || len(vertices)%6 != 0 {
		return nil, fmt.Errorf("vertex buffer needs whole 2D triangles, got %d floats", len(vertices))
	}
	return &softBuffer{
		softResource: d.track(),
		vertices:     append([]float32(nil), vertices...),
	}, nil
}

func (d *SoftDevice) SetViewport(width, height int) {
	d.viewportW, d.viewportH = max(width, 0), max(height, 0)
}

func (d *SoftDevice) Draw(program, buffer Resource, uniforms Uniforms) error {
	prog, ok := program.(*softProgram)
	if !ok || prog.deleted {
		return fmt.Errorf("draw with invalid program")
	}
	buf, ok := buffer.(*softBuffer)
	if !ok || buf.deleted {
		return fmt.Errorf("draw with invalid vertex buffer")
	}

	vw, vh := d.viewportW, d.viewportH
	img := d.surface.img
	bounds := img.Bounds()

	rows := min(vh, bounds.Dy())
	cols := min(vw, bounds.Dx())
	if rows <= 0 || cols <= 0 {
		return nil
	}

	tris := triangles(buf.vertices)
	variant := &prog.variant

	workers := d.surface.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	bandH := max((rows+workers-1)/workers, 1)

	var group errgroup.Group
	group.SetLimit(workers)

	for y0 := 0; y0 < rows; y0 += bandH {
		y1 := min(y0+bandH, rows)
		group.Go(func() error {
			for y := y0; y < y1; y++ {
				// window coordinates grow upward
				fy := float64(vh) - (float64(y) + 0.5)
				for x := 0; x < cols; x++ {
					fx := float64(x) + 0.5

					ndc := Vec2{fx/float64(vw)*2 - 1, fy/float64(vh)*2 - 1}
					if !covered(tris, ndc) {
						continue
					}

					c := Shade(variant, Vec2{fx, fy}, uniforms)
					img.SetRGBA(bounds.Min.X+x, bounds.Min.Y+y, toRGBA(c))
				}
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	d.draws++
	return nil
}

type triangle [3]Vec2

func triangles(vertices []float32) []triangle {
	tris := make([]triangle, 0, len(vertices)/6)
	for i := 0; i+6 <= len(vertices); i += 6 {
		var t triangle
		for k := 0; k < 3; k++ {
			t[k] = Vec2{float64(vertices[i+k*2]), float64(vertices[i+k*2+1])}
		}
		if edge(t[0], t[1], t[2]) == 0 {
			continue
		}
		tris = append(tris, t)
	}
	return tris
}

func edge(a, b, p Vec2) float64 {
	return (b[0]-a[0])*(p[1]-a[1]) - (b[1]-a[1])*(p[0]-a[0])
}

func covered(tris []triangle, p Vec2) bool {
	for _, t := range tris {
		e0 := edge(t[0], t[1], p)
		e1 := edge(t[1], t[2], p)
		e2 := edge(t[2], t[0], p)
		if (e0 >= 0 && e1 >= 0 && e2 >= 0) || (e0 <= 0 && e1 <= 0 && e2 <= 0) {
			return true
		}
	}
	return false
}

func toRGBA(c RGB) color.RGBA {
	to8 := func(f float64) uint8 {
		if math.IsNaN(f) {
			return 0
		}
		return uint8(math.Round(clamp01(f) * 255))
	}
	return color.RGBA{to8(c[0]), to8(c[1]), to8(c[2]), 255}
}
