package main

import (
	"errors"
	"fmt"

	eb "github.com/hajimehoshi/ebiten/v2"

	"shaderclouds/clouds"
)

const (
	BackendKage = "kage"
	BackendSoft = "soft"
)

// Canvas is the Surface the App hands to a cloud renderer. It is backed by an
// ebiten image, drawn with a Kage shader or uploaded from the CPU rasterizer.
type Canvas struct {
	Backend string

	// Unavailable makes Context fail. Used by the -backend none mode.
	Unavailable bool

	image *eb.Image

	width, height int

	kage *KageDevice

	soft        *clouds.SoftSurface
	softDevice  *clouds.SoftDevice
	softUploads int
}

func NewCanvas(backend string) (*Canvas, error) {
	c := &Canvas{Backend: backend}

	switch backend {
	case BackendKage:
	case BackendSoft:
		c.soft = clouds.NewSoftSurface()
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}

	return c, nil
}

func (c *Canvas) Context() (clouds.Device, error) {
	if c.Unavailable {
		return nil, clouds.ErrNoContext
	}

	switch c.Backend {
	case BackendSoft:
		device, err := c.soft.Context()
		if err != nil {
			return nil, err
		}
		c.softDevice, _ = device.(*clouds.SoftDevice)
		return device, nil
	default:
		if c.kage == nil {
			c.kage = &KageDevice{canvas: c}
		}
		return c.kage, nil
	}
}

func (c *Canvas) SetSize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == c.width && height == c.height {
		return
	}
	c.width, c.height = width, height

	if c.image != nil {
		c.image.Deallocate()
		c.image = nil
	}
	if width > 0 && height > 0 {
		c.image = eb.NewImage(width, height)
	}

	if c.soft != nil {
		c.soft.SetSize(width, height)
		c.softUploads = -1
	}
}

func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Image returns the rendered pixels, or nil before the first SetSize.
func (c *Canvas) Image() *eb.Image {
	if c.image == nil {
		return nil
	}

	if c.softDevice != nil && c.softDevice.Draws() != c.softUploads {
		c.image.WritePixels(c.soft.Image().Pix)
		c.softUploads = c.softDevice.Draws()
	}

	return c.image
}

// Dispose frees the backing image. The canvas can be sized again afterwards.
func (c *Canvas) Dispose() {
	if c.image != nil {
		c.image.Deallocate()
		c.image = nil
	}
	c.width, c.height = 0, 0
}

// =================================
// KageDevice
// =================================

// KageDevice runs the cloud program on the GPU through ebiten. Kage has no
// vertex stage, so vertex shaders are accepted as-is and the clip space
// buffer is mapped to pixels through the viewport.
type KageDevice struct {
	canvas *Canvas

	viewportW, viewportH int

	vertices []eb.Vertex
}

type kageShader struct {
	stage   clouds.Stage
	shader  *eb.Shader
	deleted bool
}

func (s *kageShader) Delete() {
	if s.deleted {
		return
	}
	s.deleted = true
	if s.shader != nil {
		s.shader.Deallocate()
	}
}

type kageProgram struct {
	shader  *eb.Shader
	deleted bool
}

// the program borrows the fragment shader, which is freed on its own
func (p *kageProgram) Delete() {
	p.deleted = true
}

type kageBuffer struct {
	vertices []float32
	indices  []uint16
	deleted  bool
}

func (b *kageBuffer) Delete() {
	b.deleted = true
}

var errDeleted = errors.New("resource was deleted")

func (d *KageDevice) CompileShader(src clouds.ShaderSource) (clouds.Resource, error) {
	switch src.Stage {
	case clouds.StageVertex:
		if len(src.Code) == 0 {
			return nil, fmt.Errorf("%w: empty vertex source", clouds.ErrCompile)
		}
		return &kageShader{stage: clouds.StageVertex}, nil

	case clouds.StageFragment:
		shader, err := eb.NewShader(src.Code)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", clouds.ErrCompile, err)
		}
		return &kageShader{stage: clouds.StageFragment, shader: shader}, nil
	}

	return nil, fmt.Errorf("%w: unknown stage %v", clouds.ErrCompile, src.Stage)
}

func (d *KageDevice) LinkProgram(vertex, fragment clouds.Resource) (clouds.Resource, error) {
	vs, ok := vertex.(*kageShader)
	if !ok || vs.deleted || vs.stage != clouds.StageVertex {
		return nil, fmt.Errorf("%w: no vertex shader", clouds.ErrLink)
	}
	fs, ok := fragment.(*kageShader)
	if !ok || fs.deleted || fs.stage != clouds.StageFragment {
		return nil, fmt.Errorf("%w: no fragment shader", clouds.ErrLink)
	}

	return &kageProgram{shader: fs.shader}, nil
}

func (d *KageDevice) NewVertexBuffer(vertices []float32) (clouds.Resource, error) {
	if len(vertices)%6 != 0 {
		return nil, fmt.Errorf("vertex buffer of %d floats is not a list of triangles", len(vertices))
	}

	b := &kageBuffer{vertices: append([]float32(nil), vertices...)}
	for i := range len(vertices) / 2 {
		b.indices = append(b.indices, uint16(i))
	}

	return b, nil
}

func (d *KageDevice) SetViewport(width, height int) {
	d.viewportW, d.viewportH = max(width, 0), max(height, 0)
}

func (d *KageDevice) Draw(program, buffer clouds.Resource, uniforms clouds.Uniforms) error {
	prog, ok := program.(*kageProgram)
	if !ok || prog.deleted {
		return fmt.Errorf("draw with program: %w", errDeleted)
	}
	buf, ok := buffer.(*kageBuffer)
	if !ok || buf.deleted {
		return fmt.Errorf("draw with vertex buffer: %w", errDeleted)
	}

	dst := d.canvas.image
	if dst == nil || d.viewportW == 0 || d.viewportH == 0 {
		return nil
	}

	vw, vh := f64(d.viewportW), f64(d.viewportH)

	d.vertices = d.vertices[:0]
	for i := 0; i+1 < len(buf.vertices); i += 2 {
		// clip space y points up, image space y points down
		x := (f64(buf.vertices[i]) + 1) * 0.5 * vw
		y := (1 - f64(buf.vertices[i+1])) * 0.5 * vh
		d.vertices = append(d.vertices, eb.Vertex{
			DstX: f32(x), DstY: f32(y),
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		})
	}

	DrawTrianglesShader(dst, d.vertices, buf.indices, prog.shader, &DrawTrianglesShaderOptions{
		Uniforms: map[string]any{
			"Time":       f32(uniforms.Time),
			"Speed":      f32(uniforms.Speed),
			"Resolution": []float32{f32(uniforms.Resolution[0]), f32(uniforms.Resolution[1])},
		},
	})

	return nil
}
