package clouds

import (
	"errors"
	"fmt"
	"log"
	"time"

	"shaderclouds/misc"
)

type State int

const (
	StateIdle State = iota
	// mounted at zero size, initialization deferred until a real size arrives
	StateBlank
	StateReady
	StateRunning
	// no context, compile or link error, or a failed draw
	StateFailed
	StateUnmounted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateBlank:
		return "blank"
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateFailed:
		return "failed"
	case StateUnmounted:
		return "unmounted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var errAlreadyMounted = errors.New("renderer is already mounted")

// Renderer paints one Variant into a host Surface, one draw per frame.
//
// All methods must be called from the goroutine that drives the Pacer.
type Renderer struct {
	// Now defaults to time.Now.
	Now func() time.Time

	ErrLogger  *log.Logger
	WarnLogger *log.Logger

	surface Surface
	device  Device

	variant Variant
	speed   float64

	width, height int

	vertex   Resource
	fragment Resource
	program  Resource
	buffer   Resource

	pacer     Pacer
	frame     FrameID
	hasFrame  bool
	autoStart bool
	start     time.Time

	state State
	err   error

	frames int
}

func NewRenderer() *Renderer {
	return &Renderer{
		Now:        time.Now,
		ErrLogger:  misc.ErrLogger,
		WarnLogger: misc.WarnLogger,
	}
}

func (r *Renderer) State() State { return r.state }
func (r *Renderer) Variant() Variant { return r.variant }
func (r *Renderer) Speed() float64 { return r.speed }
func (r *Renderer) Size() (int, int) { return r.width, r.height }
func (r *Renderer) Frames() int { return r.frames }
func (r *Renderer) Err() error { return r.err }
func (r *Renderer) Surface() Surface { return r.surface }

// Mount binds the renderer to surface and builds its program.
//
// A zero width or height skips initialization entirely; the first Resize to
// a real size finishes it. Missing context and shader errors are logged, leave
// the surface blank and are returned. Unmount is safe in every case.
func (r *Renderer) Mount(surface Surface, width, height int, v Variant, speed float64) error {
	if r.state != StateIdle && r.state != StateUnmounted {
		return errAlreadyMounted
	}

	r.surface = surface
	r.variant = v
	r.speed = speed
	r.width, r.height = max(width, 0), max(height, 0)
	r.err = nil
	r.frames = 0
	r.autoStart = false

	if r.width == 0 || r.height == 0 {
		r.state = StateBlank
		return nil
	}

	return r.initialize()
}

func (r *Renderer) initialize() error {
	if r.surface == nil {
		r.WarnLogger.Printf("%s: %v", r.variant.Name, ErrNoContext)
		return r.fail(ErrNoContext)
	}

	device, err := r.surface.Context()
	if err != nil {
		if !errors.Is(err, ErrNoContext) {
			err = fmt.Errorf("%w: %w", ErrNoContext, err)
		}
		r.WarnLogger.Printf("%s: %v", r.variant.Name, err)
		return r.fail(err)
	}
	if device == nil {
		r.WarnLogger.Printf("%s: %v", r.variant.Name, ErrNoContext)
		return r.fail(ErrNoContext)
	}
	r.device = device

	r.surface.SetSize(r.width, r.height)
	r.device.SetViewport(r.width, r.height)

	if err := r.buildProgram(); err != nil {
		r.ErrLogger.Printf("shader program error (%s): %v", r.variant.Name, err)
		r.release()
		return r.fail(err)
	}

	r.state = StateReady
	return nil
}

func (r *Renderer) buildProgram() error {
	fragmentCode, err := FragmentSource(&r.variant)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCompile, err)
	}

	r.vertex, err = r.device.CompileShader(ShaderSource{
		Stage:   StageVertex,
		Code:    []byte(VertexSource),
		Variant: &r.variant,
	})
	if err != nil {
		return err
	}

	r.fragment, err = r.device.CompileShader(ShaderSource{
		Stage:   StageFragment,
		Code:    fragmentCode,
		Variant: &r.variant,
	})
	if err != nil {
		return err
	}

	r.program, err = r.device.LinkProgram(r.vertex, r.fragment)
	if err != nil {
		return err
	}

	r.buffer, err = r.device.NewVertexBuffer(QuadVertices)
	if err != nil {
		return err
	}

	return nil
}

func (r *Renderer) fail(err error) error {
	r.state = StateFailed
	r.err = err
	return err
}

// Start begins the frame loop on pacer. On a blank renderer the loop begins
// once a Resize completes initialization. Otherwise it is a no-op unless the
// renderer is ready.
func (r *Renderer) Start(pacer Pacer) {
	switch r.state {
	case StateBlank:
		r.pacer = pacer
		r.autoStart = true
	case StateReady:
		r.pacer = pacer
		r.begin()
	}
}

func (r *Renderer) begin() {
	r.state = StateRunning
	r.start = r.Now()
	r.frame = r.pacer.RequestFrame(r.tick)
	r.hasFrame = true
}

func (r *Renderer) tick(now time.Time) {
	r.hasFrame = false

	if r.state != StateRunning {
		return
	}

	elapsed := max(now.Sub(r.start).Seconds(), 0)

	if err := r.draw(elapsed); err != nil {
		r.ErrLogger.Printf("draw failed (%s): %v", r.variant.Name, err)
		r.fail(err)
		return
	}

	r.frame = r.pacer.RequestFrame(r.tick)
	r.hasFrame = true
}

func (r *Renderer) draw(elapsed float64) error {
	if r.width == 0 || r.height == 0 {
		return nil
	}

	err := r.device.Draw(r.program, r.buffer, Uniforms{
		Time:       elapsed,
		Speed:      r.speed,
		Resolution: Vec2{float64(r.width), float64(r.height)},
	})
	if err != nil {
		return err
	}

	r.frames++
	return nil
}

// RenderOnce draws a single frame at the given elapsed seconds outside of the
// frame loop.
func (r *Renderer) RenderOnce(elapsed float64) error {
	if r.state != StateReady && r.state != StateRunning {
		return fmt.Errorf("cannot render in state %s", r.state)
	}
	return r.draw(elapsed)
}

// SetSpeed takes effect on the next frame.
func (r *Renderer) SetSpeed(speed float64) {
	r.speed = speed
}

// Resize updates the surface pixel size and viewport before the next draw.
func (r *Renderer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == r.width && height == r.height {
		return
	}
	r.width, r.height = width, height

	switch r.state {
	case StateBlank:
		if width == 0 || height == 0 {
			return
		}
		if err := r.initialize(); err != nil {
			return
		}
		if r.autoStart {
			r.begin()
		}

	case StateReady, StateRunning:
		r.surface.SetSize(width, height)
		r.device.SetViewport(width, height)
	}
}

// Unmount cancels the pending frame and then releases every resource Mount
// acquired. It can be called any number of times.
func (r *Renderer) Unmount() {
	if r.hasFrame {
		r.pacer.CancelFrame(r.frame)
		r.hasFrame = false
	}

	r.release()

	if r.state != StateIdle {
		r.state = StateUnmounted
	}
	r.device = nil
	r.surface = nil
	r.pacer = nil
	r.autoStart = false
}

func (r *Renderer) release() {
	for _, res := range []*Resource{&r.program, &r.vertex, &r.fragment, &r.buffer} {
		if *res != nil {
			(*res).Delete()
			*res = nil
		}
	}
}
