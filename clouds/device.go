package clouds

import "errors"

var (
	ErrNoContext = errors.New("graphics context unavailable")
	ErrCompile   = errors.New("shader compile failed")
	ErrLink      = errors.New("program link failed")
)

// Resource is a graphics object owned by a Device.
type Resource interface {
	Delete()
}

// Device is the graphics context acquired from a Surface.
//
// Errors from CompileShader and LinkProgram should wrap ErrCompile and
// ErrLink and carry the driver's diagnostic.
type Device interface {
	CompileShader(src ShaderSource) (Resource, error)
	LinkProgram(vertex, fragment Resource) (Resource, error)
	NewVertexBuffer(vertices []float32) (Resource, error)
	SetViewport(width, height int)
	Draw(program, buffer Resource, uniforms Uniforms) error
}

// Surface is a pixel buffer owned by the host. The renderer only resizes it
// and draws into it.
type Surface interface {
	Context() (Device, error)
	SetSize(width, height int)
	Size() (width, height int)
}
