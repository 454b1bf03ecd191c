package clouds

import (
	"bytes"
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"text/template"
)

type Stage int

const (
	StageVertex Stage = iota
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// ShaderSource is one stage of a program. Variant is carried alongside the
// text so devices that cannot execute shader text can still shade.
type ShaderSource struct {
	Stage   Stage
	Code    []byte
	Variant *Variant
}

// VertexSource passes the clip space quad straight through.
const VertexSource = `attribute vec2 a_position;
void main() {
	gl_Position = vec4(a_position, 0.0, 1.0);
}
`

// QuadVertices is two triangles covering the whole viewport in clip space.
var QuadVertices = []float32{
	-1, -1, 1, -1, -1, 1,
	-1, 1, 1, -1, 1, 1,
}

//go:embed cloud.kage
var fragmentTemplateText string

var fragmentTemplate = template.Must(template.New("cloud.kage").Funcs(template.FuncMap{
	"f":   formatFloat,
	"rgb": formatRGB,
}).Parse(fragmentTemplateText))

func formatFloat(x float64) string {
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func formatRGB(c RGB) string {
	return fmt.Sprintf("vec3(%s, %s, %s)", formatFloat(c[0]), formatFloat(c[1]), formatFloat(c[2]))
}

// FragmentSource renders the Kage fragment program for v with its constants
// baked in.
func FragmentSource(v *Variant) ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := fragmentTemplate.Execute(&buf, v); err != nil {
		return nil, fmt.Errorf("generating fragment source for %s: %w", v.Name, err)
	}

	return buf.Bytes(), nil
}
