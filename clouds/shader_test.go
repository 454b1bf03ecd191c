package clouds

import (
	"go/ast"
	"go/parser"
	"go/token"
	"slices"
	"strings"
	"testing"
)

func TestFragmentSourceBakesConstants(t *testing.T) {
	cases := []struct {
		v    Variant
		want []string
	}{
		{JFK, []string{
			"i < 8;", "a := 0.7", "vec2(200.0)", "*2.5 + shift", "a *= 0.5",
			"st.x += t * 2.0", "st.y += t * 1.5",
			"vec3(0.6, 0.3, 0.7)", "0.9*f*f",
		}},
		{SFO, []string{
			"i < 7;", "cos(0.6)", "mat2(cos(angle), -sin(angle), sin(angle), cos(angle))",
			"center := vec2(0.5, 0.5)", "sin(Time*0.3) * 0.1",
		}},
		{LAX, []string{
			"i < 6;", "vec2(150.0)", "st.y += t * 0.8",
			"sin(st.y*2.0+Time*0.5) * 0.1", "vec3(0.0, 0.184, 0.655)", "0.226*Time",
		}},
	}

	for _, tc := range cases {
		src, err := FragmentSource(&tc.v)
		if err != nil {
			t.Fatalf("%s: %v", tc.v.Name, err)
		}
		text := string(src)
		for _, w := range tc.want {
			if !strings.Contains(text, w) {
				t.Fatalf("%s: fragment source lacks %q\n%s", tc.v.Name, w, text)
			}
		}
		if strings.Contains(text, "{{") || strings.Contains(text, "<no value>") {
			t.Fatalf("%s: unexpanded template in source", tc.v.Name)
		}
	}
}

func TestFragmentSourceOnlyOneMotionBlock(t *testing.T) {
	src, err := FragmentSource(&JFK)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(src), "angle") {
		t.Fatal("diagonal variant contains the rotational block")
	}
}

func TestFragmentSourceRejectsInvalid(t *testing.T) {
	v := SFO
	v.Octaves = MaxOctaves + 1
	if _, err := FragmentSource(&v); err == nil {
		t.Fatal("expected error for too many octaves")
	}
}

func TestFormatFloat(t *testing.T) {
	cases := map[float64]string{
		200:   "200.0",
		0.5:   "0.5",
		-1.25: "-1.25",
		0:     "0.0",
		0.226: "0.226",
	}
	for in, want := range cases {
		if got := formatFloat(in); got != want {
			t.Fatalf("formatFloat(%v) = %q, want %q", in, got, want)
		}
	}
}

// Kage is Go syntax, so every generated program must at least parse as Go and
// declare the entry point and uniforms the device binds.
func TestFragmentSourceParses(t *testing.T) {
	negative := LAX
	negative.Name = "NEG"
	negative.Shift = -100
	negative.Motion.WobbleRate = -0.5
	negative.Warp.QDrift = -0.1
	negative.Warp.RYOffset = Vec2{-8.3, -2.8}

	for _, v := range append(Presets(), negative) {
		src, err := FragmentSource(&v)
		if err != nil {
			t.Fatalf("%s: %v", v.Name, err)
		}

		file, err := parser.ParseFile(token.NewFileSet(), v.Name+".kage", src, parser.ParseComments)
		if err != nil {
			t.Fatalf("%s: %v\n%s", v.Name, err, src)
		}
		if !strings.HasPrefix(string(src), "//kage:unit pixels") {
			t.Fatalf("%s: missing unit directive", v.Name)
		}

		var funcs, vars []string
		for _, decl := range file.Decls {
			switch d := decl.(type) {
			case *ast.FuncDecl:
				funcs = append(funcs, d.Name.Name)
			case *ast.GenDecl:
				for _, s := range d.Specs {
					if vs, ok := s.(*ast.ValueSpec); ok {
						for _, name := range vs.Names {
							vars = append(vars, name.Name)
						}
					}
				}
			}
		}

		if !slices.Contains(funcs, "Fragment") {
			t.Fatalf("%s: no Fragment entry point, found %v", v.Name, funcs)
		}
		for _, u := range []string{"Time", "Speed", "Resolution"} {
			if !slices.Contains(vars, u) {
				t.Fatalf("%s: uniform %s not declared, found %v", v.Name, u, vars)
			}
		}
	}
}
