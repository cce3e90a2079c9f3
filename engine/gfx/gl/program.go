package glbackend

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hubastard/groveray/engine/native"
)

// Attribute locations bound before linking, so user programs share the batch layout.
const (
	attrPosition = 0
	attrColor    = 1
	attrTexCoord = 2
)

// Default stages. User shaders use the same attribute and uniform names.
const DefaultVertexShader = `#version 330 core
in vec3 vertexPosition;
in vec4 vertexColor;
in vec2 vertexTexCoord;
uniform mat4 mvp;
out vec4 fragColor;
out vec2 fragTexCoord;
void main() {
    fragColor = vertexColor;
    fragTexCoord = vertexTexCoord;
    gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`

const DefaultFragmentShader = `#version 330 core
in vec4 fragColor;
in vec2 fragTexCoord;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
out vec4 finalColor;
void main() {
    finalColor = texture(texture0, fragTexCoord) * fragColor * colDiffuse;
}
`

// Uniform locations cached per program in native.Shader.Locs.
const (
	LocMVP = iota
	LocTexture0
	LocColDiffuse
	locCount
)

var builtinUniforms = [locCount]string{"mvp", "texture0", "colDiffuse"}

// NewProgram compiles and links a program. Empty sources select the default stage.
func NewProgram(vsSrc, fsSrc string) (native.Shader, error) {
	if vsSrc == "" {
		vsSrc = DefaultVertexShader
	}
	if fsSrc == "" {
		fsSrc = DefaultFragmentShader
	}
	prog, err := makeProgram(vsSrc, fsSrc)
	if err != nil {
		return native.Shader{}, err
	}
	locs := make([]int32, locCount)
	for i, name := range builtinUniforms {
		locs[i] = UniformLocation(prog, name)
	}
	return native.Shader{ID: prog, Locs: locs}, nil
}

func UniformLocation(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
}

// SetUniform uploads value to loc of the bound program.
func SetUniform(loc int32, value []float32, uniform native.ShaderUniformType) error {
	if loc < 0 || len(value) == 0 {
		return nil
	}
	size := map[native.ShaderUniformType]int{
		native.UniformFloat: 1, native.UniformVec2: 2, native.UniformVec3: 3,
		native.UniformVec4: 4, native.UniformInt: 1,
	}[uniform]
	if size == 0 || len(value)%size != 0 {
		return fmt.Errorf("uniform %d: %d values do not fit type %d", loc, len(value), uniform)
	}
	n := int32(len(value) / size)
	switch uniform {
	case native.UniformFloat:
		gl.Uniform1fv(loc, n, &value[0])
	case native.UniformVec2:
		gl.Uniform2fv(loc, n, &value[0])
	case native.UniformVec3:
		gl.Uniform3fv(loc, n, &value[0])
	case native.UniformVec4:
		gl.Uniform4fv(loc, n, &value[0])
	case native.UniformInt:
		gl.Uniform1i(loc, int32(value[0]))
	}
	return nil
}

func DeleteProgram(prog uint32) {
	if prog != 0 {
		gl.DeleteProgram(prog)
	}
}

// --- Shader utilities ---

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", strings.TrimRight(log, "\x00"))
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.BindAttribLocation(prog, attrPosition, gl.Str("vertexPosition\x00"))
	gl.BindAttribLocation(prog, attrColor, gl.Str("vertexColor\x00"))
	gl.BindAttribLocation(prog, attrTexCoord, gl.Str("vertexTexCoord\x00"))
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", strings.TrimRight(log, "\x00"))
	}
	return prog, nil
}
