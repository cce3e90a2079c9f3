// Package native describes the flat function table groveray drives and the
// plain data structures it exchanges with it. Nothing in this package holds
// state; the Library implementation owns every allocation.
package native

type Color struct{ R, G, B, A uint8 }

type Vector2 struct{ X, Y float32 }

type Vector3 struct{ X, Y, Z float32 }

type Rectangle struct{ X, Y, Width, Height float32 }

type Matrix [16]float32

type Camera2D struct {
	Offset   Vector2
	Target   Vector2
	Rotation float32 // degrees
	Zoom     float32
}

type CameraProjection int32

const (
	CameraPerspective CameraProjection = iota
	CameraOrthographic
)

type Camera3D struct {
	Position   Vector3
	Target     Vector3
	Up         Vector3
	Fovy       float32
	Projection CameraProjection
}

type PixelFormat int32

const (
	PixelFormatGrayscale PixelFormat = iota + 1
	PixelFormatGrayAlpha
	PixelFormatR8G8B8
	PixelFormatR8G8B8A8
)

// Image is CPU-side pixel data. Pixels are tightly packed, top-left origin.
type Image struct {
	ID      uint32
	Pixels  []byte
	Width   int32
	Height  int32
	Mipmaps int32
	Format  PixelFormat
}

type TextureFilter int32

const (
	FilterPoint TextureFilter = iota
	FilterBilinear
	FilterTrilinear
)

type Texture struct {
	ID      uint32
	Width   int32
	Height  int32
	Mipmaps int32
	Format  PixelFormat
}

type RenderTexture struct {
	ID      uint32
	Texture Texture
	Depth   Texture
}

type GlyphInfo struct {
	Value    rune
	OffsetX  int32
	OffsetY  int32
	AdvanceX int32
}

type Font struct {
	BaseSize     int32
	GlyphCount   int32
	GlyphPadding int32
	Texture      Texture
	Recs         []Rectangle
	Glyphs       []GlyphInfo
}

type Shader struct {
	ID   uint32
	Locs []int32
}

type ShaderUniformType int32

const (
	UniformFloat ShaderUniformType = iota
	UniformVec2
	UniformVec3
	UniformVec4
	UniformInt
)

type Mesh struct {
	ID            uint32 // vertex array object
	VertexCount   int32
	TriangleCount int32
	Vertices      []float32
	Texcoords     []float32
	Normals       []float32
	Indices       []uint16
}

type MaterialMap struct {
	Texture Texture
	Color   Color
	Value   float32
}

type Material struct {
	Shader Shader
	Maps   []MaterialMap
	Params [4]float32
}

type Model struct {
	Transform    Matrix
	Meshes       []Mesh
	Materials    []Material
	MeshMaterial []int32
	BoneCount    int32
}

type ModelAnimation struct {
	Name       string
	BoneCount  int32
	FrameCount int32
}

type VrDeviceInfo struct {
	HResolution            int32
	VResolution            int32
	HScreenSize            float32
	VScreenSize            float32
	EyeToScreenDistance    float32
	LensSeparationDistance float32
	InterpupillaryDistance float32
	LensDistortionValues   [4]float32
	ChromaAbCorrection     [4]float32
}

type VrStereoConfig struct {
	Projection        [2]Matrix
	ViewOffset        [2]Matrix
	LeftLensCenter    [2]float32
	RightLensCenter   [2]float32
	LeftScreenCenter  [2]float32
	RightScreenCenter [2]float32
	Scale             [2]float32
	ScaleIn           [2]float32
}

type BlendMode int32

const (
	BlendAlpha BlendMode = iota
	BlendAdditive
	BlendMultiplied
	BlendAddColors
	BlendSubtractColors
	BlendAlphaPremultiply
)

// Wave holds interleaved float samples.
type Wave struct {
	ID         uint32
	FrameCount uint32
	SampleRate uint32
	SampleSize uint32
	Channels   uint32
	Data       []float32
}

type AudioStream struct {
	ID         uint32
	SampleRate uint32
	SampleSize uint32
	Channels   uint32
}

type Sound struct {
	Stream     AudioStream
	FrameCount uint32
}

type Music struct {
	Stream     AudioStream
	FrameCount uint32
	Looping    bool
}

// AudioCallback receives interleaved samples for frames frames.
type AudioCallback func(buffer []float32, frames uint32)

type AutomationEvent struct {
	Frame  uint32
	Type   uint32
	Params [4]int32
}

type AutomationEventList struct {
	Capacity uint32
	Events   []AutomationEvent
}

type ConfigFlags uint32

const (
	FlagVsyncHint         ConfigFlags = 0x00000040
	FlagFullscreenMode    ConfigFlags = 0x00000002
	FlagWindowResizable   ConfigFlags = 0x00000004
	FlagWindowUndecorated ConfigFlags = 0x00000008
	FlagWindowHidden      ConfigFlags = 0x00000080
	FlagWindowMinimized   ConfigFlags = 0x00000200
	FlagWindowMaximized   ConfigFlags = 0x00000400
	FlagWindowUnfocused   ConfigFlags = 0x00000800
	FlagWindowTopmost     ConfigFlags = 0x00001000
	FlagWindowHighDPI     ConfigFlags = 0x00002000
	FlagBorderlessWindow  ConfigFlags = 0x00008000
	FlagMSAA4xHint        ConfigFlags = 0x00000020
)

type TraceLogLevel int32

const (
	LogAll TraceLogLevel = iota
	LogTrace
	LogDebug
	LogInfo
	LogWarning
	LogError
	LogFatal
	LogNone
)

// MaxPhysicsBodies is the native body pool size.
const MaxPhysicsBodies = 64

type PhysicsShapeType int32

const (
	PhysicsCircle PhysicsShapeType = iota
	PhysicsPolygon
)

type PhysicsShape struct {
	Type     PhysicsShapeType
	Radius   float32
	Vertices []Vector2
}

// PhysicsBodyData is owned by the native physics world; callers only ever see pointers to it.
type PhysicsBodyData struct {
	ID              uint32
	Enabled         bool
	Position        Vector2
	Velocity        Vector2
	Force           Vector2
	AngularVelocity float32
	Torque          float32
	Orient          float32
	Inertia         float32
	InverseInertia  float32
	Mass            float32
	InverseMass     float32
	StaticFriction  float32
	DynamicFriction float32
	Restitution     float32
	UseGravity      bool
	IsGrounded      bool
	FreezeOrient    bool
	Shape           PhysicsShape
}
