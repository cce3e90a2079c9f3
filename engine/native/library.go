package native

// Library is the complete native function table. Implementations are not
// safe for concurrent use and must be driven from one locked OS thread.
type Library interface {
	Window
	Drawing
	Shapes
	ImageDrawing
	Graphics
	Audio
	Physics
	Automation
	Logging
}

type Window interface {
	SetConfigFlags(flags ConfigFlags)
	InitWindow(width, height int32, title string)
	CloseWindow()
	IsWindowReady() bool
	WindowShouldClose() bool
	SetTargetFPS(fps int32)
	SetWindowMinSize(width, height int32)
	SetWindowMaxSize(width, height int32)
	SetWindowTitle(title string)
	SetExitKey(key int32)
	GetScreenWidth() int32
	GetScreenHeight() int32
	GetFrameTime() float32
	GetTime() float64
	GetFPS() int32
	GetClipboardText() string
	SetClipboardText(text string)
	GetMonitorCount() int32
	GetCurrentMonitor() int32
	GetMonitorWidth(monitor int32) int32
	GetMonitorHeight(monitor int32) int32
	GetMonitorRefreshRate(monitor int32) int32
	GetMonitorName(monitor int32) string
}

// Drawing holds the begin/end pairs of every drawing mode.
type Drawing interface {
	BeginDrawing()
	EndDrawing()
	BeginMode2D(camera Camera2D)
	EndMode2D()
	BeginMode3D(camera Camera3D)
	EndMode3D()
	BeginShaderMode(shader Shader)
	EndShaderMode()
	BeginBlendMode(mode BlendMode)
	EndBlendMode()
	BeginScissorMode(x, y, width, height int32)
	EndScissorMode()
	BeginVrStereoMode(config VrStereoConfig)
	EndVrStereoMode()
	BeginTextureMode(target RenderTexture)
	EndTextureMode()
}

type Shapes interface {
	ClearBackground(color Color)
	DrawPixelV(position Vector2, color Color)
	DrawLineV(start, end Vector2, color Color)
	DrawLineEx(start, end Vector2, thick float32, color Color)
	DrawLineStrip(points []Vector2, color Color)
	DrawCircleV(center Vector2, radius float32, color Color)
	DrawCircleLinesV(center Vector2, radius float32, color Color)
	DrawCircleGradient(centerX, centerY int32, radius float32, inner, outer Color)
	DrawRectangleRec(rec Rectangle, color Color)
	DrawRectanglePro(rec Rectangle, origin Vector2, rotation float32, color Color)
	DrawRectangleLinesEx(rec Rectangle, thick float32, color Color)
	DrawRectangleGradientH(x, y, width, height int32, left, right Color)
	DrawRectangleGradientV(x, y, width, height int32, top, bottom Color)
	DrawTriangle(v1, v2, v3 Vector2, color Color)
	DrawTriangleLines(v1, v2, v3 Vector2, color Color)
	DrawTriangleFan(points []Vector2, color Color)
	DrawTriangleStrip(points []Vector2, color Color)
	DrawPoly(center Vector2, sides int32, radius, rotation float32, color Color)
	DrawPolyLinesEx(center Vector2, sides int32, radius, rotation, thick float32, color Color)
	DrawTextureEx(texture Texture, position Vector2, rotation, scale float32, tint Color)
	DrawTextureRec(texture Texture, source Rectangle, position Vector2, tint Color)
	DrawTextEx(font Font, text string, position Vector2, fontSize, spacing float32, tint Color)
	DrawFPS(x, y int32)

	DrawCube(position Vector3, width, height, length float32, color Color)
	DrawCubeWires(position Vector3, width, height, length float32, color Color)
	DrawSphere(center Vector3, radius float32, color Color)
	DrawSphereWires(center Vector3, radius float32, rings, slices int32, color Color)
	DrawLine3D(start, end Vector3, color Color)
	DrawCircle3D(center Vector3, radius float32, axis Vector3, angle float32, color Color)
	DrawTriangle3D(v1, v2, v3 Vector3, color Color)
	DrawTriangleStrip3D(points []Vector3, color Color)
	DrawPlane(center Vector3, size Vector2, color Color)
	DrawGrid(slices int32, spacing float32)
	DrawModel(model Model, position Vector3, scale float32, tint Color)
	DrawModelWires(model Model, position Vector3, scale float32, tint Color)
}

// ImageDrawing renders into CPU-side images.
type ImageDrawing interface {
	ImageClearBackground(dst *Image, color Color)
	ImageDrawPixelV(dst *Image, position Vector2, color Color)
	ImageDrawLineV(dst *Image, start, end Vector2, color Color)
	ImageDrawCircleV(dst *Image, center Vector2, radius int32, color Color)
	ImageDrawCircleLinesV(dst *Image, center Vector2, radius int32, color Color)
	ImageDrawRectangleRec(dst *Image, rec Rectangle, color Color)
	ImageDrawRectangleLines(dst *Image, rec Rectangle, thick int32, color Color)
	ImageDrawTriangle(dst *Image, v1, v2, v3 Vector2, color Color)
	ImageDrawTriangleLines(dst *Image, v1, v2, v3 Vector2, color Color)
	ImageDrawTriangleFan(dst *Image, points []Vector2, color Color)
	ImageDrawTriangleStrip(dst *Image, points []Vector2, color Color)
	ImageDrawTextEx(dst *Image, font Font, text string, position Vector2, fontSize, spacing float32, tint Color)
	ImageDraw(dst *Image, src Image, srcRec, dstRec Rectangle, tint Color)
}

// Graphics holds loaders, validity predicates and release functions of
// every GPU and CPU graphics resource.
type Graphics interface {
	LoadImage(path string) Image
	LoadImageFromScreen() Image
	GenImageColor(width, height int32, color Color) Image
	ImageCopy(image Image) Image
	IsImageReady(image Image) bool
	ExportImage(image Image, path string) bool
	GetImageColor(image Image, x, y int32) Color
	UnloadImage(image Image)

	LoadTexture(path string) Texture
	LoadTextureFromImage(image Image) Texture
	IsTextureReady(texture Texture) bool
	SetTextureFilter(texture Texture, filter TextureFilter)
	GenTextureMipmaps(texture *Texture)
	UnloadTexture(texture Texture)

	LoadRenderTexture(width, height int32) RenderTexture
	IsRenderTextureReady(target RenderTexture) bool
	UnloadRenderTexture(target RenderTexture)

	GetFontDefault() Font
	LoadFontEx(path string, fontSize int32, codepoints []rune) Font
	IsFontReady(font Font) bool
	MeasureTextEx(font Font, text string, fontSize, spacing float32) Vector2
	UnloadFont(font Font)

	LoadShader(vsPath, fsPath string) Shader
	LoadShaderFromMemory(vsCode, fsCode string) Shader
	IsShaderReady(shader Shader) bool
	GetShaderLocation(shader Shader, name string) int32
	SetShaderValue(shader Shader, loc int32, value []float32, uniform ShaderUniformType)
	UnloadShader(shader Shader)

	GenMeshCube(width, height, length float32) Mesh
	GenMeshPlane(width, length float32, resX, resZ int32) Mesh
	GenMeshSphere(radius float32, rings, slices int32) Mesh
	UploadMesh(mesh *Mesh, dynamic bool)
	ExportMesh(mesh Mesh, path string) bool
	UnloadMesh(mesh Mesh)

	LoadMaterialDefault() Material
	LoadMaterials(path string) []Material
	IsMaterialReady(material Material) bool
	UnloadMaterial(material Material)

	LoadModel(path string) Model
	LoadModelFromMesh(mesh Mesh) Model
	IsModelReady(model Model) bool
	UnloadModel(model Model)

	LoadModelAnimations(path string) []ModelAnimation
	UpdateModelAnimation(model Model, anim ModelAnimation, frame int32)
	IsModelAnimationValid(model Model, anim ModelAnimation) bool
	UnloadModelAnimation(anim ModelAnimation)

	LoadVrStereoConfig(device VrDeviceInfo) VrStereoConfig
	UnloadVrStereoConfig(config VrStereoConfig)
}

type Audio interface {
	InitAudioDevice()
	CloseAudioDevice()
	IsAudioDeviceReady() bool
	SetMasterVolume(volume float32)
	GetMasterVolume() float32

	LoadWave(path string) Wave
	IsWaveReady(wave Wave) bool
	WaveCopy(wave Wave) Wave
	WaveCrop(wave *Wave, initFrame, finalFrame int32)
	ExportWave(wave Wave, path string) bool
	UnloadWave(wave Wave)

	LoadSound(path string) Sound
	LoadSoundFromWave(wave Wave) Sound
	LoadSoundAlias(source Sound) Sound
	IsSoundReady(sound Sound) bool
	PlaySound(sound Sound)
	StopSound(sound Sound)
	PauseSound(sound Sound)
	ResumeSound(sound Sound)
	IsSoundPlaying(sound Sound) bool
	SetSoundVolume(sound Sound, volume float32)
	SetSoundPitch(sound Sound, pitch float32)
	SetSoundPan(sound Sound, pan float32)
	UnloadSoundAlias(alias Sound)
	UnloadSound(sound Sound)

	LoadMusicStream(path string) Music
	IsMusicReady(music Music) bool
	PlayMusicStream(music Music)
	UpdateMusicStream(music Music)
	StopMusicStream(music Music)
	PauseMusicStream(music Music)
	ResumeMusicStream(music Music)
	IsMusicStreamPlaying(music Music) bool
	SeekMusicStream(music Music, position float32)
	SetMusicVolume(music Music, volume float32)
	SetMusicPitch(music Music, pitch float32)
	SetMusicPan(music Music, pan float32)
	GetMusicTimeLength(music Music) float32
	GetMusicTimePlayed(music Music) float32
	UnloadMusicStream(music Music)

	LoadAudioStream(sampleRate, sampleSize, channels uint32) AudioStream
	IsAudioStreamReady(stream AudioStream) bool
	UpdateAudioStream(stream AudioStream, data []float32)
	IsAudioStreamProcessed(stream AudioStream) bool
	PlayAudioStream(stream AudioStream)
	StopAudioStream(stream AudioStream)
	PauseAudioStream(stream AudioStream)
	ResumeAudioStream(stream AudioStream)
	IsAudioStreamPlaying(stream AudioStream) bool
	SetAudioStreamVolume(stream AudioStream, volume float32)
	SetAudioStreamPitch(stream AudioStream, pitch float32)
	SetAudioStreamPan(stream AudioStream, pan float32)
	AttachAudioStreamProcessor(stream AudioStream, processor AudioCallback) uint32
	DetachAudioStreamProcessor(stream AudioStream, id uint32)
	AttachAudioMixedProcessor(processor AudioCallback) uint32
	DetachAudioMixedProcessor(id uint32)
	UnloadAudioStream(stream AudioStream)
}

type Physics interface {
	InitPhysics()
	ClosePhysics()
	IsPhysicsEnabled() bool
	SetPhysicsGravity(x, y float32)
	UpdatePhysics()
	CreatePhysicsBodyCircle(pos Vector2, radius, density float32) *PhysicsBodyData
	CreatePhysicsBodyRectangle(pos Vector2, width, height, density float32) *PhysicsBodyData
	CreatePhysicsBodyPolygon(pos Vector2, radius float32, sides int32, density float32) *PhysicsBodyData
	GetPhysicsBodiesCount() int32
	GetPhysicsBody(index int32) *PhysicsBodyData
	PhysicsAddForce(body *PhysicsBodyData, force Vector2)
	PhysicsAddTorque(body *PhysicsBodyData, amount float32)
	SetPhysicsBodyRotation(body *PhysicsBodyData, radians float32)
	DestroyPhysicsBody(body *PhysicsBodyData)
}

type Automation interface {
	// LoadAutomationEventList returns an empty list for an empty path.
	LoadAutomationEventList(path string) AutomationEventList
	ExportAutomationEventList(list AutomationEventList, path string) bool
	SetAutomationEventList(list *AutomationEventList)
	SetAutomationEventBaseFrame(frame int32)
	StartAutomationEventRecording()
	StopAutomationEventRecording()
	PlayAutomationEvent(event AutomationEvent)
	UnloadAutomationEventList(list AutomationEventList)
}

type Logging interface {
	SetTraceLogLevel(level TraceLogLevel)
	TraceLog(level TraceLogLevel, msg string)
}
