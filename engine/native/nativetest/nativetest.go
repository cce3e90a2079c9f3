// Package nativetest provides an in-memory native.Library that records every
// call, tracks live allocations and can be told which loaders fail.
package nativetest

import (
	"os"
	"slices"
	"strings"

	"github.com/hubastard/groveray/engine/native"
)

var _ native.Library = (*Library)(nil)

// Library is a recording fake. Path based loaders succeed only when the
// path exists on disk and the loader is not listed in Fail.
type Library struct {
	// Fail lists loader method names ("LoadTexture", "InitAudioDevice", ...)
	// that must produce an invalid value.
	Fail map[string]bool
	// CloseAfter is the number of frames before WindowShouldClose reports true.
	CloseAfter int

	calls       []string
	next        uint32
	live        map[uint32]string
	DoubleFrees []string

	windowReady  bool
	audioReady   bool
	physicsReady bool
	frames       int
	clipboard    string
	volume       float32
	gravity      native.Vector2

	bodies     []*native.PhysicsBodyData
	recordList *native.AutomationEventList
	recording  bool
	baseFrame  int32
	played     []native.AutomationEvent

	processors map[uint32]native.AudioCallback
	Logged     []string
}

func New() *Library {
	return &Library{
		Fail:       make(map[string]bool),
		live:       make(map[uint32]string),
		processors: make(map[uint32]native.AudioCallback),
		volume:     1,
		next:       100,
	}
}

// Calls returns every recorded call name in order.
func (l *Library) Calls() []string { return slices.Clone(l.calls) }

// Count returns how many times name was called.
func (l *Library) Count(name string) int {
	n := 0
	for _, c := range l.calls {
		if c == name {
			n++
		}
	}
	return n
}

// CallsWithPrefix returns the recorded calls starting with prefix, in order.
func (l *Library) CallsWithPrefix(prefix string) []string {
	var out []string
	for _, c := range l.calls {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

// Live returns the number of allocations not yet released.
func (l *Library) Live() int { return len(l.live) }

// Processors returns the number of attached audio processors.
func (l *Library) Processors() int { return len(l.processors) }

// Played returns the automation events replayed so far.
func (l *Library) Played() []native.AutomationEvent { return slices.Clone(l.played) }

// Record appends ev to the active recording list, if any.
func (l *Library) Record(ev native.AutomationEvent) {
	if l.recording && l.recordList != nil {
		ev.Frame = uint32(int32(l.frames) - l.baseFrame)
		l.recordList.Events = append(l.recordList.Events, ev)
	}
}

// ResetCalls clears the call log.
func (l *Library) ResetCalls() { l.calls = l.calls[:0] }

func (l *Library) call(name string) { l.calls = append(l.calls, name) }

func (l *Library) alloc(kind string) uint32 {
	l.next++
	l.live[l.next] = kind
	return l.next
}

func (l *Library) free(id uint32, kind string) {
	if id == 0 {
		return
	}
	if _, ok := l.live[id]; !ok {
		l.DoubleFrees = append(l.DoubleFrees, kind)
		return
	}
	delete(l.live, id)
}

func (l *Library) loads(name, path string) bool {
	if l.Fail[name] || path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// Window

func (l *Library) SetConfigFlags(native.ConfigFlags) { l.call("SetConfigFlags") }

func (l *Library) InitWindow(_, _ int32, _ string) {
	l.call("InitWindow")
	l.windowReady = !l.Fail["InitWindow"]
}

func (l *Library) CloseWindow() {
	l.call("CloseWindow")
	l.windowReady = false
}

func (l *Library) IsWindowReady() bool { return l.windowReady }

func (l *Library) WindowShouldClose() bool {
	l.call("WindowShouldClose")
	if !l.windowReady {
		return true
	}
	l.frames++
	return l.frames > l.CloseAfter
}

func (l *Library) SetTargetFPS(int32)                { l.call("SetTargetFPS") }
func (l *Library) SetWindowMinSize(_, _ int32)       { l.call("SetWindowMinSize") }
func (l *Library) SetWindowMaxSize(_, _ int32)       { l.call("SetWindowMaxSize") }
func (l *Library) SetWindowTitle(string)             { l.call("SetWindowTitle") }
func (l *Library) SetExitKey(int32)                  { l.call("SetExitKey") }
func (l *Library) GetScreenWidth() int32             { return 800 }
func (l *Library) GetScreenHeight() int32            { return 450 }
func (l *Library) GetFrameTime() float32             { return 1.0 / 60 }
func (l *Library) GetTime() float64                  { return float64(l.frames) / 60 }
func (l *Library) GetFPS() int32                     { return 60 }
func (l *Library) GetClipboardText() string          { return l.clipboard }
func (l *Library) SetClipboardText(text string)      { l.clipboard = text }
func (l *Library) GetMonitorCount() int32            { return 1 }
func (l *Library) GetCurrentMonitor() int32          { return 0 }
func (l *Library) GetMonitorWidth(int32) int32       { return 1920 }
func (l *Library) GetMonitorHeight(int32) int32      { return 1080 }
func (l *Library) GetMonitorRefreshRate(int32) int32 { return 60 }
func (l *Library) GetMonitorName(int32) string       { return "fake-monitor" }

// Drawing

func (l *Library) BeginDrawing()                           { l.call("BeginDrawing") }
func (l *Library) EndDrawing()                             { l.call("EndDrawing") }
func (l *Library) BeginMode2D(native.Camera2D)             { l.call("BeginMode2D") }
func (l *Library) EndMode2D()                              { l.call("EndMode2D") }
func (l *Library) BeginMode3D(native.Camera3D)             { l.call("BeginMode3D") }
func (l *Library) EndMode3D()                              { l.call("EndMode3D") }
func (l *Library) BeginShaderMode(native.Shader)           { l.call("BeginShaderMode") }
func (l *Library) EndShaderMode()                          { l.call("EndShaderMode") }
func (l *Library) BeginBlendMode(native.BlendMode)         { l.call("BeginBlendMode") }
func (l *Library) EndBlendMode()                           { l.call("EndBlendMode") }
func (l *Library) BeginScissorMode(_, _, _, _ int32)       { l.call("BeginScissorMode") }
func (l *Library) EndScissorMode()                         { l.call("EndScissorMode") }
func (l *Library) BeginVrStereoMode(native.VrStereoConfig) { l.call("BeginVrStereoMode") }
func (l *Library) EndVrStereoMode()                        { l.call("EndVrStereoMode") }
func (l *Library) BeginTextureMode(native.RenderTexture)   { l.call("BeginTextureMode") }
func (l *Library) EndTextureMode()                         { l.call("EndTextureMode") }

// Shapes

func (l *Library) ClearBackground(native.Color)                              { l.call("ClearBackground") }
func (l *Library) DrawPixelV(native.Vector2, native.Color)                   { l.call("DrawPixelV") }
func (l *Library) DrawLineV(_, _ native.Vector2, _ native.Color)             { l.call("DrawLineV") }
func (l *Library) DrawLineEx(_, _ native.Vector2, _ float32, _ native.Color) { l.call("DrawLineEx") }
func (l *Library) DrawLineStrip([]native.Vector2, native.Color)              { l.call("DrawLineStrip") }
func (l *Library) DrawCircleV(native.Vector2, float32, native.Color)         { l.call("DrawCircleV") }
func (l *Library) DrawCircleLinesV(native.Vector2, float32, native.Color) {
	l.call("DrawCircleLinesV")
}
func (l *Library) DrawCircleGradient(_, _ int32, _ float32, _, _ native.Color) {
	l.call("DrawCircleGradient")
}
func (l *Library) DrawRectangleRec(native.Rectangle, native.Color) { l.call("DrawRectangleRec") }
func (l *Library) DrawRectanglePro(native.Rectangle, native.Vector2, float32, native.Color) {
	l.call("DrawRectanglePro")
}
func (l *Library) DrawRectangleLinesEx(native.Rectangle, float32, native.Color) {
	l.call("DrawRectangleLinesEx")
}
func (l *Library) DrawRectangleGradientH(_, _, _, _ int32, _, _ native.Color) {
	l.call("DrawRectangleGradientH")
}
func (l *Library) DrawRectangleGradientV(_, _, _, _ int32, _, _ native.Color) {
	l.call("DrawRectangleGradientV")
}
func (l *Library) DrawTriangle(_, _, _ native.Vector2, _ native.Color) { l.call("DrawTriangle") }
func (l *Library) DrawTriangleLines(_, _, _ native.Vector2, _ native.Color) {
	l.call("DrawTriangleLines")
}
func (l *Library) DrawTriangleFan([]native.Vector2, native.Color)   { l.call("DrawTriangleFan") }
func (l *Library) DrawTriangleStrip([]native.Vector2, native.Color) { l.call("DrawTriangleStrip") }
func (l *Library) DrawPoly(native.Vector2, int32, float32, float32, native.Color) {
	l.call("DrawPoly")
}
func (l *Library) DrawPolyLinesEx(native.Vector2, int32, float32, float32, float32, native.Color) {
	l.call("DrawPolyLinesEx")
}
func (l *Library) DrawTextureEx(native.Texture, native.Vector2, float32, float32, native.Color) {
	l.call("DrawTextureEx")
}
func (l *Library) DrawTextureRec(native.Texture, native.Rectangle, native.Vector2, native.Color) {
	l.call("DrawTextureRec")
}
func (l *Library) DrawTextEx(native.Font, string, native.Vector2, float32, float32, native.Color) {
	l.call("DrawTextEx")
}
func (l *Library) DrawFPS(_, _ int32) { l.call("DrawFPS") }

func (l *Library) DrawCube(native.Vector3, float32, float32, float32, native.Color) {
	l.call("DrawCube")
}
func (l *Library) DrawCubeWires(native.Vector3, float32, float32, float32, native.Color) {
	l.call("DrawCubeWires")
}
func (l *Library) DrawSphere(native.Vector3, float32, native.Color) { l.call("DrawSphere") }
func (l *Library) DrawSphereWires(native.Vector3, float32, int32, int32, native.Color) {
	l.call("DrawSphereWires")
}
func (l *Library) DrawLine3D(_, _ native.Vector3, _ native.Color) { l.call("DrawLine3D") }
func (l *Library) DrawCircle3D(native.Vector3, float32, native.Vector3, float32, native.Color) {
	l.call("DrawCircle3D")
}
func (l *Library) DrawTriangle3D(_, _, _ native.Vector3, _ native.Color) { l.call("DrawTriangle3D") }
func (l *Library) DrawTriangleStrip3D([]native.Vector3, native.Color) {
	l.call("DrawTriangleStrip3D")
}
func (l *Library) DrawPlane(native.Vector3, native.Vector2, native.Color) { l.call("DrawPlane") }
func (l *Library) DrawGrid(int32, float32)                                { l.call("DrawGrid") }
func (l *Library) DrawModel(native.Model, native.Vector3, float32, native.Color) {
	l.call("DrawModel")
}
func (l *Library) DrawModelWires(native.Model, native.Vector3, float32, native.Color) {
	l.call("DrawModelWires")
}

// Image drawing

func (l *Library) ImageClearBackground(*native.Image, native.Color) {
	l.call("ImageClearBackground")
}
func (l *Library) ImageDrawPixelV(*native.Image, native.Vector2, native.Color) {
	l.call("ImageDrawPixelV")
}
func (l *Library) ImageDrawLineV(_ *native.Image, _, _ native.Vector2, _ native.Color) {
	l.call("ImageDrawLineV")
}
func (l *Library) ImageDrawCircleV(*native.Image, native.Vector2, int32, native.Color) {
	l.call("ImageDrawCircleV")
}
func (l *Library) ImageDrawCircleLinesV(*native.Image, native.Vector2, int32, native.Color) {
	l.call("ImageDrawCircleLinesV")
}
func (l *Library) ImageDrawRectangleRec(*native.Image, native.Rectangle, native.Color) {
	l.call("ImageDrawRectangleRec")
}
func (l *Library) ImageDrawRectangleLines(*native.Image, native.Rectangle, int32, native.Color) {
	l.call("ImageDrawRectangleLines")
}
func (l *Library) ImageDrawTriangle(_ *native.Image, _, _, _ native.Vector2, _ native.Color) {
	l.call("ImageDrawTriangle")
}
func (l *Library) ImageDrawTriangleLines(_ *native.Image, _, _, _ native.Vector2, _ native.Color) {
	l.call("ImageDrawTriangleLines")
}
func (l *Library) ImageDrawTriangleFan(*native.Image, []native.Vector2, native.Color) {
	l.call("ImageDrawTriangleFan")
}
func (l *Library) ImageDrawTriangleStrip(*native.Image, []native.Vector2, native.Color) {
	l.call("ImageDrawTriangleStrip")
}
func (l *Library) ImageDrawTextEx(*native.Image, native.Font, string, native.Vector2, float32, float32, native.Color) {
	l.call("ImageDrawTextEx")
}
func (l *Library) ImageDraw(*native.Image, native.Image, native.Rectangle, native.Rectangle, native.Color) {
	l.call("ImageDraw")
}

// Graphics resources

func (l *Library) newImage(w, h int32) native.Image {
	return native.Image{
		ID:      l.alloc("image"),
		Pixels:  make([]byte, int(w*h*4)),
		Width:   w,
		Height:  h,
		Mipmaps: 1,
		Format:  native.PixelFormatR8G8B8A8,
	}
}

func (l *Library) LoadImage(path string) native.Image {
	l.call("LoadImage")
	if !l.loads("LoadImage", path) {
		return native.Image{}
	}
	return l.newImage(16, 16)
}

func (l *Library) LoadImageFromScreen() native.Image {
	l.call("LoadImageFromScreen")
	return l.newImage(l.GetScreenWidth(), l.GetScreenHeight())
}

func (l *Library) GenImageColor(width, height int32, _ native.Color) native.Image {
	l.call("GenImageColor")
	if l.Fail["GenImageColor"] || width <= 0 || height <= 0 {
		return native.Image{}
	}
	return l.newImage(width, height)
}

func (l *Library) ImageCopy(image native.Image) native.Image {
	l.call("ImageCopy")
	out := l.newImage(image.Width, image.Height)
	copy(out.Pixels, image.Pixels)
	return out
}

func (l *Library) IsImageReady(image native.Image) bool {
	return image.Pixels != nil && image.Width > 0 && image.Height > 0
}

func (l *Library) ExportImage(_ native.Image, path string) bool {
	l.call("ExportImage")
	return os.WriteFile(path, []byte("image"), 0o644) == nil
}

func (l *Library) GetImageColor(image native.Image, x, y int32) native.Color {
	i := int(y*image.Width+x) * 4
	if i < 0 || i+3 >= len(image.Pixels) {
		return native.Color{}
	}
	p := image.Pixels[i : i+4]
	return native.Color{R: p[0], G: p[1], B: p[2], A: p[3]}
}

func (l *Library) UnloadImage(image native.Image) {
	l.call("UnloadImage")
	l.free(image.ID, "image")
}

func (l *Library) newTexture(w, h int32) native.Texture {
	return native.Texture{ID: l.alloc("texture"), Width: w, Height: h, Mipmaps: 1, Format: native.PixelFormatR8G8B8A8}
}

func (l *Library) LoadTexture(path string) native.Texture {
	l.call("LoadTexture")
	if !l.loads("LoadTexture", path) {
		return native.Texture{}
	}
	return l.newTexture(16, 16)
}

func (l *Library) LoadTextureFromImage(image native.Image) native.Texture {
	l.call("LoadTextureFromImage")
	if l.Fail["LoadTextureFromImage"] || !l.IsImageReady(image) {
		return native.Texture{}
	}
	return l.newTexture(image.Width, image.Height)
}

func (l *Library) IsTextureReady(texture native.Texture) bool { return texture.ID > 0 }

func (l *Library) SetTextureFilter(native.Texture, native.TextureFilter) {
	l.call("SetTextureFilter")
}

func (l *Library) GenTextureMipmaps(texture *native.Texture) {
	l.call("GenTextureMipmaps")
	texture.Mipmaps = 4
}

func (l *Library) UnloadTexture(texture native.Texture) {
	l.call("UnloadTexture")
	l.free(texture.ID, "texture")
}

func (l *Library) LoadRenderTexture(width, height int32) native.RenderTexture {
	l.call("LoadRenderTexture")
	if l.Fail["LoadRenderTexture"] || width <= 0 || height <= 0 {
		return native.RenderTexture{}
	}
	return native.RenderTexture{ID: l.alloc("render texture"), Texture: native.Texture{ID: 1, Width: width, Height: height}}
}

func (l *Library) IsRenderTextureReady(target native.RenderTexture) bool {
	return target.ID > 0 && target.Texture.ID > 0
}

func (l *Library) UnloadRenderTexture(target native.RenderTexture) {
	l.call("UnloadRenderTexture")
	l.free(target.ID, "render texture")
}

// defaultFontTexture is shared by every default font and never freed.
const defaultFontTexture = 1

func (l *Library) GetFontDefault() native.Font {
	return native.Font{BaseSize: 10, GlyphCount: 95, Texture: native.Texture{ID: defaultFontTexture}}
}

func (l *Library) LoadFontEx(path string, fontSize int32, codepoints []rune) native.Font {
	l.call("LoadFontEx")
	if !l.loads("LoadFontEx", path) {
		return native.Font{}
	}
	count := int32(len(codepoints))
	if count == 0 {
		count = 95
	}
	return native.Font{BaseSize: fontSize, GlyphCount: count, Texture: l.newTexture(256, 256)}
}

func (l *Library) IsFontReady(font native.Font) bool {
	return font.Texture.ID > 0 && font.BaseSize > 0 && font.GlyphCount > 0
}

func (l *Library) MeasureTextEx(_ native.Font, text string, fontSize, spacing float32) native.Vector2 {
	n := float32(len([]rune(text)))
	return native.Vector2{X: n*fontSize/2 + (n-1)*spacing, Y: fontSize}
}

func (l *Library) UnloadFont(font native.Font) {
	l.call("UnloadFont")
	if font.Texture.ID == defaultFontTexture {
		l.DoubleFrees = append(l.DoubleFrees, "default font")
		return
	}
	l.free(font.Texture.ID, "font")
}

func (l *Library) LoadShader(vsPath, fsPath string) native.Shader {
	l.call("LoadShader")
	if l.Fail["LoadShader"] {
		return native.Shader{}
	}
	for _, p := range []string{vsPath, fsPath} {
		if p != "" && !l.loads("LoadShader", p) {
			return native.Shader{}
		}
	}
	return native.Shader{ID: l.alloc("shader"), Locs: make([]int32, 32)}
}

func (l *Library) LoadShaderFromMemory(vsCode, fsCode string) native.Shader {
	l.call("LoadShaderFromMemory")
	if l.Fail["LoadShaderFromMemory"] || (vsCode == "" && fsCode == "") {
		return native.Shader{}
	}
	return native.Shader{ID: l.alloc("shader"), Locs: make([]int32, 32)}
}

func (l *Library) IsShaderReady(shader native.Shader) bool { return shader.ID > 0 && shader.Locs != nil }

// GetShaderLocation knows every uniform except names starting with "missing".
func (l *Library) GetShaderLocation(_ native.Shader, name string) int32 {
	l.call("GetShaderLocation")
	if strings.HasPrefix(name, "missing") {
		return -1
	}
	return int32(len(name))
}

func (l *Library) SetShaderValue(native.Shader, int32, []float32, native.ShaderUniformType) {
	l.call("SetShaderValue")
}

func (l *Library) UnloadShader(shader native.Shader) {
	l.call("UnloadShader")
	l.free(shader.ID, "shader")
}

func (l *Library) genMesh(name string, vertices int32) native.Mesh {
	l.call(name)
	if l.Fail[name] {
		return native.Mesh{}
	}
	return native.Mesh{
		ID:            l.alloc("mesh"),
		VertexCount:   vertices,
		TriangleCount: vertices / 3,
		Vertices:      make([]float32, vertices*3),
	}
}

func (l *Library) GenMeshCube(_, _, _ float32) native.Mesh { return l.genMesh("GenMeshCube", 24) }
func (l *Library) GenMeshPlane(_, _ float32, resX, resZ int32) native.Mesh {
	return l.genMesh("GenMeshPlane", (resX+1)*(resZ+1))
}
func (l *Library) GenMeshSphere(_ float32, rings, slices int32) native.Mesh {
	return l.genMesh("GenMeshSphere", (rings+2)*slices)
}
func (l *Library) UploadMesh(*native.Mesh, bool) { l.call("UploadMesh") }
func (l *Library) ExportMesh(_ native.Mesh, path string) bool {
	l.call("ExportMesh")
	return os.WriteFile(path, []byte("mesh"), 0o644) == nil
}

func (l *Library) UnloadMesh(mesh native.Mesh) {
	l.call("UnloadMesh")
	l.free(mesh.ID, "mesh")
}

func (l *Library) LoadMaterialDefault() native.Material {
	return native.Material{Shader: native.Shader{ID: 1}, Maps: make([]native.MaterialMap, 12)}
}

func (l *Library) LoadMaterials(path string) []native.Material {
	l.call("LoadMaterials")
	if !l.loads("LoadMaterials", path) {
		return nil
	}
	out := make([]native.Material, 2)
	for i := range out {
		out[i] = native.Material{Shader: native.Shader{ID: l.alloc("material")}, Maps: make([]native.MaterialMap, 12)}
	}
	return out
}

func (l *Library) IsMaterialReady(material native.Material) bool {
	return material.Shader.ID > 0 && material.Maps != nil
}

func (l *Library) UnloadMaterial(material native.Material) {
	l.call("UnloadMaterial")
	if material.Shader.ID == 1 {
		l.DoubleFrees = append(l.DoubleFrees, "default material")
		return
	}
	l.free(material.Shader.ID, "material")
}

func (l *Library) LoadModel(path string) native.Model {
	l.call("LoadModel")
	if !l.loads("LoadModel", path) {
		return native.Model{}
	}
	return native.Model{
		Meshes:       []native.Mesh{{ID: l.alloc("mesh"), VertexCount: 3}},
		Materials:    []native.Material{l.LoadMaterialDefault()},
		MeshMaterial: []int32{0},
		BoneCount:    4,
	}
}

func (l *Library) LoadModelFromMesh(mesh native.Mesh) native.Model {
	l.call("LoadModelFromMesh")
	return native.Model{
		Meshes:       []native.Mesh{mesh},
		Materials:    []native.Material{l.LoadMaterialDefault()},
		MeshMaterial: []int32{0},
	}
}

func (l *Library) IsModelReady(model native.Model) bool {
	return len(model.Meshes) > 0 && len(model.Materials) > 0
}

// UnloadModel frees the meshes; materials are shared defaults here.
func (l *Library) UnloadModel(model native.Model) {
	l.call("UnloadModel")
	for _, m := range model.Meshes {
		l.free(m.ID, "mesh")
	}
}

func (l *Library) LoadModelAnimations(path string) []native.ModelAnimation {
	l.call("LoadModelAnimations")
	if !l.loads("LoadModelAnimations", path) {
		return nil
	}
	return []native.ModelAnimation{
		{Name: "idle", BoneCount: 4, FrameCount: 30},
		{Name: "walk", BoneCount: 4, FrameCount: 24},
	}
}

func (l *Library) UpdateModelAnimation(native.Model, native.ModelAnimation, int32) {
	l.call("UpdateModelAnimation")
}

func (l *Library) IsModelAnimationValid(model native.Model, anim native.ModelAnimation) bool {
	return model.BoneCount == anim.BoneCount
}

func (l *Library) UnloadModelAnimation(native.ModelAnimation) { l.call("UnloadModelAnimation") }

func (l *Library) LoadVrStereoConfig(device native.VrDeviceInfo) native.VrStereoConfig {
	l.call("LoadVrStereoConfig")
	var cfg native.VrStereoConfig
	cfg.Scale = [2]float32{float32(device.HResolution), float32(device.VResolution)}
	return cfg
}

func (l *Library) UnloadVrStereoConfig(native.VrStereoConfig) { l.call("UnloadVrStereoConfig") }

// Audio

func (l *Library) InitAudioDevice() {
	l.call("InitAudioDevice")
	l.audioReady = !l.Fail["InitAudioDevice"]
}

func (l *Library) CloseAudioDevice() {
	l.call("CloseAudioDevice")
	l.audioReady = false
}

func (l *Library) IsAudioDeviceReady() bool       { return l.audioReady }
func (l *Library) SetMasterVolume(volume float32) { l.volume = volume }
func (l *Library) GetMasterVolume() float32       { return l.volume }

func (l *Library) LoadWave(path string) native.Wave {
	l.call("LoadWave")
	if !l.loads("LoadWave", path) {
		return native.Wave{}
	}
	return native.Wave{ID: l.alloc("wave"), FrameCount: 4410, SampleRate: 44100, SampleSize: 32, Channels: 2, Data: make([]float32, 8820)}
}

func (l *Library) IsWaveReady(wave native.Wave) bool {
	return wave.Data != nil && wave.FrameCount > 0 && wave.SampleRate > 0 && wave.Channels > 0
}

func (l *Library) WaveCopy(wave native.Wave) native.Wave {
	l.call("WaveCopy")
	out := wave
	out.ID = l.alloc("wave")
	out.Data = slices.Clone(wave.Data)
	return out
}

func (l *Library) WaveCrop(wave *native.Wave, initFrame, finalFrame int32) {
	l.call("WaveCrop")
	if initFrame < 0 || finalFrame <= initFrame || uint32(finalFrame) > wave.FrameCount {
		return
	}
	ch := int32(wave.Channels)
	wave.Data = wave.Data[initFrame*ch : finalFrame*ch]
	wave.FrameCount = uint32(finalFrame - initFrame)
}

func (l *Library) ExportWave(_ native.Wave, path string) bool {
	l.call("ExportWave")
	return os.WriteFile(path, []byte("wave"), 0o644) == nil
}

func (l *Library) UnloadWave(wave native.Wave) {
	l.call("UnloadWave")
	l.free(wave.ID, "wave")
}

func (l *Library) newStream(kind string) native.AudioStream {
	return native.AudioStream{ID: l.alloc(kind), SampleRate: 44100, SampleSize: 32, Channels: 2}
}

func (l *Library) LoadSound(path string) native.Sound {
	l.call("LoadSound")
	if !l.audioReady || !l.loads("LoadSound", path) {
		return native.Sound{}
	}
	return native.Sound{Stream: l.newStream("sound"), FrameCount: 4410}
}

func (l *Library) LoadSoundFromWave(wave native.Wave) native.Sound {
	l.call("LoadSoundFromWave")
	if !l.audioReady || l.Fail["LoadSoundFromWave"] || !l.IsWaveReady(wave) {
		return native.Sound{}
	}
	return native.Sound{Stream: l.newStream("sound"), FrameCount: wave.FrameCount}
}

func (l *Library) LoadSoundAlias(source native.Sound) native.Sound {
	l.call("LoadSoundAlias")
	if l.Fail["LoadSoundAlias"] {
		return native.Sound{}
	}
	return native.Sound{Stream: l.newStream("sound alias"), FrameCount: source.FrameCount}
}

func (l *Library) IsSoundReady(sound native.Sound) bool {
	return sound.Stream.ID > 0 && sound.FrameCount > 0
}

func (l *Library) PlaySound(native.Sound)               { l.call("PlaySound") }
func (l *Library) StopSound(native.Sound)               { l.call("StopSound") }
func (l *Library) PauseSound(native.Sound)              { l.call("PauseSound") }
func (l *Library) ResumeSound(native.Sound)             { l.call("ResumeSound") }
func (l *Library) IsSoundPlaying(native.Sound) bool     { return false }
func (l *Library) SetSoundVolume(native.Sound, float32) { l.call("SetSoundVolume") }
func (l *Library) SetSoundPitch(native.Sound, float32)  { l.call("SetSoundPitch") }
func (l *Library) SetSoundPan(native.Sound, float32)    { l.call("SetSoundPan") }

func (l *Library) UnloadSoundAlias(alias native.Sound) {
	l.call("UnloadSoundAlias")
	l.free(alias.Stream.ID, "sound alias")
}

func (l *Library) UnloadSound(sound native.Sound) {
	l.call("UnloadSound")
	l.free(sound.Stream.ID, "sound")
}

func (l *Library) LoadMusicStream(path string) native.Music {
	l.call("LoadMusicStream")
	if !l.audioReady || !l.loads("LoadMusicStream", path) {
		return native.Music{}
	}
	return native.Music{Stream: l.newStream("music"), FrameCount: 441000, Looping: true}
}

func (l *Library) IsMusicReady(music native.Music) bool {
	return music.Stream.ID > 0 && music.FrameCount > 0
}

func (l *Library) PlayMusicStream(native.Music)            { l.call("PlayMusicStream") }
func (l *Library) UpdateMusicStream(native.Music)          { l.call("UpdateMusicStream") }
func (l *Library) StopMusicStream(native.Music)            { l.call("StopMusicStream") }
func (l *Library) PauseMusicStream(native.Music)           { l.call("PauseMusicStream") }
func (l *Library) ResumeMusicStream(native.Music)          { l.call("ResumeMusicStream") }
func (l *Library) IsMusicStreamPlaying(native.Music) bool  { return false }
func (l *Library) SeekMusicStream(native.Music, float32)   { l.call("SeekMusicStream") }
func (l *Library) SetMusicVolume(native.Music, float32)    { l.call("SetMusicVolume") }
func (l *Library) SetMusicPitch(native.Music, float32)     { l.call("SetMusicPitch") }
func (l *Library) SetMusicPan(native.Music, float32)       { l.call("SetMusicPan") }
func (l *Library) GetMusicTimePlayed(native.Music) float32 { return 0 }

func (l *Library) GetMusicTimeLength(music native.Music) float32 {
	return float32(music.FrameCount) / float32(music.Stream.SampleRate)
}

func (l *Library) UnloadMusicStream(music native.Music) {
	l.call("UnloadMusicStream")
	l.free(music.Stream.ID, "music")
}

func (l *Library) LoadAudioStream(sampleRate, sampleSize, channels uint32) native.AudioStream {
	l.call("LoadAudioStream")
	if !l.audioReady || l.Fail["LoadAudioStream"] || sampleRate == 0 || channels == 0 {
		return native.AudioStream{}
	}
	return native.AudioStream{ID: l.alloc("audio stream"), SampleRate: sampleRate, SampleSize: sampleSize, Channels: channels}
}

func (l *Library) IsAudioStreamReady(stream native.AudioStream) bool { return stream.ID > 0 }

func (l *Library) UpdateAudioStream(native.AudioStream, []float32)  { l.call("UpdateAudioStream") }
func (l *Library) IsAudioStreamProcessed(native.AudioStream) bool   { return true }
func (l *Library) PlayAudioStream(native.AudioStream)               { l.call("PlayAudioStream") }
func (l *Library) StopAudioStream(native.AudioStream)               { l.call("StopAudioStream") }
func (l *Library) PauseAudioStream(native.AudioStream)              { l.call("PauseAudioStream") }
func (l *Library) ResumeAudioStream(native.AudioStream)             { l.call("ResumeAudioStream") }
func (l *Library) IsAudioStreamPlaying(native.AudioStream) bool     { return false }
func (l *Library) SetAudioStreamVolume(native.AudioStream, float32) { l.call("SetAudioStreamVolume") }
func (l *Library) SetAudioStreamPitch(native.AudioStream, float32)  { l.call("SetAudioStreamPitch") }
func (l *Library) SetAudioStreamPan(native.AudioStream, float32)    { l.call("SetAudioStreamPan") }

func (l *Library) AttachAudioStreamProcessor(_ native.AudioStream, processor native.AudioCallback) uint32 {
	l.call("AttachAudioStreamProcessor")
	l.next++
	l.processors[l.next] = processor
	return l.next
}

func (l *Library) DetachAudioStreamProcessor(_ native.AudioStream, id uint32) {
	l.call("DetachAudioStreamProcessor")
	delete(l.processors, id)
}

func (l *Library) AttachAudioMixedProcessor(processor native.AudioCallback) uint32 {
	l.call("AttachAudioMixedProcessor")
	l.next++
	l.processors[l.next] = processor
	return l.next
}

func (l *Library) DetachAudioMixedProcessor(id uint32) {
	l.call("DetachAudioMixedProcessor")
	delete(l.processors, id)
}

// Mix runs every attached processor over buffer.
func (l *Library) Mix(buffer []float32, frames uint32) {
	for _, p := range l.processors {
		p(buffer, frames)
	}
}

func (l *Library) UnloadAudioStream(stream native.AudioStream) {
	l.call("UnloadAudioStream")
	l.free(stream.ID, "audio stream")
}

// Physics

func (l *Library) InitPhysics() {
	l.call("InitPhysics")
	l.physicsReady = !l.Fail["InitPhysics"]
	l.gravity = native.Vector2{Y: 9.81}
}

func (l *Library) ClosePhysics() {
	l.call("ClosePhysics")
	for _, b := range l.bodies {
		l.free(b.ID, "physics body")
	}
	l.bodies = nil
	l.physicsReady = false
}

func (l *Library) IsPhysicsEnabled() bool { return l.physicsReady }

func (l *Library) SetPhysicsGravity(x, y float32) {
	l.call("SetPhysicsGravity")
	l.gravity = native.Vector2{X: x, Y: y}
}

func (l *Library) UpdatePhysics() {
	l.call("UpdatePhysics")
	for _, b := range l.bodies {
		if b.Enabled && b.UseGravity {
			b.Velocity.X += l.gravity.X / 60
			b.Velocity.Y += l.gravity.Y / 60
		}
		b.Position.X += b.Velocity.X
		b.Position.Y += b.Velocity.Y
	}
}

func (l *Library) newBody(name string, pos native.Vector2, shape native.PhysicsShape, mass float32) *native.PhysicsBodyData {
	l.call(name)
	if !l.physicsReady || len(l.bodies) >= native.MaxPhysicsBodies {
		return nil
	}
	b := &native.PhysicsBodyData{
		ID:          l.alloc("physics body"),
		Enabled:     true,
		Position:    pos,
		Mass:        mass,
		InverseMass: 1 / mass,
		UseGravity:  true,
		Shape:       shape,
	}
	l.bodies = append(l.bodies, b)
	return b
}

func (l *Library) CreatePhysicsBodyCircle(pos native.Vector2, radius, density float32) *native.PhysicsBodyData {
	return l.newBody("CreatePhysicsBodyCircle", pos, native.PhysicsShape{Type: native.PhysicsCircle, Radius: radius}, density*radius*radius*3.14159)
}

func (l *Library) CreatePhysicsBodyRectangle(pos native.Vector2, width, height, density float32) *native.PhysicsBodyData {
	return l.newBody("CreatePhysicsBodyRectangle", pos, native.PhysicsShape{Type: native.PhysicsPolygon, Vertices: make([]native.Vector2, 4)}, density*width*height)
}

func (l *Library) CreatePhysicsBodyPolygon(pos native.Vector2, radius float32, sides int32, density float32) *native.PhysicsBodyData {
	return l.newBody("CreatePhysicsBodyPolygon", pos, native.PhysicsShape{Type: native.PhysicsPolygon, Radius: radius, Vertices: make([]native.Vector2, sides)}, density*radius*radius)
}

func (l *Library) GetPhysicsBodiesCount() int32 { return int32(len(l.bodies)) }

func (l *Library) GetPhysicsBody(index int32) *native.PhysicsBodyData {
	if index < 0 || int(index) >= len(l.bodies) {
		return nil
	}
	return l.bodies[index]
}

func (l *Library) PhysicsAddForce(body *native.PhysicsBodyData, force native.Vector2) {
	l.call("PhysicsAddForce")
	body.Force.X += force.X
	body.Force.Y += force.Y
}

func (l *Library) PhysicsAddTorque(body *native.PhysicsBodyData, amount float32) {
	l.call("PhysicsAddTorque")
	body.Torque += amount
}

func (l *Library) SetPhysicsBodyRotation(body *native.PhysicsBodyData, radians float32) {
	l.call("SetPhysicsBodyRotation")
	body.Orient = radians
}

func (l *Library) DestroyPhysicsBody(body *native.PhysicsBodyData) {
	l.call("DestroyPhysicsBody")
	if body == nil {
		return
	}
	i := slices.Index(l.bodies, body)
	if i < 0 {
		l.DoubleFrees = append(l.DoubleFrees, "physics body")
		return
	}
	l.bodies = slices.Delete(l.bodies, i, i+1)
	l.free(body.ID, "physics body")
}

// Automation

func (l *Library) LoadAutomationEventList(path string) native.AutomationEventList {
	l.call("LoadAutomationEventList")
	if path == "" {
		return native.AutomationEventList{Capacity: 16384, Events: make([]native.AutomationEvent, 0, 16)}
	}
	if !l.loads("LoadAutomationEventList", path) {
		return native.AutomationEventList{}
	}
	return native.AutomationEventList{
		Capacity: 16384,
		Events: []native.AutomationEvent{
			{Frame: 0, Type: 1, Params: [4]int32{32}},
			{Frame: 2, Type: 2, Params: [4]int32{32}},
		},
	}
}

func (l *Library) ExportAutomationEventList(_ native.AutomationEventList, path string) bool {
	l.call("ExportAutomationEventList")
	return os.WriteFile(path, []byte("events"), 0o644) == nil
}

func (l *Library) SetAutomationEventList(list *native.AutomationEventList) {
	l.call("SetAutomationEventList")
	l.recordList = list
}

func (l *Library) SetAutomationEventBaseFrame(frame int32) {
	l.call("SetAutomationEventBaseFrame")
	l.baseFrame = frame
}

func (l *Library) StartAutomationEventRecording() {
	l.call("StartAutomationEventRecording")
	l.recording = true
}

func (l *Library) StopAutomationEventRecording() {
	l.call("StopAutomationEventRecording")
	l.recording = false
}

func (l *Library) PlayAutomationEvent(event native.AutomationEvent) {
	l.call("PlayAutomationEvent")
	l.played = append(l.played, event)
}

func (l *Library) UnloadAutomationEventList(native.AutomationEventList) {
	l.call("UnloadAutomationEventList")
}

// Logging

func (l *Library) SetTraceLogLevel(native.TraceLogLevel) { l.call("SetTraceLogLevel") }

func (l *Library) TraceLog(_ native.TraceLogLevel, msg string) {
	l.Logged = append(l.Logged, msg)
}
