package platform

import (
	"go.uber.org/zap"

	"github.com/hubastard/groveray/engine/assets"
	"github.com/hubastard/groveray/engine/native"
	"github.com/hubastard/groveray/engine/scene"
)

// materialMapCount matches the diffuse..brdf slots of a default material.
const materialMapCount = 12

var white = native.Color{R: 255, G: 255, B: 255, A: 255}

// Meshes keep their data CPU side and are streamed through the batch; the
// ID only tracks ownership.
func (n *Native) newMesh(m native.Mesh) native.Mesh {
	if m.VertexCount == 0 {
		return native.Mesh{}
	}
	m.ID = n.id()
	n.track("mesh")
	return m
}

func (n *Native) GenMeshCube(width, height, length float32) native.Mesh {
	return n.newMesh(scene.Cube(width, height, length))
}

func (n *Native) GenMeshPlane(width, length float32, resX, resZ int32) native.Mesh {
	return n.newMesh(scene.Plane(width, length, resX, resZ))
}

func (n *Native) GenMeshSphere(radius float32, rings, slices int32) native.Mesh {
	return n.newMesh(scene.Sphere(radius, rings, slices))
}

// UploadMesh claims an ID for a caller-built mesh.
func (n *Native) UploadMesh(mesh *native.Mesh, _ bool) {
	if mesh == nil || mesh.ID != 0 || len(mesh.Vertices) < 3 {
		return
	}
	if mesh.VertexCount == 0 {
		mesh.VertexCount = int32(len(mesh.Vertices) / 3)
	}
	if mesh.TriangleCount == 0 {
		if len(mesh.Indices) > 0 {
			mesh.TriangleCount = int32(len(mesh.Indices) / 3)
		} else {
			mesh.TriangleCount = mesh.VertexCount / 3
		}
	}
	*mesh = n.newMesh(*mesh)
}

func (n *Native) ExportMesh(mesh native.Mesh, path string) bool {
	if err := assets.ExportMesh(mesh, path); err != nil {
		n.log.Warn("mesh export failed", zap.String("path", path), zap.Error(err))
		return false
	}
	return true
}

func (n *Native) UnloadMesh(mesh native.Mesh) {
	if mesh.ID != 0 {
		n.untrack("mesh")
	}
}

// Materials

func (n *Native) defaultShader() native.Shader {
	if n.gl == nil {
		return native.Shader{}
	}
	return n.gl.DefaultShader()
}

func (n *Native) LoadMaterialDefault() native.Material {
	maps := make([]native.MaterialMap, materialMapCount)
	for i := range maps {
		maps[i].Color = white
	}
	return native.Material{Shader: n.defaultShader(), Maps: maps}
}

func (n *Native) material(diffuse native.MaterialMap) native.Material {
	m := n.LoadMaterialDefault()
	m.Maps[0] = diffuse
	return m
}

func (n *Native) LoadMaterials(path string) []native.Material {
	maps, err := assets.LoadMaterials(path)
	if err != nil {
		n.log.Warn("material load failed", zap.String("path", path), zap.Error(err))
		return nil
	}
	out := make([]native.Material, len(maps))
	for i, mm := range maps {
		out[i] = n.material(mm)
	}
	return out
}

func (n *Native) IsMaterialReady(material native.Material) bool {
	return material.Shader.ID > 0 && material.Maps != nil
}

// UnloadMaterial releases a non-default shader. Map textures belong to
// their own handles.
func (n *Native) UnloadMaterial(material native.Material) {
	if !n.isDefaultShader(material.Shader) {
		n.UnloadShader(material.Shader)
	}
}

// Models

func (n *Native) LoadModel(path string) native.Model {
	data, err := assets.LoadModel(path)
	if err != nil {
		n.log.Warn("model load failed", zap.String("path", path), zap.Error(err))
		return native.Model{}
	}
	model := native.Model{Transform: scene.Identity(), BoneCount: data.BoneCount}
	for _, m := range data.Meshes {
		model.Meshes = append(model.Meshes, n.newMesh(m))
	}
	for _, mm := range data.Materials {
		model.Materials = append(model.Materials, n.material(mm))
	}
	// Primitives without a material share a default one at the end.
	fallback := int32(len(model.Materials))
	for _, mi := range data.MeshMaterial {
		if mi < 0 {
			mi = fallback
		}
		model.MeshMaterial = append(model.MeshMaterial, mi)
	}
	if len(model.Materials) == 0 || hasFallback(model.MeshMaterial, fallback) {
		model.Materials = append(model.Materials, n.LoadMaterialDefault())
	}
	n.track("model")
	return model
}

func hasFallback(idx []int32, fallback int32) bool {
	for _, i := range idx {
		if i == fallback {
			return true
		}
	}
	return false
}

// LoadModelFromMesh takes ownership of mesh.
func (n *Native) LoadModelFromMesh(mesh native.Mesh) native.Model {
	if mesh.VertexCount == 0 {
		return native.Model{}
	}
	n.track("model")
	return native.Model{
		Transform:    scene.Identity(),
		Meshes:       []native.Mesh{mesh},
		Materials:    []native.Material{n.LoadMaterialDefault()},
		MeshMaterial: []int32{0},
	}
}

func (n *Native) IsModelReady(model native.Model) bool {
	return len(model.Meshes) > 0 && len(model.Materials) > 0
}

func (n *Native) UnloadModel(model native.Model) {
	for _, m := range model.Meshes {
		n.UnloadMesh(m)
	}
	for _, m := range model.Materials {
		n.UnloadMaterial(m)
	}
	if len(model.Meshes) > 0 {
		n.untrack("model")
	}
}

// Animations

func (n *Native) LoadModelAnimations(path string) []native.ModelAnimation {
	anims, err := assets.LoadAnimations(path)
	if err != nil {
		n.log.Warn("animation load failed", zap.String("path", path), zap.Error(err))
		return nil
	}
	return anims
}

// UpdateModelAnimation checks the pose is applicable. Meshes are drawn in
// bind pose.
func (n *Native) UpdateModelAnimation(model native.Model, anim native.ModelAnimation, frame int32) {
	if !n.IsModelAnimationValid(model, anim) {
		n.log.Warn("animation does not match model",
			zap.String("animation", anim.Name), zap.Int32("model_bones", model.BoneCount), zap.Int32("bones", anim.BoneCount))
		return
	}
	if anim.FrameCount > 0 && (frame < 0 || frame >= anim.FrameCount) {
		n.log.Debug("animation frame wrapped", zap.Int32("frame", frame), zap.Int32("frames", anim.FrameCount))
	}
}

func (n *Native) IsModelAnimationValid(model native.Model, anim native.ModelAnimation) bool {
	return model.BoneCount == anim.BoneCount
}

func (n *Native) UnloadModelAnimation(native.ModelAnimation) {}

// VR

func (n *Native) LoadVrStereoConfig(device native.VrDeviceInfo) native.VrStereoConfig {
	return scene.StereoConfig(device)
}

func (n *Native) UnloadVrStereoConfig(native.VrStereoConfig) {}
