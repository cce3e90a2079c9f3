package gfx

import (
	"fmt"

	"github.com/hubastard/groveray/engine/errors"
	"github.com/hubastard/groveray/engine/handle"
	"github.com/hubastard/groveray/engine/native"
)

func meshKind(lib native.Library) handle.Kind[native.Mesh] {
	return handle.Kind[native.Mesh]{
		ID:      handle.KindMesh,
		Valid:   func(m native.Mesh) bool { return m.VertexCount > 0 },
		Release: lib.UnloadMesh,
	}
}

func materialKind(lib native.Library) handle.Kind[native.Material] {
	return handle.Kind[native.Material]{ID: handle.KindMaterial, Valid: lib.IsMaterialReady, Release: lib.UnloadMaterial}
}

func modelKind(lib native.Library) handle.Kind[native.Model] {
	return handle.Kind[native.Model]{ID: handle.KindModel, Valid: lib.IsModelReady, Release: lib.UnloadModel}
}

func animationKind(lib native.Library) handle.Kind[native.ModelAnimation] {
	return handle.Kind[native.ModelAnimation]{ID: handle.KindModelAnimation, Release: lib.UnloadModelAnimation}
}

// Mesh is vertex data uploaded to the GPU.
type Mesh struct {
	*handle.Handle[native.Mesh]
	lib native.Library
}

func wrapMesh(lib native.Library, gen func() native.Mesh) (*Mesh, error) {
	h, err := meshKind(lib).Load(gen)
	if err != nil {
		return nil, err
	}
	return &Mesh{Handle: h, lib: lib}, nil
}

func GenMeshCube(lib native.Library, width, height, length float32) (*Mesh, error) {
	return wrapMesh(lib, func() native.Mesh { return lib.GenMeshCube(width, height, length) })
}

func GenMeshPlane(lib native.Library, width, length float32, resX, resZ int32) (*Mesh, error) {
	return wrapMesh(lib, func() native.Mesh { return lib.GenMeshPlane(width, length, resX, resZ) })
}

func GenMeshSphere(lib native.Library, radius float32, rings, slices int32) (*Mesh, error) {
	return wrapMesh(lib, func() native.Mesh { return lib.GenMeshSphere(radius, rings, slices) })
}

func (m *Mesh) VertexCount() int32   { return m.Raw().VertexCount }
func (m *Mesh) TriangleCount() int32 { return m.Raw().TriangleCount }

// Export writes the mesh as an OBJ file.
func (m *Mesh) Export(path string) error {
	if !m.lib.ExportMesh(m.Raw(), path) {
		return errors.IO("export", path)
	}
	return nil
}

// Material pairs a shader with its texture maps.
type Material struct {
	*handle.Handle[native.Material]
	lib native.Library
}

// DefaultMaterial returns the library's built-in material. It is never released.
func DefaultMaterial(lib native.Library) *Material {
	return &Material{Handle: materialKind(lib).Unowned(lib.LoadMaterialDefault()), lib: lib}
}

// LoadMaterials reads every material in an MTL file.
func LoadMaterials(lib native.Library, path string) ([]*Material, error) {
	raw := lib.LoadMaterials(path)
	if len(raw) == 0 {
		return nil, errors.UnableToLoad("material")
	}
	kind := materialKind(lib)
	out := make([]*Material, 0, len(raw))
	for _, m := range raw {
		if !kind.Valid(m) {
			// release what was already wrapped and the rest of the batch
			for _, w := range out {
				w.Close()
			}
			for _, rest := range raw[len(out):] {
				if kind.Valid(rest) {
					lib.UnloadMaterial(rest)
				}
			}
			return nil, errors.UnableToLoad("material")
		}
		out = append(out, &Material{Handle: kind.Owned(m), lib: lib})
	}
	return out, nil
}

// Model is a set of meshes with their materials.
type Model struct {
	*handle.Handle[native.Model]
	lib native.Library
}

func LoadModel(lib native.Library, path string) (*Model, error) {
	h, err := modelKind(lib).Load(func() native.Model { return lib.LoadModel(path) })
	if err != nil {
		return nil, err
	}
	return &Model{Handle: h, lib: lib}, nil
}

// ModelFromMesh builds a model around mesh. The model takes ownership of
// the mesh; the mesh handle is closed and must not be used afterwards.
// Borrowed or closed meshes are rejected with InvalidArgument.
func ModelFromMesh(lib native.Library, mesh *Mesh) (*Model, error) {
	if mesh == nil || mesh.Handle == nil {
		return nil, errors.InvalidArgument("model needs an owned mesh")
	}
	raw, ok := mesh.Take()
	if !ok {
		return nil, errors.InvalidArgument("model needs an owned, open mesh")
	}
	h, err := modelKind(lib).Load(func() native.Model { return lib.LoadModelFromMesh(raw) })
	if err != nil {
		lib.UnloadMesh(raw)
		return nil, err
	}
	return &Model{Handle: h, lib: lib}, nil
}

func (m *Model) MeshCount() int           { return len(m.Raw().Meshes) }
func (m *Model) MaterialCount() int       { return len(m.Raw().Materials) }
func (m *Model) Transform() native.Matrix { return m.Raw().Transform }

func (m *Model) SetTransform(t native.Matrix) { m.Ptr().Transform = t }

// Mesh returns a borrowed view of mesh i.
func (m *Model) Mesh(i int) (*Mesh, error) {
	meshes := m.Raw().Meshes
	if i < 0 || i >= len(meshes) {
		return nil, errors.InvalidArgument(fmt.Sprintf("mesh index %d out of range [0, %d)", i, len(meshes)))
	}
	return &Mesh{Handle: meshKind(m.lib).Unowned(meshes[i]), lib: m.lib}, nil
}

// ModelAnimation is one skeletal animation clip.
type ModelAnimation struct {
	*handle.Handle[native.ModelAnimation]
	lib native.Library
}

// LoadModelAnimations reads every clip in path and checks each against
// model's skeleton. Any mismatch fails the whole load.
func LoadModelAnimations(lib native.Library, model *Model, path string) ([]*ModelAnimation, error) {
	raw := lib.LoadModelAnimations(path)
	if len(raw) == 0 {
		return nil, errors.UnableToLoad("model animation")
	}
	for _, a := range raw {
		if !lib.IsModelAnimationValid(model.Raw(), a) {
			for _, r := range raw {
				lib.UnloadModelAnimation(r)
			}
			return nil, errors.UnableToLoad("model animation")
		}
	}
	kind := animationKind(lib)
	out := make([]*ModelAnimation, len(raw))
	for i, a := range raw {
		out[i] = &ModelAnimation{Handle: kind.Owned(a), lib: lib}
	}
	return out, nil
}

func (a *ModelAnimation) Name() string      { return a.Raw().Name }
func (a *ModelAnimation) FrameCount() int32 { return a.Raw().FrameCount }

// Apply poses model at frame.
func (a *ModelAnimation) Apply(model *Model, frame int32) {
	a.lib.UpdateModelAnimation(model.Raw(), a.Raw(), frame%max(a.FrameCount(), 1))
}
