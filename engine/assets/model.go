package assets

import (
	"fmt"
	"math"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/hubastard/groveray/engine/native"
)

// ModelData is the CPU side of a glTF document: one mesh per primitive.
type ModelData struct {
	Meshes       []native.Mesh
	Materials    []native.MaterialMap
	MeshMaterial []int32
	BoneCount    int32
	Animations   []native.ModelAnimation
}

// LoadModel reads a .gltf or .glb file.
func LoadModel(path string) (ModelData, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return ModelData{}, fmt.Errorf("gltf open %q: %w", path, err)
	}

	var out ModelData
	out.Materials = readMaterials(doc)
	for mi, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			m, err := readPrimitive(doc, prim)
			if err != nil {
				return ModelData{}, fmt.Errorf("gltf %q: mesh %d prim %d: %w", path, mi, pi, err)
			}
			mat := int32(-1)
			if prim.Material != nil && *prim.Material < len(out.Materials) {
				mat = int32(*prim.Material)
			}
			out.Meshes = append(out.Meshes, m)
			out.MeshMaterial = append(out.MeshMaterial, mat)
		}
	}
	if len(out.Meshes) == 0 {
		return ModelData{}, fmt.Errorf("gltf %q: no mesh primitives", path)
	}
	if len(doc.Skins) > 0 {
		out.BoneCount = int32(len(doc.Skins[0].Joints))
	}
	out.Animations = readAnimations(doc, out.BoneCount)
	return out, nil
}

// LoadMaterials reads only the material table of a glTF document.
func LoadMaterials(path string) ([]native.MaterialMap, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}
	return readMaterials(doc), nil
}

// LoadAnimations reads the animation clips of a glTF document.
func LoadAnimations(path string) ([]native.ModelAnimation, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}
	var bones int32
	if len(doc.Skins) > 0 {
		bones = int32(len(doc.Skins[0].Joints))
	}
	return readAnimations(doc, bones), nil
}

func readMaterials(doc *gltf.Document) []native.MaterialMap {
	maps := make([]native.MaterialMap, 0, len(doc.Materials))
	for _, gm := range doc.Materials {
		m := native.MaterialMap{Color: native.Color{R: 255, G: 255, B: 255, A: 255}, Value: 1}
		if pbr := gm.PBRMetallicRoughness; pbr != nil {
			cf := pbr.BaseColorFactorOrDefault()
			m.Color = native.Color{R: unit8(cf[0]), G: unit8(cf[1]), B: unit8(cf[2]), A: unit8(cf[3])}
			m.Value = float32(pbr.MetallicFactorOrDefault())
		}
		maps = append(maps, m)
	}
	return maps
}

func readAnimations(doc *gltf.Document, bones int32) []native.ModelAnimation {
	anims := make([]native.ModelAnimation, 0, len(doc.Animations))
	for i, ga := range doc.Animations {
		name := ga.Name
		if name == "" {
			name = fmt.Sprintf("animation_%d", i)
		}
		frames := 0
		for _, s := range ga.Samplers {
			if s.Input < len(doc.Accessors) {
				frames = max(frames, doc.Accessors[s.Input].Count)
			}
		}
		anims = append(anims, native.ModelAnimation{Name: name, BoneCount: bones, FrameCount: int32(frames)})
	}
	return anims
}

func readPrimitive(doc *gltf.Document, prim *gltf.Primitive) (native.Mesh, error) {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return native.Mesh{}, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return native.Mesh{}, fmt.Errorf("positions: %w", err)
	}

	var m native.Mesh
	m.VertexCount = int32(len(positions))
	m.Vertices = make([]float32, 0, len(positions)*3)
	for _, p := range positions {
		m.Vertices = append(m.Vertices, p[0], p[1], p[2])
	}
	if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
		normals, err := modeler.ReadNormal(doc, doc.Accessors[idx], nil)
		if err == nil && len(normals) == len(positions) {
			for _, n := range normals {
				m.Normals = append(m.Normals, n[0], n[1], n[2])
			}
		}
	}
	if idx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		uvs, err := modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
		if err == nil && len(uvs) == len(positions) {
			for _, uv := range uvs {
				m.Texcoords = append(m.Texcoords, uv[0], uv[1])
			}
		}
	}
	if prim.Indices != nil {
		indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return native.Mesh{}, fmt.Errorf("indices: %w", err)
		}
		m.Indices = make([]uint16, len(indices))
		for i, v := range indices {
			if v > math.MaxUint16 {
				return native.Mesh{}, fmt.Errorf("index %d exceeds 16 bits", v)
			}
			m.Indices[i] = uint16(v)
		}
		m.TriangleCount = int32(len(indices) / 3)
	} else {
		m.TriangleCount = m.VertexCount / 3
	}
	return m, nil
}

// ExportMesh writes m as a single-primitive glTF document.
func ExportMesh(m native.Mesh, path string) error {
	if len(m.Vertices) < 3 {
		return fmt.Errorf("export %q: empty mesh", path)
	}
	doc := gltf.NewDocument()
	positions := make([][3]float32, len(m.Vertices)/3)
	for i := range positions {
		positions[i] = [3]float32{m.Vertices[3*i], m.Vertices[3*i+1], m.Vertices[3*i+2]}
	}
	attrs := map[string]int{gltf.POSITION: modeler.WritePosition(doc, positions)}
	if len(m.Normals) == len(m.Vertices) {
		normals := make([][3]float32, len(positions))
		for i := range normals {
			normals[i] = [3]float32{m.Normals[3*i], m.Normals[3*i+1], m.Normals[3*i+2]}
		}
		attrs[gltf.NORMAL] = modeler.WriteNormal(doc, normals)
	}
	if len(m.Texcoords) == len(positions)*2 {
		uvs := make([][2]float32, len(positions))
		for i := range uvs {
			uvs[i] = [2]float32{m.Texcoords[2*i], m.Texcoords[2*i+1]}
		}
		attrs[gltf.TEXCOORD_0] = modeler.WriteTextureCoord(doc, uvs)
	}
	prim := &gltf.Primitive{Attributes: attrs}
	if len(m.Indices) > 0 {
		prim.Indices = gltf.Index(modeler.WriteIndices(doc, m.Indices))
	}
	doc.Meshes = []*gltf.Mesh{{Name: "mesh", Primitives: []*gltf.Primitive{prim}}}
	doc.Nodes = []*gltf.Node{{Name: "mesh", Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	if err := gltf.Save(doc, path); err != nil {
		return fmt.Errorf("gltf save %q: %w", path, err)
	}
	return nil
}

func unit8(f float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, f)) * 255))
}
