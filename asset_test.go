package arplace

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestAssetSlotPreparesTemplate(t *testing.T) {
	slot := NewAssetSlot(nil)
	root := NewContainer("lamp")
	shade := NewMeshNode("shade", Bounds{Max: mgl64.Vec3{1, 1, 1}})
	base := NewMeshNode("base", Bounds{Max: mgl64.Vec3{1, 0.2, 1}})
	root.AddChild(shade)
	root.AddChild(base)

	slot.Set(root)

	require.Same(t, root, slot.LoadedAsset())
	assert.False(t, root.Visible, "template is hidden")
	for _, n := range []*Node{root, shade, base} {
		assert.Equal(t, TagPlaceable, n.Tag, n.Name)
	}
	assert.Equal(t, BoxColliderFromBounds(*shade.Bounds), shade.Collider)
	assert.Equal(t, BoxColliderFromBounds(*base.Bounds), base.Collider)
	assert.Nil(t, root.Collider, "containers get no collider")
}

func TestAssetSlotKeepsExistingCollider(t *testing.T) {
	slot := NewAssetSlot(nil)
	n := NewMeshNode("ball", Bounds{Max: mgl64.Vec3{1, 1, 1}})
	sphere := SphereCollider{Center: mgl64.Vec3{0.5, 0.5, 0.5}, Radius: 0.5}
	n.Collider = sphere
	slot.Set(n)
	assert.Equal(t, sphere, n.Collider)
}

func TestAssetSlotNoGeometryWarns(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	slot := NewAssetSlot(zap.New(core))
	empty := NewContainer("marker")
	slot.Set(empty)

	assert.Equal(t, defaultBoxCollider, empty.Collider)
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestAssetSlotReplaceDisposesPrevious(t *testing.T) {
	slot := NewAssetSlot(nil)
	a := NewMeshNode("a", Bounds{})
	b := NewMeshNode("b", Bounds{})
	slot.Set(a)
	slot.Set(a) // same template is kept
	assert.False(t, a.IsDisposed())

	slot.Set(b)
	assert.True(t, a.IsDisposed())
	assert.Same(t, b, slot.LoadedAsset())

	slot.Clear()
	assert.True(t, b.IsDisposed())
	assert.Nil(t, slot.LoadedAsset())
}

func TestAssetSlotDisposedTemplate(t *testing.T) {
	slot := NewAssetSlot(nil)
	n := NewMeshNode("n", Bounds{})
	slot.Set(n)
	n.Dispose()
	assert.Nil(t, slot.LoadedAsset())
}

func TestEnsureCollider(t *testing.T) {
	t.Run("keeps existing", func(t *testing.T) {
		root := NewContainer("root")
		child := NewContainer("child")
		child.Collider = SphereCollider{Radius: 1}
		root.AddChild(child)
		ensureCollider(root)
		assert.Nil(t, root.Collider)
	})
	t.Run("fits renderable", func(t *testing.T) {
		root := NewContainer("root")
		mesh := NewMeshNode("mesh", Bounds{Min: mgl64.Vec3{-1, 0, -1}, Max: mgl64.Vec3{1, 2, 1}})
		root.AddChild(mesh)
		ensureCollider(root)
		assert.Equal(t, BoxCollider{Center: mgl64.Vec3{0, 1, 0}, Size: mgl64.Vec3{2, 2, 2}}, mesh.Collider)
	})
	t.Run("default box", func(t *testing.T) {
		root := NewContainer("root")
		ensureCollider(root)
		assert.Equal(t, defaultBoxCollider, root.Collider)
	})
}
