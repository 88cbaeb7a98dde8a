package arplace

import "go.uber.org/zap"

// AssetProvider exposes the currently loaded, not yet placed asset template.
// A nil result means no asset is ready and placement is disabled.
type AssetProvider interface {
	LoadedAsset() *Node
}

// AssetSlot holds one loaded asset template. Templates are prepared when
// set: hidden, tagged placeable across the hierarchy, and given colliders.
type AssetSlot struct {
	template *Node
	logger   *zap.Logger
}

// NewAssetSlot creates an empty slot. A nil logger discards diagnostics.
func NewAssetSlot(logger *zap.Logger) *AssetSlot {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssetSlot{logger: logger}
}

// Set prepares template and makes it the loaded asset. The previously loaded
// template, if any, is disposed.
func (a *AssetSlot) Set(template *Node) {
	if a.template != nil && a.template != template {
		a.template.Dispose()
	}
	a.template = template
	if template == nil {
		return
	}

	template.Visible = false
	tagHierarchy(template, TagPlaceable)

	added := 0
	for _, e := range flattenHierarchy(template, nil) {
		n := e.node
		if n.Bounds != nil && n.Collider == nil {
			n.Collider = BoxColliderFromBounds(*n.Bounds)
			added++
		}
	}
	switch {
	case added > 0:
		a.logger.Info("asset loaded", zap.String("name", template.Name), zap.Int("colliders", added))
	case findCollider(template) == nil:
		template.Collider = defaultBoxCollider
		a.logger.Warn("asset has no render geometry; added box collider", zap.String("name", template.Name))
	default:
		a.logger.Info("asset loaded", zap.String("name", template.Name))
	}
}

// Clear disposes the loaded template.
func (a *AssetSlot) Clear() {
	a.Set(nil)
}

// LoadedAsset returns the prepared template, or nil if none is loaded.
func (a *AssetSlot) LoadedAsset() *Node {
	if a.template == nil || a.template.IsDisposed() {
		return nil
	}
	return a.template
}
