package texture

import (
	"go.uber.org/zap"

	"github.com/Faultbox/deskscene/internal/logger"
)

// MaxBoundUnits is the number of texture units the registry may occupy
// concurrently (the hardware-typical minimum). The registry does not
// enforce it; callers are responsible for staying within it.
const MaxBoundUnits = 16

// Wrap selects a texture coordinate wrap mode.
type Wrap int

const (
	// WrapRepeat tiles the texture (the default for scene surfaces).
	WrapRepeat Wrap = iota
	// WrapClampToEdge clamps coordinates to the edge texels.
	WrapClampToEdge
)

// Uploader creates and binds GPU texture objects. The GL implementation
// lives in this package; tests substitute a recording fake.
type Uploader interface {
	Upload(img *Image, wrapS, wrapT Wrap) (uint32, error)
	Bind(slot int32, id uint32)
	Delete(ids []uint32)
}

type entry struct {
	tag string
	id  uint32
}

// Registry loads images into GPU textures and maps tags to {handle, slot}
// pairs. Slots are assigned densely in load order. Lookups are
// first-match: a tag loaded twice keeps resolving to its first entry, the
// later load still occupies its own slot.
type Registry struct {
	uploader Uploader
	entries  []entry
	index    map[string]int
}

// NewRegistry creates an empty registry backed by the given uploader.
func NewRegistry(up Uploader) *Registry {
	return &Registry{
		uploader: up,
		index:    make(map[string]int),
	}
}

// Load decodes the image at path, uploads it to the GPU, and registers it
// under tag at the next slot. A failed decode or upload is logged and
// leaves the registry unchanged; the scene keeps rendering without it.
func (r *Registry) Load(path, tag string, wrapS, wrapT Wrap) bool {
	img, err := DecodeFile(path)
	if err != nil {
		logger.Error("could not load image",
			zap.String("path", path),
			zap.String("tag", tag),
			zap.Error(err),
		)
		return false
	}

	id, err := r.uploader.Upload(img, wrapS, wrapT)
	if err != nil {
		logger.Error("could not upload texture",
			zap.String("path", path),
			zap.String("tag", tag),
			zap.Error(err),
		)
		return false
	}

	slot := len(r.entries)
	r.entries = append(r.entries, entry{tag: tag, id: id})
	if _, exists := r.index[tag]; !exists {
		r.index[tag] = slot
	}

	logger.Info("loaded texture",
		zap.String("path", path),
		zap.String("tag", tag),
		zap.Int("slot", slot),
		zap.Int("width", img.Width),
		zap.Int("height", img.Height),
		zap.Int("channels", img.Channels),
	)
	return true
}

// BindAll binds every registered texture to its slot index. Call once after
// all loads, before any textured draw.
func (r *Registry) BindAll() {
	for i, e := range r.entries {
		r.uploader.Bind(int32(i), e.id)
	}
}

// FindSlot returns the slot index registered for tag.
func (r *Registry) FindSlot(tag string) (int32, bool) {
	i, ok := r.index[tag]
	if !ok {
		return -1, false
	}
	return int32(i), true
}

// FindID returns the GPU texture handle registered for tag.
func (r *Registry) FindID(tag string) (uint32, bool) {
	i, ok := r.index[tag]
	if !ok {
		return 0, false
	}
	return r.entries[i].id, true
}

// Activate binds tag's texture to its slot as the active unit and returns
// the slot. Returns false without touching GL state if tag is unknown.
func (r *Registry) Activate(tag string) (int32, bool) {
	i, ok := r.index[tag]
	if !ok {
		return -1, false
	}
	r.uploader.Bind(int32(i), r.entries[i].id)
	return int32(i), true
}

// Count returns the number of loaded textures.
func (r *Registry) Count() int {
	return len(r.entries)
}

// Destroy frees every GPU texture in the registry.
func (r *Registry) Destroy() {
	if len(r.entries) == 0 {
		return
	}
	ids := make([]uint32, len(r.entries))
	for i, e := range r.entries {
		ids[i] = e.id
	}
	r.uploader.Delete(ids)
	r.entries = nil
	r.index = make(map[string]int)
}
