package texture

import (
	"image"
	"image/color"
	"os"
	"testing"

	"github.com/Faultbox/deskscene/internal/logger"
)

func TestMain(m *testing.M) {
	// Registry methods log through the global logger.
	if err := logger.InitWithOptions(logger.Options{Level: "error", Console: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type bindCall struct {
	slot int32
	id   uint32
}

// fakeUploader records uploads and binds without touching GL.
type fakeUploader struct {
	nextID  uint32
	binds   []bindCall
	deleted []uint32
}

func (f *fakeUploader) Upload(img *Image, wrapS, wrapT Wrap) (uint32, error) {
	f.nextID++
	return f.nextID, nil
}

func (f *fakeUploader) Bind(slot int32, id uint32) {
	f.binds = append(f.binds, bindCall{slot, id})
}

func (f *fakeUploader) Delete(ids []uint32) {
	f.deleted = append(f.deleted, ids...)
}

func testImagePath(t *testing.T, dir, name string) string {
	t.Helper()
	return writePNG(t, dir, name, image.NewGray(image.Rect(0, 0, 2, 2)))
}

func TestLoadAssignsSlotsInOrder(t *testing.T) {
	up := &fakeUploader{}
	r := NewRegistry(up)
	dir := t.TempDir()

	tags := []string{"glass", "wood", "desk"}
	for i, tag := range tags {
		if !r.Load(testImagePath(t, dir, tag+".png"), tag, WrapRepeat, WrapRepeat) {
			t.Fatalf("load %d failed", i)
		}
	}

	if r.Count() != 3 {
		t.Fatalf("expected 3 textures, got %d", r.Count())
	}
	for i, tag := range tags {
		slot, ok := r.FindSlot(tag)
		if !ok || slot != int32(i) {
			t.Errorf("FindSlot(%q) = (%d, %v), want (%d, true)", tag, slot, ok, i)
		}
		id, ok := r.FindID(tag)
		if !ok || id != uint32(i+1) {
			t.Errorf("FindID(%q) = (%d, %v), want (%d, true)", tag, id, ok, i+1)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	up := &fakeUploader{}
	r := NewRegistry(up)

	if r.Load("does/not/exist.png", "ghost", WrapRepeat, WrapRepeat) {
		t.Error("expected load failure for missing file")
	}
	if r.Count() != 0 {
		t.Errorf("registry should be unchanged, got %d entries", r.Count())
	}
	if _, ok := r.FindSlot("ghost"); ok {
		t.Error("failed load must not register a tag")
	}
}

func TestLoadUnsupportedChannels(t *testing.T) {
	up := &fakeUploader{}
	r := NewRegistry(up)
	dir := t.TempDir()

	// Paletted PNG decodes to an unsupported layout.
	img := image.NewPaletted(image.Rect(0, 0, 2, 2), color.Palette{color.White, color.Black})
	path := writePNG(t, dir, "pal.png", img)

	if r.Load(path, "pal", WrapRepeat, WrapRepeat) {
		t.Error("expected load failure for unsupported channel layout")
	}
	if r.Count() != 0 {
		t.Errorf("registry should be unchanged, got %d entries", r.Count())
	}
}

func TestDuplicateTagShadows(t *testing.T) {
	up := &fakeUploader{}
	r := NewRegistry(up)
	dir := t.TempDir()

	r.Load(testImagePath(t, dir, "a.png"), "glass", WrapRepeat, WrapRepeat)
	r.Load(testImagePath(t, dir, "b.png"), "glass", WrapRepeat, WrapRepeat)

	// Both loads occupy slots, lookups keep resolving to the first.
	if r.Count() != 2 {
		t.Fatalf("expected 2 entries, got %d", r.Count())
	}
	slot, ok := r.FindSlot("glass")
	if !ok || slot != 0 {
		t.Errorf("FindSlot after duplicate = (%d, %v), want (0, true)", slot, ok)
	}
	id, _ := r.FindID("glass")
	if id != 1 {
		t.Errorf("FindID after duplicate = %d, want first id 1", id)
	}
}

func TestBindAll(t *testing.T) {
	up := &fakeUploader{}
	r := NewRegistry(up)
	dir := t.TempDir()

	r.Load(testImagePath(t, dir, "a.png"), "a", WrapRepeat, WrapRepeat)
	r.Load(testImagePath(t, dir, "b.png"), "b", WrapClampToEdge, WrapClampToEdge)
	r.BindAll()

	want := []bindCall{{0, 1}, {1, 2}}
	if len(up.binds) != len(want) {
		t.Fatalf("expected %d binds, got %d", len(want), len(up.binds))
	}
	for i, b := range want {
		if up.binds[i] != b {
			t.Errorf("bind %d = %+v, want %+v", i, up.binds[i], b)
		}
	}
}

func TestActivateUnknownTag(t *testing.T) {
	up := &fakeUploader{}
	r := NewRegistry(up)

	if _, ok := r.Activate("missing"); ok {
		t.Error("Activate on unknown tag should report not found")
	}
	if len(up.binds) != 0 {
		t.Error("Activate on unknown tag must not bind anything")
	}
}

func TestDestroy(t *testing.T) {
	up := &fakeUploader{}
	r := NewRegistry(up)
	dir := t.TempDir()

	r.Load(testImagePath(t, dir, "a.png"), "a", WrapRepeat, WrapRepeat)
	r.Load(testImagePath(t, dir, "b.png"), "b", WrapRepeat, WrapRepeat)
	r.Destroy()

	if len(up.deleted) != 2 {
		t.Errorf("expected 2 deleted textures, got %d", len(up.deleted))
	}
	if r.Count() != 0 {
		t.Errorf("registry should be empty after Destroy, got %d", r.Count())
	}
}
