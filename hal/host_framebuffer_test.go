//go:build !tinygo

package hal

import "testing"

func TestHostFramebuffer_SnapshotHonorsScroll(t *testing.T) {
	fb := newHostFramebuffer(1, 3)
	copy(fb.Buffer(), []byte{0, 0, 1, 1, 2, 2})

	dst := make([]byte, 6)
	fb.snapshotRGB565(dst)
	if string(dst) != string([]byte{0, 0, 1, 1, 2, 2}) {
		t.Fatalf("unscrolled snapshot=%v", dst)
	}

	fb.SetScroll(1)
	fb.snapshotRGB565(dst)
	if string(dst) != string([]byte{1, 1, 2, 2, 0, 0}) {
		t.Fatalf("scroll=1 snapshot=%v; want rows 1,2,0", dst)
	}

	fb.SetScroll(-1)
	fb.snapshotRGB565(dst)
	if string(dst) != string([]byte{2, 2, 0, 0, 1, 1}) {
		t.Fatalf("scroll=-1 snapshot=%v; want rows 2,0,1", dst)
	}
}
