package hal

// stubFlash backs boards without a usable persistent memory region.
type stubFlash struct{}

func (stubFlash) SizeBytes() uint32       { return 0 }
func (stubFlash) EraseBlockBytes() uint32 { return 0 }

func (stubFlash) ReadAt(_ []byte, _ uint32) (int, error) {
	return 0, ErrNotImplemented
}

func (stubFlash) WriteAt(_ []byte, _ uint32) (int, error) {
	return 0, ErrNotImplemented
}

func (stubFlash) Erase(_, _ uint32) error {
	return ErrNotImplemented
}
