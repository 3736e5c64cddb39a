package gfx

import "github.com/go-gl/gl/v3.3-core/gl"

// binder saves and restores a GL binding around Begin/End pairs so that
// nested objects don't clobber each other's state.
type binder struct {
	restoreLoc uint32
	bindFunc   func(uint32)

	obj  uint32
	prev []uint32
}

func (b *binder) bind() *binder {
	var prev int32
	gl.GetIntegerv(b.restoreLoc, &prev)
	b.prev = append(b.prev, uint32(prev))
	if uint32(prev) != b.obj {
		b.bindFunc(b.obj)
	}
	return b
}

func (b *binder) restore() *binder {
	i := len(b.prev) - 1
	if b.prev[i] != b.obj {
		b.bindFunc(b.prev[i])
	}
	b.prev = b.prev[:i]
	return b
}
