package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDynamic_GetCreatesViaNewFn(t *testing.T) {
	created := 0
	p := NewDynamic(func() []byte {
		created++
		return make([]byte, 0, 64)
	})

	buf := p.Get()
	require.NotNil(t, buf)
	require.Equal(t, 64, cap(buf))
	require.Equal(t, 1, created)
}

func TestDynamic_PutGetRoundTrip(t *testing.T) {
	p := NewDynamic(func() *[64]byte { return new([64]byte) })

	el := p.Get()
	p.Put(el)
	// sync.Pool may or may not return the same object; only validity is
	// guaranteed.
	require.NotNil(t, p.Get())
}
