package imagestore

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = 0xcc
	}
	img.Set(2, 2, color.Black)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestStore_PutFetchRoundTrip(t *testing.T) {
	s := New()
	data := pngBytes(t)

	id, err := s.Put("photo.png", data)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	assert.True(t, s.Exists(id))
	assert.Equal(t, "photo.png", s.Name(id))
	assert.Equal(t, 1, s.Len())

	got, err := s.Fetch(id)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestStore_UniqueHandles(t *testing.T) {
	s := New()
	data := pngBytes(t)

	a, err := s.Put("a.png", data)
	require.NoError(t, err)
	b, err := s.Put("b.png", data)
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "every upload gets its own handle")
	assert.Equal(t, 2, s.Len())
}

func TestStore_RejectsNonImageData(t *testing.T) {
	s := New()

	_, err := s.Put("notes.txt", []byte("plain text, not pixels"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Equal(t, 0, s.Len())
}

func TestStore_FetchUnknownHandle(t *testing.T) {
	s := New()

	_, err := s.Fetch("no-such-handle")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, s.Exists("no-such-handle"))
}

func TestStore_Evict(t *testing.T) {
	s := New()
	id, err := s.Put("x.png", pngBytes(t))
	require.NoError(t, err)

	s.Evict(id)

	assert.False(t, s.Exists(id))
	assert.Empty(t, s.Name(id))
	s.Evict("unknown") // no-op
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := New()
	data := pngBytes(t)
	seed, err := s.Put("seed.png", data)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, err := s.Put("w.png", data); err != nil {
				t.Errorf("concurrent Put: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if _, err := s.Fetch(seed); err != nil {
				t.Errorf("concurrent Fetch: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 17, s.Len())
}
