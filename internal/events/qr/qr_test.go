package qr

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareURL(t *testing.T) {
	g := NewGenerator("http://localhost:3000")

	assert.Equal(t, "http://localhost:3000/event/7", g.ShareURL(7))
}

func TestGenerateShareQRProducesPNG(t *testing.T) {
	g := NewGenerator("http://localhost:3000")

	png, err := g.GenerateShareQR(7)
	require.NoError(t, err)
	require.NotEmpty(t, png)

	// PNG magic bytes
	assert.True(t, bytes.HasPrefix(png, []byte{0x89, 'P', 'N', 'G'}), "output should be a PNG image")
}
