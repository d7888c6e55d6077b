package receipt

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bimodalGray(w, h int, left, right uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := left
			if x >= w/2 {
				v = right
			}
			img.Pix[y*img.Stride+x] = v
		}
	}
	return img
}

func TestOtsuThresholdSeparatesBimodalImage(t *testing.T) {
	img := bimodalGray(100, 100, 30, 220)
	th := otsuThreshold(img)
	assert.GreaterOrEqual(t, th, uint8(30))
	assert.Less(t, th, uint8(220))
}

func TestThresholdBinaryProducesTwoLevels(t *testing.T) {
	img := bimodalGray(40, 40, 30, 220)
	bin := thresholdBinary(img, otsuThreshold(img))
	for _, p := range bin.Pix {
		assert.True(t, p == 0 || p == 255, "expected pure black/white, got %d", p)
	}
	assert.Equal(t, uint8(0), bin.Pix[0])
	assert.Equal(t, uint8(255), bin.Pix[39])
}

func TestClosingRemovesIsolatedSpecks(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 20, 20))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	img.Pix[10*img.Stride+10] = 0
	closed := closing(img)
	assert.Equal(t, uint8(255), closed.Pix[10*closed.Stride+10])
}

func TestBilateralFilterPreservesStrongEdges(t *testing.T) {
	img := bimodalGray(60, 60, 0, 255)
	smoothed := bilateralFilter(img, 4, 75, 75)
	// Pixels well inside each half keep their intensity class.
	assert.Less(t, smoothed.Pix[30*smoothed.Stride+10], uint8(60))
	assert.Greater(t, smoothed.Pix[30*smoothed.Stride+50], uint8(200))
}

func TestPreprocessReturnsUpscaledVariants(t *testing.T) {
	src := imaging.New(50, 40, color.NRGBA{255, 255, 255, 255})
	binary, gray := preprocess(src)
	require.NotNil(t, binary)
	require.NotNil(t, gray)
	assert.Equal(t, 100, binary.Bounds().Dx())
	assert.Equal(t, 80, binary.Bounds().Dy())
	assert.Equal(t, 100, gray.Bounds().Dx())
	assert.Equal(t, 80, gray.Bounds().Dy())
	for _, p := range binary.Pix {
		assert.True(t, p == 0 || p == 255)
	}
}
