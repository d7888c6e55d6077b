package receipt

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// preprocess normalizes a decoded receipt photo into the two OCR-ready
// variants: a high-contrast binarized image and the pre-threshold grayscale.
// Some receipts lose faint text (thin-ink totals) under binarization, so
// both variants are recognized downstream.
func preprocess(src image.Image) (binary, gray *image.Gray) {
	g := imaging.Grayscale(src)
	b := g.Bounds()
	// 2x upscale raises effective character resolution for small-font receipts.
	up := imaging.Resize(g, b.Dx()*2, b.Dy()*2, imaging.CatmullRom)
	gray = bilateralFilter(toGray(up), 4, 75, 75)
	binary = closing(thresholdBinary(gray, otsuThreshold(gray)))
	return binary, gray
}

// toGray flattens any image into a zero-origin single-channel raster.
func toGray(src image.Image) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bb, _ := src.At(b.Min.X+x, b.Min.Y+y).RGBA()
			out.Pix[y*out.Stride+x] = uint8((r + g + bb) / 3 >> 8)
		}
	}
	return out
}

// bilateralFilter smooths sensor/print noise while preserving glyph edges:
// each pixel is replaced by a weighted mean of its neighborhood where the
// weight falls off with both spatial distance and intensity difference.
func bilateralFilter(img *image.Gray, radius int, sigmaSpace, sigmaColor float64) *image.Gray {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))

	size := 2*radius + 1
	spatial := make([]float64, size*size)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			d2 := float64(dx*dx + dy*dy)
			spatial[(dy+radius)*size+(dx+radius)] = math.Exp(-d2 / (2 * sigmaSpace * sigmaSpace))
		}
	}
	intensity := make([]float64, 256)
	for d := 0; d < 256; d++ {
		intensity[d] = math.Exp(-float64(d*d) / (2 * sigmaColor * sigmaColor))
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			center := img.Pix[y*img.Stride+x]
			var sum, norm float64
			for dy := -radius; dy <= radius; dy++ {
				y2 := y + dy
				if y2 < 0 || y2 >= h {
					continue
				}
				for dx := -radius; dx <= radius; dx++ {
					x2 := x + dx
					if x2 < 0 || x2 >= w {
						continue
					}
					v := img.Pix[y2*img.Stride+x2]
					diff := int(v) - int(center)
					if diff < 0 {
						diff = -diff
					}
					wgt := spatial[(dy+radius)*size+(dx+radius)] * intensity[diff]
					sum += wgt * float64(v)
					norm += wgt
				}
			}
			out.Pix[y*out.Stride+x] = uint8(sum/norm + 0.5)
		}
	}
	return out
}

// otsuThreshold picks the global threshold maximizing between-class
// intensity variance over the histogram.
func otsuThreshold(img *image.Gray) uint8 {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	var hist [256]int
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			hist[img.Pix[y*img.Stride+x]]++
		}
	}
	total := float64(w * h)
	var sum float64
	for i, n := range hist {
		sum += float64(i) * float64(n)
	}
	var sumB, wB float64
	best := -1.0
	bestT := 0
	for t := 0; t < 256; t++ {
		wB += float64(hist[t])
		if wB == 0 {
			continue
		}
		wF := total - wB
		if wF == 0 {
			break
		}
		sumB += float64(t) * float64(hist[t])
		mB := sumB / wB
		mF := (sum - sumB) / wF
		between := wB * wF * (mB - mF) * (mB - mF)
		if between > best {
			best = between
			bestT = t
		}
	}
	return uint8(bestT)
}

// thresholdBinary maps values above the threshold to white, the rest to black.
func thresholdBinary(img *image.Gray, t uint8) *image.Gray {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var v uint8
			if img.Pix[y*img.Stride+x] > t {
				v = 255
			}
			out.Pix[y*out.Stride+x] = v
		}
	}
	return out
}

// closing applies a 2x2 dilate-then-erode to reconnect characters broken by
// thresholding.
func closing(img *image.Gray) *image.Gray {
	return erode2x2(dilate2x2(img))
}

func dilate2x2(img *image.Gray) *image.Gray {
	return morph2x2(img, false)
}

func erode2x2(img *image.Gray) *image.Gray {
	return morph2x2(img, true)
}

func morph2x2(img *image.Gray, min bool) *image.Gray {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))
	offsets := [][2]int{{0, 0}, {-1, 0}, {0, -1}, {-1, -1}}
	if min {
		offsets = [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := img.Pix[y*img.Stride+x]
			for _, d := range offsets {
				x2 := x + d[0]
				y2 := y + d[1]
				if x2 < 0 || y2 < 0 || x2 >= w || y2 >= h {
					continue
				}
				p := img.Pix[y2*img.Stride+x2]
				if min {
					if p < v {
						v = p
					}
				} else if p > v {
					v = p
				}
			}
			out.Pix[y*out.Stride+x] = v
		}
	}
	return out
}
