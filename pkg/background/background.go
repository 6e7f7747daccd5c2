package background

import (
	"image"
	"image/color"
	"math"
	"math/rand"
	"sync"
)

// Generator paints stand-in textures for scenery that failed to load.
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

// Layers lists the names a placeholder exists for, with their stock sizes.
var Layers = map[string]image.Point{
	"background": {425, 290},
	"city":       {850, 128},
	"fence":      {850, 51},
	"ground":     {850, 62},
}

// Generate paints the named layer. Unknown names return false.
func (g *Generator) Generate(name string, seed int64) (*image.RGBA, bool) {
	switch name {
	case "city":
		return g.GenerateCity(seed), true
	case "fence":
		return g.GenerateFence(), true
	case "ground":
		return g.GenerateGround(seed), true
	case "background":
		return g.GenerateWorkshop(seed), true
	}
	return nil, false
}

// GenerateCity draws a skyline of dark blocks with lit windows.
func (g *Generator) GenerateCity(seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))

	for x := 0; x < g.Width; {
		w := 20 + rng.Intn(30)
		h := g.Height/3 + rng.Intn(g.Height*2/3)
		shade := uint8(30 + rng.Intn(30))
		g.fill(img, x, g.Height-h, w, h, color.RGBA{shade, shade / 2, shade / 2, 255})

		// windows
		for wy := g.Height - h + 4; wy < g.Height-4; wy += 8 {
			for wx := x + 3; wx < x+w-4; wx += 6 {
				if rng.Float64() < 0.3 {
					g.fill(img, wx, wy, 2, 3, color.RGBA{255, 200, 80, 255})
				}
			}
		}
		x += w + rng.Intn(6)
	}
	return img
}

// GenerateFence draws a chain-link style fence with posts.
func (g *Generator) GenerateFence() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	wire := color.RGBA{140, 140, 150, 255}
	post := color.RGBA{90, 90, 100, 255}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if (x+y)%8 == 0 || (x-y+g.Height*8)%8 == 0 {
				img.Set(x, y, wire)
			}
		}
	}
	for x := 0; x < g.Width; x += 50 {
		g.fill(img, x, 0, 4, g.Height, post)
	}
	return img
}

// GenerateGround draws packed dirt with scattered gravel.
func (g *Generator) GenerateGround(seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))

	g.fill(img, 0, 0, g.Width, g.Height, color.RGBA{92, 61, 30, 255})
	for i := 0; i < g.Width*g.Height/10; i++ {
		x := rng.Intn(g.Width)
		y := rng.Intn(g.Height)
		shade := uint8(60 + rng.Intn(60))
		img.Set(x, y, color.RGBA{shade, shade * 2 / 3, shade / 3, 255})
	}
	return img
}

// GenerateWorkshop draws a brick wall that darkens towards the floor.
func (g *Generator) GenerateWorkshop(seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))

	for y := 0; y < g.Height; y++ {
		fade := 1 - 0.5*math.Min(1, float64(y)/float64(g.Height))
		row := y / 10
		for x := 0; x < g.Width; x++ {
			c := color.RGBA{uint8(120 * fade), uint8(50 * fade), uint8(30 * fade), 255}
			mortar := y%10 == 0 || (x+row%2*10)%20 == 0
			if mortar {
				c = color.RGBA{uint8(70 * fade), uint8(60 * fade), uint8(55 * fade), 255}
			}
			img.Set(x, y, c)
		}
	}
	// soot
	for i := 0; i < g.Width*g.Height/40; i++ {
		img.Set(rng.Intn(g.Width), rng.Intn(g.Height), color.RGBA{30, 20, 15, 255})
	}
	return img
}

func (g *Generator) fill(img *image.RGBA, x, y, w, h int, c color.Color) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			if px >= 0 && px < g.Width && py >= 0 && py < g.Height {
				img.Set(px, py, c)
			}
		}
	}
}

type cacheKey struct {
	name string
	w, h int
}

// Cache memoizes generated layers by name and size.
type Cache struct {
	seed int64

	mu     sync.Mutex
	images map[cacheKey]*image.RGBA
}

// NewCache creates a cache whose layers are painted from seed.
func NewCache(seed int64) *Cache {
	return &Cache{seed: seed, images: make(map[cacheKey]*image.RGBA)}
}

// Placeholder returns the stand-in for name at its stock size.
func (c *Cache) Placeholder(name string) (*image.RGBA, bool) {
	size, ok := Layers[name]
	if !ok {
		return nil, false
	}
	return c.Get(name, size.X, size.Y)
}

// Get returns the layer painted at w by h, generating it on first use.
func (c *Cache) Get(name string, w, h int) (*image.RGBA, bool) {
	key := cacheKey{name, w, h}

	c.mu.Lock()
	defer c.mu.Unlock()
	if img, ok := c.images[key]; ok {
		return img, true
	}
	img, ok := NewGenerator(w, h).Generate(name, c.seed)
	if !ok {
		return nil, false
	}
	c.images[key] = img
	return img, true
}
