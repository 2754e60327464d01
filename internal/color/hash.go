package color

import (
	"hash/fnv"
	"math"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// RenderHash renders s in a color derived from its own hash, so that the same
// record id is always printed in the same color.
func RenderHash(s string) string {
	return globalColorer.render(s)
}

func Hash(s string) lipgloss.AdaptiveColor {
	return globalColorer.hash(s)
}

var globalColorer = &colorer{
	colorCache:  map[string]lipgloss.AdaptiveColor{},
	renderCache: map[string]string{},
}

type colorer struct {
	mu          sync.Mutex
	colorCache  map[string]lipgloss.AdaptiveColor
	renderCache map[string]string
}

func (c *colorer) render(s string) string {
	color := c.hash(s)

	c.mu.Lock()
	defer c.mu.Unlock()

	if out, ok := c.renderCache[s]; ok {
		return out
	}
	c.renderCache[s] = lipgloss.NewStyle().Foreground(color).Render(s)
	return c.renderCache[s]
}

func (c *colorer) hash(s string) lipgloss.AdaptiveColor {
	c.mu.Lock()
	defer c.mu.Unlock()

	if color, ok := c.colorCache[s]; ok {
		return color
	}
	hue := 360 * float64(hash(s)) / float64(math.MaxUint32)
	var (
		light = HSL{hue, 100, 70}.RGB().Hex()
		dark  = HSL{hue, 100, 30}.RGB().Hex()
	)
	c.colorCache[s] = lipgloss.AdaptiveColor{
		Dark:  light,
		Light: dark,
	}
	return c.colorCache[s]
}

func hash(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}
