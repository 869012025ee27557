package useragent

import (
  "fmt"
  "math/rand"
  "strings"

  "github.com/samber/lo"
)

var (
  windowsPlatforms = []string{
    "Windows NT 10.0; Win64; x64",
    "Windows NT 10.0; WOW64",
  }
  macPlatforms = []string{
    "Macintosh; Intel Mac OS X 10_15_7",
    "Macintosh; Intel Mac OS X 13_6_1",
    "Macintosh; Intel Mac OS X 14_4",
  }
  linuxPlatforms = []string{
    "X11; Linux x86_64",
    "X11; Ubuntu; Linux x86_64",
  }
)

type family func(r *rand.Rand) string

var families = []family{
  chrome,
  chrome,
  edge,
  firefox,
  safari,
}

type Generator struct {
  rand *rand.Rand
}

func NewGenerator(seed int64) *Generator {
  return &Generator{
    rand: rand.New(rand.NewSource(seed)),
  }
}

// Generate returns a desktop browser user agent with randomized versions.
func (g *Generator) Generate() string {
  pick := families[g.rand.Intn(len(families))]
  return pick(g.rand)
}

func chrome(r *rand.Rand) string {
  platform := sample(r, lo.Flatten([][]string{windowsPlatforms, macPlatforms, linuxPlatforms}))
  major := r.Intn(12) + 124

  return fmt.Sprintf(
    "Mozilla/5.0 (%s) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/%d.0.%d.%d Safari/537.36",
    platform, major, r.Intn(2000)+6000, r.Intn(200),
  )
}

func edge(r *rand.Rand) string {
  platform := sample(r, lo.Flatten([][]string{windowsPlatforms, macPlatforms}))
  major := r.Intn(12) + 124

  return fmt.Sprintf(
    "Mozilla/5.0 (%s) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/%d.0.0.0 Safari/537.36 Edg/%d.0.%d.%d",
    platform, major, major, r.Intn(2000)+2000, r.Intn(100),
  )
}

func firefox(r *rand.Rand) string {
  platform := sample(r, lo.Flatten([][]string{windowsPlatforms, macPlatforms, linuxPlatforms}))
  major := r.Intn(14) + 120

  // Firefox reports the OS without the WebKit-only tokens.
  platform = strings.Replace(platform, "Intel Mac OS X 10_15_7", "Intel Mac OS X 10.15", 1)

  return fmt.Sprintf(
    "Mozilla/5.0 (%s; rv:%d.0) Gecko/20100101 Firefox/%d.0",
    platform, major, major,
  )
}

func safari(r *rand.Rand) string {
  platform := sample(r, macPlatforms)
  major := r.Intn(3) + 16

  return fmt.Sprintf(
    "Mozilla/5.0 (%s) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/%d.%d Safari/605.1.15",
    platform, major, r.Intn(7),
  )
}

func sample(r *rand.Rand, values []string) string {
  return values[r.Intn(len(values))]
}
