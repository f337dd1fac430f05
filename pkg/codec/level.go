package codec

import (
	"fmt"
	"sort"
)

// Format identifies which game wrote a level.
type Format int

const (
	// FormatElma is the primary format, tagged "POT14".
	FormatElma Format = iota
	// FormatAcross is the legacy format, tagged "POT06".
	FormatAcross
)

const formatTagSize = 5

var formatTags = map[Format]string{
	FormatElma:   "POT14",
	FormatAcross: "POT06",
}

// Tag returns the 5-byte file tag for the format.
func (f Format) Tag() string {
	return formatTags[f]
}

func (f Format) String() string {
	switch f {
	case FormatElma:
		return "Elma"
	case FormatAcross:
		return "Across"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

func formatFromTag(tag []byte) (Format, bool) {
	for f, t := range formatTags {
		if string(tag) == t {
			return f, true
		}
	}
	return 0, false
}

// Position is a point in level coordinates.
type Position struct {
	X float64
	Y float64
}

// ObjectType is the kind of a placed object. The values are the stored codes.
type ObjectType int32

const (
	ObjectExit   ObjectType = 1
	ObjectApple  ObjectType = 2
	ObjectKiller ObjectType = 3
	ObjectPlayer ObjectType = 4
)

func (t ObjectType) valid() bool {
	return t >= ObjectExit && t <= ObjectPlayer
}

func (t ObjectType) String() string {
	switch t {
	case ObjectExit:
		return "exit"
	case ObjectApple:
		return "apple"
	case ObjectKiller:
		return "killer"
	case ObjectPlayer:
		return "player"
	default:
		return fmt.Sprintf("ObjectType(%d)", int32(t))
	}
}

// Gravity is the gravity change applied when an apple is taken.
type Gravity int32

const (
	GravityNone Gravity = iota
	GravityUp
	GravityDown
	GravityLeft
	GravityRight
)

// Clip controls how a picture is clipped against the ground.
// Codes other than the three below are kept as read.
type Clip int32

const (
	ClipUnclipped Clip = iota
	ClipGround
	ClipSky
)

func (c Clip) String() string {
	switch c {
	case ClipUnclipped:
		return "unclipped"
	case ClipGround:
		return "ground"
	case ClipSky:
		return "sky"
	default:
		return fmt.Sprintf("Clip(%d)", int32(c))
	}
}

// Polygon is a closed ground or grass outline. The last vertex connects to
// the first implicitly; no closing vertex is stored.
type Polygon struct {
	Grass    bool
	Vertices []Position
}

// Object is a placed exit, apple, killer or player start.
type Object struct {
	Position  Position
	Type      ObjectType
	Gravity   Gravity // apples only
	Animation int32   // apples only, 1 to 9
}

// Picture is a decorative picture or a texture with a mask.
type Picture struct {
	Name     string
	Texture  string
	Mask     string
	Position Position
	Distance int32
	Clip     Clip
}

// Top10Entry is one best time. Name2 is only set for multi-player times.
type Top10Entry struct {
	Name1 string
	Name2 string
	Time  int32 // hundredths of a second
}

// TimeString formats the time as mm:ss,hh.
func (e Top10Entry) TimeString() string {
	t := e.Time
	if t < 0 {
		t = 0
	}
	return fmt.Sprintf("%02d:%02d,%02d", t/6000, (t/100)%60, t%100)
}

// Level is a decoded level file.
type Level struct {
	Format      Format
	Link        int32
	Integrity   [4]float64
	Name        string
	LGR         string
	Ground      string
	Sky         string
	Polygons    []Polygon
	Objects     []Object
	Pictures    []Picture
	Top10Single []Top10Entry
	Top10Multi  []Top10Entry
}

// NewLevel returns an empty level with the game's default names.
func NewLevel() *Level {
	return &Level{
		Format:      FormatElma,
		LGR:         "default",
		Ground:      "ground",
		Sky:         "sky",
		Polygons:    []Polygon{},
		Objects:     []Object{},
		Pictures:    []Picture{},
		Top10Single: []Top10Entry{},
		Top10Multi:  []Top10Entry{},
	}
}

// Clone returns a deep copy of l.
func (l *Level) Clone() *Level {
	c := *l
	c.Polygons = make([]Polygon, len(l.Polygons))
	for i, p := range l.Polygons {
		c.Polygons[i] = Polygon{Grass: p.Grass, Vertices: append([]Position{}, p.Vertices...)}
	}
	c.Objects = append([]Object{}, l.Objects...)
	c.Pictures = append([]Picture{}, l.Pictures...)
	c.Top10Single = append([]Top10Entry{}, l.Top10Single...)
	c.Top10Multi = append([]Top10Entry{}, l.Top10Multi...)
	return &c
}

// Summary holds element counts of a level.
type Summary struct {
	Polygons      int
	GrassPolygons int
	Vertices      int
	Objects       map[ObjectType]int
	Pictures      int
}

// Summary counts the level's elements.
func (l *Level) Summary() Summary {
	s := Summary{
		Polygons: len(l.Polygons),
		Objects:  make(map[ObjectType]int),
		Pictures: len(l.Pictures),
	}
	for _, p := range l.Polygons {
		if p.Grass {
			s.GrassPolygons++
		}
		s.Vertices += len(p.Vertices)
	}
	for _, o := range l.Objects {
		s.Objects[o.Type]++
	}
	return s
}

// BestTimes returns a copy of the single or multi-player list sorted by
// time. The stored order is left untouched.
func (l *Level) BestTimes(multi bool) []Top10Entry {
	src := l.Top10Single
	if multi {
		src = l.Top10Multi
	}
	out := append([]Top10Entry{}, src...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}
