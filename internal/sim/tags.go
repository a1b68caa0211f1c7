package sim

import "fmt"

// Tag identifies a single hat or body attribute of a ghost.
type Tag int8

// TagKind is the universe a tag belongs to.
type TagKind int

const (
	TagKindUnknown TagKind = iota
	TagKindHat
	TagKindBody
)

func (k TagKind) String() string {
	switch k {
	case TagKindHat:
		return "hat"
	case TagKindBody:
		return "body"
	default:
		return "unknown"
	}
}

// Hat tags occupy [HatTagBase, HatTagBase+HatTagCount), body tags occupy
// [BodyTagBase, BodyTagBase+BodyTagCount). The two ranges never overlap.
const (
	HatTagBase   Tag = 0
	HatTagCount      = 6
	BodyTagBase  Tag = 64
	BodyTagCount     = 6
)

const (
	TagTopHat Tag = HatTagBase + iota
	TagBeanie
	TagCrown
	TagBow
	TagPropeller
	TagWitchHat
)

const (
	TagSheet Tag = BodyTagBase + iota
	TagBlob
	TagWisp
	TagSkull
	TagPumpkin
	TagJelly
)

var hatNames = [HatTagCount]string{"top_hat", "beanie", "crown", "bow", "propeller", "witch_hat"}
var bodyNames = [BodyTagCount]string{"sheet", "blob", "wisp", "skull", "pumpkin", "jelly"}

// Classify reports which universe tag belongs to.
func Classify(tag Tag) TagKind {
	switch {
	case tag >= HatTagBase && tag < HatTagBase+HatTagCount:
		return TagKindHat
	case tag >= BodyTagBase && tag < BodyTagBase+BodyTagCount:
		return TagKindBody
	default:
		return TagKindUnknown
	}
}

// MustClassify panics unless tag belongs to the wanted universe.
func MustClassify(tag Tag, want TagKind) {
	if got := Classify(tag); got != want {
		panic(fmt.Sprintf("sim: tag %d is %s, expected %s", tag, got, want))
	}
}

// HatTags returns every hat tag in ascending order.
func HatTags() []Tag {
	out := make([]Tag, HatTagCount)
	for i := range out {
		out[i] = HatTagBase + Tag(i)
	}
	return out
}

// BodyTags returns every body tag in ascending order.
func BodyTags() []Tag {
	out := make([]Tag, BodyTagCount)
	for i := range out {
		out[i] = BodyTagBase + Tag(i)
	}
	return out
}

func (t Tag) String() string {
	switch Classify(t) {
	case TagKindHat:
		return hatNames[t-HatTagBase]
	case TagKindBody:
		return bodyNames[t-BodyTagBase]
	default:
		return fmt.Sprintf("tag(%d)", int8(t))
	}
}

// Variant is one ghost appearance. Two variants are the same kind of ghost
// only when both tags match.
type Variant struct {
	Body Tag
	Hat  Tag
}

func (v Variant) String() string {
	return v.Body.String() + "/" + v.Hat.String()
}

// sharedDimensions counts how many of the two tag slots v has in common with o.
func (v Variant) sharedDimensions(o Variant) int {
	n := 0
	if v.Body == o.Body {
		n++
	}
	if v.Hat == o.Hat {
		n++
	}
	return n
}
