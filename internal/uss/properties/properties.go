// Package properties is the per-property value grammar catalog for USS.
// Each property maps to a format.Spec built once, at package init, from a
// compact occurrence-range description.
package properties

import (
	"sort"
	"sync"

	"ussls.dev/ussls/internal/uss/format"
)

var buildCatalog = sync.OnceValue(func() map[string]*format.Spec {
	m := map[string]*format.Spec{}

	spec := func(name string, b *format.FlexibleFormatBuilder) {
		m[name] = format.NewSpec(b.Build()...)
	}

	// colors
	spec("color", format.NewBuilder().Required(format.Color))
	spec("background-color", format.NewBuilder().Required(format.Color))
	spec("border-color", format.NewBuilder().Range(1, 4, format.Color))
	spec("border-top-color", format.NewBuilder().Required(format.Color))
	spec("border-right-color", format.NewBuilder().Required(format.Color))
	spec("border-bottom-color", format.NewBuilder().Required(format.Color))
	spec("border-left-color", format.NewBuilder().Required(format.Color))
	spec("-unity-background-image-tint-color", format.NewBuilder().Required(format.Color))

	// box model
	lengthAuto := format.NewEntry(format.Length, format.Keyword("auto"))
	spec("width", format.NewBuilder().Required(lengthAuto...))
	spec("height", format.NewBuilder().Required(lengthAuto...))
	spec("min-width", format.NewBuilder().Required(lengthAuto...))
	spec("min-height", format.NewBuilder().Required(lengthAuto...))
	spec("max-width", format.NewBuilder().Required(lengthAuto...))
	spec("max-height", format.NewBuilder().Required(lengthAuto...))
	spec("margin", format.NewBuilder().Range(1, 4, format.Length, format.Keyword("auto")))
	spec("margin-top", format.NewBuilder().Required(lengthAuto...))
	spec("margin-right", format.NewBuilder().Required(lengthAuto...))
	spec("margin-bottom", format.NewBuilder().Required(lengthAuto...))
	spec("margin-left", format.NewBuilder().Required(lengthAuto...))
	spec("padding", format.NewBuilder().Range(1, 4, format.Length))
	spec("padding-top", format.NewBuilder().Required(format.Length))
	spec("padding-right", format.NewBuilder().Required(format.Length))
	spec("padding-bottom", format.NewBuilder().Required(format.Length))
	spec("padding-left", format.NewBuilder().Required(format.Length))
	spec("top", format.NewBuilder().Required(lengthAuto...))
	spec("right", format.NewBuilder().Required(lengthAuto...))
	spec("bottom", format.NewBuilder().Required(lengthAuto...))
	spec("left", format.NewBuilder().Required(lengthAuto...))

	// borders
	spec("border-width", format.NewBuilder().Range(1, 4, format.Length))
	spec("border-top-width", format.NewBuilder().Required(format.Length))
	spec("border-right-width", format.NewBuilder().Required(format.Length))
	spec("border-bottom-width", format.NewBuilder().Required(format.Length))
	spec("border-left-width", format.NewBuilder().Required(format.Length))
	spec("border-radius", format.NewBuilder().Range(1, 4, format.Length))
	spec("border-top-left-radius", format.NewBuilder().Required(format.Length))
	spec("border-top-right-radius", format.NewBuilder().Required(format.Length))
	spec("border-bottom-left-radius", format.NewBuilder().Required(format.Length))
	spec("border-bottom-right-radius", format.NewBuilder().Required(format.Length))

	// flex layout
	spec("flex-grow", format.NewBuilder().Required(format.Number))
	spec("flex-shrink", format.NewBuilder().Required(format.Number))
	spec("flex-basis", format.NewBuilder().Required(format.Length, format.Keyword("auto")))
	spec("flex", format.NewBuilder().
		Required(format.Number).
		Optional(format.Number).
		Optional(format.Length, format.Keyword("auto")))
	spec("flex-direction", format.NewBuilder().Required(
		format.Keyword("row"), format.Keyword("row-reverse"),
		format.Keyword("column"), format.Keyword("column-reverse")))
	spec("flex-wrap", format.NewBuilder().Required(
		format.Keyword("nowrap"), format.Keyword("wrap"), format.Keyword("wrap-reverse")))
	spec("align-items", format.NewBuilder().Required(
		format.Keyword("auto"), format.Keyword("flex-start"), format.Keyword("flex-end"),
		format.Keyword("center"), format.Keyword("stretch")))
	spec("align-self", format.NewBuilder().Required(
		format.Keyword("auto"), format.Keyword("flex-start"), format.Keyword("flex-end"),
		format.Keyword("center"), format.Keyword("stretch")))
	spec("align-content", format.NewBuilder().Required(
		format.Keyword("flex-start"), format.Keyword("flex-end"),
		format.Keyword("center"), format.Keyword("stretch")))
	spec("justify-content", format.NewBuilder().Required(
		format.Keyword("flex-start"), format.Keyword("flex-end"), format.Keyword("center"),
		format.Keyword("space-between"), format.Keyword("space-around")))
	spec("position", format.NewBuilder().Required(
		format.Keyword("absolute"), format.Keyword("relative")))
	spec("display", format.NewBuilder().Required(
		format.Keyword("flex"), format.Keyword("none")))
	spec("visibility", format.NewBuilder().Required(
		format.Keyword("visible"), format.Keyword("hidden")))
	spec("overflow", format.NewBuilder().Required(
		format.Keyword("visible"), format.Keyword("hidden")))

	// text
	spec("font-size", format.NewBuilder().Required(format.Length))
	spec("letter-spacing", format.NewBuilder().Required(format.Length))
	spec("word-spacing", format.NewBuilder().Required(format.Length))
	spec("white-space", format.NewBuilder().Required(
		format.Keyword("normal"), format.Keyword("nowrap")))
	spec("-unity-font", format.NewBuilder().Required(format.Asset))
	spec("-unity-font-definition", format.NewBuilder().Required(format.Asset))
	spec("-unity-font-style", format.NewBuilder().Required(
		format.Keyword("normal"), format.Keyword("italic"),
		format.Keyword("bold"), format.Keyword("bold-and-italic")))
	spec("-unity-text-align", format.NewBuilder().Required(
		format.Keyword("upper-left"), format.Keyword("upper-center"), format.Keyword("upper-right"),
		format.Keyword("middle-left"), format.Keyword("middle-center"), format.Keyword("middle-right"),
		format.Keyword("lower-left"), format.Keyword("lower-center"), format.Keyword("lower-right")))
	spec("-unity-text-outline-color", format.NewBuilder().Required(format.Color))
	spec("-unity-text-outline-width", format.NewBuilder().Required(format.Length))
	spec("-unity-text-overflow-position", format.NewBuilder().Required(
		format.Keyword("start"), format.Keyword("middle"), format.Keyword("end")))
	spec("text-overflow", format.NewBuilder().Required(
		format.Keyword("clip"), format.Keyword("ellipsis")))
	spec("-unity-paragraph-spacing", format.NewBuilder().Required(format.Length))

	// background
	spec("background-image", format.NewBuilder().Required(format.Asset, format.Keyword("none")))
	spec("-unity-background-scale-mode", format.NewBuilder().Required(
		format.Keyword("stretch-to-fill"), format.Keyword("scale-and-crop"),
		format.Keyword("scale-to-fit")))
	spec("-unity-slice-left", format.NewBuilder().Required(format.Integer))
	spec("-unity-slice-top", format.NewBuilder().Required(format.Integer))
	spec("-unity-slice-right", format.NewBuilder().Required(format.Integer))
	spec("-unity-slice-bottom", format.NewBuilder().Required(format.Integer))
	spec("-unity-slice-scale", format.NewBuilder().Required(format.Number))

	// misc
	spec("opacity", format.NewBuilder().Required(format.Number))
	spec("cursor", format.NewBuilder().Required(format.Asset,
		format.Keyword("arrow"), format.Keyword("text"), format.Keyword("resize-vertical"),
		format.Keyword("resize-horizontal"), format.Keyword("link"), format.Keyword("pan"),
		format.Keyword("move-arrow"), format.Keyword("rotate-arrow"), format.Keyword("scale-arrow"),
		format.Keyword("arrow-plus"), format.Keyword("arrow-minus")))
	spec("rotate", format.NewBuilder().Required(format.Angle, format.Keyword("none")))
	spec("scale", format.NewBuilder().Range(1, 2, format.Number))
	spec("translate", format.NewBuilder().Range(1, 2, format.Length))
	spec("transform-origin", format.NewBuilder().AnyOrder().
		Optional(format.Length, format.Keyword("left"), format.Keyword("center"), format.Keyword("right")).
		Optional(format.Length, format.Keyword("top"), format.Keyword("center"), format.Keyword("bottom")))

	// transitions
	spec("transition-property", format.NewBuilder().Range(1, 4,
		format.PropertyName, format.Keyword("all"), format.Keyword("none")))
	spec("transition-duration", format.NewBuilder().Range(1, 4, format.Time))
	spec("transition-delay", format.NewBuilder().Range(1, 4, format.Time))
	spec("transition-timing-function", format.NewBuilder().Range(1, 4,
		format.Keyword("ease"), format.Keyword("ease-in"), format.Keyword("ease-out"),
		format.Keyword("ease-in-out"), format.Keyword("linear"),
		format.Keyword("ease-in-bounce"), format.Keyword("ease-out-bounce")))

	return m
})

// SpecFor returns the value spec for a property, if the catalog knows it.
func SpecFor(name string) (*format.Spec, bool) {
	s, ok := buildCatalog()[name]
	return s, ok
}

// Names returns all cataloged property names, sorted.
func Names() []string {
	catalog := buildCatalog()
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
