// Package style parses Tailwind-style utility-class strings into layout
// options, so trees can be declared with compact class lists instead of long
// option chains. Only the layout subset is understood: direction, gap,
// padding, flex weight, alignment and explicit sizes. Unknown classes are
// ignored.
package style

import "github.com/agiangrant/flexlay"

// Props is a partial set of layout properties. Unset fields are nil, so
// parsed props can be merged over defaults without clobbering them.
type Props struct {
	Direction *flexlay.Direction

	Gap *float32

	PaddingTop    *float32
	PaddingRight  *float32
	PaddingBottom *float32
	PaddingLeft   *float32

	FlexGrow *float32

	JustifyContent *flexlay.MainAlign
	AlignItems     *flexlay.CrossAlign

	Width  *float32
	Height *float32
}

// Merge returns p with any set field of other overriding it.
func (p Props) Merge(other Props) Props {
	if other.Direction != nil {
		p.Direction = other.Direction
	}
	if other.Gap != nil {
		p.Gap = other.Gap
	}
	if other.PaddingTop != nil {
		p.PaddingTop = other.PaddingTop
	}
	if other.PaddingRight != nil {
		p.PaddingRight = other.PaddingRight
	}
	if other.PaddingBottom != nil {
		p.PaddingBottom = other.PaddingBottom
	}
	if other.PaddingLeft != nil {
		p.PaddingLeft = other.PaddingLeft
	}
	if other.FlexGrow != nil {
		p.FlexGrow = other.FlexGrow
	}
	if other.JustifyContent != nil {
		p.JustifyContent = other.JustifyContent
	}
	if other.AlignItems != nil {
		p.AlignItems = other.AlignItems
	}
	if other.Width != nil {
		p.Width = other.Width
	}
	if other.Height != nil {
		p.Height = other.Height
	}
	return p
}

// Options converts the set properties into builder options.
func (p Props) Options() []flexlay.Option {
	var opts []flexlay.Option
	if p.Direction != nil {
		opts = append(opts, flexlay.WithDirection(*p.Direction))
	}
	if p.Gap != nil {
		opts = append(opts, flexlay.Gap(*p.Gap))
	}
	if p.PaddingTop != nil || p.PaddingRight != nil || p.PaddingBottom != nil || p.PaddingLeft != nil {
		var pad flexlay.Padding
		if p.PaddingLeft != nil {
			pad.Left = *p.PaddingLeft
		}
		if p.PaddingTop != nil {
			pad.Top = *p.PaddingTop
		}
		if p.PaddingRight != nil {
			pad.Right = *p.PaddingRight
		}
		if p.PaddingBottom != nil {
			pad.Bottom = *p.PaddingBottom
		}
		opts = append(opts, flexlay.WithPadding(pad))
	}
	if p.FlexGrow != nil {
		opts = append(opts, flexlay.Grow(*p.FlexGrow))
	}
	if p.JustifyContent != nil {
		opts = append(opts, flexlay.JustifyContent(*p.JustifyContent))
	}
	if p.AlignItems != nil {
		opts = append(opts, flexlay.AlignItems(*p.AlignItems))
	}
	if p.Width != nil {
		opts = append(opts, flexlay.Width(*p.Width))
	}
	if p.Height != nil {
		opts = append(opts, flexlay.Height(*p.Height))
	}
	return opts
}

// Classes parses a class string and returns the equivalent builder options:
//
//	b.Row("header", kids, style.Classes("gap-2 p-4 justify-center")...)
func Classes(classes string) []flexlay.Option {
	return Parse(classes).Options()
}
