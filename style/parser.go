package style

import (
	"strconv"
	"strings"

	"github.com/agiangrant/flexlay"
)

// Parse converts a space-separated utility-class string into Props.
// Later classes win over earlier ones. Classes that are not part of the
// layout subset (colors, typography, effects) are silently ignored.
//
//	Parse("flex-row gap-2 p-4 grow justify-center items-stretch w-24")
func Parse(classes string) Props {
	var p Props
	for _, class := range strings.Fields(classes) {
		applyClass(&p, class)
	}
	return p
}

func applyClass(p *Props, class string) {
	switch class {
	case "flex":
		// Display marker, carried for compatibility with class lists written
		// against CSS. Nodes are always flex here.
		return
	case "flex-row":
		p.Direction = dirPtr(flexlay.Row)
		return
	case "flex-row-reverse":
		p.Direction = dirPtr(flexlay.RowReverse)
		return
	case "flex-col":
		p.Direction = dirPtr(flexlay.Column)
		return
	case "flex-col-reverse":
		p.Direction = dirPtr(flexlay.ColumnReverse)
		return
	case "grow":
		p.FlexGrow = floatPtr(1)
		return
	}

	if align, ok := strings.CutPrefix(class, "justify-"); ok {
		applyJustify(p, align)
		return
	}
	if align, ok := strings.CutPrefix(class, "items-"); ok {
		applyItems(p, align)
		return
	}

	prefix, suffix, ok := splitClass(class)
	if !ok {
		return
	}
	switch prefix {
	case "grow":
		if v := resolveValue(suffix, false); v != nil {
			p.FlexGrow = v
		}
	case "gap":
		if v := resolveValue(suffix, true); v != nil {
			p.Gap = v
		}
	case "p":
		if v := resolveValue(suffix, true); v != nil {
			p.PaddingTop, p.PaddingRight = v, v
			p.PaddingBottom, p.PaddingLeft = v, v
		}
	case "px":
		if v := resolveValue(suffix, true); v != nil {
			p.PaddingLeft, p.PaddingRight = v, v
		}
	case "py":
		if v := resolveValue(suffix, true); v != nil {
			p.PaddingTop, p.PaddingBottom = v, v
		}
	case "pt":
		p.PaddingTop = pickValue(resolveValue(suffix, true), p.PaddingTop)
	case "pr":
		p.PaddingRight = pickValue(resolveValue(suffix, true), p.PaddingRight)
	case "pb":
		p.PaddingBottom = pickValue(resolveValue(suffix, true), p.PaddingBottom)
	case "pl":
		p.PaddingLeft = pickValue(resolveValue(suffix, true), p.PaddingLeft)
	case "w":
		p.Width = pickValue(resolveValue(suffix, true), p.Width)
	case "h":
		p.Height = pickValue(resolveValue(suffix, true), p.Height)
	}
}

func applyJustify(p *Props, align string) {
	switch align {
	case "start":
		p.JustifyContent = mainPtr(flexlay.MainStart)
	case "end":
		p.JustifyContent = mainPtr(flexlay.MainEnd)
	case "center":
		p.JustifyContent = mainPtr(flexlay.MainCenter)
	case "between":
		p.JustifyContent = mainPtr(flexlay.MainSpaceBetween)
	case "around":
		p.JustifyContent = mainPtr(flexlay.MainSpaceAround)
	case "evenly":
		p.JustifyContent = mainPtr(flexlay.MainSpaceEvenly)
	}
}

func applyItems(p *Props, align string) {
	switch align {
	case "start":
		p.AlignItems = crossPtr(flexlay.CrossStart)
	case "end":
		p.AlignItems = crossPtr(flexlay.CrossEnd)
	case "center":
		p.AlignItems = crossPtr(flexlay.CrossCenter)
	case "stretch":
		p.AlignItems = crossPtr(flexlay.CrossStretch)
	}
}

// splitClass separates "pt-1.5" into ("pt", "1.5"). The suffix may also be an
// arbitrary value ("w-[137]") or a named size ("w-panel").
func splitClass(class string) (prefix, suffix string, ok bool) {
	i := strings.Index(class, "-")
	if i <= 0 || i == len(class)-1 {
		return "", "", false
	}
	return class[:i], class[i+1:], true
}

// resolveValue turns a class suffix into a concrete value. Arbitrary values
// "[2.5]" are taken literally; plain numbers go through the theme's spacing
// scale when scaled is set; anything else is looked up in the theme's named
// sizes. Nil means the suffix did not resolve and the class is ignored.
func resolveValue(suffix string, scaled bool) *float32 {
	theme := CurrentTheme()

	if strings.HasPrefix(suffix, "[") && strings.HasSuffix(suffix, "]") {
		raw := suffix[1 : len(suffix)-1]
		v, err := strconv.ParseFloat(raw, 32)
		if err != nil || v < 0 {
			return nil
		}
		return floatPtr(float32(v))
	}

	if v, err := strconv.ParseFloat(suffix, 32); err == nil {
		if v < 0 {
			return nil
		}
		f := float32(v)
		if scaled {
			f *= theme.SpacingUnit
		}
		return floatPtr(f)
	}

	if v, ok := theme.Sizes[suffix]; ok && v >= 0 {
		return floatPtr(v)
	}
	return nil
}

// pickValue prefers the freshly resolved value, keeping the previous one when
// resolution failed.
func pickValue(v, prev *float32) *float32 {
	if v != nil {
		return v
	}
	return prev
}

func floatPtr(v float32) *float32 { return &v }

func dirPtr(d flexlay.Direction) *flexlay.Direction { return &d }

func mainPtr(a flexlay.MainAlign) *flexlay.MainAlign { return &a }

func crossPtr(a flexlay.CrossAlign) *flexlay.CrossAlign { return &a }
