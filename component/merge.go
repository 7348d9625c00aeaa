/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package component

// Merge combines token layers left to right, lowest precedence first.
//
// Object categories (color, typography, spacing, border, motion, layout) are
// merged field by field: a later layer's present fields overwrite earlier
// ones, and absent fields keep the earlier value. Scalar categories (radius,
// shadow) are replaced whole when a later layer defines them. The inputs are
// never modified.
func Merge(layers ...Tokens) Tokens {
	out := Tokens{}
	for _, layer := range layers {
		if layer.Color != nil {
			if out.Color == nil {
				out.Color = &ColorTokens{}
			}
			pick(&out.Color.FG, layer.Color.FG)
			pick(&out.Color.BG, layer.Color.BG)
			pick(&out.Color.Border, layer.Color.Border)
		}
		if layer.Typography != nil {
			if out.Typography == nil {
				out.Typography = &TypographyTokens{}
			}
			pick(&out.Typography.Size, layer.Typography.Size)
			pick(&out.Typography.Weight, layer.Typography.Weight)
			pick(&out.Typography.LineHeight, layer.Typography.LineHeight)
			pick(&out.Typography.LetterSpacing, layer.Typography.LetterSpacing)
			pick(&out.Typography.FontFamily, layer.Typography.FontFamily)
		}
		if layer.Spacing != nil {
			if out.Spacing == nil {
				out.Spacing = &SpacingTokens{}
			}
			pick(&out.Spacing.PaddingX, layer.Spacing.PaddingX)
			pick(&out.Spacing.PaddingY, layer.Spacing.PaddingY)
			pick(&out.Spacing.Gap, layer.Spacing.Gap)
		}
		if layer.Border != nil {
			if out.Border == nil {
				out.Border = &BorderTokens{}
			}
			pick(&out.Border.Width, layer.Border.Width)
			pick(&out.Border.Style, layer.Border.Style)
			pick(&out.Border.Color, layer.Border.Color)
		}
		if layer.Motion != nil {
			if out.Motion == nil {
				out.Motion = &MotionTokens{}
			}
			pick(&out.Motion.Transition, layer.Motion.Transition)
			pick(&out.Motion.Duration, layer.Motion.Duration)
			pick(&out.Motion.Easing, layer.Motion.Easing)
		}
		if layer.Layout != nil {
			if out.Layout == nil {
				out.Layout = &LayoutTokens{}
			}
			pick(&out.Layout.MinWidth, layer.Layout.MinWidth)
			pick(&out.Layout.MaxWidth, layer.Layout.MaxWidth)
		}
		pick(&out.Radius, layer.Radius)
		pick(&out.Shadow, layer.Shadow)
	}
	return out
}

// pick overwrites dst with a copy of src when src is present.
func pick(dst **Value, src *Value) {
	if src != nil {
		*dst = copyValue(src)
	}
}
