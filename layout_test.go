package flexlay

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const epsilon = 1e-4

func approx(a, b float32) bool {
	d := a - b
	return d < epsilon && d > -epsilon
}

// checkResult asserts one node's parent-relative offset and size.
func checkResult(t *testing.T, l *Layout, name string, x, y, w, h float32) {
	t.Helper()
	res, ok := l.Result(name)
	if !ok {
		t.Fatalf("no result for %q", name)
	}
	if !approx(res.X(), x) || !approx(res.Y(), y) {
		t.Errorf("%s offset = (%v, %v), want (%v, %v)", name, res.X(), res.Y(), x, y)
	}
	if !approx(res.Width(), w) || !approx(res.Height(), h) {
		t.Errorf("%s size = %vx%v, want %vx%v", name, res.Width(), res.Height(), w, h)
	}
}

func TestFlexibleChildAbsorbsRemainder(t *testing.T) {
	l := New(4, 1)
	l.Build(func(b *Builder) {
		b.Row("root", func() {
			b.Leaf("fixed", Width(1), Height(1))
			b.Leaf("flexible", Grow(1), Height(1))
		})
	})
	l.Compute()

	checkResult(t, l, "fixed", 0, 0, 1, 1)
	checkResult(t, l, "flexible", 1, 0, 3, 1)
}

func TestProportionalSplit(t *testing.T) {
	l := New(6, 2)
	l.Build(func(b *Builder) {
		b.Row("root", func() {
			b.Leaf("light", Grow(1))
			b.Leaf("heavy", Grow(2))
		})
	})
	l.Compute()

	checkResult(t, l, "light", 0, 0, 2, 0)
	checkResult(t, l, "heavy", 2, 0, 4, 0)
}

func TestGapOffsets(t *testing.T) {
	l := New(5, 1)
	l.Build(func(b *Builder) {
		b.Row("root", func() {
			b.Leaf("a", Width(1))
			b.Leaf("b", Width(1))
			b.Leaf("c", Width(1))
		}, Gap(1))
	})
	l.Compute()

	// k-th child sits at k*(width+gap).
	checkResult(t, l, "a", 0, 0, 1, 0)
	checkResult(t, l, "b", 2, 0, 1, 0)
	checkResult(t, l, "c", 4, 0, 1, 0)
}

func TestPaddingShrinksContent(t *testing.T) {
	l := New(4, 4)
	l.Build(func(b *Builder) {
		b.Box("frame", func() {
			b.Leaf("content", Grow(1))
		}, Pad(0.5))
	})
	l.Compute()

	checkResult(t, l, "frame", 0, 0, 4, 4)
	// Uniform padding p reduces the flex-grow child by 2p on both axes.
	checkResult(t, l, "content", 0.5, 0.5, 3, 3)
}

func TestMainAxisAlignment(t *testing.T) {
	tests := []struct {
		name  string
		align MainAlign
		width float32
		child float32
		wantX float32
	}{
		{"center", MainCenter, 4, 2, 1},
		{"end", MainEnd, 4, 1, 3},
		{"start", MainStart, 4, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.width, 1)
			l.Build(func(b *Builder) {
				b.Row("root", func() {
					b.Leaf("child", Width(tt.child), Height(1))
				}, JustifyContent(tt.align))
			})
			l.Compute()

			res, _ := l.Result("child")
			if !approx(res.X(), tt.wantX) {
				t.Errorf("child x = %v, want %v", res.X(), tt.wantX)
			}
		})
	}
}

func TestMainAxisSpaceDistribution(t *testing.T) {
	build := func(align MainAlign, width float32, childWidths ...float32) *Layout {
		l := New(width, 1)
		l.Build(func(b *Builder) {
			b.Row("root", func() {
				names := []string{"a", "b", "c", "d"}
				for i, w := range childWidths {
					b.Leaf(names[i], Width(w))
				}
			}, JustifyContent(align))
		})
		l.Compute()
		return l
	}

	t.Run("between", func(t *testing.T) {
		l := build(MainSpaceBetween, 6, 1, 1)
		checkResult(t, l, "a", 0, 0, 1, 0)
		checkResult(t, l, "b", 5, 0, 1, 0)
	})

	t.Run("between three children", func(t *testing.T) {
		l := build(MainSpaceBetween, 6, 1, 1, 1)
		checkResult(t, l, "a", 0, 0, 1, 0)
		checkResult(t, l, "b", 2.5, 0, 1, 0)
		checkResult(t, l, "c", 5, 0, 1, 0)
	})

	t.Run("between single child degrades to start", func(t *testing.T) {
		l := build(MainSpaceBetween, 6, 1)
		checkResult(t, l, "a", 0, 0, 1, 0)
	})

	t.Run("around", func(t *testing.T) {
		// unused 4 over 2 children: shares of 2, half a share outside.
		l := build(MainSpaceAround, 6, 1, 1)
		checkResult(t, l, "a", 1, 0, 1, 0)
		checkResult(t, l, "b", 4, 0, 1, 0)
	})

	t.Run("evenly", func(t *testing.T) {
		// unused 3 over 2 children: three gaps of 1.
		l := build(MainSpaceEvenly, 5, 1, 1)
		checkResult(t, l, "a", 1, 0, 1, 0)
		checkResult(t, l, "b", 3, 0, 1, 0)
	})

	t.Run("alignment is a no-op with flexible children", func(t *testing.T) {
		l := New(4, 1)
		l.Build(func(b *Builder) {
			b.Row("root", func() {
				b.Leaf("fixed", Width(1))
				b.Leaf("flex", Grow(1))
			}, JustifyContent(MainCenter))
		})
		l.Compute()
		checkResult(t, l, "fixed", 0, 0, 1, 0)
		checkResult(t, l, "flex", 1, 0, 3, 0)
	})
}

func TestCrossAxisAlignment(t *testing.T) {
	build := func(align CrossAlign, opts ...Option) *Layout {
		l := New(4, 4)
		l.Build(func(b *Builder) {
			b.Row("root", func() {
				b.Leaf("child", opts...)
			}, AlignItems(align))
		})
		l.Compute()
		return l
	}

	t.Run("center", func(t *testing.T) {
		l := build(CrossCenter, Width(1), Height(2))
		checkResult(t, l, "child", 0, 1, 1, 2)
	})

	t.Run("end", func(t *testing.T) {
		l := build(CrossEnd, Width(1), Height(1))
		checkResult(t, l, "child", 0, 3, 1, 1)
	})

	t.Run("stretch fills the content cross size", func(t *testing.T) {
		l := build(CrossStretch, Width(1))
		checkResult(t, l, "child", 0, 0, 1, 4)
	})

	t.Run("stretch keeps an explicit cross size", func(t *testing.T) {
		l := build(CrossStretch, Width(1), Height(2))
		checkResult(t, l, "child", 0, 0, 1, 2)
	})
}

func TestReverseDirections(t *testing.T) {
	t.Run("row-reverse", func(t *testing.T) {
		l := New(4, 1)
		l.Build(func(b *Builder) {
			b.Row("root", func() {
				b.Leaf("a", Width(1))
				b.Leaf("b", Width(1))
			}, WithDirection(RowReverse))
		})
		l.Compute()
		checkResult(t, l, "b", 0, 0, 1, 0)
		checkResult(t, l, "a", 1, 0, 1, 0)
	})

	t.Run("column-reverse", func(t *testing.T) {
		l := New(1, 4)
		l.Build(func(b *Builder) {
			b.Column("root", func() {
				b.Leaf("a", Height(1))
				b.Leaf("b", Height(1))
			}, WithDirection(ColumnReverse))
		})
		l.Compute()
		checkResult(t, l, "b", 0, 0, 0, 1)
		checkResult(t, l, "a", 0, 1, 0, 1)
	})
}

func TestNestedContainerIntrinsicSize(t *testing.T) {
	l := New(10, 10)
	l.Build(func(b *Builder) {
		b.Row("root", func() {
			b.Column("stack", func() {
				b.Leaf("wide", Width(2), Height(1))
				b.Leaf("tall", Width(1), Height(2))
			}, Gap(1), Pad(1))
			b.Leaf("after", Width(1), Height(1))
		})
	})
	l.Compute()

	// stack sizes to content: width max(2,1)+padding, height 1+2+gap+padding.
	checkResult(t, l, "stack", 0, 0, 4, 6)
	checkResult(t, l, "after", 4, 0, 1, 1)
	// children are placed inside the stack's padding.
	checkResult(t, l, "wide", 1, 1, 2, 1)
	checkResult(t, l, "tall", 1, 3, 1, 2)
}

func TestFlexibleContainerRecursion(t *testing.T) {
	l := New(8, 4)
	l.Build(func(b *Builder) {
		b.Row("root", func() {
			b.Leaf("side", Width(2))
			b.Column("main", func() {
				b.Leaf("header", Height(1))
				b.Leaf("fill", Grow(1))
			}, Grow(1), Gap(1))
		}, AlignItems(CrossStretch))
	})
	l.Compute()

	checkResult(t, l, "main", 2, 0, 6, 4)
	checkResult(t, l, "header", 0, 0, 0, 1)
	// fill gets the column's remaining main space: 4 - 1 - gap.
	res, _ := l.Result("fill")
	if !approx(res.Height(), 2) {
		t.Errorf("fill height = %v, want 2", res.Height())
	}
}

func TestDegenerateSpaceClampsToZero(t *testing.T) {
	t.Run("padding exceeds container", func(t *testing.T) {
		l := New(2, 2)
		l.Build(func(b *Builder) {
			b.Box("frame", func() {
				b.Leaf("content", Grow(1))
			}, Pad(2))
		})
		l.Compute()

		res, ok := l.Result("content")
		if !ok {
			t.Fatal("no result for content")
		}
		if res.Width() < 0 || res.Height() < 0 {
			t.Errorf("negative size: %vx%v", res.Width(), res.Height())
		}
		if res.Width() != 0 {
			t.Errorf("content width = %v, want 0", res.Width())
		}
	})

	t.Run("fixed children exceed container", func(t *testing.T) {
		l := New(1, 1)
		l.Build(func(b *Builder) {
			b.Row("root", func() {
				b.Leaf("big", Width(1))
				b.Leaf("flex", Grow(1))
			})
		})
		l.Compute()

		res, _ := l.Result("flex")
		if res.Width() != 0 {
			t.Errorf("flex width = %v, want 0", res.Width())
		}
	})
}

func TestEmptyTree(t *testing.T) {
	l := New(3, 3)
	l.Build(func(b *Builder) {
		b.Row("root", nil)
	})
	l.Compute()

	checkResult(t, l, "root", 0, 0, 3, 3)
}

func TestComputeWithoutRoot(t *testing.T) {
	l := New(3, 3)
	l.Compute()

	if _, ok := l.Result("anything"); ok {
		t.Error("expected no results for an undeclared tree")
	}
}

func TestComputeIsIdempotent(t *testing.T) {
	names := []string{"dialog", "title", "body", "portrait", "text", "buttons", "accept", "spacer#1", "decline"}

	build := func() *Layout {
		l := New(320, 240)
		l.Build(func(b *Builder) {
			b.Column("dialog", func() {
				b.Leaf("title", Height(24))
				b.Row("body", func() {
					b.Leaf("portrait", Width(64))
					b.Leaf("text", Grow(1))
				}, Grow(1), Gap(4), AlignItems(CrossStretch))
				b.Row("buttons", func() {
					b.Leaf("accept", Width(72))
					b.Spacer()
					b.Leaf("decline", Width(72))
				}, Height(28), Gap(4))
			}, Pad(8), Gap(4), AlignItems(CrossStretch))
		})
		return l
	}

	snapshot := func(l *Layout) map[string]Result {
		out := make(map[string]Result, len(names))
		for _, name := range names {
			res, ok := l.Result(name)
			if !ok {
				t.Fatalf("no result for %q", name)
			}
			out[name] = res
		}
		return out
	}

	l := build()
	l.Compute()
	first := snapshot(l)
	firstDump := l.DebugString()

	l.Compute()
	second := snapshot(l)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("results changed between computes (-first +second):\n%s", diff)
	}
	if dump := l.DebugString(); dump != firstDump {
		t.Errorf("debug dump changed between computes:\n%s\nvs\n%s", firstDump, dump)
	}

	// A freshly built identical tree also agrees.
	other := build()
	other.Compute()
	if diff := cmp.Diff(first, snapshot(other)); diff != "" {
		t.Errorf("identical trees disagree (-first +other):\n%s", diff)
	}
}
