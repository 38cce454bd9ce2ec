package btxt

import "image"

import "testing"

func TestTypewriterReveal(t *testing.T) {
	renderer, device := newTestRenderer("ABCD")
	writer := NewTypewriter("AB\nCD", 0.1)
	completions := 0
	writer.OnComplete(func() { completions += 1 })
	area := image.Rect(0, 0, 200, 100)
	var cache Combined

	if writer.State() != TypewriterIdle { t.Fatalf("expected Idle, got %s", writer.State()) }
	for i := 0; i < 4; i++ {
		renderer.DrawTypewriter(writer, &cache, area, testStyle, 0.2)
		if i < 3 && writer.State() != TypewriterRevealing {
			t.Fatalf("tick #%d: expected Revealing, got %s", i, writer.State())
		}
	}
	if writer.State() != TypewriterComplete || !writer.Done() {
		t.Fatalf("expected Complete, got %s", writer.State())
	}
	if writer.Len() != 4 { t.Fatalf("expected 4 characters, got %d", writer.Len()) }
	if completions != 1 { t.Fatalf("expected 1 completion, got %d", completions) }

	ops := device.copiesFrom(renderer.Atlas().Texture())
	expected := []image.Point{{0, 0}, {14, 0}, {0, 22}, {14, 22}}
	if len(ops) != len(expected) { t.Fatalf("expected %d glyph copies, got %d", len(expected), len(ops)) }
	for i, op := range ops {
		if op.dstRect.Min != expected[i] {
			t.Fatalf("glyph #%d at %v, expected %v", i, op.dstRect.Min, expected[i])
		}
	}

	// completed: idempotent, only blits
	device.reset()
	for i := 0; i < 3; i++ {
		renderer.DrawTypewriter(writer, &cache, area, testStyle, 1.0)
	}
	if len(device.copiesFrom(renderer.Atlas().Texture())) != 0 { t.Fatal("no glyphs expected after completion") }
	if len(device.copiesFrom(cache.Texture())) != 3 { t.Fatal("expected one cache blit per tick") }
	if completions != 1 || writer.Cursor() != 4 { t.Fatal("completed typewriter must not change") }
}

func TestTypewriterZeroDuration(t *testing.T) {
	renderer, device := newTestRenderer("ABCD")
	style := DefaultStyle(16) // advances 7 pixels per character, 11 per line
	lines := style.Lines("AB\nCD", 1000)
	if len(lines) != 2 || lines[0] != "AB" || lines[1] != "CD" { t.Fatalf("unexpected lines %q", lines) }

	writer := NewTypewriter("AB\nCD", 0)
	completions := 0
	writer.OnComplete(func() { completions += 1 })
	var cache Combined
	area := image.Rect(3, 5, 1003, 500)
	for i := 0; i < 4; i++ {
		if completions != 0 { t.Fatalf("completion before the last reveal (tick #%d)", i) }
		renderer.DrawTypewriter(writer, &cache, area, style, 0.001)
		if cache.Finished() { t.Fatal("typewriter reveals must not finish the cache") }
	}
	if completions != 1 { t.Fatalf("expected 1 completion, got %d", completions) }

	ops := device.copiesFrom(renderer.Atlas().Texture())
	expected := []image.Point{{3, 5}, {10, 5}, {3, 16}, {10, 16}}
	if len(ops) != len(expected) { t.Fatalf("expected %d glyph copies, got %d", len(expected), len(ops)) }
	for i, op := range ops {
		if op.dstRect.Min != expected[i] {
			t.Fatalf("glyph #%d at %v, expected %v", i, op.dstRect.Min, expected[i])
		}
	}

	penX := writer.PenX()
	renderer.DrawTypewriter(writer, &cache, area, style, 0.001)
	if writer.PenX() != penX || completions != 1 { t.Fatal("completed typewriter must not change") }
}

func TestTypewriterTiming(t *testing.T) {
	renderer, device := newTestRenderer("AB")
	writer := NewTypewriter("AB", 0.5)
	area := image.Rect(0, 0, 200, 100)
	var cache Combined

	renderer.DrawTypewriter(writer, &cache, area, testStyle, 0.25)
	renderer.DrawTypewriter(writer, &cache, area, testStyle, 0.25) // 0.5 is not enough
	if writer.Cursor() != 0 { t.Fatalf("expected no reveal yet, got cursor %d", writer.Cursor()) }
	if len(device.copiesFrom(cache.Texture())) != 2 { t.Fatal("waiting ticks should blit the cache") }
	renderer.DrawTypewriter(writer, &cache, area, testStyle, 0.25)
	if writer.Cursor() != 1 { t.Fatalf("expected one reveal, got cursor %d", writer.Cursor()) }
	if writer.Timer() != 0 || writer.PenX() != 14 { t.Fatal("reveal should reset the timer and advance the pen") }
	renderer.DrawTypewriter(writer, &cache, area, testStyle, 0.25)
	if writer.Cursor() != 1 { t.Fatal("timer should restart after a reveal") }
	if writer.Timer() != 0.25 || writer.Duration() != 0.5 { t.Fatal("unexpected timer values") }
}

func TestTypewriterSkipsUnknown(t *testing.T) {
	renderer, device := newTestRenderer("AB")
	writer := NewTypewriter("AXB", 0.1)
	area := image.Rect(0, 0, 200, 100)
	var cache Combined

	renderer.DrawTypewriter(writer, &cache, area, testStyle, 0.2) // A
	renderer.DrawTypewriter(writer, &cache, area, testStyle, 0.2) // X skipped, timer kept
	if writer.Cursor() != 2 { t.Fatalf("expected cursor 2, got %d", writer.Cursor()) }
	renderer.DrawTypewriter(writer, &cache, area, testStyle, 0) // B right away
	if !writer.Done() { t.Fatal("expected completion") }

	ops := device.copiesFrom(renderer.Atlas().Texture())
	if len(ops) != 2 { t.Fatalf("expected 2 glyph copies, got %d", len(ops)) }
	if ops[1].dstRect.Min.X != 14 { t.Fatalf("skipped glyphs must not advance the pen, got x = %d", ops[1].dstRect.Min.X) }
}

func TestTypewriterCompletesOnSkip(t *testing.T) {
	renderer, _ := newTestRenderer("A")
	writer := NewTypewriter("AX", 0)
	completions := 0
	writer.OnComplete(func() { completions += 1 })
	area := image.Rect(0, 0, 200, 100)
	for i := 0; i < 5; i++ {
		renderer.DrawTypewriter(writer, nil, area, testStyle, 0.01)
	}
	if !writer.Done() || completions != 1 {
		t.Fatalf("expected a single completion, got %d", completions)
	}
	writer.Release()
	writer.Release()
}

func TestTypewriterEmpty(t *testing.T) {
	renderer, device := newTestRenderer("A")
	writer := NewTypewriter("", 0)
	writer.OnComplete(func() { t.Fatal("empty text must not complete") })
	for i := 0; i < 3; i++ {
		renderer.DrawTypewriter(writer, nil, image.Rect(0, 0, 200, 100), testStyle, 1)
	}
	if len(device.copiesFrom(renderer.Atlas().Texture())) != 0 { t.Fatal("nothing should be drawn") }
	if writer.State() != TypewriterIdle { t.Fatalf("expected Idle, got %s", writer.State()) }
	writer.Release()
}

func TestTypewriterSoftWrap(t *testing.T) {
	renderer, device := newTestRenderer("ABCD")
	writer := NewTypewriter("AB CD", 0)
	area := image.Rect(5, 0, 55, 100) // fits 3 characters
	var cache Combined
	for i := 0; i < 10; i++ {
		renderer.DrawTypewriter(writer, &cache, area, testStyle, 0.01)
	}
	if writer.Len() != 5 { t.Fatalf("expected the wrap space to be revealed, got %d characters", writer.Len()) }

	ops := device.copiesFrom(renderer.Atlas().Texture())
	expected := []image.Point{{5, 0}, {19, 0}, {5, 22}, {19, 22}}
	if len(ops) != len(expected) { t.Fatalf("expected %d glyph copies, got %d", len(expected), len(ops)) }
	for i, op := range ops {
		if op.dstRect.Min != expected[i] {
			t.Fatalf("glyph #%d at %v, expected %v", i, op.dstRect.Min, expected[i])
		}
	}
}

func TestTypewriterOwnCache(t *testing.T) {
	renderer, device := newTestRenderer("AB")
	writer := NewTypewriter("AB", 0)
	renderer.DrawTypewriter(writer, nil, image.Rect(0, 0, 200, 100), testStyle, 0.01)
	cacheTarget := device.targets[0]
	writer.Release()
	if !cacheTarget.destroyed { t.Fatal("own cache not released") }
}

func TestTypewriterKeepsSpaces(t *testing.T) {
	renderer, device := newTestRenderer("AB")
	area := image.Rect(0, 0, 200, 100)
	for _, text := range []string{"A  B", "  A B", "A\tB"} {
		device.reset()
		renderer.Draw(text, 0, 0, testStyle, nil)
		var expected []image.Point
		for _, op := range device.copiesFrom(renderer.Atlas().Texture()) {
			expected = append(expected, op.dstRect.Min)
		}

		device.reset()
		writer := NewTypewriter(text, 0)
		var cache Combined
		for i := 0; i < 10; i++ {
			renderer.DrawTypewriter(writer, &cache, area, testStyle, 0.01)
		}
		if writer.Len() != len(text) { t.Fatalf("%q: expected %d characters, got %d", text, len(text), writer.Len()) }
		ops := device.copiesFrom(renderer.Atlas().Texture())
		if len(ops) != len(expected) { t.Fatalf("%q: expected %d glyph copies, got %d", text, len(expected), len(ops)) }
		for i, op := range ops {
			if op.dstRect.Min != expected[i] {
				t.Fatalf("%q: glyph #%d at %v, expected %v", text, i, op.dstRect.Min, expected[i])
			}
		}
		cache.Release()
	}

	// indentation advances the pen
	writer := NewTypewriter("  A B", 0)
	for i := 0; i < 3; i++ {
		renderer.DrawTypewriter(writer, nil, area, testStyle, 0.01)
	}
	if writer.PenX() != 42 { t.Fatalf("expected pen at 42 after the indented A, got %d", writer.PenX()) }
	writer.Release()
}

func TestTypewriterUncached(t *testing.T) {
	renderer, device := newTestRenderer("AB")
	device.failTarget = true
	writer := NewTypewriter("AB", 0)
	area := image.Rect(0, 0, 200, 100)
	var cache Combined
	for i := 0; i < 2; i++ {
		renderer.DrawTypewriter(writer, &cache, area, testStyle, 0.01)
	}
	if !writer.Done() { t.Fatal("expected completion") }
	if cache.Allocated() { t.Fatal("cache allocation should have failed") }

	// the revealed text is drawn again on every frame
	for frame := 0; frame < 2; frame++ {
		device.reset()
		renderer.DrawTypewriter(writer, &cache, area, testStyle, 0.01)
		ops := device.copiesFrom(renderer.Atlas().Texture())
		if len(ops) != 2 { t.Fatalf("frame #%d: expected 2 glyph copies, got %d", frame, len(ops)) }
		if ops[0].target != device.output || ops[0].dstRect.Min.X != 0 || ops[1].dstRect.Min.X != 14 {
			t.Fatalf("frame #%d: unexpected glyph copies %v", frame, ops)
		}
	}

	// once allocation succeeds, the glyphs move to the cache
	device.failTarget = false
	device.reset()
	renderer.DrawTypewriter(writer, &cache, area, testStyle, 0.01)
	if !cache.Allocated() { t.Fatal("expected cache allocation") }
	for _, op := range device.copiesFrom(renderer.Atlas().Texture()) {
		if op.target == device.output { t.Fatal("glyphs should be composited into the cache") }
	}
	device.reset()
	renderer.DrawTypewriter(writer, &cache, area, testStyle, 0.01)
	if len(device.copiesFrom(renderer.Atlas().Texture())) != 0 { t.Fatal("expected only cache blits") }
	if len(device.copiesFrom(cache.Texture())) != 1 { t.Fatal("expected a single cache blit") }
}

func TestTypewriterRelayout(t *testing.T) {
	renderer, device := newTestRenderer("ABCD")
	writer := NewTypewriter("AB CD", 0)
	var cache Combined
	renderer.DrawTypewriter(writer, &cache, image.Rect(0, 0, 200, 100), testStyle, 0.01) // A
	renderer.DrawTypewriter(writer, &cache, image.Rect(0, 0, 200, 100), testStyle, 0.01) // B
	for i := 0; i < 5; i++ { // only 3 characters fit now
		renderer.DrawTypewriter(writer, &cache, image.Rect(0, 0, 50, 100), testStyle, 0.01)
	}
	if !writer.Done() || writer.Len() != 5 { t.Fatalf("unexpected state %s with %d characters", writer.State(), writer.Len()) }

	ops := device.copiesFrom(renderer.Atlas().Texture())
	expected := []image.Point{{0, 0}, {14, 0}, {0, 22}, {14, 22}}
	if len(ops) != len(expected) { t.Fatalf("expected %d glyph copies, got %d", len(expected), len(ops)) }
	for i, op := range ops {
		if op.dstRect.Min != expected[i] {
			t.Fatalf("glyph #%d at %v, expected %v", i, op.dstRect.Min, expected[i])
		}
	}

	// moving the area places the pen again
	writer = NewTypewriter("ABC", 0)
	device.reset()
	cache.Reset()
	renderer.DrawTypewriter(writer, &cache, image.Rect(0, 0, 200, 100), testStyle, 0.01)
	renderer.DrawTypewriter(writer, &cache, image.Rect(10, 0, 210, 100), testStyle, 0.01)
	ops = device.copiesFrom(renderer.Atlas().Texture())
	if len(ops) != 2 || ops[1].dstRect.Min.X != 24 { t.Fatalf("expected B at x = 24, got %v", ops) }
	if writer.PenX() != 38 { t.Fatalf("expected pen at 38, got %d", writer.PenX()) }
}

func TestTypewriterZeroElapsed(t *testing.T) {
	renderer, _ := newTestRenderer("AB")
	writer := NewTypewriter("AB", 0)
	area := image.Rect(0, 0, 200, 100)
	var cache Combined
	for i := 0; i < 3; i++ {
		renderer.DrawTypewriter(writer, &cache, area, testStyle, 0)
	}
	if writer.Cursor() != 0 || writer.Len() != 2 {
		t.Fatalf("zero elapsed time must only lay out, got cursor %d", writer.Cursor())
	}
	renderer.DrawTypewriter(writer, &cache, area, testStyle, 1e-9)
	if writer.Cursor() != 1 { t.Fatalf("expected a reveal, got cursor %d", writer.Cursor()) }
}
