package tui

import (
	"testing"

	"sectionpad/internal/editor"
	"sectionpad/internal/model"
)

func testItem() sectionItem {
	setGlyphs(glyphSetUnicode)
	return newSectionItem(model.Section{ID: "s", Title: "Title", Content: "Body"}, 80)
}

func kinds(rs []region) []regionKind {
	out := make([]regionKind, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.kind)
	}
	return out
}

func sameKinds(a, b []regionKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSectionItem_RegionsChildrenBeforeChrome(t *testing.T) {
	it := testItem()

	lines, rs := it.render(false, false)
	if len(lines) != 1 || it.lineCount() != 1 {
		t.Fatalf("expected a single header line, got %d", len(lines))
	}
	if want := []regionKind{regionTitle, regionHeader}; !sameKinds(kinds(rs), want) {
		t.Fatalf("unexpected regions %v", kinds(rs))
	}

	_, rs = it.render(true, false)
	if want := []regionKind{regionDuplicate, regionDelete, regionTitle, regionHeader}; !sameKinds(kinds(rs), want) {
		t.Fatalf("unexpected regions when selected %v", kinds(rs))
	}

	it, _ = it.activate()
	lines, rs = it.render(true, true)
	if want := []regionKind{regionDuplicate, regionDelete, regionTitle, regionContent, regionBody, regionHeader}; !sameKinds(kinds(rs), want) {
		t.Fatalf("unexpected regions when open %v", kinds(rs))
	}
	if len(lines) != it.lineCount() {
		t.Fatalf("lineCount %d does not match render %d", it.lineCount(), len(lines))
	}
}

func TestSectionItem_ActionRegionsDoNotOverlap(t *testing.T) {
	it := testItem()
	_, rs := it.render(true, false)

	var dup, del, title region
	for _, r := range rs {
		switch r.kind {
		case regionDuplicate:
			dup = r
		case regionDelete:
			del = r
		case regionTitle:
			title = r
		}
	}
	if title.x1 > dup.x0 || dup.x1 > del.x0 || del.x1 != 80 {
		t.Fatalf("overlapping header regions: title=%+v dup=%+v del=%+v", title, dup, del)
	}
}

func TestSectionItem_ClickConsumption(t *testing.T) {
	it := testItem()

	next, c, _ := it.click(regionTitle)
	if c != nil {
		t.Fatalf("expected title click to emit nothing, got %v", c)
	}
	if f, ok := next.editing(); !ok || f != fieldTitle {
		t.Fatalf("expected title editing")
	}

	// Content is only editable while open.
	next, _, _ = it.click(regionContent)
	if _, ok := next.editing(); ok {
		t.Fatalf("expected collapsed content not to enter edit")
	}

	next, c, _ = it.click(regionHeader)
	if sel, ok := c.(editor.Selected); !ok || sel.ID != "s" || !next.open {
		t.Fatalf("expected header click to select and open, got %v", c)
	}

	if _, c, _ = it.click(regionDuplicate); c != (editor.Duplicated{ID: "s"}) {
		t.Fatalf("expected Duplicated, got %v", c)
	}
	if _, c, _ = it.click(regionDelete); c != (editor.Deleted{ID: "s"}) {
		t.Fatalf("expected Deleted, got %v", c)
	}
	next, c, _ = it.click(regionBody)
	if c != (editor.Selected{ID: "s"}) || next.open {
		t.Fatalf("expected body click to select without toggling, got %v", c)
	}
}

func TestSectionItem_CommitEmitsUpdated(t *testing.T) {
	it := testItem()
	it, _ = it.beginEdit(fieldTitle)

	it, c, _ := it.updateField(fieldTitle, keyMsg("N"))
	if c != nil {
		t.Fatalf("expected no command while typing, got %v", c)
	}
	it, c, _ = it.updateField(fieldTitle, keyMsg("enter"))
	up, ok := c.(editor.Updated)
	if !ok {
		t.Fatalf("expected Updated, got %v", c)
	}
	want := model.Section{ID: "s", Title: "N", Content: "Body"}
	if up.Section != want {
		t.Fatalf("expected %+v, got %+v", want, up.Section)
	}

	// Nothing left to commit on blur.
	if _, c := it.blurField(fieldTitle); c != nil {
		t.Fatalf("expected no command on blur after commit, got %v", c)
	}
}

func TestSectionItem_SyncKeepsEditBuffer(t *testing.T) {
	it := testItem()
	it, _ = it.beginEdit(fieldTitle)
	it, _, _ = it.updateField(fieldTitle, keyMsg("Z"))

	it = it.sync(model.Section{ID: "s", Title: "Remote", Content: "Body"})
	if it.title.buffer() != "Z" {
		t.Fatalf("expected in-progress buffer kept, got %q", it.title.buffer())
	}
	if it.data.Title != "Remote" {
		t.Fatalf("expected data to follow the editor")
	}
}
