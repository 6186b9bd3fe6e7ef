package content

import "testing"

func componentByID(comps []Component, id string) (Component, bool) {
	for _, c := range comps {
		if c.ID == id {
			return c, true
		}
	}
	return Component{}, false
}

func TestComponentsCoverDefaultRegistry(t *testing.T) {
	comps := Components()
	for _, c := range comps {
		if len(c.Elements) == 0 {
			t.Fatalf("component %s has no elements", c.ID)
		}
	}
	// Every page default must be editable through the schema.  The reverse
	// does not hold: some schema elements only carry product defaults.
	for comp, elems := range DefaultPageContent() {
		for id := range elems {
			if _, ok := ElementByID(comps, comp, id); !ok {
				t.Fatalf("default %s/%s has no schema element", comp, id)
			}
		}
	}
}

func TestProductComponentsExcludePageOnly(t *testing.T) {
	comps := ProductComponents()
	for _, id := range []string{"StickyCTA", "DocumentSelect", "PhotoTutorial"} {
		if _, ok := componentByID(comps, id); ok {
			t.Fatalf("page-only component %s leaked into product schema", id)
		}
	}
	if _, ok := componentByID(comps, "HeroSection"); !ok {
		t.Fatal("HeroSection missing from product schema")
	}
}

func TestProductComponentsIncludePassportGuide(t *testing.T) {
	guide, ok := componentByID(ProductComponents(), "PassportGuide")
	if !ok {
		t.Fatal("PassportGuide missing from product schema")
	}
	el, ok := ElementByID(ProductComponents(), "PassportGuide", "html_content")
	if !ok {
		t.Fatal("PassportGuide has no html_content element")
	}
	if el.Type != ElementHTML {
		t.Fatalf("html_content type = %s, want %s", el.Type, ElementHTML)
	}
	if len(guide.Elements) != 1 {
		t.Fatalf("PassportGuide has %d elements, want 1", len(guide.Elements))
	}
}

func TestElementByIDUnknown(t *testing.T) {
	if _, ok := ElementByID(Components(), "HeroSection", "nope"); ok {
		t.Fatal("unknown element id matched")
	}
	if _, ok := ElementByID(Components(), "Nope", "mainTitle"); ok {
		t.Fatal("unknown component matched")
	}
}

func TestDefaultRegistriesReturnClones(t *testing.T) {
	a := DefaultPageContent()
	a["HeroSection"]["mainTitle"] = "tampered"
	if DefaultPageContent().Get("HeroSection", "mainTitle") == "tampered" {
		t.Fatal("page registry is shared state")
	}

	b := DefaultProductContent()
	b["FAQ"]["question1"] = "tampered"
	if DefaultProductContent().Get("FAQ", "question1") == "tampered" {
		t.Fatal("product registry is shared state")
	}
}
