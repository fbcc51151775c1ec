package models

import "testing"

func TestParseReviewPlainText(t *testing.T) {
	r := ParseReview("Great food, friendly staff")
	if r.Kind != ReviewPlainText {
		t.Fatalf("kind = %s, want plain_text", r.Kind)
	}
	if r.Text != "Great food, friendly staff" {
		t.Fatalf("text = %q", r.Text)
	}
	if r.Meta != nil {
		t.Fatal("plain text review must not carry metadata")
	}
}

func TestParseReviewSourcedMetadata(t *testing.T) {
	raw := `{"locationId":"loc-8041","imageUrl":"https://cdn.example.com/jiro.jpg","numReviews":2143,"webUrl":"https://places.example.com/loc-8041"}`

	r := ParseReview(raw)
	if r.Kind != ReviewSourced {
		t.Fatalf("kind = %s, want sourced_metadata", r.Kind)
	}
	if r.Meta == nil || r.Meta.LocationID != "loc-8041" || r.Meta.NumReviews != 2143 {
		t.Fatalf("meta = %+v", r.Meta)
	}
}

func TestParseReviewPartialMetadataStillCounts(t *testing.T) {
	r := ParseReview(`{"webUrl":"https://places.example.com/x"}`)
	if r.Kind != ReviewSourced {
		t.Fatalf("kind = %s, want sourced_metadata", r.Kind)
	}
}

func TestParseReviewJSONLookingTextStaysPlain(t *testing.T) {
	cases := []string{
		`{}`,
		`{"note":"lovely"}`,
		`{not valid json`,
		`{"locationId":""}`,
	}
	for _, raw := range cases {
		r := ParseReview(raw)
		if r.Kind != ReviewPlainText {
			t.Fatalf("ParseReview(%q).Kind = %s, want plain_text", raw, r.Kind)
		}
		if r.Text != raw {
			t.Fatalf("ParseReview(%q).Text = %q, original must be preserved", raw, r.Text)
		}
	}
}

func TestParseReviewLeadingWhitespace(t *testing.T) {
	r := ParseReview("  {\"locationId\":\"loc-1\"}")
	if r.Kind != ReviewSourced {
		t.Fatalf("kind = %s, want sourced_metadata despite leading whitespace", r.Kind)
	}
}
