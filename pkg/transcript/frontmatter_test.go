package transcript

import "testing"

func TestParseFrontmatter(t *testing.T) {
	content := `---
guest: Jane Doe
title: Building products
---
Hello world`

	meta, body := ParseFrontmatter(content)

	if meta.Guest != "Jane Doe" {
		t.Errorf("Expected guest 'Jane Doe', got %q", meta.Guest)
	}

	if meta.Title != "Building products" {
		t.Errorf("Expected title 'Building products', got %q", meta.Title)
	}

	if body != "Hello world" {
		t.Errorf("Expected body 'Hello world', got %q", body)
	}
}

func TestParseFrontmatter_BlankLinesInBlock(t *testing.T) {
	content := "---\n\nguest: Jane Doe\n\n---\nBody text"

	meta, body := ParseFrontmatter(content)

	if meta.Guest != "Jane Doe" {
		t.Errorf("Expected guest 'Jane Doe', got %q", meta.Guest)
	}

	if body != "Body text" {
		t.Errorf("Expected body 'Body text', got %q", body)
	}
}

func TestParseFrontmatter_TrailingWhitespaceTrimmed(t *testing.T) {
	content := "---\nguest: Jane Doe   \n---\nBody"

	meta, _ := ParseFrontmatter(content)

	if meta.Guest != "Jane Doe" {
		t.Errorf("Expected trimmed guest 'Jane Doe', got %q", meta.Guest)
	}
}

func TestParseFrontmatter_NoBlock(t *testing.T) {
	content := "Just a transcript with no metadata.\n"

	meta, body := ParseFrontmatter(content)

	if meta.Guest != "" {
		t.Errorf("Expected empty guest, got %q", meta.Guest)
	}

	// Raw content is returned unchanged when no block exists
	if body != content {
		t.Errorf("Expected raw content, got %q", body)
	}
}

func TestParseFrontmatter_BlockWithoutGuest(t *testing.T) {
	content := "---\ntitle: Some episode\n---\nThe body"

	meta, body := ParseFrontmatter(content)

	if meta.Guest != "" {
		t.Errorf("Expected empty guest, got %q", meta.Guest)
	}

	if body != "The body" {
		t.Errorf("Expected stripped body, got %q", body)
	}
}

func TestGuestFromFolder(t *testing.T) {
	tests := []struct {
		folder string
		want   string
	}{
		{"jane-doe-42", "Jane Doe"},
		{"jane-doe_42", "Jane Doe"},
		{"jane-doe", "Jane Doe"},
		{"madonna", "Madonna"},
		{"jean-claude-van-damme-7", "Jean Claude Van Damme"},
		{"mcLaren-smith", "McLaren Smith"}, // remainder preserved, not lowercased
		{"", ""},
	}

	for _, tt := range tests {
		if got := GuestFromFolder(tt.folder); got != tt.want {
			t.Errorf("GuestFromFolder(%q) = %q, want %q", tt.folder, got, tt.want)
		}
	}
}
