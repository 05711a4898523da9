package content

import (
	"testing"
)

func TestListPosts(t *testing.T) {
	posts := NewCatalog().ListPosts()
	if len(posts) != 3 {
		t.Fatalf("ListPosts() returned %d posts, want 3", len(posts))
	}
	for _, p := range posts {
		if p.ID == "" || p.Title == "" || p.Content == "" {
			t.Errorf("post %q has empty fields", p.ID)
		}
	}
}

func TestGetPost(t *testing.T) {
	post, err := NewCatalog().GetPost("json-output-reliability")
	if err != nil {
		t.Fatalf("GetPost() error = %v", err)
	}
	if post.Author != "Babaei" {
		t.Errorf("Author = %q", post.Author)
	}
	if post.Category != "Technical Guide" {
		t.Errorf("Category = %q", post.Category)
	}
}

func TestGetPostUnknownID(t *testing.T) {
	if _, err := NewCatalog().GetPost("missing"); err == nil {
		t.Fatal("GetPost() expected error for unknown id")
	}
}

func TestStaticPages(t *testing.T) {
	catalog := NewCatalog()

	privacy := catalog.PrivacyPolicy()
	if privacy.Title != "Privacy Policy" || privacy.Body == "" {
		t.Errorf("unexpected privacy page: %+v", privacy.Title)
	}

	terms := catalog.TermsOfService()
	if terms.Title != "Terms of Service" || terms.Body == "" {
		t.Errorf("unexpected terms page: %+v", terms.Title)
	}
}
