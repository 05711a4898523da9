package navigation

import (
	"testing"

	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/domain/entity"
)

func TestLoginSuccess(t *testing.T) {
	sess := entity.NewSession()

	if err := Login(sess, "user@example.com", "secret"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if !sess.LoggedIn {
		t.Error("LoggedIn = false after successful login")
	}
	if sess.CurrentPage != entity.PageStudio {
		t.Errorf("CurrentPage = %q, want studio", sess.CurrentPage)
	}
}

func TestLoginMissingCredentials(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "secret"},
		{"empty password", "user@example.com", ""},
		{"both empty", "", ""},
		{"whitespace only", "   ", "   "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sess := entity.NewSession()
			if err := Login(sess, tc.email, tc.password); err == nil {
				t.Fatal("Login() expected error")
			}
			if sess.LoggedIn {
				t.Error("LoggedIn must stay false on rejected login")
			}
			if sess.CurrentPage != entity.PageLogin {
				t.Errorf("CurrentPage = %q, want login", sess.CurrentPage)
			}
		})
	}
}

func TestLogoutKeepsWorkspaceIntact(t *testing.T) {
	sess := entity.NewSession()
	_ = Login(sess, "user@example.com", "secret")
	sess.Draft.Goal = "keep me"

	Logout(sess)

	if sess.LoggedIn {
		t.Error("LoggedIn = true after logout")
	}
	if sess.CurrentPage != entity.PageHome {
		t.Errorf("CurrentPage = %q, want home", sess.CurrentPage)
	}
	if sess.Draft.Goal != "keep me" {
		t.Error("logout must not clear the draft")
	}
}

func TestApplyBlogPostWithoutSelectionFallsBack(t *testing.T) {
	sess := entity.NewSession()

	Apply(sess, entity.PageBlogPost)

	if sess.CurrentPage != entity.PageBlog {
		t.Errorf("CurrentPage = %q, want blog fallback", sess.CurrentPage)
	}
}

func TestSelectPost(t *testing.T) {
	sess := entity.NewSession()

	SelectPost(sess, "json-output-reliability")

	if sess.CurrentPage != entity.PageBlogPost {
		t.Errorf("CurrentPage = %q, want blog_post", sess.CurrentPage)
	}
	if sess.SelectedPostID != "json-output-reliability" {
		t.Errorf("SelectedPostID = %q", sess.SelectedPostID)
	}
}

func TestDeepLinkUnknownPageIgnored(t *testing.T) {
	sess := entity.NewSession()

	ApplyDeepLink(sess, "no-such-page", true)

	if sess.CurrentPage != entity.PageHome {
		t.Errorf("CurrentPage = %q, unknown page must be ignored", sess.CurrentPage)
	}
}

func TestDeepLinkGatedPrivatePageRedirectsToLogin(t *testing.T) {
	sess := entity.NewSession()

	ApplyDeepLink(sess, string(entity.PageStudio), true)

	if sess.CurrentPage != entity.PageLogin {
		t.Errorf("CurrentPage = %q, want login redirect", sess.CurrentPage)
	}
}

func TestDeepLinkUngatedPrivatePageAllowed(t *testing.T) {
	sess := entity.NewSession()

	ApplyDeepLink(sess, string(entity.PageStudio), false)

	if sess.CurrentPage != entity.PageStudio {
		t.Errorf("CurrentPage = %q, ungated machine must not redirect", sess.CurrentPage)
	}
}

func TestDeepLinkPublicPage(t *testing.T) {
	sess := entity.NewSession()

	ApplyDeepLink(sess, string(entity.PageBlog), true)

	if sess.CurrentPage != entity.PageBlog {
		t.Errorf("CurrentPage = %q, want blog", sess.CurrentPage)
	}
}

func TestDeepLinkPrivatePageWhenLoggedIn(t *testing.T) {
	sess := entity.NewSession()
	_ = Login(sess, "user@example.com", "secret")

	ApplyDeepLink(sess, string(entity.PageWorkspace), true)

	if sess.CurrentPage != entity.PageWorkspace {
		t.Errorf("CurrentPage = %q, want workspace", sess.CurrentPage)
	}
}
