// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

// withPlainRender swaps glamour for an identity renderer until the test ends.
// Tests using it must not run in parallel.
func withPlainRender(t *testing.T) {
	t.Helper()
	saved := render
	render = func(in, _ string) (string, error) { return in, nil }
	t.Cleanup(func() { render = saved })
}

func TestCatalog(t *testing.T) {
	tests := []struct {
		id       Id
		heading  string
		hasLinks bool
	}{
		{ConfigNotFoundId, "# No rule file found!", true},
		{ConfigParseErrorId, "# Failed to parse the rule file!", true},
		{ConfigMissingKeyId, "# Rule file is incomplete!", false},
		{EntryParseErrorId, "# Entry file skipped", true},
		{EntryNotFoundId, "# No entry with that identifier!", true},
		{CacheWriteFailedId, "# Failed to write the cache!", true},
		{LaunchFailedId, "# Failed to launch the entry!", true},
		{LauncherNotFoundId, "# Launcher program not found!", false},
	}

	values := Values()
	if len(values) != len(tests) {
		t.Fatalf("Values() has %d issues, want %d", len(values), len(tests))
	}

	for n, tt := range tests {
		got := Get(tt.id)
		if got == nil {
			t.Errorf("Get(%d) = nil", tt.id)
			continue
		}
		if values[n] != got {
			t.Errorf("Values()[%d] is issue %d, want %d", n, values[n].Id(), tt.id)
		}
		if !strings.Contains(string(got.MarkdownMsg()), tt.heading) {
			t.Errorf("issue %d lacks heading %q", tt.id, tt.heading)
		}
		if linked := len(got.DocLinks())+len(got.ExtLinks()) > 0; linked != tt.hasLinks {
			t.Errorf("issue %d has links = %v, want %v", tt.id, linked, tt.hasLinks)
		}
	}

	if Get(0) != nil || Get(LauncherNotFoundId+1) != nil {
		t.Error("Get() should return nil outside the known range")
	}
}

func TestLinkAccessorsCopy(t *testing.T) {
	i := &Issue{docLinks: []HttpLink{"https://a.example"}, extLinks: []HttpLink{"https://b.example"}}

	i.DocLinks()[0] = "changed"
	i.ExtLinks()[0] = "changed"

	if i.docLinks[0] != "https://a.example" || i.extLinks[0] != "https://b.example" {
		t.Errorf("accessors leaked the backing arrays: %v %v", i.docLinks, i.extLinks)
	}
}

func TestRenderSeeAlso(t *testing.T) {
	withPlainRender(t)

	linked := &Issue{
		mdMsg:    "# Linked",
		docLinks: []HttpLink{"https://spec.example"},
		extLinks: []HttpLink{"https://wiki.example"},
	}
	out, err := linked.Render("")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "# Linked\n\n## See also\n\n- <https://spec.example>\n- <https://wiki.example>"
	if out != want {
		t.Errorf("Render() = %q, want %q", out, want)
	}
	if len(linked.docLinks) != 1 {
		t.Errorf("Render() grew docLinks to %d", len(linked.docLinks))
	}

	plain, err := (&Issue{mdMsg: "# Plain"}).Render("")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if plain != "# Plain" {
		t.Errorf("Render() = %q, want the bare message", plain)
	}
}

func TestRenderThroughGlamour(t *testing.T) {
	for _, i := range Values() {
		out, err := i.Render("notty")
		if err != nil {
			t.Errorf("issue %d: Render() error = %v", i.Id(), err)
			continue
		}
		if strings.TrimSpace(out) == "" {
			t.Errorf("issue %d rendered empty", i.Id())
		}
	}
	out, _ := Get(ConfigMissingKeyId).Render("notty")
	if !strings.Contains(out, "blacklist") {
		t.Errorf("rendered output lost its content: %q", out)
	}
}
