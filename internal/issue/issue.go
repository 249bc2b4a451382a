// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

const (
	ConfigNotFoundId Id = iota + 1
	ConfigParseErrorId
	ConfigMissingKeyId
	EntryParseErrorId
	EntryNotFoundId
	CacheWriteFailedId
	LaunchFailedId
	LauncherNotFoundId
)

const (
	xdgBaseDirLink   HttpLink = "https://specifications.freedesktop.org/basedir-spec/latest/"
	desktopEntryLink HttpLink = "https://specifications.freedesktop.org/desktop-entry-spec/latest/"
	re2SyntaxLink    HttpLink = "https://github.com/google/re2/wiki/Syntax"
	rofiScriptLink   HttpLink = "https://davatorium.github.io/rofi/current/rofi-script.5/"
)

type (
	Id int

	MarkdownMsg string

	HttpLink string

	Issue struct {
		id       Id          // ID used to lookup the issue
		mdMsg    MarkdownMsg // Markdown text that will be rendered
		docLinks []HttpLink  // specifications the issue refers to
		extLinks []HttpLink  // external links that might be useful for the user
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render returns the issue as terminal Markdown, followed by a "See also"
// list when the issue carries links.
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if links := append(i.DocLinks(), i.extLinks...); len(links) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range links {
			fmt.Fprintf(&md, "\n- <%s>", link)
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	configNotFoundIssue = &Issue{
		id: ConfigNotFoundId,
		mdMsg: `
# No rule file found!

rofi-apps needs a rule file and looked for one in these locations, in order:

1. ~/.config/rofi-apps/config.json (or $XDG_CONFIG_HOME)
2. /etc/xdg/rofi-apps/config.json
3. /usr/share/rofi-apps/config.json

The first file that exists is used as a whole. Files are never merged.

## Things you can try:
- Write the default rules to your user directory:
~~~
$ rofi-apps config init
~~~

- Or point rofi-apps at a file explicitly:
~~~
$ rofi-apps --config ~/rules.json list
~~~`,
		docLinks: []HttpLink{xdgBaseDirLink},
	}

	configParseErrorIssue = &Issue{
		id: ConfigParseErrorId,
		mdMsg: `
# Failed to parse the rule file!

The rule file is JSON with ` + "`//`" + ` line comments allowed.

## Common issues:
- A trailing comma after the last rule
- A rule value that is not a string
- A pattern that is not a valid regular expression

## Example rule file:
~~~json
{
  // hidden entries
  "blacklist": [{"exec": "^/usr/bin/xdg-open"}],
  // shown first, in this order
  "pinned": [{"name": "^Firefox"}, {"name": "^Files$"}],
  // first match renames the entry
  "customs": [{"exec": "^gnome-terminal", "newName": "Terminal"}]
}
~~~`,
		extLinks: []HttpLink{re2SyntaxLink},
	}

	configMissingKeyIssue = &Issue{
		id: ConfigMissingKeyId,
		mdMsg: `
# Rule file is incomplete!

The keys ` + "`blacklist`, `pinned` and `customs`" + ` must all be present, even when
a list is empty:

~~~json
{"blacklist": [], "pinned": [], "customs": []}
~~~`,
	}

	entryParseErrorIssue = &Issue{
		id: EntryParseErrorId,
		mdMsg: `
# Entry file skipped

A ` + "`.desktop`" + ` file could not be read as an application entry. It is left
out of the list and the rest of the list is unaffected.

## Common causes:
- The file has no ` + "`[Desktop Entry]`" + ` group
- ` + "`Type`" + ` is not ` + "`Application`" + `
- ` + "`Name`" + ` is missing`,
		docLinks: []HttpLink{desktopEntryLink},
	}

	entryNotFoundIssue = &Issue{
		id: EntryNotFoundId,
		mdMsg: `
# No entry with that identifier!

The identifier is derived from the entry's path below a search directory, with
` + "`/`" + ` replaced by ` + "`-`" + ` and the extension removed.

## Things you can try:
- List the current entries and their paths:
~~~
$ rofi-apps list --no-cache
~~~

- Check the search directories:
~~~
$ rofi-apps cache status
~~~`,
		docLinks: []HttpLink{desktopEntryLink},
	}

	cacheWriteFailedIssue = &Issue{
		id: CacheWriteFailedId,
		mdMsg: `
# Failed to write the cache!

The list was printed, but the next run will have to rebuild it.

## Things you can try:
- Check that the cache directory is writable (default ~/.cache/rofi-apps)
- Choose another location with ` + "`--cache-dir`" + ` or ` + "`ROFI_APPS_CACHE_DIR`",
		docLinks: []HttpLink{xdgBaseDirLink},
	}

	launchFailedIssue = &Issue{
		id: LaunchFailedId,
		mdMsg: `
# Failed to launch the entry!

The launcher process could not be started.

## Things you can try:
- Try the identifier by hand:
~~~
$ gtk-launch <identifier>
~~~

- Start the entry's command line directly instead:
~~~
$ rofi-apps --launcher exec launch <identifier>
~~~`,
		extLinks: []HttpLink{rofiScriptLink},
	}

	launcherNotFoundIssue = &Issue{
		id: LauncherNotFoundId,
		mdMsg: `
# Launcher program not found!

The configured launcher is not in your PATH. The default, ` + "`gtk-launch`" + `, ships
with GTK.

## Things you can try:
- Install the GTK utilities for your distribution
- Use the built-in launcher:
~~~
$ export ROFI_APPS_LAUNCHER=exec
~~~`,
	}

	issues = map[Id]*Issue{
		configNotFoundIssue.Id():   configNotFoundIssue,
		configParseErrorIssue.Id(): configParseErrorIssue,
		configMissingKeyIssue.Id(): configMissingKeyIssue,
		entryParseErrorIssue.Id():  entryParseErrorIssue,
		entryNotFoundIssue.Id():    entryNotFoundIssue,
		cacheWriteFailedIssue.Id(): cacheWriteFailedIssue,
		launchFailedIssue.Id():     launchFailedIssue,
		launcherNotFoundIssue.Id(): launcherNotFoundIssue,
	}
)

func Values() []*Issue {
	values := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		values = append(values, i)
	}
	slices.SortFunc(values, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return values
}

func Get(id Id) *Issue {
	return issues[id]
}
