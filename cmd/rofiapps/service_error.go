// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mjklukowski/rofi-apps/internal/issue"
)

// issueError tags a service failure with the catalog entry that explains it.
type issueError struct {
	err   error
	issue issue.Id
}

// withIssue attaches id to err. A nil err stays nil.
func withIssue(err error, id issue.Id) error {
	if err == nil {
		return nil
	}
	return &issueError{err: err, issue: id}
}

func (e *issueError) Error() string { return e.err.Error() }

func (e *issueError) Unwrap() error { return e.err }

// renderError prints err on stderr. With verbose set, the error chain and the
// catalog entry linked to err follow.
func renderError(w io.Writer, err error, verbose bool) {
	msg := err.Error()
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		msg = ae.Format(verbose)
	}
	fmt.Fprintln(w, errorStyle.Render("Error: ")+msg)

	if verbose {
		renderIssue(w, issueIDFor(err))
	}
}

// renderIssue writes the catalog card for id. Unknown ids write nothing.
func renderIssue(w io.Writer, id issue.Id) {
	entry := issue.Get(id)
	if entry == nil {
		return
	}
	text, err := entry.Render("dark")
	if err != nil {
		slog.Warn("cannot render help", "issue", id, "error", err)
		return
	}
	fmt.Fprint(w, text)
}

// issueIDFor returns the catalog id linked to err, or 0. A tag added by the
// service layer wins over one carried by an actionable error.
func issueIDFor(err error) issue.Id {
	var ie *issueError
	if errors.As(err, &ie) && ie.issue != 0 {
		return ie.issue
	}
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Issue
	}
	return 0
}
