// Package handler implements the HTTP endpoints. Server-rendered markup is
// deliberately minimal: pages are small fragments assembled here rather
// than a full templating layer.
package handler

import (
	"fmt"
	"html"
	"sort"
	"strconv"
	"strings"

	"github.com/iliyamo/film-vault/internal/repository"
	"github.com/iliyamo/film-vault/internal/session"
)

func page(title, body string) string {
	return fmt.Sprintf(
		"<!DOCTYPE html><html><head><title>%s</title></head><body>%s</body></html>",
		html.EscapeString(title), body)
}

func errorBanner(msg string) string {
	if msg == "" {
		return ""
	}
	return fmt.Sprintf(`<p class="error">%s</p>`, html.EscapeString(msg))
}

func fieldErrorList(fields map[string]string) string {
	if len(fields) == 0 {
		return ""
	}
	names := make([]string, 0, len(fields))
	for f := range fields {
		names = append(names, f)
	}
	sort.Strings(names)
	var b strings.Builder
	b.WriteString(`<ul class="field-errors">`)
	for _, f := range names {
		fmt.Fprintf(&b, "<li>%s: %s</li>", html.EscapeString(f), html.EscapeString(fields[f]))
	}
	b.WriteString("</ul>")
	return b.String()
}

func loginPage(errMsg, email string) string {
	body := errorBanner(errMsg) + fmt.Sprintf(`<h1>Login</h1>
<form action="/login" method="POST">
<input type="email" name="email" value="%s" placeholder="Email" required>
<input type="password" name="password" placeholder="Password" required>
<button type="submit">Login</button>
</form>
<a href="/signup">Create an account</a>`, html.EscapeString(email))
	return page("Login", body)
}

func signupPage(errMsg string, fields map[string]string) string {
	body := errorBanner(errMsg) + fieldErrorList(fields) + `<h1>Sign Up</h1>
<form action="/signup" method="POST">
<input type="text" name="firstName" placeholder="First name">
<input type="text" name="lastName" placeholder="Last name">
<input type="email" name="email" placeholder="Email">
<input type="text" name="mobile" placeholder="Mobile">
<select name="gender"><option value="male">Male</option><option value="female">Female</option></select>
<input type="password" name="password" placeholder="Password">
<input type="password" name="confirmPassword" placeholder="Confirm password">
<button type="submit">Sign Up</button>
</form>
<a href="/">Back to login</a>`
	return page("Sign Up", body)
}

// formatRating renders a rating the way the welcome page displays it,
// e.g. 8.5 -> "⭐ 8.5/10".
func formatRating(rating float64) string {
	return "⭐ " + strconv.FormatFloat(rating, 'f', -1, 64) + "/10"
}

func welcomePage(u session.UserSummary, total int64, top repository.Film, hasTop bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h1>Welcome, %s!</h1>", html.EscapeString(u.FirstName))
	fmt.Fprintf(&b, `<div class="stat"><span class="stat-value">%d</span> <span class="stat-label">Total Films</span></div>`, total)
	if hasTop {
		fmt.Fprintf(&b, `<div class="highest-rated"><h2>Highest Rated Film</h2><p>%s</p><p>%s</p></div>`,
			html.EscapeString(top.Title), formatRating(top.Rating))
	}
	b.WriteString(`<a href="/films/add">Add New Film</a> <a href="/logout">Logout</a>`)
	return page("Welcome", b.String())
}

func filmFormPage(errMsg string, fields map[string]string) string {
	body := errorBanner(errMsg) + fieldErrorList(fields) + `<h1>Add New Film</h1>
<form action="/films/add" method="POST">
<input type="text" name="title" placeholder="Title">
<textarea name="description" placeholder="Description"></textarea>
<input type="text" name="releaseYear" placeholder="Release year">
<input type="text" name="genre" placeholder="Genre (comma separated)">
<input type="text" name="director" placeholder="Director">
<input type="text" name="cast" placeholder="Cast (comma separated)">
<input type="text" name="rating" placeholder="Rating (0-10)">
<input type="text" name="duration" placeholder="Duration (minutes)">
<input type="text" name="posterUrl" placeholder="Poster URL">
<button type="submit">Add Film</button>
</form>
<a href="/welcome">Back</a>`
	return page("Add New Film", body)
}
