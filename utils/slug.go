package utils

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Slugify turns a title into a lowercase, dash-separated slug
func Slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// UniqueSlug returns Slugify(title), appending a short random suffix when a
// row with the same slug already exists in the model's table
func UniqueSlug(db *gorm.DB, model interface{}, title string) string {
	slug := Slugify(title)
	if slug == "" {
		slug = uuid.NewString()[:8]
	}

	var count int64
	db.Model(model).Where("slug = ?", slug).Count(&count)
	if count == 0 {
		return slug
	}
	return slug + "-" + uuid.NewString()[:8]
}
