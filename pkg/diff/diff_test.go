package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnifiedIdenticalInputs(t *testing.T) {
	assert.Empty(t, Unified("x.py", "a\nb\n", "a\nb\n"))
	assert.Empty(t, Unified("x.py", "", ""))
}

func TestUnifiedSingleLineChange(t *testing.T) {
	got := Unified("db.py", "import psycopg2\n", "import psycopg\n")
	want := "" +
		"--- a/db.py\n" +
		"+++ b/db.py\n" +
		"@@ -1,1 +1,1 @@\n" +
		"-import psycopg2\n" +
		"+import psycopg\n"
	assert.Equal(t, want, got)
}

func TestUnifiedContextAroundChange(t *testing.T) {
	oldText := "a\nb\nc\nd\ne\nf\ng\nh\ni\n"
	newText := "a\nb\nc\nd\nE\nf\ng\nh\ni\n"

	got := Unified("x.py", oldText, newText)

	assert.Contains(t, got, "@@ -2,7 +2,7 @@\n")
	assert.Contains(t, got, "-e\n")
	assert.Contains(t, got, "+E\n")
	// Exactly three context lines either side.
	assert.NotContains(t, got, " a\n")
	assert.Contains(t, got, " b\n")
	assert.Contains(t, got, " h\n")
	assert.NotContains(t, got, " i\n")
}

func TestUnifiedDeletedLines(t *testing.T) {
	got := Unified("admin.py",
		"from django.contrib import admin\nf.allow_tags = True\n",
		"from django.contrib import admin\n")
	want := "" +
		"--- a/admin.py\n" +
		"+++ b/admin.py\n" +
		"@@ -1,2 +1,1 @@\n" +
		" from django.contrib import admin\n" +
		"-f.allow_tags = True\n"
	assert.Equal(t, want, got)
}

func TestUnifiedFarApartChangesSeparateHunks(t *testing.T) {
	var oldLines, newLines []string
	for i := 0; i < 30; i++ {
		oldLines = append(oldLines, "same")
		newLines = append(newLines, "same")
	}
	oldLines[0], newLines[0] = "first-old", "first-new"
	oldLines[29], newLines[29] = "last-old", "last-new"

	got := Unified("x.py",
		strings.Join(oldLines, "\n")+"\n",
		strings.Join(newLines, "\n")+"\n")

	assert.Equal(t, 2, strings.Count(got, "@@ -"))
}

func TestUnifiedNoTrailingNewline(t *testing.T) {
	got := Unified("x.py", "x = 1", "y = 1")
	assert.True(t, strings.HasSuffix(got, "\n"))
	assert.Contains(t, got, "-x = 1\n")
	assert.Contains(t, got, "+y = 1\n")
}
