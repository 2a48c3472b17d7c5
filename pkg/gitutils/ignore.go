package gitutils

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

var osReadFile = os.ReadFile

// dirIgnore knows the ignore rules that apply to the children of one directory.
type dirIgnore struct {
	matcher gitignore.Matcher
	domain  []string
}

// loadDirIgnore reads .git/info/exclude and every .gitignore on the way from
// root down to dir. Ignore files below dir do not affect its children.
func loadDirIgnore(root, dir string) *dirIgnore {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == ".." || strings.HasPrefix(rel, "../") {
		return nil
	}
	var domain []string
	if rel != "." {
		domain = strings.Split(filepath.ToSlash(rel), "/")
	}
	patterns := readPatterns(filepath.Join(root, ".git", "info", "exclude"), nil)
	for i := 0; i <= len(domain); i++ {
		path := filepath.Join(append([]string{root}, append(domain[:i:i], ".gitignore")...)...)
		patterns = append(patterns, readPatterns(path, domain[:i:i])...)
	}
	if len(patterns) == 0 {
		return nil
	}
	return &dirIgnore{matcher: gitignore.NewMatcher(patterns), domain: domain}
}

func readPatterns(path string, domain []string) (patterns []gitignore.Pattern) {
	data, err := osReadFile(path)
	if err != nil {
		return nil
	}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, domain))
	}
	return patterns
}

func (d *dirIgnore) match(name string, isDir bool) bool {
	if d == nil {
		return false
	}
	path := append(d.domain[:len(d.domain):len(d.domain)], name)
	return d.matcher.Match(path, isDir)
}
