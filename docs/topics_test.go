package docs

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/etnz/folio"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// This test ensures that the documentation index is in sync with the topic files.
	// 1. Every topic listed in readme.md can be loaded.
	// 2. Every .md file (readme.md excepted) is listed in readme.md.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	for _, file := range files {
		base := strings.TrimSuffix(filepath.Base(file), ".md")
		if base == "readme" {
			continue
		}
		if !slices.Contains(topicsInReadme, base) {
			t.Errorf("topic %q is not listed in readme.md", base)
		}
	}
}

func TestGetTopicsStar(t *testing.T) {
	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error: %v", err)
	}
	if slices.Contains(all, "readme") {
		t.Errorf("GetAllTopics() = %v, must not contain the readme", all)
	}

	got, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*) error: %v", err)
	}
	for _, topic := range all {
		content, _ := GetTopic(topic)
		if !strings.Contains(got, content) {
			t.Errorf("GetTopics(*) does not contain topic %q", topic)
		}
	}

	if _, err := GetTopics("nope"); err == nil {
		t.Error("GetTopics(nope) should fail")
	}
}

// TestTopicTitles checks that every topic starts with a level 1 heading, so
// that concatenated topics remain readable.
func TestTopicTitles(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			content, err := os.ReadFile(file)
			if err != nil {
				t.Fatal(err)
			}
			root := goldmark.DefaultParser().Parse(text.NewReader(content))
			first := root.FirstChild()
			h, ok := first.(*ast.Heading)
			if !ok || h.Level != 1 {
				t.Errorf("%s: must start with a level 1 heading, got %v", file, first.Kind())
			}
		})
	}
}

// TestTrackExample replays the console example of the track topic against
// the input classifier.
func TestTrackExample(t *testing.T) {
	content, err := os.ReadFile("track.md")
	if err != nil {
		t.Fatal(err)
	}
	var blocks []string
	root := goldmark.DefaultParser().Parse(text.NewReader(content))
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || string(fcb.Language(content)) != "console" {
			return ast.WalkContinue, nil
		}
		var b strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			b.Write(line.Value(content))
		}
		blocks = append(blocks, b.String())
		return ast.WalkContinue, nil
	})
	if len(blocks) == 0 {
		t.Fatal("track.md has no console example")
	}

	const prompt = "Enter stock and quantity (or 'done'): "
	cat := folio.DefaultCatalog()
	lines := strings.Split(strings.TrimSpace(blocks[0]), "\n")
	for i, line := range lines {
		input, ok := strings.CutPrefix(line, prompt)
		if !ok {
			continue
		}
		e := folio.Classify(input, cat, folio.DefaultDoneKeyword)
		switch e.Kind {
		case folio.EntryAdd:
			want := fmt.Sprintf("✓ Added %s shares of %s", e.Quantity, e.Ticker)
			if i+1 >= len(lines) || lines[i+1] != want {
				t.Errorf("line %q should be followed by %q", line, want)
			}
		case folio.EntryDone:
		default:
			t.Errorf("example input %q is rejected: %v", input, e.Err)
		}
	}
}
