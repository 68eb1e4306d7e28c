package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readmeTopics extracts the "* name: description" entries of readme.md.
func readmeTopics(t *testing.T) []string {
	t.Helper()
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topics []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topics = append(topics, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	return topics
}

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md can be loaded, and every .md file is listed.
	topicsInReadme := readmeTopics(t)

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
		if base == Readme {
			continue
		}
		if !slices.Contains(topicsInReadme, base) {
			t.Errorf("topic %q is not listed in docs/readme.md", base)
		}
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() unexpected error: %v", err)
	}
	if len(all) != len(topicsInReadme) {
		t.Errorf("GetAllTopics() = %d topics, readme lists %d", len(all), len(topicsInReadme))
	}
}

func TestGetTopicStar(t *testing.T) {
	got, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(*) unexpected error: %v", err)
	}
	for _, want := range []string{"# Sharpe ratio", "# Value at Risk", "# Data files"} {
		if !strings.Contains(got, want) {
			t.Errorf("GetTopic(*) is missing %q", want)
		}
	}
	if strings.Contains(got, "# pad documentation") {
		t.Error("GetTopic(*) must not include the readme")
	}
}

func TestGetTopicUnknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("GetTopic(no-such-topic) expected an error")
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		topic string
		want  string
	}{
		{"sharpe", "Sharpe ratio"},
		{"var", "Value at Risk"},
		{"alpha-beta", "Alpha and Beta"},
		{Readme, "pad documentation"},
	}
	for _, tt := range tests {
		t.Run(tt.topic, func(t *testing.T) {
			got, err := Title(tt.topic)
			if err != nil {
				t.Fatalf("Title(%q) unexpected error: %v", tt.topic, err)
			}
			if got != tt.want {
				t.Errorf("Title(%q) = %q, want %q", tt.topic, got, tt.want)
			}
		})
	}
}

func TestSingleTitle(t *testing.T) {
	// Each topic has exactly one level 1 heading, so that "*" reads as a book.
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range append(topics, Readme) {
		t.Run(topic, func(t *testing.T) {
			content, err := os.ReadFile(topic + ".md")
			if err != nil {
				t.Fatal(err)
			}
			root := goldmark.DefaultParser().Parse(text.NewReader(content))
			var count int
			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if h, ok := n.(*ast.Heading); ok && entering && h.Level == 1 {
					count++
				}
				return ast.WalkContinue, nil
			})
			if count != 1 {
				t.Errorf("%s.md has %d level 1 headings, want 1", topic, count)
			}
		})
	}
}
