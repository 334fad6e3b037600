package ai

import (
	"encoding/json"
	"regexp"
	"strings"
)

// ExtractJSON attempts to extract a valid JSON block from text, handling
// markdown code blocks and possible extra commentary the models generate
// even when told not to.
func ExtractJSON(text string) string {
	text = strings.TrimSpace(text)

	re := regexp.MustCompile("(?s)```(?:json)?\n?(.*?)```")
	matches := re.FindAllStringSubmatch(text, -1)
	var bestMarkdown string
	for _, m := range matches {
		if len(m) > 1 {
			content := strings.TrimSpace(m[1])
			sanitized := SanitizeJSON(content)
			if json.Valid([]byte(sanitized)) {
				if len(sanitized) > len(bestMarkdown) {
					bestMarkdown = sanitized
				}
			}
		}
	}
	if bestMarkdown != "" {
		return bestMarkdown
	}

	var bestBlock string
	for i := 0; i < len(text); {
		startIdx := strings.IndexAny(text[i:], "{[")
		if startIdx == -1 {
			break
		}
		startIdx += i

		opener := text[startIdx]
		var closer byte
		if opener == '{' {
			closer = '}'
		} else {
			closer = ']'
		}

		count := 0
		inString := false
		escaped := false
		foundEnd := false
		endIdx := -1

		for j := startIdx; j < len(text); j++ {
			char := text[j]
			if escaped {
				escaped = false
				continue
			}
			if char == '\\' {
				escaped = true
				continue
			}
			if char == '"' {
				inString = !inString
				continue
			}

			if !inString {
				if char == opener {
					count++
				} else if char == closer {
					count--
					if count == 0 {
						foundEnd = true
						endIdx = j
						break
					}
				}
			}
		}

		if foundEnd {
			block := text[startIdx : endIdx+1]
			sanitized := SanitizeJSON(block)
			if json.Valid([]byte(sanitized)) {
				if len(sanitized) > len(bestBlock) {
					bestBlock = sanitized
				}
			}
			i = endIdx + 1
		} else {
			i = startIdx + 1
		}
	}

	if bestBlock != "" {
		return bestBlock
	}

	return SanitizeJSON(text)
}

var jsonStringRegex = regexp.MustCompile(`"(?:\\.|[^"\\])*"`)

// SanitizeJSON cleans malformed JSON that LLMs sometimes generate,
// such as unescaped newlines within string literals.
func SanitizeJSON(s string) string {
	return jsonStringRegex.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ReplaceAll(m, "\n", "\\n")
	})
}

var blankRunRegex = regexp.MustCompile(`\n{4,}`)

// CleanGeneratedText normalizes backend output regardless of which backend
// produced it: fence markers around the whole response are stripped, the
// result is trimmed, and runs of three or more blank lines collapse to one.
func CleanGeneratedText(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		if idx := strings.Index(text, "\n"); idx != -1 {
			text = text[idx+1:]
		} else {
			text = strings.TrimPrefix(text, "```")
		}
	}
	if strings.HasSuffix(text, "```") {
		text = strings.TrimSuffix(text, "```")
		if idx := strings.LastIndex(text, "\n"); idx != -1 {
			text = text[:idx]
		}
	}

	text = blankRunRegex.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// TruncateBody shortens an issue body for inclusion in a prompt.
func TruncateBody(body string, max int) string {
	body = strings.ReplaceAll(body, "\n", " ")
	if len(body) <= max {
		return body
	}
	return body[:max] + "..."
}
