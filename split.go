package discordstyle

import (
	"strings"
	"unicode/utf8"
)

const (
	fenceMarker = "```"
	fenceClose  = "\n```"
)

// SplitMessage splits markup into chunks of at most limit characters.
//
// Chunks end at line boundaries where possible; a line longer than the
// limit is cut hard. A code fence that is open at a chunk boundary is closed
// at the end of the chunk and reopened, with the same language tag, at the
// start of the next one, unless the limit is too small to hold a fence
// around any code, in which case the fence is split like plain text. Leading and trailing newlines of each chunk are
// dropped and blank chunks are omitted. A limit <= 0 means MaxMessageLength.
func SplitMessage(text string, limit int) []string {
	if limit <= 0 {
		limit = MaxMessageLength
	}
	if CountText(text) <= limit {
		return []string{text}
	}

	s := &splitter{limit: limit}
	for _, line := range strings.SplitAfter(text, "\n") {
		s.add(line)
	}
	s.emit(false)
	return s.chunks
}

type splitter struct {
	limit  int
	chunks []string
	cur    strings.Builder
	curLen int

	// fresh 当前块只包含重新打开的围栏，没有实际内容
	fresh   bool
	inFence bool
	lang    string

	// fenceStart 当前块中打开围栏的字节位置，fenceHasContent 围栏内是否已有代码
	fenceStart      int
	fenceHasContent bool

	// plainFence 围栏开销超过 limit，整个围栏按普通文本拆分
	plainFence bool
}

func (s *splitter) empty() bool {
	return s.curLen == 0 || s.fresh
}

func (s *splitter) write(text string) {
	s.cur.WriteString(text)
	s.curLen += utf8.RuneCountInString(text)
}

func (s *splitter) writeContent(text string) {
	s.write(text)
	if strings.TrimSpace(text) == "" {
		return
	}
	s.fresh = false
	if s.inFence {
		s.fenceHasContent = true
	}
}

func (s *splitter) add(line string) {
	if line == "" {
		return
	}

	if lang, ok := fenceLine(line); ok {
		switch {
		case s.plainFence:
			s.plainFence = false
		case !s.inFence && fenceOverhead(lang) >= s.limit:
			s.plainFence = true
		default:
			s.addFence(line, lang)
			return
		}
	}

	reserve := 0
	if s.inFence {
		reserve = utf8.RuneCountInString(fenceClose)
	}
	n := utf8.RuneCountInString(line)
	if !s.empty() && s.curLen+n+reserve > s.limit {
		s.emit(true)
	}

	// 单行超长：按字符硬切
	for line != "" && s.curLen+n+reserve > s.limit {
		room := s.limit - s.curLen - reserve
		if room < 1 {
			room = 1
		}
		head, tail := splitRunes(line, room)
		s.writeContent(head)
		s.emit(true)
		line = tail
		n = utf8.RuneCountInString(line)
	}
	if line != "" {
		s.writeContent(line)
	}
}

func (s *splitter) addFence(line, lang string) {
	closing := s.inFence
	if closing && s.fresh {
		// 块刚以重新打开的围栏开始，直接丢弃这对空围栏
		s.cur.Reset()
		s.curLen = 0
		s.fresh = false
		s.inFence = false
		return
	}

	reserve := 0
	if !closing {
		reserve = utf8.RuneCountInString(fenceClose)
	}
	if !s.empty() && s.curLen+utf8.RuneCountInString(line)+reserve > s.limit {
		s.emit(true)
	}
	if !closing {
		s.fenceStart = s.cur.Len()
		s.fenceHasContent = false
		s.lang = lang
	}
	s.write(line)
	s.fresh = false
	s.inFence = !closing
}

// emit 结束当前块；reopen 时若仍在围栏内则在下一块开头重新打开围栏
func (s *splitter) emit(reopen bool) {
	if !s.fresh {
		body := s.cur.String()
		closeFence := s.inFence
		if s.inFence && !s.fenceHasContent {
			// 围栏刚打开还没有代码，整体移到下一块
			body = body[:s.fenceStart]
			closeFence = false
		}
		body = strings.Trim(body, "\n")
		if closeFence {
			body += fenceClose
		}
		if strings.TrimSpace(body) != "" {
			s.chunks = append(s.chunks, body)
		}
	}
	s.cur.Reset()
	s.curLen = 0
	s.fresh = false

	if reopen && s.inFence {
		s.fenceStart = 0
		s.fenceHasContent = false
		s.write(fenceMarker + s.lang + "\n")
		s.fresh = true
	}
}

// fenceOverhead is the number of characters a reopened fence adds to a chunk.
func fenceOverhead(lang string) int {
	return utf8.RuneCountInString(fenceMarker+lang+"\n") + utf8.RuneCountInString(fenceClose)
}

// fenceLine reports whether line opens or closes a code fence and returns
// the language tag written after an opening fence.
func fenceLine(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, fenceMarker) || strings.Count(trimmed, fenceMarker) != 1 {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(trimmed, fenceMarker)), true
}

// splitRunes cuts s after n characters.
func splitRunes(s string, n int) (string, string) {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos], s[pos:]
		}
		i++
	}
	return s, ""
}
