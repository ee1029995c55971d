package typewriter

// Composer converts a composition preview into committed text.
//
// It stands in for a platform input method: the preview is typed with plain
// keys and looked up in a table on commit. A preview with no entry commits
// as typed. The zero Composer uses DefaultComposeTable.
type Composer struct {
	table map[string]string
}

func NewComposer(table map[string]string) Composer {
	t := make(map[string]string, len(table))
	for k, v := range table {
		t[k] = v
	}
	return Composer{table: t}
}

// DefaultComposeTable holds a few pinyin syllables, kana and Latin
// digraphs.
var DefaultComposeTable = map[string]string{
	"ni":    "你",
	"hao":   "好",
	"nihao": "你好",
	"zhong": "中",
	"wen":   "文",
	"shi":   "是",
	"jie":   "界",
	"ka":    "か",
	"na":    "な",
	"e'":    "é",
	"e`":    "è",
	"a\"":   "ä",
	"o\"":   "ö",
	"u\"":   "ü",
	"n~":    "ñ",
	"c,":    "ç",
	"ss":    "ß",
	"--":    "—",
}

// Candidate returns the table entry for preview.
func (c Composer) Candidate(preview string) (string, bool) {
	t := c.table
	if t == nil {
		t = DefaultComposeTable
	}
	s, ok := t[preview]
	return s, ok
}

// Convert returns the text to commit for preview.
func (c Composer) Convert(preview string) string {
	if s, ok := c.Candidate(preview); ok {
		return s
	}
	return preview
}
