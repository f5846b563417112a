// Package codec converts between file bytes and editor text.
//
// Files are read with the legacy encoding named by the user's locale and
// always written as GBK. The two differ whenever the locale is not a GBK
// one, so opening and saving a non-ASCII file can change its bytes. That
// asymmetry is kept on purpose and logged when it applies.
package codec

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

// WriteName is the encoding every save uses
const WriteName = "gbk"

// Codec pairs the read and write encodings
type Codec struct {
	Read      encoding.Encoding
	ReadName  string
	Write     encoding.Encoding
	WriteName string
}

// New returns a codec reading with the locale encoding from env and writing GBK
func New(getenv func(string) string) Codec {
	readName := LocaleCharset(getenv)
	read, err := htmlindex.Get(readName)
	if err != nil {
		readName = "utf-8"
		read = unicode.UTF8
	}
	return Codec{
		Read:      read,
		ReadName:  readName,
		Write:     simplifiedchinese.GBK,
		WriteName: WriteName,
	}
}

// Default returns the codec for the current process environment
func Default() Codec {
	return New(os.Getenv)
}

// Mismatched reports whether reading and writing use different encodings
func (c Codec) Mismatched() bool {
	return c.ReadName != c.WriteName
}

// Decode converts file bytes to text. Invalid sequences become U+FFFD.
func (c Codec) Decode(data []byte) (string, error) {
	out, err := c.Read.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", c.ReadName, err)
	}
	return string(out), nil
}

// Encode converts text to file bytes. Characters the write encoding cannot
// represent are replaced.
func (c Codec) Encode(text string) ([]byte, error) {
	out, err := encoding.ReplaceUnsupported(c.Write.NewEncoder()).Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", c.WriteName, err)
	}
	return out, nil
}

// LocaleCharset extracts the codeset from the first set locale variable
// (LC_ALL, LC_CTYPE, LANG) and normalises it to an htmlindex name. Locales
// without a codeset, and the C/POSIX locales, map to utf-8.
func LocaleCharset(getenv func(string) string) string {
	locale := ""
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := getenv(key); v != "" {
			locale = v
			break
		}
	}

	// language_TERRITORY.codeset@modifier
	if i := strings.IndexByte(locale, '@'); i >= 0 {
		locale = locale[:i]
	}
	i := strings.IndexByte(locale, '.')
	if i < 0 {
		return "utf-8"
	}
	return normalizeCharset(locale[i+1:])
}

func normalizeCharset(codeset string) string {
	cs := strings.ToLower(codeset)
	switch cs {
	case "utf8", "utf-8":
		return "utf-8"
	case "gb2312", "euccn", "euc-cn":
		return "gbk"
	case "sjis", "shift_jis", "shift-jis":
		return "shift_jis"
	case "eucjp", "euc-jp":
		return "euc-jp"
	case "euckr", "euc-kr":
		return "euc-kr"
	case "big5", "big5hkscs", "big5-hkscs":
		return "big5"
	}
	return cs
}
