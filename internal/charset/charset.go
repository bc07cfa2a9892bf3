// Package charset is the loader-layer encoding detector named in
// SPEC_FULL.md §4.12: it sits in front of Extract, never inside the
// engine, since character-set detection is explicitly out of scope for
// the core scoring pipeline.
package charset

import (
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// ToUTF8 transcodes raw page bytes to UTF-8. contentType, if non-empty, is
// consulted first (an HTTP Content-Type charset parameter is authoritative
// when present); otherwise chardet.DetectBest picks the encoding, and a low
// confidence result is treated as already-UTF-8.
func ToUTF8(data []byte, contentType string) (string, error) {
	if enc := fromContentType(contentType); enc != nil {
		if decoded, err := enc.NewDecoder().Bytes(data); err == nil {
			return string(decoded), nil
		}
	}

	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(data)
	if err != nil || result.Confidence < 80 {
		return string(data), nil
	}

	enc := byName(result.Charset)
	if enc == nil {
		return string(data), nil
	}
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return string(data), nil
	}
	return string(decoded), nil
}

func fromContentType(contentType string) encoding.Encoding {
	for _, part := range strings.Split(contentType, ";") {
		part = strings.TrimSpace(strings.ToLower(part))
		if name, ok := strings.CutPrefix(part, "charset="); ok {
			return byName(strings.Trim(name, `"'`))
		}
	}
	return nil
}

func byName(charset string) encoding.Encoding {
	charset = strings.ReplaceAll(strings.ToLower(charset), "_", "-")
	switch charset {
	case "utf-8", "utf8":
		return unicode.UTF8
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case "utf-16", "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1
	case "iso-8859-15", "latin9":
		return charmap.ISO8859_15
	case "windows-1252", "cp1252":
		return charmap.Windows1252
	case "windows-1251", "cp1251":
		return charmap.Windows1251
	case "shift-jis", "sjis":
		return japanese.ShiftJIS
	case "euc-jp", "eucjp":
		return japanese.EUCJP
	case "euc-kr", "euckr":
		return korean.EUCKR
	case "gbk":
		return simplifiedchinese.GBK
	case "gb18030":
		return simplifiedchinese.GB18030
	case "big5":
		return traditionalchinese.Big5
	default:
		return nil
	}
}
