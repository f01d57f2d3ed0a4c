package logtail

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// dropInvalidUTF8 copies valid UTF-8 and discards any byte that does not
// start or belong to a complete sequence. A literal U+FFFD in the input is
// valid and kept.
type dropInvalidUTF8 struct{ transform.NopResetter }

// newDecoder returns the tolerant UTF-8 transformer used by ReadWindow.
func newDecoder() transform.Transformer {
	return dropInvalidUTF8{}
}

func (dropInvalidUTF8) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if c < utf8.RuneSelf {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}

		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size <= 1 {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				// Wait for the rest of a possibly valid sequence.
				return nDst, nSrc, transform.ErrShortSrc
			}
			nSrc++
			continue
		}
		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		copy(dst[nDst:], src[nSrc:nSrc+size])
		nDst += size
		nSrc += size
	}
	return nDst, nSrc, nil
}

// DecodeString applies the tolerant decoder to s.
func DecodeString(s string) string {
	out, _, err := transform.String(newDecoder(), s)
	if err != nil {
		return s
	}
	return out
}
