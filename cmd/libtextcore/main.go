package main

/*
#include <stdbool.h>
#include <stddef.h>
#include <stdint.h>
*/
import "C"

import (
	"unsafe"

	"github.com/tome-editor/textcore/classify"
	"github.com/tome-editor/textcore/codec"
	"github.com/tome-editor/textcore/hashing"
)

func main() {}

// --- Hashes ------------------------------------------------------------

//export murmur3
func murmur3(data *C.uint8_t, length C.size_t) C.uint32_t {
	return C.uint32_t(hashing.Murmur3(bytesAt(unsafe.Pointer(data), uint(length))))
}

//export fnv1a
func fnv1a(data *C.uint8_t, length C.size_t) C.uintptr_t {
	return C.uintptr_t(hashing.FNV1a(bytesAt(unsafe.Pointer(data), uint(length))))
}

//export combine_hash
func combine_hash(lhs, rhs C.uintptr_t) C.uintptr_t {
	return C.uintptr_t(hashing.CombineHash(uintptr(lhs), uintptr(rhs)))
}

// --- UTF-8 -------------------------------------------------------------

//export utf8_is_character_start
func utf8_is_character_start(b C.uint8_t) C.bool {
	return C.bool(codec.IsCharacterStart(byte(b)))
}

//export utf8_codepoint_size_from_byte
func utf8_codepoint_size_from_byte(b C.uint8_t) C.uint8_t {
	return C.uint8_t(codec.CodepointSizeFromByte(byte(b)))
}

//export utf8_codepoint_size_from_codepoint
func utf8_codepoint_size_from_codepoint(cp C.uint32_t) C.uint8_t {
	return C.uint8_t(codec.CodepointSizeFromCodepoint(rune(cp)))
}

//export utf8_read_codepoint
func utf8_read_codepoint(data *C.uint8_t, length C.size_t, offset *C.size_t) C.uint32_t {
	if data == nil || offset == nil {
		return codec.ReplacementChar
	}
	off := uint(*offset)
	cp := readCodepointAt(bytesAt(unsafe.Pointer(data), uint(length)), &off)
	*offset = C.size_t(off)
	return C.uint32_t(cp)
}

//export utf8_encode_codepoint
func utf8_encode_codepoint(cp C.uint32_t, out *C.uint8_t) C.uint8_t {
	return C.uint8_t(encodeAt(uint32(cp), unsafe.Pointer(out)))
}

//export utf8_char_count
func utf8_char_count(data *C.uint8_t, length C.size_t) C.size_t {
	return C.size_t(codec.CharCount(bytesAt(unsafe.Pointer(data), uint(length))))
}

// --- Classification ----------------------------------------------------

//export unicode_is_eol
func unicode_is_eol(cp C.uint32_t) C.bool { return C.bool(classify.IsEOL(rune(cp))) }

//export unicode_is_horizontal_blank
func unicode_is_horizontal_blank(cp C.uint32_t) C.bool {
	return C.bool(classify.IsHorizontalBlank(rune(cp)))
}

//export unicode_is_blank
func unicode_is_blank(cp C.uint32_t) C.bool { return C.bool(classify.IsBlank(rune(cp))) }

//export unicode_is_basic_alpha
func unicode_is_basic_alpha(cp C.uint32_t) C.bool { return C.bool(classify.IsBasicAlpha(rune(cp))) }

//export unicode_is_basic_digit
func unicode_is_basic_digit(cp C.uint32_t) C.bool { return C.bool(classify.IsBasicDigit(rune(cp))) }

//export unicode_is_alnum
func unicode_is_alnum(cp C.uint32_t) C.bool { return C.bool(classify.IsAlnum(rune(cp))) }

//export unicode_is_word
func unicode_is_word(cp C.uint32_t) C.bool { return C.bool(classify.IsWord(rune(cp))) }

//export unicode_is_word_big
func unicode_is_word_big(cp C.uint32_t) C.bool { return C.bool(classify.IsWordBig(rune(cp))) }

//export unicode_is_punctuation
func unicode_is_punctuation(cp C.uint32_t) C.bool {
	return C.bool(classify.IsPunctuation(rune(cp)))
}

//export unicode_is_identifier
func unicode_is_identifier(cp C.uint32_t) C.bool { return C.bool(classify.IsIdentifier(rune(cp))) }

//export unicode_to_lower_ascii
func unicode_to_lower_ascii(cp C.uint32_t) C.uint32_t {
	return C.uint32_t(classify.ToLowerASCII(rune(cp)))
}

//export unicode_to_upper_ascii
func unicode_to_upper_ascii(cp C.uint32_t) C.uint32_t {
	return C.uint32_t(classify.ToUpperASCII(rune(cp)))
}

//export unicode_to_lower
func unicode_to_lower(cp C.uint32_t) C.uint32_t { return C.uint32_t(classify.ToLower(rune(cp))) }

//export unicode_to_upper
func unicode_to_upper(cp C.uint32_t) C.uint32_t { return C.uint32_t(classify.ToUpper(rune(cp))) }

//export unicode_is_lower_ascii
func unicode_is_lower_ascii(cp C.uint32_t) C.bool { return C.bool(classify.IsLowerASCII(rune(cp))) }

//export unicode_is_upper_ascii
func unicode_is_upper_ascii(cp C.uint32_t) C.bool { return C.bool(classify.IsUpperASCII(rune(cp))) }

//export unicode_is_lower
func unicode_is_lower(cp C.uint32_t) C.bool { return C.bool(classify.IsLower(rune(cp))) }

//export unicode_is_upper
func unicode_is_upper(cp C.uint32_t) C.bool { return C.bool(classify.IsUpper(rune(cp))) }

//export unicode_codepoint_width
func unicode_codepoint_width(cp C.uint32_t) C.uint8_t {
	return C.uint8_t(classify.CodepointWidth(rune(cp)))
}

//export unicode_categorize
func unicode_categorize(cp C.uint32_t) C.int { return C.int(classify.Categorize(rune(cp))) }

//export unicode_categorize_word
func unicode_categorize_word(cp C.uint32_t) C.int {
	return C.int(classify.CategorizeWord(rune(cp)))
}
